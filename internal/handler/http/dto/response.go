package dto

// MessageResponse is a generic response for success messages.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreatedResponse is the response for a successful create.
type CreatedResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}
