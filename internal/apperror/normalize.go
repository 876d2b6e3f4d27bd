package apperror

import "net/http"

// Body is the uniform JSON error shape: Status repeats the HTTP code, Message
// holds the default human-readable text for that status class, and Detail holds
// the stage-specific message verbatim.
type Body struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Detail  string `json:"error"`
}

// defaultMessages is the fixed table of per-status texts used for the Message
// field regardless of what the triggering stage supplied.
var defaultMessages = map[int]string{
	http.StatusBadRequest:          "Bad Request. Please check your input and try again.",
	http.StatusUnauthorized:        "Unauthorized access. Please log in to proceed.",
	http.StatusForbidden:           "Forbidden. You don't have permission to access this resource.",
	http.StatusNotFound:            "The resource you're looking for does not exist.",
	http.StatusUnprocessableEntity: "Unprocessable Entity. The request cannot be processed due to semantic errors.",
	http.StatusInternalServerError: "Oops! Something went wrong on our end. Please try again later.",
}

// Normalize converts any error into a status code and response body. 401 and
// 403 answers are plain text ("Unauthorized", "Forbidden: <reason>"); every
// other status gets the uniform JSON shape. Untagged errors become a generic
// 500 so storage driver details never reach a client.
func Normalize(err error) (status int, body Body, plainText bool) {
	appErr := From(err)
	status = appErr.Status

	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return status, Body{Status: status, Detail: appErr.Message}, true
	}

	message, ok := defaultMessages[status]
	if !ok {
		message = "An unexpected error occurred. Please try again later."
	}
	detail := appErr.Message
	if status == http.StatusInternalServerError {
		detail = "Unexpected error"
	}
	return status, Body{Status: status, Message: message, Detail: detail}, false
}
