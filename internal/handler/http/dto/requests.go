package dto

import "time"

// UpdateUserRequest holds the fields a PUT /users/:id may change. Pointer
// fields distinguish "absent" from "set to zero value".
type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Role  *string `json:"role"`
}

// ToUpdates converts present fields into a partial-update map.
func (r UpdateUserRequest) ToUpdates() map[string]any {
	updates := make(map[string]any)
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if r.Email != nil {
		updates["email"] = *r.Email
	}
	if r.Role != nil {
		updates["role"] = *r.Role
	}
	return updates
}

// CreateCarRequest is the payload for POST /cars. The owner is taken from the
// session, never from the body.
type CreateCarRequest struct {
	Make       string `json:"make"`
	Model      string `json:"model"`
	Year       int    `json:"year"`
	EngineType string `json:"engineType"`
	VIN        string `json:"VIN"`
	Category   string `json:"category"`
}

// UpdateCarRequest holds the fields a PUT /cars/:id may change.
type UpdateCarRequest struct {
	Make       *string `json:"make"`
	Model      *string `json:"model"`
	Year       *int    `json:"year"`
	EngineType *string `json:"engineType"`
	VIN        *string `json:"VIN"`
	Category   *string `json:"category"`
}

func (r UpdateCarRequest) ToUpdates() map[string]any {
	updates := make(map[string]any)
	if r.Make != nil {
		updates["make"] = *r.Make
	}
	if r.Model != nil {
		updates["model"] = *r.Model
	}
	if r.Year != nil {
		updates["year"] = *r.Year
	}
	if r.EngineType != nil {
		updates["engineType"] = *r.EngineType
	}
	if r.VIN != nil {
		updates["VIN"] = *r.VIN
	}
	if r.Category != nil {
		updates["category"] = *r.Category
	}
	return updates
}

// CreateSparePartRequest is the payload for POST /spare-parts.
type CreateSparePartRequest struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Price          float64  `json:"price"`
	Stock          int      `json:"stock"`
	CompatibleCars []string `json:"compatibleCars"`
	Category       string   `json:"category"`
}

// UpdateSparePartRequest holds the fields a PUT /spare-parts/:id may change.
type UpdateSparePartRequest struct {
	Name           *string   `json:"name"`
	Description    *string   `json:"description"`
	Price          *float64  `json:"price"`
	Stock          *int      `json:"stock"`
	CompatibleCars *[]string `json:"compatibleCars"`
	Category       *string   `json:"category"`
}

func (r UpdateSparePartRequest) ToUpdates() map[string]any {
	updates := make(map[string]any)
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	if r.Price != nil {
		updates["price"] = *r.Price
	}
	if r.Stock != nil {
		updates["stock"] = *r.Stock
	}
	if r.CompatibleCars != nil {
		updates["compatibleCars"] = *r.CompatibleCars
	}
	if r.Category != nil {
		updates["category"] = *r.Category
	}
	return updates
}

// OrderItemRequest is one line item in an order payload.
type OrderItemRequest struct {
	PartID   string `json:"partId"`
	Quantity int    `json:"quantity"`
}

// CreateOrderRequest is the payload for POST /orders. The ordering user is
// taken from the session.
type CreateOrderRequest struct {
	Items     []OrderItemRequest `json:"items"`
	Status    string             `json:"status"`
	OrderDate *time.Time         `json:"orderDate"`
}

// UpdateOrderRequest holds the fields a PUT /orders/:id may change.
type UpdateOrderRequest struct {
	Items  *[]OrderItemRequest `json:"items"`
	Status *string             `json:"status"`
}
