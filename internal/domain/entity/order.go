package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem is a single line item referencing a spare part.
type OrderItem struct {
	PartID   primitive.ObjectID `bson:"partId" json:"partId"`
	Quantity int                `bson:"quantity" json:"quantity"`
}

// Order represents a spare-part order placed by a user. UserID is stamped from
// the authenticated session at creation; every PartID referenced by Items must
// exist in the spare-parts collection when the order is created.
type Order struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Items     []OrderItem        `bson:"items" json:"items"`
	Status    string             `bson:"status" json:"status"`
	OrderDate time.Time          `bson:"orderDate" json:"orderDate"`
}

// OrderStatuses enumerates the accepted order statuses.
var OrderStatuses = []string{"Pending", "Shipped", "Completed"}

// OrderUpdateFields is the set of fields a PUT /orders/:id may touch.
var OrderUpdateFields = []string{"items", "status"}

// UpdateView projects the order onto its update allowlist for no-op detection.
func (o *Order) UpdateView() map[string]any {
	items := make([]map[string]any, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, map[string]any{
			"partId":   it.PartID.Hex(),
			"quantity": it.Quantity,
		})
	}
	return map[string]any{
		"items":  items,
		"status": o.Status,
	}
}
