package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SparePart represents an item in the parts catalog.
type SparePart struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Description    string             `bson:"description" json:"description"`
	Price          float64            `bson:"price" json:"price"`
	Stock          int                `bson:"stock" json:"stock"`
	CompatibleCars []string           `bson:"compatibleCars" json:"compatibleCars"`
	Category       string             `bson:"category" json:"category"`
}

// SparePartUpdateFields is the set of fields a PUT /spare-parts/:id may touch.
var SparePartUpdateFields = []string{"name", "description", "price", "stock", "compatibleCars", "category"}

// UpdateView projects the spare part onto its update allowlist for no-op detection.
func (p *SparePart) UpdateView() map[string]any {
	return map[string]any{
		"name":           p.Name,
		"description":    p.Description,
		"price":          p.Price,
		"stock":          p.Stock,
		"compatibleCars": p.CompatibleCars,
		"category":       p.Category,
	}
}
