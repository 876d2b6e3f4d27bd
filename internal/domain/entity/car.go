package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Car represents a vehicle owned by a user. OwnerID is stamped from the
// authenticated session at creation and never changes afterwards.
type Car struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Make       string             `bson:"make" json:"make"`
	Model      string             `bson:"model" json:"model"`
	Year       int                `bson:"year" json:"year"`
	EngineType string             `bson:"engineType" json:"engineType"`
	VIN        string             `bson:"VIN" json:"VIN"`
	Category   string             `bson:"category" json:"category"`
	OwnerID    primitive.ObjectID `bson:"ownerId" json:"ownerId"`
}

// EngineTypes enumerates the accepted engine types.
var EngineTypes = []string{"Petrol", "Diesel", "Electric", "Hybrid"}

// CarCategories enumerates the accepted car categories. Spare parts reuse the
// same enumeration for their compatibleCars list.
var CarCategories = []string{"Sedan", "SUV", "Truck", "Coupe", "Hatchback", "Convertible"}

// CarUpdateFields is the set of fields a PUT /cars/:id may touch.
var CarUpdateFields = []string{"make", "model", "year", "engineType", "VIN", "category"}

// UpdateView projects the car onto its update allowlist for no-op detection.
func (c *Car) UpdateView() map[string]any {
	return map[string]any{
		"make":       c.Make,
		"model":      c.Model,
		"year":       c.Year,
		"engineType": c.EngineType,
		"VIN":        c.VIN,
		"category":   c.Category,
	}
}

// OwnerHex returns the stored owner reference as a hex string.
func (c *Car) OwnerHex() string {
	return c.OwnerID.Hex()
}
