package validation

import (
	"time"

	"github.com/gearshift-labs/partsdepot/internal/domain/entity"
)

func currentYear() int64 {
	return int64(time.Now().Year())
}

// UserSchema validates user documents. Users are only inserted through the
// OAuth find-or-create path, so githubId, avatarUrl and registeredDate are
// accepted on create but rejected on a PUT /users/:id.
var UserSchema = Schema{
	Entity: "User",
	Fields: []Field{
		{
			Name: "name", Required: true, RequiredMsg: "Name is required.",
			Checks: []Check{RequiredString("Name is required.", "Name must be a string.")},
		},
		{
			Name:   "email",
			Checks: []Check{StringVar("email", "Invalid email format.")},
		},
		{
			Name:   "role",
			Checks: []Check{OneOf([]string{"client", "admin", "employee"}, "Invalid role.")},
		},
		{
			Name: "githubId", CreateOnly: true,
			Checks: []Check{NumericString("GitHub ID must be an integer.")},
		},
		{
			Name: "avatarUrl", CreateOnly: true,
			Checks: []Check{StringVar("url", "Invalid avatar URL format.")},
		},
		{
			Name: "registeredDate", CreateOnly: true,
			Checks: []Check{RFC3339("Registered date must be a valid date-time.")},
		},
	},
}

// CarSchema validates car documents. ownerId is not listed: it is stamped from
// the session at creation and immutable afterwards, so any attempt to set it
// is rejected as an unknown field.
var CarSchema = Schema{
	Entity: "Car",
	Fields: []Field{
		{
			Name: "make", Required: true, RequiredMsg: "Make is required.",
			Checks: []Check{RequiredString("Make is required.", "Make must be a string.")},
		},
		{
			Name: "model", Required: true, RequiredMsg: "Model is required.",
			Checks: []Check{RequiredString("Model is required.", "Model must be a string.")},
		},
		{
			Name: "year", Required: true, RequiredMsg: "Year must be a valid year.",
			Checks: []Check{IntBetween(1886, currentYear, "Year must be a valid year.")},
		},
		{
			Name: "engineType", Required: true, RequiredMsg: "Engine Type must be one of: Petrol, Diesel, Electric, Hybrid.",
			Checks: []Check{OneOf(entity.EngineTypes, "Engine Type must be one of: Petrol, Diesel, Electric, Hybrid.")},
		},
		{
			Name: "VIN", Required: true, RequiredMsg: "VIN must be 17 characters long.",
			Checks: []Check{ExactLength(17, "VIN must be 17 characters long.")},
		},
		{
			Name: "category", Required: true, RequiredMsg: "Category must be one of: Sedan, SUV, Truck, Coupe, Hatchback, Convertible.",
			Checks: []Check{OneOf(entity.CarCategories, "Category must be one of: Sedan, SUV, Truck, Coupe, Hatchback, Convertible.")},
		},
	},
}

// SparePartSchema validates spare-part documents.
var SparePartSchema = Schema{
	Entity: "Spare Part",
	Fields: []Field{
		{
			Name: "name", Required: true, RequiredMsg: "Name is required.",
			Checks: []Check{RequiredString("Name is required.", "Name must be a string.")},
		},
		{
			Name: "description", Required: true, RequiredMsg: "Description is required.",
			Checks: []Check{RequiredString("Description is required.", "Description must be a string.")},
		},
		{
			Name: "price", Required: true, RequiredMsg: "Price must be a non-negative number.",
			Checks: []Check{NumberMin(0, "Price must be a non-negative number.")},
		},
		{
			Name: "stock", Required: true, RequiredMsg: "Stock must be a non-negative integer.",
			Checks: []Check{IntMin(0, "Stock must be a non-negative integer.")},
		},
		{
			Name: "compatibleCars", Required: true, RequiredMsg: "Compatible cars must be an array with at least one car type.",
			Checks: []Check{EnumArray(
				entity.CarCategories,
				"Compatible cars must be an array with at least one car type.",
				"Compatible cars must be one of: Sedan, SUV, Truck, Coupe, Hatchback, Convertible.",
			)},
		},
		{
			Name: "category", Required: true, RequiredMsg: "Category is required.",
			Checks: []Check{RequiredString("Category is required.", "Category must be a string.")},
		},
	},
}

// OrderSchema validates order documents. userId is stamped from the session,
// never accepted from the body.
var OrderSchema = Schema{
	Entity: "Order",
	Fields: []Field{
		{
			Name: "items", Required: true, RequiredMsg: "Items must be a non-empty array.",
			Checks: []Check{ItemList(
				"Items must be a non-empty array.",
				"Each item must contain a valid partId and quantity (positive integer).",
			)},
		},
		{
			Name: "status", Required: true, RequiredMsg: "Status is required.",
			Checks: []Check{OneOf(entity.OrderStatuses, "Status must be one of: Pending, Shipped, Completed.")},
		},
		{
			Name: "orderDate", CreateOnly: true,
			Checks: []Check{RFC3339("Order date must be a valid date-time.")},
		},
	},
}
