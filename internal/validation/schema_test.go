package validation_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gearshift-labs/partsdepot/internal/validation"
)

// decode mirrors the gatekeeper's body decoding: json.Number for exact
// integer checks and the top-level keys in payload order.
func decode(t *testing.T, payload string) (map[string]any, []string) {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(payload))
	dec.UseNumber()
	var body map[string]any
	require.NoError(t, dec.Decode(&body))

	var keys []string
	d := json.NewDecoder(strings.NewReader(payload))
	_, err := d.Token() // opening brace
	require.NoError(t, err)
	for d.More() {
		tok, err := d.Token()
		require.NoError(t, err)
		keys = append(keys, tok.(string))
		var skip json.RawMessage
		require.NoError(t, d.Decode(&skip))
	}
	return body, keys
}

func TestCarSchemaCreateValid(t *testing.T) {
	body, keys := decode(t, `{"make":"Toyota","model":"Corolla","year":2020,"engineType":"Petrol","VIN":"1HGCM82633A004352","category":"Sedan"}`)
	err := validation.CarSchema.Validate(validation.Create, body, keys)
	assert.Nil(t, err)
}

func TestCarSchemaCreateMissingFields(t *testing.T) {
	body, keys := decode(t, `{"make":"Toyota"}`)
	err := validation.CarSchema.Validate(validation.Create, body, keys)
	if assert.NotNil(t, err) {
		assert.Equal(t, http.StatusUnprocessableEntity, err.Status)
		assert.Equal(t,
			"Model is required., Year must be a valid year., Engine Type must be one of: Petrol, Diesel, Electric, Hybrid., VIN must be 17 characters long., Category must be one of: Sedan, SUV, Truck, Coupe, Hatchback, Convertible.",
			err.Message)
	}
}

func TestCarSchemaUnknownFieldsListedInPayloadOrder(t *testing.T) {
	body, keys := decode(t, `{"color":"red","make":"Toyota","wheels":4}`)
	err := validation.CarSchema.Validate(validation.Update, body, keys)
	if assert.NotNil(t, err) {
		assert.Equal(t, http.StatusUnprocessableEntity, err.Status)
		assert.Equal(t, "Invalid fields: color, wheels", err.Message)
	}
}

func TestCarSchemaUnknownFieldsBeforeFieldChecks(t *testing.T) {
	// A bad year and an unknown field together: the unknown field wins.
	body, keys := decode(t, `{"year":1700,"color":"red"}`)
	err := validation.CarSchema.Validate(validation.Update, body, keys)
	if assert.NotNil(t, err) {
		assert.Equal(t, "Invalid fields: color", err.Message)
	}
}

func TestCarSchemaYearBounds(t *testing.T) {
	body, keys := decode(t, `{"year":1885}`)
	err := validation.CarSchema.Validate(validation.Update, body, keys)
	if assert.NotNil(t, err) {
		assert.Equal(t, "Year must be a valid year.", err.Message)
	}

	future := fmt.Sprintf(`{"year":%d}`, time.Now().Year()+1)
	body, keys = decode(t, future)
	err = validation.CarSchema.Validate(validation.Update, body, keys)
	assert.NotNil(t, err)

	current := fmt.Sprintf(`{"year":%d}`, time.Now().Year())
	body, keys = decode(t, current)
	err = validation.CarSchema.Validate(validation.Update, body, keys)
	assert.Nil(t, err)
}

func TestCarSchemaFractionalYearRejected(t *testing.T) {
	body, keys := decode(t, `{"year":2020.5}`)
	err := validation.CarSchema.Validate(validation.Update, body, keys)
	if assert.NotNil(t, err) {
		assert.Equal(t, "Year must be a valid year.", err.Message)
	}
}

func TestCarSchemaVINLength(t *testing.T) {
	body, keys := decode(t, `{"VIN":"SHORT"}`)
	err := validation.CarSchema.Validate(validation.Update, body, keys)
	if assert.NotNil(t, err) {
		assert.Equal(t, "VIN must be 17 characters long.", err.Message)
	}
}

func TestCarSchemaEmptyBody(t *testing.T) {
	err := validation.CarSchema.Validate(validation.Update, map[string]any{}, nil)
	if assert.NotNil(t, err) {
		assert.Equal(t, http.StatusBadRequest, err.Status)
		assert.Equal(t, "Request body cannot be empty.", err.Message)
	}
}

func TestUserSchemaCreateOnlyFieldsRejectedOnUpdate(t *testing.T) {
	body, keys := decode(t, `{"githubId":"12345","name":"Jo"}`)
	err := validation.UserSchema.Validate(validation.Update, body, keys)
	if assert.NotNil(t, err) {
		assert.Equal(t, "Invalid fields: githubId", err.Message)
	}
}

func TestUserSchemaRoleEnum(t *testing.T) {
	body, keys := decode(t, `{"role":"superuser"}`)
	err := validation.UserSchema.Validate(validation.Update, body, keys)
	if assert.NotNil(t, err) {
		assert.Equal(t, "Invalid role.", err.Message)
	}

	body, keys = decode(t, `{"role":"employee"}`)
	assert.Nil(t, validation.UserSchema.Validate(validation.Update, body, keys))
}

func TestUserSchemaEmail(t *testing.T) {
	body, keys := decode(t, `{"email":"not-an-email"}`)
	err := validation.UserSchema.Validate(validation.Update, body, keys)
	if assert.NotNil(t, err) {
		assert.Equal(t, "Invalid email format.", err.Message)
	}
}

func TestSparePartSchemaNegativePriceAndStock(t *testing.T) {
	body, keys := decode(t, `{"price":-1,"stock":-5}`)
	err := validation.SparePartSchema.Validate(validation.Update, body, keys)
	if assert.NotNil(t, err) {
		assert.Equal(t, "Price must be a non-negative number., Stock must be a non-negative integer.", err.Message)
	}
}

func TestSparePartSchemaFractionalPriceAllowed(t *testing.T) {
	body, keys := decode(t, `{"price":19.99}`)
	assert.Nil(t, validation.SparePartSchema.Validate(validation.Update, body, keys))
}

func TestSparePartSchemaCompatibleCars(t *testing.T) {
	body, keys := decode(t, `{"compatibleCars":[]}`)
	err := validation.SparePartSchema.Validate(validation.Update, body, keys)
	if assert.NotNil(t, err) {
		assert.Equal(t, "Compatible cars must be an array with at least one car type.", err.Message)
	}

	body, keys = decode(t, `{"compatibleCars":["Sedan","Spaceship"]}`)
	err = validation.SparePartSchema.Validate(validation.Update, body, keys)
	if assert.NotNil(t, err) {
		assert.Equal(t, "Compatible cars must be one of: Sedan, SUV, Truck, Coupe, Hatchback, Convertible.", err.Message)
	}

	body, keys = decode(t, `{"compatibleCars":["Sedan","SUV"]}`)
	assert.Nil(t, validation.SparePartSchema.Validate(validation.Update, body, keys))
}

func TestOrderSchemaItems(t *testing.T) {
	body, keys := decode(t, `{"items":[],"status":"Pending"}`)
	err := validation.OrderSchema.Validate(validation.Create, body, keys)
	if assert.NotNil(t, err) {
		assert.Equal(t, "Items must be a non-empty array.", err.Message)
	}

	body, keys = decode(t, `{"items":[{"partId":"nothex","quantity":1}],"status":"Pending"}`)
	err = validation.OrderSchema.Validate(validation.Create, body, keys)
	if assert.NotNil(t, err) {
		assert.Equal(t, "Each item must contain a valid partId and quantity (positive integer).", err.Message)
	}

	body, keys = decode(t, `{"items":[{"partId":"64a0c1e2f3a4b5c6d7e8f901","quantity":0}],"status":"Pending"}`)
	err = validation.OrderSchema.Validate(validation.Create, body, keys)
	assert.NotNil(t, err)

	body, keys = decode(t, `{"items":[{"partId":"64a0c1e2f3a4b5c6d7e8f901","quantity":2}],"status":"Pending"}`)
	assert.Nil(t, validation.OrderSchema.Validate(validation.Create, body, keys))
}

func TestOrderSchemaStatusEnum(t *testing.T) {
	body, keys := decode(t, `{"status":"Delivered"}`)
	err := validation.OrderSchema.Validate(validation.Update, body, keys)
	if assert.NotNil(t, err) {
		assert.Equal(t, "Status must be one of: Pending, Shipped, Completed.", err.Message)
	}
}

func TestOrderSchemaOrderDateCreateOnly(t *testing.T) {
	body, keys := decode(t, `{"orderDate":"2026-01-15T10:00:00Z"}`)
	err := validation.OrderSchema.Validate(validation.Update, body, keys)
	if assert.NotNil(t, err) {
		assert.Equal(t, "Invalid fields: orderDate", err.Message)
	}
}

func TestSchemaAllowlist(t *testing.T) {
	assert.Equal(t,
		[]string{"name", "email", "role", "githubId", "avatarUrl", "registeredDate"},
		validation.UserSchema.Allowlist(validation.Create))
	assert.Equal(t,
		[]string{"name", "email", "role"},
		validation.UserSchema.Allowlist(validation.Update))
}
