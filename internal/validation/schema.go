package validation

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gearshift-labs/partsdepot/internal/apperror"
)

// Op selects create or update semantics for a schema.
type Op int

const (
	// Create requires every required field to be present.
	Create Op = iota
	// Update makes all fields optional but still checks any present field.
	Update
)

var validate = validator.New()

// Check inspects a present field value and returns a public message when the
// value fails, or "" when it passes.
type Check func(value any) string

// Field is one entry in an entity's validation descriptor. Fields are
// evaluated in declaration order so aggregated messages are deterministic.
type Field struct {
	Name        string
	Required    bool   // must be present on create
	RequiredMsg string // message when a required field is absent on create
	CreateOnly  bool   // accepted on create only, rejected as unknown on update
	Checks      []Check
}

// Schema is a declarative per-entity validation descriptor interpreted by one
// generic engine, instead of a hand-written validator per entity.
type Schema struct {
	Entity string
	Fields []Field
}

// Allowlist returns the accepted field names for the given operation.
func (s *Schema) Allowlist(op Op) []string {
	names := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		if op == Update && f.CreateOnly {
			continue
		}
		names = append(names, f.Name)
	}
	return names
}

func (s *Schema) allows(op Op, key string) bool {
	for _, f := range s.Fields {
		if f.Name != key {
			continue
		}
		if op == Update && f.CreateOnly {
			return false
		}
		return true
	}
	return false
}

// Validate applies the schema to a decoded request body. keys must hold the
// body's top-level keys in payload order so the unknown-field message lists
// offenders in the order the client sent them.
//
// Precedence: empty body, then unknown fields, then field-level checks. Field
// failures are all collected and joined into one message so a client can fix
// every problem from a single response.
func (s *Schema) Validate(op Op, body map[string]any, keys []string) *apperror.AppError {
	if len(body) == 0 {
		return apperror.BadRequest("Request body cannot be empty.")
	}

	var invalid []string
	for _, key := range keys {
		if !s.allows(op, key) {
			invalid = append(invalid, key)
		}
	}
	if len(invalid) > 0 {
		return apperror.Validation("Invalid fields: " + strings.Join(invalid, ", "))
	}

	var msgs []string
	for _, f := range s.Fields {
		value, present := body[f.Name]
		if !present {
			if op == Create && f.Required {
				msgs = append(msgs, f.RequiredMsg)
			}
			continue
		}
		for _, check := range f.Checks {
			if m := check(value); m != "" {
				msgs = append(msgs, m)
			}
		}
	}
	if len(msgs) > 0 {
		return apperror.Validation(strings.Join(msgs, ", "))
	}
	return nil
}

// asFloat coerces any JSON-decoded numeric representation to a float64.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

// asInt coerces any JSON-decoded numeric representation to an int64, rejecting
// fractional values.
func asInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		if n != float64(int64(n)) {
			return 0, false
		}
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	}
	return 0, false
}

// RequiredString passes non-empty strings. Empty strings reuse the required
// message, matching how the original validators treated "".
func RequiredString(requiredMsg, typeMsg string) Check {
	return func(v any) string {
		str, ok := v.(string)
		if !ok {
			return typeMsg
		}
		if str == "" {
			return requiredMsg
		}
		return ""
	}
}

// StringVar runs a go-playground/validator tag against a string value.
func StringVar(tag, msg string) Check {
	return func(v any) string {
		str, ok := v.(string)
		if !ok || validate.Var(str, tag) != nil {
			return msg
		}
		return ""
	}
}

// NumericString accepts digit-only strings or integral numbers.
func NumericString(msg string) Check {
	return func(v any) string {
		if str, ok := v.(string); ok {
			if _, err := strconv.ParseUint(str, 10, 64); err != nil {
				return msg
			}
			return ""
		}
		if _, ok := asInt(v); ok {
			return ""
		}
		return msg
	}
}

// OneOf is a case-sensitive exact match against an enumeration.
func OneOf(enum []string, msg string) Check {
	return func(v any) string {
		str, ok := v.(string)
		if !ok {
			return msg
		}
		for _, e := range enum {
			if str == e {
				return ""
			}
		}
		return msg
	}
}

// IntBetween checks an inclusive integer range. max is evaluated per request
// so bounds like "the current calendar year" stay fresh.
func IntBetween(min int64, max func() int64, msg string) Check {
	return func(v any) string {
		n, ok := asInt(v)
		if !ok || n < min || n > max() {
			return msg
		}
		return ""
	}
}

// IntMin checks an integer lower bound.
func IntMin(min int64, msg string) Check {
	return func(v any) string {
		n, ok := asInt(v)
		if !ok || n < min {
			return msg
		}
		return ""
	}
}

// NumberMin checks a numeric lower bound, fractions allowed.
func NumberMin(min float64, msg string) Check {
	return func(v any) string {
		n, ok := asFloat(v)
		if !ok || n < min {
			return msg
		}
		return ""
	}
}

// ExactLength checks a string's exact character count.
func ExactLength(length int, msg string) Check {
	return func(v any) string {
		str, ok := v.(string)
		if !ok || len(str) != length {
			return msg
		}
		return ""
	}
}

// EnumArray checks a non-empty array whose elements all belong to enum.
func EnumArray(enum []string, emptyMsg, badMsg string) Check {
	return func(v any) string {
		arr, ok := v.([]any)
		if !ok || len(arr) == 0 {
			return emptyMsg
		}
		for _, el := range arr {
			str, ok := el.(string)
			if !ok {
				return badMsg
			}
			found := false
			for _, e := range enum {
				if str == e {
					found = true
					break
				}
			}
			if !found {
				return badMsg
			}
		}
		return ""
	}
}

// ItemList checks an order's items: a non-empty array where every element has
// a valid ObjectId partId and a positive integer quantity.
func ItemList(emptyMsg, badItemMsg string) Check {
	return func(v any) string {
		arr, ok := v.([]any)
		if !ok || len(arr) == 0 {
			return emptyMsg
		}
		for _, el := range arr {
			item, ok := el.(map[string]any)
			if !ok {
				return badItemMsg
			}
			partID, ok := item["partId"].(string)
			if !ok || !primitive.IsValidObjectID(partID) {
				return badItemMsg
			}
			qty, ok := asInt(item["quantity"])
			if !ok || qty < 1 {
				return badItemMsg
			}
		}
		return ""
	}
}

// RFC3339 checks an ISO 8601 date-time string.
func RFC3339(msg string) Check {
	return StringVar("datetime=2006-01-02T15:04:05Z07:00", msg)
}
