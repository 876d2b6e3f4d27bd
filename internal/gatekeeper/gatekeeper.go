// Package gatekeeper implements the request validation and authorization
// pipeline. Each route composes an ordered list of stages; a stage either
// passes control onward or halts the chain with a tagged error. The stages
// share an explicit request context instead of a mutable framework object,
// and nothing here writes a response body — that is the normalizer's job.
package gatekeeper

import (
	"bytes"
	"context"
	"encoding/json"
	"io"

	"github.com/gearshift-labs/partsdepot/internal/apperror"
	"github.com/gearshift-labs/partsdepot/internal/domain/entity"
)

// Resource is an entity loaded from storage by a lookup stage and attached to
// the request context for reuse by later stages.
type Resource interface {
	UpdateView() map[string]any
}

// Owned is a resource with a stored owner reference.
type Owned interface {
	Resource
	OwnerHex() string
}

// Loader fetches a resource by ObjectId hex. It returns (nil, nil) when the
// resource does not exist so the calling stage can shape the 404 message.
type Loader func(ctx context.Context, id string) (Resource, error)

// Context carries the request-scoped state the stages operate on.
type Context struct {
	Identity *entity.User   // session identity, nil when unauthenticated
	ParamID  string         // :id path parameter, "" when the route has none
	RawBody  []byte         // the body as received, for typed decoding later
	Body     map[string]any // decoded top-level body
	BodyKeys []string       // top-level keys in payload order
	Loaded   Resource       // entity attached by a lookup stage
}

// Stage is one step of the pipeline. A nil return passes control to the next
// stage; a non-nil return halts the chain.
type Stage func(ctx context.Context, rc *Context) *apperror.AppError

// Run executes the stages strictly in order, stopping at the first halt.
func Run(ctx context.Context, rc *Context, stages ...Stage) *apperror.AppError {
	for _, stage := range stages {
		if err := stage(ctx, rc); err != nil {
			return err
		}
	}
	return nil
}

// DecodeBody parses a JSON object body into the context. An absent or blank
// body becomes an empty map so RejectEmptyBody can produce its own message.
// Numbers decode as json.Number to keep integer checks exact, and the
// top-level key order is preserved for deterministic unknown-field messages.
func (rc *Context) DecodeBody(r io.Reader) *apperror.AppError {
	raw, err := io.ReadAll(r)
	if err != nil {
		return apperror.Internal(err)
	}
	rc.RawBody = raw
	rc.Body = map[string]any{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&rc.Body); err != nil {
		return apperror.BadRequest("Invalid JSON payload.")
	}
	rc.BodyKeys = topLevelKeys(raw)
	return nil
}

// topLevelKeys walks the JSON tokens and records the object's own keys in the
// order they appear in the payload.
func topLevelKeys(raw []byte) []string {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil
	}
	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return keys
		}
		key, ok := tok.(string)
		if !ok {
			return keys
		}
		keys = append(keys, key)
		if !skipValue(dec) {
			return keys
		}
	}
	return keys
}

// skipValue consumes one JSON value, descending through nested containers.
func skipValue(dec *json.Decoder) bool {
	tok, err := dec.Token()
	if err != nil {
		return false
	}
	delim, ok := tok.(json.Delim)
	if !ok || (delim != '{' && delim != '[') {
		return true
	}
	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return false
		}
		if d, ok := tok.(json.Delim); ok {
			switch d {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
	}
	return true
}

// equalValues compares a body value with a stored entity value. Numbers are
// compared numerically regardless of representation; everything else is
// compared through its canonical JSON encoding.
func equalValues(a, b any) bool {
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if aok && bok {
		return af == bf
	}
	if aok != bok {
		return false
	}
	aj, errA := json.Marshal(a)
	bj, errB := json.Marshal(b)
	if errA != nil || errB != nil {
		return false
	}
	return bytes.Equal(aj, bj)
}

func toFloat(v any) (float64, bool) {
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
