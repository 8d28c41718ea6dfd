// Package node implements the validator-node model of the schema compiler
// and the validation engine that dispatches against it: a tagged variant
// per schema construct, each an independently shareable Node reachable
// either directly (compiled sub-schema) or through a Ref placeholder
// (intra-/inter-document $ref).
//
// Grounded on the teacher's internal/ir (NodeKind tagged union) and
// internal/engine (Kind-based dispatch) packages, retargeted from decoding
// a JSON token stream to validating an already-decoded instance tree
// against a compiled schema tree.
package node

import (
	"math"

	"github.com/reoring/jsonschema/internal/herr"
	"github.com/reoring/jsonschema/internal/uri"
)

// Node is the one method every validator-node variant implements. path is
// the instance's current location (for error reporting); h receives Issues.
type Node interface {
	Validate(instance any, path uri.Pointer, h herr.Handler)
}

// Boolean is the boolean-schema node: `true` accepts everything, `false`
// rejects everything.
type Boolean bool

func (b Boolean) Validate(instance any, path uri.Pointer, h herr.Handler) {
	if !bool(b) {
		h.Error(path.String(), instance, herr.FalseSchema, "instance rejected by a `false` schema")
	}
}

// classify reports the JSON type tags an instance satisfies: exactly one of
// null/boolean/string/array/object, or for numeric instances both "number"
// and, when the value has no fractional part, "integer" as well.
func classify(instance any) (tags []string, numeric float64, isNumeric bool) {
	switch v := instance.(type) {
	case nil:
		return []string{"null"}, 0, false
	case bool:
		return []string{"boolean"}, 0, false
	case string:
		return []string{"string"}, 0, false
	case []any:
		return []string{"array"}, 0, false
	case map[string]any:
		return []string{"object"}, 0, false
	default:
		f, ok := toFloat64(v)
		if !ok {
			return nil, 0, false
		}
		if f == math.Trunc(f) && !math.IsInf(f, 0) {
			return []string{"number", "integer"}, f, true
		}
		return []string{"number"}, f, true
	}
}

// toFloat64 converts the numeric instance representations this system
// accepts (float64 from encoding/json and goccy/go-json, json.Number from
// either when configured to preserve it) to float64.
func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case jsonNumber:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

// jsonNumber mirrors encoding/json.Number's interface without importing it,
// so this package accepts either encoding/json's or goccy/go-json's Number
// type (they are both defined types over string with a Float64 method).
type jsonNumber interface {
	Float64() (float64, error)
}
