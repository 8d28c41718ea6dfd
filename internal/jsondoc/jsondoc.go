// Package jsondoc decodes a schema or instance document from bytes without
// knowing in advance whether it is JSON or YAML, normalizing either into
// the plain map[string]any / []any / primitive tree the rest of the system
// operates on.
//
// Grounded on the teacher's codec subpackage (format-specific decode paths
// behind one entry point) generalized from "decode into a typed Go value"
// to "decode into an untyped document tree," using goccy/go-json for the
// JSON path (the teacher's own decoder) and gopkg.in/yaml.v3 for YAML,
// since draft-07 schemas are routinely authored as either.
package jsondoc

import (
	"bytes"
	"fmt"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Decode sniffs data as JSON or YAML and returns its normalized document
// tree: object -> map[string]any, array -> []any, and JSON number literals
// preserved as float64.
func Decode(data []byte) (any, error) {
	if looksLikeJSON(data) {
		var v any
		if err := gojson.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("jsonschema: decoding JSON: %w", err)
		}
		return v, nil
	}
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("jsonschema: decoding YAML: %w", err)
	}
	return normalizeYAML(v), nil
}

// looksLikeJSON reports whether the trimmed document opens a JSON value: an
// object, array, or string, a number (a digit, or '-' followed by a digit),
// or is exactly one of the literals true/false/null. A YAML block sequence
// ("- item") or a mapping whose first key starts with t/f/n ("type: ...")
// therefore goes to the YAML decoder.
func looksLikeJSON(data []byte) bool {
	t := bytes.TrimSpace(data)
	if len(t) == 0 {
		return false
	}
	switch t[0] {
	case '{', '[', '"':
		return true
	case '-':
		return len(t) > 1 && t[1] >= '0' && t[1] <= '9'
	case 't', 'f', 'n':
		s := string(t)
		return s == "true" || s == "false" || s == "null"
	}
	return t[0] >= '0' && t[0] <= '9'
}

// normalizeYAML recursively converts yaml.v3's decode output
// (map[string]any already for mapping nodes, but []any elements may nest
// further maps) into the map[string]any tree the compiler expects; yaml.v3
// decodes mappings into map[string]any directly when the target is `any`,
// unlike yaml.v2's map[interface{}]interface{}, but nested values still
// need recursive normalization for integers (decoded as int, not float64).
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalizeYAML(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprintf("%v", k)] = normalizeYAML(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalizeYAML(val)
		}
		return out
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case uint64:
		return float64(t)
	default:
		return t
	}
}
