package compile

import (
	"fmt"
	"sort"

	"github.com/reoring/jsonschema/internal/uri"
)

// recognized is the set of keywords the compiler understands — either as a
// validator-building keyword or as an annotation it deliberately drops
// (spec.md §4.4 step 3e). Anything else found on a schema object is stashed
// as a potential future $ref target (§4.2's unknown-keyword promotion).
var recognized = map[string]bool{
	"$id": true, "$ref": true, "$schema": true, "definitions": true,
	"default": true, "title": true, "description": true,
	"type": true, "enum": true, "const": true,
	"not": true, "allOf": true, "anyOf": true, "oneOf": true,
	"if": true, "then": true, "else": true,
	"properties": true, "patternProperties": true, "additionalProperties": true,
	"required": true, "dependencies": true, "propertyNames": true,
	"maxProperties": true, "minProperties": true,
	"items": true, "additionalItems": true, "contains": true,
	"maxItems": true, "minItems": true, "uniqueItems": true,
	"maxLength": true, "minLength": true, "pattern": true, "format": true,
	"maximum": true, "minimum": true, "exclusiveMaximum": true, "exclusiveMinimum": true,
	"multipleOf": true,
}

func asObject(schema any) (map[string]any, bool) {
	m, ok := schema.(map[string]any)
	return m, ok
}

// extend extends every URI in stack by each token, in order, as spec.md
// §4.4 step 1 requires.
func extend(stack []uri.URI, tokens []string) []uri.URI {
	if len(tokens) == 0 {
		return stack
	}
	out := make([]uri.URI, len(stack))
	for i, u := range stack {
		for _, tok := range tokens {
			u = u.Append(tok)
		}
		out[i] = u
	}
	return out
}

func containsURI(stack []uri.URI, u uri.URI) bool {
	for _, s := range stack {
		if s.Key() == u.Key() {
			return true
		}
	}
	return false
}

func typeSet(raw any) (map[string]bool, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case string:
		return map[string]bool{v: true}, nil
	case []any:
		out := map[string]bool{}
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("jsonschema: type array must contain only strings, got %#v", item)
			}
			out[s] = true
		}
		return out, nil
	default:
		return nil, fmt.Errorf("jsonschema: invalid `type` value %#v", raw)
	}
}

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
	case interface{ Float64() (float64, error) }:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

func floatPtr(v any) *float64 {
	if v == nil {
		return nil
	}
	f, ok := toFloat64(v)
	if !ok {
		return nil
	}
	return &f
}

func intPtr(v any) (*int, bool) {
	if v == nil {
		return nil, false
	}
	f, ok := toFloat64(v)
	if !ok {
		return nil, false
	}
	i := int(f)
	return &i, true
}

func stringSlice(raw []any) ([]string, error) {
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("jsonschema: expected a string, got %#v", item)
		}
		out = append(out, s)
	}
	return out, nil
}

func sortedKeys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
