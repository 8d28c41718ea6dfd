package jsondoc_test

import (
	"testing"

	"github.com/reoring/jsonschema/internal/jsondoc"
)

func TestDecode_JSON(t *testing.T) {
	doc, err := jsondoc.Decode([]byte(`{"type": "object", "minProperties": 1}`))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	m, ok := doc.(map[string]any)
	if !ok {
		t.Fatalf("expected a map[string]any, got %T", doc)
	}
	if m["type"] != "object" {
		t.Fatalf("unexpected type field: %v", m["type"])
	}
	if n, ok := m["minProperties"].(float64); !ok || n != 1 {
		t.Fatalf("expected minProperties to decode as float64(1), got %#v", m["minProperties"])
	}
}

func TestDecode_YAML(t *testing.T) {
	doc, err := jsondoc.Decode([]byte("type: object\nminProperties: 1\nproperties:\n  name:\n    type: string\n"))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	m, ok := doc.(map[string]any)
	if !ok {
		t.Fatalf("expected a map[string]any, got %T", doc)
	}
	if n, ok := m["minProperties"].(float64); !ok || n != 1 {
		t.Fatalf("expected minProperties to normalize to float64(1), got %#v", m["minProperties"])
	}
	props, ok := m["properties"].(map[string]any)
	if !ok {
		t.Fatalf("expected properties to normalize to map[string]any, got %T", m["properties"])
	}
	if _, ok := props["name"].(map[string]any); !ok {
		t.Fatalf("expected nested mapping to normalize recursively, got %#v", props["name"])
	}
}

func TestDecode_JSONScalar(t *testing.T) {
	cases := []struct {
		input string
		want  any
	}{
		{"42", float64(42)},
		{"-3.5", float64(-3.5)},
		{"true", true},
		{"false", false},
		{"null", nil},
	}
	for _, c := range cases {
		doc, err := jsondoc.Decode([]byte(c.input))
		if err != nil {
			t.Fatalf("Decode(%q) failed: %v", c.input, err)
		}
		if doc != c.want {
			t.Fatalf("Decode(%q) = %#v, want %#v", c.input, doc, c.want)
		}
	}
}

func TestDecode_YAMLArray(t *testing.T) {
	doc, err := jsondoc.Decode([]byte("- 1\n- 2\n- three\n"))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	arr, ok := doc.([]any)
	if !ok || len(arr) != 3 {
		t.Fatalf("expected a 3-element []any, got %#v", doc)
	}
	if arr[0].(float64) != 1 {
		t.Fatalf("expected the first element to normalize to float64(1), got %#v", arr[0])
	}
}
