package jsonschema_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/reoring/jsonschema"
)

func compileSchema(t *testing.T, schema any) *jsonschema.Schema {
	t.Helper()
	s, err := jsonschema.NewCompiler().Compile(context.Background(), "mem://test", schema)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	return s
}

func issueKinds(t *testing.T, err error) []jsonschema.ErrorKind {
	t.Helper()
	if err == nil {
		return nil
	}
	issues, ok := err.(jsonschema.Issues)
	if !ok {
		t.Fatalf("expected jsonschema.Issues, got %T: %v", err, err)
	}
	kinds := make([]jsonschema.ErrorKind, len(issues))
	for i, iss := range issues {
		kinds[i] = iss.Kind
	}
	return kinds
}

// Scenario 1 from the testable-properties table: bounded integer.
func TestScenario_BoundedInteger(t *testing.T) {
	s := compileSchema(t, map[string]any{"type": "integer", "minimum": 0.0, "maximum": 10.0})

	if err := s.Validate(5.0); err != nil {
		t.Fatalf("expected PASS, got %v", err)
	}
	if kinds := issueKinds(t, s.Validate(-1.0)); !cmp.Equal(kinds, []jsonschema.ErrorKind{jsonschema.OutOfBounds}) {
		t.Fatalf("expected OutOfBounds, got %v", kinds)
	}
	if kinds := issueKinds(t, s.Validate(10.5)); !cmp.Equal(kinds, []jsonschema.ErrorKind{jsonschema.UnexpectedType}) {
		t.Fatalf("expected UnexpectedType, got %v", kinds)
	}
}

// Scenario 2: string length/pattern, with code-point-aware length counting.
func TestScenario_StringConstraints(t *testing.T) {
	s := compileSchema(t, map[string]any{
		"type": "string", "minLength": 2.0, "maxLength": 4.0, "pattern": "^a",
	})

	if err := s.Validate("ab"); err != nil {
		t.Fatalf("expected PASS, got %v", err)
	}
	if kinds := issueKinds(t, s.Validate("a")); !cmp.Equal(kinds, []jsonschema.ErrorKind{jsonschema.StringTooShort}) {
		t.Fatalf("expected StringTooShort, got %v", kinds)
	}
	if kinds := issueKinds(t, s.Validate("bbb")); !cmp.Equal(kinds, []jsonschema.ErrorKind{jsonschema.PatternMismatch}) {
		t.Fatalf("expected PatternMismatch, got %v", kinds)
	}
	// "ä" is one code point (two UTF-8 bytes) and does not start with "a", so
	// both the length and the pattern constraint report.
	if kinds := issueKinds(t, s.Validate("ä")); !cmp.Equal(kinds, []jsonschema.ErrorKind{jsonschema.StringTooShort, jsonschema.PatternMismatch}) {
		t.Fatalf("expected StringTooShort for a single code point, then PatternMismatch, got %v", kinds)
	}
}

// Scenario 3: oneOf where integer subsumes number, so both branches match.
func TestScenario_OneOfIntegerSubsumesNumber(t *testing.T) {
	s := compileSchema(t, map[string]any{
		"oneOf": []any{
			map[string]any{"type": "integer"},
			map[string]any{"type": "number"},
		},
	})
	if kinds := issueKinds(t, s.Validate(1.0)); !cmp.Equal(kinds, []jsonschema.ErrorKind{jsonschema.OneOfMultiple}) {
		t.Fatalf("expected OneOfMultiple, got %v", kinds)
	}
}

// Scenario 4: required + additionalProperties:false.
func TestScenario_RequiredAndAdditionalProperties(t *testing.T) {
	s := compileSchema(t, map[string]any{
		"type":     "object",
		"required": []any{"a"},
		"properties": map[string]any{
			"a": map[string]any{"type": "integer"},
		},
		"additionalProperties": false,
	})

	if err := s.Validate(map[string]any{"a": 1.0}); err != nil {
		t.Fatalf("expected PASS, got %v", err)
	}
	if kinds := issueKinds(t, s.Validate(map[string]any{})); !cmp.Equal(kinds, []jsonschema.ErrorKind{jsonschema.MissingRequired}) {
		t.Fatalf("expected MissingRequired, got %v", kinds)
	}
	if kinds := issueKinds(t, s.Validate(map[string]any{"a": 1.0, "b": 2.0})); !cmp.Equal(kinds, []jsonschema.ErrorKind{jsonschema.FalseSchema}) {
		t.Fatalf("expected FalseSchema on the additional property, got %v", kinds)
	}
}

// Scenario 5: positional items with additionalItems:false.
func TestScenario_PositionalItems(t *testing.T) {
	s := compileSchema(t, map[string]any{
		"type": "array",
		"items": []any{
			map[string]any{"type": "integer"},
			map[string]any{"type": "string"},
		},
		"additionalItems": false,
	})

	if err := s.Validate([]any{1.0, "x"}); err != nil {
		t.Fatalf("expected PASS, got %v", err)
	}
	if kinds := issueKinds(t, s.Validate([]any{1.0, "x", 0.0})); !cmp.Equal(kinds, []jsonschema.ErrorKind{jsonschema.FalseSchema}) {
		t.Fatalf("expected FalseSchema on the extra item, got %v", kinds)
	}
}

// Scenario 6: forward $ref to a definition that appears later in the document.
func TestScenario_ForwardReference(t *testing.T) {
	s := compileSchema(t, map[string]any{
		"properties": map[string]any{
			"p": map[string]any{"$ref": "#/definitions/x"},
		},
		"definitions": map[string]any{
			"x": map[string]any{"type": "boolean"},
		},
	})

	if err := s.Validate(map[string]any{"p": true}); err != nil {
		t.Fatalf("expected PASS, got %v", err)
	}
	if kinds := issueKinds(t, s.Validate(map[string]any{"p": 1.0})); !cmp.Equal(kinds, []jsonschema.ErrorKind{jsonschema.UnexpectedType}) {
		t.Fatalf("expected UnexpectedType, got %v", kinds)
	}
}

func TestProperty_Idempotence(t *testing.T) {
	s := compileSchema(t, map[string]any{"type": "string", "minLength": 5.0})
	first := s.Validate("ab")
	second := s.Validate("ab")
	if !cmp.Equal(issueKinds(t, first), issueKinds(t, second)) {
		t.Fatalf("expected identical error sequences across repeated validations")
	}
}

func TestProperty_AllOfPassesIffBothPass(t *testing.T) {
	s := compileSchema(t, map[string]any{
		"allOf": []any{
			map[string]any{"minimum": 0.0},
			map[string]any{"maximum": 10.0},
		},
	})
	if err := s.Validate(5.0); err != nil {
		t.Fatalf("expected PASS when both branches pass, got %v", err)
	}
	if err := s.Validate(-1.0); err == nil {
		t.Fatalf("expected failure when one branch fails")
	}
	if err := s.Validate(20.0); err == nil {
		t.Fatalf("expected failure when one branch fails")
	}
}

func TestProperty_DoubleNotIsEquivalent(t *testing.T) {
	base := map[string]any{"type": "string", "minLength": 3.0}
	doubled := map[string]any{"not": map[string]any{"not": base}}

	sBase := compileSchema(t, base)
	sDoubled := compileSchema(t, doubled)

	for _, instance := range []any{"ab", "abcd", 5.0} {
		baseErr := sBase.Validate(instance)
		doubledErr := sDoubled.Validate(instance)
		if (baseErr == nil) != (doubledErr == nil) {
			t.Fatalf("not(not(S)) should pass/fail exactly like S for %#v: base=%v doubled=%v", instance, baseErr, doubledErr)
		}
	}
}

func TestProperty_ForwardReferenceEquivalence(t *testing.T) {
	forward := map[string]any{
		"properties":  map[string]any{"p": map[string]any{"$ref": "#/definitions/x"}},
		"definitions": map[string]any{"x": map[string]any{"type": "boolean"}},
	}
	reordered := map[string]any{
		"definitions": map[string]any{"x": map[string]any{"type": "boolean"}},
		"properties":  map[string]any{"p": map[string]any{"$ref": "#/definitions/x"}},
	}
	sFwd := compileSchema(t, forward)
	sReordered := compileSchema(t, reordered)

	for _, instance := range []any{map[string]any{"p": true}, map[string]any{"p": 1.0}} {
		if (sFwd.Validate(instance) == nil) != (sReordered.Validate(instance) == nil) {
			t.Fatalf("expected forward and reordered documents to validate %#v equivalently", instance)
		}
	}
}

func TestFormatWithoutChecker(t *testing.T) {
	s := compileSchema(t, map[string]any{"type": "string", "format": "date-time"})
	if kinds := issueKinds(t, s.Validate("not-a-date")); !cmp.Equal(kinds, []jsonschema.ErrorKind{jsonschema.FormatWithoutChecker}) {
		t.Fatalf("expected FormatWithoutChecker with no checker configured, got %v", kinds)
	}
}
