package node

import (
	"fmt"
	"sort"

	"github.com/reoring/jsonschema/internal/herr"
	"github.com/reoring/jsonschema/internal/uri"
)

// Type is the type-schema node: the root of a keyword-bearing schema. It
// holds up to one type-specific validator per instance type plus the
// optional enum/const/not/allOf/anyOf/oneOf/if-then-else sub-nodes that
// apply regardless of which type matched.
type Type struct {
	// Types is the declared/implicit type set. An empty map means the
	// `type` keyword was absent: every instance type is allowed and a
	// sub-validator was built for each.
	Types map[string]bool

	Numeric *Numeric
	Str     *String
	Obj     *Object
	Arr     *Array

	HasEnum  bool
	Enum     []any
	HasConst bool
	Const    any

	Not        Node
	AllOf      Node
	AnyOf      Node
	OneOf      Node
	IfThenElse Node
}

func (t *Type) allows(tag string) bool {
	if len(t.Types) == 0 {
		return true
	}
	return t.Types[tag]
}

func (t *Type) typeList() []string {
	if len(t.Types) == 0 {
		return []string{"null", "boolean", "string", "integer", "number", "array", "object"}
	}
	out := make([]string, 0, len(t.Types))
	for k := range t.Types {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func (t *Type) Validate(instance any, path uri.Pointer, h herr.Handler) {
	tags, num, isNum := classify(instance)
	if tags == nil {
		h.Error(path.String(), instance, herr.UnexpectedType, "instance has an unrecognized type")
		return
	}
	matched := ""
	for _, tag := range tags {
		if t.allows(tag) {
			matched = tag
			if tag == "integer" {
				// prefer the more specific tag when both apply
				break
			}
		}
	}
	if matched == "" {
		h.Error(path.String(), instance, herr.UnexpectedType, fmt.Sprintf("instance type not allowed by schema (expected one of %v)", t.typeList()))
		return
	}

	switch {
	case isNum:
		t.Numeric.ValidateValue(num, instance, path, h)
	case matched == "string":
		if t.Str != nil {
			t.Str.Validate(instance, path, h)
		}
	case matched == "array":
		if t.Arr != nil {
			t.Arr.Validate(instance, path, h)
		}
	case matched == "object":
		if t.Obj != nil {
			t.Obj.Validate(instance, path, h)
		}
	}

	if t.HasEnum {
		found := false
		for _, e := range t.Enum {
			if deepEqual(e, instance) {
				found = true
				break
			}
		}
		if !found {
			h.Error(path.String(), instance, herr.EnumMismatch, "instance is not one of the enumerated values")
		}
	}
	if t.HasConst {
		if !deepEqual(t.Const, instance) {
			h.Error(path.String(), instance, herr.ConstMismatch, "instance does not equal the const value")
		}
	}
	if t.Not != nil {
		t.Not.Validate(instance, path, h)
	}
	if t.AllOf != nil {
		t.AllOf.Validate(instance, path, h)
	}
	if t.AnyOf != nil {
		t.AnyOf.Validate(instance, path, h)
	}
	if t.OneOf != nil {
		t.OneOf.Validate(instance, path, h)
	}
	if t.IfThenElse != nil {
		t.IfThenElse.Validate(instance, path, h)
	}
}
