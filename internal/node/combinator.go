package node

import (
	"github.com/reoring/jsonschema/internal/herr"
	"github.com/reoring/jsonschema/internal/uri"
)

// Mode selects allOf/anyOf/oneOf semantics for Combination.
type Mode int

const (
	AllOf Mode = iota
	AnyOf
	OneOf
)

// Combination implements allOf/anyOf/oneOf over an ordered list of
// sub-schemas, each trialed with a fresh Counting handler so a failing
// branch never leaks Issues into the caller's handler.
type Combination struct {
	Mode Mode
	Subs []Node
}

func (c *Combination) Validate(instance any, path uri.Pointer, h herr.Handler) {
	switch c.Mode {
	case AllOf:
		for _, s := range c.Subs {
			fresh := herr.NewCounting()
			s.Validate(instance, path, fresh)
			if fresh.Failed() {
				h.Error(path.String(), instance, herr.AllOfFailure, "instance does not satisfy every schema in allOf")
				return
			}
		}
	case AnyOf:
		for _, s := range c.Subs {
			fresh := herr.NewCounting()
			s.Validate(instance, path, fresh)
			if !fresh.Failed() {
				return
			}
		}
		h.Error(path.String(), instance, herr.AnyOfFailure, "instance does not satisfy any schema in anyOf")
	case OneOf:
		passes := 0
		for _, s := range c.Subs {
			fresh := herr.NewCounting()
			s.Validate(instance, path, fresh)
			if !fresh.Failed() {
				passes++
				if passes > 1 {
					h.Error(path.String(), instance, herr.OneOfMultiple, "instance satisfies more than one schema in oneOf")
					return
				}
			}
		}
		if passes == 0 {
			h.Error(path.String(), instance, herr.OneOfNone, "instance satisfies none of the schemas in oneOf")
		}
	}
}

// Not implements the `not` keyword: the sub-schema is trialed with a fresh
// handler and the node passes iff the sub-schema failed.
type Not struct {
	Sub Node
}

func (n *Not) Validate(instance any, path uri.Pointer, h herr.Handler) {
	fresh := herr.NewCounting()
	n.Sub.Validate(instance, path, fresh)
	if !fresh.Failed() {
		h.Error(path.String(), instance, herr.NotFailure, "instance matches a schema it must not (not)")
	}
}

// IfThenElse implements the `if`/`then`/`else` triad. If is always
// evaluated with a fresh handler; Then/Else may be nil when the keyword was
// absent, in which case that branch is simply skipped.
type IfThenElse struct {
	If   Node
	Then Node
	Else Node
}

func (c *IfThenElse) Validate(instance any, path uri.Pointer, h herr.Handler) {
	fresh := herr.NewCounting()
	c.If.Validate(instance, path, fresh)
	if !fresh.Failed() {
		if c.Then != nil {
			c.Then.Validate(instance, path, h)
		}
		return
	}
	if c.Else != nil {
		c.Else.Validate(instance, path, h)
	}
}
