package jsonschema

import (
	"github.com/reoring/jsonschema/internal/herr"
	"github.com/reoring/jsonschema/internal/node"
	"github.com/reoring/jsonschema/internal/uri"
)

// Schema is a compiled validator. It is safe for concurrent use by
// multiple goroutines: compilation mutates the underlying registry, but a
// returned Schema's node tree is never mutated again once Compile returns.
type Schema struct {
	root node.Node
}

// Validate runs instance against the schema, collecting every Issue. It
// returns nil if instance is valid, or an Issues error otherwise — use
// errors.As to recover the individual Issue values.
func (s *Schema) Validate(instance any) error {
	h := herr.NewCollecting()
	s.root.Validate(instance, uri.Pointer(nil), h)
	if len(h.Issues) == 0 {
		return nil
	}
	return h.Issues
}

// ValidateWithHandler runs instance against the schema, delivering every
// Issue to h instead of collecting them. Use NewThrowingHandler (errors.go)
// to fail fast on the first Issue, recovering its panic at the call site.
func (s *Schema) ValidateWithHandler(instance any, h ErrorHandler) {
	s.root.Validate(instance, uri.Pointer(nil), h)
}
