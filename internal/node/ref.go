package node

import (
	"sync"

	"github.com/reoring/jsonschema/internal/herr"
	"github.com/reoring/jsonschema/internal/uri"
)

// Ref is the reference-placeholder node: created unbound while a $ref target
// is still unknown, bound exactly once when the target is later inserted
// into the registry (possibly a forward reference resolved after the
// placeholder's creation). Safe to read from multiple concurrent
// validations once bound, since binding is a single atomic write guarded by
// mu and never repeated.
type Ref struct {
	id string // debug identifier: the URI this placeholder was requested for

	mu     sync.Mutex
	bound  bool
	target Node
}

// NewRef creates an unbound placeholder for id (typically a URI.String()).
func NewRef(id string) *Ref { return &Ref{id: id} }

// Bind sets the placeholder's target. Calling Bind a second time is an
// internal invariant violation (the registry never re-inserts at a bound
// pointer) and panics rather than silently rebinding.
func (r *Ref) Bind(target Node) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.bound {
		panic("jsonschema: internal error: reference already bound: " + r.id)
	}
	r.target = target
	r.bound = true
}

// Bound reports whether Bind has run.
func (r *Ref) Bound() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bound
}

func (r *Ref) Validate(instance any, path uri.Pointer, h herr.Handler) {
	r.mu.Lock()
	target, bound := r.target, r.bound
	r.mu.Unlock()
	if !bound {
		h.Error(path.String(), instance, herr.UnresolvedRef, "unresolved reference: "+r.id)
		return
	}
	target.Validate(instance, path, h)
}
