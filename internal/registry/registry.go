// Package registry implements the document registry: per-location maps of
// resolved schemas, unresolved reference placeholders, and unknown
// keywords retained as potential future $ref targets.
//
// Grounded on kubeopenapi/refs.go's $ref-expansion approach (from the
// teacher's kubeopenapi subpackage) generalized from "expand local $defs
// inline" to the full spec: a persistent registry keyed by (location,
// pointer), forward-reference back-patching, and lazy promotion of
// unknown keywords into compiled nodes on demand.
package registry

import (
	"fmt"
	"sync"

	"github.com/reoring/jsonschema/internal/node"
	"github.com/reoring/jsonschema/internal/uri"
)

// ErrDuplicateSchema is returned by Insert when a schema already occupies
// the target (location, pointer).
var ErrDuplicateSchema = fmt.Errorf("jsonschema: duplicate schema")

// File is one location's registry entry.
type File struct {
	Location        string
	Schemas         map[string]node.Node // pointer string -> compiled node
	Unresolved      map[string][]*node.Ref
	UnknownKeywords map[string]any // pointer string -> raw schema fragment
}

func newFile(location string) *File {
	return &File{
		Location:        location,
		Schemas:         map[string]node.Node{},
		Unresolved:      map[string][]*node.Ref{},
		UnknownKeywords: map[string]any{},
	}
}

// Registry is the sealed-after-build shared mutable state of a compiled
// validator: every document's schema/unresolved/unknown-keyword maps.
type Registry struct {
	mu    sync.Mutex
	files map[string]*File
}

func New() *Registry {
	return &Registry{files: map[string]*File{}}
}

// GetOrCreateFile returns the (idempotently created) entry for location.
func (r *Registry) GetOrCreateFile(location string) *File {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.getOrCreateFileLocked(location)
}

func (r *Registry) getOrCreateFileLocked(location string) *File {
	f, ok := r.files[location]
	if !ok {
		f = newFile(location)
		r.files[location] = f
	}
	return f
}

// Locations returns every location the registry currently knows about,
// loaded or not.
func (r *Registry) Locations() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.files))
	for loc := range r.files {
		out = append(out, loc)
	}
	return out
}

// IsUnloaded reports whether location has never had a schema inserted into
// it — the resolver's signal that it must invoke the loader.
func (r *Registry) IsUnloaded(location string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.files[location]
	return !ok || len(f.Schemas) == 0
}

// UnresolvedCount reports how many dangling reference placeholders remain
// across the whole registry, for diagnostics.
func (r *Registry) UnresolvedCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, f := range r.files {
		for _, ps := range f.Unresolved {
			n += len(ps)
		}
	}
	return n
}

// Insert registers node at u.Pointer() within u.Location()'s file. On
// conflict with an existing schema entry it fails with ErrDuplicateSchema.
// If placeholders were already waiting at that pointer (a forward
// reference), they are bound to node and the unresolved entry is removed —
// this is the back-patch point that makes forward $refs work.
func (r *Registry) Insert(u uri.URI, n node.Node) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	f := r.getOrCreateFileLocked(u.Location())
	key := u.Pointer().String()
	if _, exists := f.Schemas[key]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateSchema, u.String())
	}
	f.Schemas[key] = n
	if placeholders, ok := f.Unresolved[key]; ok {
		for _, p := range placeholders {
			p.Bind(n)
		}
		delete(f.Unresolved, key)
	}
	return nil
}

// CompileFunc compiles a raw schema-shaped fragment into a node, used to
// promote an unknown keyword the moment a $ref targets it. Supplied by the
// compiler package to avoid a registry -> compile import cycle. It may insert
// the node at `at` itself (the compiler's does); the registry then skips its
// own Insert.
type CompileFunc func(raw any, at uri.URI) (node.Node, error)

// GetOrCreateRef implements get_or_create_ref: return the existing schema
// at u's pointer if one exists; else compile-and-return an unknown-keyword
// fragment stashed there; else return a (possibly freshly created,
// possibly already-pending) reference placeholder.
func (r *Registry) GetOrCreateRef(u uri.URI, compile CompileFunc) (node.Node, error) {
	r.mu.Lock()
	f := r.getOrCreateFileLocked(u.Location())
	key := u.Pointer().String()
	if n, ok := f.Schemas[key]; ok {
		r.mu.Unlock()
		return n, nil
	}
	raw, hasRaw := f.UnknownKeywords[key]
	if hasRaw {
		delete(f.UnknownKeywords, key)
	}
	if hasRaw {
		r.mu.Unlock()
		n, err := compile(raw, u)
		if err != nil {
			return nil, err
		}
		r.mu.Lock()
		_, inserted := f.Schemas[key]
		r.mu.Unlock()
		if !inserted {
			if err := r.Insert(u, n); err != nil {
				return nil, err
			}
		}
		return n, nil
	}
	if existing := f.Unresolved[key]; len(existing) > 0 {
		ref := existing[0]
		r.mu.Unlock()
		return ref, nil
	}
	ref := node.NewRef(u.String())
	f.Unresolved[key] = append(f.Unresolved[key], ref)
	r.mu.Unlock()
	return ref, nil
}

// InsertUnknownKeyword implements insert_unknown_keyword: register raw at
// u.Append(key). If that pointer is already awaited by a pending
// placeholder, raw is compiled immediately so the reference binds now;
// otherwise it is stashed as a potential future $ref target.
func (r *Registry) InsertUnknownKeyword(u uri.URI, key string, raw any, compile CompileFunc) error {
	target := u.Append(key)
	r.mu.Lock()
	f := r.getOrCreateFileLocked(target.Location())
	pkey := target.Pointer().String()
	awaited := len(f.Unresolved[pkey]) > 0
	if !awaited {
		f.UnknownKeywords[pkey] = raw
		r.mu.Unlock()
		return nil
	}
	r.mu.Unlock()
	n, err := compile(raw, target)
	if err != nil {
		return err
	}
	r.mu.Lock()
	_, inserted := f.Schemas[pkey]
	r.mu.Unlock()
	if inserted {
		return nil
	}
	return r.Insert(target, n)
}
