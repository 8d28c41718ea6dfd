package registry_test

import (
	"errors"
	"testing"

	"github.com/reoring/jsonschema/internal/node"
	"github.com/reoring/jsonschema/internal/registry"
	"github.com/reoring/jsonschema/internal/uri"
)

func noopCompile(raw any, at uri.URI) (node.Node, error) {
	return node.Boolean(true), nil
}

func TestInsert_DuplicateFails(t *testing.T) {
	r := registry.New()
	u := uri.New("mem://a", nil)
	if err := r.Insert(u, node.Boolean(true)); err != nil {
		t.Fatalf("first insert should succeed: %v", err)
	}
	err := r.Insert(u, node.Boolean(false))
	if !errors.Is(err, registry.ErrDuplicateSchema) {
		t.Fatalf("expected ErrDuplicateSchema, got %v", err)
	}
}

func TestGetOrCreateRef_BackPatchesOnInsert(t *testing.T) {
	r := registry.New()
	target := uri.New("mem://b", uri.ParsePointer("/definitions/x"))

	ref, err := r.GetOrCreateRef(target, noopCompile)
	if err != nil {
		t.Fatalf("GetOrCreateRef failed: %v", err)
	}
	rf, ok := ref.(*node.Ref)
	if !ok {
		t.Fatalf("expected a *node.Ref placeholder, got %T", ref)
	}
	if rf.Bound() {
		t.Fatalf("expected the placeholder to start unbound")
	}

	if err := r.Insert(target, node.Boolean(true)); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if !rf.Bound() {
		t.Fatalf("expected Insert to back-patch the pending placeholder")
	}
}

func TestGetOrCreateRef_ReusesPendingPlaceholder(t *testing.T) {
	r := registry.New()
	target := uri.New("mem://c", uri.ParsePointer("/x"))

	first, err := r.GetOrCreateRef(target, noopCompile)
	if err != nil {
		t.Fatalf("GetOrCreateRef failed: %v", err)
	}
	second, err := r.GetOrCreateRef(target, noopCompile)
	if err != nil {
		t.Fatalf("GetOrCreateRef failed: %v", err)
	}
	if first != second {
		t.Fatalf("expected the same placeholder to be returned for repeated requests")
	}
}

func TestInsertUnknownKeyword_PromotesWhenAwaited(t *testing.T) {
	r := registry.New()
	base := uri.New("mem://d", nil)
	target := base.Append("extra")

	ref, err := r.GetOrCreateRef(target, noopCompile)
	if err != nil {
		t.Fatalf("GetOrCreateRef failed: %v", err)
	}
	rf := ref.(*node.Ref)

	if err := r.InsertUnknownKeyword(base, "extra", map[string]any{"type": "string"}, noopCompile); err != nil {
		t.Fatalf("InsertUnknownKeyword failed: %v", err)
	}
	if !rf.Bound() {
		t.Fatalf("expected InsertUnknownKeyword to compile and bind the awaited fragment")
	}
}

func TestInsertUnknownKeyword_StashedWhenNotAwaited(t *testing.T) {
	r := registry.New()
	base := uri.New("mem://e", nil)
	if err := r.InsertUnknownKeyword(base, "extra", map[string]any{"type": "string"}, noopCompile); err != nil {
		t.Fatalf("InsertUnknownKeyword failed: %v", err)
	}
	// GetOrCreateRef should now find and compile the stashed fragment rather
	// than creating a placeholder.
	n, err := r.GetOrCreateRef(base.Append("extra"), noopCompile)
	if err != nil {
		t.Fatalf("GetOrCreateRef failed: %v", err)
	}
	if _, isPlaceholder := n.(*node.Ref); isPlaceholder {
		t.Fatalf("expected the stashed fragment to be compiled directly, not a placeholder")
	}
}

func TestIsUnloaded(t *testing.T) {
	r := registry.New()
	r.GetOrCreateFile("mem://f")
	if !r.IsUnloaded("mem://f") {
		t.Fatalf("a file with no schemas should be reported unloaded")
	}
	if err := r.Insert(uri.New("mem://f", nil), node.Boolean(true)); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if r.IsUnloaded("mem://f") {
		t.Fatalf("a file with a schema should be reported loaded")
	}
	if !r.IsUnloaded("mem://never-seen") {
		t.Fatalf("an unknown location should be reported unloaded")
	}
}
