// Package resolve implements the fixpoint reference-resolution loop: after
// an initial document is compiled, repeatedly load whatever locations the
// registry still has no schema for until a pass loads nothing new.
//
// Grounded on the teacher's andyballingall-style errgroup fan-out (each
// pass's loads are independent I/O, so they run concurrently) generalized
// from "load a batch of named validators" to "load a batch of schema
// documents discovered as unresolved $ref targets."
package resolve

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/reoring/jsonschema/internal/iface"
	"github.com/reoring/jsonschema/internal/registry"
	"github.com/reoring/jsonschema/internal/uri"
)

// ErrExternalRefWithoutLoader is returned when resolution needs to fetch a
// location the registry has never seen and no Loader was configured.
var ErrExternalRefWithoutLoader = fmt.Errorf("jsonschema: external $ref requires a Loader")

// Compile compiles a freshly loaded document at the given location into the
// registry; injected by the top-level Compiler to avoid a resolve -> compile
// import cycle.
type Compile func(location string, doc any) error

// Run drives the fixpoint loop: while any registry location IsUnloaded,
// load every such location concurrently (one goroutine per location, via
// errgroup) and compile what each returns, then check again. It stops when
// a pass finds nothing left to load.
func Run(ctx context.Context, reg *registry.Registry, loader iface.Loader, compile Compile) error {
	for {
		pending := pendingLocations(reg)
		if len(pending) == 0 {
			return nil
		}
		if loader == nil {
			return fmt.Errorf("%w: %s", ErrExternalRefWithoutLoader, pending[0])
		}

		g, gctx := errgroup.WithContext(ctx)
		docs := make([]any, len(pending))
		for i, loc := range pending {
			i, loc := i, loc
			g.Go(func() error {
				doc, err := loader.Load(gctx, loc)
				if err != nil {
					return fmt.Errorf("jsonschema: loading %s: %w", loc, err)
				}
				docs[i] = doc
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		for i, loc := range pending {
			if err := compile(loc, docs[i]); err != nil {
				return err
			}
		}
	}
}

func pendingLocations(reg *registry.Registry) []string {
	var out []string
	for _, loc := range reg.Locations() {
		if reg.IsUnloaded(loc) {
			out = append(out, loc)
		}
	}
	return out
}

// RootURI is a convenience for building the base URI a Compiler starts
// compiling a root document at.
func RootURI(location string) uri.URI { return uri.New(location, nil) }
