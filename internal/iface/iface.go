// Package iface holds the two injected-dependency contracts shared across
// the compiler, resolver, and validation engine, kept dependency-free so
// every internal package can import them without risking a cycle.
package iface

import "context"

// Loader fetches the raw schema document at location, the string form of a
// registry.File's address (no fragment — a loader always returns a whole
// document). It is invoked lazily, only when an external $ref is
// encountered, and may be called concurrently for distinct locations within
// one resolver pass.
type Loader interface {
	Load(ctx context.Context, location string) (any, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(ctx context.Context, location string) (any, error)

func (f LoaderFunc) Load(ctx context.Context, location string) (any, error) { return f(ctx, location) }

// FormatChecker validates a string value against a named format (e.g.
// "date-time", "email"). It is invoked only when a schema carries a format
// keyword.
type FormatChecker interface {
	CheckFormat(name, value string) error
}

// FormatCheckerFunc adapts a function to FormatChecker.
type FormatCheckerFunc func(name, value string) error

func (f FormatCheckerFunc) CheckFormat(name, value string) error { return f(name, value) }
