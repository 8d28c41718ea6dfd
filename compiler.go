// Package jsonschema compiles JSON Schema draft-07 documents into
// validators and runs them against decoded JSON/YAML instances.
//
// A minimal use:
//
//	c := jsonschema.NewCompiler()
//	schema, err := c.Compile(ctx, "schema.json", rawSchemaDoc)
//	if err != nil { ... }
//	if err := schema.Validate(instance); err != nil {
//	        var issues jsonschema.Issues
//	        errors.As(err, &issues)
//	}
//
// Grounded on the teacher's top-level api.go (NewCompiler/Compile entry
// points wrapping an internal pipeline) generalized from the teacher's
// typed-schema DSL to this package's declarative, dynamically-typed
// validator compiler.
package jsonschema

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/reoring/jsonschema/internal/compile"
	"github.com/reoring/jsonschema/internal/iface"
	"github.com/reoring/jsonschema/internal/jsondoc"
	"github.com/reoring/jsonschema/internal/registry"
	"github.com/reoring/jsonschema/internal/resolve"
	"github.com/reoring/jsonschema/internal/telemetry"
	"github.com/reoring/jsonschema/internal/uri"
)

// Compiler compiles schema documents, resolving $ref across documents via
// an optional Loader. The zero value is not usable; construct with
// NewCompiler.
type Compiler struct {
	reg    *registry.Registry
	inner  *compile.Compiler
	loader iface.Loader
	log    zerolog.Logger
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithLoader installs the Loader used to fetch external $ref documents
// on demand. Without one, an external $ref fails with
// resolve.ErrExternalRefWithoutLoader the first time it is needed.
func WithLoader(l iface.Loader) Option {
	return func(c *Compiler) { c.loader = l }
}

// WithFormatChecker installs the checker consulted for every `format`
// keyword. Without one, schemas using `format` report FormatWithoutChecker
// at validation time rather than failing to compile.
func WithFormatChecker(fc iface.FormatChecker) Option {
	return func(c *Compiler) { c.inner = compile.New(c.reg, compile.Options{FormatChecker: fc}) }
}

// WithLogger installs a structured logger for compile/resolve diagnostics.
// Defaults to telemetry.Nop(), matching the teacher's "silent unless asked"
// logging stance.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Compiler) { c.log = l }
}

// NewCompiler constructs a Compiler with the given options applied in
// order; later options that touch the same field win.
func NewCompiler(opts ...Option) *Compiler {
	reg := registry.New()
	c := &Compiler{
		reg:   reg,
		inner: compile.New(reg, compile.Options{}),
		log:   telemetry.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile compiles raw (already decoded into Go values — map[string]any,
// []any, string, float64, bool, nil, or a top-level bool) as the document
// at location, resolving any $ref it contains (including forward
// references within the same document, and external references via the
// configured Loader), and returns the compiled Schema.
func (c *Compiler) Compile(ctx context.Context, location string, raw any) (*Schema, error) {
	base := uri.New(location, nil)
	root, err := c.inner.Compile(base, raw)
	if err != nil {
		return nil, err
	}

	compileLoaded := func(loc string, doc any) error {
		_, err := c.inner.Compile(uri.New(loc, nil), doc)
		return err
	}
	if err := resolve.Run(ctx, c.reg, c.loader, compileLoaded); err != nil {
		return nil, err
	}

	c.log.Debug().Str("location", location).Int("unresolved", c.reg.UnresolvedCount()).Msg("schema compiled")
	return &Schema{root: root}, nil
}

// CompileBytes decodes data as JSON or YAML (see internal/jsondoc) and
// compiles the result as the document at location.
func (c *Compiler) CompileBytes(ctx context.Context, location string, data []byte) (*Schema, error) {
	doc, err := jsondoc.Decode(data)
	if err != nil {
		return nil, err
	}
	return c.Compile(ctx, location, doc)
}

// MustCompile is like Compile but panics on error, for package-init-time
// use with schemas known to be valid.
func (c *Compiler) MustCompile(ctx context.Context, location string, raw any) *Schema {
	s, err := c.Compile(ctx, location, raw)
	if err != nil {
		panic(fmt.Sprintf("jsonschema: MustCompile(%s): %v", location, err))
	}
	return s
}
