// Package herr defines the error-reporting vocabulary shared by the schema
// compiler and the validation engine: error kinds, the Issue value they are
// reported as, and the Handler sink contract.
package herr

import (
	"fmt"
	"strings"
)

// Kind enumerates the validation-time error kinds a node can report. Build-time
// failures (duplicate schema, missing loader, bad pattern) are plain Go errors
// returned from Compile, not Kind values, per the propagation policy: build
// errors are fatal, validation errors are delivered to a Handler.
type Kind string

const (
	UnresolvedRef       Kind = "unresolved_ref"
	FormatWithoutChecker Kind = "format_without_checker"
	UnexpectedType      Kind = "unexpected_type"
	EnumMismatch        Kind = "enum_mismatch"
	ConstMismatch       Kind = "const_mismatch"
	FalseSchema         Kind = "false_schema"
	AllOfFailure        Kind = "all_of_failure"
	AnyOfFailure        Kind = "any_of_failure"
	OneOfNone           Kind = "one_of_none"
	OneOfMultiple       Kind = "one_of_multiple"
	NotFailure          Kind = "not_failure"
	StringTooShort      Kind = "string_too_short"
	StringTooLong       Kind = "string_too_long"
	PatternMismatch     Kind = "pattern_mismatch"
	FormatViolation     Kind = "format_violation"
	OutOfBounds         Kind = "out_of_bounds"
	NotMultipleOf       Kind = "not_multiple_of"
	TooFewItems         Kind = "too_few_items"
	TooManyItems        Kind = "too_many_items"
	NotUnique           Kind = "not_unique"
	ContainsNothing     Kind = "contains_nothing"
	TooFewProperties    Kind = "too_few_properties"
	TooManyProperties   Kind = "too_many_properties"
	MissingRequired     Kind = "missing_required"
	PropertyNameInvalid Kind = "property_name_invalid"
)

// Issue is a single validation failure: where (Path, a JSON Pointer into the
// instance), what kind, and a human message.
type Issue struct {
	Path     string
	Instance any
	Kind     Kind
	Message  string
}

// Issues is a collection of Issue that implements error.
type Issues []Issue

func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := len(iss)
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(b, "%s at %s", iss[i].Kind, iss[i].Path)
	}
	if len(iss) > lim {
		fmt.Fprintf(b, "; ... (total %d)", len(iss))
	}
	return b.String()
}

// Handler receives validation issues during a traversal. Composite
// validators (not, oneOf/anyOf, contains, if) use a private Handler of
// their own ("fresh" in the spec's vocabulary) so trial validations never
// leak into the caller's stream.
type Handler interface {
	Error(path string, instance any, kind Kind, message string)
	// Failed reports whether Error has been called at least once. The engine
	// treats a Handler that begins refusing further work (e.g. by panicking
	// inside Error, the "throwing" variant) as cancellation and unwinds
	// without further traversal; Failed itself must never panic.
	Failed() bool
}

// Collecting is the default Handler: it accumulates every Issue and never
// cancels traversal.
type Collecting struct {
	Issues Issues
}

func NewCollecting() *Collecting { return &Collecting{} }

func (c *Collecting) Error(path string, instance any, kind Kind, message string) {
	c.Issues = append(c.Issues, Issue{Path: path, Instance: instance, Kind: kind, Message: message})
}

func (c *Collecting) Failed() bool { return len(c.Issues) > 0 }

// Counting is the "fresh" scratch Handler used internally by not/oneOf/anyOf/
// contains/if to trial-run a sub-schema without surfacing its issues. It
// tracks only whether anything failed and, for diagnostics, the first Issue.
type Counting struct {
	count int
	first *Issue
}

func NewCounting() *Counting { return &Counting{} }

func (c *Counting) Error(path string, instance any, kind Kind, message string) {
	c.count++
	if c.first == nil {
		c.first = &Issue{Path: path, Instance: instance, Kind: kind, Message: message}
	}
}

func (c *Counting) Failed() bool   { return c.count > 0 }
func (c *Counting) Count() int     { return c.count }
func (c *Counting) First() *Issue  { return c.first }

// Throwing turns the first reported Issue into a panic carrying Issues{that
// one issue}, implementing the spec's "fail fast via exception" handler
// variant. Schema.Validate never uses it; the caller of
// Schema.ValidateWithHandler recovers the panic (the CLI's --fail-fast path
// does this).
type Throwing struct{}

func NewThrowing() *Throwing { return &Throwing{} }

func (Throwing) Error(path string, instance any, kind Kind, message string) {
	panic(Issues{{Path: path, Instance: instance, Kind: kind, Message: message}})
}

func (Throwing) Failed() bool { return false }
