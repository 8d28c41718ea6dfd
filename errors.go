package jsonschema

import "github.com/reoring/jsonschema/internal/herr"

// Issue, Issues, ErrorKind, and ErrorHandler re-export the internal error
// vocabulary at the package's public surface so callers never need to
// import an internal package to type-assert a validation failure.
type (
	Issue        = herr.Issue
	Issues       = herr.Issues
	ErrorKind    = herr.Kind
	ErrorHandler = herr.Handler
)

// The ErrorKind constants, one per validation-time failure category;
// build-time failures (duplicate schema, missing loader) are returned as
// errors from Compile and have no ErrorKind.
const (
	UnresolvedRef        = herr.UnresolvedRef
	FormatWithoutChecker = herr.FormatWithoutChecker
	UnexpectedType       = herr.UnexpectedType
	EnumMismatch         = herr.EnumMismatch
	ConstMismatch        = herr.ConstMismatch
	FalseSchema          = herr.FalseSchema
	AllOfFailure         = herr.AllOfFailure
	AnyOfFailure         = herr.AnyOfFailure
	OneOfNone            = herr.OneOfNone
	OneOfMultiple        = herr.OneOfMultiple
	NotFailure           = herr.NotFailure
	StringTooShort       = herr.StringTooShort
	StringTooLong        = herr.StringTooLong
	PatternMismatch      = herr.PatternMismatch
	FormatViolation      = herr.FormatViolation
	OutOfBounds          = herr.OutOfBounds
	NotMultipleOf        = herr.NotMultipleOf
	TooFewItems          = herr.TooFewItems
	TooManyItems         = herr.TooManyItems
	NotUnique            = herr.NotUnique
	ContainsNothing      = herr.ContainsNothing
	TooFewProperties     = herr.TooFewProperties
	TooManyProperties    = herr.TooManyProperties
	MissingRequired      = herr.MissingRequired
	PropertyNameInvalid  = herr.PropertyNameInvalid
)

// NewCollectingHandler returns the default accumulating ErrorHandler.
func NewCollectingHandler() *herr.Collecting { return herr.NewCollecting() }

// NewThrowingHandler returns a fail-fast ErrorHandler that panics with
// Issues{the first Issue} the moment one is reported.
func NewThrowingHandler() *herr.Throwing { return herr.NewThrowing() }
