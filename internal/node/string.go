package node

import (
	"fmt"
	"unicode/utf8"

	"github.com/reoring/jsonschema/internal/ecma"
	"github.com/reoring/jsonschema/internal/herr"
	"github.com/reoring/jsonschema/internal/iface"
	"github.com/reoring/jsonschema/internal/uri"
)

// String bundles the string-instance constraints: maxLength/minLength
// (measured in Unicode code points), pattern (ECMA-262, search-anywhere),
// and format (dispatched to an injected checker resolved at compile time).
type String struct {
	MaxLength *int
	MinLength *int
	Pattern   *ecma.Pattern
	Format    string
	Checker   iface.FormatChecker // nil if none was configured on the Compiler
}

func (s *String) Validate(instance any, path uri.Pointer, h herr.Handler) {
	v, ok := instance.(string)
	if !ok {
		return
	}
	n := utf8.RuneCountInString(v)
	if s.MinLength != nil && n < *s.MinLength {
		h.Error(path.String(), instance, herr.StringTooShort, fmt.Sprintf("length %d is less than minLength %d", n, *s.MinLength))
	}
	if s.MaxLength != nil && n > *s.MaxLength {
		h.Error(path.String(), instance, herr.StringTooLong, fmt.Sprintf("length %d exceeds maxLength %d", n, *s.MaxLength))
	}
	if s.Pattern != nil {
		matched, err := s.Pattern.MatchString(v)
		if err != nil || !matched {
			h.Error(path.String(), instance, herr.PatternMismatch, fmt.Sprintf("value does not match pattern %q", s.Pattern.String()))
		}
	}
	if s.Format != "" {
		if s.Checker == nil {
			h.Error(path.String(), instance, herr.FormatWithoutChecker, fmt.Sprintf("format %q requires a configured format checker", s.Format))
			return
		}
		if err := s.Checker.CheckFormat(s.Format, v); err != nil {
			h.Error(path.String(), instance, herr.FormatViolation, fmt.Sprintf("format %q: %v", s.Format, err))
		}
	}
}
