// Package ecma adapts github.com/dlclark/regexp2 to the narrow interface the
// schema compiler needs: search-anywhere matching against an ECMA-262
// pattern, as draft-07's `pattern`/`patternProperties` require. Go's
// standard regexp package is RE2, a different dialect; the design notes
// call for a dedicated dependency instead of a silent dialect switch.
package ecma

import "github.com/dlclark/regexp2"

// Pattern matches an ECMA-262 regular expression against a string.
type Pattern struct {
	re *regexp2.Regexp
}

// Compile parses expr as an ECMA-262 pattern. A compile error here is a
// build-time failure returned from the schema compiler, not a
// validation-time Issue.
func Compile(expr string) (*Pattern, error) {
	re, err := regexp2.Compile(expr, regexp2.ECMAScript)
	if err != nil {
		return nil, err
	}
	return &Pattern{re: re}, nil
}

// MatchString reports whether the pattern matches anywhere in s.
func (p *Pattern) MatchString(s string) (bool, error) {
	m, err := p.re.FindStringMatch(s)
	if err != nil {
		return false, err
	}
	return m != nil, nil
}

// String returns the original pattern source.
func (p *Pattern) String() string { return p.re.String() }
