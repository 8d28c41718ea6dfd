package ecma_test

import (
	"testing"

	"github.com/reoring/jsonschema/internal/ecma"
)

func TestCompile_SearchAnywhere(t *testing.T) {
	p, err := ecma.Compile(`\d+`)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	ok, err := p.MatchString("abc123def")
	if err != nil || !ok {
		t.Fatalf("expected a match anywhere in the string, got ok=%v err=%v", ok, err)
	}
}

func TestCompile_Lookahead(t *testing.T) {
	// ECMA-262 lookahead is not expressible in RE2; exercising it proves the
	// regexp2 backend, not Go's stdlib regexp, is in play.
	p, err := ecma.Compile(`foo(?=bar)`)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	ok, err := p.MatchString("foobar")
	if err != nil || !ok {
		t.Fatalf("expected lookahead match, got ok=%v err=%v", ok, err)
	}
	ok, err = p.MatchString("foobaz")
	if err != nil || ok {
		t.Fatalf("expected lookahead to reject, got ok=%v err=%v", ok, err)
	}
}

func TestCompile_InvalidPattern(t *testing.T) {
	if _, err := ecma.Compile(`[`); err == nil {
		t.Fatalf("expected an error compiling an unbalanced character class")
	}
}
