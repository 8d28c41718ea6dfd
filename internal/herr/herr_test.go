package herr_test

import (
	"testing"

	"github.com/reoring/jsonschema/internal/herr"
)

func TestCollecting_AccumulatesAndFailed(t *testing.T) {
	c := herr.NewCollecting()
	if c.Failed() {
		t.Fatalf("expected a fresh Collecting handler to report not-failed")
	}
	c.Error("/a", 1, herr.OutOfBounds, "too big")
	c.Error("/b", "x", herr.EnumMismatch, "not enumerated")
	if !c.Failed() {
		t.Fatalf("expected Failed() to be true after an Error call")
	}
	if len(c.Issues) != 2 {
		t.Fatalf("expected 2 collected issues, got %d", len(c.Issues))
	}
}

func TestCounting_TracksFirstAndCount(t *testing.T) {
	c := herr.NewCounting()
	if c.Failed() {
		t.Fatalf("expected a fresh Counting handler to report not-failed")
	}
	c.Error("/a", 1, herr.OutOfBounds, "first")
	c.Error("/b", 2, herr.NotMultipleOf, "second")
	if c.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", c.Count())
	}
	if c.First() == nil || c.First().Kind != herr.OutOfBounds {
		t.Fatalf("First() should be the first reported Issue, got %v", c.First())
	}
}

func TestThrowing_PanicsWithIssues(t *testing.T) {
	defer func() {
		r := recover()
		issues, ok := r.(herr.Issues)
		if !ok || len(issues) != 1 || issues[0].Kind != herr.FalseSchema {
			t.Fatalf("expected panic with Issues{FalseSchema}, got %#v", r)
		}
	}()
	th := herr.NewThrowing()
	th.Error("/", nil, herr.FalseSchema, "rejected")
}

func TestIssues_Error(t *testing.T) {
	iss := herr.Issues{
		{Path: "/a", Kind: herr.OutOfBounds},
		{Path: "/b", Kind: herr.EnumMismatch},
	}
	if iss.Error() == "" {
		t.Fatalf("expected a non-empty summary")
	}
	var empty herr.Issues
	if empty.Error() != "" {
		t.Fatalf("expected an empty summary for no issues")
	}
}
