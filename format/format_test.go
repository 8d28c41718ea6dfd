package format_test

import (
	"testing"

	"github.com/reoring/jsonschema/format"
)

func TestBuiltins(t *testing.T) {
	r := format.New()
	cases := []struct {
		name  string
		value string
		valid bool
	}{
		{"date-time", "2024-01-02T15:04:05Z", true},
		{"date-time", "not-a-date", false},
		{"date", "2024-01-02", true},
		{"date", "2024-13-40", false},
		{"email", "a@example.com", true},
		{"email", "not-an-email", false},
		{"hostname", "example.com", true},
		{"hostname", "-bad-.com", false},
		{"ipv4", "192.168.0.1", true},
		{"ipv4", "::1", false},
		{"ipv6", "::1", true},
		{"ipv6", "192.168.0.1", false},
		{"uuid", "123e4567-e89b-12d3-a456-426614174000", true},
		{"uuid", "not-a-uuid", false},
		{"uri", "https://example.com/a", true},
		{"uri", "not a uri", false},
		{"regex", `^a+$`, true},
		{"regex", `[`, false},
	}
	for _, c := range cases {
		err := r.CheckFormat(c.name, c.value)
		if c.valid && err != nil {
			t.Errorf("%s %q: expected valid, got %v", c.name, c.value, err)
		}
		if !c.valid && err == nil {
			t.Errorf("%s %q: expected invalid, got nil error", c.name, c.value)
		}
	}
}

func TestCheckFormat_UnknownFormat(t *testing.T) {
	r := format.New()
	if err := r.CheckFormat("no-such-format", "x"); err == nil {
		t.Fatalf("expected an error for an unregistered format")
	}
}

func TestSubset(t *testing.T) {
	r, err := format.Subset([]string{"email"})
	if err != nil {
		t.Fatalf("Subset failed: %v", err)
	}
	if err := r.CheckFormat("email", "a@example.com"); err != nil {
		t.Fatalf("expected email to be enabled: %v", err)
	}
	if err := r.CheckFormat("uuid", "123e4567-e89b-12d3-a456-426614174000"); err == nil {
		t.Fatalf("expected uuid to be excluded from the subset")
	}
}

func TestSubset_UnknownName(t *testing.T) {
	if _, err := format.Subset([]string{"not-a-format"}); err == nil {
		t.Fatalf("expected an error for an unknown format name")
	}
}

func TestRegister_Override(t *testing.T) {
	r := format.New()
	r.Register("email", func(v string) error { return nil })
	if err := r.CheckFormat("email", "definitely not an email"); err != nil {
		t.Fatalf("expected the overridden checker to accept anything, got %v", err)
	}
}
