// Package format implements draft-07's format vocabulary: named string
// formats a schema can request via the `format` keyword, checked only when
// a FormatChecker is configured on the Compiler (spec.md's
// FormatWithoutChecker / FormatViolation split).
//
// Grounded on the teacher's codec/rfc3339.go date-time parsing pattern
// (parse with a fixed layout, wrap the stdlib error) generalized to the
// full format set draft-07 commonly ships: date-time, date, time, email,
// hostname, ipv4, ipv6, uuid, uri, and regex.
package format

import (
	"fmt"
	"net"
	"net/mail"
	"net/url"
	"regexp"
	"time"

	"github.com/reoring/jsonschema/internal/ecma"
)

// CheckFunc validates one value against one named format.
type CheckFunc func(value string) error

// Registry is a name -> CheckFunc table implementing iface.FormatChecker.
type Registry struct {
	checks map[string]CheckFunc
}

// New builds a Registry seeded with every built-in checker. Callers may
// add or override entries (Register) or delete them (Remove) before handing
// the Registry to a Compiler.
func New() *Registry {
	r := &Registry{checks: map[string]CheckFunc{}}
	for name, fn := range builtins {
		r.checks[name] = fn
	}
	return r
}

// Register adds or overrides the checker for name.
func (r *Registry) Register(name string, fn CheckFunc) { r.checks[name] = fn }

// Remove deletes name, so schemas using it report FormatWithoutChecker.
func (r *Registry) Remove(name string) { delete(r.checks, name) }

// Subset builds a new Registry carrying only the named built-in checkers,
// for CLI --format flags that want to restrict which formats are enforced.
func Subset(names []string) (*Registry, error) {
	full := New()
	r := &Registry{checks: map[string]CheckFunc{}}
	for _, name := range names {
		fn, ok := full.checks[name]
		if !ok {
			return nil, fmt.Errorf("format: unknown format %q", name)
		}
		r.checks[name] = fn
	}
	return r, nil
}

// CheckFormat implements iface.FormatChecker.
func (r *Registry) CheckFormat(name, value string) error {
	fn, ok := r.checks[name]
	if !ok {
		return fmt.Errorf("format: no checker registered for %q", name)
	}
	return fn(value)
}

var builtins = map[string]CheckFunc{
	"date-time": checkDateTime,
	"date":      checkDate,
	"time":      checkTime,
	"email":     checkEmail,
	"hostname":  checkHostname,
	"ipv4":      checkIPv4,
	"ipv6":      checkIPv6,
	"uuid":      checkUUID,
	"uri":       checkURI,
	"regex":     checkRegex,
}

func checkDateTime(v string) error {
	if _, err := time.Parse(time.RFC3339Nano, v); err != nil {
		return fmt.Errorf("not an RFC 3339 date-time: %w", err)
	}
	return nil
}

func checkDate(v string) error {
	if _, err := time.Parse("2006-01-02", v); err != nil {
		return fmt.Errorf("not an RFC 3339 full-date: %w", err)
	}
	return nil
}

func checkTime(v string) error {
	if _, err := time.Parse("15:04:05Z07:00", v); err != nil {
		return fmt.Errorf("not an RFC 3339 time: %w", err)
	}
	return nil
}

func checkEmail(v string) error {
	if _, err := mail.ParseAddress(v); err != nil {
		return fmt.Errorf("not a valid email address: %w", err)
	}
	return nil
}

var hostnameRE = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

func checkHostname(v string) error {
	if len(v) > 253 || !hostnameRE.MatchString(v) {
		return fmt.Errorf("not a valid hostname")
	}
	return nil
}

func checkIPv4(v string) error {
	ip := net.ParseIP(v)
	if ip == nil || ip.To4() == nil {
		return fmt.Errorf("not a valid IPv4 address")
	}
	return nil
}

func checkIPv6(v string) error {
	ip := net.ParseIP(v)
	if ip == nil || ip.To4() != nil {
		return fmt.Errorf("not a valid IPv6 address")
	}
	return nil
}

var uuidRE = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

func checkUUID(v string) error {
	if !uuidRE.MatchString(v) {
		return fmt.Errorf("not a valid UUID")
	}
	return nil
}

func checkURI(v string) error {
	u, err := url.Parse(v)
	if err != nil {
		return fmt.Errorf("not a valid URI: %w", err)
	}
	if !u.IsAbs() {
		return fmt.Errorf("not a valid URI: missing scheme")
	}
	return nil
}

func checkRegex(v string) error {
	if _, err := ecma.Compile(v); err != nil {
		return fmt.Errorf("not a valid ECMA-262 regular expression: %w", err)
	}
	return nil
}
