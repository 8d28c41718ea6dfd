// Package uri implements the URI / JSON-Pointer utility: a base location
// plus a structural (token-sequence, not textual) JSON Pointer fragment,
// with the append/derive operations the schema compiler and resolver need.
//
// Grounded on the teacher's ref_pathref.go PathRef (chain-safe pointer
// building, RFC 6901 escaping) generalized with a location half so it can
// address schemas across documents, not just within one.
package uri

import (
	"net/url"
	"strconv"
	"strings"
)

// Pointer is an ordered sequence of unescaped JSON-Pointer tokens. Equality
// is structural: compare token slices, never the escaped string form.
type Pointer []string

// Append returns a new Pointer with tok appended. Escaping happens only at
// String() time, so callers never need to pre-escape tokens.
func (p Pointer) Append(tok string) Pointer {
	out := make(Pointer, len(p)+1)
	copy(out, p)
	out[len(p)] = tok
	return out
}

// AppendIndex appends an array index token.
func (p Pointer) AppendIndex(i int) Pointer {
	return p.Append(strconv.Itoa(i))
}

// Equal reports structural equality between two pointers.
func (p Pointer) Equal(o Pointer) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

// String renders the pointer using RFC 6901 escaping ('~' -> "~0", '/' -> "~1").
func (p Pointer) String() string {
	if len(p) == 0 {
		return ""
	}
	b := &strings.Builder{}
	for _, tok := range p {
		b.WriteByte('/')
		b.WriteString(Escape(tok))
	}
	return b.String()
}

// Escape escapes a single JSON-Pointer token.
func Escape(tok string) string {
	tok = strings.ReplaceAll(tok, "~", "~0")
	tok = strings.ReplaceAll(tok, "/", "~1")
	return tok
}

// Unescape reverses Escape.
func Unescape(tok string) string {
	tok = strings.ReplaceAll(tok, "~1", "/")
	tok = strings.ReplaceAll(tok, "~0", "~")
	return tok
}

// ParsePointer splits a textual JSON-Pointer fragment ("/a/b~1c") into tokens.
func ParsePointer(frag string) Pointer {
	frag = strings.TrimPrefix(frag, "#")
	frag = strings.TrimPrefix(frag, "/")
	if frag == "" {
		return nil
	}
	parts := strings.Split(frag, "/")
	out := make(Pointer, len(parts))
	for i, p := range parts {
		out[i] = Unescape(p)
	}
	return out
}

// URI is a base location (an absolute, possibly opaque, string) plus a
// JSON-Pointer fragment. The zero value is the empty location with an empty
// pointer.
type URI struct {
	loc string
	ptr Pointer
}

// Parse interprets str as a URI: everything before "#" is the location,
// everything after is a JSON-Pointer fragment.
func Parse(str string) URI {
	loc, frag, found := strings.Cut(str, "#")
	u := URI{loc: loc}
	if found {
		u.ptr = ParsePointer(frag)
	}
	return u
}

// New builds a URI directly from a location and pointer.
func New(location string, ptr Pointer) URI { return URI{loc: location, ptr: ptr} }

// Location returns the base location (no fragment).
func (u URI) Location() string { return u.loc }

// Pointer returns the fragment pointer.
func (u URI) Pointer() Pointer { return u.ptr }

// Append extends the fragment by one unescaped token (escaped only when
// rendered), keeping the same location.
func (u URI) Append(tok string) URI { return URI{loc: u.loc, ptr: u.ptr.Append(tok)} }

// AppendIndex extends the fragment by an array-index token.
func (u URI) AppendIndex(i int) URI { return URI{loc: u.loc, ptr: u.ptr.AppendIndex(i)} }

// Derive resolves relative against u per RFC 3986, restricted to the subset
// this system sees: fragment-only ("#/a/b"), relative-path ("other.json"),
// or absolute ("https://host/schema.json"). A fragment-only relative keeps
// u's location but replaces the pointer outright (it does not extend it).
func (u URI) Derive(relative string) URI {
	if relative == "" {
		return u
	}
	if strings.HasPrefix(relative, "#") {
		return URI{loc: u.loc, ptr: ParsePointer(relative)}
	}
	base, frag, hasFrag := strings.Cut(relative, "#")
	var newLoc string
	if base == "" {
		newLoc = u.loc
	} else if isAbsolute(base) {
		newLoc = base
	} else if bu, err := url.Parse(u.loc); err == nil && u.loc != "" {
		if ru, err2 := url.Parse(base); err2 == nil {
			newLoc = bu.ResolveReference(ru).String()
		} else {
			newLoc = base
		}
	} else {
		newLoc = base
	}
	var ptr Pointer
	if hasFrag {
		ptr = ParsePointer(frag)
	}
	return URI{loc: newLoc, ptr: ptr}
}

func isAbsolute(s string) bool {
	i := strings.Index(s, ":")
	if i <= 0 {
		return false
	}
	scheme := s[:i]
	for _, c := range scheme {
		if !(c == '+' || c == '-' || c == '.' ||
			(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')) {
			return false
		}
	}
	return true
}

// String renders the URI back to its textual form, location + "#" + pointer.
func (u URI) String() string {
	if len(u.ptr) == 0 && u.loc != "" {
		return u.loc
	}
	return u.loc + "#" + u.ptr.String()
}

// Key returns a value suitable for use as a map key identifying this exact
// (location, pointer) pair; it is u.String() today but kept distinct so
// callers never format one by hand.
func (u URI) Key() string { return u.String() }
