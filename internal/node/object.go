package node

import (
	"fmt"
	"sort"

	"github.com/reoring/jsonschema/internal/ecma"
	"github.com/reoring/jsonschema/internal/herr"
	"github.com/reoring/jsonschema/internal/uri"
)

// PatternProperty pairs a compiled patternProperties regex with its schema.
// Kept as an ordered slice (not a map) so compile order — and therefore the
// order in which a matching key's value is validated against every
// matching pattern — is deterministic.
type PatternProperty struct {
	Pattern *ecma.Pattern
	Schema  Node
}

// Dependency pairs a dependencies trigger key with the validator to run
// against the whole object when that key is present. Schema is either a
// *Required (array-of-names form) or a compiled sub-schema.
type Dependency struct {
	Key    string
	Schema Node
}

// Object bundles the object-instance constraints.
type Object struct {
	MaxProperties        *int
	MinProperties        *int
	Required             []string
	Properties           map[string]Node
	PatternProperties    []PatternProperty
	AdditionalProperties Node // nil: unconstrained (draft-07 default)
	PropertyNames        Node
	Dependencies         []Dependency
}

func (o *Object) Validate(instance any, path uri.Pointer, h herr.Handler) {
	m, ok := instance.(map[string]any)
	if !ok {
		return
	}
	n := len(m)
	if o.MinProperties != nil && n < *o.MinProperties {
		h.Error(path.String(), instance, herr.TooFewProperties, fmt.Sprintf("object has %d properties, fewer than minProperties %d", n, *o.MinProperties))
	}
	if o.MaxProperties != nil && n > *o.MaxProperties {
		h.Error(path.String(), instance, herr.TooManyProperties, fmt.Sprintf("object has %d properties, more than maxProperties %d", n, *o.MaxProperties))
	}
	for _, name := range o.Required {
		if _, present := m[name]; !present {
			h.Error(path.String(), instance, herr.MissingRequired, fmt.Sprintf("missing required property %q", name))
		}
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		val := m[key]
		memberPath := path.Append(key)
		if o.PropertyNames != nil {
			o.PropertyNames.Validate(key, memberPath, h)
		}
		matched := false
		if sub, ok := o.Properties[key]; ok {
			matched = true
			sub.Validate(val, memberPath, h)
		}
		for _, pp := range o.PatternProperties {
			if ok, err := pp.Pattern.MatchString(key); err == nil && ok {
				matched = true
				pp.Schema.Validate(val, memberPath, h)
			}
		}
		if !matched && o.AdditionalProperties != nil {
			o.AdditionalProperties.Validate(val, memberPath, h)
		}
	}

	for _, dep := range o.Dependencies {
		if _, present := m[dep.Key]; present {
			dep.Schema.Validate(instance, path, h)
		}
	}
}
