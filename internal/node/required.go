package node

import (
	"strconv"

	"github.com/reoring/jsonschema/internal/herr"
	"github.com/reoring/jsonschema/internal/uri"
)

// Required checks that every listed property name is present on an object
// instance. It is used both directly (the `required` keyword) and
// synthesized to represent a `dependencies` entry whose value is an array
// of names (validated against the whole object, per spec).
type Required struct {
	Names []string
}

func (r *Required) Validate(instance any, path uri.Pointer, h herr.Handler) {
	m, ok := instance.(map[string]any)
	if !ok {
		return
	}
	for _, name := range r.Names {
		if _, present := m[name]; !present {
			h.Error(path.String(), instance, herr.MissingRequired, "missing required property "+strconv.Quote(name))
		}
	}
}
