package node

import (
	"fmt"
	"math"

	"github.com/reoring/jsonschema/internal/herr"
	"github.com/reoring/jsonschema/internal/uri"
)

// numericEpsilon mirrors the C++ standard library's numeric_limits<double>
// epsilon; multipleOf compares the absolute residual against it with no
// scaling, reproducing the original's known high-magnitude misbehavior
// rather than inventing a stricter policy (spec.md Open Questions).
const numericEpsilon = 2.220446049250313e-16

// Numeric bundles the numeric-instance constraints. Go's JSON number model
// has no separate integer/unsigned/float representations (everything is
// float64 or json.Number), so unlike the source implementation's three
// template instantiations, one Numeric struct always serves every numeric
// type tag — the "share the float validator" rule from spec.md §4.4 holds
// by construction rather than as an optimization to apply.
type Numeric struct {
	Maximum          *float64
	Minimum          *float64
	ExclusiveMaximum *float64
	ExclusiveMinimum *float64
	MultipleOf       *float64
}

// ValidateValue runs the bundle's constraints against an already-extracted
// float64. Called from Type.Validate once it has classified the instance.
func (n *Numeric) ValidateValue(v float64, instance any, path uri.Pointer, h herr.Handler) {
	if n == nil {
		return
	}
	if n.Maximum != nil && v > *n.Maximum {
		h.Error(path.String(), instance, herr.OutOfBounds, fmt.Sprintf("%v exceeds maximum %v", v, *n.Maximum))
	}
	if n.Minimum != nil && v < *n.Minimum {
		h.Error(path.String(), instance, herr.OutOfBounds, fmt.Sprintf("%v is less than minimum %v", v, *n.Minimum))
	}
	if n.ExclusiveMaximum != nil && v >= *n.ExclusiveMaximum {
		h.Error(path.String(), instance, herr.OutOfBounds, fmt.Sprintf("%v is not less than exclusiveMaximum %v", v, *n.ExclusiveMaximum))
	}
	if n.ExclusiveMinimum != nil && v <= *n.ExclusiveMinimum {
		h.Error(path.String(), instance, herr.OutOfBounds, fmt.Sprintf("%v is not greater than exclusiveMinimum %v", v, *n.ExclusiveMinimum))
	}
	if n.MultipleOf != nil && *n.MultipleOf != 0 && v != 0 {
		m := *n.MultipleOf
		residual := math.Abs(v - math.Round(v/m)*m)
		if residual > numericEpsilon {
			h.Error(path.String(), instance, herr.NotMultipleOf, fmt.Sprintf("%v is not a multiple of %v", v, m))
		}
	}
}
