package node

import (
	"fmt"

	"github.com/reoring/jsonschema/internal/herr"
	"github.com/reoring/jsonschema/internal/uri"
)

// Array bundles the array-instance constraints. Items is either a single
// schema applied to every element (ItemsSingle) or a positional sequence
// (ItemsSeq) with an AdditionalItems fallback once the sequence is
// exhausted; a position with neither a sequence entry nor a fallback is
// left unvalidated, per spec.
type Array struct {
	MaxItems        *int
	MinItems        *int
	UniqueItems     bool
	ItemsSingle     Node
	ItemsSeq        []Node
	AdditionalItems Node
	Contains        Node
}

func (a *Array) Validate(instance any, path uri.Pointer, h herr.Handler) {
	arr, ok := instance.([]any)
	if !ok {
		return
	}
	n := len(arr)
	if a.MinItems != nil && n < *a.MinItems {
		h.Error(path.String(), instance, herr.TooFewItems, fmt.Sprintf("array has %d items, fewer than minItems %d", n, *a.MinItems))
	}
	if a.MaxItems != nil && n > *a.MaxItems {
		h.Error(path.String(), instance, herr.TooManyItems, fmt.Sprintf("array has %d items, more than maxItems %d", n, *a.MaxItems))
	}
	if a.UniqueItems {
	pairs:
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if deepEqual(arr[i], arr[j]) {
					h.Error(path.String(), instance, herr.NotUnique, fmt.Sprintf("items at index %d and %d are equal", i, j))
					break pairs
				}
			}
		}
	}
	switch {
	case a.ItemsSingle != nil:
		for i, el := range arr {
			a.ItemsSingle.Validate(el, path.AppendIndex(i), h)
		}
	case len(a.ItemsSeq) > 0 || a.AdditionalItems != nil:
		for i, el := range arr {
			if i < len(a.ItemsSeq) {
				if a.ItemsSeq[i] != nil {
					a.ItemsSeq[i].Validate(el, path.AppendIndex(i), h)
				}
				continue
			}
			if a.AdditionalItems != nil {
				a.AdditionalItems.Validate(el, path.AppendIndex(i), h)
			}
		}
	}
	if a.Contains != nil {
		found := false
		for i, el := range arr {
			fresh := herr.NewCounting()
			a.Contains.Validate(el, path.AppendIndex(i), fresh)
			if !fresh.Failed() {
				found = true
				break
			}
		}
		if !found {
			h.Error(path.String(), instance, herr.ContainsNothing, "no item satisfies contains")
		}
	}
}
