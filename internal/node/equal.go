package node

// deepEqual compares two decoded JSON values structurally, as `enum`/`const`
// require: numbers compare by numeric value regardless of float64 vs.
// json.Number representation, objects compare key-by-key, arrays
// element-by-element and order-sensitively.
func deepEqual(a, b any) bool {
	if af, aok := toFloat64(a); aok {
		bf, bok := toFloat64(b)
		return bok && af == bf
	}
	switch av := a.(type) {
	case nil:
		return b == nil
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !deepEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			bvv, present := bv[k]
			if !present || !deepEqual(v, bvv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
