package simplify

// Compact prunes a decoded JSON tree bottom-up: map keys whose cleaned
// value is nil, an empty array or an empty object are removed. Zero,
// false and empty strings are meaningful and always survive. Array
// elements are cleaned in place but never dropped. Maps are mutated.
func Compact(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for key, val := range t {
			cleaned := Compact(val)
			if isEmpty(cleaned) {
				delete(t, key)
				continue
			}
			t[key] = cleaned
		}
		return t
	case []any:
		for i, val := range t {
			t[i] = Compact(val)
		}
		return t
	default:
		return v
	}
}

func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case map[string]any:
		return len(t) == 0
	case []any:
		return len(t) == 0
	}
	return false
}
