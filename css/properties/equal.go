package properties

// Equal reports whether two resolved values are structurally equal :
// same concrete type and same content, recursing through lists.
// Two nil values are equal.
func Equal(a, b StyleValue) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch av := a.(type) {
	case ValueList:
		bv, ok := b.(ValueList)
		if !ok || av.Separator != bv.Separator || len(av.Values) != len(bv.Values) {
			return false
		}
		for i := range av.Values {
			if !Equal(av.Values[i], bv.Values[i]) {
				return false
			}
		}
		return true
	case ShorthandValue:
		bv, ok := b.(ShorthandValue)
		if !ok || av.Shorthand != bv.Shorthand || len(av.Values) != len(bv.Values) {
			return false
		}
		for i := range av.Values {
			if av.Longhands[i] != bv.Longhands[i] || !Equal(av.Values[i], bv.Values[i]) {
				return false
			}
		}
		return true
	case Transformation:
		bv, ok := b.(Transformation)
		if !ok || av.Function != bv.Function || len(av.Parameters) != len(bv.Parameters) {
			return false
		}
		for i := range av.Parameters {
			if !Equal(av.Parameters[i], bv.Parameters[i]) {
				return false
			}
		}
		return true
	default:
		// the other concrete types are comparable
		return a == b
	}
}
