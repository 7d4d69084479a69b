package properties

// Resolve returns a property's effective value and dirty state: the
// pending value when an edit is staged, the committed value otherwise.
// The dirty flag is true exactly when a pending value is present; that
// presence, not a value comparison, is the source-of-truth "was touched"
// policy (SetPending never stores a pending value equal to the committed
// one, so the two formulations coincide).
func Resolve(p Property) (any, bool) {
	if pv := p.PendingValue(); pv != nil {
		return pv, p.IsDirty()
	}
	return p.Value(), p.IsDirty()
}

// intValue coerces a bool-or-int property value to an int for bitmask
// arithmetic. Unexpected types read as zero.
func intValue(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	case bool:
		if n {
			return 1
		}
	}
	return 0
}

// resolveMask resolves a property to its effective integer mask value.
func resolveMask(p Property) (int, bool) {
	v, dirty := Resolve(p)
	return intValue(v), dirty
}
