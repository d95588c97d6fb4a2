package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// CoalescePtr replaces an optional field only when the patch carries a value.
func CoalescePtr[T any](p *T, fallback *T) *T {
	if p != nil {
		v := *p
		return &v
	}
	return fallback
}
