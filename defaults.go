package codee

// Coalesce returns def when v is the zero value of T - otherwise v.
// Exported for the codec packages, which resolve their Options the same way.
func Coalesce[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
