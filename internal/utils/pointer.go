package utils

// Ptr returns a pointer to a copy of t, for optional fields.
func Ptr[T any](t T) *T {
	return &t
}
