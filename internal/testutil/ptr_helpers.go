package testutil

// Ptr returns a pointer to v, for optional request and filter fields
func Ptr[T any](v T) *T {
	return &v
}
