package model

// Field carries a normalized value together with whether it was supplied.
// Partial updates only write fields where Present is true; a present field
// whose Value is a nil pointer means "set to null".
type Field[T any] struct {
	Value   T
	Present bool
}

// Given wraps a supplied value.
func Given[T any](v T) Field[T] {
	return Field[T]{Value: v, Present: true}
}

// Get returns the value and whether it was supplied.
func (f Field[T]) Get() (T, bool) {
	return f.Value, f.Present
}

// Or returns the value when present, otherwise fallback.
func (f Field[T]) Or(fallback T) T {
	if f.Present {
		return f.Value
	}
	return fallback
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}
