// Package util holds small generic helpers shared by internal packages.
package util

// CloneSlice returns a copy of src that shares no backing array with it.
// The result is never nil, so an empty script compares equal to an empty literal.
func CloneSlice[T any](src []T) []T {
	clone := make([]T, len(src))
	copy(clone, src)

	return clone
}
