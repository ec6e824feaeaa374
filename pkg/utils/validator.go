package utils

import "strings"

// IsEmpty reports whether s is blank after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

func Ptr[T any](v T) *T {
	return &v
}
