package normalize

import (
	"regexp"
	"strings"
)

var multiSpace = regexp.MustCompile(`\s+`)

// ClassLabel lowercases, collapses whitespace, and trims a medication class
// label. Class matching is case-insensitive: two labels refer to the same
// class exactly when their normalized forms are equal.
func ClassLabel(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return multiSpace.ReplaceAllString(s, " ")
}

// SameClass reports whether two class labels match under the
// case-insensitive policy.
func SameClass(a, b string) bool {
	return ClassLabel(a) == ClassLabel(b)
}
