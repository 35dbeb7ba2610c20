package projutil

import (
	"regexp"
	"strconv"
)

// reDecimal matches an optionally '+'-prefixed decimal integer.
var reDecimal = regexp.MustCompile(`^\+?([0-9]+)$`)

// StringToInt converts a decimal string to an int. Empty, signed negative,
// non-decimal or out-of-range input yields 0.
func StringToInt(value string) int {
	m := reDecimal.FindStringSubmatch(value)
	if m == nil {
		return 0
	}
	n, err := strconv.ParseInt(m[1], 10, 32)
	if err != nil {
		return 0
	}
	return int(n)
}

// AppendUnique appends v to s unless s already contains it.
func AppendUnique[T comparable](s []T, v T) []T {
	for _, e := range s {
		if e == v {
			return s
		}
	}
	return append(s, v)
}
