// Package strutil provides the small string helpers used by the
// playground command parser and script runner.
package strutil

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Collapse trims s and collapses every interior whitespace run to a
// single space.
func Collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Strip removes all whitespace from s.
func Strip(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// Split splits s on any rune present in delims, dropping empty tokens.
func Split(s, delims string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(delims, r)
	})
}

// Format substitutes positional placeholders of the form {0}, {1}, ...
// with the corresponding argument rendered by fmt.Sprint. Placeholders
// without a matching argument, and brace text that is not a placeholder,
// pass through unchanged.
func Format(pattern string, args ...any) string {
	var b strings.Builder
	b.Grow(len(pattern))
	for i := 0; i < len(pattern); {
		if pattern[i] != '{' {
			b.WriteByte(pattern[i])
			i++
			continue
		}
		j := i + 1
		for j < len(pattern) && pattern[j] >= '0' && pattern[j] <= '9' {
			j++
		}
		if j == i+1 || j >= len(pattern) || pattern[j] != '}' {
			b.WriteByte('{')
			i++
			continue
		}
		idx, err := strconv.Atoi(pattern[i+1 : j])
		if err != nil || idx >= len(args) {
			b.WriteString(pattern[i : j+1])
		} else {
			b.WriteString(fmt.Sprint(args[idx]))
		}
		i = j + 1
	}
	return b.String()
}
