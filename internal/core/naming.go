package core

import (
	"strings"
	"unicode"
)

// KeyName derives the default dictionary key for a Go field name: the
// leading upper-case run is lowered (ID -> id, URLPath -> urlPath,
// FitColumns -> fitColumns) and underscores become dashes.
func KeyName(field string) string {
	runes := []rune(field)
	n := 0
	for n < len(runes) && unicode.IsUpper(runes[n]) {
		n++
	}
	switch {
	case n == 0:
	case n == 1 || n == len(runes):
		for i := 0; i < n; i++ {
			runes[i] = unicode.ToLower(runes[i])
		}
	default:
		// Keep the last upper-case rune when it starts the next word.
		if unicode.IsLetter(runes[n]) {
			n--
		}
		for i := 0; i < n; i++ {
			runes[i] = unicode.ToLower(runes[i])
		}
	}
	return strings.ReplaceAll(string(runes), "_", "-")
}

// IsIdentifier reports whether s can be used unquoted as a JavaScript object key.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || r == '$' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}
