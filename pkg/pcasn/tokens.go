package pcasn

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Command returns the keyword that opens a block on line: the text before
// the first '{' with surrounding whitespace removed. ok is false when the
// line contains no '{'.
func Command(line string) (cmd string, ok bool) {
	i := strings.IndexByte(line, '{')
	if i < 0 {
		return "", false
	}
	return strings.TrimSpace(line[:i]), true
}

// Value returns the scalar carried by a value line. Leading whitespace is
// dropped; everything after the first non-space character is kept
// verbatim up to, but not including, the first ','.
//
//	Value("  12 ,") == "12 "
func Value(line string) string {
	v := strings.TrimLeftFunc(line, unicode.IsSpace)
	if i := strings.IndexByte(v, ','); i >= 0 {
		return v[:i]
	}
	return v
}

// ToSymbol normalizes an element value to a symbol. A single character is
// upper-cased; longer values only get their first character upper-cased
// and keep the rest as written, so "cl" becomes "Cl" but "NA" stays "NA".
func ToSymbol(value string) string {
	first, size := utf8.DecodeRuneInString(value)
	if size == 0 {
		return ""
	}
	if size == len(value) {
		return strings.ToUpper(value)
	}
	return string(unicode.ToUpper(first)) + value[size:]
}
