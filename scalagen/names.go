package scalagen

import "strings"

// scalaKeywords are reserved words in Scala that need backquoting when
// they occur as identifiers in the input.
var scalaKeywords = map[string]bool{
	"abstract": true, "case": true, "catch": true, "class": true,
	"def": true, "do": true, "else": true, "extends": true,
	"false": true, "final": true, "finally": true, "for": true,
	"forSome": true, "if": true, "implicit": true, "import": true,
	"lazy": true, "macro": true, "match": true, "new": true,
	"null": true, "object": true, "override": true, "package": true,
	"private": true, "protected": true, "return": true, "sealed": true,
	"super": true, "then": true, "this": true, "throw": true,
	"trait": true, "true": true, "try": true, "type": true,
	"val": true, "var": true, "while": true, "with": true,
	"yield": true,
}

// isBareIdent reports whether s satisfies the bare Scala identifier
// grammar: a letter, underscore or dollar followed by letters, digits,
// underscores and dollars.
func isBareIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		alpha := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_' || r == '$'
		if i == 0 {
			if !alpha {
				return false
			}
			continue
		}
		if !alpha && !(r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}

// Sanitize escapes an identifier that collides with a Scala reserved
// word or violates the bare-identifier grammar by wrapping it in
// backquotes; well-formed identifiers pass through unchanged.
//
// It is applied to package segments, module, class, interface, method
// and parameter names taken from the input, never to type names the
// input already declared.
func Sanitize(name string) string {
	if scalaKeywords[name] || !isBareIdent(name) {
		return "`" + name + "`"
	}
	return name
}

// SanitizePackage sanitizes a possibly dotted package name one segment
// at a time, so `three-d.core` renders as `` `three-d`.core ``.
func SanitizePackage(name string) string {
	segments := strings.Split(name, ".")
	for i, seg := range segments {
		segments[i] = Sanitize(seg)
	}
	return strings.Join(segments, ".")
}

// capitalize upper-cases the first byte of an ASCII identifier. Names
// derived from properties and package tails go through Sanitize after
// capitalization.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
