package schema

import (
	"strings"
	"unicode"
)

// Dialect supplies the identifier rules of a generation target.
type Dialect interface {
	// DisplayName is used in InvalidName messages, e.g. "Kotlin".
	DisplayName() string
	IsReserved(name string) bool
	IsIdentRune(r rune) bool
}

// plainDialect accepts [A-Za-z0-9_$] and reserves nothing.
type plainDialect struct{}

func (plainDialect) DisplayName() string     { return "the target language" }
func (plainDialect) IsReserved(string) bool  { return false }
func (plainDialect) IsIdentRune(r rune) bool { return IsASCIIIdentRune(r) || r == '$' }

// IsASCIIIdentRune reports whether r is in [A-Za-z0-9_].
func IsASCIIIdentRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

// NormalizeName turns a raw column name into an identifier for d.
// ASCII whitespace separated words are joined in camel case, runes outside the
// dialect's identifier set and any leading digits are dropped, and the first
// rune is lower-cased. An empty result becomes FallbackName.
// NormalizeName is idempotent.
func NormalizeName(raw string, d Dialect) string {
	name, _ := normalize(raw, d)
	return name
}

// normalize is NormalizeName that also reports whether FallbackName was
// substituted.
func normalize(raw string, d Dialect) (string, bool) {
	if d == nil {
		d = plainDialect{}
	}

	var b strings.Builder
	for _, word := range fields(raw) {
		w := strings.Map(func(r rune) rune {
			if d.IsIdentRune(r) {
				return r
			}
			return -1
		}, word)
		if w == "" {
			continue
		}
		if b.Len() > 0 {
			w = upperFirst(w)
		}
		b.WriteString(w)
	}

	name := strings.TrimLeftFunc(b.String(), func(r rune) bool { return r >= '0' && r <= '9' })
	if name == "" {
		return FallbackName, true
	}
	return lowerFirst(name), false
}

// isSpace reports ASCII whitespace. Other Unicode spaces are ordinary
// characters in schema text.
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func fields(s string) []string {
	return strings.FieldsFunc(s, isSpace)
}

func upperFirst(s string) string {
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func lowerFirst(s string) string {
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
