package common

import "strings"

// ToSnakeCase converts CamelCase to snake_case, keeping acronyms together
// ("XMLParser" -> "xml_parser").
func ToSnakeCase(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if i > 0 && isUpper(r) {
			prevIsLower := isLower(runes[i-1])
			nextIsLower := i+1 < len(runes) && isLower(runes[i+1])
			if prevIsLower || nextIsLower {
				b.WriteByte('_')
			}
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}

// ToKebabCase converts CamelCase to kebab-case, the form kong uses for flag
// names ("RejectFile" -> "reject-file").
func ToKebabCase(s string) string {
	return strings.ReplaceAll(ToSnakeCase(s), "_", "-")
}

func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool { return r >= 'a' && r <= 'z' }
