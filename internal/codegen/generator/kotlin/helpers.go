package kotlin

import (
	"strings"
	"text/template"
)

var tplFuncs = template.FuncMap{
	"ident":  ident,
	"interp": interp,
}

// ident quotes names that are not plain Kotlin identifiers.
func ident(name string) string {
	if strings.ContainsRune(name, '$') {
		return "`" + name + "`"
	}
	return name
}

// interp renders a string-template reference to name.
func interp(name string) string {
	if strings.ContainsRune(name, '$') {
		return "${" + ident(name) + "}"
	}
	return "$" + name
}
