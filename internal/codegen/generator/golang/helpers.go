package gogen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"text/template"

	"github.com/Alia5/fwgen/internal/codegen/common"
	"github.com/Alia5/fwgen/internal/codegen/meta"
)

// render executes tmpl for md and gofmt's the result.
func render(tmpl *template.Template, md *meta.Metadata) (string, error) {
	if !token.IsIdentifier(md.Package) {
		return "", fmt.Errorf("invalid Go package name %q", md.Package)
	}
	view, err := common.NewView(md, "//")
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("execute Go %s template: %w", tmpl.Name(), err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return "", fmt.Errorf("format generated Go %s: %w", tmpl.Name(), err)
	}
	return string(src), nil
}
