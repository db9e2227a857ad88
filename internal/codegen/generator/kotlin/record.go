package kotlin

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Alia5/fwgen/internal/codegen/common"
	"github.com/Alia5/fwgen/internal/codegen/meta"
)

var recordTmpl = template.Must(template.New("record").Funcs(tplFuncs).Parse(`{{.Header}}
package {{.Package}}

class Record({{range $i, $f := .Fields}}{{if $i}}, {{end}}private val {{ident $f.Name}}: String{{end}}) {
    override fun toString(): String {
        return "Record {{"{"}}{{range $i, $f := .Fields}}{{if $i}}, {{end}}{{$f.Name}}='{{interp $f.Name}}'{{end}}}"
    }
}
`))

// EmitRecord renders Record.kt: one private String property per column and a
// toString listing name='value' pairs in declaration order.
func EmitRecord(md *meta.Metadata) (string, error) {
	view, err := common.NewView(md, "//")
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := recordTmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("execute Kotlin record template: %w", err)
	}
	return buf.String(), nil
}
