package gogen

import (
	"text/template"

	"github.com/Alia5/fwgen/internal/codegen/meta"
)

var recordTmpl = template.Must(template.New("record").Parse(`{{.Header}}
package {{.Package}}

import "fmt"

// Record holds the trimmed field values of one fixed-width line.
type Record struct {
{{- range .Fields}}
	{{.Name}} string
{{- end}}
}

// NewRecord returns a Record with its fields in declaration order.
func NewRecord({{range $i, $f := .Fields}}{{if $i}}, {{end}}{{$f.Name}} string{{end}}) Record {
	return Record{
{{- range .Fields}}
		{{.Name}}: {{.Name}},
{{- end}}
	}
}

func (r Record) String() string {
	return fmt.Sprintf("Record {{"{"}}{{range $i, $f := .Fields}}{{if $i}}, {{end}}{{$f.Name}}='%s'{{end}}}"{{range .Fields}}, r.{{.Name}}{{end}})
}
`))

// EmitRecord renders record.go for md.
func EmitRecord(md *meta.Metadata) (string, error) {
	return render(recordTmpl, md)
}
