package java

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/Alia5/fwgen/internal/codegen/common"
	"github.com/Alia5/fwgen/internal/codegen/meta"
)

var recordTmpl = template.Must(template.New("record").Funcs(template.FuncMap{
	"toStringExpr": toStringExpr,
}).Parse(`{{.Header}}
package {{.Package}};

public class Record {
{{- range .Fields}}
    private final String {{.Name}};
{{- end}}

    public Record({{range $i, $f := .Fields}}{{if $i}}, {{end}}String {{$f.Name}}{{end}}) {
{{- range .Fields}}
        this.{{.Name}} = {{.Name}};
{{- end}}
    }

    @Override
    public String toString() {
        return {{toStringExpr .Fields}};
    }
}
`))

// toStringExpr builds the string concatenation for Record.toString, e.g.
// "Record {a='" + a + "', b='" + b + "'}".
func toStringExpr(fields []common.Slice) string {
	if len(fields) == 0 {
		return `"Record {}"`
	}
	var b strings.Builder
	b.WriteString(`"Record {`)
	for i, f := range fields {
		if i > 0 {
			b.WriteString(`', `)
		}
		fmt.Fprintf(&b, `%s='" + %s + "`, f.Name, f.Name)
	}
	b.WriteString(`'}"`)
	return b.String()
}

// EmitRecord renders Record.java for md.
func EmitRecord(md *meta.Metadata) (string, error) {
	view, err := common.NewView(md, "//")
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := recordTmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("execute Java record template: %w", err)
	}
	return buf.String(), nil
}
