package gogen

import (
	"text/template"

	"github.com/Alia5/fwgen/internal/codegen/meta"
)

var parserTmpl = template.Must(template.New("parser").Parse(`{{.Header}}
package {{.Package}}

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"
)

// LineWidth is the character count of a line that follows the schema.
const LineWidth = {{.Width}}

// ParseLine slices a fixed-width line into a Record. Lines that are not
// exactly LineWidth characters long are rejected with an error.
func ParseLine(line string) (*Record, error) {
	if utf8.RuneCountInString(line) != LineWidth {
		return nil, fmt.Errorf("data %q is not parsed as it does not follow the schema", line)
	}
{{- if .Fields}}
	runes := []rune(line)
{{- end}}

	rec := NewRecord(
{{- range .Fields}}
		strings.TrimSpace(string(runes[{{.From}}:{{.To}}])), // {{.Name}} {{.Start}}-{{.End}}
{{- end}}
	)
	return &rec, nil
}

// ParseFile parses every line of the file at path. Rejected lines are logged
// and skipped, whatever their length.
func ParseFile(path string, logger *slog.Logger) ([]*Record, error) {
	if logger == nil {
		logger = slog.Default()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var records []*Record
	reader := bufio.NewReader(f)
	for lineNo := 1; ; lineNo++ {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return records, err
		}
		if line == "" && err != nil {
			break
		}
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")

		rec, perr := ParseLine(line)
		if perr != nil {
			logger.Warn("Skipping line", "line", lineNo, "error", perr)
		} else {
			records = append(records, rec)
		}
		if err != nil {
			break
		}
	}
	return records, nil
}
`))

// EmitParser renders parser.go for md.
func EmitParser(md *meta.Metadata) (string, error) {
	return render(parserTmpl, md)
}
