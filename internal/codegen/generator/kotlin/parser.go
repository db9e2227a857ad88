package kotlin

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Alia5/fwgen/internal/codegen/common"
	"github.com/Alia5/fwgen/internal/codegen/meta"
)

var parserTmpl = template.Must(template.New("parser").Funcs(tplFuncs).Parse(`{{.Header}}
package {{.Package}}

import java.io.File
import java.io.IOException

class FixedLengthParser {
    /**
     * Parses one fixed-width line, or returns null when the line is not
     * exactly LINE_WIDTH characters long.
     */
    fun parseLine(line: String): Record? {
        if (line.codePointCount(0, line.length) != LINE_WIDTH) {
            // Handle lines with unexpected length
            println("Data '$line' is not parsed as it does not follow the schema.")
            return null
        }

        // Extract fields based on fixed positions
        return Record(
{{- range .Fields}}
            extractField(line, {{.From}}, {{.To}}), // {{.Name}} {{.Start}}-{{.End}}
{{- end}}
        )
    }

    @Throws(IOException::class)
    fun parseFile(filePath: String): List<Record> {
        val records = mutableListOf<Record>()

        File(filePath).bufferedReader().useLines { lines ->
            lines.forEach { line ->
                parseLine(line)?.let { records.add(it) }
            }
        }
        return records
    }

    // begin and end count code points, so characters outside the BMP take
    // one position like any other.
    private fun extractField(line: String, begin: Int, end: Int): String {
        val from = line.offsetByCodePoints(0, begin)
        val to = line.offsetByCodePoints(from, end - begin)
        return line.substring(from, to).trim()
    }

    companion object {
        const val LINE_WIDTH = {{.Width}}
    }
}
`))

// EmitParser renders FixedLengthParser.kt for md.
func EmitParser(md *meta.Metadata) (string, error) {
	view, err := common.NewView(md, "//")
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := parserTmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("execute Kotlin parser template: %w", err)
	}
	return buf.String(), nil
}
