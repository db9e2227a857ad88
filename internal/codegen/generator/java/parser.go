package java

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Alia5/fwgen/internal/codegen/common"
	"github.com/Alia5/fwgen/internal/codegen/meta"
)

var parserTmpl = template.Must(template.New("parser").Parse(`{{.Header}}
package {{.Package}};

import java.io.BufferedReader;
import java.io.FileReader;
import java.io.IOException;
import java.util.ArrayList;
import java.util.List;

public class FixedLengthParser {
    public static final int LINE_WIDTH = {{.Width}};

    /**
     * Parses one fixed-width line, or returns null when the line is not
     * exactly LINE_WIDTH characters long.
     */
    public Record parseLine(String line) {
        if (line.codePointCount(0, line.length()) != LINE_WIDTH) {
            // Handle lines with unexpected length
            System.out.println("Data '" + line + "' is not parsed as it does not follow the schema.");
            return null;
        }

        // Extract fields based on fixed positions
        return new Record(
{{- range .Fields}}
                extractField(line, {{.From}}, {{.To}}){{if not .Last}},{{end}} // {{.Name}} {{.Start}}-{{.End}}
{{- end}}
        );
    }

    public List<Record> parseFile(String filePath) throws IOException {
        List<Record> records = new ArrayList<>();
        try (BufferedReader reader = new BufferedReader(new FileReader(filePath))) {
            String line;
            while ((line = reader.readLine()) != null) {
                Record record = parseLine(line);
                if (record != null) {
                    records.add(record);
                }
            }
        }
        return records;
    }

    // begin and end count code points, so characters outside the BMP take
    // one position like any other.
    private static String extractField(String line, int begin, int end) {
        int from = line.offsetByCodePoints(0, begin);
        int to = line.offsetByCodePoints(from, end - begin);
        return line.substring(from, to).trim();
    }
}
`))

// EmitParser renders FixedLengthParser.java for md.
func EmitParser(md *meta.Metadata) (string, error) {
	view, err := common.NewView(md, "//")
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := parserTmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("execute Java parser template: %w", err)
	}
	return buf.String(), nil
}
