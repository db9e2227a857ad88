package record

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/Alia5/fwgen/internal/log"
	"github.com/Alia5/fwgen/internal/schema"
)

// LineError reports a data line whose length does not match the schema.
type LineError struct {
	Line int // 1-based, 0 when parsed on its own
	Text string
	Want int
	Got  int
}

func (e *LineError) Error() string {
	return fmt.Sprintf("Data '%s' is not parsed as it does not follow the schema.", e.Text)
}

// Parser slices lines according to a compiled column list.
type Parser struct {
	columns []schema.Column
	width   int
}

// NewParser returns a Parser for cols. The column list is not copied and must
// not be modified afterwards.
func NewParser(cols []schema.Column) *Parser {
	return &Parser{columns: cols, width: schema.LineWidth(cols)}
}

// Width is the exact character count of an accepted line.
func (p *Parser) Width() int {
	return p.width
}

// ParseLine extracts every column from line. Offsets count characters, not
// bytes. Lines whose length differs from Width are rejected with *LineError.
func (p *Parser) ParseLine(line string) (Record, error) {
	if n := utf8.RuneCountInString(line); n != p.width {
		return Record{}, &LineError{Text: line, Want: p.width, Got: n}
	}

	runes := []rune(line)
	fields := make([]Field, len(p.columns))
	for i, c := range p.columns {
		from := c.Start - 1
		if from < 0 {
			from = 0
		}
		fields[i] = Field{Name: c.Name, Value: strings.TrimSpace(string(runes[from:c.End]))}
	}
	return Record{Fields: fields}, nil
}

// ParseReader parses every line of r. Rejected lines are logged, passed to
// rejects when non-nil, and skipped; they never stop the scan, whatever their
// length. The returned error is only set for read failures.
func (p *Parser) ParseReader(logger *slog.Logger, rejects log.RejectLogger, r io.Reader) ([]Record, error) {
	if logger == nil {
		logger = slog.Default()
	}
	var records []Record

	reader := bufio.NewReader(r)
	lineNo := 0
	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return records, fmt.Errorf("read data line %d: %w", lineNo+1, err)
		}
		if line == "" && err != nil {
			break
		}
		lineNo++
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")

		if rec, perr := p.ParseLine(line); perr != nil {
			var le *LineError
			if !errors.As(perr, &le) {
				return records, perr
			}
			le.Line = lineNo
			logger.Warn("Skipping line", "line", lineNo, "want", le.Want, "got", le.Got)
			if rejects != nil {
				rejects.Log(lineNo, line, perr)
			}
		} else {
			rec.Line = lineNo
			records = append(records, rec)
		}
		if err != nil {
			break
		}
	}

	logger.Debug("Parsed data", "records", len(records), "lines", lineNo)
	return records, nil
}
