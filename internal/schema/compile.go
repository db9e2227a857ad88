package schema

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Compile validates schema text and returns its columns in declaration order.
// It stops at the first invalid line and returns a *SchemaError for it.
// A nil dialect accepts [A-Za-z0-9_$] names and reserves no words.
func Compile(text string, d Dialect) ([]Column, error) {
	if d == nil {
		d = plainDialect{}
	}

	lines := splitLines(text)
	cols := make([]Column, 0, len(lines))
	names := make(map[string]struct{}, len(lines))
	prevEnd := 0

	for i, line := range lines {
		lineNo := i + 1

		tokens := splitTokens(line)
		if len(tokens) != 3 {
			return nil, &SchemaError{Kind: MalformedLine, Line: lineNo, Text: line}
		}

		start, ok := parseOffset(tokens[1])
		if !ok {
			return nil, &SchemaError{Kind: MalformedLine, Line: lineNo, Text: line}
		}
		end, ok := parseOffset(tokens[2])
		if !ok {
			return nil, &SchemaError{Kind: MalformedLine, Line: lineNo, Text: line}
		}

		if start > end || start < 0 || end < 0 {
			return nil, &SchemaError{Kind: InvalidRange, Line: lineNo, Text: line}
		}
		if start < prevEnd {
			return nil, &SchemaError{Kind: OutOfOrderRange, Line: lineNo, Text: line}
		}

		name, fallback := normalize(tokens[0], d)
		if d.IsReserved(name) {
			return nil, &SchemaError{Kind: InvalidName, Line: lineNo, Text: line, Name: name, Language: d.DisplayName()}
		}
		if _, dup := names[name]; dup {
			return nil, &SchemaError{Kind: DuplicateName, Line: lineNo, Text: line, Name: name}
		}
		names[name] = struct{}{}

		cols = append(cols, Column{Name: name, RawName: tokens[0], Start: start, End: end, Fallback: fallback})
		prevEnd = end
	}
	return cols, nil
}

// CompileReader reads all of r and compiles it.
func CompileReader(r io.Reader, d Dialect) ([]Column, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	return Compile(string(data), d)
}

// splitLines splits on '\n', drops a trailing '\r' from each line and ignores
// the empty remainder after a final newline.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// splitTokens splits a line on runs of ASCII whitespace. A leading name
// wrapped in double quotes and followed by whitespace is kept as a single
// token, so it may contain whitespace itself. Anything else is split as plain
// fields.
func splitTokens(line string) []string {
	trimmed := strings.TrimFunc(line, isSpace)
	if strings.HasPrefix(trimmed, `"`) {
		if closing := strings.IndexByte(trimmed[1:], '"'); closing >= 0 {
			rest := trimmed[closing+2:]
			if rest != "" && isSpace(rune(rest[0])) {
				return append([]string{trimmed[1 : closing+1]}, fields(rest)...)
			}
		}
	}
	return fields(trimmed)
}

// parseOffset accepts only unsigned base-10 integers.
func parseOffset(tok string) (int, bool) {
	if tok == "" {
		return 0, false
	}
	for i := 0; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, false
	}
	return n, true
}
