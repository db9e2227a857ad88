package testing

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	"github.com/Alia5/fwgen/internal/codegen/target"
	"github.com/Alia5/fwgen/internal/schema"
)

var update = flag.Bool("update", false, "rewrite golden files in testdata")

// Language looks up a built-in target.
func Language(t *testing.T, name string) *target.Language {
	t.Helper()
	lang, err := target.Builtin().Lookup(name)
	require.NoError(t, err)
	return lang
}

// Columns compiles schema text for the named built-in target.
func Columns(t *testing.T, text, lang string) []schema.Column {
	t.Helper()
	cols, err := schema.Compile(text, Language(t, lang))
	require.NoError(t, err)
	return cols
}

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// Golden compares got with testdata/<name>. With -update the file is
// rewritten instead.
func Golden(t *testing.T, name, got string) {
	t.Helper()
	path := filepath.Join("testdata", name)
	if *update {
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(got), 0o644))
		return
	}
	want, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, string(want), got)
}

// FixedLine lays values out according to cols. Each value is left-justified
// into the cells its column does not share with a neighbour, space-padded and
// cut to fit, so that parsing the line returns the values again.
func FixedLine(cols []schema.Column, values ...string) string {
	line := []rune(strings.Repeat(" ", schema.LineWidth(cols)))
	prevEnd := 0
	for i, c := range cols {
		lo := max(c.Start-1, prevEnd, 0)
		hi := c.End
		if i+1 < len(cols) {
			hi = min(hi, max(cols[i+1].Start-1, 0))
		}
		prevEnd = c.End
		if hi <= lo {
			continue
		}
		v := []rune(values[i])
		if len(v) > hi-lo {
			v = v[:hi-lo]
		}
		copy(line[lo:], v)
	}
	return string(line)
}

// Width returns the character count of s.
func Width(s string) int {
	return utf8.RuneCountInString(s)
}
