package gogen_test

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gogen "github.com/Alia5/fwgen/internal/codegen/generator/golang"
	"github.com/Alia5/fwgen/internal/codegen/meta"
	"github.com/Alia5/fwgen/internal/schema"
	fwtest "github.com/Alia5/fwgen/internal/testing"
)

const valid1 = "name 1 20\ngender 20 21\nage 22 25\n"

func metadata(t *testing.T, text string) *meta.Metadata {
	t.Helper()
	return &meta.Metadata{Package: "records", Columns: fwtest.Columns(t, text, "go")}
}

// parseSource fails the test when src is not valid Go and returns its
// top-level declaration names.
func parseSource(t *testing.T, name, src string) map[string]bool {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), name, src, parser.ParseComments)
	require.NoError(t, err, src)
	assert.Equal(t, "records", f.Name.Name)

	decls := map[string]bool{}
	for _, d := range f.Decls {
		switch d := d.(type) {
		case *ast.FuncDecl:
			decls[d.Name.Name] = true
		case *ast.GenDecl:
			for _, s := range d.Specs {
				switch s := s.(type) {
				case *ast.TypeSpec:
					decls[s.Name.Name] = true
				case *ast.ValueSpec:
					for _, n := range s.Names {
						decls[n.Name] = true
					}
				}
			}
		}
	}
	return decls
}

func TestEmitRecord(t *testing.T) {
	out, err := gogen.EmitRecord(metadata(t, valid1))
	require.NoError(t, err)

	assert.Contains(t, out, "// Code generated by fwgen ")
	assert.Contains(t, out, "DO NOT EDIT.\n\npackage records\n")

	decls := parseSource(t, "record.go", out)
	assert.True(t, decls["Record"])
	assert.True(t, decls["NewRecord"])
	assert.True(t, decls["String"])

	assert.Contains(t, out, "func NewRecord(name string, gender string, age string) Record {")
	assert.Contains(t, out, `fmt.Sprintf("Record {name='%s', gender='%s', age='%s'}", r.name, r.gender, r.age)`)
}

func TestEmitParser(t *testing.T) {
	out, err := gogen.EmitParser(metadata(t, valid1))
	require.NoError(t, err)

	decls := parseSource(t, "parser.go", out)
	assert.True(t, decls["LineWidth"])
	assert.True(t, decls["ParseLine"])
	assert.True(t, decls["ParseFile"])

	assert.Contains(t, out, "const LineWidth = 25")
	assert.Contains(t, out, "strings.TrimSpace(string(runes[0:20])),")
	assert.Contains(t, out, "strings.TrimSpace(string(runes[19:21])),")
	assert.Contains(t, out, "strings.TrimSpace(string(runes[21:25])),")
	assert.Contains(t, out, "is not parsed as it does not follow the schema")
	assert.Contains(t, out, `reader.ReadString('\n')`)
	assert.NotContains(t, out, "bufio.NewScanner")
}

func TestEmitIsDeterministic(t *testing.T) {
	md := metadata(t, valid1)
	first, err := gogen.EmitParser(md)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := gogen.EmitParser(md)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestEmitEmpty(t *testing.T) {
	md := &meta.Metadata{Package: "records", Columns: []schema.Column{}}

	record, err := gogen.EmitRecord(md)
	require.NoError(t, err)
	parseSource(t, "record.go", record)
	assert.Contains(t, record, `fmt.Sprintf("Record {}")`)

	parser, err := gogen.EmitParser(md)
	require.NoError(t, err)
	parseSource(t, "parser.go", parser)
	assert.Contains(t, parser, "const LineWidth = 0")
	assert.NotContains(t, parser, "runes :=")
}

func TestEmitInvalidPackage(t *testing.T) {
	md := metadata(t, valid1)
	md.Package = "org.example"

	_, err := gogen.EmitRecord(md)
	assert.ErrorContains(t, err, `invalid Go package name "org.example"`)
	_, err = gogen.EmitParser(md)
	assert.ErrorContains(t, err, `invalid Go package name "org.example"`)
}

// awkward names shadow builtins, the fmt package and the String receiver
const awkward = "string 1 6\nfmt 7 12\nr 13 14\nlen 15 20\n"

func emitAll(t *testing.T, md *meta.Metadata) map[string]string {
	t.Helper()
	record, err := gogen.EmitRecord(md)
	require.NoError(t, err)
	parser, err := gogen.EmitParser(md)
	require.NoError(t, err)
	return map[string]string{"record.go": record, "parser.go": parser}
}

func TestEmittedSourceTypeChecks(t *testing.T) {
	for name, text := range map[string]string{"valid1": valid1, "awkward": awkward, "empty": ""} {
		t.Run(name, func(t *testing.T) {
			md := &meta.Metadata{Package: "records", Columns: []schema.Column{}}
			if text != "" {
				md = metadata(t, text)
			}

			fset := token.NewFileSet()
			var files []*ast.File
			for file, src := range emitAll(t, md) {
				f, err := parser.ParseFile(fset, file, src, 0)
				require.NoError(t, err, src)
				files = append(files, f)
			}

			conf := types.Config{Importer: importer.Default()}
			pkg, err := conf.Check("records", fset, files, nil)
			require.NoError(t, err)
			assert.NotNil(t, pkg.Scope().Lookup("ParseFile"))
		})
	}
}

const roundTripMain = `package main

import (
	"fmt"
	"os"
)

func main() {
	recs, err := ParseFile(os.Args[1], nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	for _, rec := range recs {
		fmt.Println(rec.String())
	}
}
`

func TestEmittedParserRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("builds the generated package")
	}
	goBin, err := exec.LookPath("go")
	if err != nil {
		t.Skip("go toolchain not on PATH")
	}

	cols := fwtest.Columns(t, awkward, "go")
	md := &meta.Metadata{Package: "main", Columns: cols}

	dir := t.TempDir()
	for file, src := range emitAll(t, md) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, file), []byte(src), 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"), []byte(roundTripMain), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/roundtrip\n\ngo 1.21\n"), 0o644))

	data := strings.Join([]string{
		fwtest.FixedLine(cols, "alpha", "beta", "xy", "1234"),
		strings.Repeat("x", 100000),
		"short",
		fwtest.FixedLine(cols, "Zürich", "é", "q", ""),
	}, "\n") + "\n"
	dataPath := filepath.Join(dir, "data.txt")
	require.NoError(t, os.WriteFile(dataPath, []byte(data), 0o644))

	cmd := exec.CommandContext(t.Context(), goBin, "run", ".", dataPath)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "GOWORK=off", "GOFLAGS=-mod=mod")
	var stderr strings.Builder
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	require.NoError(t, err, stderr.String())

	assert.Equal(t,
		"Record {string='alpha', fmt='beta', r='xy', len='1234'}\n"+
			"Record {string='Zürich', fmt='é', r='q', len=''}\n",
		string(out))
	assert.Equal(t, 2, strings.Count(stderr.String(), "Skipping line"))
}
