package generator_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/fwgen/internal/codegen/generator"
	"github.com/Alia5/fwgen/internal/codegen/target"
	"github.com/Alia5/fwgen/internal/schema"
	fwtest "github.com/Alia5/fwgen/internal/testing"
)

const valid1 = "name 1 20\ngender 20 21\nage 22 25\n"

func writeSchema(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.schema")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestEmit(t *testing.T) {
	for _, name := range target.Builtin().Names() {
		t.Run(name, func(t *testing.T) {
			lang := fwtest.Language(t, name)
			cols := fwtest.Columns(t, valid1, name)

			art, err := generator.Emit(lang, "", cols)
			require.NoError(t, err)
			assert.Same(t, lang, art.Language)
			assert.Contains(t, art.Record, "package "+lang.Package)
			assert.Contains(t, art.Parser, "package "+lang.Package)
			assert.Contains(t, art.Record, "gender")
			assert.Contains(t, art.Parser, "25")

			again, err := generator.Emit(lang, "", cols)
			require.NoError(t, err)
			assert.Equal(t, art, again)
		})
	}
}

func TestEmitPackageOverride(t *testing.T) {
	lang := fwtest.Language(t, "kotlin")
	art, err := generator.Emit(lang, "com.acme.bank", fwtest.Columns(t, valid1, "kotlin"))
	require.NoError(t, err)
	assert.Contains(t, art.Record, "package com.acme.bank\n")
	assert.Contains(t, art.Parser, "package com.acme.bank\n")
}

func TestEmitUnknownEmitter(t *testing.T) {
	lang := &target.Language{Name: "cobol", RecordFile: "RECORD.cbl", ParserFile: "PARSER.cbl"}
	_, err := generator.Emit(lang, "", []schema.Column{{Name: "a", RawName: "a", Start: 1, End: 2}})
	assert.ErrorContains(t, err, "no emitter for target 'cobol'")
}

func TestGenerateLang(t *testing.T) {
	out := t.TempDir()
	g := generator.New(out, nil, fwtest.DiscardLogger())

	files, err := g.GenerateLang(writeSchema(t, valid1), "java", "")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(out, "Record.java"),
		filepath.Join(out, "FixedLengthParser.java"),
	}, files)

	for _, f := range files {
		data, err := os.ReadFile(f)
		require.NoError(t, err)
		assert.Contains(t, string(data), "package org.example;")
	}
}

func TestGenAll(t *testing.T) {
	out := t.TempDir()
	g := generator.New(out, target.Builtin(), fwtest.DiscardLogger())

	files, err := g.GenAll(writeSchema(t, valid1), "")
	require.NoError(t, err)
	assert.Len(t, files, 6)

	for _, p := range []string{
		filepath.Join(out, "go", "record.go"),
		filepath.Join(out, "go", "parser.go"),
		filepath.Join(out, "java", "Record.java"),
		filepath.Join(out, "java", "FixedLengthParser.java"),
		filepath.Join(out, "kotlin", "Record.kt"),
		filepath.Join(out, "kotlin", "FixedLengthParser.kt"),
	} {
		assert.FileExists(t, p)
	}
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name    string
		schema  string
		lang    string
		message string
	}{
		{name: "empty schema", schema: "", lang: "java", message: "defines no columns"},
		{name: "unknown target", schema: valid1, lang: "cobol", message: "unknown target 'cobol'"},
		{name: "reserved word", schema: "class 1 5\n", lang: "java", message: "reserved keyword in Java"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "out")
			g := generator.New(out, nil, fwtest.DiscardLogger())

			files, err := g.GenerateLang(writeSchema(t, tt.schema), tt.lang, "")
			assert.ErrorContains(t, err, tt.message)
			assert.Empty(t, files)
			assert.NoDirExists(t, out)
		})
	}
}

func TestGenerateSchemaErrorIsTyped(t *testing.T) {
	g := generator.New(t.TempDir(), nil, fwtest.DiscardLogger())
	_, err := g.GenerateLang(writeSchema(t, "a 1 5\nb 3 8\n"), "kotlin", "")
	assert.ErrorIs(t, err, schema.ErrOutOfOrderRange)
}

func TestCompileFileMissing(t *testing.T) {
	g := generator.New(t.TempDir(), nil, fwtest.DiscardLogger())
	_, err := g.CompileFile(filepath.Join(t.TempDir(), "missing.schema"), fwtest.Language(t, "java"))
	assert.ErrorContains(t, err, "open schema")
}

func TestRender(t *testing.T) {
	g := generator.New(filepath.Join(t.TempDir(), "unused"), nil, fwtest.DiscardLogger())
	assert.Equal(t, []string{"go", "java", "kotlin"}, g.Languages())

	art, err := g.Render(writeSchema(t, valid1), "go", "")
	require.NoError(t, err)
	assert.Equal(t, "go", art.Language.Name)
	assert.Contains(t, art.Parser, "const LineWidth = 25")

	_, err = g.Render(writeSchema(t, "\n"), "go", "")
	assert.Error(t, err)
	_, err = g.Render(writeSchema(t, ""), "go", "")
	assert.ErrorContains(t, err, "defines no columns")
}

func TestCompileFileFlagsOnlySubstitutedNames(t *testing.T) {
	g := generator.New(t.TempDir(), nil, fwtest.DiscardLogger())
	cols, err := g.CompileFile(writeSchema(t, "Unknown 1 2\n??? 3 4\n"), fwtest.Language(t, "java"))
	require.Error(t, err)
	assert.Nil(t, cols)

	cols, err = g.CompileFile(writeSchema(t, "Unknown 1 2\nvalue$ 3 4\n"), fwtest.Language(t, "java"))
	require.NoError(t, err)
	assert.False(t, cols[0].IsFallback())
}
