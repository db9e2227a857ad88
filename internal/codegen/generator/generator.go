package generator

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	gogen "github.com/Alia5/fwgen/internal/codegen/generator/golang"
	"github.com/Alia5/fwgen/internal/codegen/generator/java"
	"github.com/Alia5/fwgen/internal/codegen/generator/kotlin"
	"github.com/Alia5/fwgen/internal/codegen/meta"
	"github.com/Alia5/fwgen/internal/codegen/target"
	"github.com/Alia5/fwgen/internal/log"
	"github.com/Alia5/fwgen/internal/schema"
)

// EmitFunc renders one source artifact from validated metadata.
type EmitFunc func(md *meta.Metadata) (string, error)

// LanguageEmitter pairs the record and parser emitters of a target.
type LanguageEmitter struct {
	Record EmitFunc
	Parser EmitFunc
}

var emitters = map[string]LanguageEmitter{
	"go":     {Record: gogen.EmitRecord, Parser: gogen.EmitParser},
	"java":   {Record: java.EmitRecord, Parser: java.EmitParser},
	"kotlin": {Record: kotlin.EmitRecord, Parser: kotlin.EmitParser},
}

// Artifacts is the generated source text for one target.
type Artifacts struct {
	Language *target.Language
	Record   string
	Parser   string
}

// Emit renders both artifacts for cols. pkg overrides the target's default
// package when non-empty. Emit is a pure function of its arguments.
func Emit(lang *target.Language, pkg string, cols []schema.Column) (*Artifacts, error) {
	em, ok := emitters[lang.Name]
	if !ok {
		return nil, fmt.Errorf("no emitter for target '%s'", lang.Name)
	}
	if pkg == "" {
		pkg = lang.Package
	}
	md := &meta.Metadata{Package: pkg, Columns: cols}

	record, err := em.Record(md)
	if err != nil {
		return nil, fmt.Errorf("emit %s record: %w", lang.Name, err)
	}
	parser, err := em.Parser(md)
	if err != nil {
		return nil, fmt.Errorf("emit %s parser: %w", lang.Name, err)
	}
	return &Artifacts{Language: lang, Record: record, Parser: parser}, nil
}

type Generator struct {
	outputDir string
	targets   *target.Registry
	logger    *slog.Logger
}

func New(outputDir string, targets *target.Registry, logger *slog.Logger) *Generator {
	if targets == nil {
		targets = target.Builtin()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		outputDir: outputDir,
		targets:   targets,
		logger:    logger,
	}
}

// Languages returns the sorted names of the targets that have an emitter.
func (g *Generator) Languages() []string {
	var names []string
	for _, name := range g.targets.Names() {
		if _, ok := emitters[name]; ok {
			names = append(names, name)
		}
	}
	return names
}

// GenAll generates every target that has an emitter, each into its own
// subdirectory of the output directory.
func (g *Generator) GenAll(schemaPath, pkg string) ([]string, error) {
	var written []string
	for _, name := range g.targets.Names() {
		if _, ok := emitters[name]; !ok {
			g.logger.Warn("Skipping target without emitter", "target", name)
			continue
		}
		files, err := g.generate(schemaPath, name, pkg, filepath.Join(g.outputDir, name))
		if err != nil {
			return written, fmt.Errorf("generate %s sources: %w", name, err)
		}
		written = append(written, files...)
	}
	return written, nil
}

// GenerateLang generates the record and parser of one target directly into
// the output directory and returns the written paths.
func (g *Generator) GenerateLang(schemaPath, lang, pkg string) ([]string, error) {
	return g.generate(schemaPath, lang, pkg, g.outputDir)
}

// Render compiles the schema at schemaPath for the named target and emits
// its artifacts without writing anything. A schema without columns is
// rejected.
func (g *Generator) Render(schemaPath, langName, pkg string) (*Artifacts, error) {
	lang, err := g.targets.Lookup(langName)
	if err != nil {
		return nil, err
	}
	cols, err := g.CompileFile(schemaPath, lang)
	if err != nil {
		return nil, err
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("schema %s defines no columns", schemaPath)
	}
	return Emit(lang, pkg, cols)
}

func (g *Generator) generate(schemaPath, langName, pkg, outputPath string) ([]string, error) {
	g.logger.Info("Generating sources", "target", langName, "schema", schemaPath)

	art, err := g.Render(schemaPath, langName, pkg)
	if err != nil {
		return nil, err
	}
	lang := art.Language

	if err := os.MkdirAll(outputPath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s output directory: %w", lang.Name, err)
	}

	files := []struct {
		name string
		src  string
	}{
		{lang.RecordFile, art.Record},
		{lang.ParserFile, art.Parser},
	}
	var written []string
	for _, f := range files {
		out := filepath.Join(outputPath, f.name)
		if err := os.WriteFile(out, []byte(f.src), 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", f.name, err)
		}
		g.logger.Info("Generated "+f.name, "file", out)
		written = append(written, out)
	}

	g.logger.Info("Source generation complete", "target", lang.Name, "output", outputPath)
	return written, nil
}

// CompileFile reads and compiles the schema at path for lang.
func (g *Generator) CompileFile(path string, lang *target.Language) ([]schema.Column, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open schema: %w", err)
	}
	defer f.Close()

	cols, err := schema.CompileReader(f, lang)
	if err != nil {
		return nil, err
	}

	for _, c := range cols {
		if c.IsFallback() {
			g.logger.Warn("Column name is not a valid identifier and was renamed",
				"raw", c.RawName, "name", c.Name, "language", lang.DisplayName())
		}
		g.logger.Log(context.Background(), log.LevelTrace, "Compiled column", "column", c.String())
	}
	return cols, nil
}
