package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/Alia5/fwgen/internal/codegen/generator"
	"github.com/Alia5/fwgen/internal/codegen/target"
)

type Generate struct {
	Schema  string `arg:"" help:"Schema file, one 'name start end' column per line" type:"existingfile"`
	Output  string `help:"Output directory for generated sources" default:"." env:"FWGEN_OUTPUT"`
	Target  string `help:"Target language, or 'all' for every known target" default:"java" env:"FWGEN_TARGET"`
	Package string `help:"Package of the generated sources (defaults per target)" env:"FWGEN_PACKAGE"`
	Print   bool   `help:"Print the generated sources instead of writing files"`
}

// Run is called by Kong when the generate command is executed.
func (g *Generate) Run(logger *slog.Logger, targets *target.Registry, out io.Writer) error {
	logger.Info("Starting fwgen code generation", "schema", g.Schema, "output", g.Output, "target", g.Target)

	gen := generator.New(g.Output, targets, logger)
	if g.Print {
		return g.print(gen, out)
	}
	if g.Target == "all" {
		_, err := gen.GenAll(g.Schema, g.Package)
		return err
	}
	_, err := gen.GenerateLang(g.Schema, g.Target, g.Package)
	return err
}

func (g *Generate) print(gen *generator.Generator, out io.Writer) error {
	langs := []string{g.Target}
	if g.Target == "all" {
		langs = gen.Languages()
	}
	for _, name := range langs {
		art, err := gen.Render(g.Schema, name, g.Package)
		if err != nil {
			return err
		}
		record, parser := art.Language.RecordFile, art.Language.ParserFile
		if len(langs) > 1 {
			record, parser = name+"/"+record, name+"/"+parser
		}
		if _, err := fmt.Fprintf(out, "%s\n%s\n%s\n%s", banner(record), art.Record, banner(parser), art.Parser); err != nil {
			return err
		}
	}
	return nil
}

func banner(name string) string {
	return "==> " + name + " <=="
}
