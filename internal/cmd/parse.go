package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Alia5/fwgen/internal/codegen/generator"
	"github.com/Alia5/fwgen/internal/codegen/target"
	"github.com/Alia5/fwgen/internal/log"
	"github.com/Alia5/fwgen/internal/record"

	json "github.com/goccy/go-json"
	yaml "gopkg.in/yaml.v3"
)

type Parse struct {
	Data   string `arg:"" help:"Fixed-width data file" type:"existingfile"`
	Schema string `help:"Schema file describing the data" required:"" type:"existingfile" env:"FWGEN_SCHEMA"`
	Target string `help:"Target language whose naming rules apply to column names" default:"java" env:"FWGEN_TARGET"`
	Format string `help:"Output format" enum:"text,json,yaml" default:"json"`
}

// Run is called by Kong when the parse command is executed.
func (p *Parse) Run(logger *slog.Logger, targets *target.Registry, rejects log.RejectLogger, out io.Writer) error {
	lang, err := targets.Lookup(p.Target)
	if err != nil {
		return err
	}
	cols, err := generator.New("", targets, logger).CompileFile(p.Schema, lang)
	if err != nil {
		return err
	}

	f, err := os.Open(p.Data)
	if err != nil {
		return fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()

	parser := record.NewParser(cols)
	logger.Info("Parsing data file", "file", p.Data, "columns", len(cols), "width", parser.Width())
	records, err := parser.ParseReader(logger, rejects, f)
	if err != nil {
		return err
	}
	logger.Info("Parsed records", "count", len(records))

	return writeRecords(out, p.Format, records)
}

func writeRecords(out io.Writer, format string, records []record.Record) error {
	switch format {
	case "json":
		if records == nil {
			records = []record.Record{}
		}
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "%s\n", data)
		return err
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return err
		}
		return enc.Close()
	}
	for _, r := range records {
		if _, err := fmt.Fprintln(out, r.String()); err != nil {
			return err
		}
	}
	return nil
}
