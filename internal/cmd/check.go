package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/Alia5/fwgen/internal/codegen/generator"
	"github.com/Alia5/fwgen/internal/codegen/target"
	"github.com/Alia5/fwgen/internal/schema"

	"github.com/fatih/color"
	json "github.com/goccy/go-json"
	"github.com/hashicorp/go-multierror"
	yaml "gopkg.in/yaml.v3"
)

var (
	okColor   = color.New(color.FgGreen, color.Bold)
	failColor = color.New(color.FgRed, color.Bold)
)

type Check struct {
	Schemas []string `arg:"" name:"schema" help:"Schema files to validate"`
	Target  string   `help:"Target language whose naming rules apply" default:"java" env:"FWGEN_TARGET"`
	Format  string   `help:"Output format" enum:"text,json,yaml" default:"text"`
}

type columnReport struct {
	Name  string `json:"name" yaml:"name"`
	Start int    `json:"start" yaml:"start"`
	End   int    `json:"end" yaml:"end"`
	Width int    `json:"width" yaml:"width"`
}

type schemaReport struct {
	Schema  string         `json:"schema" yaml:"schema"`
	Columns []columnReport `json:"columns,omitempty" yaml:"columns,omitempty"`
	Kind    string         `json:"kind,omitempty" yaml:"kind,omitempty"`
	Error   string         `json:"error,omitempty" yaml:"error,omitempty"`
}

// Run is called by Kong when the check command is executed. Every schema is
// checked; the failures of all of them are returned together.
func (c *Check) Run(logger *slog.Logger, targets *target.Registry, out io.Writer) error {
	lang, err := targets.Lookup(c.Target)
	if err != nil {
		return err
	}
	gen := generator.New("", targets, logger)

	var result *multierror.Error
	reports := make([]schemaReport, 0, len(c.Schemas))
	for _, path := range c.Schemas {
		report := schemaReport{Schema: path}
		cols, err := gen.CompileFile(path, lang)
		if err != nil {
			var se *schema.SchemaError
			if errors.As(err, &se) {
				report.Kind = se.Kind.String()
			}
			report.Error = err.Error()
			result = multierror.Append(result, fmt.Errorf("%s: %w", path, err))
		}
		for _, col := range cols {
			report.Columns = append(report.Columns, columnReport{Name: col.Name, Start: col.Start, End: col.End, Width: col.Width()})
		}
		reports = append(reports, report)
	}

	if err := writeReports(out, c.Format, reports); err != nil {
		return err
	}
	return result.ErrorOrNil()
}

func writeReports(out io.Writer, format string, reports []schemaReport) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(reports, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "%s\n", data)
		return err
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return err
		}
		return enc.Close()
	}

	for _, r := range reports {
		if r.Error != "" {
			fmt.Fprintf(out, "%s %s\n    %s\n", failColor.Sprint("FAIL"), r.Schema, r.Error)
			continue
		}
		fmt.Fprintf(out, "%s %s (%d columns)\n", okColor.Sprint("ok"), r.Schema, len(r.Columns))
		for _, col := range r.Columns {
			fmt.Fprintf(out, "    %-24s %5d %5d\n", col.Name, col.Start, col.End)
		}
	}
	return nil
}
