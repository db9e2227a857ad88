package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Alia5/fwgen/internal/cmd"
	"github.com/Alia5/fwgen/internal/codegen/target"
	"github.com/Alia5/fwgen/internal/configpaths"
	"github.com/Alia5/fwgen/internal/log"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
	"github.com/fatih/color"
	"golang.org/x/term"
)

func main() {
	os.Exit(run())
}

func run() int {
	paths := configpaths.Search(configpaths.UserConfig(os.Args[1:]))

	var cli cmd.CLI
	ctx := kong.Parse(&cli,
		kong.Name("fwgen"),
		kong.Description("Generate record types and fixed-width parsers from column schemas"),
		kong.UsageOnError(),
		// flags and env override config files; earlier files win
		kong.Configuration(kong.JSON, paths.JSON...),
		kong.Configuration(kongyaml.Loader, paths.YAML...),
		kong.Configuration(kongtoml.Loader, paths.TOML...),
	)

	color.NoColor = color.NoColor || !term.IsTerminal(int(os.Stdout.Fd()))

	logger, closers, err := log.SetupLogger(cli.Log.Level, cli.Log.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to setup logger: %v\n", err)
		return 2
	}
	defer func() {
		for _, c := range closers {
			_ = c.Close()
		}
	}()

	rejects := log.NewReject(nil)
	if cli.Log.RejectFile != "" {
		f, err := os.OpenFile(cli.Log.RejectFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			logger.Error("Failed to open reject log", "file", cli.Log.RejectFile, "error", err)
			return 2
		}
		closers = append(closers, f)
		rejects = log.NewReject(f)
	}

	targets, err := target.Load(cli.TargetsFile)
	if err != nil {
		logger.Error("Failed to load targets", "file", cli.TargetsFile, "error", err)
		return 2
	}

	ctx.Bind(logger, targets)
	ctx.BindTo(rejects, (*log.RejectLogger)(nil))
	ctx.BindTo(os.Stdout, (*io.Writer)(nil))

	if err := ctx.Run(); err != nil {
		logger.Error("Command failed", "command", ctx.Command(), "error", err)
		return 1
	}
	return 0
}
