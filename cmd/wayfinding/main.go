// wayfinding fills an SVG trail-sign template once per row of a CSV table.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/goliatone/go-wayfinding/pkg/config"
	"github.com/goliatone/go-wayfinding/pkg/convert"
	"github.com/goliatone/go-wayfinding/pkg/orchestrator"
	"github.com/goliatone/go-wayfinding/pkg/prompt"
	"github.com/goliatone/go-wayfinding/pkg/source"
)

func main() {
	driver := prompt.NewSurvey(prompt.WithStdio(os.Stdin, os.Stderr, os.Stderr))
	err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, driver)
	if code := exitCode(err); code != 0 {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(code)
	}
}

// exitCode maps the result of run to a process status. An explicit help
// request is a success.
func exitCode(err error) int {
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return 0
	}
	return 1
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, driver prompt.Driver) error {
	fs := flag.NewFlagSet("wayfinding", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configPath      string
		printConvert    bool
		convertTemplate string
		convertFile     string
		interactive     bool
		stripMarkup     bool
		verbose         bool
	)

	fs.StringVar(&configPath, "config", "", "JSON or YAML file overriding labels, columns and commands")
	fs.BoolVar(&printConvert, "convert", false, "print a conversion command for every generated file")
	fs.StringVar(&convertTemplate, "convert-template", "", "conversion command template (variables: input, output, sign_id)")
	fs.StringVar(&convertFile, "convert-template-file", "", "file holding the conversion command template")
	fs.BoolVar(&interactive, "interactive", false, "ask before overwriting existing output files")
	fs.BoolVar(&stripMarkup, "strip-markup", false, "strip HTML markup from table cells")
	fs.BoolVar(&verbose, "v", false, "log every written sign")

	fs.Usage = func() {
		fmt.Fprintf(stderr, `Usage: wayfinding [flags] TEMPLATE TABLE OUTPUT_PREFIX

Fill the SVG sign TEMPLATE once per row of the CSV TABLE and write each sign
to OUTPUT_PREFIX + SignID + ".svg". OUTPUT_PREFIX may include a directory and
a partial file name.

Flags:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 3 {
		fs.Usage()
		return fmt.Errorf("expected 3 arguments, got %d", fs.NArg())
	}
	templatePath, tablePath, prefix := fs.Arg(0), fs.Arg(1), fs.Arg(2)

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if stripMarkup {
		cfg.Text.StripMarkup = true
	}
	if convertFile != "" {
		cfg.Convert.CommandFile = convertFile
		printConvert = true
	}
	if convertTemplate != "" {
		cfg.Convert.Command = convertTemplate
		cfg.Convert.CommandFile = ""
		printConvert = true
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	options := []orchestrator.Option{
		orchestrator.WithConfig(cfg),
		orchestrator.WithLogger(logger),
	}
	if printConvert {
		builder, err := newConverter(cfg.Convert)
		if err != nil {
			return err
		}
		options = append(options, orchestrator.WithConverter(builder, stdout))
	}
	if interactive {
		options = append(options, orchestrator.WithOverwriteConfirmation(driver))
	}

	_, err = orchestrator.New(options...).Generate(ctx, orchestrator.Request{
		Template:     source.FromFile(templatePath),
		Table:        source.FromFile(tablePath),
		OutputPrefix: prefix,
	})
	return err
}

func newConverter(cfg config.ConvertConfig) (*convert.Builder, error) {
	options := []convert.Option{
		convert.WithExtension(cfg.Extension),
		convert.WithVars(cfg.Vars),
	}
	if cfg.CommandFile != "" {
		return convert.NewFileBuilder(cfg.CommandFile, options...)
	}
	return convert.NewBuilder(cfg.Command, options...)
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default()
	}
	return config.LoadFile(path)
}
