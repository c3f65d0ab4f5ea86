package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/goliatone/go-wayfinding/pkg/config"
	"github.com/goliatone/go-wayfinding/pkg/convert"
	"github.com/goliatone/go-wayfinding/pkg/filler"
	"github.com/goliatone/go-wayfinding/pkg/prompt"
	"github.com/goliatone/go-wayfinding/pkg/signs"
	"github.com/goliatone/go-wayfinding/pkg/source"
	"github.com/goliatone/go-wayfinding/pkg/svgdoc"
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects the loader used for template and table sources.
func WithLoader(loader *source.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithConfig replaces the embedded default configuration.
func WithConfig(cfg config.Config) Option {
	return func(o *Orchestrator) {
		o.config = cfg
		o.configSpecified = true
	}
}

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// WithTransformers registers transformers applied to every sign in order.
func WithTransformers(transformers ...Transformer) Option {
	return func(o *Orchestrator) {
		o.transformers = append(o.transformers, transformers...)
	}
}

// WithConverter prints one conversion command per written file to w.
func WithConverter(builder *convert.Builder, w io.Writer) Option {
	return func(o *Orchestrator) {
		o.converter = builder
		o.commandOut = w
	}
}

// WithOverwriteConfirmation asks driver before replacing an existing output
// file. Declined signs are reported as skipped.
func WithOverwriteConfirmation(driver prompt.Driver) Option {
	return func(o *Orchestrator) {
		o.confirm = driver
	}
}

// Orchestrator runs sign generation. It holds no per-run state, so one
// instance can serve several sequential runs.
type Orchestrator struct {
	loader          *source.Loader
	config          config.Config
	configSpecified bool
	logger          *slog.Logger
	transformers    []Transformer
	converter       *convert.Builder
	commandOut      io.Writer
	confirm         prompt.Driver
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies fall back to the built-in defaults.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one generation run.
type Request struct {
	// Template locates the SVG template. Optional when TemplateDocument is set.
	Template source.Source
	// TemplateDocument bypasses the loader with an already parsed template.
	TemplateDocument *svgdoc.Document

	// Table locates the CSV sign table. Optional when Rows is set.
	Table source.Source
	// Rows bypasses the loader with already decoded rows.
	Rows []signs.Row

	// OutputPrefix is concatenated with each sign ID and the output
	// extension. It may hold a directory and a partial file name.
	OutputPrefix string
}

// Output describes one processed sign.
type Output struct {
	Sign    signs.Sign
	Path    string
	Command string
}

// Report lists the signs handled by a run, in table order. On failure it
// holds everything processed before the failing row.
type Report struct {
	Written []Output
	Skipped []Output
}

// Generate fills the template once per row and writes each result to
// OutputPrefix + SignID + extension.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (Report, error) {
	var report Report
	if ctx == nil {
		return report, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return report, err
	}
	if err := o.initialiseErr; err != nil {
		return report, err
	}

	tpl, err := o.resolveTemplate(ctx, req)
	if err != nil {
		return report, err
	}
	rows, err := o.resolveRows(ctx, req)
	if err != nil {
		return report, err
	}

	seen := newIDGuard()
	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		out, written, err := o.generateRow(ctx, tpl, row, req.OutputPrefix, seen)
		if err != nil {
			return report, err
		}
		if written {
			report.Written = append(report.Written, out)
		} else {
			report.Skipped = append(report.Skipped, out)
		}
	}

	o.logger.Info("signs generated", "written", len(report.Written), "skipped", len(report.Skipped))
	return report, nil
}

func (o *Orchestrator) generateRow(ctx context.Context, tpl *filler.Template, row signs.Row, prefix string, seen idGuard) (Output, bool, error) {
	sign, err := row.Resolve(o.config.Columns)
	if err != nil {
		return Output{}, false, fmt.Errorf("orchestrator: %w", err)
	}
	for _, transformer := range o.transformers {
		if transformer == nil {
			continue
		}
		if err := transformer.Transform(ctx, &sign); err != nil {
			return Output{}, false, fmt.Errorf("orchestrator: transform sign %q: %w", sign.ID, err)
		}
	}
	if err := seen.observe(sign.ID); err != nil {
		return Output{}, false, err
	}

	logger := o.logger.With("sign", sign.ID, "line", row.Line)
	if !o.config.KnownDirection(sign.Direction) {
		logger.Warn("direction code not in known set", "direction", sign.Direction)
	}

	result, err := tpl.Fill(sign)
	if err != nil {
		return Output{}, false, fmt.Errorf("orchestrator: fill sign %q: %w", sign.ID, err)
	}
	if result.DirectionMatches == 0 {
		logger.Warn("no direction group revealed", "label", tpl.Labels().DirectionLabel(sign.Direction))
	}

	out := Output{Sign: sign, Path: prefix + sign.ID + o.config.Output.Extension}

	proceed, err := o.confirmOverwrite(ctx, out.Path)
	if err != nil {
		return Output{}, false, err
	}
	if !proceed {
		logger.Info("sign skipped", "path", out.Path)
		return out, false, nil
	}

	if err := result.Document.WriteFile(out.Path); err != nil {
		return Output{}, false, fmt.Errorf("orchestrator: write sign %q: %w", sign.ID, err)
	}
	logger.Debug("sign written", "path", out.Path)

	if o.converter != nil {
		line, err := o.converter.Command(sign.ID, out.Path)
		if err != nil {
			return Output{}, false, fmt.Errorf("orchestrator: %w", err)
		}
		out.Command = line
		if o.commandOut != nil {
			if _, err := fmt.Fprintln(o.commandOut, line); err != nil {
				return Output{}, false, fmt.Errorf("orchestrator: print command: %w", err)
			}
		}
	}
	return out, true, nil
}

func (o *Orchestrator) confirmOverwrite(ctx context.Context, path string) (bool, error) {
	if o.confirm == nil {
		return true, nil
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return true, nil
		}
		return false, fmt.Errorf("orchestrator: stat %s: %w", path, err)
	}
	ok, err := o.confirm.Confirm(ctx, prompt.ConfirmConfig{
		Message: fmt.Sprintf("%s exists. Overwrite?", path),
		Default: false,
	})
	if err != nil {
		return false, fmt.Errorf("orchestrator: confirm overwrite: %w", err)
	}
	if !ok {
		if err := o.confirm.Info(ctx, "kept "+path); err != nil {
			return false, err
		}
	}
	return ok, nil
}

func (o *Orchestrator) resolveTemplate(ctx context.Context, req Request) (*filler.Template, error) {
	doc := req.TemplateDocument
	if doc == nil {
		if req.Template == nil {
			return nil, errors.New("orchestrator: template source or document is required")
		}
		data, err := o.loader.Load(ctx, req.Template)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: load template: %w", err)
		}
		doc, err = svgdoc.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: template %s: %w", req.Template.Location(), err)
		}
	}

	tpl, err := filler.NewTemplate(doc, filler.WithLabels(o.config.Labels))
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}
	return tpl, nil
}

func (o *Orchestrator) resolveRows(ctx context.Context, req Request) ([]signs.Row, error) {
	if req.Rows != nil {
		return req.Rows, nil
	}
	if req.Table == nil {
		return nil, errors.New("orchestrator: table source or rows are required")
	}
	data, err := o.loader.Load(ctx, req.Table)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: load table: %w", err)
	}
	rows, err := signs.ParseTable(data)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: table %s: %w", req.Table.Location(), err)
	}
	return rows, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.loader == nil {
		o.loader = source.NewLoader()
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if !o.configSpecified {
		cfg, err := config.Default()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default config: %w", err)
			return
		}
		o.config = cfg
	} else if err := o.config.Validate(); err != nil {
		o.initialiseErr = fmt.Errorf("orchestrator: %w", err)
		return
	}
	if o.config.Text.StripMarkup {
		o.transformers = append([]Transformer{StripMarkupTransformer()}, o.transformers...)
	}
}
