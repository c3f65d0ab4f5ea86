// Package convert renders the advisory command line that turns a generated
// SVG into another format. Commands are printed for the operator to run; the
// generator never executes them.
package convert

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-wayfinding/pkg/render/template"
	"github.com/goliatone/go-wayfinding/pkg/render/template/gotemplate"
)

// DefaultExtension is the converted file extension.
const DefaultExtension = ".pdf"

// Vars is the data available to command templates.
type Vars struct {
	Input  string `json:"input"`
	Output string `json:"output"`
	SignID string `json:"sign_id"`
}

// Option customises a Builder.
type Option func(*Builder)

// WithRenderer swaps the template renderer. The renderer must not HTML
// escape its output.
func WithRenderer(renderer template.TemplateRenderer) Option {
	return func(b *Builder) {
		b.renderer = renderer
	}
}

// WithExtension sets the extension of the converted file.
func WithExtension(ext string) Option {
	return func(b *Builder) {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			return
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		b.extension = ext
	}
}

// WithVars exposes fixed values (export DPI, output directory) to every
// command next to input, output and sign_id.
func WithVars(vars map[string]string) Option {
	return func(b *Builder) {
		if len(vars) == 0 {
			return
		}
		if b.vars == nil {
			b.vars = make(map[string]any, len(vars))
		}
		for key, value := range vars {
			b.vars[key] = value
		}
	}
}

// Builder renders one command line per generated file.
type Builder struct {
	command   string
	file      string
	extension string
	vars      map[string]any
	renderer  template.TemplateRenderer
}

// NewBuilder validates the inline command template.
func NewBuilder(command string, options ...Option) (*Builder, error) {
	if strings.TrimSpace(command) == "" {
		return nil, errors.New("convert: command template is required")
	}
	return newBuilder(&Builder{command: command}, options)
}

// NewFileBuilder loads the command template from path. The file name needs
// an extension.
func NewFileBuilder(path string, options ...Option) (*Builder, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("convert: command template file is required")
	}
	if filepath.Ext(path) == "" {
		return nil, fmt.Errorf("convert: command template file %s needs an extension", path)
	}
	return newBuilder(&Builder{file: path}, options)
}

func newBuilder(b *Builder, options []Option) (*Builder, error) {
	b.extension = DefaultExtension
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}

	if b.renderer == nil {
		engineOptions := []gotemplate.Option{
			gotemplate.WithAutoescape(false),
			gotemplate.WithTemplateFunc(pathFuncs()),
			gotemplate.WithGlobalData(b.vars),
		}
		if b.file != "" {
			engineOptions = append(engineOptions,
				gotemplate.WithBaseDir(filepath.Dir(b.file)),
				gotemplate.WithExtension(filepath.Ext(b.file)),
			)
		}
		engine, err := gotemplate.New(engineOptions...)
		if err != nil {
			return nil, fmt.Errorf("convert: template engine: %w", err)
		}
		b.renderer = engine
	} else if len(b.vars) > 0 {
		if err := b.renderer.GlobalContext(b.vars); err != nil {
			return nil, fmt.Errorf("convert: template vars: %w", err)
		}
	}

	if _, err := b.render(Vars{Input: "sample.svg", Output: "sample" + b.extension, SignID: "sample"}); err != nil {
		return nil, fmt.Errorf("convert: invalid command template: %w", err)
	}
	return b, nil
}

// Command renders the command line for the file at input.
func (b *Builder) Command(signID, input string) (string, error) {
	vars := Vars{
		Input:  input,
		Output: OutputPath(input, b.extension),
		SignID: signID,
	}
	line, err := b.render(vars)
	if err != nil {
		return "", fmt.Errorf("convert: render command for %s: %w", input, err)
	}
	return strings.TrimSpace(line), nil
}

func (b *Builder) render(vars Vars) (string, error) {
	if b.file != "" {
		return b.renderer.RenderTemplate(filepath.Base(b.file), vars)
	}
	return b.renderer.RenderString(b.command, vars)
}

// OutputPath swaps the extension of input for ext.
func OutputPath(input, ext string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ext
}

// pathFuncs are callable from command templates, e.g. {{ dir(output) }}.
func pathFuncs() map[string]any {
	return map[string]any{
		"dir":  filepath.Dir,
		"base": filepath.Base,
		"stem": func(path string) string {
			return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		},
	}
}
