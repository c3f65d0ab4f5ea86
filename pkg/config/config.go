package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-wayfinding/pkg/filler"
	"github.com/goliatone/go-wayfinding/pkg/signs"
)

// Config aggregates every generator setting.
type Config struct {
	Labels     filler.Labels `json:"labels" yaml:"labels"`
	Columns    signs.Columns `json:"columns" yaml:"columns"`
	Directions []string      `json:"directions" yaml:"directions"`
	Output     OutputConfig  `json:"output" yaml:"output"`
	Convert    ConvertConfig `json:"convert" yaml:"convert"`
	Text       TextConfig    `json:"text" yaml:"text"`
}

// OutputConfig controls output file naming.
type OutputConfig struct {
	// Extension is appended to prefix+SignID.
	Extension string `json:"extension" yaml:"extension"`
}

// ConvertConfig describes the advisory conversion command printed per file.
type ConvertConfig struct {
	// Command is a template rendered with "input", "output" and "sign_id".
	Command string `json:"command" yaml:"command"`
	// CommandFile names a template file used instead of Command.
	CommandFile string `json:"commandFile" yaml:"commandFile"`
	// Vars are extra values available to the command template.
	Vars map[string]string `json:"vars" yaml:"vars"`
	// Extension replaces the output extension to form "output".
	Extension string `json:"extension" yaml:"extension"`
}

// TextConfig controls how cell values are treated before filling.
type TextConfig struct {
	StripMarkup bool `json:"stripMarkup" yaml:"stripMarkup"`
}

// Default returns the embedded defaults.
func Default() (Config, error) {
	data, err := fs.ReadFile(EmbeddedFS(), DefaultsFile)
	if err != nil {
		return Config{}, fmt.Errorf("config: read defaults: %w", err)
	}
	cfg, err := decode(Config{}, data, DefaultsFile)
	if err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// LoadFile overlays the JSON or YAML file at path onto the defaults.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadFS overlays the named JSON or YAML file inside fsys onto the defaults.
func LoadFS(fsys fs.FS, name string) (Config, error) {
	if fsys == nil {
		return Config{}, errors.New("config: fs is nil")
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", name, err)
	}
	return Parse(data, name)
}

// Parse overlays data onto the defaults. source names the payload in errors.
func Parse(data []byte, source string) (Config, error) {
	base, err := Default()
	if err != nil {
		return Config{}, err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return Config{}, fmt.Errorf("config: file %s is empty", source)
	}
	cfg, err := decode(base, data, source)
	if err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// Validate rejects settings the generator cannot work with.
func (c Config) Validate() error {
	if err := c.Labels.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if strings.TrimSpace(c.Columns.SignID) == "" ||
		strings.TrimSpace(c.Columns.TrailName) == "" ||
		strings.TrimSpace(c.Columns.Direction) == "" {
		return errors.New("config: signID, trailName and direction columns are required")
	}
	if strings.TrimSpace(c.Output.Extension) == "" {
		return errors.New("config: output extension is required")
	}
	return nil
}

// KnownDirection reports whether code is one of the configured direction
// codes. An empty list accepts every code.
func (c Config) KnownDirection(code string) bool {
	if len(c.Directions) == 0 {
		return true
	}
	return slices.Contains(c.Directions, code)
}

func decode(base Config, data []byte, source string) (Config, error) {
	fromJSON := cloneConfig(base)
	if err := json.Unmarshal(data, &fromJSON); err == nil {
		return fromJSON, nil
	}

	fromYAML := cloneConfig(base)
	if err := yaml.Unmarshal(data, &fromYAML); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: invalid JSON or YAML: %w", source, err)
	}
	return fromYAML, nil
}

func cloneConfig(cfg Config) Config {
	out := cfg
	out.Directions = append([]string(nil), cfg.Directions...)
	out.Convert.Vars = maps.Clone(cfg.Convert.Vars)
	return out
}
