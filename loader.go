package wayfinding

import (
	"io/fs"

	"github.com/goliatone/go-wayfinding/pkg/config"
	"github.com/goliatone/go-wayfinding/pkg/filler"
	"github.com/goliatone/go-wayfinding/pkg/source"
)

// NewLoader constructs a source loader.
func NewLoader(options ...source.LoaderOption) *source.Loader {
	return source.NewLoader(options...)
}

// ParseTemplate parses and indexes an SVG sign template.
func ParseTemplate(data []byte, options ...filler.Option) (*filler.Template, error) {
	return filler.ParseTemplate(data, options...)
}

// EmbeddedConfig exposes the bundled default settings so callers can copy
// them as a starting point for their own -config file.
func EmbeddedConfig() fs.FS {
	return config.EmbeddedFS()
}
