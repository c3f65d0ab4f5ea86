package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Loader reads raw bytes for a Source, delegating to file or fs.FS strategies.
type Loader struct {
	fs fs.FS
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithFS configures the filesystem used to resolve FromFS sources.
func WithFS(files fs.FS) LoaderOption {
	return func(l *Loader) {
		l.fs = files
	}
}

// NewLoader constructs a Loader applying the supplied options.
func NewLoader(options ...LoaderOption) *Loader {
	l := &Loader{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(l)
	}
	return l
}

// Load fetches the bytes behind src.
func (l *Loader) Load(ctx context.Context, src Source) ([]byte, error) {
	if src == nil {
		return nil, errors.New("source: source is nil")
	}

	switch src.Kind() {
	case KindFile:
		return loadFile(ctx, src.Location())
	case KindFS:
		var files fs.FS
		if l != nil {
			files = l.fs
		}
		return loadFromFS(ctx, files, src.Location())
	default:
		return nil, fmt.Errorf("source: unsupported source kind %q", src.Kind())
	}
}

func loadFile(ctx context.Context, path string) ([]byte, error) {
	if path == "" || path == "." {
		return nil, errors.New("source: file path is required")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("source: read %s: %w", path, err)
	}
	return data, nil
}

func loadFromFS(ctx context.Context, files fs.FS, name string) ([]byte, error) {
	if name == "" {
		return nil, errors.New("source: fs path is required")
	}
	if files == nil {
		return nil, errors.New("source: fs is nil")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := fs.ReadFile(files, name)
	if err != nil {
		return nil, fmt.Errorf("source: read %s: %w", name, err)
	}
	return data, nil
}
