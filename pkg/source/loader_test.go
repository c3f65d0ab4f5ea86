package source_test

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-wayfinding/pkg/source"
)

func TestLoader_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signs.csv")
	if err := os.WriteFile(path, []byte("SignID\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	data, err := source.NewLoader().Load(context.Background(), source.FromFile(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(data) != "SignID\n" {
		t.Fatalf("unexpected payload %q", data)
	}
}

func TestLoader_FileMissing(t *testing.T) {
	_, err := source.NewLoader().Load(context.Background(), source.FromFile(filepath.Join(t.TempDir(), "nope.svg")))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestLoader_FS(t *testing.T) {
	files := fstest.MapFS{
		"templates/sign.svg": &fstest.MapFile{Data: []byte("<svg/>")},
	}
	loader := source.NewLoader(source.WithFS(files))

	data, err := loader.Load(context.Background(), source.FromFS("templates/sign.svg"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(data) != "<svg/>" {
		t.Fatalf("unexpected payload %q", data)
	}
}

func TestLoader_FSWithoutFilesystem(t *testing.T) {
	if _, err := source.NewLoader().Load(context.Background(), source.FromFS("sign.svg")); err == nil {
		t.Fatalf("expected error when no fs is configured")
	}
}

func TestLoader_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := source.NewLoader().Load(ctx, source.FromFile("sign.svg"))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
