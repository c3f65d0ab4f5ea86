package wayfinding_test

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-wayfinding"
	"github.com/goliatone/go-wayfinding/pkg/config"
	"github.com/goliatone/go-wayfinding/pkg/testsupport"
)

func TestGenerateFiles(t *testing.T) {
	dir := t.TempDir()
	template := testsupport.WriteFixture(t, dir, testsupport.SignTemplate)
	table := testsupport.WriteFixture(t, dir, testsupport.SignsTable)

	prefix := filepath.Join(dir, "trail-")
	report, err := wayfinding.GenerateFiles(testsupport.Context(), template, table, prefix)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(report.Written) != 3 {
		t.Fatalf("expected 3 signs, got %d", len(report.Written))
	}
	if report.Written[0].Path != prefix+"S001.svg" {
		t.Fatalf("prefix must be concatenated, got %q", report.Written[0].Path)
	}
}

func TestGenerateFiles_Duplicate(t *testing.T) {
	dir := t.TempDir()
	template := testsupport.WriteFixture(t, dir, testsupport.SignTemplate)
	table := testsupport.WriteFixture(t, dir, testsupport.DuplicateIDsTable)

	_, err := wayfinding.GenerateFiles(testsupport.Context(), template, table, dir+string(filepath.Separator))
	if !errors.Is(err, wayfinding.ErrDuplicateSignID) {
		t.Fatalf("expected ErrDuplicateSignID, got %v", err)
	}
}

func TestEmbeddedConfig(t *testing.T) {
	data, err := fs.ReadFile(wayfinding.EmbeddedConfig(), config.DefaultsFile)
	if err != nil {
		t.Fatalf("read embedded config: %v", err)
	}
	if _, err := config.Parse(data, config.DefaultsFile); err != nil {
		t.Fatalf("embedded config must parse: %v", err)
	}
}

func TestParseTemplate(t *testing.T) {
	tpl, err := wayfinding.ParseTemplate(testsupport.MustReadFixture(t, testsupport.SignTemplate))
	if err != nil {
		t.Fatalf("parse template: %v", err)
	}
	if tpl.Labels().DirectionPrefix != "#Arrow" {
		t.Fatalf("unexpected labels %#v", tpl.Labels())
	}
}
