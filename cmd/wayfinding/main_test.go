package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-wayfinding/pkg/orchestrator"
	"github.com/goliatone/go-wayfinding/pkg/prompt"
	"github.com/goliatone/go-wayfinding/pkg/testsupport"
)

type declineDriver struct {
	asked int
}

func (d *declineDriver) Confirm(context.Context, prompt.ConfirmConfig) (bool, error) {
	d.asked++
	return false, nil
}

func (d *declineDriver) Info(context.Context, string) error {
	return nil
}

func setup(t *testing.T, table string) (template, tablePath, prefix string) {
	t.Helper()

	dir := t.TempDir()
	return testsupport.WriteFixture(t, dir, testsupport.SignTemplate),
		testsupport.WriteFixture(t, dir, table),
		filepath.Join(dir, "sign-")
}

func TestRun_WritesSigns(t *testing.T) {
	template, table, prefix := setup(t, testsupport.SignsTable)
	var stdout, stderr bytes.Buffer

	if err := run(context.Background(), []string{template, table, prefix}, &stdout, &stderr, &declineDriver{}); err != nil {
		t.Fatalf("run: %v\nstderr: %s", err, stderr.String())
	}

	for _, id := range []string{"S001", "S002", "S003"} {
		if _, err := os.Stat(prefix + id + ".svg"); err != nil {
			t.Fatalf("expected %s output: %v", id, err)
		}
	}
	if stdout.Len() != 0 {
		t.Fatalf("expected no stdout without -convert, got %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "direction code not in known set") {
		t.Fatalf("expected warning for unknown direction, got %q", stderr.String())
	}
}

func TestRun_Convert(t *testing.T) {
	template, table, prefix := setup(t, testsupport.SignsTable)
	var stdout, stderr bytes.Buffer

	if err := run(context.Background(), []string{"-convert", template, table, prefix}, &stdout, &stderr, &declineDriver{}); err != nil {
		t.Fatalf("run: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 command lines, got %q", stdout.String())
	}
	want := "inkscape --export-type=pdf --export-filename=" + prefix + "S001.pdf " + prefix + "S001.svg"
	if lines[0] != want {
		t.Fatalf("command mismatch\nwant: %s\n got: %s", want, lines[0])
	}
}

func TestRun_ConvertTemplateImpliesConvert(t *testing.T) {
	template, table, prefix := setup(t, testsupport.SignsTable)
	var stdout, stderr bytes.Buffer

	args := []string{"-convert-template", "echo {{ sign_id }}", template, table, prefix}
	if err := run(context.Background(), args, &stdout, &stderr, &declineDriver{}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if stdout.String() != "echo S001\necho S002\necho S003\n" {
		t.Fatalf("unexpected commands %q", stdout.String())
	}
}

func TestRun_DuplicateSignID(t *testing.T) {
	template, table, prefix := setup(t, testsupport.DuplicateIDsTable)
	var stdout, stderr bytes.Buffer

	err := run(context.Background(), []string{template, table, prefix}, &stdout, &stderr, &declineDriver{})
	if !errors.Is(err, orchestrator.ErrDuplicateSignID) {
		t.Fatalf("expected ErrDuplicateSignID, got %v", err)
	}
	if !strings.Contains(err.Error(), "S001") {
		t.Fatalf("error should name S001: %v", err)
	}
}

func TestRun_ArgumentCount(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := run(context.Background(), []string{"only-one"}, &stdout, &stderr, &declineDriver{})
	if err == nil || !strings.Contains(err.Error(), "expected 3 arguments") {
		t.Fatalf("expected argument count error, got %v", err)
	}
	if !strings.Contains(stderr.String(), "Usage: wayfinding") {
		t.Fatalf("expected usage on stderr, got %q", stderr.String())
	}
}

func TestRun_ConfigFile(t *testing.T) {
	template, _, prefix := setup(t, testsupport.SignsTable)
	dir := filepath.Dir(template)

	table := filepath.Join(dir, "custom.csv")
	if err := os.WriteFile(table, []byte("Code,Name,Dir\nA1,<b>Pine</b> Path,R\n"), 0o644); err != nil {
		t.Fatalf("write table: %v", err)
	}
	cfgPath := filepath.Join(dir, "wayfinding.yaml")
	cfg := "columns:\n  signID: Code\n  trailName: Name\n  direction: Dir\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var stdout, stderr bytes.Buffer
	args := []string{"-config", cfgPath, "-strip-markup", template, table, prefix}
	if err := run(context.Background(), args, &stdout, &stderr, &declineDriver{}); err != nil {
		t.Fatalf("run: %v", err)
	}

	doc := testsupport.MustParseFile(t, prefix+"A1.svg")
	if got := testsupport.LabelledText(doc, "#TrailName"); got[0] != "Pine Path" {
		t.Fatalf("unexpected trail name %q", got[0])
	}
}

func TestRun_InteractiveDeclines(t *testing.T) {
	template, table, prefix := setup(t, testsupport.SignsTable)
	if err := os.WriteFile(prefix+"S001.svg", []byte("old"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	driver := &declineDriver{}
	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), []string{"-interactive", template, table, prefix}, &stdout, &stderr, driver); err != nil {
		t.Fatalf("run: %v", err)
	}
	if driver.asked != 1 {
		t.Fatalf("expected one prompt, got %d", driver.asked)
	}
	data, err := os.ReadFile(prefix + "S001.svg")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "old" {
		t.Fatalf("declined file was overwritten")
	}
}

func TestRun_MissingTemplate(t *testing.T) {
	_, table, prefix := setup(t, testsupport.SignsTable)
	var stdout, stderr bytes.Buffer

	err := run(context.Background(), []string{filepath.Join(t.TempDir(), "nope.svg"), table, prefix}, &stdout, &stderr, &declineDriver{})
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestRun_ConvertTemplateFile(t *testing.T) {
	template, table, prefix := setup(t, testsupport.SignsTable)
	dir := filepath.Dir(template)

	cmdFile := filepath.Join(dir, "png.cmd")
	if err := os.WriteFile(cmdFile, []byte("rsvg-convert -d {{ dpi }} {{ base(input) }}\n"), 0o644); err != nil {
		t.Fatalf("write command file: %v", err)
	}
	cfgPath := filepath.Join(dir, "wayfinding.yaml")
	if err := os.WriteFile(cfgPath, []byte("convert:\n  vars:\n    dpi: \"96\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var stdout, stderr bytes.Buffer
	args := []string{"-config", cfgPath, "-convert-template-file", cmdFile, template, table, prefix}
	if err := run(context.Background(), args, &stdout, &stderr, &declineDriver{}); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := "rsvg-convert -d 96 sign-S001.svg\nrsvg-convert -d 96 sign-S002.svg\nrsvg-convert -d 96 sign-S003.svg\n"
	if stdout.String() != want {
		t.Fatalf("unexpected commands %q", stdout.String())
	}
}

func TestRun_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := run(context.Background(), []string{"-h"}, &stdout, &stderr, &declineDriver{})
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("expected flag.ErrHelp, got %v", err)
	}
	if !strings.Contains(stderr.String(), "Usage: wayfinding") {
		t.Fatalf("expected usage on stderr, got %q", stderr.String())
	}
	if code := exitCode(err); code != 0 {
		t.Fatalf("help must exit 0, got %d", code)
	}
}

func TestExitCode(t *testing.T) {
	if exitCode(nil) != 0 {
		t.Fatalf("nil error must exit 0")
	}
	if exitCode(errors.New("boom")) != 1 {
		t.Fatalf("failures must exit 1")
	}
}
