package convert_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-wayfinding/pkg/config"
	"github.com/goliatone/go-wayfinding/pkg/convert"
)

func TestOutputPath(t *testing.T) {
	cases := map[string]string{
		"out/signs-S001.svg": "out/signs-S001.pdf",
		"S001":               "S001.pdf",
		"dir.v2/S001.svg":    "dir.v2/S001.pdf",
	}
	for input, want := range cases {
		if got := convert.OutputPath(input, ".pdf"); got != want {
			t.Fatalf("OutputPath(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestBuilder_DefaultCommand(t *testing.T) {
	cfg, err := config.Default()
	if err != nil {
		t.Fatalf("default config: %v", err)
	}
	builder, err := convert.NewBuilder(cfg.Convert.Command, convert.WithExtension(cfg.Convert.Extension))
	if err != nil {
		t.Fatalf("new builder: %v", err)
	}

	got, err := builder.Command("S001", "out/signs-S001.svg")
	if err != nil {
		t.Fatalf("command: %v", err)
	}
	want := `inkscape --export-type=pdf --export-filename=out/signs-S001.pdf out/signs-S001.svg`
	if got != want {
		t.Fatalf("command mismatch\nwant: %s\n got: %s", want, got)
	}

	got, err = builder.Command(`S"1"`, `out/$HOME "Creek".svg`)
	if err != nil {
		t.Fatalf("command: %v", err)
	}
	want = `inkscape --export-type=pdf --export-filename='out/$HOME "Creek".pdf' 'out/$HOME "Creek".svg'`
	if got != want {
		t.Fatalf("shell metacharacters must be quoted\nwant: %s\n got: %s", want, got)
	}
}

func TestBuilder_CustomCommand(t *testing.T) {
	builder, err := convert.NewBuilder("rsvg-convert -f png -o {{ output|shellquote }} {{ input|shellquote }} # {{ sign_id }}",
		convert.WithExtension("png"))
	if err != nil {
		t.Fatalf("new builder: %v", err)
	}

	got, err := builder.Command("S 1", "out/S 1.svg")
	if err != nil {
		t.Fatalf("command: %v", err)
	}
	want := `rsvg-convert -f png -o 'out/S 1.png' 'out/S 1.svg' # S 1`
	if got != want {
		t.Fatalf("command mismatch\nwant: %s\n got: %s", want, got)
	}
}

func TestNewBuilder_Invalid(t *testing.T) {
	if _, err := convert.NewBuilder("  "); err == nil {
		t.Fatalf("expected error for an empty command")
	}
	if _, err := convert.NewBuilder("inkscape {{ input "); err == nil {
		t.Fatalf("expected error for a malformed template")
	}
}

func TestBuilder_VarsAndPathFuncs(t *testing.T) {
	builder, err := convert.NewBuilder("mkdir -p {{ dir(output) }} && rsvg-convert -d {{ dpi }} -o {{ dir(output) }}/{{ stem(input) }}.png {{ base(input) }}",
		convert.WithExtension("png"),
		convert.WithVars(map[string]string{"dpi": "300"}),
	)
	if err != nil {
		t.Fatalf("new builder: %v", err)
	}

	got, err := builder.Command("S001", "out/sign-S001.svg")
	if err != nil {
		t.Fatalf("command: %v", err)
	}
	want := "mkdir -p out && rsvg-convert -d 300 -o out/sign-S001.png sign-S001.svg"
	if got != want {
		t.Fatalf("command mismatch\nwant: %s\n got: %s", want, got)
	}
}

func TestNewFileBuilder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pdf.cmd")
	if err := os.WriteFile(path, []byte("inkscape --export-dpi={{ dpi }} --export-filename=\"{{ output }}\" \"{{ input }}\" # {{ sign_id }}\n"), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	builder, err := convert.NewFileBuilder(path, convert.WithVars(map[string]string{"dpi": "150"}))
	if err != nil {
		t.Fatalf("new file builder: %v", err)
	}

	got, err := builder.Command("S001", "out/S&1.svg")
	if err != nil {
		t.Fatalf("command: %v", err)
	}
	want := `inkscape --export-dpi=150 --export-filename="out/S&1.pdf" "out/S&1.svg" # S001`
	if got != want {
		t.Fatalf("command mismatch\nwant: %s\n got: %s", want, got)
	}
}

func TestNewFileBuilder_Invalid(t *testing.T) {
	dir := t.TempDir()
	if _, err := convert.NewFileBuilder(filepath.Join(dir, "missing.cmd")); err == nil {
		t.Fatalf("expected error for a missing template file")
	}
	if _, err := convert.NewFileBuilder(filepath.Join(dir, "noext")); err == nil {
		t.Fatalf("expected error for a template file without extension")
	}
	if _, err := convert.NewFileBuilder(" "); err == nil {
		t.Fatalf("expected error for an empty path")
	}
}
