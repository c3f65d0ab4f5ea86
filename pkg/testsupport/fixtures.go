package testsupport

import (
	"context"
	"embed"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-wayfinding/pkg/svgdoc"
)

//go:embed testdata/*
var fixtures embed.FS

// Fixture names bundled with the package.
const (
	SignTemplate      = "sign.svg"
	BrokenTemplate    = "broken.svg"
	SignsTable        = "signs.csv"
	DuplicateIDsTable = "duplicate.csv"
)

// MustReadFixture returns the raw bytes of a bundled fixture.
func MustReadFixture(t *testing.T, name string) []byte {
	t.Helper()

	data, err := fixtures.ReadFile("testdata/" + name)
	if err != nil {
		t.Fatalf("read fixture %s: %v", name, err)
	}
	return data
}

// WriteFixture copies a bundled fixture into dir and returns its path.
func WriteFixture(t *testing.T, dir, name string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, MustReadFixture(t, name), 0o644); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
	return path
}

// MustParseFixture parses a bundled SVG fixture.
func MustParseFixture(t *testing.T, name string) *svgdoc.Document {
	t.Helper()

	doc, err := svgdoc.Parse(MustReadFixture(t, name))
	if err != nil {
		t.Fatalf("parse fixture %s: %v", name, err)
	}
	return doc
}

// MustParseFile parses an SVG file written by the code under test.
func MustParseFile(t *testing.T, path string) *svgdoc.Document {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	doc, err := svgdoc.Parse(data)
	if err != nil {
		t.Fatalf("parse %s: %v", path, err)
	}
	return doc
}

// NodeSnapshot is a comparable view of one element: enough to diff two
// documents structurally without depending on serializer whitespace.
type NodeSnapshot struct {
	Path  string
	Tag   string
	Attrs map[string]string
	Text  string
}

// Snapshot flattens doc into document-ordered NodeSnapshots.
func Snapshot(doc *svgdoc.Document) []NodeSnapshot {
	var out []NodeSnapshot
	root := doc.Root()
	if root == nil {
		return nil
	}
	var visit func(e *etree.Element, path string)
	visit = func(e *etree.Element, path string) {
		attrs := make(map[string]string, len(e.Attr))
		for _, attr := range e.Attr {
			attrs[attr.FullKey()] = attr.Value
		}
		out = append(out, NodeSnapshot{
			Path:  path,
			Tag:   e.FullTag(),
			Attrs: attrs,
			Text:  e.Text(),
		})
		for i, child := range e.ChildElements() {
			visit(child, path+"/"+strconv.Itoa(i))
		}
	}
	visit(root, "")
	return out
}

// LabelledText returns the first tspan text of every svg:text labelled label.
func LabelledText(doc *svgdoc.Document, label string) []string {
	var out []string
	for _, node := range svgdoc.BuildIndex(doc).Lookup(label, "text") {
		e, ok := doc.Resolve(node.Path)
		if !ok {
			continue
		}
		children := e.ChildElements()
		if len(children) == 0 {
			continue
		}
		out = append(out, children[0].Text())
	}
	return out
}

// VisibleGroups returns the labels of labelled svg:g elements carrying no
// style attribute, sorted.
func VisibleGroups(doc *svgdoc.Document, prefix string) []string {
	var out []string
	root := doc.Root()
	if root == nil {
		return nil
	}
	var visit func(e *etree.Element)
	visit = func(e *etree.Element) {
		if label, ok := svgdoc.Label(e); ok && svgdoc.IsSVG(e, "g") && strings.HasPrefix(label, prefix) && !hasStyle(e) {
			out = append(out, label)
		}
		for _, child := range e.ChildElements() {
			visit(child)
		}
	}
	visit(root)
	sort.Strings(out)
	return out
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// MustReadGoldenString reads a golden file and returns its content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return string(data)
}

// CanonicalSVG re-serializes an SVG golden so hand-edited files compare
// against generated output regardless of attribute layout.
func CanonicalSVG(t *testing.T, data string) string {
	t.Helper()

	out, err := MustParseFixtureBytes(t, []byte(data)).Bytes()
	if err != nil {
		t.Fatalf("serialize golden: %v", err)
	}
	return string(out)
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

func hasStyle(e *etree.Element) bool {
	for _, attr := range e.Attr {
		if attr.Space == "" && attr.Key == "style" {
			return true
		}
	}
	return false
}

// MustParseFixtureBytes parses serialized SVG produced during a test.
func MustParseFixtureBytes(t *testing.T, data []byte) *svgdoc.Document {
	t.Helper()

	doc, err := svgdoc.Parse(data)
	if err != nil {
		t.Fatalf("parse document: %v", err)
	}
	return doc
}
