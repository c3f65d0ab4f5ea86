package svgdoc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/beevik/etree"
	"github.com/natefinch/atomic"
)

const (
	// NamespaceSVG is the SVG element namespace.
	NamespaceSVG = "http://www.w3.org/2000/svg"
	// NamespaceInkscape carries the editor-specific label attribute.
	NamespaceInkscape = "http://www.inkscape.org/namespaces/inkscape"
	// LabelAttr is the local name of the Inkscape label attribute.
	LabelAttr = "label"

	outputMode = 0o644
)

// Document is a parsed SVG document. A Document is not safe for concurrent
// mutation; use Clone to obtain an independent copy.
type Document struct {
	doc *etree.Document
}

// Parse decodes raw SVG bytes into a Document.
func Parse(data []byte) (*Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("svgdoc: document is empty")
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("svgdoc: parse: %w", err)
	}
	if doc.Root() == nil {
		return nil, errors.New("svgdoc: document has no root element")
	}
	return &Document{doc: doc}, nil
}

// Root returns the document element.
func (d *Document) Root() *etree.Element {
	if d == nil || d.doc == nil {
		return nil
	}
	return d.doc.Root()
}

// Clone returns a deep copy sharing no mutable state with d.
func (d *Document) Clone() *Document {
	if d == nil || d.doc == nil {
		return nil
	}
	return &Document{doc: d.doc.Copy()}
}

// WriteTo serializes the document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	if d == nil || d.doc == nil {
		return 0, errors.New("svgdoc: document is nil")
	}
	return d.doc.WriteTo(w)
}

// Bytes serializes the document into memory.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := d.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("svgdoc: serialize: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile serializes the document and atomically replaces path with the
// result. On failure the previous file, if any, is left untouched.
func (d *Document) WriteFile(path string) error {
	data, err := d.Bytes()
	if err != nil {
		return err
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("svgdoc: write %s: %w", path, err)
	}
	if err := os.Chmod(path, outputMode); err != nil {
		return fmt.Errorf("svgdoc: chmod %s: %w", path, err)
	}
	return nil
}

// ElementNamespace resolves the namespace URI of e from the xmlns
// declarations in scope.
func ElementNamespace(e *etree.Element) string {
	if e == nil {
		return ""
	}
	return e.NamespaceURI()
}

// AttrNamespace resolves the namespace URI of attr. Unprefixed attributes
// have no namespace.
func AttrNamespace(attr *etree.Attr) string {
	if attr == nil || attr.Space == "" {
		return ""
	}
	return attr.NamespaceURI()
}

// Label returns the Inkscape label of e.
func Label(e *etree.Element) (string, bool) {
	if e == nil {
		return "", false
	}
	for i := range e.Attr {
		attr := &e.Attr[i]
		if attr.Key != LabelAttr {
			continue
		}
		if AttrNamespace(attr) == NamespaceInkscape {
			return attr.Value, true
		}
	}
	return "", false
}

// IsSVG reports whether e is the SVG element with the given local name.
func IsSVG(e *etree.Element, tag string) bool {
	return e != nil && e.Tag == tag && ElementNamespace(e) == NamespaceSVG
}

// RemoveAttr deletes every unprefixed attribute named key from e and reports
// whether anything was removed.
func RemoveAttr(e *etree.Element, key string) bool {
	if e == nil {
		return false
	}
	kept := e.Attr[:0]
	removed := false
	for _, attr := range e.Attr {
		if attr.Space == "" && attr.Key == key {
			removed = true
			continue
		}
		kept = append(kept, attr)
	}
	e.Attr = kept
	return removed
}
