package filler

import (
	"errors"
	"fmt"

	"github.com/beevik/etree"

	"github.com/goliatone/go-wayfinding/pkg/signs"
	"github.com/goliatone/go-wayfinding/pkg/svgdoc"
)

// Option customises a Template.
type Option func(*Template)

// WithLabels overrides the slot and direction labels.
func WithLabels(labels Labels) Option {
	return func(t *Template) {
		t.labels = labels
	}
}

// Template is a parsed, indexed sign template. It is never mutated after
// construction, so a single Template can serve every row of a run.
type Template struct {
	doc    *svgdoc.Document
	index  svgdoc.Index
	labels Labels
}

// Result is one filled sign.
type Result struct {
	Document *svgdoc.Document
	Sign     signs.Sign
	// DirectionMatches counts the groups labelled for the sign's direction.
	// Zero means no arrow was revealed.
	DirectionMatches int
}

// NewTemplate indexes doc. The template keeps its own copy, so later changes
// to doc do not leak into filled signs.
func NewTemplate(doc *svgdoc.Document, options ...Option) (*Template, error) {
	if doc == nil || doc.Root() == nil {
		return nil, errors.New("filler: template document is required")
	}

	t := &Template{labels: DefaultLabels()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(t)
	}
	if err := t.labels.Validate(); err != nil {
		return nil, err
	}

	t.doc = doc.Clone()
	t.index = svgdoc.BuildIndex(t.doc)
	return t, nil
}

// ParseTemplate parses raw SVG bytes and indexes the result.
func ParseTemplate(data []byte, options ...Option) (*Template, error) {
	doc, err := svgdoc.Parse(data)
	if err != nil {
		return nil, err
	}
	return NewTemplate(doc, options...)
}

// Labels returns the labels the template was indexed with.
func (t *Template) Labels() Labels {
	return t.labels
}

// FillRow resolves the required fields of row through cols and fills the
// template with them.
func (t *Template) FillRow(row signs.Row, cols signs.Columns) (Result, error) {
	sign, err := row.Resolve(cols)
	if err != nil {
		return Result{}, err
	}
	return t.Fill(sign)
}

// Fill returns a new document with the sign's text substituted and its
// direction group revealed. The template is left untouched.
func (t *Template) Fill(sign signs.Sign) (Result, error) {
	doc := t.doc.Clone()

	if err := t.setSlotText(doc, t.labels.TrailName, sign.TrailName); err != nil {
		return Result{}, err
	}
	if err := t.setSlotText(doc, t.labels.SignID, sign.ID); err != nil {
		return Result{}, err
	}

	matches := 0
	for _, node := range t.index.Lookup(t.labels.DirectionLabel(sign.Direction), "g") {
		group, ok := doc.Resolve(node.Path)
		if !ok {
			return Result{}, fmt.Errorf("filler: group %q at %v missing from template copy", node.Label, node.Path)
		}
		svgdoc.RemoveAttr(group, HiddenAttr)
		matches++
	}

	return Result{Document: doc, Sign: sign, DirectionMatches: matches}, nil
}

func (t *Template) setSlotText(doc *svgdoc.Document, label, value string) error {
	for _, node := range t.index.Lookup(label, "text") {
		text, ok := doc.Resolve(node.Path)
		if !ok {
			return fmt.Errorf("filler: slot %q at %v missing from template copy", label, node.Path)
		}
		run, err := textRun(text, node)
		if err != nil {
			return err
		}
		run.SetText(value)
	}
	return nil
}

func textRun(text *etree.Element, node svgdoc.Node) (*etree.Element, error) {
	children := text.ChildElements()
	if len(children) != 1 {
		return nil, &StructureError{
			Label:    node.Label,
			ID:       text.SelectAttrValue("id", ""),
			Path:     node.Path,
			Children: len(children),
		}
	}
	run := children[0]
	if !svgdoc.IsSVG(run, "tspan") {
		return nil, &StructureError{
			Label:    node.Label,
			ID:       text.SelectAttrValue("id", ""),
			Path:     node.Path,
			Children: 1,
			Found:    run.FullTag(),
		}
	}
	return run, nil
}
