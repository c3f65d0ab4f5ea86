package filler

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-wayfinding/pkg/svgdoc"
)

// ErrStructure marks templates that do not match the slot layout.
var ErrStructure = errors.New("filler: malformed template")

// StructureError describes a slot whose children do not match the expected
// single svg:tspan.
type StructureError struct {
	Label string
	ID    string
	Path  svgdoc.Path
	// Children is the number of child elements found.
	Children int
	// Found is the tag of the sole child when it is not an svg:tspan.
	Found string
}

func (e *StructureError) Error() string {
	where := fmt.Sprintf("slot %q", e.Label)
	if e.ID != "" {
		where += fmt.Sprintf(" (text id %q)", e.ID)
	}
	if e.Children != 1 {
		return fmt.Sprintf("filler: %s: expected exactly one tspan child, found %d child elements", where, e.Children)
	}
	return fmt.Sprintf("filler: %s: expected a tspan child, found <%s>", where, e.Found)
}

// Unwrap lets errors.Is match ErrStructure.
func (e *StructureError) Unwrap() error {
	return ErrStructure
}
