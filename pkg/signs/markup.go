package signs

import (
	"html"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	markupPolicyOnce sync.Once
	markupPolicy     *bluemonday.Policy
)

// StripMarkup removes HTML markup that spreadsheet exports sometimes leave in
// cells ("<b>Ridge</b> Loop") and returns plain text. Entities are decoded so
// the SVG serializer escapes the result exactly once. Surrounding whitespace
// is kept.
func StripMarkup(value string) string {
	if value == "" {
		return ""
	}
	return html.UnescapeString(markupSanitizer().Sanitize(value))
}

// PlainText returns s with StripMarkup applied to its text fields. The
// direction code is left alone so it still matches template labels exactly.
func (s Sign) PlainText() Sign {
	s.ID = StripMarkup(s.ID)
	s.TrailName = StripMarkup(s.TrailName)
	return s
}

func markupSanitizer() *bluemonday.Policy {
	markupPolicyOnce.Do(func() {
		markupPolicy = bluemonday.StrictPolicy()
	})
	return markupPolicy
}
