package transform

import (
	"regexp"
	"strings"
)

// headingMarker matches an existing ATX heading marker at the start of
// the selected text.
var headingMarker = regexp.MustCompile(`^#{1,6}[ \t]*`)

// Heading turns the selection into an ATX heading of the given level.
// An existing heading marker on the selected text is stripped first, so
// re-applying the action changes the level instead of stacking markers.
// Headings are block-level: a blank-line separator is inserted on
// either side unless the selection already sits at a document edge or
// against a newline. The returned range covers the heading text itself
// for quick retyping.
type Heading struct {
	Level       int
	Placeholder string
}

// NewHeading is the constructor of Heading. Levels outside 1..6 are
// clamped; an empty placeholder defaults to "Heading".
func NewHeading(level int, placeholder string) *Heading {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	if placeholder == "" {
		placeholder = "Heading"
	}
	return &Heading{Level: level, Placeholder: placeholder}
}

// Apply is a method of the Transform interface.
func (h *Heading) Apply(req Request) Result {
	req = clamp(req)
	content := strings.TrimSpace(headingMarker.ReplaceAllString(req.Text[req.From:req.To], ""))
	if content == "" {
		content = h.Placeholder
	}
	lead, trail := blockSeparators(req)
	insertion := lead + strings.Repeat("#", h.Level) + " " + content + trail
	start := req.From + len(lead) + h.Level + 1
	return Result{
		Text: req.Text[:req.From] + insertion + req.Text[req.To:],
		From: start,
		To:   start + len(content),
	}
}

var _ Transform = &Heading{}
