package transform

import "strings"

// Indent splices indentation spaces at the caret, for the raw Tab key.
// It is a plain text splice with no block-level reasoning: only From is
// consulted, any selected text stays in place, and the caret lands
// right after the inserted spaces. Indent is dispatched directly on the
// key press rather than through the action registry.
type Indent struct {
	Width int
}

// NewIndent is the constructor of Indent. Widths below one default to
// two spaces.
func NewIndent(width int) *Indent {
	if width < 1 {
		width = 2
	}
	return &Indent{Width: width}
}

// Apply is a method of the Transform interface.
func (in *Indent) Apply(req Request) Result {
	req = clamp(req)
	pad := strings.Repeat(" ", in.Width)
	caret := req.From + len(pad)
	return Result{
		Text: req.Text[:req.From] + pad + req.Text[req.From:],
		From: caret,
		To:   caret,
	}
}

var _ Transform = &Indent{}
