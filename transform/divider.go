package transform

// Divider inserts a horizontal rule as its own block at the selection.
// Selected text is discarded — the selection only fixes the insertion
// boundaries. The same blank-line separator rule as Heading keeps the
// rule from fusing with adjacent paragraphs, and the caret collapses
// immediately after the insertion.
type Divider struct{}

// NewDivider is the constructor of Divider.
func NewDivider() *Divider {
	return &Divider{}
}

// Apply is a method of the Transform interface.
func (d *Divider) Apply(req Request) Result {
	req = clamp(req)
	lead, trail := blockSeparators(req)
	insertion := lead + "---" + trail
	caret := req.From + len(insertion)
	return Result{
		Text: req.Text[:req.From] + insertion + req.Text[req.To:],
		From: caret,
		To:   caret,
	}
}

var _ Transform = &Divider{}
