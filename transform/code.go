package transform

import "strings"

// CodeBlock formats the selection as code. A non-empty single-line
// selection is wrapped in inline backticks; a selection that spans
// lines, or an empty one, produces a fenced block. The empty case
// always fences because an empty inline-code span would be visually
// indistinguishable from plain text.
type CodeBlock struct {
	Placeholder string
}

// NewCodeBlock is the constructor of CodeBlock. An empty placeholder
// defaults to "code snippet".
func NewCodeBlock(placeholder string) *CodeBlock {
	if placeholder == "" {
		placeholder = "code snippet"
	}
	return &CodeBlock{Placeholder: placeholder}
}

// Apply is a method of the Transform interface.
func (c *CodeBlock) Apply(req Request) Result {
	req = clamp(req)
	caret := req.From == req.To
	content := selection(req, c.Placeholder)
	if !caret && !strings.Contains(content, "\n") {
		start := req.From + 1
		return Result{
			Text: req.Text[:req.From] + "`" + content + "`" + req.Text[req.To:],
			From: start,
			To:   start + len(content),
		}
	}
	// Fenced block. Unlike Heading, the padding never collapses to
	// nothing: a fence always sits on its own line, so at least one
	// newline is inserted on each side, even at the document edges.
	lead, trail := "\n\n", "\n\n"
	if req.From > 0 && req.Text[req.From-1] == '\n' {
		lead = "\n"
	}
	if req.To < len(req.Text) && req.Text[req.To] == '\n' {
		trail = "\n"
	}
	start := req.From + len(lead) + len("```\n")
	return Result{
		Text: req.Text[:req.From] + lead + "```\n" + content + "\n```" + trail + req.Text[req.To:],
		From: start,
		To:   start + len(content),
	}
}

var _ Transform = &CodeBlock{}
