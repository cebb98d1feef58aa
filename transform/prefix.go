package transform

import "strings"

// PrefixLines prepends a marker to every line of the selection, used
// for blockquotes ("> ") and todo items ("- [ ] "). A line that
// contains only whitespace is replaced by the bare prefix — its
// whitespace is dropped, not preserved, so prefixed blank lines never
// carry stray trailing spaces. Line endings inside the transformed
// region are normalized to \n. The selection collapses to a caret at
// the end of the transformed block, which is more useful than a
// multi-line highlight.
type PrefixLines struct {
	Prefix      string
	Placeholder string
}

// NewPrefixLines is the constructor of PrefixLines.
func NewPrefixLines(prefix, placeholder string) *PrefixLines {
	return &PrefixLines{Prefix: prefix, Placeholder: placeholder}
}

// Apply is a method of the Transform interface.
func (p *PrefixLines) Apply(req Request) Result {
	req = clamp(req)
	content := selection(req, p.Placeholder)
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = p.Prefix
		} else {
			lines[i] = p.Prefix + line
		}
	}
	block := strings.Join(lines, "\n")
	caret := req.From + len(block)
	return Result{
		Text: req.Text[:req.From] + block + req.Text[req.To:],
		From: caret,
		To:   caret,
	}
}

var _ Transform = &PrefixLines{}
