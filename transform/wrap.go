package transform

// Wrap surrounds the selection with symmetric inline markers, such as
// ** for bold or _ for italic. With no selection the placeholder is
// wrapped instead, and the returned range covers exactly the content so
// the user can retype it immediately.
//
// The content is wrapped verbatim: markers are inserted only at the two
// selection boundaries, never per line, and marker characters already
// inside the content are not escaped. Applying Wrap to its own output
// therefore nests the markers rather than being a no-op.
type Wrap struct {
	Before      string
	After       string
	Placeholder string
}

// NewWrap is the constructor of Wrap.
func NewWrap(before, after, placeholder string) *Wrap {
	return &Wrap{Before: before, After: after, Placeholder: placeholder}
}

// Apply is a method of the Transform interface.
func (w *Wrap) Apply(req Request) Result {
	req = clamp(req)
	content := selection(req, w.Placeholder)
	start := req.From + len(w.Before)
	return Result{
		Text: req.Text[:req.From] + w.Before + content + w.After + req.Text[req.To:],
		From: start,
		To:   start + len(content),
	}
}

var _ Transform = &Wrap{}
