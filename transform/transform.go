// Package transform implements the editor's formatting actions as
// document transforms: pure functions that take the current note text
// plus a selection and return the new text plus the selection to
// restore, so that changes can be treated as first-class values by
// whatever front end applies them.
package transform

// Request is the input to every transform: the full document text and a
// half-open byte-offset range [From, To) into it. From == To denotes a
// caret with no selection.
type Request struct {
	Text string
	From int
	To   int
}

// Result is the output of a transform: the full new document text and
// the range the caller should select (or, when From == To, the caret
// position) after replacing the document.
type Result struct {
	Text string
	From int
	To   int
}

// Transform is a single formatting operation. Implementations are pure:
// the same request always yields the same result, with no hidden state
// and no I/O. They must accept any well-formed request, including empty
// text and selections at the document boundaries.
type Transform interface {
	Apply(req Request) Result
}

// clamp normalizes a request so that 0 <= From <= To <= len(Text).
// Offsets outside the document are a contract violation by the caller;
// clamping keeps the transforms total instead of panicking on slice
// bounds.
func clamp(req Request) Request {
	n := len(req.Text)
	if req.From < 0 {
		req.From = 0
	}
	if req.From > n {
		req.From = n
	}
	if req.To < 0 {
		req.To = 0
	}
	if req.To > n {
		req.To = n
	}
	if req.From > req.To {
		req.From, req.To = req.To, req.From
	}
	return req
}

// selection returns the selected substring, or placeholder when the
// selection is empty.
func selection(req Request, placeholder string) string {
	if req.From == req.To {
		return placeholder
	}
	return req.Text[req.From:req.To]
}

// blockSeparators computes the blank-line padding that keeps a
// block-level insertion from fusing with adjacent paragraph text: no
// separator at a document edge or against an existing newline, a blank
// line otherwise.
func blockSeparators(req Request) (lead, trail string) {
	if req.From > 0 && req.Text[req.From-1] != '\n' {
		lead = "\n\n"
	}
	if req.To < len(req.Text) && req.Text[req.To] != '\n' {
		trail = "\n\n"
	}
	return lead, trail
}
