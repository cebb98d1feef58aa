package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDividerBetweenLines(t *testing.T) {
	div := NewDivider()

	// at the A|\nB boundary a blank line pads the front and the existing
	// newline serves behind
	res := div.Apply(Request{Text: "A\nB", From: 1, To: 1})
	assert.Equal(t, "A\n\n---\nB", res.Text)
	assert.Equal(t, res.From, res.To)

	// after the newline the lead collapses and the trail pads instead
	res = div.Apply(Request{Text: "A\nB", From: 2, To: 2})
	assert.Equal(t, "A\n---\n\nB", res.Text)
}

func TestDividerDiscardsSelection(t *testing.T) {
	div := NewDivider()

	// selected text is dropped entirely; the selection only fixes the
	// insertion boundaries
	res := div.Apply(Request{Text: "keep DROP keep", From: 5, To: 10})
	assert.Equal(t, "keep \n\n---\n\nkeep", res.Text)
	assert.Equal(t, 12, res.From)
	assert.Equal(t, 12, res.To)
}

func TestDividerAtDocumentEdges(t *testing.T) {
	div := NewDivider()

	// empty document: the rule stands alone with no padding
	res := div.Apply(Request{})
	assert.Equal(t, "---", res.Text)
	assert.Equal(t, 3, res.From)

	// the end of the document needs no trailing separator
	res = div.Apply(Request{Text: "A\n", From: 2, To: 2})
	assert.Equal(t, "A\n---", res.Text)
}
