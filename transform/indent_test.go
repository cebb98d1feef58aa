package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndent(t *testing.T) {
	tab := NewIndent(2)

	// a plain splice at the caret; the caret lands after the spaces
	res := tab.Apply(Request{Text: "ab", From: 1, To: 1})
	assert.Equal(t, "a  b", res.Text)
	assert.Equal(t, 3, res.From)
	assert.Equal(t, 3, res.To)
}

func TestIndentIgnoresSelectionEnd(t *testing.T) {
	tab := NewIndent(2)

	// selected text is not replaced; the spaces go in at the start
	res := tab.Apply(Request{Text: "abcd", From: 1, To: 3})
	assert.Equal(t, "a  bcd", res.Text)
}

func TestIndentWidth(t *testing.T) {
	assert.Equal(t, "    x", NewIndent(4).Apply(Request{Text: "x"}).Text)
	// zero falls back to the two-space default
	assert.Equal(t, "  x", NewIndent(0).Apply(Request{Text: "x"}).Text)
}
