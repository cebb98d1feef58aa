package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeadingAtDocumentStart(t *testing.T) {
	h2 := NewHeading(2, "")

	// no leading separator at the document start; one blank line before
	// the content that follows without a newline
	res := h2.Apply(Request{Text: "TitleBody", From: 0, To: 5})
	assert.Equal(t, "## Title\n\nBody", res.Text)
	assert.Equal(t, "Title", res.Text[res.From:res.To])
}

func TestHeadingSeparators(t *testing.T) {
	h2 := NewHeading(2, "")

	apply := func(text string, from, to int) Result {
		return h2.Apply(Request{Text: text, From: from, To: to})
	}

	// no separators needed when flanked by newlines
	res := apply("a\nTitle\nb", 2, 7)
	assert.Equal(t, "a\n## Title\nb", res.Text)

	// a mid-paragraph selection gets a blank line on both sides
	res = apply("aTitleb", 1, 6)
	assert.Equal(t, "a\n\n## Title\n\nb", res.Text)

	// the end of the document needs no trailing separator
	res = apply("a\nTitle", 2, 7)
	assert.Equal(t, "a\n## Title", res.Text)
}

func TestHeadingStripsExistingMarker(t *testing.T) {
	h2 := NewHeading(2, "")

	// an existing marker is replaced, not stacked
	res := h2.Apply(Request{Text: "### Old", From: 0, To: 7})
	assert.Equal(t, "## Old", res.Text)
	assert.Equal(t, "Old", res.Text[res.From:res.To])
}

func TestHeadingPlaceholder(t *testing.T) {
	h2 := NewHeading(2, "")

	// an empty selection falls back to the default text, selected for
	// retyping
	res := h2.Apply(Request{Text: "", From: 0, To: 0})
	assert.Equal(t, "## Heading", res.Text)
	assert.Equal(t, "Heading", res.Text[res.From:res.To])

	// a whitespace-only selection falls back too
	res = h2.Apply(Request{Text: "   ", From: 0, To: 3})
	assert.Equal(t, "## Heading", res.Text)
}

func TestHeadingLevelClamp(t *testing.T) {
	assert.Equal(t, 1, NewHeading(0, "").Level)
	assert.Equal(t, 6, NewHeading(9, "").Level)
	assert.Equal(t, "# Title", NewHeading(-3, "").Apply(Request{Text: "Title", From: 0, To: 5}).Text)
}
