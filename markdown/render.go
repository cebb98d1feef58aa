// Package markdown renders note text to HTML for the preview pane.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
)

// Renderer converts markdown note text to HTML. It enables the GFM
// extensions (tables, strikethrough, task lists, autolinks) and chroma
// syntax highlighting for fenced code blocks, matching what the editor
// toolbar can produce. Raw HTML in the source is escaped.
type Renderer struct {
	md goldmark.Markdown
}

type options struct {
	style     string
	hardWraps bool
}

// Option configures a Renderer.
type Option func(*options)

// WithHighlightStyle selects the chroma style used for fenced code.
func WithHighlightStyle(style string) Option {
	return func(o *options) { o.style = style }
}

// WithHardWraps controls whether single newlines render as line breaks,
// the way a note editor is expected to behave. Enabled by default.
func WithHardWraps(enable bool) Option {
	return func(o *options) { o.hardWraps = enable }
}

// NewRenderer is the constructor of Renderer.
func NewRenderer(opts ...Option) *Renderer {
	o := options{style: "github", hardWraps: true}
	for _, opt := range opts {
		opt(&o)
	}
	var rendererOpts []renderer.Option
	if o.hardWraps {
		rendererOpts = append(rendererOpts, html.WithHardWraps())
	}
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(o.style),
				highlighting.WithFormatOptions(
					chromahtml.WithLineNumbers(false),
				),
			),
		),
		goldmark.WithRendererOptions(rendererOpts...),
	)
	return &Renderer{md: md}
}

// Render converts source to HTML.
func (r *Renderer) Render(source string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("markdown: render: %w", err)
	}
	return buf.String(), nil
}
