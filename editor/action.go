// Package editor wires the formatting engine to the surfaces it edits:
// a named action registry for building a toolbar, and a session that
// applies actions to a document store and talks to the preview
// renderer, the note store and the clipboard.
package editor

import (
	"errors"
	"fmt"

	"github.com/Leprekus/quickwrite/config"
	"github.com/Leprekus/quickwrite/transform"
)

// ErrActionNotFound is returned by Invoke when no action is registered
// under the requested id. It indicates a caller bug; callers should
// treat it as a no-op rather than surface it to the user.
var ErrActionNotFound = errors.New("editor: action not found")

// Action is one toolbar entry: a unique id, the display label and
// tooltip hint for the button, and the transform it dispatches to.
type Action struct {
	ID        string
	Label     string
	Hint      string
	Transform transform.Transform
}

// Registry holds a fixed, ordered set of formatting actions.
type Registry struct {
	order []Action
	index map[string]int
}

// NewRegistry creates a registry from the given actions, keeping their
// order. A duplicate id keeps the first registration.
func NewRegistry(actions ...Action) *Registry {
	r := &Registry{index: make(map[string]int, len(actions))}
	for _, a := range actions {
		if _, ok := r.index[a.ID]; ok {
			continue
		}
		r.index[a.ID] = len(r.order)
		r.order = append(r.order, a)
	}
	return r
}

// DefaultRegistry builds the standard toolbar from the configured
// placeholders: bold, italic, heading, quote, code, todo, divider.
func DefaultRegistry(cfg config.Config) *Registry {
	p := cfg.Placeholders
	return NewRegistry(
		Action{
			ID:        "bold",
			Label:     "Bold",
			Hint:      "Wrap the selection in **bold** markers",
			Transform: transform.NewWrap("**", "**", p.Bold),
		},
		Action{
			ID:        "italic",
			Label:     "Italic",
			Hint:      "Wrap the selection in _italic_ markers",
			Transform: transform.NewWrap("_", "_", p.Italic),
		},
		Action{
			ID:        "heading",
			Label:     "Heading",
			Hint:      "Turn the selection into a level-2 heading",
			Transform: transform.NewHeading(2, p.Heading),
		},
		Action{
			ID:        "quote",
			Label:     "Quote",
			Hint:      "Prefix each selected line with a blockquote marker",
			Transform: transform.NewPrefixLines("> ", p.Quote),
		},
		Action{
			ID:        "code",
			Label:     "Code",
			Hint:      "Format the selection as inline code or a fenced block",
			Transform: transform.NewCodeBlock(p.Code),
		},
		Action{
			ID:        "todo",
			Label:     "Todo",
			Hint:      "Turn each selected line into a todo item",
			Transform: transform.NewPrefixLines("- [ ] ", p.Todo),
		},
		Action{
			ID:        "divider",
			Label:     "Divider",
			Hint:      "Insert a horizontal rule",
			Transform: transform.NewDivider(),
		},
	)
}

// Actions returns the registered actions in toolbar order.
func (r *Registry) Actions() []Action {
	out := make([]Action, len(r.order))
	copy(out, r.order)
	return out
}

// Lookup returns the action registered under id.
func (r *Registry) Lookup(id string) (Action, bool) {
	i, ok := r.index[id]
	if !ok {
		return Action{}, false
	}
	return r.order[i], true
}

// Invoke applies the action registered under id to the request. An
// unregistered id fails with ErrActionNotFound and leaves the document
// untouched.
func (r *Registry) Invoke(id string, req transform.Request) (transform.Result, error) {
	a, ok := r.Lookup(id)
	if !ok {
		return transform.Result{}, fmt.Errorf("%w: %q", ErrActionNotFound, id)
	}
	return a.Transform.Apply(req), nil
}
