package editor

import (
	"errors"

	"github.com/Leprekus/quickwrite/transform"
)

// TextStore is the document surface a session edits: the full note text
// plus the current selection, as exposed by whatever text widget the
// front end uses.
type TextStore interface {
	Text() string
	SetText(text string)
	Selection() (from, to int)
	SetSelection(from, to int)
}

// Renderer converts note text to display markup for the preview pane.
type Renderer interface {
	Render(source string) (string, error)
}

// Notes is the persistence store for saved notes.
type Notes interface {
	Get(id string) (string, error)
	Put(id, body string) (string, error)
}

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteText(text string) error
}

// Session glues one document to the registry and its collaborators. It
// is synchronous: each call runs one transform to completion before the
// next event is processed, which is all the serialization the stateless
// engine needs.
type Session struct {
	store     TextStore
	registry  *Registry
	renderer  Renderer
	notes     Notes
	clipboard Clipboard
	indent    transform.Transform
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithRenderer sets the preview renderer used by Preview.
func WithRenderer(r Renderer) SessionOption {
	return func(s *Session) { s.renderer = r }
}

// WithNotes sets the note store used by Save and Load.
func WithNotes(n Notes) SessionOption {
	return func(s *Session) { s.notes = n }
}

// WithClipboard sets the clipboard used by CopyAll.
func WithClipboard(c Clipboard) SessionOption {
	return func(s *Session) { s.clipboard = c }
}

// WithIndentWidth sets the number of spaces Indent splices in.
func WithIndentWidth(width int) SessionOption {
	return func(s *Session) { s.indent = transform.NewIndent(width) }
}

// NewSession creates a session over the given document store and action
// registry.
func NewSession(store TextStore, registry *Registry, opts ...SessionOption) *Session {
	s := &Session{
		store:    store,
		registry: registry,
		indent:   transform.NewIndent(0),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Apply invokes the named action on the current document and selection,
// replaces the document with the result, and restores the returned
// selection. An unknown id leaves the document untouched and returns
// ErrActionNotFound.
func (s *Session) Apply(id string) error {
	from, to := s.store.Selection()
	res, err := s.registry.Invoke(id, transform.Request{Text: s.store.Text(), From: from, To: to})
	if err != nil {
		return err
	}
	s.store.SetText(res.Text)
	s.store.SetSelection(res.From, res.To)
	return nil
}

// Indent splices indentation at the caret, for the raw Tab key. It is
// dispatched directly rather than through the registry.
func (s *Session) Indent() {
	from, to := s.store.Selection()
	res := s.indent.Apply(transform.Request{Text: s.store.Text(), From: from, To: to})
	s.store.SetText(res.Text)
	s.store.SetSelection(res.From, res.To)
}

// Preview renders the current document for the preview pane.
func (s *Session) Preview() (string, error) {
	if s.renderer == nil {
		return "", errors.New("editor: no renderer configured")
	}
	return s.renderer.Render(s.store.Text())
}

// CopyAll writes the whole document to the clipboard.
func (s *Session) CopyAll() error {
	if s.clipboard == nil {
		return errors.New("editor: no clipboard configured")
	}
	return s.clipboard.WriteText(s.store.Text())
}

// Save persists the current document under id, or under a fresh id
// when id is empty, and returns the id used.
func (s *Session) Save(id string) (string, error) {
	if s.notes == nil {
		return "", errors.New("editor: no note store configured")
	}
	return s.notes.Put(id, s.store.Text())
}

// Load replaces the document with the note stored under id and places
// the caret at its end.
func (s *Session) Load(id string) error {
	if s.notes == nil {
		return errors.New("editor: no note store configured")
	}
	body, err := s.notes.Get(id)
	if err != nil {
		return err
	}
	s.store.SetText(body)
	s.store.SetSelection(len(body), len(body))
	return nil
}
