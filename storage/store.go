// Package storage persists notes to a single JSON file keyed by note
// id, behind the editor's persistence interface.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// ErrNotFound is returned by Get when no note exists under the id.
var ErrNotFound = errors.New("storage: note not found")

// Note is one stored note.
type Note struct {
	ID      string
	Body    string
	Updated time.Time
}

// Store keeps all notes in one JSON file: an object keyed by id, each
// entry holding the body and the last update time. Writes update the
// file with incremental sjson sets, so a note's entry is rewritten
// without re-encoding the others.
type Store struct {
	path string

	// now stubs out the clock in tests.
	now func() time.Time
}

// NewStore is the constructor of Store. The file is created on first
// save.
func NewStore(path string) *Store {
	return &Store{path: filepath.Clean(path), now: time.Now}
}

// Get returns the body of the note stored under id.
func (s *Store) Get(id string) (string, error) {
	data, err := s.read()
	if err != nil {
		return "", err
	}
	body := gjson.GetBytes(data, escape(id)+".body")
	if !body.Exists() {
		return "", fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return body.String(), nil
}

// Put stores body under id, generating a fresh id when it is empty, and
// returns the id used.
func (s *Store) Put(id, body string) (string, error) {
	if id == "" {
		id = uuid.NewString()
	}
	data, err := s.read()
	if err != nil {
		return "", err
	}
	key := escape(id)
	data, err = sjson.SetBytes(data, key+".body", body)
	if err == nil {
		data, err = sjson.SetBytes(data, key+".updated", s.now().UTC().Format(time.RFC3339Nano))
	}
	if err != nil {
		return "", fmt.Errorf("storage: encode note %q: %w", id, err)
	}
	if err := s.write(data); err != nil {
		return "", err
	}
	return id, nil
}

// Delete removes the note stored under id. Deleting an unknown id is
// not an error.
func (s *Store) Delete(id string) error {
	data, err := s.read()
	if err != nil {
		return err
	}
	data, err = sjson.DeleteBytes(data, escape(id))
	if err != nil {
		return fmt.Errorf("storage: delete note %q: %w", id, err)
	}
	return s.write(data)
}

// List returns all notes ordered by most recent update.
func (s *Store) List() ([]Note, error) {
	data, err := s.read()
	if err != nil {
		return nil, err
	}
	var notes []Note
	gjson.ParseBytes(data).ForEach(func(key, value gjson.Result) bool {
		updated, _ := time.Parse(time.RFC3339Nano, value.Get("updated").String())
		notes = append(notes, Note{
			ID:      key.String(),
			Body:    value.Get("body").String(),
			Updated: updated,
		})
		return true
	})
	sort.Slice(notes, func(i, j int) bool {
		return notes[i].Updated.After(notes[j].Updated)
	})
	return notes, nil
}

func (s *Store) read() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []byte("{}"), nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", s.path, err)
	}
	if len(data) == 0 {
		data = []byte("{}")
	}
	return data, nil
}

func (s *Store) write(data []byte) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("storage: create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("storage: write %s: %w", s.path, err)
	}
	return nil
}

// escape quotes the gjson path characters in a note id, so an id that
// contains dots or wildcards addresses a single key.
func escape(id string) string {
	var b []byte
	for i := 0; i < len(id); i++ {
		switch id[i] {
		case '.', '*', '?', '\\', '|', '#', '@':
			b = append(b, '\\')
		}
		b = append(b, id[i])
	}
	return string(b)
}
