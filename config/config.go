// Package config loads the editor configuration from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Placeholders are the texts inserted when a formatting action runs
// with no selection.
type Placeholders struct {
	Bold    string `toml:"bold"`
	Italic  string `toml:"italic"`
	Heading string `toml:"heading"`
	Quote   string `toml:"quote"`
	Code    string `toml:"code"`
	Todo    string `toml:"todo"`
}

// Config holds the editor settings.
type Config struct {
	// IndentWidth is the number of spaces the Tab key splices in.
	IndentWidth int `toml:"indent_width"`
	// HighlightStyle is the chroma style used for fenced code in the
	// preview.
	HighlightStyle string `toml:"highlight_style"`
	// HardWraps renders single newlines as line breaks in the preview.
	HardWraps bool `toml:"hard_wraps"`
	// NotesPath is the JSON file the note store persists to.
	NotesPath string `toml:"notes_path"`

	Placeholders Placeholders `toml:"placeholders"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		IndentWidth:    2,
		HighlightStyle: "github",
		HardWraps:      true,
		NotesPath:      "quickwrite-notes.json",
		Placeholders: Placeholders{
			Bold:    "bold text",
			Italic:  "italic text",
			Heading: "Heading",
			Quote:   "quote",
			Code:    "code snippet",
			Todo:    "todo",
		},
	}
}

// Load overlays the TOML file at path onto the defaults. A missing file
// is not an error: the defaults are returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}
