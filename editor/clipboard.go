package editor

import "github.com/atotto/clipboard"

// SystemClipboard writes to the operating system clipboard.
type SystemClipboard struct{}

// WriteText is a method of the Clipboard interface.
func (SystemClipboard) WriteText(text string) error {
	return clipboard.WriteAll(text)
}

var _ Clipboard = SystemClipboard{}
