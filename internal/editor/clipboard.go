package editor

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.design/x/clipboard"
)

// Clipboard is the platform text clipboard.
type Clipboard interface {
	Copy(text string)
	Paste() string
}

// WindowClipboard goes through the raylib window. It needs an open window.
type WindowClipboard struct{}

func (WindowClipboard) Copy(text string) { rl.SetClipboardText(text) }
func (WindowClipboard) Paste() string    { return rl.GetClipboardText() }

// SystemClipboard talks to the OS clipboard directly.
type SystemClipboard struct{}

// NewSystemClipboard initializes the OS clipboard. It fails on headless
// systems or when cgo is unavailable.
func NewSystemClipboard() (SystemClipboard, error) {
	if err := clipboard.Init(); err != nil {
		return SystemClipboard{}, fmt.Errorf("init system clipboard: %w", err)
	}
	return SystemClipboard{}, nil
}

func (SystemClipboard) Copy(text string) {
	clipboard.Write(clipboard.FmtText, []byte(text))
}

func (SystemClipboard) Paste() string {
	return string(clipboard.Read(clipboard.FmtText))
}

// MemoryClipboard keeps text in-process.
type MemoryClipboard struct {
	text string
}

func (c *MemoryClipboard) Copy(text string) { c.text = text }
func (c *MemoryClipboard) Paste() string    { return c.text }

// NewClipboard picks a backend by name: "system", "window" or "memory".
// "system" falls back to the window clipboard when the OS clipboard is
// unavailable.
func NewClipboard(kind string) (Clipboard, error) {
	switch kind {
	case "system", "":
		sys, err := NewSystemClipboard()
		if err != nil {
			return WindowClipboard{}, err
		}
		return sys, nil
	case "window":
		return WindowClipboard{}, nil
	case "memory":
		return &MemoryClipboard{}, nil
	default:
		return nil, fmt.Errorf("unknown clipboard backend %q", kind)
	}
}
