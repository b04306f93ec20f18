package controller

import "strings"

const (
	KeyEscape    = "Escape"
	KeyTab       = "Tab"
	KeyEnter     = "Enter"
	KeyBackspace = "Backspace"
	KeyUp        = "ArrowUp"
	KeyDown      = "ArrowDown"
	KeyLeft      = "ArrowLeft"
	KeyRight     = "ArrowRight"
)

// KeyEvent is one key press. Key holds a named key or the typed character.
type KeyEvent struct {
	Key   string
	Shift bool
	Ctrl  bool
	Meta  bool
}

func (k KeyEvent) is(names ...string) bool {
	for _, n := range names {
		if k.Key == n {
			return true
		}
	}
	return false
}

func (k KeyEvent) isLetter(letter string) bool {
	return strings.EqualFold(k.Key, letter) && len(k.Key) == 1
}

func (k KeyEvent) isUndo() bool {
	return (k.Ctrl || k.Meta) && k.isLetter("z")
}
