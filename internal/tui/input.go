package tui

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
)

// inputCursorMode applies to every text input the UI creates.
var inputCursorMode = cursor.CursorBlink

func newInput() textinput.Model {
	ti := textinput.New()
	ti.Cursor.SetMode(inputCursorMode)
	return ti
}
