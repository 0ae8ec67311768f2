package platform

import (
	clip "github.com/atotto/clipboard"
	glfw "github.com/go-gl/glfw/v3.3/glfw"

	"github.com/parchview/imgui-glfw/backend"
)

// WindowClipboard reads and writes the system clipboard through a GLFW
// window. It is registered with imgui automatically by New.
type WindowClipboard struct {
	window *glfw.Window
}

// NewWindowClipboard returns a clipboard bound to window.
func NewWindowClipboard(window *glfw.Window) WindowClipboard {
	return WindowClipboard{window: window}
}

func (c WindowClipboard) Text() (string, error) {
	return c.window.GetClipboardString(), nil
}

// SetText pushes text to the clipboard. Text the host API cannot encode is
// dropped silently.
func (c WindowClipboard) SetText(text string) {
	if !backend.ValidClipboardText(text) {
		return
	}
	c.window.SetClipboardString(text)
}

// SystemClipboard talks to the operating system clipboard directly, for
// windowless use (offscreen rendering, tests).
type SystemClipboard struct{}

func (SystemClipboard) Text() (string, error) {
	return clip.ReadAll()
}

func (SystemClipboard) SetText(text string) {
	if !backend.ValidClipboardText(text) {
		return
	}
	_ = clip.WriteAll(text)
}
