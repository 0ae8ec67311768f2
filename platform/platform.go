// Package platform wires a GLFW window to the backend: it implements the
// backend's IO, Host, and CursorFactory interfaces over go-gl/glfw and
// imgui-go, installs the window callbacks, and registers the clipboard.
package platform

import (
	"fmt"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	imgui "github.com/mmp/imgui-go/v4"

	"github.com/parchview/imgui-glfw/backend"
)

// EventHandler receives every translated event along with the GUI's capture
// decision. Events reported as not captured are the application's to act on.
type EventHandler func(ev backend.Event, captured bool)

// Platform binds one GLFW window to the current imgui context.
type Platform struct {
	window  *glfw.Window
	backend *backend.Backend
	handler EventHandler
}

// New wires window to the current imgui context and installs the input
// callbacks. The window must be live with its context current; imgui must
// have a context. The caller keeps ownership of the window.
func New(window *glfw.Window) (*Platform, error) {
	if window == nil {
		return nil, fmt.Errorf("platform: nil window")
	}

	io := imgui.CurrentIO()
	io.SetBackendFlags(io.GetBackendFlags() | imgui.BackendFlagsHasMouseCursors)
	io.SetClipboard(WindowClipboard{window: window})
	setKeyMapping(io)

	b, err := backend.New(&guiIO{io: io}, &hostWindow{window: window}, cursorFactory{})
	if err != nil {
		return nil, fmt.Errorf("platform: %w", err)
	}

	p := &Platform{window: window, backend: b}
	p.installCallbacks()
	return p, nil
}

// SetEventHandler registers a function that observes translated events and
// their capture state. Pass nil to remove it.
func (p *Platform) SetEventHandler(handler EventHandler) {
	p.handler = handler
}

// Backend returns the underlying adapter, for callers that drive it
// directly with a renderer of their own.
func (p *Platform) Backend() *backend.Backend {
	return p.backend
}

// ProcessEvents drains pending window events through the installed
// callbacks. Call once per iteration, before NewFrame.
func (p *Platform) ProcessEvents() {
	glfw.PollEvents()
}

// NewFrame advances timing and viewport state and opens a new imgui frame.
func (p *Platform) NewFrame() {
	p.backend.NewFrame()
}

// SyncCursor applies imgui's requested cursor to the window. Call after UI
// construction, before PostRender.
func (p *Platform) SyncCursor() {
	p.backend.SyncCursor()
}

// PostRender swaps the window buffers.
func (p *Platform) PostRender() {
	p.window.SwapBuffers()
}

// ShouldStop reports whether the window was asked to close.
func (p *Platform) ShouldStop() bool {
	return p.window.ShouldClose()
}

// DisplaySize returns the logical window size from the current frame.
func (p *Platform) DisplaySize() [2]float32 {
	return p.backend.DisplaySize()
}

// FramebufferSize returns the framebuffer size from the current frame.
func (p *Platform) FramebufferSize() [2]float32 {
	return p.backend.FramebufferSize()
}

// Dispose releases the cursor cache. The window stays with the caller.
func (p *Platform) Dispose() {
	p.backend.Shutdown()
}

func (p *Platform) installCallbacks() {
	p.window.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		p.dispatch(backend.MouseButtonEvent{Button: int(button), Action: toAction(action), Mods: backend.Modifier(mods)})
	})
	p.window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		p.dispatch(backend.CursorPosEvent{X: x, Y: y})
	})
	p.window.SetCursorEnterCallback(func(_ *glfw.Window, entered bool) {
		p.dispatch(backend.CursorEnterEvent{Entered: entered})
	})
	p.window.SetScrollCallback(func(_ *glfw.Window, x, y float64) {
		p.dispatch(backend.ScrollEvent{X: x, Y: y})
	})
	p.window.SetCharCallback(func(_ *glfw.Window, char rune) {
		p.dispatch(backend.CharEvent{Char: char})
	})
	p.window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		p.dispatch(backend.KeyEvent{Key: int(key), Action: toAction(action), Mods: backend.Modifier(mods)})
	})
	p.window.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		p.dispatch(backend.FocusEvent{Focused: focused})
	})
}

func (p *Platform) dispatch(ev backend.Event) {
	captured := p.backend.HandleEvent(ev)
	if p.handler != nil {
		p.handler(ev, captured)
	}
}

// toAction converts a GLFW action. The backend's Modifier bits already
// match GLFW's, so those convert by cast in the callbacks above.
func toAction(action glfw.Action) backend.Action {
	switch action {
	case glfw.Press:
		return backend.Press
	case glfw.Repeat:
		return backend.Repeat
	default:
		return backend.Release
	}
}
