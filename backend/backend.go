// Package backend translates native window events into an immediate-mode
// GUI's input model and drives per-frame timing, sizing, and cursor state.
// It is written against the IO, Host, and CursorFactory interfaces so the
// translation logic stays independent of the concrete window and GUI
// libraries; the platform package supplies the GLFW/imgui wiring.
package backend

import (
	"fmt"
	"math"
)

// fallbackDelta substitutes for a frame delta that did not advance.
const fallbackDelta = 1.0 / 60.0

// offscreenMousePos parks the pointer where the GUI treats it as absent.
const offscreenMousePos = -math.MaxFloat32

// Backend owns the adapter state for one window: the cursor cache, the
// frame clock, and the viewport metrics. A Backend is single-threaded; all
// methods must be called from the window's event thread.
type Backend struct {
	io   IO
	host Host

	cursors       *cursorSet
	currentCursor Cursor
	cursorChanges bool

	lastTime float64

	displayWidth, displayHeight float32
	fbWidth, fbHeight           float32
	scaleX, scaleY              float32
}

// New builds the cursor cache and seeds the frame clock from the host
// clock. The host window must be live. Construction fails only when the
// platform cannot supply the arrow cursor.
func New(io IO, host Host, factory CursorFactory) (*Backend, error) {
	cursors, err := newCursorSet(factory)
	if err != nil {
		return nil, fmt.Errorf("cursor cache: %w", err)
	}
	return &Backend{
		io:            io,
		host:          host,
		cursors:       cursors,
		currentCursor: CursorNone,
		cursorChanges: true,
		lastTime:      host.Time(),
		scaleX:        1,
		scaleY:        1,
	}, nil
}

// SetCursorChangesEnabled controls whether SyncCursor touches the host
// cursor at all. Enabled by default; disable it when the application draws
// its own cursor.
func (b *Backend) SetCursorChangesEnabled(enabled bool) {
	b.cursorChanges = enabled
}

// HandleEvent applies one native event to the GUI's pending input and
// reports whether the GUI wants to capture that category of input. Events
// reported as not captured should be forwarded to application logic.
func (b *Backend) HandleEvent(ev Event) bool {
	switch ev := ev.(type) {
	case MouseButtonEvent:
		if ev.Button < MouseButton1 || ev.Button >= MouseButtonCount {
			return false
		}
		b.io.SetMouseButton(ev.Button, ev.Action != Release)
		return b.io.WantCaptureMouse()
	case CursorPosEvent:
		b.io.SetMousePos(float32(ev.X), float32(ev.Y))
		return b.io.WantCaptureMouse()
	case CursorEnterEvent:
		// Leaving the window parks the pointer offscreen; re-entering is
		// followed by a position event, so there is nothing to restore here.
		if !ev.Entered {
			b.io.SetMousePos(offscreenMousePos, offscreenMousePos)
		}
		return false
	case ScrollEvent:
		b.io.AddMouseWheel(float32(ev.X), float32(ev.Y))
		return b.io.WantCaptureMouse()
	case CharEvent:
		b.io.AddInputCharacter(ev.Char)
		return b.io.WantCaptureKeyboard()
	case KeyEvent:
		b.io.SetKeyModifiers(
			ev.Mods&ModControl != 0,
			ev.Mods&ModAlt != 0,
			ev.Mods&ModShift != 0,
			ev.Mods&ModSuper != 0,
		)
		// Repeat counts as held down.
		b.io.SetKey(ev.Key, ev.Action != Release)
		return b.io.WantCaptureKeyboard()
	case FocusEvent:
		b.io.SetFocusLost(!ev.Focused)
		return false
	}
	return false
}

// NewFrame advances the frame clock, pushes the current window metrics to
// the GUI, and opens a new frame. Call exactly once per iteration, before
// any UI construction.
func (b *Backend) NewFrame() {
	now := b.host.Time()
	delta := float32(now - b.lastTime)
	b.lastTime = now
	if delta <= 0 {
		delta = fallbackDelta
	}
	b.io.SetDeltaTime(delta)

	width, height := b.host.Size()
	b.displayWidth, b.displayHeight = float32(width), float32(height)
	b.io.SetDisplaySize(b.displayWidth, b.displayHeight)

	fbWidth, fbHeight := b.host.FramebufferSize()
	b.fbWidth, b.fbHeight = float32(fbWidth), float32(fbHeight)
	// A zero-sized window (minimized) keeps the previous scale.
	if width > 0 && height > 0 {
		b.scaleX = b.fbWidth / b.displayWidth
		b.scaleY = b.fbHeight / b.displayHeight
	}

	b.io.NewFrame()
}

// SyncCursor reconciles the GUI's requested cursor shape against the host
// window. Call once per frame after UI construction and before presenting.
// The host is only touched when the requested kind changes.
func (b *Backend) SyncCursor() {
	if !b.cursorChanges {
		return
	}
	kind := b.io.MouseCursor()
	if kind == CursorNone {
		if b.currentCursor != CursorNone {
			b.currentCursor = CursorNone
			b.host.SetCursorVisible(false)
		}
		return
	}
	if kind == b.currentCursor {
		return
	}
	b.host.SetCursorVisible(true)
	b.host.ApplyCursor(b.cursors.lookup(kind))
	b.currentCursor = kind
}

// Shutdown releases every cached cursor handle exactly once. Safe to call
// more than once.
func (b *Backend) Shutdown() {
	b.cursors.destroy()
}

// DisplaySize returns the logical window size pushed by the last NewFrame.
func (b *Backend) DisplaySize() [2]float32 {
	return [2]float32{b.displayWidth, b.displayHeight}
}

// FramebufferSize returns the framebuffer size read by the last NewFrame.
func (b *Backend) FramebufferSize() [2]float32 {
	return [2]float32{b.fbWidth, b.fbHeight}
}

// FramebufferScale returns the framebuffer-pixels-per-logical-unit ratio,
// (1,1) until a frame has run with a non-empty window.
func (b *Backend) FramebufferScale() [2]float32 {
	return [2]float32{b.scaleX, b.scaleY}
}
