package backend

// IO is the subset of the GUI engine's input and frame surface that the
// backend drives. The platform package implements it over imgui-go; tests
// use an in-memory fake.
type IO interface {
	// SetMouseButton records the pressed state of a logical button slot.
	SetMouseButton(slot int, down bool)
	// SetMousePos records the pointer position in logical window units.
	SetMousePos(x, y float32)
	// AddMouseWheel accumulates wheel movement for the current frame.
	AddMouseWheel(dx, dy float32)
	// AddInputCharacter queues a character for text input.
	AddInputCharacter(char rune)
	// SetKey records the pressed state of a single key.
	SetKey(key int, down bool)
	// SetKeyModifiers records the modifier flags as of the latest key event.
	SetKeyModifiers(ctrl, alt, shift, super bool)
	// SetFocusLost records whether the host window lost input focus.
	SetFocusLost(lost bool)

	// WantCaptureMouse reports whether the GUI claims mouse input.
	WantCaptureMouse() bool
	// WantCaptureKeyboard reports whether the GUI claims keyboard input.
	WantCaptureKeyboard() bool

	// SetDeltaTime sets the elapsed time for the upcoming frame, in seconds.
	SetDeltaTime(seconds float32)
	// SetDisplaySize sets the logical display size for the upcoming frame.
	SetDisplaySize(w, h float32)
	// NewFrame opens a new GUI frame.
	NewFrame()

	// MouseCursor returns the cursor kind the GUI wants shown, or CursorNone.
	MouseCursor() Cursor
}

// Host is the window surface the backend reads metrics and time from and
// applies cursor state to.
type Host interface {
	// Size returns the logical window size in screen units.
	Size() (width, height int)
	// FramebufferSize returns the framebuffer size in pixels.
	FramebufferSize() (width, height int)
	// Time returns a monotonic timestamp in seconds.
	Time() float64
	// ApplyCursor makes the given cursor the window's active cursor.
	ApplyCursor(handle CursorHandle)
	// SetCursorVisible shows or hides the host cursor.
	SetCursorVisible(visible bool)
}

// CursorHandle is an opaque native cursor owned by the backend's cursor
// cache. Destroy releases the native resource and must be called at most
// once; the cache guarantees that.
type CursorHandle interface {
	Destroy()
}

// CursorFactory creates native cursors for logical kinds. ok reports
// whether the platform supports the shape; unsupported shapes are not an
// error.
type CursorFactory interface {
	Create(kind Cursor) (handle CursorHandle, ok bool)
}

// Clipboard moves text between the GUI and the host clipboard. It matches
// imgui-go's clipboard shape so implementations can be registered directly.
type Clipboard interface {
	Text() (string, error)
	SetText(value string)
}
