package backend

// Action distinguishes a release from a press or a key repeat. The values
// match GLFW's action constants so the platform layer can convert directly.
type Action int

const (
	Release Action = iota
	Press
	Repeat
)

// Modifier is a bitmask of modifier keys held during an event. The bits
// match GLFW's modifier constants.
type Modifier int

const (
	ModShift Modifier = 1 << iota
	ModControl
	ModAlt
	ModSuper
)

// Mouse button indices as delivered by the window layer. Only the first
// five buttons have GUI slots; anything beyond is ignored by the
// translator.
const (
	MouseButton1 = iota
	MouseButton2
	MouseButton3
	MouseButton4
	MouseButton5
	MouseButtonCount
)

// Event is a single native input occurrence. Each event is consumed exactly
// once by Backend.HandleEvent.
type Event interface {
	event()
}

// MouseButtonEvent reports a mouse button press or release.
type MouseButtonEvent struct {
	Button int
	Action Action
	Mods   Modifier
}

// CursorPosEvent reports the pointer position in logical window units.
type CursorPosEvent struct {
	X, Y float64
}

// CursorEnterEvent reports the pointer entering or leaving the window.
type CursorEnterEvent struct {
	Entered bool
}

// ScrollEvent reports horizontal and vertical wheel movement.
type ScrollEvent struct {
	X, Y float64
}

// CharEvent reports a translated character input.
type CharEvent struct {
	Char rune
}

// KeyEvent reports a physical key press, repeat, or release.
type KeyEvent struct {
	Key    int
	Action Action
	Mods   Modifier
}

// FocusEvent reports the window gaining or losing input focus.
type FocusEvent struct {
	Focused bool
}

func (MouseButtonEvent) event() {}
func (CursorPosEvent) event()   {}
func (CursorEnterEvent) event() {}
func (ScrollEvent) event()      {}
func (CharEvent) event()        {}
func (KeyEvent) event()         {}
func (FocusEvent) event()       {}
