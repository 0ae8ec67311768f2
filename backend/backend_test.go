package backend

import (
	"math"
	"testing"
)

type fakeIO struct {
	buttons        [MouseButtonCount]bool
	mouseX, mouseY float32
	wheelX, wheelY float32
	chars          []rune
	keys           map[int]bool

	ctrl, alt, shift, super bool
	focusLost               bool

	captureMouse    bool
	captureKeyboard bool

	delta               float32
	displayW, displayH  float32
	frames              int
	cursor              Cursor
}

func newFakeIO() *fakeIO {
	return &fakeIO{keys: make(map[int]bool), cursor: CursorNone}
}

func (f *fakeIO) SetMouseButton(slot int, down bool) { f.buttons[slot] = down }
func (f *fakeIO) SetMousePos(x, y float32)           { f.mouseX, f.mouseY = x, y }
func (f *fakeIO) AddMouseWheel(dx, dy float32)       { f.wheelX += dx; f.wheelY += dy }
func (f *fakeIO) AddInputCharacter(char rune)        { f.chars = append(f.chars, char) }
func (f *fakeIO) SetKey(key int, down bool)          { f.keys[key] = down }
func (f *fakeIO) SetKeyModifiers(ctrl, alt, shift, super bool) {
	f.ctrl, f.alt, f.shift, f.super = ctrl, alt, shift, super
}
func (f *fakeIO) SetFocusLost(lost bool)        { f.focusLost = lost }
func (f *fakeIO) WantCaptureMouse() bool        { return f.captureMouse }
func (f *fakeIO) WantCaptureKeyboard() bool     { return f.captureKeyboard }
func (f *fakeIO) SetDeltaTime(seconds float32)  { f.delta = seconds }
func (f *fakeIO) SetDisplaySize(w, h float32)   { f.displayW, f.displayH = w, h }
func (f *fakeIO) NewFrame()                     { f.frames++ }
func (f *fakeIO) MouseCursor() Cursor           { return f.cursor }

type fakeHost struct {
	width, height     int
	fbWidth, fbHeight int
	now               float64

	applied []CursorHandle
	visible []bool
}

func (f *fakeHost) Size() (int, int)            { return f.width, f.height }
func (f *fakeHost) FramebufferSize() (int, int) { return f.fbWidth, f.fbHeight }
func (f *fakeHost) Time() float64               { return f.now }
func (f *fakeHost) ApplyCursor(h CursorHandle)  { f.applied = append(f.applied, h) }
func (f *fakeHost) SetCursorVisible(v bool)     { f.visible = append(f.visible, v) }

type fakeCursor struct {
	kind      Cursor
	destroyed int
}

func (c *fakeCursor) Destroy() { c.destroyed++ }

type fakeFactory struct {
	unavailable map[Cursor]bool
	created     []*fakeCursor
}

func (f *fakeFactory) Create(kind Cursor) (CursorHandle, bool) {
	if f.unavailable[kind] {
		return nil, false
	}
	c := &fakeCursor{kind: kind}
	f.created = append(f.created, c)
	return c, true
}

func newTestBackend(t *testing.T, io *fakeIO, host *fakeHost, factory *fakeFactory) *Backend {
	t.Helper()
	b, err := New(io, host, factory)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return b
}

func TestMouseButtonLastWriteWins(t *testing.T) {
	io := newFakeIO()
	host := &fakeHost{width: 800, height: 600, fbWidth: 800, fbHeight: 600}
	b := newTestBackend(t, io, host, &fakeFactory{})

	seq := []struct {
		action Action
		want   bool
	}{
		{Press, true},
		{Release, false},
		{Press, true},
		{Repeat, true},
		{Release, false},
	}
	for _, step := range seq {
		b.HandleEvent(MouseButtonEvent{Button: MouseButton1, Action: step.action})
		if io.buttons[0] != step.want {
			t.Errorf("after %v: button state = %v, want %v", step.action, io.buttons[0], step.want)
		}
	}
}

func TestUnknownMouseButtonIgnored(t *testing.T) {
	io := newFakeIO()
	io.captureMouse = true
	b := newTestBackend(t, io, &fakeHost{}, &fakeFactory{})

	for _, button := range []int{-1, MouseButtonCount, 9} {
		if captured := b.HandleEvent(MouseButtonEvent{Button: button, Action: Press}); captured {
			t.Errorf("button %d: captured = true, want false", button)
		}
	}
	for slot, down := range io.buttons {
		if down {
			t.Errorf("slot %d mutated by out-of-range button", slot)
		}
	}
}

func TestCursorLeaveParksPointerOffscreen(t *testing.T) {
	io := newFakeIO()
	b := newTestBackend(t, io, &fakeHost{}, &fakeFactory{})

	b.HandleEvent(CursorPosEvent{X: 100, Y: 200})
	if io.mouseX != 100 || io.mouseY != 200 {
		t.Fatalf("pointer = (%v,%v), want (100,200)", io.mouseX, io.mouseY)
	}
	b.HandleEvent(CursorEnterEvent{Entered: false})
	if io.mouseX != -math.MaxFloat32 || io.mouseY != -math.MaxFloat32 {
		t.Errorf("pointer after leave = (%v,%v), want offscreen sentinel", io.mouseX, io.mouseY)
	}
}

func TestScrollAccumulates(t *testing.T) {
	io := newFakeIO()
	b := newTestBackend(t, io, &fakeHost{}, &fakeFactory{})

	b.HandleEvent(ScrollEvent{X: 1, Y: -2})
	b.HandleEvent(ScrollEvent{X: 0.5, Y: 3})
	if io.wheelX != 1.5 || io.wheelY != 1 {
		t.Errorf("wheel = (%v,%v), want (1.5,1)", io.wheelX, io.wheelY)
	}
}

func TestKeyEventUpdatesModifiersThenKey(t *testing.T) {
	io := newFakeIO()
	b := newTestBackend(t, io, &fakeHost{}, &fakeFactory{})

	const keyA = 65
	b.HandleEvent(KeyEvent{Key: keyA, Action: Press, Mods: ModControl})
	if !io.ctrl {
		t.Error("ctrl flag not set after press with ModControl")
	}
	if !io.keys[keyA] {
		t.Error("key A not recorded as down")
	}

	b.HandleEvent(KeyEvent{Key: keyA, Action: Release, Mods: 0})
	if io.ctrl {
		t.Error("ctrl flag still set after release without modifiers")
	}
	if io.keys[keyA] {
		t.Error("key A still recorded as down")
	}
}

func TestCaptureFlags(t *testing.T) {
	io := newFakeIO()
	io.captureMouse = true
	io.captureKeyboard = true
	b := newTestBackend(t, io, &fakeHost{}, &fakeFactory{})

	cases := []struct {
		name string
		ev   Event
		want bool
	}{
		{"mouse button", MouseButtonEvent{Button: MouseButton2, Action: Press}, true},
		{"cursor pos", CursorPosEvent{X: 1, Y: 1}, true},
		{"scroll", ScrollEvent{Y: 1}, true},
		{"char", CharEvent{Char: 'x'}, true},
		{"key", KeyEvent{Key: 32, Action: Press}, true},
		{"cursor leave", CursorEnterEvent{Entered: false}, false},
		{"focus", FocusEvent{Focused: false}, false},
	}
	for _, tc := range cases {
		if got := b.HandleEvent(tc.ev); got != tc.want {
			t.Errorf("%s: captured = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestFocusLostFlag(t *testing.T) {
	io := newFakeIO()
	b := newTestBackend(t, io, &fakeHost{}, &fakeFactory{})

	b.HandleEvent(FocusEvent{Focused: false})
	if !io.focusLost {
		t.Error("focus-lost flag not set")
	}
	b.HandleEvent(FocusEvent{Focused: true})
	if io.focusLost {
		t.Error("focus-lost flag not cleared")
	}
}

func TestDeltaTimeAlwaysPositive(t *testing.T) {
	io := newFakeIO()
	host := &fakeHost{width: 800, height: 600, fbWidth: 800, fbHeight: 600, now: 5}
	b := newTestBackend(t, io, host, &fakeFactory{})

	// Clock did not advance since construction.
	b.NewFrame()
	if io.delta != float32(fallbackDelta) {
		t.Errorf("stalled clock: delta = %v, want %v", io.delta, float32(fallbackDelta))
	}

	host.now = 5.5
	b.NewFrame()
	if io.delta != 0.5 {
		t.Errorf("delta = %v, want 0.5", io.delta)
	}

	// Clock going backwards still yields a positive delta.
	host.now = 5.25
	b.NewFrame()
	if io.delta <= 0 {
		t.Errorf("backwards clock: delta = %v, want > 0", io.delta)
	}
}

func TestNewFrameMetrics(t *testing.T) {
	io := newFakeIO()
	host := &fakeHost{width: 100, height: 50, fbWidth: 200, fbHeight: 100}
	b := newTestBackend(t, io, host, &fakeFactory{})

	b.NewFrame()
	if io.displayW != 100 || io.displayH != 50 {
		t.Errorf("display size = (%v,%v), want (100,50)", io.displayW, io.displayH)
	}
	if scale := b.FramebufferScale(); scale != [2]float32{2, 2} {
		t.Errorf("framebuffer scale = %v, want [2 2]", scale)
	}
	if io.frames != 1 {
		t.Errorf("frames opened = %d, want 1", io.frames)
	}
}

func TestZeroSizeWindowKeepsScale(t *testing.T) {
	io := newFakeIO()
	host := &fakeHost{}
	b := newTestBackend(t, io, host, &fakeFactory{})

	b.NewFrame()
	if scale := b.FramebufferScale(); scale != [2]float32{1, 1} {
		t.Errorf("scale after zero-size frame = %v, want [1 1]", scale)
	}

	host.width, host.height = 100, 100
	host.fbWidth, host.fbHeight = 300, 300
	b.NewFrame()
	if scale := b.FramebufferScale(); scale != [2]float32{3, 3} {
		t.Errorf("scale = %v, want [3 3]", scale)
	}

	// Minimized again: previous scale survives, no NaN or Inf.
	host.width, host.height = 0, 0
	b.NewFrame()
	if scale := b.FramebufferScale(); scale != [2]float32{3, 3} {
		t.Errorf("scale after minimize = %v, want [3 3]", scale)
	}
}

func TestSyncCursorAppliesOnChangeOnly(t *testing.T) {
	io := newFakeIO()
	host := &fakeHost{}
	b := newTestBackend(t, io, host, &fakeFactory{})

	io.cursor = CursorHand
	b.SyncCursor()
	b.SyncCursor()
	b.SyncCursor()
	if len(host.applied) != 1 {
		t.Errorf("cursor applied %d times for an unchanged kind, want 1", len(host.applied))
	}
	if len(host.visible) != 1 || !host.visible[0] {
		t.Errorf("visibility calls = %v, want one show", host.visible)
	}

	io.cursor = CursorTextInput
	b.SyncCursor()
	if len(host.applied) != 2 {
		t.Errorf("cursor applied %d times after a change, want 2", len(host.applied))
	}
}

func TestSyncCursorHidesOnNone(t *testing.T) {
	io := newFakeIO()
	host := &fakeHost{}
	b := newTestBackend(t, io, host, &fakeFactory{})

	io.cursor = CursorArrow
	b.SyncCursor()

	io.cursor = CursorNone
	b.SyncCursor()
	b.SyncCursor()
	if len(host.visible) != 2 || host.visible[1] {
		t.Errorf("visibility calls = %v, want show then hide exactly once", host.visible)
	}
}

func TestSyncCursorFallsBackToArrow(t *testing.T) {
	io := newFakeIO()
	host := &fakeHost{}
	factory := &fakeFactory{unavailable: map[Cursor]bool{CursorResizeAll: true}}
	b := newTestBackend(t, io, host, factory)

	io.cursor = CursorResizeAll
	b.SyncCursor()
	if len(host.applied) != 1 {
		t.Fatalf("cursor applied %d times, want 1", len(host.applied))
	}
	if got := host.applied[0].(*fakeCursor); got.kind != CursorArrow {
		t.Errorf("applied cursor kind = %v, want arrow fallback", got.kind)
	}
}

func TestSyncCursorDisabled(t *testing.T) {
	io := newFakeIO()
	host := &fakeHost{}
	b := newTestBackend(t, io, host, &fakeFactory{})
	b.SetCursorChangesEnabled(false)

	io.cursor = CursorHand
	b.SyncCursor()
	if len(host.applied) != 0 || len(host.visible) != 0 {
		t.Error("cursor sync touched the host while disabled")
	}
}

func TestShutdownReleasesEveryHandleOnce(t *testing.T) {
	io := newFakeIO()
	factory := &fakeFactory{unavailable: map[Cursor]bool{CursorNotAllowed: true}}
	b := newTestBackend(t, io, &fakeHost{}, factory)

	b.Shutdown()
	b.Shutdown()
	if len(factory.created) != int(CursorCount)-1 {
		t.Fatalf("created %d handles, want %d", len(factory.created), int(CursorCount)-1)
	}
	for _, c := range factory.created {
		if c.destroyed != 1 {
			t.Errorf("cursor %v destroyed %d times, want exactly 1", c.kind, c.destroyed)
		}
	}
}

func TestNewFailsWithoutArrowCursor(t *testing.T) {
	factory := &fakeFactory{unavailable: map[Cursor]bool{CursorArrow: true}}
	if _, err := New(newFakeIO(), &fakeHost{}, factory); err == nil {
		t.Fatal("New succeeded without an arrow cursor")
	}
	// Handles created before the failure must still be released.
	for _, c := range factory.created {
		if c.destroyed != 1 {
			t.Errorf("cursor %v destroyed %d times after failed construction, want 1", c.kind, c.destroyed)
		}
	}
}
