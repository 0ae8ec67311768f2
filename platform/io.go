package platform

import (
	"math"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	imgui "github.com/mmp/imgui-go/v4"

	"github.com/parchview/imgui-glfw/backend"
)

// imgui's key-state array size; GLFW key codes fit well inside it.
const keyStateSize = 512

// guiIO adapts imgui-go's IO to the backend's input surface.
type guiIO struct {
	io imgui.IO
}

func (g *guiIO) SetMouseButton(slot int, down bool) {
	g.io.SetMouseButtonDown(slot, down)
}

func (g *guiIO) SetMousePos(x, y float32) {
	g.io.SetMousePosition(imgui.Vec2{X: x, Y: y})
}

func (g *guiIO) AddMouseWheel(dx, dy float32) {
	g.io.AddMouseWheelDelta(dx, dy)
}

func (g *guiIO) AddInputCharacter(char rune) {
	g.io.AddInputCharacters(string(char))
}

func (g *guiIO) SetKey(key int, down bool) {
	if key < 0 || key >= keyStateSize {
		return
	}
	if down {
		g.io.KeyPress(key)
	} else {
		g.io.KeyRelease(key)
	}
	g.applyModifiers()
}

// SetKeyModifiers is satisfied from the tracked key state rather than the
// event's modifier bits: GLFW's bits are not reliable across systems, so
// the flags are re-derived from the left/right modifier keys instead.
func (g *guiIO) SetKeyModifiers(ctrl, alt, shift, super bool) {
	g.applyModifiers()
}

func (g *guiIO) applyModifiers() {
	g.io.KeyCtrl(int(glfw.KeyLeftControl), int(glfw.KeyRightControl))
	g.io.KeyShift(int(glfw.KeyLeftShift), int(glfw.KeyRightShift))
	g.io.KeyAlt(int(glfw.KeyLeftAlt), int(glfw.KeyRightAlt))
	g.io.KeySuper(int(glfw.KeyLeftSuper), int(glfw.KeyRightSuper))
}

// SetFocusLost parks the pointer offscreen when focus goes away, so hover
// state does not linger on an unfocused window. imgui-go exposes no
// dedicated focus entry point.
func (g *guiIO) SetFocusLost(lost bool) {
	if lost {
		g.io.SetMousePosition(imgui.Vec2{X: -math.MaxFloat32, Y: -math.MaxFloat32})
	}
}

func (g *guiIO) WantCaptureMouse() bool {
	return g.io.WantCaptureMouse()
}

func (g *guiIO) WantCaptureKeyboard() bool {
	return g.io.WantCaptureKeyboard()
}

func (g *guiIO) SetDeltaTime(seconds float32) {
	g.io.SetDeltaTime(seconds)
}

func (g *guiIO) SetDisplaySize(w, h float32) {
	g.io.SetDisplaySize(imgui.Vec2{X: w, Y: h})
}

func (g *guiIO) NewFrame() {
	imgui.NewFrame()
}

func (g *guiIO) MouseCursor() backend.Cursor {
	return backend.Cursor(imgui.MouseCursor())
}

// setKeyMapping tells imgui which key-state indices its named keys live at.
// The indices are raw GLFW key codes, matching what SetKey records.
func setKeyMapping(io imgui.IO) {
	io.KeyMap(imgui.KeyTab, int(glfw.KeyTab))
	io.KeyMap(imgui.KeyLeftArrow, int(glfw.KeyLeft))
	io.KeyMap(imgui.KeyRightArrow, int(glfw.KeyRight))
	io.KeyMap(imgui.KeyUpArrow, int(glfw.KeyUp))
	io.KeyMap(imgui.KeyDownArrow, int(glfw.KeyDown))
	io.KeyMap(imgui.KeyPageUp, int(glfw.KeyPageUp))
	io.KeyMap(imgui.KeyPageDown, int(glfw.KeyPageDown))
	io.KeyMap(imgui.KeyHome, int(glfw.KeyHome))
	io.KeyMap(imgui.KeyEnd, int(glfw.KeyEnd))
	io.KeyMap(imgui.KeyInsert, int(glfw.KeyInsert))
	io.KeyMap(imgui.KeyDelete, int(glfw.KeyDelete))
	io.KeyMap(imgui.KeyBackspace, int(glfw.KeyBackspace))
	io.KeyMap(imgui.KeySpace, int(glfw.KeySpace))
	io.KeyMap(imgui.KeyEnter, int(glfw.KeyEnter))
	io.KeyMap(imgui.KeyEscape, int(glfw.KeyEscape))
	io.KeyMap(imgui.KeyA, int(glfw.KeyA))
	io.KeyMap(imgui.KeyC, int(glfw.KeyC))
	io.KeyMap(imgui.KeyV, int(glfw.KeyV))
	io.KeyMap(imgui.KeyX, int(glfw.KeyX))
	io.KeyMap(imgui.KeyY, int(glfw.KeyY))
	io.KeyMap(imgui.KeyZ, int(glfw.KeyZ))
}
