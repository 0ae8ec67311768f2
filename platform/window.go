package platform

import (
	glfw "github.com/go-gl/glfw/v3.3/glfw"

	"github.com/parchview/imgui-glfw/backend"
)

// hostWindow exposes the GLFW window to the backend.
type hostWindow struct {
	window *glfw.Window
}

func (w *hostWindow) Size() (int, int) {
	return w.window.GetSize()
}

func (w *hostWindow) FramebufferSize() (int, int) {
	return w.window.GetFramebufferSize()
}

func (w *hostWindow) Time() float64 {
	return glfw.GetTime()
}

func (w *hostWindow) ApplyCursor(handle backend.CursorHandle) {
	if c, ok := handle.(*glfwCursor); ok {
		w.window.SetCursor(c.cursor)
	}
}

func (w *hostWindow) SetCursorVisible(visible bool) {
	mode := glfw.CursorHidden
	if visible {
		mode = glfw.CursorNormal
	}
	w.window.SetInputMode(glfw.CursorMode, mode)
}

// glfwCursor owns one native cursor handle.
type glfwCursor struct {
	cursor *glfw.Cursor
}

func (c *glfwCursor) Destroy() {
	c.cursor.Destroy()
}

// standardShapes maps logical kinds to GLFW 3.3 standard shapes. Kinds
// without an entry (ResizeAll, ResizeNESW, ResizeNWSE, NotAllowed) have no
// standard cursor on this GLFW version; their slots stay empty and resolve
// to the arrow at lookup.
var standardShapes = map[backend.Cursor]glfw.StandardCursor{
	backend.CursorArrow:     glfw.ArrowCursor,
	backend.CursorTextInput: glfw.IBeamCursor,
	backend.CursorResizeNS:  glfw.VResizeCursor,
	backend.CursorResizeEW:  glfw.HResizeCursor,
	backend.CursorHand:      glfw.HandCursor,
}

type cursorFactory struct{}

// Create builds the native cursor for kind. Creation is allowed to fail
// per shape: GLFW reports unsupported shapes through its error callback,
// which the Go binding raises as a panic, so the bulk create absorbs it
// here and records the shape as unavailable.
func (cursorFactory) Create(kind backend.Cursor) (handle backend.CursorHandle, ok bool) {
	shape, supported := standardShapes[kind]
	if !supported {
		return nil, false
	}
	defer func() {
		if recover() != nil {
			handle, ok = nil, false
		}
	}()
	cursor := glfw.CreateStandardCursor(shape)
	if cursor == nil {
		return nil, false
	}
	return &glfwCursor{cursor: cursor}, true
}
