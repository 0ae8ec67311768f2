package backend

import "fmt"

// Cursor identifies a logical cursor shape, independent of any native
// handle. The values match imgui's mouse-cursor enumeration so the
// platform layer can convert the GUI's requested cursor directly.
type Cursor int

const (
	CursorNone Cursor = iota - 1
	CursorArrow
	CursorTextInput
	CursorResizeAll
	CursorResizeNS
	CursorResizeEW
	CursorResizeNESW
	CursorResizeNWSE
	CursorHand
	CursorNotAllowed
	CursorCount
)

// cursorSet owns one native cursor handle per logical kind. Slots the
// platform could not fill stay nil and resolve to the arrow at lookup.
type cursorSet struct {
	handles   [CursorCount]CursorHandle
	destroyed bool
}

// newCursorSet bulk-creates the native cursors. Per-shape failures are
// expected and leave the slot empty; a missing arrow cursor is a platform
// assumption violation and fails construction.
func newCursorSet(factory CursorFactory) (*cursorSet, error) {
	s := &cursorSet{}
	for kind := CursorArrow; kind < CursorCount; kind++ {
		if handle, ok := factory.Create(kind); ok {
			s.handles[kind] = handle
		}
	}
	if s.handles[CursorArrow] == nil {
		s.destroy()
		return nil, fmt.Errorf("platform cannot create the arrow cursor")
	}
	return s, nil
}

// lookup returns the handle for kind, falling back to the arrow handle for
// kinds the platform has no cursor for. Never nil before destroy.
func (s *cursorSet) lookup(kind Cursor) CursorHandle {
	if kind > CursorNone && kind < CursorCount {
		if handle := s.handles[kind]; handle != nil {
			return handle
		}
	}
	return s.handles[CursorArrow]
}

// destroy releases every created handle exactly once. Safe to call again.
func (s *cursorSet) destroy() {
	if s.destroyed {
		return
	}
	s.destroyed = true
	for i, handle := range s.handles {
		if handle != nil {
			handle.Destroy()
			s.handles[i] = nil
		}
	}
}
