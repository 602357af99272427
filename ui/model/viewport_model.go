package model

import (
	"sync/atomic"
)

// ViewportModel holds the current size of the preview drawing surface. The
// view pushes a new size whenever the widget is resized; the render tick and
// the projector read it. Published as one atomic value so readers never see
// a half-updated pair. The zero value means the surface has not reported yet.
type ViewportModel struct {
	size atomic.Pointer[viewportDims]
}

type viewportDims struct {
	w int
	h int
}

// Set records the surface dimensions. Non-positive values are ignored so a
// collapsing widget cannot wipe a previously known size.
func (m *ViewportModel) Set(w, h int) {
	if m == nil || w <= 0 || h <= 0 {
		return
	}
	m.size.Store(&viewportDims{w: w, h: h})
}

// Size returns the current dimensions; ok is false until the surface has
// reported a size at least once.
func (m *ViewportModel) Size() (w, h int, ok bool) {
	if m == nil {
		return 0, 0, false
	}
	d := m.size.Load()
	if d == nil {
		return 0, 0, false
	}
	return d.w, d.h, true
}
