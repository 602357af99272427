package overlay

import (
	"sync/atomic"
)

// Point is a 2D coordinate. Landmarks passed to the projector are in frame
// pixel space; points returned by Project are in viewport pixel space.
type Point struct {
	X float64
	Y float64
}

// FitTransform maps frame coordinates onto a viewport under a center-crop
// fill: the frame is scaled uniformly so it fully covers the viewport and the
// overflow on one axis is cropped symmetrically.
type FitTransform struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

// Apply maps a frame-space point to viewport space (no mirror).
func (t FitTransform) Apply(p Point) Point {
	return Point{X: p.X*t.Scale - t.OffsetX, Y: p.Y*t.Scale - t.OffsetY}
}

// ComputeFit derives the center-crop transform for a frame of frameW x frameH
// rendered into a viewport of viewW x viewH. Returns ok=false when any
// dimension is not positive (not ready yet).
//
// When the viewport is relatively wider than the frame the frame is cropped
// vertically; otherwise (including equal aspects) it is cropped horizontally.
func ComputeFit(frameW, frameH, viewW, viewH float64) (FitTransform, bool) {
	if frameW <= 0 || frameH <= 0 || viewW <= 0 || viewH <= 0 {
		return FitTransform{}, false
	}
	viewAspect := viewW / viewH
	frameAspect := frameW / frameH
	if viewAspect > frameAspect {
		scale := viewW / frameW
		return FitTransform{
			Scale:   scale,
			OffsetY: (viewW/frameAspect - viewH) / 2,
		}, true
	}
	scale := viewH / frameH
	return FitTransform{
		Scale:   scale,
		OffsetX: (viewH*frameAspect - viewW) / 2,
	}, true
}

// poseSnapshot is the immutable (frame size, landmark set) pair published by
// the detection side. Replaced wholesale, never mutated in place.
type poseSnapshot struct {
	frameW    float64
	frameH    float64
	landmarks []Point
}

type viewportSize struct {
	w float64
	h float64
}

// Projector maps detector-space landmarks into viewport-space circle
// positions under a center-crop fit, with an optional horizontal mirror for
// front-camera selfie view.
//
// Writers (the detection completion callback) call UpdateFrameSize and
// SetLandmarks; the render side calls UpdateViewportSize and Project. State
// is published as immutable snapshots via atomic pointers, so Project never
// observes a half-written update and no locks are needed. The detection side
// is expected to be a single writer.
type Projector struct {
	mirror bool
	pose   atomic.Pointer[poseSnapshot]
	view   atomic.Pointer[viewportSize]
}

// NewProjector returns a projector. mirror enables the horizontal flip
// applied to projected X coordinates (front camera).
func NewProjector(mirror bool) *Projector {
	return &Projector{mirror: mirror}
}

// UpdateFrameSize records the orientation-normalized dimensions of the frame
// the current landmark set was detected in. Call once per analyzed frame.
func (p *Projector) UpdateFrameSize(w, h float64) {
	if p == nil {
		return
	}
	next := &poseSnapshot{frameW: w, frameH: h}
	if prev := p.pose.Load(); prev != nil {
		next.landmarks = prev.landmarks
	}
	p.pose.Store(next)
}

// SetLandmarks replaces the landmark set wholesale. The slice is copied so
// the caller may reuse its backing array.
func (p *Projector) SetLandmarks(points []Point) {
	if p == nil {
		return
	}
	next := &poseSnapshot{}
	if prev := p.pose.Load(); prev != nil {
		next.frameW, next.frameH = prev.frameW, prev.frameH
	}
	if len(points) > 0 {
		next.landmarks = make([]Point, len(points))
		copy(next.landmarks, points)
	}
	p.pose.Store(next)
}

// UpdateViewportSize records the rendering surface dimensions. Call whenever
// the surface reports a size.
func (p *Projector) UpdateViewportSize(w, h float64) {
	if p == nil {
		return
	}
	p.view.Store(&viewportSize{w: w, h: h})
}

// Fit returns the current center-crop transform, or ok=false while either
// the frame or the viewport size is still unknown.
func (p *Projector) Fit() (FitTransform, bool) {
	if p == nil {
		return FitTransform{}, false
	}
	pose := p.pose.Load()
	view := p.view.Load()
	if pose == nil || view == nil {
		return FitTransform{}, false
	}
	return ComputeFit(pose.frameW, pose.frameH, view.w, view.h)
}

// Project maps the current landmark set into viewport coordinates, in input
// order, without clamping: points may fall outside the viewport and are
// returned as-is. Returns nil while frame or viewport dimensions are unknown
// (the render pass simply draws nothing and retries next tick).
func (p *Projector) Project() []Point {
	if p == nil {
		return nil
	}
	pose := p.pose.Load()
	view := p.view.Load()
	if pose == nil || view == nil {
		return nil
	}
	tf, ok := ComputeFit(pose.frameW, pose.frameH, view.w, view.h)
	if !ok {
		return nil
	}
	out := make([]Point, len(pose.landmarks))
	for i, lm := range pose.landmarks {
		pt := tf.Apply(lm)
		if p.mirror {
			pt.X = view.w - pt.X
		}
		out[i] = pt
	}
	return out
}
