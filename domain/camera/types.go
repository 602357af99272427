package camera

import (
	"image"
	"time"
)

// FrameSnapshot carries the latest captured frame and metadata. Rotation is
// the frame's orientation relative to upright, in degrees (0, 90, 180, 270).
type FrameSnapshot struct {
	Image      *image.RGBA
	Rotation   int
	CapturedAt time.Time
	Sequence   uint64
}

// NormalizedSize returns the snapshot's dimensions swapped when the frame is
// rotated 90 or 270 degrees, so width/height always describe the upright
// orientation.
func (s FrameSnapshot) NormalizedSize() (w, h int) {
	if s.Image == nil {
		return 0, 0
	}
	b := s.Image.Bounds()
	w, h = b.Dx(), b.Dy()
	if s.Rotation == 90 || s.Rotation == 270 {
		w, h = h, w
	}
	return w, h
}

// Stats summarises frame loop behaviour for instrumentation.
type Stats struct {
	Captures         uint64
	Skipped          uint64
	AvgCapture       time.Duration
	AvgCaptureMicros float64
	LastCapture      time.Time
	LatestFrameAge   time.Duration
	Sequence         uint64
}

// Grabber produces one frame per call together with its rotation. It is the
// injection point for concrete sources (webcam, screen region, test fakes).
type Grabber func() (*image.RGBA, int, error)

// FrameSource provides read-only access to captured frames.
type FrameSource interface {
	LatestFrame() FrameSnapshot
	Running() bool
}

// ServiceContract exposes lifecycle control for frame services.
type ServiceContract interface {
	Start()
	Stop()
	Running() bool
}
