package camera

import (
	"fmt"
	"image"
	"image/draw"

	"gocv.io/x/gocv"
)

// Webcam wraps a gocv video capture device as a Grabber. Rotation is fixed
// per device and reported with every frame so consumers can normalize
// orientation.
type Webcam struct {
	vc       *gocv.VideoCapture
	mat      gocv.Mat
	deviceID int
	rotation int
}

// OpenWebcam opens the capture device with the given index. rotation is the
// sensor orientation in degrees (0, 90, 180, 270).
func OpenWebcam(deviceID, rotation int) (*Webcam, error) {
	vc, err := gocv.OpenVideoCapture(deviceID)
	if err != nil {
		return nil, fmt.Errorf("open video capture %d: %w", deviceID, err)
	}
	return &Webcam{vc: vc, mat: gocv.NewMat(), deviceID: deviceID, rotation: rotation}, nil
}

// Grab reads one frame and returns it as RGBA together with the device
// rotation. A read miss returns an error; the frame loop skips and retries.
func (w *Webcam) Grab() (*image.RGBA, int, error) {
	if w == nil || w.vc == nil {
		return nil, 0, fmt.Errorf("webcam not open")
	}
	if ok := w.vc.Read(&w.mat); !ok {
		return nil, 0, fmt.Errorf("read device %d failed", w.deviceID)
	}
	if w.mat.Empty() {
		return nil, 0, fmt.Errorf("empty frame from device %d", w.deviceID)
	}
	img, err := w.mat.ToImage()
	if err != nil {
		return nil, 0, fmt.Errorf("convert frame: %w", err)
	}
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba, w.rotation, nil
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out, w.rotation, nil
}

// Close releases the capture device and the reusable mat.
func (w *Webcam) Close() error {
	if w == nil {
		return nil
	}
	if err := w.mat.Close(); err != nil {
		return err
	}
	if w.vc != nil {
		return w.vc.Close()
	}
	return nil
}
