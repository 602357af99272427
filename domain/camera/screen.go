package camera

import (
	"image"

	"github.com/vova616/screenshot"
)

// ScreenGrabber returns a Grabber that captures the whole screen. Useful as
// a development frame source on machines without a camera; screen frames are
// always upright (rotation 0).
func ScreenGrabber() Grabber {
	return func() (*image.RGBA, int, error) {
		img, err := screenshot.CaptureScreen()
		if err != nil {
			return nil, 0, err
		}
		return img, 0, nil
	}
}

// ScreenRegionGrabber returns a Grabber capturing a fixed screen rectangle.
func ScreenRegionGrabber(rect image.Rectangle) Grabber {
	return func() (*image.RGBA, int, error) {
		img, err := screenshot.CaptureRect(rect)
		if err != nil {
			return nil, 0, err
		}
		return img, 0, nil
	}
}
