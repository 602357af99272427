package images

import (
	"bytes"
	"image"
	"image/png"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/soocke/pose-preview-go/domain/overlay"
)

// EncodePNG encodes an image to PNG bytes. Errors are ignored and may return an empty slice.
func EncodePNG(img image.Image) []byte {
	if img == nil {
		return nil
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

// ScaleToCover scales src uniformly so it fully covers a w x h viewport and
// crops the overflow symmetrically (center-crop fill). The placement matches
// overlay.ComputeFit, so points projected through the same transform line up
// with the returned pixels.
func ScaleToCover(src image.Image, w, h int) *image.RGBA {
	if src == nil || w < 1 || h < 1 {
		return nil
	}
	b := src.Bounds()
	tf, ok := overlay.ComputeFit(float64(b.Dx()), float64(b.Dy()), float64(w), float64(h))
	if !ok {
		return nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	// The scaled frame spans (frameW*scale, frameH*scale) shifted left/up by
	// the crop offsets; the draw op clips to the viewport.
	x0 := int(math.Round(-tf.OffsetX))
	y0 := int(math.Round(-tf.OffsetY))
	x1 := x0 + int(math.Round(float64(b.Dx())*tf.Scale))
	y1 := y0 + int(math.Round(float64(b.Dy())*tf.Scale))
	xdraw.ApproxBiLinear.Scale(dst, image.Rect(x0, y0, x1, y1), src, b, xdraw.Src, nil)
	return dst
}

// Mirror returns a horizontally flipped copy of src (selfie view).
func Mirror(src *image.RGBA) *image.RGBA {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		base := src.PixOffset(b.Min.X, b.Min.Y+y)
		srcRow := src.Pix[base : base+w*4]
		dstRow := dst.Pix[y*dst.Stride : y*dst.Stride+w*4]
		for x := 0; x < w; x++ {
			copy(dstRow[x*4:x*4+4], srcRow[(w-1-x)*4:(w-1-x)*4+4])
		}
	}
	return dst
}
