package view

import (
	"image"
	"image/color"

	"github.com/soocke/pose-preview-go/config"
	"github.com/soocke/pose-preview-go/domain/camera"
	"github.com/soocke/pose-preview-go/domain/overlay"
	"github.com/soocke/pose-preview-go/domain/pose"
	"github.com/soocke/pose-preview-go/ui/images"
	"github.com/soocke/pose-preview-go/ui/model"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// OverlayPreview renders the camera frame with landmark circles (and limb
// lines) drawn on top. It owns one LabelWidget whose image is replaced each
// render pass.
type OverlayPreview interface {
	RenderOverlay(snap camera.FrameSnapshot, points []overlay.Point)
	Reset()
}

type overlayPreview struct {
	label     *LabelWidget
	prevPhoto *Img // last Tk photo image instance, disposed before replacement
	viewport  *model.ViewportModel
	skeleton  [][2]int
	mirror    bool
	radius    int
	dotColor  color.RGBA
	lineColor color.RGBA
}

// NewOverlayPreview creates the preview label, grids it at the given row and
// publishes the surface size into the viewport model.
func NewOverlayPreview(row int, cfg *config.Config, viewport *model.ViewportModel, skeleton [][2]int) OverlayPreview {
	w, h := cfg.PreviewWidth, cfg.PreviewHeight
	placeholder := image.NewRGBA(image.Rect(0, 0, w, h))
	photo := NewPhoto(Data(images.EncodePNG(placeholder)))
	label := Label(Image(photo), Borderwidth(1), Relief("sunken"))
	Grid(label, Row(row), Column(0), Columnspan(5), Sticky("we"), Padx("0.4m"), Pady("0.4m"))

	viewport.Set(w, h)

	dot := parseHexColor(cfg.CircleColor, color.RGBA{R: 16, G: 185, B: 129, A: 255})
	if !cfg.DrawSkeleton {
		skeleton = nil
	}
	return &overlayPreview{
		label:     label,
		prevPhoto: photo,
		viewport:  viewport,
		skeleton:  skeleton,
		mirror:    cfg.Mirror,
		radius:    cfg.CircleRadius,
		dotColor:  dot,
		lineColor: color.RGBA{R: dot.R / 2, G: dot.G / 2, B: dot.B / 2, A: 255},
	}
}

// RenderOverlay composites the frame and the projected points. Points are in
// viewport space already (mirror included); the frame gets the same
// center-crop and mirror so circles land on the joints they belong to.
func (v *overlayPreview) RenderOverlay(snap camera.FrameSnapshot, points []overlay.Point) {
	if v == nil || v.label == nil || snap.Image == nil {
		return
	}
	w, h, ok := v.viewport.Size()
	if !ok {
		return
	}

	upright := images.Rotate(snap.Image, snap.Rotation)
	canvas := images.ScaleToCover(upright, w, h)
	if canvas == nil {
		return
	}
	if v.mirror {
		canvas = images.Mirror(canvas)
	}

	v.drawSkeleton(canvas, points)
	for _, pt := range points {
		images.FillCircle(canvas, int(pt.X+0.5), int(pt.Y+0.5), v.radius, v.dotColor)
	}

	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	photo := NewPhoto(Data(images.EncodePNG(canvas)))
	v.prevPhoto = photo
	v.label.Configure(Image(photo))
}

// drawSkeleton connects keypoint pairs with limb lines, once per full
// 17-point group (multi-pose results arrive as concatenated groups).
func (v *overlayPreview) drawSkeleton(canvas *image.RGBA, points []overlay.Point) {
	if len(v.skeleton) == 0 || len(points) == 0 || len(points)%pose.NumKeypoints != 0 {
		return
	}
	for base := 0; base < len(points); base += pose.NumKeypoints {
		for _, pair := range v.skeleton {
			a := points[base+pair[0]]
			b := points[base+pair[1]]
			images.DrawSegment(canvas, int(a.X+0.5), int(a.Y+0.5), int(b.X+0.5), int(b.Y+0.5), v.lineColor)
		}
	}
}

// Reset blanks the preview.
func (v *overlayPreview) Reset() {
	if v == nil || v.label == nil {
		return
	}
	w, h, ok := v.viewport.Size()
	if !ok {
		w, h = 400, 300
	}
	placeholder := image.NewRGBA(image.Rect(0, 0, w, h))
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	v.prevPhoto = NewPhoto(Data(images.EncodePNG(placeholder)))
	v.label.Configure(Image(v.prevPhoto))
}

// parseHexColor parses "#rrggbb"; malformed input yields the fallback.
func parseHexColor(s string, fallback color.RGBA) color.RGBA {
	if len(s) != 7 || s[0] != '#' {
		return fallback
	}
	var out color.RGBA
	out.A = 255
	for i, dst := range []*uint8{&out.R, &out.G, &out.B} {
		hi, ok1 := hexNibble(s[1+i*2])
		lo, ok2 := hexNibble(s[2+i*2])
		if !ok1 || !ok2 {
			return fallback
		}
		*dst = hi<<4 | lo
	}
	return out
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
