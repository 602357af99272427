package images

import (
	"image"
	"image/color"
	"testing"
)

var red = color.RGBA{R: 255, A: 255}

func TestFillCircle_CenterAndRadius(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 21, 21))
	FillCircle(dst, 10, 10, 4, red)

	if c := dst.RGBAAt(10, 10); c != red {
		t.Fatalf("center not filled: %v", c)
	}
	if c := dst.RGBAAt(10, 6); c != red {
		t.Fatalf("top of circle not filled: %v", c)
	}
	if c := dst.RGBAAt(10, 5); c == red {
		t.Fatalf("pixel outside radius filled")
	}
	if c := dst.RGBAAt(14, 14); c == red {
		t.Fatalf("corner inside bounding box but outside circle filled")
	}
}

func TestFillCircle_ClipsAtEdges(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	// Off-screen centers are legitimate (projected points are not clamped);
	// only the visible arc is drawn and nothing panics.
	FillCircle(dst, -2, 5, 4, red)
	FillCircle(dst, 5, 12, 4, red)
	if c := dst.RGBAAt(1, 5); c != red {
		t.Fatalf("visible part of off-screen circle missing: %v", c)
	}
	if c := dst.RGBAAt(5, 9); c != red {
		t.Fatalf("visible part of bottom circle missing: %v", c)
	}
}

func TestDrawSegment(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	DrawSegment(dst, 0, 0, 9, 9, red)
	for i := 0; i < 10; i++ {
		if c := dst.RGBAAt(i, i); c != red {
			t.Fatalf("diagonal pixel (%d,%d) not drawn: %v", i, i, c)
		}
	}
	// Endpoints partly off-screen must clip, not panic.
	DrawSegment(dst, -5, 3, 15, 3, red)
	if c := dst.RGBAAt(0, 3); c != red {
		t.Fatalf("clipped horizontal segment missing")
	}
}
