package images

import (
	"image"
	"image/color"
)

// FillCircle draws a filled circle of the given radius centered at (cx, cy),
// clipped to the image bounds. Centers outside the image are fine; only the
// visible part is drawn.
func FillCircle(dst *image.RGBA, cx, cy, radius int, c color.RGBA) {
	if dst == nil || radius < 1 {
		return
	}
	b := dst.Bounds()
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		y := cy + dy
		if y < b.Min.Y || y >= b.Max.Y {
			continue
		}
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > r2 {
				continue
			}
			x := cx + dx
			if x < b.Min.X || x >= b.Max.X {
				continue
			}
			dst.SetRGBA(x, y, c)
		}
	}
}

// DrawSegment draws a 1px line from (x0, y0) to (x1, y1), clipped to bounds.
func DrawSegment(dst *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	if dst == nil {
		return
	}
	b := dst.Bounds()
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		if x0 >= b.Min.X && x0 < b.Max.X && y0 >= b.Min.Y && y0 < b.Max.Y {
			dst.SetRGBA(x0, y0, c)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
