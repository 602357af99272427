package overlay

import (
	"math"
	"sync"
	"testing"
)

const eps = 1e-9

func approx(a, b float64) bool { return math.Abs(a-b) < eps }

func TestComputeFit_BranchSelection(t *testing.T) {
	// Viewport relatively wider than frame: crop vertically.
	tf, ok := ComputeFit(480, 640, 1920, 1080)
	if !ok {
		t.Fatalf("expected ready")
	}
	if !approx(tf.Scale, 1920.0/480) || !approx(tf.OffsetX, 0) || tf.OffsetY == 0 {
		t.Fatalf("vertical-crop branch wrong: %+v", tf)
	}

	// Frame relatively wider than viewport: crop horizontally.
	tf, ok = ComputeFit(640, 480, 1080, 1080)
	if !ok {
		t.Fatalf("expected ready")
	}
	if !approx(tf.Scale, 1080.0/480) || !approx(tf.OffsetY, 0) || !approx(tf.OffsetX, 180) {
		t.Fatalf("horizontal-crop branch wrong: %+v", tf)
	}

	// Equal aspects tie-break to the horizontal-crop branch (strict > compare),
	// where both offsets degenerate to zero.
	tf, ok = ComputeFit(640, 480, 1280, 960)
	if !ok {
		t.Fatalf("expected ready")
	}
	if !approx(tf.Scale, 960.0/480) || !approx(tf.OffsetX, 0) || !approx(tf.OffsetY, 0) {
		t.Fatalf("equal-aspect fit wrong: %+v", tf)
	}
}

func TestComputeFit_NotReady(t *testing.T) {
	for _, dims := range [][4]float64{
		{0, 640, 1080, 1920},
		{480, 0, 1080, 1920},
		{480, 640, 0, 1920},
		{480, 640, 1080, 0},
	} {
		if _, ok := ComputeFit(dims[0], dims[1], dims[2], dims[3]); ok {
			t.Fatalf("expected not ready for dims %v", dims)
		}
	}
}

// Portrait frame into a taller portrait viewport: frame 480x640 in 1080x1920.
// viewAspect 0.5625 < frameAspect 0.75, so the horizontal-crop branch applies:
// scale = 1920/640 = 3, offsetX = (1920*0.75 - 1080)/2 = 180. A landmark at
// (0,0) mirrors to screenX = 1080 - (0 - 180) = 1260, off the right edge.
func TestProject_MirroredOrigin(t *testing.T) {
	p := NewProjector(true)
	p.UpdateFrameSize(480, 640)
	p.UpdateViewportSize(1080, 1920)
	p.SetLandmarks([]Point{{X: 0, Y: 0}})

	got := p.Project()
	if len(got) != 1 {
		t.Fatalf("want 1 point, got %d", len(got))
	}
	if !approx(got[0].X, 1260) || !approx(got[0].Y, 0) {
		t.Fatalf("want (1260,0), got (%v,%v)", got[0].X, got[0].Y)
	}
}

// A landmark at the frame center always lands on the viewport centerline of
// the uncropped axis; under mirror the X center is preserved too.
func TestProject_CenterMapsToCenter(t *testing.T) {
	cases := [][4]float64{
		{480, 640, 1920, 1080}, // vertical crop
		{640, 480, 1080, 1080}, // horizontal crop
		{640, 480, 1280, 960},  // equal aspect
	}
	for _, c := range cases {
		p := NewProjector(true)
		p.UpdateFrameSize(c[0], c[1])
		p.UpdateViewportSize(c[2], c[3])
		p.SetLandmarks([]Point{{X: c[0] / 2, Y: c[1] / 2}})
		got := p.Project()
		if len(got) != 1 {
			t.Fatalf("dims %v: want 1 point, got %d", c, len(got))
		}
		if !approx(got[0].X, c[2]/2) || !approx(got[0].Y, c[3]/2) {
			t.Fatalf("dims %v: center projected to (%v,%v), want (%v,%v)",
				c, got[0].X, got[0].Y, c[2]/2, c[3]/2)
		}
	}
}

func TestProject_MirrorDisabled(t *testing.T) {
	p := NewProjector(false)
	p.UpdateFrameSize(640, 480)
	p.UpdateViewportSize(1080, 1080)
	p.SetLandmarks([]Point{{X: 0, Y: 0}})

	got := p.Project()
	if len(got) != 1 {
		t.Fatalf("want 1 point, got %d", len(got))
	}
	// scale 2.25, offsetX 180: unmirrored x = 0*2.25 - 180 = -180.
	if !approx(got[0].X, -180) || !approx(got[0].Y, 0) {
		t.Fatalf("want (-180,0), got (%v,%v)", got[0].X, got[0].Y)
	}
}

func TestProject_NotReadyReturnsNil(t *testing.T) {
	p := NewProjector(true)
	p.SetLandmarks([]Point{{X: 10, Y: 10}})
	if got := p.Project(); got != nil {
		t.Fatalf("no sizes set: want nil, got %v", got)
	}

	p.UpdateFrameSize(480, 640)
	if got := p.Project(); got != nil {
		t.Fatalf("viewport never set: want nil, got %v", got)
	}

	p.UpdateViewportSize(0, 1920)
	if got := p.Project(); got != nil {
		t.Fatalf("zero viewport width: want nil, got %v", got)
	}

	p.UpdateViewportSize(1080, 1920)
	if got := p.Project(); len(got) != 1 {
		t.Fatalf("both sizes known: want 1 point, got %v", got)
	}
}

func TestProject_Idempotent(t *testing.T) {
	p := NewProjector(true)
	p.UpdateFrameSize(480, 640)
	p.UpdateViewportSize(1080, 1920)
	p.SetLandmarks([]Point{{X: 100, Y: 200}, {X: 300, Y: 400}})

	first := p.Project()
	second := p.Project()
	if len(first) != len(second) {
		t.Fatalf("length changed between calls: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("point %d changed: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestProject_OrderPreservedNoClamp(t *testing.T) {
	p := NewProjector(true)
	p.UpdateFrameSize(640, 480)
	p.UpdateViewportSize(1080, 1080)
	// Second point is far outside the frame and must come back unclamped,
	// in input order.
	p.SetLandmarks([]Point{{X: 320, Y: 240}, {X: 10000, Y: -500}})

	got := p.Project()
	if len(got) != 2 {
		t.Fatalf("want 2 points, got %d", len(got))
	}
	if !approx(got[0].X, 540) || !approx(got[0].Y, 540) {
		t.Fatalf("first point: got (%v,%v), want (540,540)", got[0].X, got[0].Y)
	}
	// 1080 - (10000*2.25 - 180) = -21240; -500*2.25 = -1125.
	if !approx(got[1].X, -21240) || !approx(got[1].Y, -1125) {
		t.Fatalf("off-screen point clamped or reordered: got (%v,%v)", got[1].X, got[1].Y)
	}
}

func TestSetLandmarks_CopiesInput(t *testing.T) {
	p := NewProjector(false)
	p.UpdateFrameSize(100, 100)
	p.UpdateViewportSize(100, 100)
	pts := []Point{{X: 10, Y: 10}}
	p.SetLandmarks(pts)
	pts[0].X = 99

	got := p.Project()
	if len(got) != 1 || !approx(got[0].X, 10) {
		t.Fatalf("projector aliased caller slice: %v", got)
	}
}

// Project may race with snapshot replacement from the detection callback; it
// must always observe a fully-formed (frame size, landmarks) pair.
func TestProjector_ConcurrentReadWrite(t *testing.T) {
	p := NewProjector(true)
	p.UpdateViewportSize(1080, 1920)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			p.UpdateFrameSize(480, 640)
			p.SetLandmarks([]Point{{X: float64(i), Y: float64(i)}, {X: 1, Y: 2}})
		}
	}()
	for i := 0; i < 1000; i++ {
		pts := p.Project()
		if len(pts) != 0 && len(pts) != 2 {
			t.Fatalf("observed torn snapshot: %d points", len(pts))
		}
	}
	wg.Wait()
}
