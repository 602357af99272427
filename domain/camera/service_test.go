package camera

import (
	"errors"
	"image"
	"testing"
	"time"
)

func TestNormalizedSize(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 640, 480))
	cases := []struct {
		rotation int
		wantW    int
		wantH    int
	}{
		{0, 640, 480},
		{90, 480, 640},
		{180, 640, 480},
		{270, 480, 640},
	}
	for _, c := range cases {
		snap := FrameSnapshot{Image: img, Rotation: c.rotation}
		w, h := snap.NormalizedSize()
		if w != c.wantW || h != c.wantH {
			t.Fatalf("rotation %d: got %dx%d, want %dx%d", c.rotation, w, h, c.wantW, c.wantH)
		}
	}

	var empty FrameSnapshot
	if w, h := empty.NormalizedSize(); w != 0 || h != 0 {
		t.Fatalf("nil image: got %dx%d, want 0x0", w, h)
	}
}

func TestService_PublishesLatestFrame(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	grab := func() (*image.RGBA, int, error) { return img, 90, nil }
	svc := NewService(nil, grab, time.Millisecond)

	svc.Start()
	defer svc.Stop()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		snap := svc.LatestFrame()
		if snap.Sequence >= 2 {
			if snap.Image == nil || snap.Rotation != 90 {
				t.Fatalf("bad snapshot: %+v", snap)
			}
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("no frames published before deadline: stats=%+v", svc.Stats())
}

func TestService_GrabErrorCountsSkipped(t *testing.T) {
	grab := func() (*image.RGBA, int, error) { return nil, 0, errors.New("device gone") }
	svc := NewService(nil, grab, time.Millisecond)

	svc.Start()
	defer svc.Stop()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if svc.Stats().Skipped >= 2 {
			if snap := svc.LatestFrame(); snap.Image != nil {
				t.Fatalf("frame published despite grab errors: %+v", snap)
			}
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("skips not recorded: stats=%+v", svc.Stats())
}

func TestService_StartStopIdempotent(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	svc := NewService(nil, func() (*image.RGBA, int, error) { return img, 0, nil }, time.Millisecond)

	svc.Start()
	svc.Start()
	if !svc.Running() {
		t.Fatalf("service not running after Start")
	}
	svc.Stop()
	svc.Stop()
	if svc.Running() {
		t.Fatalf("service still running after Stop")
	}
}
