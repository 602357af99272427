package model

import "testing"

func TestViewportModel_ZeroValueNotReady(t *testing.T) {
	var m ViewportModel
	if _, _, ok := m.Size(); ok {
		t.Fatalf("zero value should not report a size")
	}
}

func TestViewportModel_SetAndRead(t *testing.T) {
	var m ViewportModel
	m.Set(400, 225)
	w, h, ok := m.Size()
	if !ok || w != 400 || h != 225 {
		t.Fatalf("got %dx%d ok=%v, want 400x225 true", w, h, ok)
	}

	// Resize replaces the pair atomically.
	m.Set(800, 450)
	w, h, _ = m.Size()
	if w != 800 || h != 450 {
		t.Fatalf("resize not applied: %dx%d", w, h)
	}
}

func TestViewportModel_IgnoresDegenerateSizes(t *testing.T) {
	var m ViewportModel
	m.Set(400, 225)
	m.Set(0, 225)
	m.Set(400, -1)
	w, h, ok := m.Size()
	if !ok || w != 400 || h != 225 {
		t.Fatalf("degenerate size overwrote known size: %dx%d ok=%v", w, h, ok)
	}
}

func TestCaptureModel_Toggle(t *testing.T) {
	var m CaptureModel
	if m.Enabled() {
		t.Fatalf("zero value should be disabled")
	}
	m.SetEnabled(true)
	if !m.Enabled() {
		t.Fatalf("enable not applied")
	}
	m.SetEnabled(true) // no-op path
	m.SetEnabled(false)
	if m.Enabled() {
		t.Fatalf("disable not applied")
	}
}
