package presenter

import (
	"testing"
)

type mockModel struct{ enabled bool }

func (m *mockModel) Enabled() bool     { return m.enabled }
func (m *mockModel) SetEnabled(b bool) { m.enabled = b }

type mockService struct{ started, stopped int }

func (s *mockService) Start() { s.started++ }
func (s *mockService) Stop()  { s.stopped++ }

type mockWatcher struct{ started, stopped int }

func (w *mockWatcher) Start() { w.started++ }
func (w *mockWatcher) Stop()  { w.stopped++ }

type mockCaptureView struct {
	reset, editableCalls int
	lastEditable         bool
}

func (v *mockCaptureView) PreviewReset()         { v.reset++ }
func (v *mockCaptureView) ConfigEditable(b bool) { v.editableCalls++; v.lastEditable = b }

func TestCapturePresenter_EnableDisable_Idempotent(t *testing.T) {
	m := &mockModel{}
	svc := &mockService{}
	w := &mockWatcher{}
	view := &mockCaptureView{}
	p := NewCapturePresenter(m, svc, w, view)

	// Enable
	p.Enable()
	if !m.Enabled() || svc.started != 1 || w.started != 1 || view.lastEditable || view.editableCalls != 1 {
		t.Fatalf("enable failed: enabled=%v started=%d watcher=%d editableCalls=%d lastEditable=%v", m.Enabled(), svc.started, w.started, view.editableCalls, view.lastEditable)
	}
	// Enable again idempotent
	p.Enable()
	if svc.started != 1 || w.started != 1 {
		t.Fatalf("enable not idempotent: started=%d watcher=%d", svc.started, w.started)
	}

	// Disable
	p.Disable()
	if m.Enabled() || svc.stopped != 1 || w.stopped != 1 || view.reset != 1 || !view.lastEditable || view.editableCalls != 2 {
		t.Fatalf("disable failed: enabled=%v stopped=%d watcher=%d reset=%d editableCalls=%d lastEditable=%v", m.Enabled(), svc.stopped, w.stopped, view.reset, view.editableCalls, view.lastEditable)
	}
	// Disable again idempotent
	p.Disable()
	if svc.stopped != 1 || w.stopped != 1 || view.reset != 1 {
		t.Fatalf("disable not idempotent: stopped=%d watcher=%d reset=%d", svc.stopped, w.stopped, view.reset)
	}
}

func TestCapturePresenter_Toggle(t *testing.T) {
	m := &mockModel{}
	svc := &mockService{}
	w := &mockWatcher{}
	view := &mockCaptureView{}
	p := NewCapturePresenter(m, svc, w, view)
	p.Toggle() // enable path
	if !m.Enabled() || svc.started != 1 {
		t.Fatalf("toggle enable failed")
	}
	p.Toggle() // disable path
	if m.Enabled() || svc.stopped != 1 {
		t.Fatalf("toggle disable failed")
	}
}

func TestCapturePresenter_NilWatcherTolerated(t *testing.T) {
	m := &mockModel{}
	svc := &mockService{}
	view := &mockCaptureView{}
	p := NewCapturePresenter(m, svc, nil, view)
	p.Enable()
	p.Disable()
	if svc.started != 1 || svc.stopped != 1 {
		t.Fatalf("lifecycle broken without watcher: %+v", svc)
	}
}
