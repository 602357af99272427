package presenter

import (
	"time"
)

// EnabledSource reports whether capture is enabled.
type EnabledSource interface{ Enabled() bool }

// StallSource reports whether the frame source is currently stalled.
type StallSource interface{ Stalled() bool }

// StateView sets the state label in the view.
type StateView interface{ SetStateLabel(string) }

// StatusPresenter reflects the stream state (idle, streaming, stalled) into
// the view's state label, writing only on change.
type StatusPresenter struct {
	enabled EnabledSource
	stall   StallSource
	view    StateView
	latest  string
}

func NewStatusPresenter(enabled EnabledSource, stall StallSource, view StateView) *StatusPresenter {
	return &StatusPresenter{enabled: enabled, stall: stall, view: view}
}

// Tick recomputes the status string and pushes it if it changed.
func (p *StatusPresenter) Tick(now time.Time) {
	if p == nil || p.enabled == nil || p.view == nil {
		return
	}
	status := "idle"
	if p.enabled.Enabled() {
		status = "streaming"
		if p.stall != nil && p.stall.Stalled() {
			status = "stalled"
		}
	}
	if status != p.latest {
		p.latest = status
		p.view.SetStateLabel("State: " + status)
	}
}
