package presenter

import (
	"log/slog"
	"sync/atomic"
	"time"
)

// FrameAgeSource reports how old the latest published frame is.
type FrameAgeSource interface {
	LatestFrameAge() time.Duration
}

// FreshnessWatcher polls the frame service while the stream is enabled and
// logs when frames stop arriving (camera stall, device unplugged). It only
// observes: stale landmarks keep being redrawn until a new detection
// replaces them, so there is nothing to clear.
type FreshnessWatcher struct {
	Source     FrameAgeSource
	Logger     *slog.Logger
	StallAfter time.Duration

	interval time.Duration
	running  atomic.Bool
	done     chan struct{}
	stalled  atomic.Bool
}

// NewFreshnessWatcher constructs a watcher flagging frames older than stallAfter.
func NewFreshnessWatcher(source FrameAgeSource, logger *slog.Logger, stallAfter time.Duration) *FreshnessWatcher {
	if stallAfter <= 0 {
		stallAfter = 2 * time.Second
	}
	return &FreshnessWatcher{Source: source, Logger: logger, StallAfter: stallAfter, interval: 250 * time.Millisecond}
}

// Stalled reports whether the source was stalled at the last poll.
func (w *FreshnessWatcher) Stalled() bool {
	if w == nil {
		return false
	}
	return w.stalled.Load()
}

// Start begins polling. Idempotent.
func (w *FreshnessWatcher) Start() {
	if w == nil || w.running.Load() {
		return
	}
	w.done = make(chan struct{})
	w.running.Store(true)
	w.stalled.Store(false)
	go w.loop()
}

// Stop ends polling. Idempotent.
func (w *FreshnessWatcher) Stop() {
	if w == nil || !w.running.Load() {
		return
	}
	close(w.done)
	w.running.Store(false)
}

func (w *FreshnessWatcher) loop() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			w.poll()
		case <-w.done:
			return
		}
	}
}

func (w *FreshnessWatcher) poll() {
	if w.Source == nil {
		return
	}
	age := w.Source.LatestFrameAge()
	if age > w.StallAfter {
		if w.stalled.CompareAndSwap(false, true) && w.Logger != nil {
			w.Logger.Warn("frame source stalled", "age", age)
		}
		return
	}
	if w.stalled.CompareAndSwap(true, false) && w.Logger != nil {
		w.Logger.Info("frame source recovered", "age", age)
	}
}
