package camera

import (
	"log/slog"
	"sync/atomic"
	"time"
)

const frameStatsLogInterval = 5 * time.Second

// Service acquires frames from a Grabber on its own goroutine and exposes
// the latest capture alongside instrumentation data. Use NewService to
// construct an instance.
type Service interface {
	Start()
	Stop()
	LatestFrame() FrameSnapshot
	Running() bool
	Stats() Stats
}

type frameService struct {
	running      atomic.Bool
	latest       atomic.Pointer[FrameSnapshot]
	grab         Grabber
	interval     time.Duration
	logger       *slog.Logger
	captures     atomic.Uint64
	skipped      atomic.Uint64
	captureNanos atomic.Uint64
	sequence     atomic.Uint64
}

// NewService constructs a frame service polling grab at the given interval.
func NewService(logger *slog.Logger, grab Grabber, interval time.Duration) Service {
	if interval <= 0 {
		interval = 33 * time.Millisecond
	}
	return &frameService{grab: grab, interval: interval, logger: logger}
}

func (s *frameService) LatestFrame() FrameSnapshot {
	snap := s.latest.Load()
	if snap == nil {
		return FrameSnapshot{}
	}
	return *snap
}

func (s *frameService) Running() bool { return s.running.Load() }

func (s *frameService) Stats() Stats {
	captures := s.captures.Load()
	skipped := s.skipped.Load()
	total := s.captureNanos.Load()
	var avg time.Duration
	avgMicros := 0.0
	if captures > 0 && total > 0 {
		avg = time.Duration(total / captures)
		avgMicros = float64(avg) / float64(time.Microsecond)
	}
	snapshot := s.LatestFrame()
	age := time.Duration(0)
	if !snapshot.CapturedAt.IsZero() {
		age = time.Since(snapshot.CapturedAt)
	}
	return Stats{
		Captures:         captures,
		Skipped:          skipped,
		AvgCapture:       avg,
		AvgCaptureMicros: avgMicros,
		LastCapture:      snapshot.CapturedAt,
		LatestFrameAge:   age,
		Sequence:         snapshot.Sequence,
	}
}

func (s *frameService) Start() {
	if s.running.Load() {
		return
	}
	s.running.Store(true)
	go s.loop()
}

func (s *frameService) Stop() {
	if !s.running.Load() {
		return
	}
	s.running.Store(false)
}

func (s *frameService) loop() {
	logTicker := time.NewTicker(frameStatsLogInterval)
	defer logTicker.Stop()
	for s.running.Load() {
		start := time.Now()

		img, rotation, err := s.grab()
		if err != nil {
			if s.logger != nil {
				s.logger.Error("frame grab", "error", err)
			}
			s.skipped.Add(1)
			time.Sleep(s.interval)
			continue
		}
		if img == nil {
			s.skipped.Add(1)
			time.Sleep(s.interval)
			continue
		}

		elapsed := time.Since(start)
		s.captureNanos.Add(uint64(elapsed.Nanoseconds()))
		s.captures.Add(1)
		seq := s.sequence.Add(1)
		s.latest.Store(&FrameSnapshot{Image: img, Rotation: rotation, CapturedAt: time.Now(), Sequence: seq})

		select {
		case <-logTicker.C:
			s.logStats()
		default:
		}

		if rest := s.interval - elapsed; rest > 0 {
			time.Sleep(rest)
		}
	}
}

func (s *frameService) logStats() {
	if s.logger == nil {
		return
	}
	stats := s.Stats()
	s.logger.Debug("camera.stats",
		"captures", stats.Captures,
		"skipped", stats.Skipped,
		"avg_capture", stats.AvgCapture,
		"age", stats.LatestFrameAge,
	)
}
