//go:build !windows

package debug

// Portable fallback for platforms without GetProcessMemoryInfo: logs Go heap
// stats only, with RSS reported as zero.

import (
	"log/slog"
	"runtime"
	"time"
)

// StartMemLogger launches a background goroutine that periodically logs heap
// statistics. A zero or negative interval defaults to 2s.
func StartMemLogger(interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			var ms runtime.MemStats
			runtime.ReadMemStats(&ms)
			logger.Info("memstats",
				slog.Int("goroutines", runtime.NumGoroutine()),
				slog.Uint64("heap_alloc", ms.HeapAlloc),
				slog.Uint64("heap_inuse", ms.HeapInuse),
				slog.Uint64("heap_idle", ms.HeapIdle),
				slog.Uint64("heap_sys", ms.HeapSys),
				slog.Uint64("next_gc", ms.NextGC),
				slog.Uint64("rss", 0),
				slog.Uint64("num_gc", uint64(ms.NumGC)),
			)
		}
	}()
}
