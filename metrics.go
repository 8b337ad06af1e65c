package qscape

import (
	"sync"
	"time"
)

// Metrics tracks the cost of the terrain loop. The render path writes
// while a display callback may read, so access goes through the mutex.
type Metrics struct {
	mu sync.RWMutex

	FramesRendered    int64
	ShotsExecuted     int64
	CacheHits         int64
	CacheMisses       int64
	LastFrameDuration time.Duration
	TotalFrameTime    time.Duration
}

// MetricsSnapshot is a copy of the counters safe to hold without the lock.
type MetricsSnapshot struct {
	FramesRendered    int64
	ShotsExecuted     int64
	CacheHits         int64
	CacheMisses       int64
	LastFrameDuration time.Duration
	AverageFrameTime  time.Duration
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

// recordFrame folds one rendered frame into the counters.
func (m *Metrics) recordFrame(start time.Time, shots int64, hits, misses int64) {
	duration := time.Since(start)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.FramesRendered++
	m.ShotsExecuted += shots
	m.CacheHits += hits
	m.CacheMisses += misses
	m.LastFrameDuration = duration
	m.TotalFrameTime += duration
}

// Snapshot returns a consistent copy of the counters.
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snap := MetricsSnapshot{
		FramesRendered:    m.FramesRendered,
		ShotsExecuted:     m.ShotsExecuted,
		CacheHits:         m.CacheHits,
		CacheMisses:       m.CacheMisses,
		LastFrameDuration: m.LastFrameDuration,
	}
	if m.FramesRendered > 0 {
		snap.AverageFrameTime = m.TotalFrameTime / time.Duration(m.FramesRendered)
	}
	return snap
}
