package qscape

import "time"

// Config carries the tunables shared by the oracle and the terrain loop.
type Config struct {
	// Shots is the number of sampled circuit executions behind every
	// brightness estimate.
	Shots int

	// Thresholds are the upper probability bounds for brightness levels
	// 0, 1 and 2; anything above the last bound is level 3.
	Thresholds [3]float64

	// GridSize is the square viewport edge in tiles.
	GridSize int

	// FrameInterval is the fixed wait between display frames.
	FrameInterval time.Duration
}

func NewConfig() *Config {
	return &Config{
		Shots:         1000,
		Thresholds:    [3]float64{0.7, 0.8, 0.9},
		GridSize:      8,
		FrameInterval: 100 * time.Millisecond,
	}
}

// level buckets a sampled probability into a brightness level 0..3.
func (c *Config) level(p float64) int {
	for i, bound := range c.Thresholds {
		if p <= bound {
			return i
		}
	}
	return 3
}
