// terrain.go
package qscape

import (
	"time"
)

// Directional key bitmask, matching the four-key handheld layout.
const (
	KeyLeft uint8 = 1 << iota
	KeyUp
	KeyRight
	KeyDown
)

// Camera is the world-space offset of the viewport's top-left corner.
type Camera struct {
	X, Y int
}

// Move shifts the camera one tile per pressed direction.
func (c *Camera) Move(keys uint8) {
	if keys&KeyLeft != 0 {
		c.X--
	}
	if keys&KeyRight != 0 {
		c.X++
	}
	if keys&KeyUp != 0 {
		c.Y--
	}
	if keys&KeyDown != 0 {
		c.Y++
	}
}

/*
Terrain owns the viewport over an oracle-generated landscape: a camera
position, the oracle that prices each tile, and optionally a cache and
metrics. Rendering a frame asks the oracle for every visible tile in
world coordinates; with a cache attached, tiles seen recently are served
without re-sampling, which turns a one-tile camera step from a full
recompute into a single strip of fresh samples.
*/
type Terrain struct {
	oracle  *Oracle
	config  *Config
	cache   *TileCache
	metrics *Metrics
	camera  Camera
}

// TerrainOption configures a Terrain.
type TerrainOption func(*Terrain)

// WithTileCache attaches a brightness cache with the given TTL.
func WithTileCache(ttl time.Duration) TerrainOption {
	return func(t *Terrain) {
		t.cache = NewTileCache(ttl)
	}
}

// WithMetrics attaches a metrics collector to the render path.
func WithMetrics(m *Metrics) TerrainOption {
	return func(t *Terrain) {
		t.metrics = m
	}
}

// NewTerrain creates a viewport over the oracle's landscape. A nil config
// takes the defaults.
func NewTerrain(oracle *Oracle, config *Config, opts ...TerrainOption) *Terrain {
	if config == nil {
		config = NewConfig()
	}
	t := &Terrain{oracle: oracle, config: config}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Camera returns the current viewport offset.
func (t *Terrain) Camera() Camera { return t.camera }

// Steer applies one frame's worth of key input to the camera.
func (t *Terrain) Steer(keys uint8) {
	t.camera.Move(keys)
}

/*
RenderFrame computes the full viewport: a GridSize by GridSize grid of
brightness levels, row-major, with frame[y][x] covering world coordinate
(camera.X + x, camera.Y + y). Each uncached tile costs a full shot run
against the backend.
*/
func (t *Terrain) RenderFrame() ([][]int, error) {
	start := time.Now()
	size := t.config.GridSize

	var shots, hits, misses int64
	frame := make([][]int, size)
	for y := 0; y < size; y++ {
		frame[y] = make([]int, size)
		for x := 0; x < size; x++ {
			wx, wy := t.camera.X+x, t.camera.Y+y

			if t.cache != nil {
				if level, ok := t.cache.Lookup(wx, wy); ok {
					frame[y][x] = level
					hits++
					continue
				}
				misses++
			}

			level, err := t.oracle.Brightness(wx, wy)
			if err != nil {
				return nil, err
			}
			shots += int64(t.config.Shots)
			frame[y][x] = level

			if t.cache != nil {
				t.cache.Store(wx, wy, level)
			}
		}
	}

	if t.metrics != nil {
		t.metrics.recordFrame(start, shots, hits, misses)
	}
	return frame, nil
}
