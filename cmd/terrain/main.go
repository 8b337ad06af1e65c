package main

import (
	"flag"
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/theapemachine/errnie"
	"github.com/theapemachine/qscape"
)

const cellSizePx = 48

// App walks a camera over a procedurally generated quantum landscape.
// Arrow keys steer; each tile's brightness comes from sampling the
// oracle circuit at that world coordinate.
type App struct {
	terrain *qscape.Terrain
	metrics *qscape.Metrics
	config  *qscape.Config
	frame   [][]int
	elapsed time.Duration
	last    time.Time
}

func NewApp(sessionSeed int64) (*App, error) {
	rng := rand.New(rand.NewSource(sessionSeed))
	config := qscape.NewConfig()

	oracle, err := qscape.NewOracle(
		qscape.NewSeed(rng),
		qscape.NewStatevectorBackend(rng.Int63()),
		config,
	)
	if err != nil {
		return nil, err
	}

	metrics := qscape.NewMetrics()
	terrain := qscape.NewTerrain(oracle, config,
		qscape.WithTileCache(time.Minute),
		qscape.WithMetrics(metrics),
	)

	frame, err := terrain.RenderFrame()
	if err != nil {
		return nil, err
	}

	errnie.Info("terrain session - seed %d, oracle seed %v", sessionSeed, oracle.Seed())

	return &App{
		terrain: terrain,
		metrics: metrics,
		config:  config,
		frame:   frame,
		last:    time.Now(),
	}, nil
}

func (a *App) Update() error {
	now := time.Now()
	a.elapsed += now.Sub(a.last)
	a.last = now

	// Advance at the handheld frame rate, not ebiten's tick rate.
	if a.elapsed < a.config.FrameInterval {
		return nil
	}
	a.elapsed = 0

	var keys uint8
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		keys |= qscape.KeyLeft
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		keys |= qscape.KeyUp
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		keys |= qscape.KeyRight
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		keys |= qscape.KeyDown
	}
	a.terrain.Steer(keys)

	frame, err := a.terrain.RenderFrame()
	if err != nil {
		return err
	}
	a.frame = frame

	if keys != 0 {
		snap := a.metrics.Snapshot()
		log.Printf("camera %+v, frame %v, cache %d hit / %d miss",
			a.terrain.Camera(), snap.LastFrameDuration, snap.CacheHits, snap.CacheMisses)
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	for y, row := range a.frame {
		for x, level := range row {
			shade := uint8(level * 85)
			vector.DrawFilledRect(screen,
				float32(x*cellSizePx), float32(y*cellSizePx),
				float32(cellSizePx), float32(cellSizePx),
				color.RGBA{R: shade, G: shade, B: shade, A: 255}, false)
		}
	}
}

func (a *App) Layout(outsideW, outsideH int) (int, int) {
	return a.config.GridSize * cellSizePx, a.config.GridSize * cellSizePx
}

func main() {
	sessionSeed := flag.Int64("seed", time.Now().UnixNano(), "session seed for terrain and sampling")
	flag.Parse()

	app, err := NewApp(*sessionSeed)
	if err != nil {
		log.Fatal(err)
	}

	w, h := app.Layout(0, 0)
	ebiten.SetWindowTitle("qscape")
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
