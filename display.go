// display.go
package qscape

import (
	"context"
	"log"
	"time"
)

/*
Display is the pixel-grid and input surface of a handheld-style device:
a fixed square of pixels with per-pixel brightness 0..3, a present
operation, and a key-state query over the four directional keys.
*/
type Display interface {
	// SetPixel stages brightness level 0..3 at grid position (x, y).
	SetPixel(x, y, level int)

	// Show presents the staged frame.
	Show() error

	// Keys reports the directional keys currently held, as a bitmask of
	// KeyLeft, KeyUp, KeyRight and KeyDown.
	Keys() uint8
}

/*
Run drives the classic read-render-wait cycle against a display: poll the
keys, steer the camera, recompute the viewport, push it to the pixels,
present, then wait out the frame interval. The loop blocks until the
context is cancelled or a render fails.
*/
func Run(ctx context.Context, display Display, terrain *Terrain) error {
	interval := terrain.config.FrameInterval
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Printf("Terrain session started, frame interval %v", interval)

	for {
		terrain.Steer(display.Keys())

		frame, err := terrain.RenderFrame()
		if err != nil {
			return err
		}
		for y, row := range frame {
			for x, level := range row {
				display.SetPixel(x, y, level)
			}
		}
		if err := display.Show(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
