// Package compositor provides an incremental, CPU-only 2D compositor.
//
// # Overview
//
// A Compositor maintains a pixel buffer holding a scene of layered,
// movable, optionally-rotated rectangular objects, each either a flat
// color or a texture. On every draw it repaints only the pixels that
// changed: stale regions are cleared, pixels revealed from beneath are
// restored, and writes hidden by higher layers are skipped. The touched
// pixels are tracked on a coarse grid and can be summarized as a small
// rectangle list for a presentation layer to blit.
//
// # Quick Start
//
//	import "github.com/gogpu/compositor"
//
//	c, err := compositor.New(compositor.Config{
//	    Width: 800, Height: 600,
//	    GridRows: 10, GridCols: 10,
//	    Format: pixel.FormatRGBA8,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	id, err := c.CreateColorObject(0, geom.Rect{X: 10, Y: 10, W: 64, H: 64}, pixel.Red)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	c.DrawAll()
//	c.MoveObjectBy(id, 5, 0)
//	c.DrawAll()
//
//	for _, r := range c.FlushPortions() {
//	    // blit r from c.Pixels() to the display
//	}
//
// # Architecture
//
// The library is organized into:
//   - Public API: Compositor, Texture, Config (this package)
//   - geom: rectangles, tilted rectangles, affine matrices
//   - portion: dirty-pixel grid and rectangle extraction
//   - arena: stable-index slot storage for objects and textures
//   - pixel: pixel formats and color values
//
// Everything runs on the CPU in a single goroutine; there is no GPU, no
// windowing, and no concurrency inside the compositor. Presenting the
// buffer (and loading texture files into bytes) is the caller's job.
package compositor
