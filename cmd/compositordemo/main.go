// Command compositordemo animates a handful of layered objects and writes
// the frames as PNG files, logging how little of the buffer each frame
// actually redraws.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/gogpu/compositor"
	"github.com/gogpu/compositor/geom"
	"github.com/gogpu/compositor/pixel"
)

func main() {
	var (
		width  = flag.Uint("width", 800, "buffer width")
		height = flag.Uint("height", 600, "buffer height")
		frames = flag.Int("frames", 60, "number of frames to render")
		outdir = flag.String("outdir", "frames", "output directory")
	)
	flag.Parse()

	c, err := compositor.New(compositor.Config{
		Width:    uint32(*width),
		Height:   uint32(*height),
		GridRows: 8,
		GridCols: 8,
	})
	if err != nil {
		log.Fatalf("Failed to create compositor: %v", err)
	}
	c.Clear(pixel.RGB(24, 26, 32))

	// A static backdrop on the bottom layer, a textured sprite above it,
	// and a rotating plate on top.
	if _, err := c.CreateColorObject(0, geom.Rect{X: 40, Y: 40, W: uint32(*width) - 80, H: uint32(*height) - 80}, pixel.RGB(40, 44, 56)); err != nil {
		log.Fatalf("Failed to create backdrop: %v", err)
	}

	texID, err := c.AddTexture(checkerTexture(64, pixel.RGB(240, 200, 60), pixel.RGB(200, 80, 40)))
	if err != nil {
		log.Fatalf("Failed to add texture: %v", err)
	}
	sprite, err := c.CreateTextureObject(1, geom.Rect{X: 80, Y: 80, W: 64, H: 64}, texID)
	if err != nil {
		log.Fatalf("Failed to create sprite: %v", err)
	}
	plate, err := c.CreateColorObject(2, geom.Rect{X: uint32(*width) / 2, Y: uint32(*height) / 2, W: 120, H: 120}, pixel.RGBA(90, 140, 220, 255))
	if err != nil {
		log.Fatalf("Failed to create plate: %v", err)
	}

	if err := os.MkdirAll(*outdir, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	duration := float32(*frames) / 60
	slide := gween.New(0, float32(*width)-224, duration, ease.InOutQuad)
	spin := gween.New(0, 360, duration, ease.Linear)

	prevX := float32(0)
	totalPixels := float64(*width) * float64(*height)
	for frame := 0; frame < *frames; frame++ {
		x, _ := slide.Update(1.0 / 60)
		angle, _ := spin.Update(1.0 / 60)

		if err := c.MoveObjectBy(sprite, int32(x-prevX), 0); err != nil {
			log.Fatalf("Failed to move sprite: %v", err)
		}
		prevX = x
		if err := c.SetObjectRotation(plate, float64(angle)); err != nil {
			log.Fatalf("Failed to rotate plate: %v", err)
		}

		c.DrawAll()
		dirty := c.FlushPortions()
		var covered uint64
		for _, r := range dirty {
			covered += uint64(r.W) * uint64(r.H)
		}
		log.Printf("frame %03d: %d dirty regions, %.1f%% of buffer", frame, len(dirty), 100*float64(covered)/totalPixels)

		name := filepath.Join(*outdir, fmt.Sprintf("frame%03d.png", frame))
		if err := savePNG(name, c); err != nil {
			log.Fatalf("Failed to save frame: %v", err)
		}
	}

	log.Printf("Wrote %d frames to %s (%dx%d)", *frames, *outdir, *width, *height)
}

// checkerTexture builds a size x size texture of 8-pixel checker squares.
func checkerTexture(size uint32, a, b pixel.Pixel) compositor.Texture {
	data := make([]byte, size*size*4)
	for y := uint32(0); y < size; y++ {
		for x := uint32(0); x < size; x++ {
			p := a
			if (x/8+y/8)%2 == 1 {
				p = b
			}
			pixel.FormatRGBA8.Put(data[(y*size+x)*4:], p)
		}
	}
	tex, err := compositor.NewTexture(data, size, pixel.FormatRGBA8)
	if err != nil {
		log.Fatalf("Failed to build texture: %v", err)
	}
	return tex
}

func savePNG(name string, c *compositor.Compositor) error {
	w, h := int(c.Width()), int(c.Height())
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	format := c.Format()
	bpp := format.BytesPerPixel()
	pixels := c.Pixels()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := format.At(pixels[(y*w+x)*bpp:])
			img.SetNRGBA(x, y, color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A})
		}
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
