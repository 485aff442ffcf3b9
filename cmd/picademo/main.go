// Command picademo draws a small scene through the recording device and
// prints the resulting command stream, showing what the pipeline hands
// to the hardware.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/pica"
	"github.com/gogpu/pica/driver/recording"
)

func main() {
	var (
		width   = flag.Int("width", 400, "framebuffer width")
		height  = flag.Int("height", 240, "framebuffer height")
		verbose = flag.Bool("v", false, "enable pipeline logging")
	)
	flag.Parse()

	if *verbose {
		pica.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	dev := recording.New()
	r, err := pica.New(dev, pica.WithScreenSize(*width, *height))
	if err != nil {
		log.Fatalf("create renderer: %v", err)
	}
	defer r.Close()

	// Screen-space orthographic projection, origin top-left.
	m := r.Matrices()
	m.SetMode(pica.Projection)
	m.Ortho(0, float32(*width), float32(*height), 0, 0, 1)
	m.SetMode(pica.Modelview)

	r.ClearBackground(20, 20, 40, 255)

	drawQuad(r)
	drawTriangle(r)
	drawOutline(r)

	fmt.Printf("recorded %d commands:\n", len(dev.Commands()))
	for i, c := range dev.Commands() {
		fmt.Printf("%4d  %s\n", i, c)
	}
}

// drawQuad draws a filled rectangle with one color per corner.
func drawQuad(r *pica.Renderer) {
	r.Begin(pica.Quads)
	r.Color4ub(255, 0, 0, 255)
	r.Vertex2f(40, 40)
	r.Color4ub(0, 255, 0, 255)
	r.Vertex2f(160, 40)
	r.Color4ub(0, 0, 255, 255)
	r.Vertex2f(160, 120)
	r.Color4ub(255, 255, 0, 255)
	r.Vertex2f(40, 120)
	r.End()
}

// drawTriangle draws one flat-colored triangle under a pushed transform.
func drawTriangle(r *pica.Renderer) {
	r.PushMatrix()
	r.Matrices().Translate(240, 80, 0)
	r.Matrices().Rotate(30, 0, 0, 1)

	r.Begin(pica.Triangles)
	r.Color4f(0.9, 0.9, 0.9, 1)
	r.Vertex2f(-40, 30)
	r.Vertex2f(40, 30)
	r.Vertex2f(0, -40)
	r.End()

	r.PopMatrix()
}

// drawOutline strokes a rectangle as two-vertex line primitives.
func drawOutline(r *pica.Renderer) {
	x0, y0, x1, y1 := float32(40), float32(160), float32(360), float32(220)
	edges := [][4]float32{
		{x0, y0, x1, y0},
		{x1, y0, x1, y1},
		{x1, y1, x0, y1},
		{x0, y1, x0, y0},
	}

	r.Begin(pica.Lines)
	r.Color4ub(255, 255, 255, 255)
	for _, e := range edges {
		r.Vertex2f(e[0], e[1])
		r.Vertex2f(e[2], e[3])
	}
	r.End()
}
