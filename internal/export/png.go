package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"iter"
	"math"

	"ShapeCanvas/internal/render"
	"ShapeCanvas/internal/shape"

	"golang.org/x/image/vector"
)

const (
	rasterStroke   = 1.5
	rasterSegments = 72
)

// rasterSurface collects every outline as thin quads in one rasterizer.
type rasterSurface struct {
	r *vector.Rasterizer
}

func (s rasterSurface) StrokeLine(x1, y1, x2, y2 int) {
	s.segment(render.Point{X: float64(x1), Y: float64(y1)}, render.Point{X: float64(x2), Y: float64(y2)})
}

func (s rasterSurface) StrokeRect(b shape.Bounds) {
	x0, y0 := float64(b.X), float64(b.Y)
	x1, y1 := x0+float64(b.W), y0+float64(b.H)
	s.polyline([]render.Point{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}, {X: x0, Y: y0}})
}

func (s rasterSurface) StrokeEllipse(b shape.Bounds) {
	s.polyline(render.Polyline(b, rasterSegments))
}

func (s rasterSurface) polyline(pts []render.Point) {
	for i := 1; i < len(pts); i++ {
		s.segment(pts[i-1], pts[i])
	}
}

func (s rasterSurface) segment(a, b render.Point) {
	half := rasterStroke / 2
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)

	// a zero-length segment still leaves a dot
	nx, ny := 0.0, half
	ex, ey := half, 0.0
	if length > 0 {
		nx, ny = -dy/length*half, dx/length*half
		ex, ey = dx/length*half, dy/length*half
	}

	s.r.MoveTo(float32(a.X-ex+nx), float32(a.Y-ey+ny))
	s.r.LineTo(float32(b.X+ex+nx), float32(b.Y+ey+ny))
	s.r.LineTo(float32(b.X+ex-nx), float32(b.Y+ey-ny))
	s.r.LineTo(float32(a.X-ex-nx), float32(a.Y-ey-ny))
	s.r.ClosePath()
}

// Image rasterizes shapes in black on a white background.
func Image(size Size, shapes iter.Seq[shape.Record]) (*image.RGBA, error) {
	if !size.valid() {
		return nil, fmt.Errorf("invalid export size %dx%d", size.Width, size.Height)
	}

	dst := image.NewRGBA(image.Rect(0, 0, size.Width, size.Height))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)

	r := vector.NewRasterizer(size.Width, size.Height)
	r.DrawOp = draw.Over
	render.Draw(rasterSurface{r: r}, shapes, nil)
	r.Draw(dst, dst.Bounds(), image.NewUniform(color.Black), image.Point{})
	return dst, nil
}

// PNG encodes Image as a PNG stream.
func PNG(w io.Writer, size Size, shapes iter.Seq[shape.Record]) error {
	img, err := Image(size, shapes)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}
