package render

import (
	"fmt"
	"iter"
	"math"

	"ShapeCanvas/internal/shape"
)

// Surface is anything outline primitives can be drawn onto.
type Surface interface {
	StrokeLine(x1, y1, x2, y2 int)
	StrokeRect(b shape.Bounds)
	StrokeEllipse(b shape.Bounds)
}

// Draw paints shapes in order and then the shape being dragged, if any.
// It reads its inputs and nothing else, so it can run on every redraw.
func Draw(s Surface, shapes iter.Seq[shape.Record], inProgress *shape.Record) {
	for rec := range shapes {
		Shape(s, rec)
	}
	if inProgress != nil {
		Shape(s, *inProgress)
	}
}

func Shape(s Surface, rec shape.Record) {
	switch rec.Kind {
	case shape.Line:
		s.StrokeLine(rec.X1, rec.Y1, rec.X2, rec.Y2)
	case shape.Rectangle:
		s.StrokeRect(rec.Bounds())
	case shape.Ellipse:
		s.StrokeEllipse(rec.Bounds())
	default:
		panic(fmt.Sprintf("render: invalid shape kind %d", int(rec.Kind)))
	}
}

// Point is a position in floating point canvas coordinates.
type Point struct{ X, Y float64 }

// Polyline approximates the ellipse inscribed in b with segments points.
// The first point is repeated at the end so the outline closes.
func Polyline(b shape.Bounds, segments int) []Point {
	if segments < 4 {
		segments = 4
	}
	rx, ry := float64(b.W)/2, float64(b.H)/2
	cx, cy := float64(b.X)+rx, float64(b.Y)+ry

	pts := make([]Point, 0, segments+1)
	for i := range segments {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		pts = append(pts, Point{X: cx + rx*math.Cos(theta), Y: cy + ry*math.Sin(theta)})
	}
	return append(pts, pts[0])
}
