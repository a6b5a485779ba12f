package export

import (
	"fmt"
	"io"
	"iter"

	"ShapeCanvas/internal/render"
	"ShapeCanvas/internal/shape"

	"github.com/jung-kurt/gofpdf"
)

// Size is the canvas area being exported, in pixels.
type Size struct {
	Width, Height int
}

func (s Size) valid() bool {
	return s.Width > 0 && s.Height > 0
}

type pdfSurface struct {
	p *gofpdf.Fpdf
}

func (s pdfSurface) StrokeLine(x1, y1, x2, y2 int) {
	s.p.Line(float64(x1), float64(y1), float64(x2), float64(y2))
}

func (s pdfSurface) StrokeRect(b shape.Bounds) {
	s.p.Rect(float64(b.X), float64(b.Y), float64(b.W), float64(b.H), "D")
}

func (s pdfSurface) StrokeEllipse(b shape.Bounds) {
	rx, ry := float64(b.W)/2, float64(b.H)/2
	s.p.Ellipse(float64(b.X)+rx, float64(b.Y)+ry, rx, ry, 0, "D")
}

// PDF writes a single page the size of the canvas, one point per pixel.
func PDF(w io.Writer, size Size, shapes iter.Seq[shape.Record]) error {
	if !size.valid() {
		return fmt.Errorf("invalid export size %dx%d", size.Width, size.Height)
	}

	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: float64(size.Width), Ht: float64(size.Height)},
	})
	p.SetCreator("ShapeCanvas", true)
	p.AddPage()
	p.SetDrawColor(0, 0, 0)
	p.SetLineWidth(1)

	render.Draw(pdfSurface{p: p}, shapes, nil)

	if err := p.Output(w); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}
