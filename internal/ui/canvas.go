package ui

import (
	"image/color"
	"math"

	"ShapeCanvas/internal/render"
	"ShapeCanvas/internal/shape"
	"ShapeCanvas/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

const (
	strokeWidth     float32 = 1.5
	ellipseSegments         = 64
)

var strokeColor color.Color = color.Black

// CanvasWidget is the drawing area. It forwards pointer events to a
// Controller and repaints from the controller's store on every refresh.
type CanvasWidget struct {
	widget.BaseWidget
	controller *state.Controller
}

var _ fyne.Widget = (*CanvasWidget)(nil)
var _ fyne.Draggable = (*CanvasWidget)(nil)
var _ desktop.Mouseable = (*CanvasWidget)(nil)

func NewCanvasWidget(c *state.Controller) *CanvasWidget {
	w := &CanvasWidget{controller: c}
	w.ExtendBaseWidget(w)
	c.OnRedraw = w.Refresh
	return w
}

func (w *CanvasWidget) Controller() *state.Controller { return w.controller }

func toPixel(p fyne.Position) (int, int) {
	return int(math.Round(float64(p.X))), int(math.Round(float64(p.Y)))
}

func (w *CanvasWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	w.controller.PointerDown(toPixel(e.Position))
}

func (w *CanvasWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	w.controller.PointerUp(toPixel(e.Position))
}

func (w *CanvasWidget) Dragged(e *fyne.DragEvent) {
	w.controller.PointerMove(toPixel(e.Position))
}

// DragEnd carries no position; if MouseUp has not already closed the
// drag, finish it where the pointer was last seen.
func (w *CanvasWidget) DragEnd() {
	w.controller.PointerUpAtLast()
}

func (w *CanvasWidget) MouseIn(*desktop.MouseEvent) {}
func (w *CanvasWidget) MouseOut() {}
func (w *CanvasWidget) MouseMoved(*desktop.MouseEvent) {}

func (w *CanvasWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &canvasRenderer{
		board:      w,
		background: canvas.NewRectangle(color.White),
	}
	r.objects = r.build()
	return r
}

type canvasRenderer struct {
	board      *CanvasWidget
	background *canvas.Rectangle
	objects    []fyne.CanvasObject
}

func (r *canvasRenderer) build() []fyne.CanvasObject {
	s := &fyneSurface{objects: []fyne.CanvasObject{r.background}}

	var preview *shape.Record
	if rec, ok := r.board.controller.InProgress(); ok {
		preview = &rec
	}
	render.Draw(s, r.board.controller.Store().All(), preview)
	return s.objects
}

func (r *canvasRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *canvasRenderer) Refresh() {
	r.objects = r.build()
	canvas.Refresh(r.board)
}

func (r *canvasRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *canvasRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *canvasRenderer) Destroy() {}

// fyneSurface turns draw calls into canvas objects positioned in widget
// coordinates.
type fyneSurface struct {
	objects []fyne.CanvasObject
}

func (s *fyneSurface) StrokeLine(x1, y1, x2, y2 int) {
	s.segment(fyne.NewPos(float32(x1), float32(y1)), fyne.NewPos(float32(x2), float32(y2)))
}

func (s *fyneSurface) StrokeRect(b shape.Bounds) {
	rect := canvas.NewRectangle(color.Transparent)
	rect.StrokeColor = strokeColor
	rect.StrokeWidth = strokeWidth
	rect.Move(fyne.NewPos(float32(b.X), float32(b.Y)))
	rect.Resize(fyne.NewSize(float32(b.W), float32(b.H)))
	s.objects = append(s.objects, rect)
}

// Fyne has no outlined ellipse primitive, so the outline is built from
// short line segments.
func (s *fyneSurface) StrokeEllipse(b shape.Bounds) {
	pts := render.Polyline(b, ellipseSegments)
	for i := 1; i < len(pts); i++ {
		s.segment(
			fyne.NewPos(float32(pts[i-1].X), float32(pts[i-1].Y)),
			fyne.NewPos(float32(pts[i].X), float32(pts[i].Y)),
		)
	}
}

func (s *fyneSurface) segment(p1, p2 fyne.Position) {
	line := canvas.NewLine(strokeColor)
	line.StrokeWidth = strokeWidth
	line.Position1 = p1
	line.Position2 = p2
	s.objects = append(s.objects, line)
}
