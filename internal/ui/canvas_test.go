package ui

import (
	"bytes"
	"slices"
	"testing"

	"ShapeCanvas/internal/export"
	"ShapeCanvas/internal/shape"
	"ShapeCanvas/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(w *CanvasWidget, x, y float32) {
	w.MouseDown(&desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     desktop.MouseButtonPrimary,
	})
}

func drag(w *CanvasWidget, x, y float32) {
	w.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}})
}

func release(w *CanvasWidget, x, y float32) {
	w.MouseUp(&desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     desktop.MouseButtonPrimary,
	})
}

func newTestCanvas(t *testing.T) *CanvasWidget {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	w := NewCanvasWidget(state.NewController(state.NewStore()))
	w.Resize(fyne.NewSize(DefaultWidth, DefaultHeight))
	return w
}

func TestCanvasDrawsRectangle(t *testing.T) {
	for _, tt := range []struct {
		name     string
		from, to fyne.Position
	}{
		{"forward", fyne.NewPos(10, 10), fyne.NewPos(50, 30)},
		{"reversed", fyne.NewPos(50, 30), fyne.NewPos(10, 10)},
	} {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestCanvas(t)
			w.Controller().Select(shape.Rectangle)

			press(w, tt.from.X, tt.from.Y)
			drag(w, tt.to.X, tt.to.Y)
			release(w, tt.to.X, tt.to.Y)

			objects := test.WidgetRenderer(w).Objects()
			require.Len(t, objects, 2)
			rect, ok := objects[1].(*canvas.Rectangle)
			require.True(t, ok)
			assert.Equal(t, fyne.NewPos(10, 10), rect.Position())
			assert.Equal(t, fyne.NewSize(40, 20), rect.Size())
			assert.Equal(t, strokeColor, rect.StrokeColor)
		})
	}
}

func TestCanvasPreviewWhileDragging(t *testing.T) {
	w := newTestCanvas(t)
	r := test.WidgetRenderer(w)

	press(w, 5, 5)
	drag(w, 25, 15)
	objects := r.Objects()
	require.Len(t, objects, 2)
	line, ok := objects[1].(*canvas.Line)
	require.True(t, ok)
	assert.Equal(t, fyne.NewPos(5, 5), line.Position1)
	assert.Equal(t, fyne.NewPos(25, 15), line.Position2)
	assert.Equal(t, 0, w.Controller().Store().Len())

	w.DragEnd()
	assert.Equal(t, 1, w.Controller().Store().Len())
	assert.Len(t, r.Objects(), 2)
}

func TestCanvasEllipseOutline(t *testing.T) {
	w := newTestCanvas(t)
	w.Controller().Select(shape.Ellipse)
	press(w, 0, 0)
	release(w, 100, 50)

	objects := test.WidgetRenderer(w).Objects()
	assert.Len(t, objects, 1+ellipseSegments)
	for _, o := range objects[1:] {
		_, ok := o.(*canvas.Line)
		assert.True(t, ok)
	}
}

func TestCanvasIgnoresSecondaryButtonAndStrayRelease(t *testing.T) {
	w := newTestCanvas(t)

	release(w, 10, 10)
	w.DragEnd()
	w.MouseDown(&desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(1, 1)},
		Button:     desktop.MouseButtonSecondary,
	})
	drag(w, 40, 40)

	assert.False(t, w.Controller().Dragging())
	assert.Equal(t, 0, w.Controller().Store().Len())
	assert.Len(t, test.WidgetRenderer(w).Objects(), 1)
}

func TestCanvasClear(t *testing.T) {
	w := newTestCanvas(t)
	press(w, 1, 1)
	release(w, 9, 9)
	press(w, 2, 2)
	release(w, 8, 8)
	require.Len(t, test.WidgetRenderer(w).Objects(), 3)

	w.Controller().Clear()
	assert.Len(t, test.WidgetRenderer(w).Objects(), 1)
}

func TestBoardToolbarAndStatus(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()
	win := a.NewWindow(WindowTitle)
	defer win.Close()

	b := NewBoard(win)
	win.SetContent(b.Content())

	assert.Equal(t, shape.Labels(), b.Toolbar.Selector.Options)
	assert.Equal(t, "Line", b.Toolbar.Selector.Selected)

	b.Toolbar.Selector.SetSelected("Ellipse")
	assert.Equal(t, shape.Ellipse, b.Controller.Selected())

	press(b.Canvas, 10, 10)
	release(b.Canvas, 30, 30)
	assert.Equal(t, "1 shape", b.Status.Text)

	press(b.Canvas, 10, 10)
	release(b.Canvas, 20, 40)
	assert.Equal(t, "2 shapes", b.Status.Text)

	test.Tap(b.Toolbar.Clear)
	assert.Equal(t, 0, b.Controller.Store().Len())
	assert.Equal(t, "0 shapes", b.Status.Text)
}

type bufferCloser struct {
	bytes.Buffer
	closed bool
}

func (b *bufferCloser) Close() error {
	b.closed = true
	return nil
}

func TestExporterWrite(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()
	win := a.NewWindow(WindowTitle)
	defer win.Close()

	b := NewBoard(win)
	b.Controller.Select(shape.Rectangle)
	press(b.Canvas, 10, 10)
	release(b.Canvas, 50, 30)

	ex := &exporter{window: win, board: b}

	pdf := &bufferCloser{}
	assert.Equal(t, "Exported 1 shapes as PDF", ex.write(pdf, "PDF", export.PDF))
	assert.True(t, pdf.closed)
	assert.True(t, bytes.HasPrefix(pdf.Bytes(), []byte("%PDF-")))

	png := &bufferCloser{}
	assert.Equal(t, "Exported 1 shapes as PNG", ex.write(png, "PNG", export.PNG))
	assert.True(t, png.closed)
	assert.NotZero(t, png.Len())

	assert.Equal(t, []shape.Record{shape.New(shape.Rectangle, 10, 10, 50, 30)}, slices.Collect(b.Controller.Store().All()))
}
