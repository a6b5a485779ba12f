package ui

import (
	"fmt"

	"ShapeCanvas/internal/shape"
	"ShapeCanvas/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const (
	WindowTitle   = "Interactive Drawing Canvas"
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Board ties one canvas, its controller and the status line together.
type Board struct {
	Controller *state.Controller
	Canvas     *CanvasWidget
	Toolbar    *Toolbar
	Status     *widget.Label
}

func NewBoard(window fyne.Window) *Board {
	ctrl := state.NewController(state.NewStore())
	b := &Board{
		Controller: ctrl,
		Canvas:     NewCanvasWidget(ctrl),
		Status:     widget.NewLabel("Ready"),
	}

	ex := &exporter{window: window, board: b}
	b.Toolbar = NewToolbar(ctrl, ex.savePDF, ex.savePNG)

	ctrl.OnAppend = func(shape.Record) { b.showCount() }
	ctrl.OnClear = b.showCount
	return b
}

func (b *Board) SetStatus(text string) {
	b.Status.SetText(text)
}

func (b *Board) showCount() {
	n := b.Controller.Store().Len()
	if n == 1 {
		b.SetStatus("1 shape")
		return
	}
	b.SetStatus(fmt.Sprintf("%d shapes", n))
}

func (b *Board) Content() fyne.CanvasObject {
	return container.NewBorder(b.Toolbar.Build(), b.Status, nil, nil, b.Canvas)
}

func RunApp() {
	myApp := app.New()
	myWindow := myApp.NewWindow(WindowTitle)
	myWindow.Resize(fyne.NewSize(DefaultWidth, DefaultHeight))

	board := NewBoard(myWindow)
	myWindow.SetContent(board.Content())
	myWindow.ShowAndRun()
}
