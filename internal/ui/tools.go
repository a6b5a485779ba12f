package ui

import (
	"log"

	"ShapeCanvas/internal/shape"
	"ShapeCanvas/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const instructions = "Select any shape and draw by dragging mouse on canvas."

// Toolbar holds the controls above the canvas.
type Toolbar struct {
	Selector *widget.Select
	Clear    *widget.Button
	Actions  *widget.Toolbar
}

// NewToolbar wires the shape drop-down and the Clear button straight to the
// controller. The export callbacks are invoked from the toolbar actions.
func NewToolbar(c *state.Controller, onExportPDF, onExportPNG func()) *Toolbar {
	selector := widget.NewSelect(shape.Labels(), func(label string) {
		kind, err := shape.ParseKind(label)
		if err != nil {
			log.Printf("[UI] Ignoring selection: %v", err)
			return
		}
		c.Select(kind)
	})
	selector.SetSelected(c.Selected().String())

	clearButton := widget.NewButtonWithIcon("Clear Canvas", theme.DeleteIcon(), c.Clear)

	actions := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentSaveIcon(), onExportPDF), // PDF
		widget.NewToolbarAction(theme.FileImageIcon(), onExportPNG),    // PNG
	)

	return &Toolbar{Selector: selector, Clear: clearButton, Actions: actions}
}

func (t *Toolbar) Build() fyne.CanvasObject {
	return container.NewHBox(
		widget.NewLabel(instructions),
		t.Selector,
		t.Clear,
		layout.NewSpacer(),
		widget.NewSeparator(),
		widget.NewLabel("Export:"),
		t.Actions,
	)
}
