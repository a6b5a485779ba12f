package state

import (
	"log"

	"ShapeCanvas/internal/shape"
)

type dragState struct {
	active             bool
	startX, startY     int
	currentX, currentY int
}

// Controller turns pointer events into shape records. It owns the drag in
// progress and the selected kind; the store it appends to is passed in.
type Controller struct {
	store    *Store
	selected shape.Kind
	drag     dragState

	OnRedraw func()
	OnAppend func(rec shape.Record)
	OnClear  func()
}

func NewController(store *Store) *Controller {
	return &Controller{
		store:    store,
		selected: shape.Line,
	}
}

func (c *Controller) Store() *Store { return c.store }

func (c *Controller) Selected() shape.Kind { return c.selected }

// Select changes the kind used for the preview and for every shape
// finished from now on.
func (c *Controller) Select(kind shape.Kind) {
	if c.selected == kind {
		return
	}
	c.selected = kind
	if c.drag.active {
		c.redraw()
	}
}

func (c *Controller) Dragging() bool { return c.drag.active }

// PointerDown starts a drag at (x, y). A press during a drag restarts it.
func (c *Controller) PointerDown(x, y int) {
	c.drag = dragState{
		active:   true,
		startX:   x,
		startY:   y,
		currentX: x,
		currentY: y,
	}
	c.redraw()
}

// PointerMove follows the pointer while dragging. It never touches the store.
func (c *Controller) PointerMove(x, y int) {
	if !c.drag.active {
		return
	}
	c.drag.currentX, c.drag.currentY = x, y
	c.redraw()
}

// PointerUp finishes the drag and stores the shape. A release without a
// matching press is ignored.
func (c *Controller) PointerUp(x, y int) {
	if !c.drag.active {
		return
	}
	c.drag.currentX, c.drag.currentY = x, y
	rec := c.preview()
	c.drag = dragState{}

	c.store.Append(rec)
	log.Printf("[CANVAS] Added %s (%d,%d)-(%d,%d), %d shapes", rec.Kind, rec.X1, rec.Y1, rec.X2, rec.Y2, c.store.Len())
	if c.OnAppend != nil {
		c.OnAppend(rec)
	}
	c.redraw()
}

// PointerUpAtLast finishes the drag at the last known pointer position.
// Used when the toolkit reports the end of a drag without a location.
func (c *Controller) PointerUpAtLast() {
	c.PointerUp(c.drag.currentX, c.drag.currentY)
}

// Clear empties the store. An unfinished drag is kept.
func (c *Controller) Clear() {
	c.store.Clear()
	log.Println("[CANVAS] Cleared")
	if c.OnClear != nil {
		c.OnClear()
	}
	c.redraw()
}

// InProgress returns the shape being dragged, if any.
func (c *Controller) InProgress() (shape.Record, bool) {
	if !c.drag.active {
		return shape.Record{}, false
	}
	return c.preview(), true
}

func (c *Controller) preview() shape.Record {
	return shape.New(c.selected, c.drag.startX, c.drag.startY, c.drag.currentX, c.drag.currentY)
}

func (c *Controller) redraw() {
	if c.OnRedraw != nil {
		c.OnRedraw()
	}
}
