package shape

import "fmt"

// Kind is the closed set of shapes the canvas can draw.
type Kind int

const (
	Line Kind = iota
	Rectangle
	Ellipse
)

var kindNames = [...]string{
	Line:      "Line",
	Rectangle: "Rectangle",
	Ellipse:   "Ellipse",
}

// Kinds returns every kind in drop-down order.
func Kinds() []Kind {
	return []Kind{Line, Rectangle, Ellipse}
}

// Labels returns the display label of every kind, in the order of Kinds.
func Labels() []string {
	kinds := Kinds()
	labels := make([]string, 0, len(kinds))
	for _, k := range kinds {
		labels = append(labels, k.String())
	}
	return labels
}

func (k Kind) Valid() bool {
	return k >= Line && k <= Ellipse
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind maps a display label back to its Kind.
func ParseKind(label string) (Kind, error) {
	for _, k := range Kinds() {
		if k.String() == label {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown shape kind %q", label)
}

// Record is one finished shape: a kind plus the press and release points.
type Record struct {
	Kind   Kind
	X1, Y1 int
	X2, Y2 int
}

func New(kind Kind, x1, y1, x2, y2 int) Record {
	return Record{Kind: kind, X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// Bounds is a box with a top-left corner and non-negative size.
type Bounds struct {
	X, Y int
	W, H int
}

// Bounds normalizes the two corners so the result does not depend on
// drag direction.
func (r Record) Bounds() Bounds {
	return Normalize(r.X1, r.Y1, r.X2, r.Y2)
}

func Normalize(x1, y1, x2, y2 int) Bounds {
	return Bounds{
		X: min(x1, x2),
		Y: min(y1, y2),
		W: abs(x2 - x1),
		H: abs(y2 - y1),
	}
}

func (b Bounds) Empty() bool {
	return b.W == 0 || b.H == 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
