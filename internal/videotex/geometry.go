package videotex

import "fmt"

// Screen dimensions of a Videotex terminal. Coordinates are 1-based.
const (
	Columns = 40
	Rows    = 24
)

// Position is a 1-based (column, row) cell address
type Position struct {
	Col int
	Row int
}

// Pos is shorthand for Position{Col: col, Row: row}
func Pos(col, row int) Position {
	return Position{Col: col, Row: row}
}

// Clamp returns p moved to the nearest cell inside the screen
func (p Position) Clamp() Position {
	return Position{Col: clamp(p.Col, 1, Columns), Row: clamp(p.Row, 1, Rows)}
}

// InBounds reports whether p addresses a cell on the screen
func (p Position) InBounds() bool {
	return p.Col >= 1 && p.Col <= Columns && p.Row >= 1 && p.Row <= Rows
}

// Offset returns p shifted by dc columns and dr rows, without clamping
func (p Position) Offset(dc, dr int) Position {
	return Position{Col: p.Col + dc, Row: p.Row + dr}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Anchor names a screen corner or the center
type Anchor int

const (
	TopLeft Anchor = iota
	TopRight
	BottomLeft
	BottomRight
	Center
)

func (a Anchor) String() string {
	switch a {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	case Center:
		return "center"
	default:
		return "unknown"
	}
}

// Resolve returns the position at which content of the given width must
// start so that it ends flush with the anchor's edge. The result is clamped.
func (a Anchor) Resolve(contentWidth int) Position {
	if contentWidth < 0 {
		contentWidth = 0
	}
	right := Columns - contentWidth + 1

	var p Position
	switch a {
	case TopRight:
		p = Position{Col: right, Row: 1}
	case BottomLeft:
		p = Position{Col: 1, Row: Rows}
	case BottomRight:
		p = Position{Col: right, Row: Rows}
	case Center:
		p = Position{Col: (Columns-contentWidth)/2 + 1, Row: Rows / 2}
	default:
		p = Position{Col: 1, Row: 1}
	}
	return p.Clamp()
}
