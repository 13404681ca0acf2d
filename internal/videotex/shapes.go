package videotex

import "iter"

// Rect outlines a w x h rectangle of glyph with its top-left corner at
// topLeft. Horizontal edges are sent as compressed runs; vertical edges
// are addressed cell by cell because a repeat only advances horizontally.
func (e *Encoder) Rect(glyph rune, topLeft Position, w, h int) error {
	if w <= 0 || h <= 0 {
		return nil
	}

	if err := e.MoveTo(topLeft); err != nil {
		return err
	}
	if err := e.PrintRun(glyph, w); err != nil {
		return err
	}
	if err := e.MoveTo(topLeft.Offset(0, h-1)); err != nil {
		return err
	}
	if err := e.PrintRun(glyph, w); err != nil {
		return err
	}

	for _, col := range []int{0, w - 1} {
		for row := 0; row < h; row++ {
			if err := e.MoveTo(topLeft.Offset(col, row)); err != nil {
				return err
			}
			if err := e.PrintChar(glyph); err != nil {
				return err
			}
		}
	}
	return nil
}

// spiralTurns are the four headings of a clockwise spiral: right, down,
// left, up
var spiralTurns = [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

// SpiralPath yields the cells of a square spiral around center. Legs run
// right k, down k, left k+1, up k+1 with k growing by two per lap, and the
// path ends before the first leg longer than size or at the first cell
// off the screen. No cell is visited twice.
func SpiralPath(center Position, size int) iter.Seq[Position] {
	return func(yield func(Position) bool) {
		if size < 0 {
			return
		}
		p := center.Clamp()
		if !yield(p) {
			return
		}

		for k := 1; ; k += 2 {
			legs := [4]int{k, k, k + 1, k + 1}
			for i, heading := range spiralTurns {
				if legs[i] > size {
					return
				}
				for j := 0; j < legs[i]; j++ {
					p = p.Offset(heading[0], heading[1])
					if !p.InBounds() || !yield(p) {
						return
					}
				}
			}
		}
	}
}

// Spiral prints glyph on every cell of SpiralPath(center, size)
func (e *Encoder) Spiral(center Position, size int, glyph rune) error {
	for p := range SpiralPath(center, size) {
		if e.state.cursor != p {
			if err := e.MoveTo(p); err != nil {
				return err
			}
		}
		if err := e.PrintChar(glyph); err != nil {
			return err
		}
	}
	return nil
}
