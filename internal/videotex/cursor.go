package videotex

import "fmt"

// Position returns the cursor position the encoder last addressed,
// advanced by whatever it has printed since
func (e *Encoder) Position() Position {
	return e.state.cursor
}

// MoveTo addresses p directly. Positions off the screen are clamped.
func (e *Encoder) MoveTo(p Position) error {
	p = p.Clamp()
	if err := e.write(US, AddressBias+byte(p.Row), AddressBias+byte(p.Col)); err != nil {
		return err
	}
	e.state.cursor = p
	return nil
}

// Move steps the cursor n cells in dir. A move that would leave the
// screen stops at its edge.
func (e *Encoder) Move(dir Direction, n int) error {
	from := e.state.cursor
	var to Position
	switch dir {
	case Left:
		to = from.Offset(-n, 0)
	case Right:
		to = from.Offset(n, 0)
	case Up:
		to = from.Offset(0, -n)
	case Down:
		to = from.Offset(0, n)
	default:
		return fmt.Errorf("%w: %d", ErrInvalidDirection, byte(dir))
	}
	if n <= 0 {
		return nil
	}
	to = to.Clamp()

	steps := abs(to.Col-from.Col) + abs(to.Row-from.Row)
	if err := e.step(byte(dir), steps); err != nil {
		return err
	}
	e.state.cursor = to
	return nil
}

// step emits a directional code steps times. The terminal only repeats
// displayable characters, so moves cannot be compressed with REP.
func (e *Encoder) step(code byte, steps int) error {
	for i := 0; i < steps; i++ {
		if err := e.write(code); err != nil {
			return err
		}
	}
	return nil
}

// MoveToAnchor moves to where content of contentWidth columns must start
// to sit at anchor
func (e *Encoder) MoveToAnchor(a Anchor, contentWidth int) error {
	return e.MoveTo(a.Resolve(contentWidth))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
