package videotex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minitel/internal/videotex"
)

// render runs the encoder's output through a virtual screen
func render(t *testing.T, draw func(*videotex.Encoder) error) (*videotex.NativeScreen, *videotex.Encoder) {
	t.Helper()
	enc, mem := newTestEncoder()
	require.NoError(t, draw(enc))

	screen := videotex.NewNativeScreen()
	videotex.NewStream(screen).Feed(mem.Written)
	return screen, enc
}

func TestCursorTrackingMatchesScreen(t *testing.T) {
	screen, enc := render(t, func(e *videotex.Encoder) error {
		if err := e.MoveTo(videotex.Pos(35, 3)); err != nil {
			return err
		}
		if err := e.PrintString("wrapping text", nil); err != nil {
			return err
		}
		if err := e.Move(videotex.Down, 2); err != nil {
			return err
		}
		if err := e.PrintRun('-', 70); err != nil {
			return err
		}
		return e.Move(videotex.Left, 4)
	})

	assert.Equal(t, enc.Position(), screen.GetCursor())
}

func TestAttributesReachScreen(t *testing.T) {
	screen, _ := render(t, func(e *videotex.Encoder) error {
		if err := e.SetTextColor(videotex.Red); err != nil {
			return err
		}
		if err := e.SetBackgroundColor(videotex.Blue); err != nil {
			return err
		}
		if err := e.SetUnderline(true); err != nil {
			return err
		}
		if err := e.SetCursorVisible(true); err != nil {
			return err
		}
		return e.PrintString("Hi", &videotex.TextOptions{Placement: videotex.AtAnchor, Anchor: videotex.Center})
	})

	cell := screen.GetCell(videotex.Pos(20, 12))
	assert.Equal(t, 'H', cell.Char)
	assert.Equal(t, videotex.Red, cell.Attrs.Fg)
	assert.Equal(t, videotex.Blue, cell.Attrs.Bg)
	assert.True(t, cell.Attrs.Underline)
	assert.True(t, screen.CursorVisible())
}

func TestSpecialsAndMosaicsReachScreen(t *testing.T) {
	screen, _ := render(t, func(e *videotex.Encoder) error {
		if err := e.PrintString("½°", nil); err != nil {
			return err
		}
		return e.PrintGraphic("111111", nil)
	})

	assert.Equal(t, '½', screen.GetCell(videotex.Pos(1, 1)).Char)
	assert.Equal(t, '°', screen.GetCell(videotex.Pos(2, 1)).Char)

	cell := screen.GetCell(videotex.Pos(3, 1))
	assert.True(t, cell.Graphic)
	assert.Equal(t, '█', cell.Char)
	assert.True(t, screen.Graphic())
}

func TestVerticalTextOnScreen(t *testing.T) {
	screen, enc := render(t, func(e *videotex.Encoder) error {
		return e.PrintString("OUI", &videotex.TextOptions{Placement: videotex.AtPosition, Position: videotex.Pos(10, 5), Orientation: videotex.Vertical})
	})

	assert.Equal(t, 'O', screen.GetCell(videotex.Pos(10, 5)).Char)
	assert.Equal(t, 'U', screen.GetCell(videotex.Pos(10, 6)).Char)
	assert.Equal(t, 'I', screen.GetCell(videotex.Pos(10, 7)).Char)
	assert.Equal(t, enc.Position(), screen.GetCursor())
}

func TestScreenClearAndBell(t *testing.T) {
	screen, _ := render(t, func(e *videotex.Encoder) error {
		if err := e.PrintString("gone", nil); err != nil {
			return err
		}
		if err := e.ClearScreen(); err != nil {
			return err
		}
		return e.Bip(0)
	})

	assert.Equal(t, "", screen.GetDisplay()[0])
	assert.Equal(t, 1, screen.Bells())
}

func TestScreenLineEnd(t *testing.T) {
	screen, _ := render(t, func(e *videotex.Encoder) error {
		if err := e.PrintString("keep this", nil); err != nil {
			return err
		}
		if err := e.MoveTo(videotex.Pos(5, 1)); err != nil {
			return err
		}
		return e.LineEnd()
	})

	assert.Equal(t, "keep", screen.GetDisplay()[0])
}

func TestAccentsKeepColor(t *testing.T) {
	screen, enc := render(t, func(e *videotex.Encoder) error {
		if err := e.SetTextColor(videotex.Cyan); err != nil {
			return err
		}
		return e.PrintString("été x", nil)
	})

	assert.Equal(t, "été x", screen.GetDisplay()[0])
	for col := 1; col <= 5; col++ {
		assert.Equal(t, videotex.Cyan, screen.GetCell(videotex.Pos(col, 1)).Attrs.Fg, "column %d", col)
	}
	assert.False(t, screen.GetCell(videotex.Pos(5, 1)).Attrs.Blink)
	assert.Equal(t, enc.Position(), screen.GetCursor())
}

func TestWrapPastLastRow(t *testing.T) {
	screen, enc := render(t, func(e *videotex.Encoder) error {
		if err := e.MoveTo(videotex.Pos(39, 24)); err != nil {
			return err
		}
		return e.PrintString("xyz", nil)
	})

	assert.Equal(t, videotex.Pos(2, 1), enc.Position())
	assert.Equal(t, enc.Position(), screen.GetCursor())
	assert.Equal(t, 'z', screen.GetCell(videotex.Pos(1, 1)).Char)
}

func TestVerticalTextAtRightEdge(t *testing.T) {
	screen, enc := render(t, func(e *videotex.Encoder) error {
		return e.PrintString("ABC", &videotex.TextOptions{Placement: videotex.AtAnchor, Anchor: videotex.TopRight, Orientation: videotex.Vertical})
	})

	assert.Equal(t, 'A', screen.GetCell(videotex.Pos(40, 1)).Char)
	assert.Equal(t, 'B', screen.GetCell(videotex.Pos(40, 2)).Char)
	assert.Equal(t, 'C', screen.GetCell(videotex.Pos(40, 3)).Char)
	assert.Equal(t, "", screen.GetDisplay()[3])
	assert.Equal(t, enc.Position(), screen.GetCursor())
}

func TestVerticalTextSkipsUnsupported(t *testing.T) {
	screen, enc := render(t, func(e *videotex.Encoder) error {
		return e.PrintString("A€B", &videotex.TextOptions{Placement: videotex.AtPosition, Position: videotex.Pos(10, 5), Orientation: videotex.Vertical})
	})

	assert.Equal(t, 'A', screen.GetCell(videotex.Pos(10, 5)).Char)
	assert.Equal(t, 'B', screen.GetCell(videotex.Pos(10, 6)).Char)
	assert.Equal(t, videotex.Pos(10, 7), enc.Position())
	assert.Equal(t, enc.Position(), screen.GetCursor())
}

func TestVerticalDoubleWidthAtRightEdge(t *testing.T) {
	screen, enc := render(t, func(e *videotex.Encoder) error {
		if err := e.SetSize(videotex.SizeDoubleWidth); err != nil {
			return err
		}
		return e.PrintString("AB", &videotex.TextOptions{Placement: videotex.AtAnchor, Anchor: videotex.TopRight, Orientation: videotex.Vertical})
	})

	assert.Equal(t, 'A', screen.GetCell(videotex.Pos(39, 1)).Char)
	assert.Equal(t, 'B', screen.GetCell(videotex.Pos(39, 2)).Char)
	assert.Equal(t, enc.Position(), screen.GetCursor())
}
