package videotex

import (
	"log"
	"strings"
)

// NativeScreen models a terminal's 40x24 display. It is what a Stream
// drives in the virtual Minitel and in tests.
type NativeScreen struct {
	cells  [Rows][Columns]Cell
	cursor Position
	attrs  Attributes

	graphic       bool
	cursorVisible bool
	incrustation  bool
	lineMask      bool

	// Last character drawn, repeated by REP
	last    Cell
	lastSet bool
	bells   int
	verbose bool
}

// Cell is one character position on the screen
type Cell struct {
	Char    rune
	Graphic bool
	Attrs   Attributes
}

// Attributes are the display attributes a cell was drawn with
type Attributes struct {
	Fg        Color
	Bg        Color
	Size      Size
	Blink     bool
	Underline bool
	Video     Video
}

func defaultAttributes() Attributes {
	return Attributes{Fg: White, Bg: Black, Size: SizeNormal, Video: VideoStandard}
}

// NewNativeScreen creates a blank screen in power-on state
func NewNativeScreen() *NativeScreen {
	s := &NativeScreen{}
	s.reset()
	return s
}

// SetVerbose logs Debug calls when enabled
func (s *NativeScreen) SetVerbose(v bool) {
	s.verbose = v
}

func (s *NativeScreen) reset() {
	s.attrs = defaultAttributes()
	s.cursor = Position{Col: 1, Row: 1}
	s.graphic = false
	s.clear()
}

func (s *NativeScreen) clear() {
	for r := range s.cells {
		for c := range s.cells[r] {
			s.cells[r][c] = Cell{Char: ' ', Attrs: defaultAttributes()}
		}
	}
}

// Draw places b from the selected character set. DEL is the full block
// in the mosaic set and is ignored in the text set.
func (s *NativeScreen) Draw(b byte) {
	if b == DEL && !s.graphic {
		return
	}
	cell := Cell{Char: rune(b), Attrs: s.attrs}
	if s.graphic {
		cell.Char = MosaicRune(b)
		cell.Graphic = true
	}
	s.put(cell)
}

func (s *NativeScreen) DrawSpecial(code byte) {
	r, ok := SpecialRune(code)
	if !ok {
		s.Debug("Unknown special character:", code)
		r = '?'
	}
	s.put(Cell{Char: r, Attrs: s.attrs})
}

func (s *NativeScreen) DrawComposed(r rune) {
	s.put(Cell{Char: r, Attrs: s.attrs})
}

func (s *NativeScreen) Repeat(count int) {
	if !s.lastSet {
		return
	}
	for i := 0; i < count; i++ {
		s.put(s.last)
	}
}

// put places cell at the cursor and advances it, wrapping to the next row
// and from the last row back to the first
func (s *NativeScreen) put(cell Cell) {
	s.cells[s.cursor.Row-1][s.cursor.Col-1] = cell
	s.last = cell
	s.lastSet = true

	width := cell.Attrs.Size.WidthFactor()
	if width == 2 && s.cursor.Col < Columns {
		s.cells[s.cursor.Row-1][s.cursor.Col] = cell
	}

	s.cursor.Col += width
	if s.cursor.Col > Columns {
		s.cursor.Col = 1
		s.cursor.Row++
		if s.cursor.Row > Rows {
			s.cursor.Row = 1
		}
	}
}

func (s *NativeScreen) Bell() {
	s.bells++
}

func (s *NativeScreen) CursorLeft() {
	if s.cursor.Col > 1 {
		s.cursor.Col--
	}
}

func (s *NativeScreen) CursorRight() {
	if s.cursor.Col < Columns {
		s.cursor.Col++
	}
}

func (s *NativeScreen) CursorDown() {
	if s.cursor.Row < Rows {
		s.cursor.Row++
	}
}

func (s *NativeScreen) CursorUp() {
	if s.cursor.Row > 1 {
		s.cursor.Row--
	}
}

func (s *NativeScreen) CarriageReturn() {
	s.cursor.Col = 1
}

func (s *NativeScreen) Home() {
	s.cursor = Position{Col: 1, Row: 1}
	s.attrs = defaultAttributes()
	s.graphic = false
}

func (s *NativeScreen) CursorPosition(row, col int) {
	s.cursor = Position{Col: col, Row: row}.Clamp()
}

func (s *NativeScreen) ClearScreen() {
	s.clear()
	s.cursor = Position{Col: 1, Row: 1}
}

func (s *NativeScreen) ClearLineEnd() {
	row := s.cursor.Row - 1
	for c := s.cursor.Col - 1; c < Columns; c++ {
		s.cells[row][c] = Cell{Char: ' ', Attrs: s.attrs}
	}
}

func (s *NativeScreen) ShiftOut() {
	s.graphic = true
}

func (s *NativeScreen) ShiftIn() {
	s.graphic = false
}

func (s *NativeScreen) SelectAttribute(code byte) {
	switch {
	case code >= TextColorBase && code < TextColorBase+8:
		s.attrs.Fg = Color(code - TextColorBase)
	case code >= BackgroundColorBase && code < BackgroundColorBase+8:
		s.attrs.Bg = Color(code - BackgroundColorBase)
	case code >= SizeNormalCode && code <= SizeDoubleCode:
		s.attrs.Size = Size(code)
	case code == VideoStandardCode || code == VideoInvertCode || code == VideoTransparentCode:
		s.attrs.Video = Video(code)
	default:
		switch code {
		case BlinkOn, BlinkOff:
			s.attrs.Blink = code == BlinkOn
		case UnderlineOn, UnderlineOff:
			s.attrs.Underline = code == UnderlineOn
		case CursorShow, CursorHide:
			s.cursorVisible = code == CursorShow
		case IncrustationOn, IncrustationOff:
			s.incrustation = code == IncrustationOn
		case LineMaskOn, LineMaskOff:
			s.lineMask = code == LineMaskOn
		default:
			s.Debug("Unknown attribute:", code)
		}
	}
}

func (s *NativeScreen) Debug(args ...interface{}) {
	if s.verbose {
		log.Println(args...)
	}
}

// GetDisplay returns the screen as one string per row, trailing spaces
// trimmed
func (s *NativeScreen) GetDisplay() []string {
	lines := make([]string, Rows)
	for r := range s.cells {
		var b strings.Builder
		for _, cell := range s.cells[r] {
			b.WriteRune(cell.Char)
		}
		lines[r] = strings.TrimRight(b.String(), " ")
	}
	return lines
}

// GetCell returns the cell at p, which must be on the screen
func (s *NativeScreen) GetCell(p Position) Cell {
	p = p.Clamp()
	return s.cells[p.Row-1][p.Col-1]
}

// GetCursor returns the current cursor position
func (s *NativeScreen) GetCursor() Position {
	return s.cursor
}

// CursorVisible reports whether the cursor is shown
func (s *NativeScreen) CursorVisible() bool {
	return s.cursorVisible
}

// Bells returns how many times the bell rang
func (s *NativeScreen) Bells() int {
	return s.bells
}

// Attributes returns the attributes the next character will be drawn with
func (s *NativeScreen) Attributes() Attributes {
	return s.attrs
}

// Graphic reports whether the mosaic set is selected
func (s *NativeScreen) Graphic() bool {
	return s.graphic
}
