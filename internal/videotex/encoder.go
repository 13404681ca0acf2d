package videotex

import (
	"errors"
	"fmt"
	"io"
	"math/bits"
	"time"

	runewidth "github.com/mattn/go-runewidth"
)

// GlyphPolicy decides what PrintChar does with a character that has no
// protocol representation
type GlyphPolicy int

const (
	// SkipGlyph emits nothing for the character
	SkipGlyph GlyphPolicy = iota
	// PlaceholderGlyph prints the encoder's placeholder instead
	PlaceholderGlyph
	// StripGlyph prints the character's unaccented base letter when that
	// is printable, and skips it otherwise
	StripGlyph
)

// Encoder translates drawing operations into the Videotex byte protocol.
// It owns the terminal's shadow state and is not safe for concurrent use.
type Encoder struct {
	w     io.ByteWriter
	state TerminalState

	policy      GlyphPolicy
	placeholder rune
	parity      bool
	sleep       func(time.Duration)

	// lastGlyph is the last single-byte character written, which is what
	// the terminal repeats on REP. Zero means none.
	lastGlyph byte
}

// Option configures an Encoder
type Option func(*Encoder)

// WithGlyphPolicy sets how unsupported characters are handled
func WithGlyphPolicy(policy GlyphPolicy, placeholder rune) Option {
	return func(e *Encoder) {
		e.policy = policy
		e.placeholder = placeholder
	}
}

// WithParity sets the even parity bit on every byte written, for links
// running 8N1 towards a terminal that expects 7E1
func WithParity() Option {
	return func(e *Encoder) {
		e.parity = true
	}
}

// WithSleeper replaces time.Sleep for the pause after a bell
func WithSleeper(sleep func(time.Duration)) Option {
	return func(e *Encoder) {
		e.sleep = sleep
	}
}

// NewEncoder returns an encoder writing to w, with its shadow set to the
// terminal's power-on defaults
func NewEncoder(w io.ByteWriter, opts ...Option) *Encoder {
	e := &Encoder{
		w:           w,
		state:       newTerminalState(),
		placeholder: '?',
		sleep:       time.Sleep,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// write sends bs in order, stopping at the first failure
func (e *Encoder) write(bs ...byte) error {
	for _, b := range bs {
		if e.parity {
			b = EvenParity(b)
		}
		if err := e.w.WriteByte(b); err != nil {
			return &TransportError{Op: "write", Err: err}
		}
	}
	return nil
}

// EvenParity sets bit 7 so that the byte has an even number of ones
func EvenParity(b byte) byte {
	b &= 0x7f
	if bits.OnesCount8(b)%2 == 1 {
		b |= 0x80
	}
	return b
}

// SetTextColor selects the foreground color
func (e *Encoder) SetTextColor(c Color) error {
	_, err := e.applyIfChanged(attrTextColor, TextColorBase+byte(c&7))
	return err
}

// SetBackgroundColor selects the background color
func (e *Encoder) SetBackgroundColor(c Color) error {
	_, err := e.applyIfChanged(attrBackground, BackgroundColorBase+byte(c&7))
	return err
}

// UseDefaultColors restores white text on a black background
func (e *Encoder) UseDefaultColors() error {
	if err := e.SetTextColor(White); err != nil {
		return err
	}
	return e.SetBackgroundColor(Black)
}

// SetMode switches between the text and mosaic character sets
func (e *Encoder) SetMode(m Mode) error {
	_, err := e.applyIfChanged(attrMode, byte(m))
	return err
}

// SetSize selects the character size
func (e *Encoder) SetSize(s Size) error {
	_, err := e.applyIfChanged(attrSize, byte(s))
	return err
}

func (e *Encoder) SetBlink(on bool) error {
	_, err := e.applyIfChanged(attrBlink, boolCode(on, BlinkOn, BlinkOff))
	return err
}

func (e *Encoder) SetUnderline(on bool) error {
	_, err := e.applyIfChanged(attrUnderline, boolCode(on, UnderlineOn, UnderlineOff))
	return err
}

func (e *Encoder) SetVideo(v Video) error {
	_, err := e.applyIfChanged(attrVideo, byte(v))
	return err
}

func (e *Encoder) SetCursorVisible(visible bool) error {
	_, err := e.applyIfChanged(attrCursor, boolCode(visible, CursorShow, CursorHide))
	return err
}

// SetIncrustation toggles incrustation (overlay on a video signal)
func (e *Encoder) SetIncrustation(on bool) error {
	_, err := e.applyIfChanged(attrIncrustation, boolCode(on, IncrustationOn, IncrustationOff))
	return err
}

// SetLineMask toggles line masking
func (e *Encoder) SetLineMask(on bool) error {
	_, err := e.applyIfChanged(attrLineMask, boolCode(on, LineMaskOn, LineMaskOff))
	return err
}

// Refresh re-sends every shadowed attribute, whether or not it changed.
// Use it to resynchronise the terminal after a transport failure.
func (e *Encoder) Refresh() error {
	for attr := attribute(0); attr < attributeCount; attr++ {
		if err := e.write(attributeSequence(attr, e.state.codes[attr])...); err != nil {
			return fmt.Errorf("refresh %s: %w", attr, err)
		}
	}
	return nil
}

// PrintChar writes one character at the cursor. Characters without a
// protocol representation are handled by the glyph policy; under the
// default policy they are skipped without error.
func (e *Encoder) PrintChar(r rune) error {
	_, err := e.printChar(r)
	return err
}

// printChar reports whether anything was displayed
func (e *Encoder) printChar(r rune) (bool, error) {
	bs, err := MapChar(r)
	if err != nil {
		if !errors.Is(err, ErrUnsupportedGlyph) {
			return false, err
		}
		if bs = e.substitute(r); bs == nil {
			return false, nil
		}
	}
	if err := e.emitGlyph(bs); err != nil {
		return false, err
	}
	return true, nil
}

// substitute applies the glyph policy, returning nil to skip
func (e *Encoder) substitute(r rune) []byte {
	var alt rune
	switch e.policy {
	case PlaceholderGlyph:
		alt = e.placeholder
	case StripGlyph:
		alt = StripAccent(r)
	default:
		return nil
	}
	if alt == r {
		return nil
	}
	bs, err := MapChar(alt)
	if err != nil {
		return nil
	}
	return bs
}

// emitGlyph writes the bytes of one displayed character and advances the
// tracked cursor
func (e *Encoder) emitGlyph(bs []byte) error {
	if err := e.write(bs...); err != nil {
		return err
	}
	e.lastGlyph = 0
	if len(bs) == 1 {
		e.lastGlyph = bs[0]
	}
	e.advance(1)
	return nil
}

// Placement selects where PrintString starts
type Placement int

const (
	// AtCursor prints from wherever the cursor is
	AtCursor Placement = iota
	// AtPosition moves to TextOptions.Position first
	AtPosition
	// AtAnchor moves to TextOptions.Anchor, sized to the string
	AtAnchor
)

// TextOptions configures PrintString and PrintGraphic. A nil *TextOptions
// prints horizontally at the cursor.
type TextOptions struct {
	Placement   Placement
	Position    Position
	Anchor      Anchor
	Orientation Orientation
}

// PrintString switches to text mode and prints s. With a vertical
// orientation the cursor returns below each printed character: by a left
// and a down step, or by direct addressing when the character ended at the
// right edge and the cursor wrapped. Skipped glyphs leave the cursor alone.
func (e *Encoder) PrintString(s string, opts *TextOptions) error {
	if opts == nil {
		opts = &TextOptions{}
	}
	if err := e.SetMode(ModeText); err != nil {
		return err
	}
	if err := e.place(opts, e.contentWidth(s, opts.Orientation)); err != nil {
		return err
	}

	for _, r := range s {
		at := e.state.cursor
		printed, err := e.printChar(r)
		if err != nil {
			return err
		}
		if printed && opts.Orientation == Vertical {
			if err := e.stepDown(at); err != nil {
				return err
			}
		}
	}
	return nil
}

// contentWidth is the number of columns s occupies once printed
func (e *Encoder) contentWidth(s string, o Orientation) int {
	factor := e.state.size().WidthFactor()
	if o == Vertical {
		return factor
	}
	return runewidth.StringWidth(s) * factor
}

// place performs the cursor move requested by opts
func (e *Encoder) place(opts *TextOptions, width int) error {
	switch opts.Placement {
	case AtPosition:
		return e.MoveTo(opts.Position)
	case AtAnchor:
		return e.MoveToAnchor(opts.Anchor, width)
	}
	return nil
}

// stepDown moves to the cell below at, where the last character was
// printed
func (e *Encoder) stepDown(at Position) error {
	factor := e.state.size().WidthFactor()
	below := Position{Col: at.Col, Row: at.Row + 1}.Clamp()
	if at.Col+factor > Columns {
		return e.MoveTo(below)
	}

	seq := make([]byte, 0, factor+1)
	for i := 0; i < factor; i++ {
		seq = append(seq, BS)
	}
	if err := e.write(append(seq, LF)...); err != nil {
		return err
	}
	e.state.cursor = below
	return nil
}

// PrintGraphic switches to mosaic mode and prints the 2x3 block described
// by pattern (see GraphicChar)
func (e *Encoder) PrintGraphic(pattern string, opts *TextOptions) error {
	b, err := GraphicChar(pattern)
	if err != nil {
		return err
	}
	if opts == nil {
		opts = &TextOptions{}
	}
	if err := e.SetMode(ModeGraphic); err != nil {
		return err
	}
	if err := e.place(opts, e.state.size().WidthFactor()); err != nil {
		return err
	}
	return e.emitGlyph([]byte{b})
}

// Repeat makes the terminal display c count more times. The terminal
// repeats the last character it received, so c must be the last glyph
// printed: a repeat on a fresh encoder, or after a multi-byte character,
// fails with ErrRepeatWithoutGlyph until c itself was printed with
// PrintChar. Use PrintRun to print a whole run. The sequence is always
// two bytes long.
func (e *Encoder) Repeat(c byte, count int) error {
	if count < 0 || count > MaxRepeat {
		return fmt.Errorf("%w: %d (max %d)", ErrRepeatCountOutOfRange, count, MaxRepeat)
	}
	if e.lastGlyph == 0 || e.lastGlyph != c {
		return fmt.Errorf("%w: %q", ErrRepeatWithoutGlyph, c)
	}
	if err := e.write(REP, RepeatBias+byte(count)); err != nil {
		return err
	}
	e.advance(count)
	return nil
}

// PrintRun prints r n times, compressing the run with repeat sequences
// when r is a single-byte character
func (e *Encoder) PrintRun(r rune, n int) error {
	if n <= 0 {
		return nil
	}
	if err := e.PrintChar(r); err != nil {
		return err
	}
	remaining := n - 1

	bs, err := MapChar(r)
	if err != nil || len(bs) != 1 || e.lastGlyph != bs[0] {
		for ; remaining > 0; remaining-- {
			if err := e.PrintChar(r); err != nil {
				return err
			}
		}
		return nil
	}

	for remaining > 0 {
		chunk := min(remaining, MaxRepeat)
		if err := e.Repeat(bs[0], chunk); err != nil {
			return err
		}
		remaining -= chunk
	}
	return nil
}

// Bip rings the terminal's bell and then pauses for d
func (e *Encoder) Bip(d time.Duration) error {
	if err := e.write(BEL); err != nil {
		return err
	}
	if d > 0 {
		e.sleep(d)
	}
	return nil
}

// ClearScreen erases the screen and homes the cursor
func (e *Encoder) ClearScreen() error {
	if err := e.write(FF); err != nil {
		return err
	}
	e.state.cursor = Position{Col: 1, Row: 1}
	return nil
}

// Home returns the cursor to the first column of its row
func (e *Encoder) Home() error {
	if err := e.write(CR); err != nil {
		return err
	}
	e.state.cursor.Col = 1
	return nil
}

// LineEnd clears from the cursor to the end of the row
func (e *Encoder) LineEnd() error {
	return e.write(CAN)
}

// advance moves the tracked cursor past n printed characters. Like the
// terminal in page mode, it wraps from the right edge to the next row and
// from the last row back to the first.
func (e *Encoder) advance(n int) {
	cols := n * e.state.size().WidthFactor()
	idx := (e.state.cursor.Row-1)*Columns + (e.state.cursor.Col - 1) + cols
	idx %= Columns * Rows
	e.state.cursor = Position{Col: idx%Columns + 1, Row: idx/Columns + 1}
}
