package videotex

import "fmt"

// attribute indexes one independently shadowed display attribute
type attribute int

const (
	attrTextColor attribute = iota
	attrBackground
	attrMode
	attrSize
	attrBlink
	attrUnderline
	attrVideo
	attrCursor
	attrIncrustation
	attrLineMask
	attributeCount
)

var attributeNames = [attributeCount]string{
	"text-color",
	"background",
	"mode",
	"size",
	"blink",
	"underline",
	"video",
	"cursor",
	"incrustation",
	"line-mask",
}

func (a attribute) String() string {
	if a >= 0 && a < attributeCount {
		return attributeNames[a]
	}
	return fmt.Sprintf("attribute(%d)", int(a))
}

// TerminalState shadows what the terminal is currently displaying with.
// Each attribute is held as the wire code that selects it, so a shadow
// comparison is a byte comparison.
type TerminalState struct {
	codes  [attributeCount]byte
	cursor Position
}

// newTerminalState returns the terminal's power-on defaults
func newTerminalState() TerminalState {
	var s TerminalState
	s.codes[attrTextColor] = TextColorBase + byte(White)
	s.codes[attrBackground] = BackgroundColorBase + byte(Black)
	s.codes[attrMode] = byte(ModeText)
	s.codes[attrSize] = byte(SizeNormal)
	s.codes[attrBlink] = BlinkOff
	s.codes[attrUnderline] = UnderlineOff
	s.codes[attrVideo] = byte(VideoStandard)
	s.codes[attrCursor] = CursorHide
	s.codes[attrIncrustation] = IncrustationOff
	s.codes[attrLineMask] = LineMaskOff
	s.cursor = Position{Col: 1, Row: 1}
	return s
}

// size returns the shadowed character size
func (s *TerminalState) size() Size {
	return Size(s.codes[attrSize])
}

// mode returns the shadowed character set
func (s *TerminalState) mode() Mode {
	return Mode(s.codes[attrMode])
}

// attributeSequence returns the bytes that select code for attr.
// Mode switches are bare control codes, everything else follows ESC.
func attributeSequence(attr attribute, code byte) []byte {
	if attr == attrMode {
		return []byte{code}
	}
	return []byte{ESC, code}
}

// applyIfChanged emits the sequence for code only when it differs from
// the shadowed value. The shadow is updated after the whole sequence was
// written, never before.
func (e *Encoder) applyIfChanged(attr attribute, code byte) (bool, error) {
	if e.state.codes[attr] == code {
		return false, nil
	}
	if err := e.write(attributeSequence(attr, code)...); err != nil {
		return false, fmt.Errorf("set %s: %w", attr, err)
	}
	e.state.codes[attr] = code
	return true, nil
}

func boolCode(on bool, onCode, offCode byte) byte {
	if on {
		return onCode
	}
	return offCode
}
