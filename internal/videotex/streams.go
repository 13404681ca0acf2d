package videotex

// Stream parses the Videotex byte protocol and dispatches to a Screen.
// It is the decoding counterpart of Encoder.
type Stream struct {
	listener Screen

	// Parser state
	state  ParserState
	row    int  // first byte of a direct address
	accent byte // ESC code that may be an accent prefix

	// Event mappings
	basic map[byte]string
}

type ParserState int

const (
	StateGround ParserState = iota
	StateEscape
	StateSpecial
	StateRepeat
	StateAddressRow
	StateAddressCol
	StateAccent
)

func NewStream(screen Screen) *Stream {
	return &Stream{
		listener: screen,
		state:    StateGround,

		basic: map[byte]string{
			BEL: "bell",
			BS:  "cursor_left",
			HT:  "cursor_right",
			LF:  "cursor_down",
			VT:  "cursor_up",
			FF:  "clear_screen",
			CR:  "carriage_return",
			SO:  "shift_out",
			SI:  "shift_in",
			CAN: "clear_line_end",
			RS:  "home",
		},
	}
}

// Feed parses data, which may split sequences at any byte
func (s *Stream) Feed(data []byte) {
	for _, b := range data {
		s.feedByte(b & 0x7f)
	}
}

func (s *Stream) feedByte(b byte) {
	switch s.state {
	case StateGround:
		switch b {
		case ESC:
			s.state = StateEscape
		case SS2:
			s.state = StateSpecial
		case REP:
			s.state = StateRepeat
		case US:
			s.state = StateAddressRow
		case NUL:
		default:
			if handler, ok := s.basic[b]; ok {
				s.dispatch(handler)
			} else if b >= 0x20 {
				s.listener.Draw(b)
			} else {
				s.listener.Debug("Unknown control:", b)
			}
		}

	case StateEscape:
		if isAccentCode(b) {
			s.accent = b
			s.state = StateAccent
			return
		}
		s.listener.SelectAttribute(b)
		s.state = StateGround

	case StateAccent:
		// Accent codes share values with color and blink codes; only a
		// permitted base letter right after makes it an accent
		s.state = StateGround
		if r, ok := ComposeAccent(s.accent, rune(b)); ok {
			s.listener.DrawComposed(r)
			return
		}
		s.listener.SelectAttribute(s.accent)
		s.feedByte(b)

	case StateSpecial:
		s.listener.DrawSpecial(b)
		s.state = StateGround

	case StateRepeat:
		s.listener.Repeat(int(b) - RepeatBias)
		s.state = StateGround

	case StateAddressRow:
		s.row = int(b) - AddressBias
		s.state = StateAddressCol

	case StateAddressCol:
		s.listener.CursorPosition(s.row, int(b)-AddressBias)
		s.state = StateGround
	}
}

func isAccentCode(b byte) bool {
	switch Accent(b) {
	case Acute, Grave, Circumflex, Umlaut:
		return true
	}
	return false
}

func (s *Stream) dispatch(handler string) {
	switch handler {
	case "bell":
		s.listener.Bell()
	case "cursor_left":
		s.listener.CursorLeft()
	case "cursor_right":
		s.listener.CursorRight()
	case "cursor_down":
		s.listener.CursorDown()
	case "cursor_up":
		s.listener.CursorUp()
	case "clear_screen":
		s.listener.ClearScreen()
	case "carriage_return":
		s.listener.CarriageReturn()
	case "shift_out":
		s.listener.ShiftOut()
	case "shift_in":
		s.listener.ShiftIn()
	case "clear_line_end":
		s.listener.ClearLineEnd()
	case "home":
		s.listener.Home()
	default:
		s.listener.Debug("Unknown handler:", handler)
	}
}
