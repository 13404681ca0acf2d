package videotex

import "math/bits"

// KeyKind classifies a decoded keyboard byte
type KeyKind int

const (
	KeyUnrecognized KeyKind = iota
	KeyChar
	KeyFunction
)

// Function identifies a terminal function key
type Function int

const (
	FuncNone Function = iota
	FuncMenu
	FuncSend
	FuncBack
	FuncRepeat
	FuncGuide
	FuncCancel
	FuncIndex
	FuncCorrect
	FuncNext
	FuncConnection
)

var functionNames = map[Function]string{
	FuncNone:       "none",
	FuncMenu:       "menu",
	FuncSend:       "send",
	FuncBack:       "back",
	FuncRepeat:     "repeat",
	FuncGuide:      "guide",
	FuncCancel:     "cancel",
	FuncIndex:      "index",
	FuncCorrect:    "correct",
	FuncNext:       "next",
	FuncConnection: "connection",
}

func (f Function) String() string {
	if name, ok := functionNames[f]; ok {
		return name
	}
	return "unknown"
}

// Function keys arrive as DC3 followed by one of these codes
var functionCodes = map[byte]Function{
	0x41: FuncSend,
	0x42: FuncBack,
	0x43: FuncRepeat,
	0x44: FuncGuide,
	0x45: FuncCancel,
	0x46: FuncIndex,
	0x47: FuncCorrect,
	0x48: FuncNext,
	0x49: FuncConnection,
}

// FunctionCode returns the code that follows DC3 for f
func FunctionCode(f Function) (byte, bool) {
	for code, fn := range functionCodes {
		if fn == f {
			return code, true
		}
	}
	return 0, false
}

// KeyEvent is one decoded keyboard byte
type KeyEvent struct {
	Kind     KeyKind
	Rune     rune
	Function Function
	Code     byte // byte as received
}

// Keyboard decodes terminal keyboard bytes. It remembers whether the
// menu key (DC3) is latched; each DC3 toggles the latch, and while it is
// latched the function key codes decode to function keys.
type Keyboard struct {
	checkParity bool
	menu        bool
}

// NewKeyboard returns a decoder. With checkParity set, bytes are expected
// to carry an even parity bit, which is verified and stripped.
func NewKeyboard(checkParity bool) *Keyboard {
	return &Keyboard{checkParity: checkParity}
}

// Decode classifies b
func (k *Keyboard) Decode(b byte) KeyEvent {
	ev := KeyEvent{Kind: KeyUnrecognized, Code: b}

	if k.checkParity {
		if bits.OnesCount8(b)%2 != 0 {
			return ev
		}
		b &= 0x7f
	}

	if b == DC3 {
		k.menu = !k.menu
		ev.Kind = KeyFunction
		ev.Function = FuncMenu
		return ev
	}

	if k.menu {
		if fn, ok := functionCodes[b]; ok {
			ev.Kind = KeyFunction
			ev.Function = fn
			return ev
		}
	}

	if b >= 0x20 && b <= 0x7e {
		ev.Kind = KeyChar
		ev.Rune = rune(b)
	}
	return ev
}

// MenuLatched reports whether the menu key is currently latched
func (k *Keyboard) MenuLatched() bool {
	return k.menu
}

// ClearMenu releases the menu latch
func (k *Keyboard) ClearMenu() {
	k.menu = false
}

// ByteSource is the read side of a transport
type ByteSource interface {
	// ReadAvailable returns the next received byte, or false when none
	// is waiting. It does not block.
	ReadAvailable() (byte, bool, error)
}

// Poll decodes the next available byte from src, if any
func (k *Keyboard) Poll(src ByteSource) (KeyEvent, bool, error) {
	b, ok, err := src.ReadAvailable()
	if err != nil {
		return KeyEvent{}, false, &TransportError{Op: "read", Err: err}
	}
	if !ok {
		return KeyEvent{}, false, nil
	}
	return k.Decode(b), true, nil
}
