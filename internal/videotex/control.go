package videotex

// Control codes (C0 set as used by Videotex terminals)
const (
	NUL = 0x00
	BEL = 0x07 // audible bell
	BS  = 0x08 // cursor left
	HT  = 0x09 // cursor right
	LF  = 0x0a // cursor down
	VT  = 0x0b // cursor up
	FF  = 0x0c // clear screen
	CR  = 0x0d // start of line
	SO  = 0x0e // graphic mode (G1)
	SI  = 0x0f // text mode (G0)
	DC1 = 0x11
	REP = 0x12 // repeat last character
	DC3 = 0x13 // keyboard function key prefix
	DC4 = 0x14
	CAN = 0x18 // clear to end of line
	SS2 = 0x19 // special character prefix
	ESC = 0x1b
	RS  = 0x1e // home (1,1)
	US  = 0x1f // direct cursor addressing
	DEL = 0x7f
)

// Direct addressing and repeat counts are sent with a fixed bias
const (
	AddressBias = 0x40
	RepeatBias  = 0x40

	// MaxRepeat is the largest count the repeat sequence can carry
	MaxRepeat = 63
)

// Codes that follow ESC
const (
	CursorShow = 17
	CursorHide = 20

	TextColorBase       = 64
	BackgroundColorBase = 80

	BlinkOn  = 72
	BlinkOff = 73

	IncrustationOff = 74
	IncrustationOn  = 75

	SizeNormalCode       = 76
	SizeDoubleHeightCode = 77
	SizeDoubleWidthCode  = 78
	SizeDoubleCode       = 79

	LineMaskOn           = 88
	UnderlineOff         = 89
	UnderlineOn          = 90
	VideoStandardCode    = 92
	VideoInvertCode      = 93
	VideoTransparentCode = 94
	LineMaskOff          = 95
)
