package videotex

// Color is one of the eight Videotex colors (3 bits)
type Color byte

const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "unknown"
}

// Mode selects the G0 (text) or G1 (mosaic) character set
type Mode byte

const (
	ModeText    Mode = SI
	ModeGraphic Mode = SO
)

func (m Mode) String() string {
	if m == ModeGraphic {
		return "graphic"
	}
	return "text"
}

// Size is the character size, sent as the ESC-prefixed size code
type Size byte

const (
	SizeNormal       Size = SizeNormalCode
	SizeDoubleHeight Size = SizeDoubleHeightCode
	SizeDoubleWidth  Size = SizeDoubleWidthCode
	SizeDouble       Size = SizeDoubleCode
)

func (s Size) String() string {
	switch s {
	case SizeNormal:
		return "normal"
	case SizeDoubleHeight:
		return "double-height"
	case SizeDoubleWidth:
		return "double-width"
	case SizeDouble:
		return "double"
	default:
		return "unknown"
	}
}

// WidthFactor is the number of columns one character occupies
func (s Size) WidthFactor() int {
	if s == SizeDoubleWidth || s == SizeDouble {
		return 2
	}
	return 1
}

// Video is the video mode, sent as the ESC-prefixed video code
type Video byte

const (
	VideoStandard    Video = VideoStandardCode
	VideoInverted    Video = VideoInvertCode
	VideoTransparent Video = VideoTransparentCode
)

func (v Video) String() string {
	switch v {
	case VideoStandard:
		return "standard"
	case VideoInverted:
		return "inverted"
	case VideoTransparent:
		return "transparent"
	default:
		return "unknown"
	}
}

// Orientation controls how successive characters of a string advance
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// Direction is a relative cursor step, sent as its control code
type Direction byte

const (
	Left  Direction = BS
	Right Direction = HT
	Down  Direction = LF
	Up    Direction = VT
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Down:
		return "down"
	case Up:
		return "up"
	default:
		return "unknown"
	}
}
