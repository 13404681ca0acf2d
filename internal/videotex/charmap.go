package videotex

import (
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// Accent is a diacritic the terminal can compose over a base letter.
// The value is the code sent after the ESC prefix.
type Accent byte

const (
	Acute      Accent = 65
	Grave      Accent = 66
	Circumflex Accent = 67
	Umlaut     Accent = 72
)

func (a Accent) String() string {
	switch a {
	case Acute:
		return "acute"
	case Grave:
		return "grave"
	case Circumflex:
		return "circumflex"
	case Umlaut:
		return "umlaut"
	default:
		return "unknown"
	}
}

// Combining marks produced by NFD decomposition
var combiningAccents = map[rune]Accent{
	'\u0301': Acute,
	'\u0300': Grave,
	'\u0302': Circumflex,
	'\u0308': Umlaut,
}

// Letters each accent may be composed over
var accentLetters = map[Accent]string{
	Acute:      "e",
	Grave:      "aeu",
	Circumflex: "aeiou",
	Umlaut:     "aeiou",
}

// Special symbols, sent as SS2 followed by the code
var specialCodes = map[rune]byte{
	'£': 35,
	'§': 39,
	'←': 44,
	'↑': 45,
	'→': 46,
	'↓': 47,
	'°': 48,
	'±': 49,
	'¼': 60,
	'½': 61,
	'¾': 62,
	'Œ': 106,
	'œ': 122,
	'ß': 123,
}

var specialRunes = func() map[byte]rune {
	m := make(map[byte]rune, len(specialCodes))
	for r, code := range specialCodes {
		m[code] = r
	}
	return m
}()

// MapChar returns the bytes that display r, or ErrUnsupportedGlyph.
// It has no state and performs no I/O.
func MapChar(r rune) ([]byte, error) {
	if isG0(r) {
		return []byte{byte(r)}, nil
	}

	if code, ok := specialCodes[r]; ok {
		return []byte{SS2, code}, nil
	}

	if accent, base, ok := decomposeAccent(r); ok {
		letter, err := MapChar(base)
		if err != nil {
			return nil, err
		}
		return append([]byte{ESC, byte(accent)}, letter...), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupportedGlyph, r)
}

// isG0 reports whether r is a printable ASCII character of the G0 set
func isG0(r rune) bool {
	return r >= 0x20 && r <= 0x7e
}

// decomposeAccent splits r into one supported accent and its base letter
func decomposeAccent(r rune) (Accent, rune, bool) {
	parts := []rune(norm.NFD.String(string(r)))
	if len(parts) != 2 {
		return 0, 0, false
	}
	accent, ok := combiningAccents[parts[1]]
	if !ok {
		return 0, 0, false
	}
	if !AccentAllowed(accent, parts[0]) {
		return 0, 0, false
	}
	return accent, parts[0], true
}

// AccentAllowed reports whether accent may be composed over letter
func AccentAllowed(accent Accent, letter rune) bool {
	letters, ok := accentLetters[accent]
	if !ok {
		return false
	}
	for _, l := range letters {
		if l == letter {
			return true
		}
	}
	return false
}

// ComposeAccent is the inverse of accent mapping: it returns the
// precomposed letter for an accent code followed by a base letter.
func ComposeAccent(code byte, letter rune) (rune, bool) {
	accent := Accent(code)
	if !AccentAllowed(accent, letter) {
		return 0, false
	}
	for mark, a := range combiningAccents {
		if a == accent {
			composed := []rune(norm.NFC.String(string([]rune{letter, mark})))
			if len(composed) == 1 {
				return composed[0], true
			}
		}
	}
	return 0, false
}

// SpecialRune returns the symbol displayed for an SS2 code
func SpecialRune(code byte) (rune, bool) {
	r, ok := specialRunes[code]
	return r, ok
}

// StripAccent returns the base letter of r with any diacritics removed,
// or r itself when it has no decomposition
func StripAccent(r rune) rune {
	parts := []rune(norm.NFD.String(string(r)))
	if len(parts) == 0 {
		return r
	}
	return parts[0]
}
