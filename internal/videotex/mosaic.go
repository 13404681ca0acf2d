package videotex

import "fmt"

// Weights of the six mosaic cells, read left to right and top to bottom.
// Bit 5 is always set in a mosaic byte, so the last cell uses bit 6.
var mosaicWeights = [6]byte{0x01, 0x02, 0x04, 0x08, 0x10, 0x40}

// GraphicChar encodes a 2x3 block pattern as a G1 mosaic byte. The
// pattern is six '0' or '1' characters, top-left cell first.
func GraphicChar(pattern string) (byte, error) {
	if len(pattern) != len(mosaicWeights) {
		return 0, fmt.Errorf("%w: %q has %d cells, want 6", ErrInvalidPattern, pattern, len(pattern))
	}
	b := byte(0x20)
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '1':
			b |= mosaicWeights[i]
		case '0':
		default:
			return 0, fmt.Errorf("%w: %q", ErrInvalidPattern, pattern)
		}
	}
	return b, nil
}

// mosaicBits returns the six cell bits of a mosaic byte, cell one in bit 0
func mosaicBits(b byte) int {
	return int(b&0x1f) | int(b&0x40)>>1
}

// MosaicRune returns the Unicode sextant character that looks like the
// mosaic byte b
func MosaicRune(b byte) rune {
	v := mosaicBits(b)
	switch v {
	case 0:
		return ' '
	case 21:
		return '▌'
	case 42:
		return '▐'
	case 63:
		return '█'
	}
	idx := v - 1
	if v > 21 {
		idx--
	}
	if v > 42 {
		idx--
	}
	return rune(0x1fb00 + idx)
}
