package videotex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"minitel/internal/videotex"
)

func TestStreamDispatch(t *testing.T) {
	screen := videotex.NewMockScreen()
	stream := videotex.NewStream(screen)

	stream.Feed([]byte{
		videotex.FF,
		videotex.US, 0x43, 0x45,
		'A',
		videotex.REP, 0x42,
		videotex.ESC, 65,
		videotex.SS2, 35,
		videotex.BEL,
		videotex.SO, videotex.SI,
		videotex.BS, videotex.HT, videotex.LF, videotex.VT,
		videotex.CR, videotex.CAN, videotex.RS,
	})

	assert.Equal(t, []string{
		"ClearScreen[]",
		"CursorPosition[3 5]",
		"Draw[A]",
		"Repeat[2]",
		"SelectAttribute[65]",
		"DrawSpecial[35]",
		"Bell[]",
		"ShiftOut[]",
		"ShiftIn[]",
		"CursorLeft[]",
		"CursorRight[]",
		"CursorDown[]",
		"CursorUp[]",
		"CarriageReturn[]",
		"ClearLineEnd[]",
		"Home[]",
	}, screen.Calls)
}

func TestStreamSplitSequences(t *testing.T) {
	screen := videotex.NewMockScreen()
	stream := videotex.NewStream(screen)

	stream.Feed([]byte{videotex.US, 0x43})
	assert.Empty(t, screen.Calls)
	stream.Feed([]byte{0x45})
	stream.Feed([]byte{videotex.ESC})
	stream.Feed([]byte{videotex.BlinkOn})
	stream.Feed([]byte{'x'})

	assert.Equal(t, []string{"CursorPosition[3 5]", "SelectAttribute[72]", "Draw[x]"}, screen.Calls)
}

func TestStreamStripsParity(t *testing.T) {
	screen := videotex.NewMockScreen()
	videotex.NewStream(screen).Feed([]byte{0xc3, 0x00, 0xff})

	assert.Equal(t, []string{"Draw[C]", "Draw[\x7f]"}, screen.Calls)
}

func TestStreamAccents(t *testing.T) {
	testCases := []struct {
		name  string
		input []byte
		want  []string
	}{
		{"Acute", []byte{videotex.ESC, 65, 'e'}, []string{"DrawComposed[é]"}},
		{"Grave", []byte{videotex.ESC, 66, 'u'}, []string{"DrawComposed[ù]"}},
		{"Circumflex", []byte{videotex.ESC, 67, 'o'}, []string{"DrawComposed[ô]"}},
		{"Umlaut", []byte{videotex.ESC, 72, 'i'}, []string{"DrawComposed[ï]"}},
		{"Color before capital", []byte{videotex.ESC, 65, 'E'}, []string{"SelectAttribute[65]", "Draw[E]"}},
		{"Color before control", []byte{videotex.ESC, 66, videotex.FF}, []string{"SelectAttribute[66]", "ClearScreen[]"}},
		{"Acute not allowed", []byte{videotex.ESC, 65, 'a'}, []string{"SelectAttribute[65]", "Draw[a]"}},
		{"Not an accent code", []byte{videotex.ESC, 70, 'e'}, []string{"SelectAttribute[70]", "Draw[e]"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			screen := videotex.NewMockScreen()
			videotex.NewStream(screen).Feed(tc.input)
			assert.Equal(t, tc.want, screen.Calls)
		})
	}
}
