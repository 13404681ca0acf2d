package videotex_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minitel/internal/videotex"
)

func TestRectBytes(t *testing.T) {
	enc, mem := newTestEncoder()

	require.NoError(t, enc.Rect('#', videotex.Pos(1, 1), 5, 3))

	want := []byte{
		// top edge
		videotex.US, 0x41, 0x41, '#', videotex.REP, 0x44,
		// bottom edge
		videotex.US, 0x43, 0x41, '#', videotex.REP, 0x44,
		// left column
		videotex.US, 0x41, 0x41, '#',
		videotex.US, 0x42, 0x41, '#',
		videotex.US, 0x43, 0x41, '#',
		// right column
		videotex.US, 0x41, 0x45, '#',
		videotex.US, 0x42, 0x45, '#',
		videotex.US, 0x43, 0x45, '#',
	}
	assert.Equal(t, want, mem.Written)
}

func TestRectOnScreen(t *testing.T) {
	enc, mem := newTestEncoder()
	require.NoError(t, enc.Rect('#', videotex.Pos(3, 2), 6, 4))

	screen := videotex.NewNativeScreen()
	videotex.NewStream(screen).Feed(mem.Written)

	display := screen.GetDisplay()
	assert.Equal(t, "", display[0])
	assert.Equal(t, "  ######", display[1])
	assert.Equal(t, "  #    #", display[2])
	assert.Equal(t, "  #    #", display[3])
	assert.Equal(t, "  ######", display[4])
	assert.Equal(t, "", display[5])
}

func TestRectDegenerate(t *testing.T) {
	enc, mem := newTestEncoder()
	require.NoError(t, enc.Rect('#', videotex.Pos(1, 1), 0, 3))
	require.NoError(t, enc.Rect('#', videotex.Pos(1, 1), 3, -1))
	assert.Empty(t, mem.Written)
}

func TestSpiralPath(t *testing.T) {
	center := videotex.Pos(20, 12)
	path := slices.Collect(videotex.SpiralPath(center, 4))

	require.Len(t, path, 21)
	assert.Equal(t, center, path[0])

	seen := make(map[videotex.Position]bool)
	for i, p := range path {
		assert.True(t, p.InBounds(), "step %d at %s", i, p)
		assert.False(t, seen[p], "step %d revisits %s", i, p)
		seen[p] = true

		assert.LessOrEqual(t, abs(p.Col-center.Col), 2)
		assert.LessOrEqual(t, abs(p.Row-center.Row), 2)

		if i > 0 {
			prev := path[i-1]
			assert.Equal(t, 1, abs(p.Col-prev.Col)+abs(p.Row-prev.Row), "step %d is not adjacent", i)
		}
	}

	// First lap: right, down, left, left, up, up
	assert.Equal(t, []videotex.Position{
		videotex.Pos(21, 12),
		videotex.Pos(21, 13),
		videotex.Pos(20, 13),
		videotex.Pos(19, 13),
		videotex.Pos(19, 12),
		videotex.Pos(19, 11),
	}, path[1:7])
}

func TestSpiralPathSizes(t *testing.T) {
	center := videotex.Pos(20, 12)
	assert.Len(t, slices.Collect(videotex.SpiralPath(center, 0)), 1)
	assert.Len(t, slices.Collect(videotex.SpiralPath(center, 1)), 3)
	assert.Len(t, slices.Collect(videotex.SpiralPath(center, 2)), 7)
	assert.Empty(t, slices.Collect(videotex.SpiralPath(center, -1)))
}

func TestSpiralPathStopsAtEdge(t *testing.T) {
	path := slices.Collect(videotex.SpiralPath(videotex.Pos(40, 1), 6))

	// right from the corner leaves the screen immediately
	assert.Equal(t, []videotex.Position{videotex.Pos(40, 1)}, path)
}

func TestSpiralDraw(t *testing.T) {
	enc, mem := newTestEncoder()
	center := videotex.Pos(10, 10)
	require.NoError(t, enc.Spiral(center, 2, '*'))

	screen := videotex.NewNativeScreen()
	videotex.NewStream(screen).Feed(mem.Written)

	for p := range videotex.SpiralPath(center, 2) {
		assert.Equal(t, '*', screen.GetCell(p).Char, "cell %s", p)
	}
	assert.Equal(t, ' ', screen.GetCell(videotex.Pos(12, 10)).Char)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
