package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minitel/internal/transport"
	"minitel/internal/videotex"
)

func TestDrawDemo(t *testing.T) {
	mem := transport.NewMemory()
	enc := videotex.NewEncoder(mem, videotex.WithSleeper(func(time.Duration) {}))

	require.NoError(t, drawDemo(enc, 0, false))

	screen := videotex.NewNativeScreen()
	videotex.NewStream(screen).Feed(mem.Written)
	display := screen.GetDisplay()

	assert.True(t, strings.HasPrefix(display[0], "MINITEL"))
	assert.True(t, strings.HasSuffix(display[0], "v1"))
	assert.Contains(t, display[3], "à la plage, où")
	assert.Equal(t, videotex.Cyan, screen.GetCell(videotex.Pos(3, 4)).Attrs.Fg)
	assert.Contains(t, display[5], "½ £ §")
	assert.Equal(t, '#', screen.GetCell(videotex.Pos(2, 8)).Char)
	assert.Equal(t, '*', screen.GetCell(videotex.Pos(30, 12)).Char)
	assert.True(t, screen.GetCell(videotex.Pos(2, 20)).Graphic)
	assert.Equal(t, 1, screen.Bells())
}

func TestDrawDemoTransportFailure(t *testing.T) {
	mem := transport.NewMemory()
	mem.FailAfter(10)
	enc := videotex.NewEncoder(mem)

	err := drawDemo(enc, 0, false)
	var terr *videotex.TransportError
	assert.ErrorAs(t, err, &terr)
}
