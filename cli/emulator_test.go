package main

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minitel/internal/transport"
	"minitel/internal/videotex"
)

type countingBell struct {
	mu    sync.Mutex
	rings int
}

func (b *countingBell) Ring() {
	b.mu.Lock()
	b.rings++
	b.mu.Unlock()
}

func (b *countingBell) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.rings
}

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, sim.Init())
	sim.SetSize(videotex.Columns, videotex.Rows+1)
	t.Cleanup(sim.Fini)
	return sim
}

func TestKeyBytes(t *testing.T) {
	testCases := []struct {
		name   string
		ev     *tcell.EventKey
		parity bool
		want   []byte
	}{
		{"Letter", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), false, []byte{'a'}},
		{"Letter with parity", tcell.NewEventKey(tcell.KeyRune, 'C', tcell.ModNone), true, []byte{0xc3}},
		{"Accented", tcell.NewEventKey(tcell.KeyRune, 'é', tcell.ModNone), false, nil},
		{"Send", tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), false, []byte{videotex.DC3, 0x41}},
		{"Enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), false, []byte{videotex.DC3, 0x41}},
		{"Correct", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), false, []byte{videotex.DC3, 0x47}},
		{"Connection with parity", tcell.NewEventKey(tcell.KeyF9, 0, tcell.ModNone), true, []byte{0x93, 0xc9}},
		{"Unmapped", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), false, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, KeyBytes(tc.ev, tc.parity))
		})
	}
}

func TestEmulatorRendersFeed(t *testing.T) {
	sim := newSimScreen(t)
	port, peer := transport.Pipe()
	defer port.Close()
	defer peer.Close()

	bell := &countingBell{}
	emu := NewEmulator(port, sim, bell, false)

	emu.Feed([]byte{videotex.ESC, 65, 'H', 'i', videotex.BEL, videotex.ESC, videotex.VideoInvertCode, '!'})
	emu.render()

	mainc, _, style, _ := sim.GetContent(0, 0)
	assert.Equal(t, 'H', mainc)
	fg, _, _ := style.Decompose()
	assert.Equal(t, tcell.ColorRed, fg)

	mainc, _, style, _ = sim.GetContent(2, 0)
	assert.Equal(t, '!', mainc)
	_, _, attrs := style.Decompose()
	assert.NotZero(t, attrs&tcell.AttrReverse)

	assert.Equal(t, 1, bell.count())
}

func TestEmulatorRun(t *testing.T) {
	sim := newSimScreen(t)
	port, peer := transport.Pipe()
	defer port.Close()
	defer peer.Close()

	emu := NewEmulator(port, sim, &countingBell{}, false)

	done := make(chan error, 1)
	go func() { done <- emu.Run(context.Background()) }()

	go peer.Write([]byte{videotex.US, 0x42, 0x43, 'O', 'K'})
	require.Eventually(t, func() bool {
		mainc, _, _, _ := sim.GetContent(2, 1)
		return mainc == 'O'
	}, 2*time.Second, 10*time.Millisecond)

	sim.InjectKey(tcell.KeyF1, 0, tcell.ModNone)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	for _, want := range []byte{videotex.DC3, 0x41} {
		b, err := peer.WaitByte(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, b)
	}

	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("emulator did not stop on Esc")
	}
}

func TestCellStyle(t *testing.T) {
	cell := videotex.Cell{Char: 'x', Attrs: videotex.Attributes{Fg: videotex.Cyan, Bg: videotex.Magenta, Blink: true}}
	fg, bg, attrs := cellStyle(cell).Decompose()

	assert.Equal(t, tcell.ColorAqua, fg)
	assert.Equal(t, tcell.ColorFuchsia, bg)
	assert.NotZero(t, attrs&tcell.AttrBlink)
	assert.Zero(t, attrs&tcell.AttrReverse)
}
