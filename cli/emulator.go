package main

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/gdamore/tcell/v2"

	"minitel/internal/config"
	"minitel/internal/transport"
	"minitel/internal/videotex"
)

// Emulator is a virtual Minitel: it decodes bytes arriving on a port into
// a NativeScreen and draws that screen with tcell
type Emulator struct {
	port   *transport.Port
	screen tcell.Screen
	bell   Bell
	parity bool

	mu     sync.Mutex
	native *videotex.NativeScreen
	stream *videotex.Stream
	bells  int
}

// NewEmulator wires port to screen. With parity set, outgoing key bytes
// carry an even parity bit.
func NewEmulator(port *transport.Port, screen tcell.Screen, bell Bell, parity bool) *Emulator {
	native := videotex.NewNativeScreen()
	return &Emulator{
		port:   port,
		screen: screen,
		bell:   bell,
		parity: parity,
		native: native,
		stream: videotex.NewStream(native),
	}
}

// runEmulator opens a pseudo-terminal and emulates a terminal on it until
// ctx is cancelled or the user quits
func runEmulator(ctx context.Context, cfg *config.Config) error {
	port, device, err := transport.OpenPTY()
	if err != nil {
		return err
	}
	defer port.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	bell := NewSpeakerBell(screen)
	emu := NewEmulator(port, screen, bell, cfg.SoftwareParity())
	emu.native.SetVerbose(cfg.Logging.Verbose)

	log.Printf("Virtual Minitel listening on %s", device)
	emu.status(fmt.Sprintf("Driver device: %s  (Esc quits)", device))

	return emu.Run(ctx)
}

// Run pumps bytes and key events until ctx is done, the port fails or the
// user presses Esc
func (e *Emulator) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := e.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	received := make(chan byte, 256)
	readErr := make(chan error, 1)
	go func() {
		for {
			b, err := e.port.WaitByte(ctx)
			if err != nil {
				readErr <- err
				return
			}
			select {
			case received <- b:
			case <-ctx.Done():
				return
			}
		}
	}()

	e.render()
	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-readErr:
			if ctx.Err() != nil {
				return nil
			}
			return err
		case b := <-received:
			e.Feed([]byte{b})
			// drain whatever else is queued before redrawing
			for n := len(received); n > 0; n-- {
				e.Feed([]byte{<-received})
			}
			e.render()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					return nil
				}
				if bs := KeyBytes(ev, e.parity); bs != nil {
					if _, err := e.port.Write(bs); err != nil {
						return err
					}
				}
			case *tcell.EventResize:
				e.screen.Sync()
				e.render()
			}
		}
	}
}

// Feed decodes data onto the virtual screen and rings the bell for any
// BEL it contained
func (e *Emulator) Feed(data []byte) {
	e.mu.Lock()
	e.stream.Feed(data)
	rung := e.native.Bells() - e.bells
	e.bells = e.native.Bells()
	e.mu.Unlock()

	for ; rung > 0; rung-- {
		e.bell.Ring()
	}
}

// render copies the virtual screen into the tcell back buffer
func (e *Emulator) render() {
	e.mu.Lock()
	defer e.mu.Unlock()

	for row := 1; row <= videotex.Rows; row++ {
		for col := 1; col <= videotex.Columns; col++ {
			cell := e.native.GetCell(videotex.Pos(col, row))
			e.screen.SetContent(col-1, row-1, cell.Char, nil, cellStyle(cell))
		}
	}
	if e.native.CursorVisible() {
		cur := e.native.GetCursor()
		e.screen.ShowCursor(cur.Col-1, cur.Row-1)
	} else {
		e.screen.HideCursor()
	}
	e.screen.Show()
}

// status writes msg below the 24 emulated rows
func (e *Emulator) status(msg string) {
	style := tcell.StyleDefault.Reverse(true)
	x := 0
	for _, r := range msg {
		e.screen.SetContent(x, videotex.Rows, r, nil, style)
		x++
	}
	e.screen.Show()
}

var tcellColors = [8]tcell.Color{
	videotex.Black:   tcell.ColorBlack,
	videotex.Red:     tcell.ColorRed,
	videotex.Green:   tcell.ColorGreen,
	videotex.Yellow:  tcell.ColorYellow,
	videotex.Blue:    tcell.ColorBlue,
	videotex.Magenta: tcell.ColorFuchsia,
	videotex.Cyan:    tcell.ColorAqua,
	videotex.White:   tcell.ColorWhite,
}

func cellStyle(cell videotex.Cell) tcell.Style {
	a := cell.Attrs
	style := tcell.StyleDefault.
		Foreground(tcellColors[a.Fg&7]).
		Background(tcellColors[a.Bg&7]).
		Blink(a.Blink).
		Underline(a.Underline && !cell.Graphic)
	if a.Video == videotex.VideoInverted {
		style = style.Reverse(true)
	}
	if a.Size == videotex.SizeDoubleHeight || a.Size == videotex.SizeDouble {
		style = style.Bold(true)
	}
	return style
}

// functionKeys maps host keys to terminal function keys
var functionKeys = map[tcell.Key]videotex.Function{
	tcell.KeyF1:         videotex.FuncSend,
	tcell.KeyF2:         videotex.FuncBack,
	tcell.KeyF3:         videotex.FuncRepeat,
	tcell.KeyF4:         videotex.FuncGuide,
	tcell.KeyF5:         videotex.FuncCancel,
	tcell.KeyF6:         videotex.FuncIndex,
	tcell.KeyF7:         videotex.FuncCorrect,
	tcell.KeyF8:         videotex.FuncNext,
	tcell.KeyF9:         videotex.FuncConnection,
	tcell.KeyEnter:      videotex.FuncSend,
	tcell.KeyBackspace:  videotex.FuncCorrect,
	tcell.KeyBackspace2: videotex.FuncCorrect,
}

// KeyBytes returns what a terminal keyboard sends for ev, or nil when the
// key has no equivalent. Function keys are sent as DC3 followed by their
// code, which is what a driver sees as menu then function.
func KeyBytes(ev *tcell.EventKey, parity bool) []byte {
	var bs []byte
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r < 0x20 || r > 0x7e {
			return nil
		}
		bs = []byte{byte(r)}
	} else {
		fn, ok := functionKeys[ev.Key()]
		if !ok {
			return nil
		}
		code, _ := videotex.FunctionCode(fn)
		bs = []byte{videotex.DC3, code}
	}
	if parity {
		for i := range bs {
			bs[i] = videotex.EvenParity(bs[i])
		}
	}
	return bs
}
