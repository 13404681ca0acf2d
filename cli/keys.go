package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"minitel/internal/config"
	"minitel/internal/videotex"
)

// pollInterval is how long the key loop idles when no byte is waiting
const pollInterval = 20 * time.Millisecond

// runKeys decodes keyboard bytes and shows each key on the status row
// until ctx is cancelled or the connection ends
func runKeys(ctx context.Context, cfg *config.Config) error {
	port, enc, err := connect(cfg)
	if err != nil {
		return err
	}
	defer port.Close()

	kb := videotex.NewKeyboard(cfg.SoftwareParity())

	if err := enc.ClearScreen(); err != nil {
		return err
	}
	if err := enc.SetCursorVisible(true); err != nil {
		return err
	}
	if err := enc.PrintString("Press keys, Connexion/Fin to quit", &videotex.TextOptions{Placement: videotex.AtAnchor, Anchor: videotex.Center}); err != nil {
		return err
	}

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		ev, ok, err := kb.Poll(port)
		if err != nil {
			return err
		}
		if !ok {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
			}
			continue
		}

		label := describeKey(ev)
		log.Printf("Key %s (byte 0x%02x, menu latched: %v)", label, ev.Code, kb.MenuLatched())

		if ev.Kind == videotex.KeyFunction && ev.Function != videotex.FuncMenu {
			kb.ClearMenu()
			if ev.Function == videotex.FuncConnection {
				return nil
			}
		}
		if ev.Kind == videotex.KeyUnrecognized {
			continue
		}

		if err := enc.MoveTo(videotex.Pos(1, videotex.Rows)); err != nil {
			return err
		}
		if err := enc.LineEnd(); err != nil {
			return err
		}
		if err := enc.PrintString(label, nil); err != nil {
			return err
		}
	}
}

func describeKey(ev videotex.KeyEvent) string {
	switch ev.Kind {
	case videotex.KeyChar:
		return fmt.Sprintf("char %q", ev.Rune)
	case videotex.KeyFunction:
		return "function " + ev.Function.String()
	default:
		return "unrecognized"
	}
}
