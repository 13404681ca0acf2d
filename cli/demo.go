package main

import (
	"log"
	"time"

	"minitel/internal/config"
	"minitel/internal/videotex"
)

// runDemo draws a test card: anchored text, accents and symbols, a frame,
// a spiral and a row of mosaics
func runDemo(cfg *config.Config) error {
	port, enc, err := connect(cfg)
	if err != nil {
		return err
	}
	defer port.Close()

	bell, err := cfg.BellDuration()
	if err != nil {
		return err
	}
	return drawDemo(enc, bell, cfg.Logging.Verbose)
}

func drawDemo(enc *videotex.Encoder, bell time.Duration, verbose bool) error {
	steps := []struct {
		name string
		run  func() error
	}{
		{"clear", enc.ClearScreen},
		{"title", func() error {
			if err := enc.SetSize(videotex.SizeDoubleHeight); err != nil {
				return err
			}
			if err := enc.PrintString("MINITEL", &videotex.TextOptions{Placement: videotex.AtAnchor, Anchor: videotex.TopLeft}); err != nil {
				return err
			}
			return enc.SetSize(videotex.SizeNormal)
		}},
		{"corner", func() error {
			return enc.PrintString("v1", &videotex.TextOptions{Placement: videotex.AtAnchor, Anchor: videotex.TopRight})
		}},
		{"accents", func() error {
			if err := enc.SetTextColor(videotex.Cyan); err != nil {
				return err
			}
			return enc.PrintString("Été à la plage, où ça?", &videotex.TextOptions{Placement: videotex.AtPosition, Position: videotex.Pos(2, 4)})
		}},
		{"symbols", func() error {
			if err := enc.SetTextColor(videotex.Yellow); err != nil {
				return err
			}
			return enc.PrintString("½ £ § ° ± ← → ↑ ↓ œ ß", &videotex.TextOptions{Placement: videotex.AtPosition, Position: videotex.Pos(2, 6)})
		}},
		{"vertical", func() error {
			return enc.PrintString("VERTICAL", &videotex.TextOptions{Placement: videotex.AtPosition, Position: videotex.Pos(38, 8), Orientation: videotex.Vertical})
		}},
		{"frame", func() error {
			if err := enc.SetTextColor(videotex.Green); err != nil {
				return err
			}
			return enc.Rect('#', videotex.Pos(2, 8), 20, 8)
		}},
		{"spiral", func() error {
			if err := enc.SetTextColor(videotex.Magenta); err != nil {
				return err
			}
			return enc.Spiral(videotex.Pos(30, 12), 5, '*')
		}},
		{"mosaics", func() error {
			patterns := []string{"100000", "110000", "111000", "111100", "111110", "111111", "101010", "010101"}
			for i, p := range patterns {
				opts := &videotex.TextOptions{}
				if i == 0 {
					opts = &videotex.TextOptions{Placement: videotex.AtPosition, Position: videotex.Pos(2, 20)}
				}
				if err := enc.PrintGraphic(p, opts); err != nil {
					return err
				}
			}
			return enc.SetMode(videotex.ModeText)
		}},
		{"footer", func() error {
			if err := enc.UseDefaultColors(); err != nil {
				return err
			}
			if err := enc.SetVideo(videotex.VideoInverted); err != nil {
				return err
			}
			if err := enc.PrintString(" Envoi ", &videotex.TextOptions{Placement: videotex.AtAnchor, Anchor: videotex.BottomRight}); err != nil {
				return err
			}
			return enc.SetVideo(videotex.VideoStandard)
		}},
		{"bell", func() error { return enc.Bip(bell) }},
	}

	for _, step := range steps {
		if err := step.run(); err != nil {
			log.Printf("Demo step %s failed: %v", step.name, err)
			return err
		}
		if verbose {
			log.Printf("Demo step %s done, cursor at %s", step.name, enc.Position())
		}
	}
	log.Printf("Demo complete")
	return nil
}
