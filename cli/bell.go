package main

import (
	"log"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	bellSampleRate = beep.SampleRate(44100)
	bellFrequency  = 1000
	bellLength     = 150 * time.Millisecond
)

// Bell is the virtual terminal's buzzer
type Bell interface {
	Ring()
}

// SpeakerBell plays a short tone, falling back to the host terminal's
// bell when no audio device is available
type SpeakerBell struct {
	screen tcell.Screen
	audio  bool
}

func NewSpeakerBell(screen tcell.Screen) *SpeakerBell {
	b := &SpeakerBell{screen: screen}
	if err := speaker.Init(bellSampleRate, bellSampleRate.N(100*time.Millisecond)); err != nil {
		log.Printf("Audio unavailable, using terminal bell: %v", err)
		return b
	}
	b.audio = true
	return b
}

func (b *SpeakerBell) Ring() {
	if !b.audio {
		b.screen.Beep()
		return
	}
	speaker.Play(beep.Take(bellSampleRate.N(bellLength), newTone(bellSampleRate, bellFrequency)))
}

// tone is an endless sine wave
type tone struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func newTone(sr beep.SampleRate, freq float64) *tone {
	return &tone{sr: sr, freq: freq}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		s := 0.25 * math.Sin(2*math.Pi*t.freq*float64(t.pos)/float64(t.sr))
		samples[i][0] = s
		samples[i][1] = s
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error {
	return nil
}
