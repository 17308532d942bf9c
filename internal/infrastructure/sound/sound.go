// Package sound plays short tones for board events.
package sound

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/younwookim/swipesnake/internal/application/system"
)

const sampleRate = beep.SampleRate(44100)

// Cue is a sound event
type Cue int

const (
	CueNone Cue = iota
	CueEat
	CueCrash
)

// Tone describes a sine beep
type Tone struct {
	Frequency float64
	Duration  time.Duration
}

var tones = map[Cue]Tone{
	CueEat:   {Frequency: 880, Duration: 50 * time.Millisecond},
	CueCrash: {Frequency: 220, Duration: 200 * time.Millisecond},
}

// ToneFor returns the tone for a cue
func ToneFor(c Cue) (Tone, bool) {
	t, ok := tones[c]
	return t, ok
}

// CueFor maps a step outcome to a cue
func CueFor(o system.Outcome) Cue {
	switch o {
	case system.OutcomeAte:
		return CueEat
	case system.OutcomeCollided:
		return CueCrash
	default:
		return CueNone
	}
}

// Player plays cues
type Player interface {
	Play(c Cue)
	Close()
}

// Silent is a Player that does nothing
type Silent struct{}

func (Silent) Play(Cue) {}
func (Silent) Close()   {}

// Speaker plays cues through the system audio device
type Speaker struct{}

// NewSpeaker initializes the audio device
func NewSpeaker() (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("failed to init speaker: %w", err)
	}
	return &Speaker{}, nil
}

// Play starts the tone for c without blocking
func (s *Speaker) Play(c Cue) {
	tone, ok := ToneFor(c)
	if !ok {
		return
	}
	sine, err := generators.SineTone(sampleRate, tone.Frequency)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(tone.Duration), sine))
}

// Close releases the audio device
func (s *Speaker) Close() {
	speaker.Close()
}
