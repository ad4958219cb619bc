package term

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate   = beep.SampleRate(48000)
	blipFreq     = 660
	blipDuration = 60 * time.Millisecond
)

// Sound plays a short cue. Implementations must not block the caller.
type Sound interface {
	Play()
}

// Blip is a synthesized sine blip played through the system speaker.
type Blip struct {
	volume float64
}

// NewBlip opens the speaker. Callers treat an error as "no audio".
func NewBlip() (*Blip, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Blip{volume: 0.3}, nil
}

func (b *Blip) Play() {
	tone, err := generators.SineTone(sampleRate, blipFreq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(blipDuration), scaled(tone, b.volume)))
}

// scaled multiplies every sample by gain.
func scaled(s beep.Streamer, gain float64) beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)
		for i := range samples[:n] {
			samples[i][0] *= gain
			samples[i][1] *= gain
		}
		return n, ok
	})
}
