package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// SampleRate is the output rate for every cue.
const SampleRate = beep.SampleRate(44100)

// Player plays streamers asynchronously.
type Player interface {
	Play(s ...beep.Streamer)
}

// speakerPlayer sends cues to the system audio device.
type speakerPlayer struct{}

func (speakerPlayer) Play(s ...beep.Streamer) {
	speaker.Play(s...)
}

// OpenSpeaker initializes the audio device and returns a Player for it.
func OpenSpeaker() (Player, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return speakerPlayer{}, nil
}

// Cues plays a blip for every accepted move and a chime on commit.
type Cues struct {
	player Player
	volume float64
}

// NewCues creates cues played at volume in [0, 1].
func NewCues(player Player, volume float64) *Cues {
	return &Cues{player: player, volume: volume}
}

// Moved plays the move blip.
func (c *Cues) Moved() {
	c.play(Blip())
}

// Committed plays the save chime.
func (c *Cues) Committed() {
	c.play(Chime())
}

func (c *Cues) play(s beep.Streamer) {
	if c.player == nil || c.volume <= 0 {
		return
	}
	c.player.Play(&effects.Gain{Streamer: s, Gain: c.volume - 1})
}

// Blip is the short tick played when a letter or the cursor changes.
func Blip() beep.Streamer {
	return Tone(880, 40*time.Millisecond, SampleRate)
}

// Chime is the rising two-note sound played when an entry is saved.
func Chime() beep.Streamer {
	return beep.Seq(
		Tone(660, 80*time.Millisecond, SampleRate),
		Tone(990, 160*time.Millisecond, SampleRate),
	)
}
