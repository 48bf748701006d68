// Package audio renders the arena's sound effects at startup instead of
// shipping sample files: three short sine tones, one per combat beat.
package audio

import (
	"encoding/binary"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"fractal-gods/combat"
	"fractal-gods/events"
)

// SampleRate is the PCM rate the tones are rendered at.
const SampleRate = 22050

// Synth holds the audio context and the pre-rendered combat tones.
type Synth struct {
	context *audio.Context
	mute    bool

	hit   []byte
	hurt  []byte
	parry []byte
}

// NewSynth renders the three tones up front. A nil context degrades to
// silence, so the game still runs where no audio device exists.
func NewSynth(context *audio.Context, mute bool) *Synth {
	return &Synth{
		context: context,
		mute:    mute,
		hit:     Tone(320, 0.12, 0.5),
		hurt:    Tone(140, 0.18, 0.4),
		parry:   Tone(520, 0.1, 0.45),
	}
}

// Tone renders a sine wave as 16-bit little-endian stereo PCM.
func Tone(frequency, duration, volume float64) []byte {
	samples := int(SampleRate * duration)
	amplitude := 32767 * volume
	pcm := make([]byte, samples*4)
	for i := 0; i < samples; i++ {
		value := int16(amplitude * math.Sin(2*math.Pi*frequency*float64(i)/SampleRate))
		binary.LittleEndian.PutUint16(pcm[i*4:], uint16(value))
		binary.LittleEndian.PutUint16(pcm[i*4+2:], uint16(value))
	}
	return pcm
}

// PlayHit plays the connected-attack tone.
func (s *Synth) PlayHit() { s.play(s.hit) }

// PlayHurt plays the guard-broken tone.
func (s *Synth) PlayHurt() { s.play(s.hurt) }

// PlayParry plays the caught-strike tone.
func (s *Synth) PlayParry() { s.play(s.parry) }

// Register wires the synth to the combat events so the tones follow the
// fight without the arena knowing about audio.
func (s *Synth) Register(bus *events.Bus) {
	bus.Subscribe(combat.EventHitLanded, func(events.Event) {
		s.PlayHit()
	})
	bus.Subscribe(combat.EventGuardBroken, func(events.Event) {
		s.PlayHurt()
	})
	bus.Subscribe(combat.EventParryResolved, func(event events.Event) {
		if parry, ok := event.(combat.ParryResolvedEvent); ok && parry.Success {
			s.PlayParry()
		}
	})
}

func (s *Synth) play(pcm []byte) {
	if s.mute || s.context == nil {
		return
	}
	player := s.context.NewPlayerFromBytes(pcm)
	player.Play()
}
