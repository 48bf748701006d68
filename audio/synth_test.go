package audio

import (
	"encoding/binary"
	"testing"

	"fractal-gods/combat"
	"fractal-gods/events"
)

func TestTone_Shape(t *testing.T) {
	pcm := Tone(320, 0.12, 0.5)

	wantSamples := int(SampleRate * 0.12)
	if len(pcm) != wantSamples*4 {
		t.Fatalf("pcm length = %d bytes, want %d samples of stereo int16", len(pcm), wantSamples)
	}

	// Sine starts at zero and stays inside the requested volume.
	first := int16(binary.LittleEndian.Uint16(pcm))
	if first != 0 {
		t.Errorf("first sample = %d, want 0", first)
	}
	limit := int16(32767 * 0.5)
	for i := 0; i < wantSamples; i++ {
		left := int16(binary.LittleEndian.Uint16(pcm[i*4:]))
		right := int16(binary.LittleEndian.Uint16(pcm[i*4+2:]))
		if left != right {
			t.Fatalf("sample %d: channels differ (%d vs %d)", i, left, right)
		}
		if left > limit || left < -limit {
			t.Fatalf("sample %d = %d exceeds volume limit %d", i, left, limit)
		}
	}
}

func TestTone_DurationScalesLength(t *testing.T) {
	short := Tone(140, 0.1, 0.4)
	long := Tone(140, 0.2, 0.4)
	if len(long) != 2*len(short) {
		t.Errorf("doubling duration: %d vs %d bytes", len(short), len(long))
	}
}

func TestSynth_SilentWithoutContext(t *testing.T) {
	s := NewSynth(nil, false)

	// Must not panic with no audio device behind it.
	s.PlayHit()
	s.PlayHurt()
	s.PlayParry()
}

func TestSynth_RegisterFollowsCombatEvents(t *testing.T) {
	s := NewSynth(nil, true)
	bus := events.NewBus()
	s.Register(bus)

	bus.Emit(combat.HitLandedEvent{Damage: 12})
	bus.Emit(combat.GuardBrokenEvent{Damage: 18})
	bus.Emit(combat.ParryResolvedEvent{Success: true})
	bus.Emit(combat.ParryResolvedEvent{Success: false})
}
