package combat

import (
	"fractal-gods/events"
)

// Event types the arena emits while a bout runs. The battle feed and the
// audio synth subscribe to these.
const (
	EventHitLanded     events.EventType = "combat.hit_landed"
	EventParryResolved events.EventType = "combat.parry_resolved"
	EventGuardBroken   events.EventType = "combat.guard_broken"
	EventFightEnded    events.EventType = "combat.fight_ended"
)

// HitLandedEvent fires when the fighter's attack connects.
type HitLandedEvent struct {
	Damage  int
	Heavy   bool
	Stunned bool
}

func (HitLandedEvent) Type() events.EventType { return EventHitLanded }

// ParryResolvedEvent fires when an open parry window closes, either on a
// caught strike or on a whiff.
type ParryResolvedEvent struct {
	Success bool
}

func (ParryResolvedEvent) Type() events.EventType { return EventParryResolved }

// GuardBrokenEvent fires when the sentinel's strike lands on the fighter.
type GuardBrokenEvent struct {
	Damage int
}

func (GuardBrokenEvent) Type() events.EventType { return EventGuardBroken }

// FightEndedEvent fires once when a bout leaves the running mode.
type FightEndedEvent struct {
	Victory bool
}

func (FightEndedEvent) Type() events.EventType { return EventFightEnded }
