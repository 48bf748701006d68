package combat

import (
	"math/rand"
	"testing"

	"fractal-gods/events"
)

func newTestArena() *Arena {
	return NewArena(DefaultTuning(), nil, rand.New(rand.NewSource(7)))
}

// placeStrike lines the sentinel up over the fighter and puts it straight
// into the attack state, so the next update resolves a strike.
func placeStrike(a *Arena) {
	a.Enemy.Box.X = a.Player.Box.X + 60
	a.Enemy.Facing = -1
	a.Enemy.changeState(StateAttack, a.Tuning.Sentinel.AttackTime)
}

func TestArena_ParryCatchesStrike(t *testing.T) {
	a := newTestArena()
	placeStrike(a)

	a.Parry()
	a.Update(testDt, Input{})

	if a.Enemy.State != StateStunned {
		t.Fatalf("enemy state = %v, want stunned", a.Enemy.State)
	}
	if a.Enemy.StateTimer != a.Tuning.Sentinel.ParriedStunTime {
		t.Errorf("stun timer = %v, want %v", a.Enemy.StateTimer, a.Tuning.Sentinel.ParriedStunTime)
	}
	if a.FeedbackText != "PARRY!" {
		t.Errorf("feedback = %q, want PARRY!", a.FeedbackText)
	}
	if a.Player.Stamina != a.Player.MaxStamina {
		t.Errorf("stamina = %v, want refilled to %v", a.Player.Stamina, a.Player.MaxStamina)
	}
	if a.Player.Health != a.Player.MaxHealth {
		t.Errorf("health = %d, parried strike must not damage", a.Player.Health)
	}
}

func TestArena_UnparriedStrikeBreaksGuard(t *testing.T) {
	a := newTestArena()
	placeStrike(a)

	a.Update(testDt, Input{})

	if want := a.Player.MaxHealth - a.Tuning.Sentinel.StrikeDamage; a.Player.Health != want {
		t.Errorf("health = %d, want %d", a.Player.Health, want)
	}
	if a.FeedbackText != "BREAK" {
		t.Errorf("feedback = %q, want BREAK", a.FeedbackText)
	}
	if a.Enemy.State != StateRecover || a.Enemy.StateTimer != a.Tuning.Sentinel.HitRecoverTime {
		t.Errorf("enemy = %v timer %v, want recovering for %v",
			a.Enemy.State, a.Enemy.StateTimer, a.Tuning.Sentinel.HitRecoverTime)
	}
	if a.HitStopTimer != hitStopLight {
		t.Errorf("hit stop = %v, want %v", a.HitStopTimer, hitStopLight)
	}
	if a.Mode != ModeRunning {
		t.Errorf("mode = %v, want still running", a.Mode)
	}
}

// landLightHit walks the arena forward until the fighter's light attack
// connects, returning the number of frames it took.
func landLightHit(t *testing.T, a *Arena) int {
	t.Helper()
	before := a.Enemy.Health
	a.LightAttack()
	for i := 1; i <= 20; i++ {
		a.Update(testDt, Input{})
		if a.Enemy.Health < before {
			return i
		}
	}
	t.Fatal("light attack never connected")
	return 0
}

func TestArena_StunnedSentinelTakesBonusDamage(t *testing.T) {
	a := newTestArena()
	a.Player.Box.X = 500
	a.Enemy.Box.X = 580
	a.Enemy.changeState(StateStunned, 2)

	landLightHit(t, a)

	want := a.Enemy.MaxHealth - a.Tuning.Light.Damage - a.Tuning.StunBonusDamage
	if a.Enemy.Health != want {
		t.Fatalf("health = %d, want %d with the stun bonus", a.Enemy.Health, want)
	}

	// The swing connects once; later active frames must not hit again.
	for i := 0; i < 5; i++ {
		a.Update(testDt, Input{})
	}
	if a.Enemy.Health != want {
		t.Errorf("health = %d after extra frames, swing hit twice", a.Enemy.Health)
	}
}

func TestArena_HitStopFreezesMovementOnly(t *testing.T) {
	a := newTestArena()
	a.Player.Box.X = 500
	a.Enemy.Box.X = 580
	a.Enemy.changeState(StateStunned, 2)

	landLightHit(t, a)
	if a.HitStopTimer == 0 {
		t.Fatal("no hit stop after a connected hit")
	}

	playerX := a.Player.Box.X
	a.Update(testDt, Input{Right: true})
	if a.Player.Box.X != playerX {
		t.Errorf("fighter moved during hit stop: %v -> %v", playerX, a.Player.Box.X)
	}

	// Run the freeze out; held input moves the fighter again.
	for i := 0; i < 6; i++ {
		a.Update(testDt, Input{Right: true})
	}
	if a.Player.Box.X <= playerX {
		t.Error("fighter still frozen after hit stop expired")
	}
}

func TestArena_TrailsSpawnAndExpire(t *testing.T) {
	a := newTestArena()
	a.Player.Box.X = 500
	a.LightAttack()

	spawned := false
	for i := 0; i < 20; i++ {
		a.Update(testDt, Input{})
		if len(a.Trails) > 0 {
			spawned = true
		}
	}
	if !spawned {
		t.Fatal("no blade trails during the swing")
	}

	for i := 0; i < 40; i++ {
		a.Update(testDt, Input{})
	}
	if len(a.Trails) != 0 {
		t.Errorf("%d trails alive long after the swing", len(a.Trails))
	}
}

func TestArena_VictoryOnSentinelDefeat(t *testing.T) {
	a := newTestArena()
	a.Player.Box.X = 500
	a.Enemy.Box.X = 580
	a.Enemy.changeState(StateStunned, 2)
	a.Enemy.Health = 1

	landLightHit(t, a)

	if a.Mode != ModeVictory {
		t.Fatalf("mode = %v, want victory", a.Mode)
	}

	// A finished bout ignores further updates and inputs.
	staminaBefore := a.Player.Stamina
	xBefore := a.Player.Box.X
	a.LightAttack()
	a.Update(testDt, Input{Right: true})
	if a.Player.Stamina != staminaBefore || a.Player.Box.X != xBefore {
		t.Error("finished bout still accepts play")
	}
}

func TestArena_DefeatOnFighterDeath(t *testing.T) {
	a := newTestArena()
	a.Player.Health = a.Tuning.Sentinel.StrikeDamage
	placeStrike(a)

	a.Update(testDt, Input{})

	if a.Mode != ModeDefeat {
		t.Fatalf("mode = %v, want defeat", a.Mode)
	}
	if a.Player.Health != 0 {
		t.Errorf("health = %d, want 0", a.Player.Health)
	}
}

func TestArena_ResetRestoresBout(t *testing.T) {
	a := newTestArena()
	placeStrike(a)
	a.Update(testDt, Input{})
	a.Player.Health = 1
	a.Mode = ModeDefeat

	a.Reset()

	if a.Mode != ModeRunning {
		t.Errorf("mode = %v, want running", a.Mode)
	}
	if a.Player.Health != a.Player.MaxHealth || a.Enemy.Health != a.Enemy.MaxHealth {
		t.Errorf("pools not restored: %d, %d", a.Player.Health, a.Enemy.Health)
	}
	if a.Player.Box.X != fighterSpawnX || a.Enemy.Box.X != sentinelSpawnX {
		t.Errorf("spawns not restored: %v, %v", a.Player.Box.X, a.Enemy.Box.X)
	}
	if a.FeedbackText != "" || len(a.Trails) != 0 {
		t.Error("presentation state not cleared")
	}
}

func TestArena_EmitsCombatEvents(t *testing.T) {
	bus := events.NewBus()
	var hits []HitLandedEvent
	var parries []ParryResolvedEvent
	var breaks []GuardBrokenEvent
	var ends []FightEndedEvent
	bus.Subscribe(EventHitLanded, func(e events.Event) {
		if hit, ok := e.(HitLandedEvent); ok {
			hits = append(hits, hit)
		}
	})
	bus.Subscribe(EventParryResolved, func(e events.Event) {
		if parry, ok := e.(ParryResolvedEvent); ok {
			parries = append(parries, parry)
		}
	})
	bus.Subscribe(EventGuardBroken, func(e events.Event) {
		if guard, ok := e.(GuardBrokenEvent); ok {
			breaks = append(breaks, guard)
		}
	})
	bus.Subscribe(EventFightEnded, func(e events.Event) {
		if end, ok := e.(FightEndedEvent); ok {
			ends = append(ends, end)
		}
	})

	a := NewArena(DefaultTuning(), bus, rand.New(rand.NewSource(7)))
	a.Player.Box.X = 500
	a.Enemy.Box.X = 580
	a.Enemy.changeState(StateStunned, 2)
	a.Enemy.Health = 1
	landLightHit(t, a)

	if len(hits) != 1 {
		t.Fatalf("got %d hit events, want 1", len(hits))
	}
	if !hits[0].Stunned || hits[0].Heavy {
		t.Errorf("hit event = %+v, want stunned light hit", hits[0])
	}
	if len(ends) != 1 || !ends[0].Victory {
		t.Errorf("end events = %+v, want one victory", ends)
	}

	a.Reset()
	placeStrike(a)
	a.Parry()
	a.Update(testDt, Input{})
	if len(parries) != 1 || !parries[0].Success {
		t.Errorf("parry events = %+v, want one success", parries)
	}

	a.Reset()
	placeStrike(a)
	a.Update(testDt, Input{})
	if len(breaks) != 1 || breaks[0].Damage != a.Tuning.Sentinel.StrikeDamage {
		t.Errorf("guard break events = %+v", breaks)
	}
}
