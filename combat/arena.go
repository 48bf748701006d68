package combat

import (
	"math/rand"

	"fractal-gods/config"
	"fractal-gods/events"
)

// Spawn marks and juice timings for a bout.
const (
	fighterSpawnX  = 260.0
	sentinelSpawnX = config.ScreenWidth - 220.0
	hitStopLight   = 0.055
	hitStopHeavy   = 0.08
	shakeDuration  = 0.35
	shakeLight     = 6.0
	shakeHeavy     = 10.0
	trailInterval  = 0.05
)

// Fade durations the renderer divides by.
const (
	TrailLife        = 0.25
	FeedbackDuration = 0.6
)

// Mode is the bout's lifecycle state.
type Mode int

const (
	ModeRunning Mode = iota
	ModeVictory
	ModeDefeat
)

// TrailSegment is one fading after-image of the fighter's blade arc.
type TrailSegment struct {
	Box   Box
	Heavy bool
	Life  float64
}

// Arena runs one bout between the fighter and the sentinel: fixed update
// order, hit resolution, and the presentation side effects (hit-stop,
// screen shake, blade trails, captions). Combat events go out on the bus
// as they happen.
type Arena struct {
	Tuning *Tuning
	Player *Fighter
	Enemy  *Sentinel
	Mode   Mode

	Trails         []TrailSegment
	HitStopTimer   float64
	ShakeTimer     float64
	ShakeX, ShakeY float64
	FeedbackText   string
	FeedbackTone   events.Tone
	FeedbackTimer  float64

	trailSpawnTimer float64
	shakeMagnitude  float64
	bus             *events.Bus
	rng             *rand.Rand
}

// NewArena sets up a fresh bout. The rng drives only the screen-shake
// jitter.
func NewArena(tuning *Tuning, bus *events.Bus, rng *rand.Rand) *Arena {
	return &Arena{
		Tuning: tuning,
		Player: NewFighter(fighterSpawnX, tuning),
		Enemy:  NewSentinel(sentinelSpawnX, tuning),
		Mode:   ModeRunning,
		bus:    bus,
		rng:    rng,
	}
}

// Reset restores the initial bout state, keeping the tuning, bus and rng.
func (a *Arena) Reset() {
	*a = *NewArena(a.Tuning, a.bus, a.rng)
}

// LightAttack forwards the key press to the fighter while the bout runs.
func (a *Arena) LightAttack() {
	if a.Mode == ModeRunning {
		a.Player.LightAttack()
	}
}

// HeavyAttack forwards the key press to the fighter while the bout runs.
func (a *Arena) HeavyAttack() {
	if a.Mode == ModeRunning {
		a.Player.HeavyAttack()
	}
}

// Parry forwards the key press to the fighter while the bout runs.
func (a *Arena) Parry() {
	if a.Mode == ModeRunning {
		a.Player.Parry()
	}
}

// Update advances the bout by dt. Hit-stop freezes the combatants but not
// the input sampling or the presentation timers, so held keys still steer
// the first frame after the freeze.
func (a *Arena) Update(dt float64, input Input) {
	if a.Mode != ModeRunning {
		return
	}

	a.Player.ApplyInput(input)

	effectiveDt := dt
	if a.HitStopTimer > 0 {
		a.HitStopTimer = max(0, a.HitStopTimer-dt)
		effectiveDt = 0
	}

	a.Player.Update(effectiveDt)
	a.Enemy.Update(effectiveDt, a.Player)

	a.updateTrails(dt)
	a.updateShake(dt)
	a.updateFeedback(dt)

	a.resolveFighterHit()
	a.resolveSentinelStrike()

	switch a.Player.ConsumeFeedback() {
	case FeedbackParrySuccess:
		a.setFeedback("PARRY!", events.ToneParry)
		a.emit(ParryResolvedEvent{Success: true})
	case FeedbackParryMiss:
		a.setFeedback("MISS", events.ToneCombat)
		a.emit(ParryResolvedEvent{Success: false})
	}

	if a.Player.Health <= 0 {
		a.Mode = ModeDefeat
		a.emit(FightEndedEvent{Victory: false})
	} else if a.Enemy.Health <= 0 {
		a.Mode = ModeVictory
		a.emit(FightEndedEvent{Victory: true})
	}
}

// resolveFighterHit lands the fighter's active hitbox on the sentinel at
// most once per swing. A stunned sentinel takes bonus damage and extra
// knockback.
func (a *Arena) resolveFighterHit() {
	attack := a.Player.CurrentAttack
	if a.Player.Hitbox == nil || attack == nil || a.Player.attackConnected {
		return
	}
	if !a.Player.Hitbox.Overlaps(a.Enemy.Box) {
		return
	}

	damage := attack.Damage
	knockback := attack.Knockback
	stunned := a.Enemy.State == StateStunned
	if stunned {
		damage += a.Tuning.StunBonusDamage
		knockback *= a.Tuning.StunKnockbackScale
	}
	a.Enemy.Damage(damage, knockback, a.Player.Facing)
	a.Player.attackConnected = true
	a.triggerHitEffects(a.Player.attackHeavy)
	a.emit(HitLandedEvent{Damage: damage, Heavy: a.Player.attackHeavy, Stunned: stunned})
}

// resolveSentinelStrike checks the sentinel's strike against the fighter.
// An open parry window catches it: the sentinel is stunned for the punish
// window and the fighter recovers stamina. Otherwise the strike lands and
// the sentinel backs off to recover.
func (a *Arena) resolveSentinelStrike() {
	if a.Enemy.AttackBox == nil || a.Enemy.State != StateAttack {
		return
	}
	if !a.Enemy.AttackBox.Overlaps(a.Player.Box) {
		return
	}

	if a.Player.ParryTimer > 0 {
		a.Player.RegisterParrySuccess()
		a.Enemy.Parried()
		a.Player.HealStamina(a.Tuning.ParryStaminaReward)
		return
	}

	a.Player.Damage(a.Tuning.Sentinel.StrikeDamage)
	a.Enemy.changeState(StateRecover, a.Tuning.Sentinel.HitRecoverTime)
	a.triggerHitEffects(false)
	a.setFeedback("BREAK", events.ToneAlert)
	a.emit(GuardBrokenEvent{Damage: a.Tuning.Sentinel.StrikeDamage})
}

func (a *Arena) updateTrails(dt float64) {
	if a.trailSpawnTimer > 0 {
		a.trailSpawnTimer = max(0, a.trailSpawnTimer-dt)
	}
	if a.Player.Hitbox != nil && a.Player.CurrentAttack != nil && a.trailSpawnTimer == 0 {
		a.Trails = append(a.Trails, TrailSegment{
			Box:   a.Player.Hitbox.Inflate(20, 10),
			Heavy: a.Player.attackHeavy,
			Life:  TrailLife,
		})
		a.trailSpawnTimer = trailInterval
	}

	alive := a.Trails[:0]
	for _, segment := range a.Trails {
		segment.Life -= dt
		if segment.Life > 0 {
			alive = append(alive, segment)
		}
	}
	a.Trails = alive
}

func (a *Arena) updateShake(dt float64) {
	if a.ShakeTimer > 0 {
		a.ShakeTimer = max(0, a.ShakeTimer-dt)
		magnitude := a.shakeMagnitude * (a.ShakeTimer / shakeDuration)
		a.ShakeX = (a.rng.Float64()*2 - 1) * magnitude
		a.ShakeY = (a.rng.Float64()*2 - 1) * magnitude * 0.6
	} else {
		a.ShakeX = 0
		a.ShakeY = 0
	}
}

func (a *Arena) updateFeedback(dt float64) {
	if a.FeedbackTimer > 0 {
		a.FeedbackTimer = max(0, a.FeedbackTimer-dt)
		if a.FeedbackTimer == 0 {
			a.FeedbackText = ""
		}
	}
}

func (a *Arena) triggerHitEffects(heavy bool) {
	if heavy {
		a.HitStopTimer = hitStopHeavy
		a.shakeMagnitude = shakeHeavy
	} else {
		a.HitStopTimer = hitStopLight
		a.shakeMagnitude = shakeLight
	}
	a.ShakeTimer = shakeDuration
}

func (a *Arena) setFeedback(text string, tone events.Tone) {
	a.FeedbackText = text
	a.FeedbackTone = tone
	a.FeedbackTimer = FeedbackDuration
}

func (a *Arena) emit(event events.Event) {
	if a.bus != nil {
		a.bus.Emit(event)
	}
}
