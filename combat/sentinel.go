package combat

import (
	"math"

	"fractal-gods/config"
)

// SentinelFlashTime is the longest hurt flash the sentinel shows; the
// renderer divides by it to fade the overlay.
const SentinelFlashTime = 0.3

// Patrol territory: the right half of the arena.
const (
	patrolMin = config.ScreenWidth / 2.0
	patrolMax = config.ScreenWidth - 80.0
)

// SentinelState is the enemy's behavior state.
type SentinelState int

const (
	StatePatrol SentinelState = iota
	StateChase
	StateWindup
	StateAttack
	StateRecover
	StateStunned
)

// String returns the state name for logs and feeds.
func (s SentinelState) String() string {
	switch s {
	case StatePatrol:
		return "patrol"
	case StateChase:
		return "chase"
	case StateWindup:
		return "windup"
	case StateAttack:
		return "attack"
	case StateRecover:
		return "recover"
	case StateStunned:
		return "stunned"
	default:
		return "unknown"
	}
}

// Sentinel is the arena's guardian. It walks its patrol ground until the
// fighter comes close, then chases, telegraphs and strikes.
type Sentinel struct {
	Box       Box
	VelX      float64
	MaxHealth int
	Health    int
	Facing    int

	State      SentinelState
	StateTimer float64
	AttackBox  *Box
	HitFlash   float64

	tuning *Tuning
}

// NewSentinel spawns the enemy at the given x, walking left on patrol.
func NewSentinel(x float64, tuning *Tuning) *Sentinel {
	return &Sentinel{
		Box:       Box{X: x, Y: config.GroundY - fighterHeight, W: fighterWidth, H: fighterHeight},
		VelX:      -tuning.Sentinel.PatrolSpeed,
		MaxHealth: tuning.Sentinel.MaxHealth,
		Health:    tuning.Sentinel.MaxHealth,
		Facing:    -1,
		State:     StatePatrol,
		tuning:    tuning,
	}
}

// Update advances the state machine by dt against the fighter's position.
func (s *Sentinel) Update(dt float64, player *Fighter) {
	switch s.State {
	case StatePatrol:
		s.patrol(dt)
		if math.Abs(player.Box.CenterX()-s.Box.CenterX()) < s.tuning.Sentinel.AggroRange {
			s.changeState(StateChase, 0)
		}
	case StateChase:
		s.chase(dt, player)
	case StateWindup:
		s.StateTimer -= dt
		if s.StateTimer <= 0 {
			s.changeState(StateAttack, s.tuning.Sentinel.AttackTime)
		}
	case StateAttack:
		s.StateTimer -= dt
		strike := Box{
			X: s.Box.CenterX() + float64(s.Facing)*45 - 50,
			Y: s.Box.CenterY() - 35,
			W: 100,
			H: 70,
		}
		s.AttackBox = &strike
		if s.StateTimer <= 0 {
			s.AttackBox = nil
			s.changeState(StateRecover, s.tuning.Sentinel.RecoverTime)
		}
	case StateRecover:
		s.StateTimer -= dt
		if s.StateTimer <= 0 {
			s.changeState(StatePatrol, 0)
		}
	case StateStunned:
		s.StateTimer -= dt
		if s.StateTimer <= 0 {
			s.changeState(StateRecover, s.tuning.Sentinel.StunRecoverTime)
		}
	}

	if s.HitFlash > 0 {
		s.HitFlash = max(0, s.HitFlash-dt)
	}
}

func (s *Sentinel) patrol(dt float64) {
	s.Box.X += s.VelX * dt
	if s.Box.X <= patrolMin {
		s.Box.X = patrolMin
		s.VelX = math.Abs(s.VelX)
		s.Facing = 1
	} else if s.Box.Right() >= patrolMax {
		s.Box.X = patrolMax - s.Box.W
		s.VelX = -math.Abs(s.VelX)
		s.Facing = -1
	}
}

func (s *Sentinel) chase(dt float64, player *Fighter) {
	direction := math.Copysign(1, player.Box.CenterX()-s.Box.CenterX())
	s.Facing = int(direction)
	s.Box.X += direction * s.tuning.Sentinel.ChaseSpeed * dt
	if math.Abs(player.Box.CenterX()-s.Box.CenterX()) < s.tuning.Sentinel.StrikeRange {
		s.changeState(StateWindup, s.tuning.Sentinel.WindupTime)
	}
}

func (s *Sentinel) changeState(state SentinelState, timer float64) {
	s.State = state
	s.StateTimer = timer
	if state == StateWindup || state == StateAttack {
		s.AttackBox = nil
	}
}

// ApplyKnockback shoves the sentinel along the hit direction, clamped to
// its territory.
func (s *Sentinel) ApplyKnockback(amount float64, direction int) {
	s.Box.X += float64(direction) * amount / 2
	s.Box.X = min(max(s.Box.X, patrolMin), patrolMax)
}

// Damage applies a hit: health, hurt flash, knockback and a stun.
func (s *Sentinel) Damage(amount int, knockback float64, direction int) {
	s.Health = max(0, s.Health-amount)
	s.HitFlash = 0.25
	s.ApplyKnockback(knockback, direction)
	s.changeState(StateStunned, s.tuning.Sentinel.StunTime)
}

// Parried cancels the strike and stuns the sentinel for the longer
// punish window.
func (s *Sentinel) Parried() {
	s.AttackBox = nil
	s.changeState(StateStunned, s.tuning.Sentinel.ParriedStunTime)
	s.HitFlash = SentinelFlashTime
}
