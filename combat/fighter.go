package combat

import (
	"fractal-gods/config"
)

const (
	fighterWidth  = 54.0
	fighterHeight = 90.0
	crouchHeight  = 60.0
	arenaMargin   = 30.0
)

// Flash durations the renderer divides by to fade its overlays.
const (
	HitFlashTime   = 0.25
	ParryFlashTime = 0.4
)

// Feedback is the parry verdict the fighter queues for the arena to
// consume on the frame it resolves.
type Feedback int

const (
	FeedbackNone Feedback = iota
	FeedbackParrySuccess
	FeedbackParryMiss
)

// Input is the held-key state for one frame. Attacks and parries are
// edge-triggered and arrive as method calls instead.
type Input struct {
	Left   bool
	Right  bool
	Jump   bool
	Crouch bool
}

// Fighter is the player-controlled combatant.
type Fighter struct {
	Box        Box
	VelX, VelY float64
	MaxHealth  int
	Health     int
	MaxStamina float64
	Stamina    float64
	Facing     int
	Crouching  bool
	OnGround   bool

	AttackTimer    float64
	AttackCooldown float64
	CurrentAttack  *AttackSpec
	Hitbox         *Box

	ParryTimer        float64
	ParryCooldown     float64
	ParrySuccessFlash float64
	HitFlash          float64

	tuning          *Tuning
	attackHeavy     bool
	attackConnected bool
	parryTriggered  bool
	parrySuccessful bool
	pendingFeedback Feedback
}

// NewFighter spawns the player at the given x, grounded and facing right
// with full pools.
func NewFighter(x float64, tuning *Tuning) *Fighter {
	return &Fighter{
		Box:        Box{X: x, Y: config.GroundY - fighterHeight, W: fighterWidth, H: fighterHeight},
		MaxHealth:  tuning.FighterHealth,
		Health:     tuning.FighterHealth,
		MaxStamina: tuning.FighterStamina,
		Stamina:    tuning.FighterStamina,
		Facing:     1,
		OnGround:   true,
		tuning:     tuning,
	}
}

// ApplyInput turns held keys into velocity, facing, crouch and jump state.
func (f *Fighter) ApplyInput(input Input) {
	speed := f.tuning.MoveSpeed
	if f.Crouching {
		speed *= f.tuning.CrouchFactor
	}

	f.VelX = 0
	if input.Left {
		f.VelX = -speed
		f.Facing = -1
	}
	if input.Right {
		f.VelX = speed
		f.Facing = 1
	}

	if input.Crouch && f.OnGround {
		if !f.Crouching {
			f.Box.H = crouchHeight
			f.Box.Y += fighterHeight - crouchHeight
		}
		f.Crouching = true
	} else if f.Crouching {
		f.Box.Y -= fighterHeight - crouchHeight
		f.Box.H = fighterHeight
		f.Crouching = false
	}

	if input.Jump && f.OnGround {
		f.VelY = -f.tuning.JumpImpulse
		f.OnGround = false
	}
}

// LightAttack starts the fast strike if stamina and cooldowns allow.
func (f *Fighter) LightAttack() {
	f.triggerAttack(&f.tuning.Light, false)
}

// HeavyAttack starts the slow strike if stamina and cooldowns allow.
func (f *Fighter) HeavyAttack() {
	f.triggerAttack(&f.tuning.Heavy, true)
}

func (f *Fighter) triggerAttack(spec *AttackSpec, heavy bool) {
	if f.AttackTimer > 0 || f.AttackCooldown > 0 {
		return
	}
	if f.Stamina < spec.StaminaCost {
		return
	}
	f.Stamina -= spec.StaminaCost
	f.AttackTimer = spec.Duration
	f.AttackCooldown = spec.Cooldown
	f.CurrentAttack = spec
	f.Hitbox = nil
	f.attackHeavy = heavy
	f.attackConnected = false
}

// Parry opens the parry window if stamina and its cooldown allow. Whether
// it connects is decided later, when (and if) the sentinel's strike lands
// inside the window.
func (f *Fighter) Parry() {
	if f.ParryTimer > 0 || f.ParryCooldown > 0 {
		return
	}
	if f.Stamina < f.tuning.ParryCost {
		return
	}
	f.Stamina -= f.tuning.ParryCost
	f.ParryTimer = f.tuning.ParryWindow
	f.ParryCooldown = f.tuning.ParryCooldown
	f.parryTriggered = true
	f.parrySuccessful = false
}

// Update advances physics, attack and parry timers, and stamina by dt.
func (f *Fighter) Update(dt float64) {
	f.VelY += f.tuning.Gravity * dt
	f.Box.X += f.VelX * dt
	f.Box.Y += f.VelY * dt

	if f.Box.Bottom() >= config.GroundY {
		f.Box.Y = config.GroundY - f.Box.H
		f.VelY = 0
		f.OnGround = true
	} else {
		f.OnGround = false
	}

	if f.Box.X < arenaMargin {
		f.Box.X = arenaMargin
	}
	if f.Box.Right() > config.ScreenWidth-arenaMargin {
		f.Box.X = config.ScreenWidth - arenaMargin - f.Box.W
	}

	if f.AttackTimer > 0 && f.CurrentAttack != nil {
		f.AttackTimer = max(0, f.AttackTimer-dt)
		elapsed := f.CurrentAttack.Duration - f.AttackTimer
		if elapsed >= f.CurrentAttack.ActiveStart && elapsed <= f.CurrentAttack.ActiveEnd {
			offset := f.CurrentAttack.HitboxWidth * float64(f.Facing)
			hitbox := Box{
				X: f.Box.CenterX() + offset - f.CurrentAttack.HitboxWidth/2,
				Y: f.Box.CenterY() - 34,
				W: f.CurrentAttack.HitboxWidth,
				H: 68,
			}
			f.Hitbox = &hitbox
		} else {
			f.Hitbox = nil
		}
		if f.AttackTimer <= 0 {
			f.Hitbox = nil
			f.CurrentAttack = nil
		}
	} else {
		f.Hitbox = nil
		f.CurrentAttack = nil
	}

	if f.AttackCooldown > 0 {
		f.AttackCooldown = max(0, f.AttackCooldown-dt)
	}
	if f.ParryTimer > 0 {
		f.ParryTimer = max(0, f.ParryTimer-dt)
	}
	if f.ParryCooldown > 0 {
		f.ParryCooldown = max(0, f.ParryCooldown-dt)
	}
	if f.ParrySuccessFlash > 0 {
		f.ParrySuccessFlash = max(0, f.ParrySuccessFlash-dt)
	}
	if f.HitFlash > 0 {
		f.HitFlash = max(0, f.HitFlash-dt)
	}

	if f.Stamina < f.MaxStamina {
		f.Stamina = min(f.MaxStamina, f.Stamina+f.tuning.StaminaRegen*dt)
	}

	// A parry window that expired without connecting is a whiff.
	if f.ParryTimer <= 0 && f.parryTriggered && !f.parrySuccessful {
		f.pendingFeedback = FeedbackParryMiss
		f.parryTriggered = false
	}
}

// AttackIsHeavy reports whether the in-flight attack is the heavy one.
func (f *Fighter) AttackIsHeavy() bool {
	return f.CurrentAttack != nil && f.attackHeavy
}

// Damage applies a hit to the fighter and starts the hurt flash.
func (f *Fighter) Damage(amount int) {
	f.Health = max(0, f.Health-amount)
	f.HitFlash = HitFlashTime
}

// HealStamina restores stamina up to the cap.
func (f *Fighter) HealStamina(amount float64) {
	f.Stamina = min(f.MaxStamina, f.Stamina+amount)
}

// RegisterParrySuccess marks the open window as connected and starts the
// success flash.
func (f *Fighter) RegisterParrySuccess() {
	f.parrySuccessful = true
	f.parryTriggered = false
	f.pendingFeedback = FeedbackParrySuccess
	f.ParrySuccessFlash = ParryFlashTime
}

// ConsumeFeedback returns the queued parry verdict and clears it.
func (f *Fighter) ConsumeFeedback() Feedback {
	feedback := f.pendingFeedback
	f.pendingFeedback = FeedbackNone
	return feedback
}
