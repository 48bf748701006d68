package combat

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrBadTuning marks a tuning file whose numbers cannot drive the arena.
var ErrBadTuning = errors.New("invalid combat tuning")

// AttackSpec describes one attack: cost, timing and reach. The hitbox is
// live only between ActiveStart and ActiveEnd of the attack's duration.
type AttackSpec struct {
	Damage      int     `json:"damage"`
	StaminaCost float64 `json:"stamina_cost"`
	Duration    float64 `json:"duration"`
	Cooldown    float64 `json:"cooldown"`
	HitboxWidth float64 `json:"hitbox_width"`
	Knockback   float64 `json:"knockback"`
	ActiveStart float64 `json:"active_start"`
	ActiveEnd   float64 `json:"active_end"`
}

// SentinelTuning holds the enemy's stats and state-machine timings.
type SentinelTuning struct {
	MaxHealth       int     `json:"max_health"`
	PatrolSpeed     float64 `json:"patrol_speed"`
	ChaseSpeed      float64 `json:"chase_speed"`
	AggroRange      float64 `json:"aggro_range"`
	StrikeRange     float64 `json:"strike_range"`
	StrikeDamage    int     `json:"strike_damage"`
	WindupTime      float64 `json:"windup_time"`
	AttackTime      float64 `json:"attack_time"`
	RecoverTime     float64 `json:"recover_time"`
	StunTime        float64 `json:"stun_time"`
	ParriedStunTime float64 `json:"parried_stun_time"`
	StunRecoverTime float64 `json:"stun_recover_time"`
	HitRecoverTime  float64 `json:"hit_recover_time"`
}

// Tuning is the complete balance sheet for the arena. Defaults are
// compiled in; a JSON file can override any subset of them.
type Tuning struct {
	Gravity            float64        `json:"gravity"`
	MoveSpeed          float64        `json:"move_speed"`
	CrouchFactor       float64        `json:"crouch_factor"`
	JumpImpulse        float64        `json:"jump_impulse"`
	FighterHealth      int            `json:"fighter_health"`
	FighterStamina     float64        `json:"fighter_stamina"`
	StaminaRegen       float64        `json:"stamina_regen"`
	ParryCost          float64        `json:"parry_cost"`
	ParryWindow        float64        `json:"parry_window"`
	ParryCooldown      float64        `json:"parry_cooldown"`
	ParryStaminaReward float64        `json:"parry_stamina_reward"`
	StunBonusDamage    int            `json:"stun_bonus_damage"`
	StunKnockbackScale float64        `json:"stun_knockback_scale"`
	Light              AttackSpec     `json:"light"`
	Heavy              AttackSpec     `json:"heavy"`
	Sentinel           SentinelTuning `json:"sentinel"`
}

// DefaultTuning returns the stock balance numbers.
func DefaultTuning() *Tuning {
	return &Tuning{
		Gravity:            2200,
		MoveSpeed:          280,
		CrouchFactor:       0.6,
		JumpImpulse:        780,
		FighterHealth:      100,
		FighterStamina:     100,
		StaminaRegen:       26,
		ParryCost:          16,
		ParryWindow:        0.25,
		ParryCooldown:      0.6,
		ParryStaminaReward: 18,
		StunBonusDamage:    6,
		StunKnockbackScale: 1.2,
		Light: AttackSpec{
			Damage:      12,
			StaminaCost: 12,
			Duration:    0.24,
			Cooldown:    0.35,
			HitboxWidth: 70,
			Knockback:   220,
			ActiveStart: 0.08,
			ActiveEnd:   0.18,
		},
		Heavy: AttackSpec{
			Damage:      24,
			StaminaCost: 24,
			Duration:    0.42,
			Cooldown:    0.62,
			HitboxWidth: 96,
			Knockback:   340,
			ActiveStart: 0.12,
			ActiveEnd:   0.28,
		},
		Sentinel: SentinelTuning{
			MaxHealth:       120,
			PatrolSpeed:     120,
			ChaseSpeed:      200,
			AggroRange:      220,
			StrikeRange:     120,
			StrikeDamage:    18,
			WindupTime:      0.35,
			AttackTime:      0.22,
			RecoverTime:     0.5,
			StunTime:        0.5,
			ParriedStunTime: 0.75,
			StunRecoverTime: 0.6,
			HitRecoverTime:  0.8,
		},
	}
}

// LoadTuning reads a tuning file and overlays it on the defaults, so a
// file only needs the numbers it changes. The merged result is validated
// before use.
func LoadTuning(path string) (*Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning file: %w", err)
	}

	tuning := DefaultTuning()
	if err := json.Unmarshal(data, tuning); err != nil {
		return nil, fmt.Errorf("failed to parse tuning JSON: %w", err)
	}
	if err := tuning.Validate(); err != nil {
		return nil, err
	}
	return tuning, nil
}

// Validate rejects numbers the arena cannot run on.
func (t *Tuning) Validate() error {
	if t.Gravity <= 0 || t.MoveSpeed <= 0 || t.JumpImpulse <= 0 {
		return fmt.Errorf("%w: movement values must be positive", ErrBadTuning)
	}
	if t.CrouchFactor <= 0 || t.CrouchFactor > 1 {
		return fmt.Errorf("%w: crouch factor %v outside (0, 1]", ErrBadTuning, t.CrouchFactor)
	}
	if t.FighterHealth <= 0 || t.FighterStamina <= 0 || t.Sentinel.MaxHealth <= 0 {
		return fmt.Errorf("%w: health and stamina pools must be positive", ErrBadTuning)
	}
	if t.ParryWindow <= 0 || t.ParryCooldown <= 0 || t.ParryCost < 0 {
		return fmt.Errorf("%w: parry timing must be positive", ErrBadTuning)
	}
	if err := t.Light.check("light"); err != nil {
		return err
	}
	if err := t.Heavy.check("heavy"); err != nil {
		return err
	}
	s := t.Sentinel
	if s.PatrolSpeed <= 0 || s.ChaseSpeed <= 0 || s.AggroRange <= 0 || s.StrikeRange <= 0 {
		return fmt.Errorf("%w: sentinel movement values must be positive", ErrBadTuning)
	}
	if s.WindupTime <= 0 || s.AttackTime <= 0 || s.RecoverTime <= 0 ||
		s.StunTime <= 0 || s.ParriedStunTime <= 0 || s.StunRecoverTime <= 0 || s.HitRecoverTime <= 0 {
		return fmt.Errorf("%w: sentinel state timings must be positive", ErrBadTuning)
	}
	return nil
}

func (a AttackSpec) check(name string) error {
	if a.Damage <= 0 || a.StaminaCost < 0 {
		return fmt.Errorf("%w: %s attack damage/cost", ErrBadTuning, name)
	}
	if a.Duration <= 0 || a.Cooldown <= 0 || a.HitboxWidth <= 0 {
		return fmt.Errorf("%w: %s attack timing/reach must be positive", ErrBadTuning, name)
	}
	if a.ActiveStart < 0 || a.ActiveEnd <= a.ActiveStart || a.ActiveEnd > a.Duration {
		return fmt.Errorf("%w: %s attack active window %v..%v outside duration %v",
			ErrBadTuning, name, a.ActiveStart, a.ActiveEnd, a.Duration)
	}
	return nil
}
