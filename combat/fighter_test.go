package combat

import (
	"testing"

	"fractal-gods/config"
)

const testDt = 1.0 / 60.0

func TestFighter_LightAttackSpendsStaminaOnce(t *testing.T) {
	f := NewFighter(100, DefaultTuning())

	f.LightAttack()
	if f.Stamina != 88 {
		t.Errorf("stamina after light attack = %v, want 88", f.Stamina)
	}
	if f.CurrentAttack == nil || f.AttackIsHeavy() {
		t.Fatal("expected a light attack in flight")
	}

	// A second press mid-swing is ignored.
	f.LightAttack()
	if f.Stamina != 88 {
		t.Errorf("stamina after ignored press = %v, want 88", f.Stamina)
	}
}

func TestFighter_AttackRequiresStamina(t *testing.T) {
	f := NewFighter(100, DefaultTuning())
	f.Stamina = 10

	f.HeavyAttack()
	if f.CurrentAttack != nil {
		t.Error("attack started with insufficient stamina")
	}
	if f.Stamina != 10 {
		t.Errorf("stamina = %v, want untouched 10", f.Stamina)
	}
}

func TestFighter_HitboxFollowsActiveWindow(t *testing.T) {
	f := NewFighter(500, DefaultTuning())
	f.LightAttack()

	step := func(n int) {
		for i := 0; i < n; i++ {
			f.Update(0.02)
		}
	}

	step(3) // ~0.06s elapsed, before the active window
	if f.Hitbox != nil {
		t.Error("hitbox live before the active window")
	}

	step(2) // ~0.10s elapsed, inside the window
	if f.Hitbox == nil {
		t.Fatal("hitbox missing inside the active window")
	}
	if f.Hitbox.X <= f.Box.CenterX() {
		t.Errorf("hitbox at %v should extend in front of a right-facing fighter", f.Hitbox.X)
	}

	step(5) // ~0.20s elapsed, past the window
	if f.Hitbox != nil {
		t.Error("hitbox live after the active window")
	}

	step(3) // past the full duration
	if f.CurrentAttack != nil {
		t.Error("attack still in flight after its duration")
	}
}

func TestFighter_ParryWhiffQueuesMiss(t *testing.T) {
	f := NewFighter(100, DefaultTuning())

	f.Parry()
	if f.Stamina != 84 {
		t.Errorf("stamina after parry = %v, want 84", f.Stamina)
	}
	if f.ParryTimer != 0.25 {
		t.Errorf("parry window = %v, want 0.25", f.ParryTimer)
	}

	// A second press inside the window is ignored.
	f.Parry()
	if f.Stamina != 84 {
		t.Errorf("stamina after ignored press = %v, want 84", f.Stamina)
	}

	for i := 0; i < 3; i++ {
		f.Update(0.1)
	}
	if f.ParryTimer != 0 {
		t.Errorf("parry window still open: %v", f.ParryTimer)
	}
	if got := f.ConsumeFeedback(); got != FeedbackParryMiss {
		t.Errorf("feedback = %v, want miss", got)
	}
	if got := f.ConsumeFeedback(); got != FeedbackNone {
		t.Errorf("feedback not cleared after consume: %v", got)
	}
}

func TestFighter_ParrySuccessStopsWhiff(t *testing.T) {
	f := NewFighter(100, DefaultTuning())

	f.Parry()
	f.RegisterParrySuccess()
	for i := 0; i < 5; i++ {
		f.Update(0.1)
	}

	got := f.ConsumeFeedback()
	if got != FeedbackParrySuccess {
		t.Errorf("feedback = %v, want success", got)
	}
}

func TestFighter_CrouchShrinksAndRestores(t *testing.T) {
	f := NewFighter(100, DefaultTuning())
	standingY := f.Box.Y

	f.ApplyInput(Input{Crouch: true})
	if !f.Crouching || f.Box.H != crouchHeight {
		t.Fatalf("crouch state = %v, height = %v", f.Crouching, f.Box.H)
	}
	if f.Box.Y != standingY+fighterHeight-crouchHeight {
		t.Errorf("crouch did not drop the box top: y = %v", f.Box.Y)
	}

	// Crouched movement is slower.
	f.ApplyInput(Input{Crouch: true, Right: true})
	if want := 280 * 0.6; f.VelX != want {
		t.Errorf("crouched speed = %v, want %v", f.VelX, want)
	}

	f.ApplyInput(Input{})
	if f.Crouching || f.Box.H != fighterHeight || f.Box.Y != standingY {
		t.Errorf("stand did not restore the box: h = %v, y = %v", f.Box.H, f.Box.Y)
	}
}

func TestFighter_JumpArcLandsOnGround(t *testing.T) {
	f := NewFighter(300, DefaultTuning())

	f.ApplyInput(Input{Jump: true})
	if f.OnGround || f.VelY != -780 {
		t.Fatalf("jump state: onGround = %v, velY = %v", f.OnGround, f.VelY)
	}

	rose := false
	for i := 0; i < 120; i++ {
		f.Update(testDt)
		if f.Box.Bottom() < config.GroundY-10 {
			rose = true
		}
	}
	if !rose {
		t.Error("fighter never left the ground")
	}
	if !f.OnGround || f.Box.Bottom() != config.GroundY {
		t.Errorf("fighter did not land: onGround = %v, bottom = %v", f.OnGround, f.Box.Bottom())
	}
}

func TestFighter_ClampedToArenaWalls(t *testing.T) {
	tuning := DefaultTuning()

	left := NewFighter(0, tuning)
	left.Update(testDt)
	if left.Box.X != arenaMargin {
		t.Errorf("left clamp: x = %v, want %v", left.Box.X, arenaMargin)
	}

	right := NewFighter(config.ScreenWidth, tuning)
	right.Update(testDt)
	if want := config.ScreenWidth - arenaMargin - fighterWidth; right.Box.X != want {
		t.Errorf("right clamp: x = %v, want %v", right.Box.X, want)
	}
}

func TestFighter_StaminaRegenCapped(t *testing.T) {
	f := NewFighter(100, DefaultTuning())
	f.Stamina = 99.9

	f.Update(testDt)
	if f.Stamina != f.MaxStamina {
		t.Errorf("stamina = %v, want capped at %v", f.Stamina, f.MaxStamina)
	}
}
