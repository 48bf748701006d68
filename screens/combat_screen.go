package screens

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"fractal-gods/audio"
	"fractal-gods/combat"
	"fractal-gods/config"
	"fractal-gods/events"
)

// backgroundPadding extends the sky gradient past the screen so screen
// shake never exposes a bare edge.
const backgroundPadding = 80

// Fighter and sentinel paint colors.
var (
	fighterBody = color.RGBA{25, 45, 110, 255}
	fighterEdge = color.RGBA{140, 220, 255, 255}
	fighterAura = color.RGBA{90, 140, 255, 255}
	fighterFace = color.RGBA{10, 20, 50, 255}

	sentinelBody = color.RGBA{50, 10, 70, 255}
	sentinelEdge = color.RGBA{220, 150, 255, 255}
	sentinelAura = color.RGBA{180, 90, 255, 255}
	sentinelFace = color.RGBA{25, 5, 40, 255}

	bladeFill    = color.RGBA{180, 240, 255, 255}
	bladeOutline = color.RGBA{90, 150, 255, 255}
	scytheFill   = color.RGBA{240, 180, 255, 255}
	scytheEdge   = color.RGBA{120, 40, 200, 255}

	trailLight = color.RGBA{160, 220, 255, 255}
	trailHeavy = color.RGBA{200, 160, 255, 255}
)

// CombatScreen renders and drives one arena bout.
type CombatScreen struct {
	fonts      *Fonts
	arena      *combat.Arena
	bus        *events.Bus
	feed       *events.Feed
	background *ebiten.Image
}

// NewCombatScreen builds a bout over the given tuning and hooks the feed
// and the synthesizer onto the combat event bus.
func NewCombatScreen(tuning *combat.Tuning, synth *audio.Synth, fonts *Fonts, rng *rand.Rand) *CombatScreen {
	s := &CombatScreen{
		fonts:      fonts,
		bus:        events.NewBus(),
		feed:       events.NewFeed(12),
		background: buildGradient(),
	}

	s.arena = combat.NewArena(tuning, s.bus, rng)
	synth.Register(s.bus)
	s.subscribeFeed()

	s.feed.Add("an echo sentinel bars the way", events.ToneMyth)
	return s
}

// subscribeFeed turns combat events into battle feed lines.
func (s *CombatScreen) subscribeFeed() {
	s.bus.Subscribe(combat.EventHitLanded, func(event events.Event) {
		hit, ok := event.(combat.HitLandedEvent)
		if !ok {
			return
		}
		switch {
		case hit.Stunned:
			s.feed.Add(fmt.Sprintf("punish lands on the stunned sentinel (%d dmg)", hit.Damage), events.ToneCombat)
		case hit.Heavy:
			s.feed.Add(fmt.Sprintf("heavy arc crushes the sentinel (%d dmg)", hit.Damage), events.ToneCombat)
		default:
			s.feed.Add(fmt.Sprintf("light arc cuts the sentinel (%d dmg)", hit.Damage), events.ToneCombat)
		}
	})
	s.bus.Subscribe(combat.EventParryResolved, func(event events.Event) {
		parry, ok := event.(combat.ParryResolvedEvent)
		if !ok {
			return
		}
		if parry.Success {
			s.feed.Add("parry rings true, the sentinel reels", events.ToneParry)
		} else {
			s.feed.Add("parry whiffs on empty air", events.ToneNormal)
		}
	})
	s.bus.Subscribe(combat.EventGuardBroken, func(event events.Event) {
		broken, ok := event.(combat.GuardBrokenEvent)
		if !ok {
			return
		}
		s.feed.Add(fmt.Sprintf("sentinel strike breaks through (%d dmg)", broken.Damage), events.ToneAlert)
	})
	s.bus.Subscribe(combat.EventFightEnded, func(event events.Event) {
		ended, ok := event.(combat.FightEndedEvent)
		if !ok {
			return
		}
		if ended.Victory {
			s.feed.Add("the echo sentinel dissolves into static", events.ToneMyth)
		} else {
			s.feed.Add("the sovereign falls, the myth rewinds", events.ToneMyth)
		}
	})
}

// buildGradient paints the dusk sky once at startup.
func buildGradient() *ebiten.Image {
	width := config.ScreenWidth + backgroundPadding*2
	height := config.ScreenHeight + backgroundPadding*2
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		t := float64(y) / float64(height)
		clr := color.RGBA{
			R: uint8(25 + 90*t),
			G: uint8(12 + 30*t),
			B: uint8(60 + 140*(1-t)),
			A: 255,
		}
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, clr)
		}
	}
	return ebiten.NewImageFromImage(img)
}

// Update samples the keyboard and steps the bout one fixed frame.
func (s *CombatScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrCloseScreen
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.arena.Reset()
		s.feed.Clear()
		s.feed.Add("the bout rewinds to its first frame", events.ToneSystem)
	}

	if inpututil.IsKeyJustPressed(ebiten.Key1) {
		s.arena.LightAttack()
	}
	if inpututil.IsKeyJustPressed(ebiten.Key2) {
		s.arena.HeavyAttack()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		s.arena.Parry()
	}

	input := combat.Input{
		Left:   ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:  ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Jump:   ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeySpace),
		Crouch: ebiten.IsKeyPressed(ebiten.KeyS),
	}
	s.arena.Update(1.0/config.TPS, input)

	return nil
}

// Draw renders the bout back to front: sky, arena floor, trails, fighters,
// then the unshaken UI layers.
func (s *CombatScreen) Draw(screen *ebiten.Image) {
	offX, offY := s.arena.ShakeX, s.arena.ShakeY

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(offX-backgroundPadding, offY-backgroundPadding)
	screen.DrawImage(s.background, op)

	s.drawArena(screen, offX, offY)
	s.drawTrails(screen, offX, offY)
	s.drawFighter(screen, offX, offY)
	s.drawSentinel(screen, offX, offY)

	s.drawHUD(screen)
	s.drawFeed(screen)
	s.drawFeedback(screen)

	switch s.arena.Mode {
	case combat.ModeVictory:
		s.drawBanner(screen, "VICTORY")
	case combat.ModeDefeat:
		s.drawBanner(screen, "DEFEAT")
	}
}

func (s *CombatScreen) drawArena(screen *ebiten.Image, offX, offY float64) {
	vector.DrawFilledRect(screen, float32(offX), float32(config.GroundY+offY),
		config.ScreenWidth, config.FloorHeight, color.RGBA{32, 18, 55, 255}, false)

	// Spikes along the floor line, stepped rects standing in for triangles.
	spike := color.RGBA{70, 45, 95, 255}
	for x := 0; x < config.ScreenWidth; x += 80 {
		for step := 0; step < 5; step++ {
			w := 40.0 - float64(step)*8
			vector.DrawFilledRect(screen,
				float32(float64(x)+40-w/2+offX),
				float32(config.GroundY-6*float64(step+1)+offY),
				float32(w), 6, spike, false)
		}
	}
}

func (s *CombatScreen) drawTrails(screen *ebiten.Image, offX, offY float64) {
	for _, segment := range s.arena.Trails {
		alpha := 255 * segment.Life / combat.TrailLife
		if alpha <= 0 {
			continue
		}
		clr := trailLight
		if segment.Heavy {
			clr = trailHeavy
		}
		fillBox(screen, segment.Box, offX, offY, withAlpha(clr, uint8(alpha)))
	}
}

func (s *CombatScreen) drawFighter(screen *ebiten.Image, offX, offY float64) {
	player := s.arena.Player
	cx := player.Box.CenterX() + offX
	cy := player.Box.CenterY() + offY
	top := player.Box.Y + offY
	bottom := player.Box.Bottom() + offY

	drawAura(screen, cx, cy, fighterAura, 1.0)
	drawBody(screen, cx, top, bottom, player.Facing, fighterBody, fighterEdge, fighterFace)

	if player.CurrentAttack != nil && player.Hitbox != nil {
		drawBlade(screen, cx, top+30, player.Facing, 34, 10, bladeFill, bladeOutline)
	}

	if player.ParrySuccessFlash > 0 {
		flashBox(screen, player.Box, offX, offY,
			color.RGBA{140, 255, 230, 255}, 160*player.ParrySuccessFlash/combat.ParryFlashTime)
	}
	if player.HitFlash > 0 {
		flashBox(screen, player.Box, offX, offY,
			color.RGBA{255, 80, 80, 255}, 150*player.HitFlash/combat.HitFlashTime)
	}

	if player.Hitbox != nil {
		fillBox(screen, *player.Hitbox, offX, offY, withAlpha(color.RGBA{120, 200, 255, 255}, 70))
	}

	if player.ParryTimer > 0 {
		radius := max(50.0, 120*player.ParryTimer)
		vector.StrokeCircle(screen, float32(cx), float32(cy), float32(radius), 2,
			color.RGBA{140, 220, 255, 255}, true)
	}

	drawTextCentered(screen, s.fonts.Caption, "SOVEREIGN", cx, top-32, color.RGBA{210, 230, 255, 255})
}

func (s *CombatScreen) drawSentinel(screen *ebiten.Image, offX, offY float64) {
	enemy := s.arena.Enemy
	cx := enemy.Box.CenterX() + offX
	cy := enemy.Box.CenterY() + offY
	top := enemy.Box.Y + offY
	bottom := enemy.Box.Bottom() + offY

	auraStrength := 1.0
	if enemy.State == combat.StateWindup {
		auraStrength = 2.0
	}
	drawAura(screen, cx, cy, sentinelAura, auraStrength)
	drawBody(screen, cx, top, bottom, enemy.Facing, sentinelBody, sentinelEdge, sentinelFace)

	if enemy.AttackBox != nil {
		drawBlade(screen, cx, top+28, enemy.Facing, 40, 12, scytheFill, scytheEdge)
		fillBox(screen, *enemy.AttackBox, offX, offY, withAlpha(color.RGBA{255, 120, 200, 255}, 60))
	}

	if enemy.HitFlash > 0 {
		flashBox(screen, enemy.Box, offX, offY,
			color.RGBA{255, 120, 200, 255}, 140*enemy.HitFlash/combat.SentinelFlashTime)
	}

	if enemy.State == combat.StateStunned {
		vector.StrokeRect(screen, float32(enemy.Box.X-4+offX), float32(enemy.Box.Y-4+offY),
			float32(enemy.Box.W+8), float32(enemy.Box.H+8), 2, color.RGBA{255, 230, 120, 255}, false)
	}

	drawTextCentered(screen, s.fonts.Caption, "ECHO SENTINEL", cx, top-32, color.RGBA{240, 200, 255, 255})
}

func (s *CombatScreen) drawHUD(screen *ebiten.Image) {
	player := s.arena.Player
	enemy := s.arena.Enemy

	playerPct := float64(player.Health) / float64(player.MaxHealth)
	playerColor := lerpColor(color.RGBA{40, 220, 160, 255}, color.RGBA{255, 60, 90, 255}, 1-playerPct)
	drawBar(screen, 40, 30, 260, 18, playerPct, color.RGBA{60, 40, 70, 255}, playerColor)
	drawBar(screen, 40, 54, 260, 14, player.Stamina/player.MaxStamina,
		color.RGBA{40, 35, 60, 255}, color.RGBA{80, 200, 240, 255})
	drawText(screen, s.fonts.Body, "HEALTH", 40, 10, color.RGBA{240, 220, 255, 255})
	drawText(screen, s.fonts.Body, "STAMINA", 40, 74, color.RGBA{220, 220, 255, 255})

	enemyPct := float64(enemy.Health) / float64(enemy.MaxHealth)
	enemyColor := lerpColor(color.RGBA{190, 120, 255, 255}, color.RGBA{255, 70, 150, 255}, 1-enemyPct)
	drawBar(screen, config.ScreenWidth-300, 30, 260, 18, enemyPct, color.RGBA{60, 40, 70, 255}, enemyColor)
	drawText(screen, s.fonts.Body, "ENEMY", config.ScreenWidth-300, 10, color.RGBA{240, 220, 255, 255})

	drawTextCentered(screen, s.fonts.Body, "Abilities locked - progress the myth to awaken powers",
		config.ScreenWidth/2, config.ScreenHeight-40, color.RGBA{200, 200, 220, 255})
	drawTextCentered(screen, s.fonts.Small, "A/D move  W jump  S crouch  1 light  2 heavy  F parry  R reset",
		config.ScreenWidth/2, config.ScreenHeight-70, color.RGBA{210, 210, 240, 255})
}

func (s *CombatScreen) drawFeed(screen *ebiten.Image) {
	for i, entry := range s.feed.Recent(4) {
		alpha := uint8(235 - i*45)
		drawText(screen, s.fonts.Small, entry.Text, 40, 396-float64(i)*16,
			withAlpha(entry.Tone.Color(), alpha))
	}
}

func (s *CombatScreen) drawFeedback(screen *ebiten.Image) {
	if s.arena.FeedbackTimer <= 0 || s.arena.FeedbackText == "" {
		return
	}

	clr := s.arena.FeedbackTone.Color()
	alpha := 120 * s.arena.FeedbackTimer / combat.FeedbackDuration
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight,
		withAlpha(clr, uint8(alpha/2)), false)
	drawTextCentered(screen, s.fonts.Display, s.arena.FeedbackText,
		config.ScreenWidth/2, config.ScreenHeight/2-140, clr)
}

func (s *CombatScreen) drawBanner(screen *ebiten.Image, message string) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight,
		withAlpha(color.RGBA{20, 0, 40, 255}, 160), false)
	drawTextCentered(screen, s.fonts.Display, message,
		config.ScreenWidth/2, config.ScreenHeight/2-50, color.RGBA{255, 255, 255, 255})
	drawTextCentered(screen, s.fonts.Body, "Press R to reset",
		config.ScreenWidth/2, config.ScreenHeight/2+10, color.RGBA{230, 230, 255, 255})
}

// fillBox fills a combat box shifted by the shake offset.
func fillBox(dst *ebiten.Image, b combat.Box, offX, offY float64, clr color.Color) {
	vector.DrawFilledRect(dst, float32(b.X+offX), float32(b.Y+offY),
		float32(b.W), float32(b.H), clr, false)
}

// flashBox draws a fading damage overlay slightly larger than the box.
func flashBox(dst *ebiten.Image, b combat.Box, offX, offY float64, clr color.RGBA, intensity float64) {
	if intensity <= 0 {
		return
	}
	grown := b.Inflate(6, 6)
	fillBox(dst, grown, offX, offY, withAlpha(clr, uint8(min(intensity, 255))))
}

// drawAura layers translucent circles behind a combatant.
func drawAura(dst *ebiten.Image, cx, cy float64, clr color.RGBA, strength float64) {
	for i, radius := range [3]float64{48, 36, 24} {
		alpha := uint8(min(float64(14+i*10)*strength, 255))
		vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(radius),
			withAlpha(clr, alpha), true)
	}
}

// drawBody draws the shared torso, legs and head pose.
func drawBody(dst *ebiten.Image, cx, top, bottom float64, facing int, body, edge, face color.RGBA) {
	// Legs
	for _, dx := range [2]float64{-24, 10} {
		vector.DrawFilledRect(dst, float32(cx+dx), float32(bottom-26), 14, 26, body, false)
		vector.StrokeRect(dst, float32(cx+dx-2), float32(bottom-28), 18, 28, 2, edge, false)
	}

	// Torso, squashed automatically while crouching because the box is.
	torsoTop := top + 24
	torsoH := bottom - 24 - torsoTop
	vector.DrawFilledRect(dst, float32(cx-20), float32(torsoTop), 40, float32(torsoH), body, false)
	vector.StrokeRect(dst, float32(cx-23), float32(torsoTop-3), 46, float32(torsoH+6), 3, edge, false)

	// Head leans into the facing direction.
	headX := cx + float64(facing)*4
	vector.StrokeCircle(dst, float32(headX), float32(top+14), 14, 3, edge, true)
	vector.DrawFilledCircle(dst, float32(headX), float32(top+14), 12, face, true)
}

// drawBlade draws the weapon rect extended in the facing direction.
func drawBlade(dst *ebiten.Image, cx, y float64, facing int, length, thickness float64, fill, outline color.RGBA) {
	x := cx + float64(facing)*12
	if facing < 0 {
		x -= length
	}
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(length), float32(thickness), fill, false)
	vector.StrokeRect(dst, float32(x-1), float32(y-1), float32(length+2), float32(thickness+2), 2, outline, false)
}

// drawBar draws a filled gauge over its background track.
func drawBar(dst *ebiten.Image, x, y, width, height, pct float64, bg, fg color.RGBA) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(width), float32(height), bg, false)
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(width*max(pct, 0)), float32(height), fg, false)
}

// lerpColor blends a toward b by t.
func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	t = min(max(t, 0), 1)
	return color.RGBA{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
		A: 255,
	}
}

// Layout returns the fixed screen dimensions
func (s *CombatScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GetScreenDimensions()
}
