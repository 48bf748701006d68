package main

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"fractal-gods/audio"
	"fractal-gods/combat"
	"fractal-gods/config"
	"fractal-gods/lore"
	"fractal-gods/screens"
)

// Game implements ebiten.Game over the screen stack. The stack starts on
// the menu; screens request transitions by returning sentinel errors.
type Game struct {
	stack     *screens.ScreenStack
	chronicle *lore.Chronicle
	tuning    *combat.Tuning
	fonts     *screens.Fonts
	synth     *audio.Synth
	rng       *rand.Rand
}

// NewGame creates a new game instance sitting on the start menu
func NewGame(chronicle *lore.Chronicle, tuning *combat.Tuning, fonts *screens.Fonts, synth *audio.Synth, rng *rand.Rand) *Game {
	game := &Game{
		stack:     screens.NewScreenStack(),
		chronicle: chronicle,
		tuning:    tuning,
		fonts:     fonts,
		synth:     synth,
		rng:       rng,
	}
	game.stack.Push(screens.NewStartScreen(fonts))
	return game
}

// OpenTimeline pushes a fresh timeline screen onto the stack
func (g *Game) OpenTimeline() {
	g.stack.Push(screens.NewTimelineScreen(g.chronicle, g.rng, g.fonts))
}

// OpenArena pushes a fresh combat screen onto the stack
func (g *Game) OpenArena() {
	g.stack.Push(screens.NewCombatScreen(g.tuning, g.synth, g.fonts, g.rng))
}

// Update updates the top screen and performs requested transitions.
func (g *Game) Update() error {
	err := g.stack.Update()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, screens.ErrOpenTimeline):
		g.OpenTimeline()
	case errors.Is(err, screens.ErrOpenArena):
		g.OpenArena()
	case errors.Is(err, screens.ErrCloseScreen):
		g.stack.Pop()
		if g.stack.Len() == 0 {
			return ebiten.Termination
		}
	case errors.Is(err, screens.ErrQuit):
		return ebiten.Termination
	default:
		return err
	}

	return nil
}

// Draw draws the whole screen stack
func (g *Game) Draw(screen *ebiten.Image) {
	g.stack.Draw(screen)

	// Print FPS for debugging
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.1f", ebiten.ActualFPS()), 4, config.ScreenHeight-16)
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.stack.Layout(outsideWidth, outsideHeight)
}
