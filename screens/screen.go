// Package screens contains the menu, timeline and arena screens and the
// stack that manages transitions between them.
package screens

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// Transition sentinels. A screen's Update returns one of these to ask the
// game loop to switch screens; anything else is a real error.
var (
	// ErrOpenTimeline requests a push of the lore timeline screen.
	ErrOpenTimeline = errors.New("open timeline")
	// ErrOpenArena requests a push of the combat arena screen.
	ErrOpenArena = errors.New("open arena")
	// ErrCloseScreen requests a pop back to the previous screen.
	ErrCloseScreen = errors.New("close screen")
	// ErrQuit requests a clean shutdown of the whole program.
	ErrQuit = errors.New("quit")
)

// Screen is the interface all game screens must implement
type Screen interface {
	// Update updates the screen state
	Update() error

	// Draw draws the screen
	Draw(screen *ebiten.Image)

	// Layout returns the screen's logical dimensions
	Layout(outsideWidth, outsideHeight int) (int, int)
}

// ScreenStack manages a stack of screens, only the top screen receives
// updates while every screen in the stack is drawn bottom to top.
type ScreenStack struct {
	screens []Screen
}

// NewScreenStack creates a new screen stack
func NewScreenStack() *ScreenStack {
	return &ScreenStack{
		screens: make([]Screen, 0),
	}
}

// Push adds a screen to the top of the stack
func (s *ScreenStack) Push(screen Screen) {
	s.screens = append(s.screens, screen)
}

// Pop removes and returns the top screen from the stack
func (s *ScreenStack) Pop() Screen {
	if len(s.screens) == 0 {
		return nil
	}

	top := s.screens[len(s.screens)-1]
	s.screens = s.screens[:len(s.screens)-1]
	return top
}

// Peek returns the top screen without removing it
func (s *ScreenStack) Peek() Screen {
	if len(s.screens) == 0 {
		return nil
	}

	return s.screens[len(s.screens)-1]
}

// Len returns the number of screens on the stack
func (s *ScreenStack) Len() int {
	return len(s.screens)
}

// Update updates only the top screen
func (s *ScreenStack) Update() error {
	if top := s.Peek(); top != nil {
		return top.Update()
	}

	return nil
}

// Draw draws all screens from bottom to top
func (s *ScreenStack) Draw(screen *ebiten.Image) {
	for _, scr := range s.screens {
		scr.Draw(screen)
	}
}

// Layout returns the layout of the top screen
func (s *ScreenStack) Layout(outsideWidth, outsideHeight int) (int, int) {
	if top := s.Peek(); top != nil {
		return top.Layout(outsideWidth, outsideHeight)
	}

	return outsideWidth, outsideHeight
}
