package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"fractal-gods/config"
)

// menu entries in display order
const (
	menuTimeline = iota
	menuArena
	menuQuit
)

// StartScreen is the title menu shown on boot.
type StartScreen struct {
	fonts          *Fonts
	options        []string
	selectedOption int
	pulse          int

	backgroundColor color.RGBA
	titleColor      color.RGBA
	optionColor     color.RGBA
	selectedColor   color.RGBA
	dimColor        color.RGBA
}

// NewStartScreen creates the title menu.
func NewStartScreen(fonts *Fonts) *StartScreen {
	return &StartScreen{
		fonts: fonts,
		options: []string{
			"Lore Timeline",
			"Combat Arena",
			"Quit",
		},
		backgroundColor: color.RGBA{14, 12, 24, 255},
		titleColor:      color.RGBA{236, 224, 176, 255},
		optionColor:     color.RGBA{158, 158, 178, 255},
		selectedColor:   color.RGBA{255, 214, 120, 255},
		dimColor:        color.RGBA{96, 92, 120, 255},
	}
}

// Update handles menu navigation
func (s *StartScreen) Update() error {
	s.pulse++

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		s.selectedOption--
		if s.selectedOption < 0 {
			s.selectedOption = len(s.options) - 1
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		s.selectedOption++
		if s.selectedOption >= len(s.options) {
			s.selectedOption = 0
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		switch s.selectedOption {
		case menuTimeline:
			return ErrOpenTimeline
		case menuArena:
			return ErrOpenArena
		case menuQuit:
			return ErrQuit
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrQuit
	}

	return nil
}

// Draw draws the title menu
func (s *StartScreen) Draw(screen *ebiten.Image) {
	screen.Fill(s.backgroundColor)

	centerX := float64(config.ScreenWidth) / 2

	// Faint layer bands behind the title, one per decade of lore.
	for i := 0; i < 10; i++ {
		y := float32(60 + i*44)
		alpha := uint8(10 + i*3)
		vector.DrawFilledRect(screen, 0, y, float32(config.ScreenWidth), 2,
			withAlpha(color.RGBA{120, 110, 180, 255}, alpha), false)
	}

	drawTextCentered(screen, s.fonts.Display, "FRACTAL GODS", centerX, 96, s.titleColor)
	drawTextCentered(screen, s.fonts.Body, "one hundred years of dev lore, one sovereign per decade",
		centerX, 175, s.optionColor)
	vector.DrawFilledRect(screen, float32(centerX-180), 210, 360, 2, s.selectedColor, false)

	for i, option := range s.options {
		y := 270.0 + float64(i)*46
		if i == s.selectedOption {
			marker := ">"
			if (s.pulse/30)%2 == 0 {
				marker = ">>"
			}
			drawTextCentered(screen, s.fonts.Title, marker+" "+option+" <", centerX, y, s.selectedColor)
		} else {
			drawTextCentered(screen, s.fonts.Title, option, centerX, y, s.optionColor)
		}
	}

	drawTextCentered(screen, s.fonts.Small, "arrows / W S to choose, enter to confirm, esc to quit",
		centerX, float64(config.ScreenHeight)-40, s.dimColor)
}

// Layout returns the fixed screen dimensions
func (s *StartScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GetScreenDimensions()
}
