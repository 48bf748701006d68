package screens

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// Fonts bundles the faces shared by every screen.
type Fonts struct {
	Small   *text.GoTextFace
	Body    *text.GoTextFace
	Mono    *text.GoTextFace
	Caption *text.GoTextFace
	Title   *text.GoTextFace
	Display *text.GoTextFace
}

// LoadFonts parses the embedded Go fonts and builds the face set.
func LoadFonts() (*Fonts, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to parse regular font: %w", err)
	}

	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to parse bold font: %w", err)
	}

	mono, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to parse mono font: %w", err)
	}

	return &Fonts{
		Small:   &text.GoTextFace{Source: regular, Size: 12},
		Body:    &text.GoTextFace{Source: regular, Size: 16},
		Mono:    &text.GoTextFace{Source: mono, Size: 13},
		Caption: &text.GoTextFace{Source: bold, Size: 14},
		Title:   &text.GoTextFace{Source: bold, Size: 26},
		Display: &text.GoTextFace{Source: bold, Size: 54},
	}, nil
}

// drawText draws a string with its top-left corner at x, y.
func drawText(dst *ebiten.Image, face *text.GoTextFace, str string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = face.Size * 1.4
	text.Draw(dst, str, face, op)
}

// drawTextCentered draws a string horizontally centered on cx.
func drawTextCentered(dst *ebiten.Image, face *text.GoTextFace, str string, cx, y float64, clr color.Color) {
	width, _ := text.Measure(str, face, face.Size*1.4)
	drawText(dst, face, str, cx-width/2, y, clr)
}

// drawTextRight draws a string with its right edge at x.
func drawTextRight(dst *ebiten.Image, face *text.GoTextFace, str string, x, y float64, clr color.Color) {
	width, _ := text.Measure(str, face, face.Size*1.4)
	drawText(dst, face, str, x-width, y, clr)
}

// withAlpha rescales a color to the given alpha, keeping the premultiplied
// invariant color.RGBA requires.
func withAlpha(c color.RGBA, alpha uint8) color.RGBA {
	scale := float64(alpha) / 255
	return color.RGBA{
		R: uint8(float64(c.R) * scale),
		G: uint8(float64(c.G) * scale),
		B: uint8(float64(c.B) * scale),
		A: alpha,
	}
}

// wrapText breaks a string into lines of at most maxRunes runes, splitting
// on spaces where possible. Words longer than the limit are split hard.
func wrapText(str string, maxRunes int) []string {
	if maxRunes <= 0 {
		return []string{str}
	}

	var lines []string
	line := ""
	for _, w := range strings.Fields(str) {
		for len([]rune(w)) > maxRunes {
			runes := []rune(w)
			if line != "" {
				lines = append(lines, line)
				line = ""
			}
			lines = append(lines, string(runes[:maxRunes]))
			w = string(runes[maxRunes:])
		}

		switch {
		case line == "":
			line = w
		case len([]rune(line))+1+len([]rune(w)) <= maxRunes:
			line += " " + w
		default:
			lines = append(lines, line)
			line = w
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		lines = []string{""}
	}

	return lines
}

// clampLines keeps at most n lines, marking truncation on the last one.
func clampLines(lines []string, n int) []string {
	if n <= 0 || len(lines) <= n {
		return lines
	}

	clipped := append([]string(nil), lines[:n]...)
	clipped[n-1] += " ..."
	return clipped
}
