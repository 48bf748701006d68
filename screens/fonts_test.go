package screens

import (
	"image/color"
	"strings"
	"testing"
)

func TestWrapText(t *testing.T) {
	lines := wrapText("the sovereign branch holds against the flood of forks", 20)
	if len(lines) < 2 {
		t.Fatalf("expected the sentence to wrap, got %d line(s): %q", len(lines), lines)
	}
	for _, line := range lines {
		if len([]rune(line)) > 20 {
			t.Errorf("line exceeds the wrap width: %q", line)
		}
	}
	if joined := strings.Join(lines, " "); joined != "the sovereign branch holds against the flood of forks" {
		t.Errorf("wrapping lost or reordered words: %q", joined)
	}
}

func TestWrapText_SplitsOversizedWords(t *testing.T) {
	lines := wrapText("prophecy-checksum-realignment-pass", 10)
	for _, line := range lines {
		if len([]rune(line)) > 10 {
			t.Errorf("oversized word was not split: %q", line)
		}
	}
}

func TestWrapText_EmptyInput(t *testing.T) {
	lines := wrapText("", 40)
	if len(lines) != 1 || lines[0] != "" {
		t.Errorf("empty input should yield one empty line, got %q", lines)
	}
}

func TestClampLines(t *testing.T) {
	lines := []string{"one", "two", "three", "four"}

	clipped := clampLines(lines, 2)
	if len(clipped) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(clipped))
	}
	if !strings.HasSuffix(clipped[1], "...") {
		t.Errorf("truncated output should be marked, got %q", clipped[1])
	}
	if lines[1] != "two" {
		t.Errorf("clamping must not mutate the input, got %q", lines[1])
	}

	if got := clampLines(lines, 10); len(got) != 4 {
		t.Errorf("clamping above the length should be a no-op, got %d lines", len(got))
	}
}

func TestWithAlpha_KeepsPremultipliedInvariant(t *testing.T) {
	c := withAlpha(color.RGBA{200, 100, 50, 255}, 128)
	if c.A != 128 {
		t.Fatalf("alpha = %d, want 128", c.A)
	}
	if c.R > c.A || c.G > c.A || c.B > c.A {
		t.Errorf("components must not exceed alpha: %+v", c)
	}
	if c.R != 100 {
		t.Errorf("red should halve with the alpha, got %d", c.R)
	}
}

func TestLerpColor_Endpoints(t *testing.T) {
	a := color.RGBA{40, 220, 160, 255}
	b := color.RGBA{255, 60, 90, 255}

	if got := lerpColor(a, b, 0); got != a {
		t.Errorf("t=0 should return the first color, got %+v", got)
	}
	if got := lerpColor(a, b, 1); got != b {
		t.Errorf("t=1 should return the second color, got %+v", got)
	}

	mid := lerpColor(a, b, 0.5)
	if mid.R <= a.R || mid.R >= b.R {
		t.Errorf("midpoint red should land between the endpoints, got %d", mid.R)
	}

	if got := lerpColor(a, b, 2); got != b {
		t.Errorf("t above 1 should clamp, got %+v", got)
	}
}
