// Package timeline owns the interactive state of the chronicle viewer: the
// selected year, the echo and ghost modes, and the periodic flicker. It
// writes through the Display interface so its behavior can be exercised
// without a window.
package timeline

import (
	"fmt"
	"math/rand"

	"fractal-gods/lore"
)

// EchoPlaceholder fills the echo region while echo mode is off.
const EchoPlaceholder = "[ echo dormant :: press E to resume playback ]"

// Display is the rendering surface the controller writes to. The timeline
// screen implements it for the window; tests implement it in memory.
type Display interface {
	SetTitle(text string)
	SetLogline(text string)
	SetUpgrade(text string)
	SetArtifacts(entries [3]string)
	SetPatchLog(entries [4]string)
	SetEcho(text string)
	SetDecay(opacity, hue, saturation float64)
	SetFlicker(on bool)
	ShowBanner(text string)
	ClearBanner()
}

// Controller mediates between the read-only chronicle and the display. All
// methods must be called from the game-loop goroutine; events reach the
// controller strictly in arrival order via Register.
type Controller struct {
	chronicle *lore.Chronicle
	display   Display
	rng       *rand.Rand

	year        int
	echoActive  bool
	ghostActive bool
	flicker     bool
}

// New creates a controller positioned on year 1. Nothing is drawn until
// the first Render call. The rng feeds only the deadline banner, the one
// nondeterministic behavior in the viewer.
func New(chronicle *lore.Chronicle, display Display, rng *rand.Rand) *Controller {
	return &Controller{
		chronicle: chronicle,
		display:   display,
		rng:       rng,
		year:      1,
	}
}

// Year reports the currently mirrored year.
func (c *Controller) Year() int { return c.year }

// EchoActive reports whether the echo region is live.
func (c *Controller) EchoActive() bool { return c.echoActive }

// GhostActive reports whether ghost interference is on.
func (c *Controller) GhostActive() bool { return c.ghostActive }

// Render looks up the layer for the given year and rewrites the display
// regions from it. A year outside the generated range is a silent no-op:
// the slider's own bounds should prevent it, but the lookup stays guarded.
// The echo region is written only while echo mode is active, so the
// placeholder left by a toggle-off persists across slides.
func (c *Controller) Render(year int) {
	layer, ok := c.chronicle.Layer(year)
	if !ok {
		return
	}
	c.year = year

	c.display.SetTitle(layer.Title)
	c.display.SetLogline(layer.Logline)
	c.display.SetUpgrade(layer.MicroUpgrade)
	c.display.SetArtifacts(layer.Artifacts)
	c.display.SetPatchLog(layer.PatchLog)
	if c.echoActive {
		c.display.SetEcho(c.echoText(layer))
	}
	opacity, hue, saturation := Decay(year, c.chronicle.Years, c.ghostActive)
	c.display.SetDecay(opacity, hue, saturation)
}

// ToggleEcho flips echo mode. Turning it off overwrites the echo region
// with the placeholder, discarding the previous content; turning it on
// re-renders the current year so the region refills from layer data.
func (c *Controller) ToggleEcho() {
	c.echoActive = !c.echoActive
	if c.echoActive {
		c.Render(c.year)
		return
	}
	c.display.SetEcho(EchoPlaceholder)
}

// ToggleGhost flips ghost mode and re-renders the current year, which
// switches the decay color formula and the echo region's interference line.
func (c *Controller) ToggleGhost() {
	c.ghostActive = !c.ghostActive
	c.Render(c.year)
}

// OnSlide re-renders the year the position control reports.
func (c *Controller) OnSlide(year int) {
	c.Render(year)
}

// Tick runs on the fixed flicker interval. The phase flip happens whether
// or not ghost mode is on; while it is off that is the only observable
// effect, an idle shimmer with no data behind it. With ghost mode on, the
// tick previews the next year's residue: the flicker year is current+1,
// wrapping to 1 only from the final year, and if echo mode is also active
// the echo region is overwritten from that layer instead of the current
// one.
func (c *Controller) Tick() {
	c.flicker = !c.flicker
	c.display.SetFlicker(c.flicker)

	if !c.ghostActive {
		return
	}
	flickerYear := c.year + 1
	if c.year == c.chronicle.Years {
		flickerYear = 1
	}
	if !c.echoActive {
		return
	}
	if layer, ok := c.chronicle.Layer(flickerYear); ok {
		c.display.SetEcho(c.echoText(layer))
	}
}

// DeadlineAlert shows the one-shot prophecy banner naming a uniformly
// random year. The caller schedules it once, a fixed delay after the
// screen starts, and expires it after the display duration.
func (c *Controller) DeadlineAlert() {
	year := 1 + c.rng.Intn(c.chronicle.Years)
	c.display.ShowBanner(fmt.Sprintf("DEADLINE PROPHECY :: year %d ships or the myth collapses", year))
}

// ExpireBanner removes the prophecy banner.
func (c *Controller) ExpireBanner() {
	c.display.ClearBanner()
}

func (c *Controller) echoText(layer lore.YearLayer) string {
	if c.ghostActive {
		return layer.Echo + "\n" + layer.Ghost
	}
	return layer.Echo
}
