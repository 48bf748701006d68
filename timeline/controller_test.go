package timeline

import (
	"math/rand"
	"strings"
	"testing"

	"fractal-gods/events"
	"fractal-gods/lore"
)

// displayState holds everything a render can touch, in comparable form.
type displayState struct {
	Title      string
	Logline    string
	Upgrade    string
	Artifacts  [3]string
	PatchLog   [4]string
	Echo       string
	Opacity    float64
	Hue        float64
	Saturation float64
	Flicker    bool
	Banner     string
}

// fakeDisplay records writes so tests can assert on content and on whether
// anything was mutated at all.
type fakeDisplay struct {
	state  displayState
	writes int
}

func (d *fakeDisplay) SetTitle(text string)          { d.state.Title = text; d.writes++ }
func (d *fakeDisplay) SetLogline(text string)        { d.state.Logline = text; d.writes++ }
func (d *fakeDisplay) SetUpgrade(text string)        { d.state.Upgrade = text; d.writes++ }
func (d *fakeDisplay) SetArtifacts(a [3]string)      { d.state.Artifacts = a; d.writes++ }
func (d *fakeDisplay) SetPatchLog(p [4]string)       { d.state.PatchLog = p; d.writes++ }
func (d *fakeDisplay) SetEcho(text string)           { d.state.Echo = text; d.writes++ }
func (d *fakeDisplay) SetFlicker(on bool)            { d.state.Flicker = on; d.writes++ }
func (d *fakeDisplay) ShowBanner(text string)        { d.state.Banner = text; d.writes++ }
func (d *fakeDisplay) ClearBanner()                  { d.state.Banner = ""; d.writes++ }
func (d *fakeDisplay) SetDecay(opacity, hue, saturation float64) {
	d.state.Opacity = opacity
	d.state.Hue = hue
	d.state.Saturation = saturation
	d.writes++
}

func newTestController(t *testing.T) (*Controller, *fakeDisplay, *lore.Chronicle) {
	t.Helper()
	chronicle, err := lore.Generate(lore.DefaultTables(), 100)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	display := &fakeDisplay{}
	return New(chronicle, display, rand.New(rand.NewSource(42))), display, chronicle
}

func TestController_RenderWritesLayerRegions(t *testing.T) {
	c, d, chronicle := newTestController(t)

	c.Render(57)

	layer, _ := chronicle.Layer(57)
	if d.state.Title != "Layer 57 :: Mythic Rebuild" {
		t.Errorf("title = %q", d.state.Title)
	}
	if d.state.Logline != layer.Logline {
		t.Errorf("logline = %q, want %q", d.state.Logline, layer.Logline)
	}
	if d.state.Upgrade != layer.MicroUpgrade {
		t.Errorf("upgrade = %q, want %q", d.state.Upgrade, layer.MicroUpgrade)
	}
	if d.state.Artifacts != layer.Artifacts {
		t.Errorf("artifacts = %v, want %v", d.state.Artifacts, layer.Artifacts)
	}
	if d.state.PatchLog != layer.PatchLog {
		t.Errorf("patch log = %v, want %v", d.state.PatchLog, layer.PatchLog)
	}
	if d.state.Echo != "" {
		t.Errorf("echo region written while echo mode off: %q", d.state.Echo)
	}
	if c.Year() != 57 {
		t.Errorf("Year() = %d, want 57", c.Year())
	}
}

func TestController_RenderWithEchoShowsPreviousLogline(t *testing.T) {
	c, d, chronicle := newTestController(t)

	c.ToggleEcho()
	c.OnSlide(57)

	want := chronicle.Layers[55].Logline
	if d.state.Echo != want {
		t.Errorf("echo = %q, want year 56 logline %q", d.state.Echo, want)
	}
}

func TestController_RenderIdempotent(t *testing.T) {
	c, d, _ := newTestController(t)
	c.ToggleEcho()

	c.Render(40)
	first := d.state
	c.Render(40)

	if d.state != first {
		t.Errorf("second render changed the display:\nfirst  %+v\nsecond %+v", first, d.state)
	}
}

func TestController_EchoToggleRoundTrip(t *testing.T) {
	c, d, _ := newTestController(t)

	c.ToggleEcho()
	c.OnSlide(30)
	original := d.state.Echo

	c.ToggleEcho()
	if d.state.Echo != EchoPlaceholder {
		t.Fatalf("echo after toggle-off = %q, want placeholder", d.state.Echo)
	}

	c.ToggleEcho()
	if d.state.Echo != original {
		t.Errorf("echo after round trip = %q, want %q", d.state.Echo, original)
	}
}

func TestController_PlaceholderPersistsAcrossSlides(t *testing.T) {
	c, d, _ := newTestController(t)

	c.ToggleEcho()
	c.ToggleEcho()
	c.OnSlide(12)

	if d.state.Echo != EchoPlaceholder {
		t.Errorf("echo after slide with echo off = %q, want placeholder", d.state.Echo)
	}
}

func TestController_OutOfRangeRenderIsNoop(t *testing.T) {
	c, d, _ := newTestController(t)

	c.Render(0)
	c.Render(101)

	if d.writes != 0 {
		t.Errorf("out-of-range render touched the display %d times", d.writes)
	}
	if c.Year() != 1 {
		t.Errorf("Year() = %d, want untouched 1", c.Year())
	}
}

func TestController_DecayFollowsGhostMode(t *testing.T) {
	c, d, _ := newTestController(t)

	c.Render(50)
	if d.state.Opacity != 0.75 || d.state.Hue != 60 || d.state.Saturation != 0.55 {
		t.Errorf("decay ghost-off = (%v, %v, %v), want (0.75, 60, 0.55)",
			d.state.Opacity, d.state.Hue, d.state.Saturation)
	}

	c.ToggleGhost()
	if d.state.Opacity != 0.75 || d.state.Hue != 180 || d.state.Saturation != 0.9 {
		t.Errorf("decay ghost-on = (%v, %v, %v), want (0.75, 180, 0.9)",
			d.state.Opacity, d.state.Hue, d.state.Saturation)
	}
}

func TestController_TickFlipsFlickerOnly(t *testing.T) {
	c, d, _ := newTestController(t)
	c.Render(20)
	before := d.state

	c.Tick()
	if !d.state.Flicker {
		t.Error("first tick should turn the flicker phase on")
	}
	before.Flicker = true
	if d.state != before {
		t.Errorf("ghost-off tick changed more than the flicker phase: %+v", d.state)
	}

	c.Tick()
	if d.state.Flicker {
		t.Error("second tick should turn the flicker phase off")
	}
}

func TestController_TickPreviewsNextYearEcho(t *testing.T) {
	c, d, chronicle := newTestController(t)

	c.ToggleEcho()
	c.ToggleGhost()
	c.OnSlide(10)

	c.Tick()

	next := chronicle.Layers[10] // year 11
	want := next.Echo + "\n" + next.Ghost
	if d.state.Echo != want {
		t.Errorf("tick echo = %q, want year 11 residue %q", d.state.Echo, want)
	}
	if d.state.Title != "Layer 10 :: Decade Audit" {
		t.Errorf("tick must not move the main display off year 10, title = %q", d.state.Title)
	}
}

func TestController_TickWrapsOnlyAtFinalYear(t *testing.T) {
	c, d, chronicle := newTestController(t)

	c.ToggleEcho()
	c.ToggleGhost()
	c.OnSlide(100)

	c.Tick()

	first := chronicle.Layers[0]
	want := first.Echo + "\n" + first.Ghost
	if d.state.Echo != want {
		t.Errorf("tick at year 100 echo = %q, want year 1 residue %q", d.state.Echo, want)
	}
}

func TestController_TickWithoutEchoLeavesEchoRegion(t *testing.T) {
	c, d, _ := newTestController(t)

	c.ToggleGhost()
	c.OnSlide(10)
	d.state.Echo = "sentinel text"

	c.Tick()

	if d.state.Echo != "sentinel text" {
		t.Errorf("ghost tick wrote the echo region while echo mode off: %q", d.state.Echo)
	}
}

func TestController_DeadlineBanner(t *testing.T) {
	c, d, _ := newTestController(t)

	c.DeadlineAlert()
	if !strings.HasPrefix(d.state.Banner, "DEADLINE PROPHECY :: year ") {
		t.Errorf("banner = %q", d.state.Banner)
	}

	other, otherDisplay, _ := newTestController(t)
	other.DeadlineAlert()
	if otherDisplay.state.Banner != d.state.Banner {
		t.Errorf("same seed produced different banners: %q vs %q",
			otherDisplay.state.Banner, d.state.Banner)
	}

	c.ExpireBanner()
	if d.state.Banner != "" {
		t.Errorf("banner not cleared: %q", d.state.Banner)
	}
}

func TestController_RegisterDispatchesBusEvents(t *testing.T) {
	c, d, chronicle := newTestController(t)
	bus := events.NewBus()
	c.Register(bus)

	bus.Post(SlideEvent{Year: 57})
	bus.Post(ToggleEchoEvent{})
	bus.Drain()

	if d.state.Title != "Layer 57 :: Mythic Rebuild" {
		t.Errorf("title after slide = %q", d.state.Title)
	}
	if want := chronicle.Layers[55].Logline; d.state.Echo != want {
		t.Errorf("echo after toggle = %q, want %q", d.state.Echo, want)
	}

	bus.Post(TickEvent{})
	bus.Drain()
	if !d.state.Flicker {
		t.Error("tick event did not flip the flicker phase")
	}

	bus.Post(DeadlineEvent{})
	bus.Drain()
	if d.state.Banner == "" {
		t.Error("deadline event did not show the banner")
	}

	bus.Post(BannerExpireEvent{})
	bus.Drain()
	if d.state.Banner != "" {
		t.Error("banner expire event did not clear the banner")
	}
}

func TestController_ToggleEchoBeforeFirstRenderShowsSeed(t *testing.T) {
	c, d, _ := newTestController(t)

	c.ToggleEcho()

	if d.state.Echo != lore.SeedLogline {
		t.Errorf("echo = %q, want seed line", d.state.Echo)
	}
	if d.state.Title != "Layer 1 :: Mythic Rebuild" {
		t.Errorf("title = %q, want year 1", d.state.Title)
	}
}
