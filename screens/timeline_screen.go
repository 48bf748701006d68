package screens

import (
	"fmt"
	"image/color"
	"math/rand"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	colorful "github.com/lucasb-eyer/go-colorful"

	"fractal-gods/config"
	"fractal-gods/events"
	"fractal-gods/lore"
	"fractal-gods/timeline"
)

// palette is one cosmetic style for the timeline screen. The S key cycles
// through the set; nothing but colors changes.
type palette struct {
	name       string
	background color.RGBA
	panel      color.RGBA
	accent     color.RGBA
	body       color.RGBA
	dim        color.RGBA
	alert      color.RGBA
}

var palettes = []palette{
	{
		name:       "relic amber",
		background: color.RGBA{10, 9, 18, 255},
		panel:      color.RGBA{26, 22, 40, 255},
		accent:     color.RGBA{255, 203, 112, 255},
		body:       color.RGBA{214, 208, 190, 255},
		dim:        color.RGBA{122, 116, 100, 255},
		alert:      color.RGBA{255, 92, 92, 255},
	},
	{
		name:       "cathode",
		background: color.RGBA{6, 12, 16, 255},
		panel:      color.RGBA{12, 30, 36, 255},
		accent:     color.RGBA{120, 235, 255, 255},
		body:       color.RGBA{182, 222, 228, 255},
		dim:        color.RGBA{86, 128, 134, 255},
		alert:      color.RGBA{255, 120, 90, 255},
	},
	{
		name:       "vellum",
		background: color.RGBA{30, 25, 20, 255},
		panel:      color.RGBA{46, 39, 31, 255},
		accent:     color.RGBA{242, 231, 199, 255},
		body:       color.RGBA{226, 214, 186, 255},
		dim:        color.RGBA{152, 140, 118, 255},
		alert:      color.RGBA{255, 110, 110, 255},
	},
}

// keyRepeatDelay and keyRepeatEvery tune held-arrow scrubbing, in frames.
const (
	keyRepeatDelay = 24
	keyRepeatEvery = 6
)

// TimelineScreen renders the chronicle viewer. It implements
// timeline.Display, so the controller writes straight into its fields, and
// it feeds the controller by posting events onto its private bus.
type TimelineScreen struct {
	fonts      *Fonts
	chronicle  *lore.Chronicle
	controller *timeline.Controller
	bus        *events.Bus

	frame         int
	deadlineFired bool
	bannerTimer   int
	styleIndex    int

	title      string
	logline    string
	upgrade    string
	artifacts  [3]string
	patchLog   [4]string
	echo       string
	opacity    float64
	hue        float64
	saturation float64
	flicker    bool

	bannerText    string
	bannerVisible bool
}

// NewTimelineScreen wires a controller over the chronicle and renders year 1.
func NewTimelineScreen(chronicle *lore.Chronicle, rng *rand.Rand, fonts *Fonts) *TimelineScreen {
	s := &TimelineScreen{
		fonts:     fonts,
		chronicle: chronicle,
		bus:       events.NewBus(),
		echo:      timeline.EchoPlaceholder,
	}

	s.controller = timeline.New(chronicle, s, rng)
	s.controller.Register(s.bus)
	s.bus.Subscribe(timeline.EventToggleStyle, func(events.Event) {
		s.styleIndex = (s.styleIndex + 1) % len(palettes)
	})

	s.controller.Render(1)
	return s
}

// framesFor converts a wall-clock duration to update frames.
func framesFor(d time.Duration) int {
	return int(d.Seconds() * config.TPS)
}

// Update samples the keyboard, posts the resulting events plus any scheduled
// pulses, then drains the bus so the controller sees everything in order.
func (s *TimelineScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrCloseScreen
	}

	s.frame++
	s.postKeyEvents()

	if s.frame%framesFor(config.FlickerInterval) == 0 {
		s.bus.Post(timeline.TickEvent{})
	}
	if !s.deadlineFired && s.frame >= framesFor(config.DeadlineDelay) {
		s.deadlineFired = true
		s.bus.Post(timeline.DeadlineEvent{})
	}
	if s.bannerVisible && s.bannerTimer > 0 {
		s.bannerTimer--
		if s.bannerTimer == 0 {
			s.bus.Post(timeline.BannerExpireEvent{})
		}
	}

	s.bus.Drain()
	return nil
}

// postKeyEvents maps the keyboard onto viewer events.
func (s *TimelineScreen) postKeyEvents() {
	step := 0
	switch {
	case keyRepeating(ebiten.KeyArrowLeft):
		step = -1
	case keyRepeating(ebiten.KeyArrowRight):
		step = 1
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		step = -10
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown):
		step = 10
	}
	if step != 0 {
		s.bus.Post(timeline.SlideEvent{Year: s.clampYear(s.controller.Year() + step)})
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		s.bus.Post(timeline.SlideEvent{Year: 1})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnd) {
		s.bus.Post(timeline.SlideEvent{Year: s.chronicle.Years})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		s.bus.Post(timeline.ToggleEchoEvent{})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		s.bus.Post(timeline.ToggleGhostEvent{})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		s.bus.Post(timeline.ToggleStyleEvent{})
	}
}

// keyRepeating reports a fresh press, then repeats while the key is held.
func keyRepeating(key ebiten.Key) bool {
	if inpututil.IsKeyJustPressed(key) {
		return true
	}
	d := inpututil.KeyPressDuration(key)
	return d >= keyRepeatDelay && d%keyRepeatEvery == 0
}

// clampYear keeps the slider inside the chronicle; wrapping is the flicker
// preview's job, not the slider's.
func (s *TimelineScreen) clampYear(year int) int {
	if year < 1 {
		return 1
	}
	if year > s.chronicle.Years {
		return s.chronicle.Years
	}
	return year
}

// Display implementation. The controller calls these; Draw reads the fields.

// SetTitle stores the layer title line.
func (s *TimelineScreen) SetTitle(text string) { s.title = text }

// SetLogline stores the accumulated commit logline.
func (s *TimelineScreen) SetLogline(text string) { s.logline = text }

// SetUpgrade stores the micro-upgrade line.
func (s *TimelineScreen) SetUpgrade(text string) { s.upgrade = text }

// SetArtifacts stores the three relic manifest entries.
func (s *TimelineScreen) SetArtifacts(entries [3]string) { s.artifacts = entries }

// SetPatchLog stores the four patch log lines.
func (s *TimelineScreen) SetPatchLog(entries [4]string) { s.patchLog = entries }

// SetEcho stores the echo channel content.
func (s *TimelineScreen) SetEcho(text string) { s.echo = text }

// SetDecay stores the layer's age wash parameters.
func (s *TimelineScreen) SetDecay(opacity, hue, saturation float64) {
	s.opacity = opacity
	s.hue = hue
	s.saturation = saturation
}

// SetFlicker stores the flicker phase.
func (s *TimelineScreen) SetFlicker(on bool) { s.flicker = on }

// ShowBanner displays the deadline banner and arms its expiry timer.
func (s *TimelineScreen) ShowBanner(text string) {
	s.bannerText = text
	s.bannerVisible = true
	s.bannerTimer = framesFor(config.BannerDuration)
}

// ClearBanner hides the deadline banner.
func (s *TimelineScreen) ClearBanner() {
	s.bannerVisible = false
	s.bannerTimer = 0
}

// Draw renders every region from the stored display state.
func (s *TimelineScreen) Draw(screen *ebiten.Image) {
	pal := palettes[s.styleIndex]
	screen.Fill(pal.background)

	// Age wash: the decay color over the whole frame, stronger on younger
	// layers because their opacity is lower and the wash reads as haze.
	wash := colorful.Hsv(s.hue, s.saturation, 0.22)
	r, g, b := wash.RGB255()
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight,
		withAlpha(color.RGBA{r, g, b, 255}, uint8(s.opacity*96)), false)

	ink := withAlpha(pal.body, uint8(120+135*s.opacity))

	s.drawHeader(screen, pal)
	s.drawLeftColumn(screen, pal, ink)
	s.drawRightColumn(screen, pal, ink)
	s.drawEchoPanel(screen, pal, ink)

	if s.bannerVisible {
		vector.DrawFilledRect(screen, 0, 504, config.ScreenWidth, 36,
			withAlpha(pal.alert, 230), false)
		drawTextCentered(screen, s.fonts.Caption, s.bannerText,
			config.ScreenWidth/2, 513, color.RGBA{16, 8, 8, 255})
	}

	drawTextRight(screen, s.fonts.Small, "style :: "+pal.name,
		config.ScreenWidth-24, 418, pal.dim)
}

func (s *TimelineScreen) drawHeader(screen *ebiten.Image, pal palette) {
	drawText(screen, s.fonts.Title, s.title, 24, 12, pal.accent)

	drawBadge(screen, s.fonts, 760, 20, "ECHO", s.controller.EchoActive(), pal)
	drawBadge(screen, s.fonts, 830, 20, "GHOST", s.controller.GhostActive(), pal)
	drawTextRight(screen, s.fonts.Caption, fmt.Sprintf("YEAR %d / %d", s.controller.Year(), s.chronicle.Years),
		936, 44, pal.body)

	// Year slider with a notch per decade.
	const trackX, trackW = 24.0, 676.0
	vector.DrawFilledRect(screen, trackX, 62, trackW, 4, pal.dim, false)
	for decade := 0; decade <= s.chronicle.Years/10; decade++ {
		t := float64(decade*10) / float64(s.chronicle.Years)
		vector.DrawFilledRect(screen, float32(trackX+t*trackW), 58, 1, 12, pal.dim, false)
	}

	t := 0.0
	if s.chronicle.Years > 1 {
		t = float64(s.controller.Year()-1) / float64(s.chronicle.Years-1)
	}
	vector.DrawFilledCircle(screen, float32(trackX+t*trackW), 64, 6, pal.accent, true)
}

func (s *TimelineScreen) drawLeftColumn(screen *ebiten.Image, pal palette, ink color.RGBA) {
	drawText(screen, s.fonts.Small, "COMMIT LOGLINE", 24, 84, pal.dim)
	for i, line := range clampLines(wrapText(s.logline, 70), 4) {
		drawText(screen, s.fonts.Body, line, 24, 102+float64(i)*22, ink)
	}

	drawText(screen, s.fonts.Small, "MICRO-UPGRADE", 24, 198, pal.dim)
	drawText(screen, s.fonts.Body, clampLines(wrapText(s.upgrade, 70), 1)[0], 24, 216, ink)

	drawText(screen, s.fonts.Small, "RELIC MANIFEST", 24, 250, pal.dim)
	for i, entry := range s.artifacts {
		clr := ink
		if strings.HasSuffix(entry, "[CRITICAL]") {
			clr = pal.alert
		}
		drawText(screen, s.fonts.Body, "- "+entry, 24, 268+float64(i)*22, clr)
	}

	drawText(screen, s.fonts.Small, "PATCH LOG", 24, 344, pal.dim)
	for i, entry := range s.patchLog {
		drawText(screen, s.fonts.Mono, entry, 24, 362+float64(i)*18, ink)
	}
}

func (s *TimelineScreen) drawRightColumn(screen *ebiten.Image, pal palette, ink color.RGBA) {
	vector.DrawFilledRect(screen, 616, 84, 320, 156, withAlpha(pal.panel, 210), false)
	drawText(screen, s.fonts.Small, "DECADE SOVEREIGN", 630, 94, pal.dim)

	god, ok := s.reigningGod()
	if ok {
		drawText(screen, s.fonts.Title, god.Name, 630, 110, pal.accent)
		for i, line := range clampLines(wrapText(god.Contribution, 44), 4) {
			drawText(screen, s.fonts.Small, line, 630, 152+float64(i)*17, ink)
		}
	} else {
		drawText(screen, s.fonts.Small, "no sovereign recorded", 630, 120, pal.dim)
	}

	// Decay readout with a live swatch.
	swatch := colorful.Hsv(s.hue, s.saturation, 0.8)
	r, g, b := swatch.RGB255()
	vector.DrawFilledRect(screen, 616, 254, 16, 16, color.RGBA{r, g, b, 255}, false)
	drawText(screen, s.fonts.Mono, fmt.Sprintf("opacity %.2f", s.opacity), 642, 252, ink)
	drawText(screen, s.fonts.Mono, fmt.Sprintf("hue %.0f  sat %.2f", s.hue, s.saturation), 642, 270, ink)

	legend := []string{
		"left/right slide year",
		"pgup/pgdn jump a decade",
		"home/end first and last year",
		"E echo   G ghost   S style",
		"esc back to menu",
	}
	for i, line := range legend {
		drawText(screen, s.fonts.Small, line, 616, 318+float64(i)*17, pal.dim)
	}
}

func (s *TimelineScreen) drawEchoPanel(screen *ebiten.Image, pal palette, ink color.RGBA) {
	borderAlpha := uint8(110)
	if s.flicker {
		borderAlpha = 255
	}
	vector.DrawFilledRect(screen, 24, 440, 912, 60, withAlpha(pal.panel, 180), false)
	vector.StrokeRect(screen, 24, 440, 912, 60, 1, withAlpha(pal.accent, borderAlpha), false)
	drawText(screen, s.fonts.Small, "ECHO CHANNEL", 32, 444, pal.dim)

	// The echo can carry a second interference line; keep each on its own
	// row so the ghost residue never scrolls out of the panel.
	y := 460.0
	for i, segment := range strings.SplitN(s.echo, "\n", 3) {
		if i >= 2 {
			break
		}
		clr := ink
		if i > 0 {
			clr = withAlpha(pal.accent, 220)
		}
		drawText(screen, s.fonts.Mono, clampLines(wrapText(segment, 108), 1)[0], 36, y, clr)
		y += 18
	}
}

// reigningGod returns the sovereign of the decade the current year is in.
func (s *TimelineScreen) reigningGod() (lore.DevGod, bool) {
	index := (s.controller.Year() - 1) / 10
	if index < 0 || index >= len(s.chronicle.Gods) {
		return lore.DevGod{}, false
	}
	return s.chronicle.Gods[index], true
}

// drawBadge draws a small mode indicator, bright while the mode is on.
func drawBadge(screen *ebiten.Image, fonts *Fonts, x, y float64, label string, active bool, pal palette) {
	clr := pal.dim
	if active {
		clr = pal.accent
		vector.StrokeRect(screen, float32(x-6), float32(y-3), float32(10+float64(len(label))*9), 22, 1, clr, false)
	}
	drawText(screen, fonts.Caption, label, x, y, clr)
}

// Layout returns the fixed screen dimensions
func (s *TimelineScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GetScreenDimensions()
}
