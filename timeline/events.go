package timeline

import (
	"fractal-gods/events"
)

// Event types for the viewer. The screen posts these onto the bus as keys
// and timers fire; the controller's handlers consume them in arrival order.
const (
	EventSlide        events.EventType = "timeline.slide"
	EventToggleEcho   events.EventType = "timeline.toggle_echo"
	EventToggleGhost  events.EventType = "timeline.toggle_ghost"
	EventToggleStyle  events.EventType = "timeline.toggle_style"
	EventTick         events.EventType = "timeline.tick"
	EventDeadline     events.EventType = "timeline.deadline"
	EventBannerExpire events.EventType = "timeline.banner_expire"
)

// SlideEvent carries the position control's new year.
type SlideEvent struct {
	Year int
}

func (SlideEvent) Type() events.EventType { return EventSlide }

// ToggleEchoEvent flips echo mode.
type ToggleEchoEvent struct{}

func (ToggleEchoEvent) Type() events.EventType { return EventToggleEcho }

// ToggleGhostEvent flips ghost mode.
type ToggleGhostEvent struct{}

func (ToggleGhostEvent) Type() events.EventType { return EventToggleGhost }

// ToggleStyleEvent cycles the presentation palette. Pure cosmetics: the
// screen consumes it directly and the controller never sees it.
type ToggleStyleEvent struct{}

func (ToggleStyleEvent) Type() events.EventType { return EventToggleStyle }

// TickEvent is the periodic flicker tick.
type TickEvent struct{}

func (TickEvent) Type() events.EventType { return EventTick }

// DeadlineEvent fires the one-shot prophecy banner.
type DeadlineEvent struct{}

func (DeadlineEvent) Type() events.EventType { return EventDeadline }

// BannerExpireEvent removes the prophecy banner after its display time.
type BannerExpireEvent struct{}

func (BannerExpireEvent) Type() events.EventType { return EventBannerExpire }

// Register subscribes the controller's handlers for every viewer event.
// The caller drains the bus on the game-loop goroutine, so handlers run
// one at a time in post order.
func (c *Controller) Register(bus *events.Bus) {
	bus.Subscribe(EventSlide, func(event events.Event) {
		if slide, ok := event.(SlideEvent); ok {
			c.OnSlide(slide.Year)
		}
	})
	bus.Subscribe(EventToggleEcho, func(events.Event) {
		c.ToggleEcho()
	})
	bus.Subscribe(EventToggleGhost, func(events.Event) {
		c.ToggleGhost()
	})
	bus.Subscribe(EventTick, func(events.Event) {
		c.Tick()
	})
	bus.Subscribe(EventDeadline, func(events.Event) {
		c.DeadlineAlert()
	})
	bus.Subscribe(EventBannerExpire, func(events.Event) {
		c.ExpireBanner()
	})
}
