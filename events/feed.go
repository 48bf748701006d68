package events

import (
	"image/color"
)

// Tone classifies feed entries so the renderer can color them
type Tone int

const (
	// ToneNormal is for standard messages (light gray)
	ToneNormal Tone = iota
	// ToneMyth is for lore and flavor text (gold)
	ToneMyth
	// ToneCombat is for damage messages (red)
	ToneCombat
	// ToneParry is for successful defensive play (aqua)
	ToneParry
	// ToneAlert is for important warnings (bright yellow)
	ToneAlert
	// ToneSystem is for mode and screen transitions (purple)
	ToneSystem
)

// Color returns the render color for the tone
func (t Tone) Color() color.RGBA {
	switch t {
	case ToneMyth:
		return color.RGBA{218, 165, 32, 255}
	case ToneCombat:
		return color.RGBA{255, 100, 100, 255}
	case ToneParry:
		return color.RGBA{140, 255, 230, 255}
	case ToneAlert:
		return color.RGBA{255, 255, 0, 255}
	case ToneSystem:
		return color.RGBA{186, 85, 211, 255}
	default:
		return color.RGBA{200, 200, 200, 255}
	}
}

// Entry is one line of the feed with its tone
type Entry struct {
	Text string
	Tone Tone
}

// Feed is a rolling log of recent game messages. Each screen owns its own
// feed instead of sharing a global one, so tests can drive a feed without
// touching package state.
type Feed struct {
	entries []Entry
	max     int
}

// NewFeed creates a feed keeping at most max entries
func NewFeed(max int) *Feed {
	return &Feed{max: max}
}

// Add appends a message to the feed, dropping the oldest past the cap
func (f *Feed) Add(text string, tone Tone) {
	f.entries = append(f.entries, Entry{Text: text, Tone: tone})
	if len(f.entries) > f.max {
		f.entries = f.entries[len(f.entries)-f.max:]
	}
}

// Recent returns up to n entries, newest first
func (f *Feed) Recent(n int) []Entry {
	if n > len(f.entries) {
		n = len(f.entries)
	}
	result := make([]Entry, n)
	for i := 0; i < n; i++ {
		result[i] = f.entries[len(f.entries)-1-i]
	}
	return result
}

// Len returns the number of retained entries
func (f *Feed) Len() int {
	return len(f.entries)
}

// Clear empties the feed
func (f *Feed) Clear() {
	f.entries = nil
}
