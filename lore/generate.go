package lore

import (
	"fmt"
	"regexp"
)

// SeedLogline anchors the derivation chain. Year 1 folds over this line the
// same way every later year folds over its predecessor.
const SeedLogline = "Year 0: a single seed commit glows in the dark."

// Fixed offsets into the artifact table, applied on top of year+decade.
var artifactOffsets = [3]int{1, 3, 6}

var yearPrefix = regexp.MustCompile(`^Year \d+: `)

// YearLayer is one year's chronicle record. Layers are immutable once
// generated; everything downstream only reads them.
type YearLayer struct {
	Year         int
	Title        string
	Logline      string
	MicroUpgrade string
	Artifacts    [3]string
	PatchLog     [4]string
	Echo         string
	Ghost        string
}

// DevGod records the deity credited with a decade of maintenance. One is
// minted at every 10th year.
type DevGod struct {
	Year         int
	Name         string
	Contribution string
}

// Chronicle is the generated history: one layer per year plus one dev-god
// per decade, built exactly once at startup.
type Chronicle struct {
	Years  int
	Layers []YearLayer
	Gods   []DevGod
}

// Generate builds the full chronicle in a single forward pass over
// year 1..years. The logline is a strict left fold: an accumulator carries
// the previous year's line, and each year embeds that line verbatim with
// its "Year <n>: " prefix stripped. Table preconditions are checked up
// front; a violation aborts generation before any layer is built.
func Generate(tables Tables, years int) (*Chronicle, error) {
	if err := tables.Validate(years); err != nil {
		return nil, fmt.Errorf("failed to generate chronicle: %w", err)
	}

	chronicle := &Chronicle{
		Years:  years,
		Layers: make([]YearLayer, 0, years),
		Gods:   make([]DevGod, 0, years/10),
	}

	prev := SeedLogline
	for year := 1; year <= years; year++ {
		decade := (year - 1) / 10
		logline := fmt.Sprintf("Year %d: %s eclipses %s",
			year, tables.Themes[decade], stripYearPrefix(prev))

		layer := YearLayer{
			Year:         year,
			Title:        layerTitle(year),
			Logline:      logline,
			MicroUpgrade: fmt.Sprintf("%s (inherited from year %d)", tables.Upgrades[decade], year-1),
			PatchLog:     patchLog(year, decade),
			Echo:         prev,
			Ghost:        tables.Ghosts[(year*5)%len(tables.Ghosts)],
		}
		for i, offset := range artifactOffsets {
			fragment := tables.Artifacts[(year+decade+offset)%len(tables.Artifacts)]
			if i == len(layer.Artifacts)-1 {
				fragment = fmt.Sprintf("%s [%s]", fragment, artifactStatus(year))
			}
			layer.Artifacts[i] = fragment
		}
		chronicle.Layers = append(chronicle.Layers, layer)

		if year%10 == 0 {
			chronicle.Gods = append(chronicle.Gods, DevGod{
				Year:         year,
				Name:         GodName(year),
				Contribution: fmt.Sprintf("Held the myth-chain stable from year %d through year %d", year-9, year-1),
			})
		}
		prev = logline
	}
	return chronicle, nil
}

// Layer returns the record for the given year, or false when the year is
// outside the generated range.
func (c *Chronicle) Layer(year int) (YearLayer, bool) {
	if year < 1 || year > c.Years {
		return YearLayer{}, false
	}
	return c.Layers[year-1], true
}

func layerTitle(year int) string {
	if year%10 == 0 {
		return fmt.Sprintf("Layer %d :: Decade Audit", year)
	}
	return fmt.Sprintf("Layer %d :: Mythic Rebuild", year)
}

func artifactStatus(year int) string {
	if year%5 == 0 {
		return "CRITICAL"
	}
	return "nominal"
}

func patchLog(year, decade int) [4]string {
	entries := [4]string{
		fmt.Sprintf("v%d.0.%d :: core resync", year, year%10),
		fmt.Sprintf("v%d.1.%d :: balance pass, decade %d", year, (year*3)%10, decade+1),
	}
	if year%7 == 0 {
		entries[2] = fmt.Sprintf("v%d.7.0 :: prophecy checksum realigned", year)
	} else {
		entries[2] = fmt.Sprintf("v%d.2.%d :: drift correction", year, year%7)
	}
	if year > 70 {
		entries[3] = fmt.Sprintf("v%d.9.9 :: legacy myth shim installed", year)
	} else {
		entries[3] = fmt.Sprintf("v%d.3.0 :: stable channel certified", year)
	}
	return entries
}

func stripYearPrefix(line string) string {
	return yearPrefix.ReplaceAllString(line, "")
}
