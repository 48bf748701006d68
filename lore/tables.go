// Package lore generates the hundred-year chronicle of the fractal gods:
// one layer per year, derived deterministically from four fixed thematic
// tables, plus one dev-god per decade.
package lore

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Configuration errors, fatal at startup
var (
	// ErrBadYearCount means the year span is not a positive multiple of 10
	ErrBadYearCount = errors.New("year count must be a positive multiple of 10")
	// ErrTableMismatch means a decade table does not have years/10 entries
	ErrTableMismatch = errors.New("decade table length must equal years/10")
	// ErrEmptyTable means a modular-lookup table has no entries to index
	ErrEmptyTable = errors.New("lookup table must not be empty")
)

// Tables holds the four thematic tables the generator draws from. Themes
// and Upgrades are indexed by decade and must have exactly years/10
// entries; Artifacts and Ghosts are indexed modulo their length and only
// need to be non-empty.
type Tables struct {
	Themes    []string `yaml:"themes"`
	Upgrades  []string `yaml:"upgrades"`
	Artifacts []string `yaml:"artifacts"`
	Ghosts    []string `yaml:"ghosts"`
}

// One theme per decade, in chronological order.
var defaultThemes = []string{
	"the Bootstrap Dawn",
	"the Great Refactor",
	"the Fork Schisms",
	"the Null Crusades",
	"the Cache Enlightenment",
	"the Latency Wars",
	"the Garbage Collection",
	"the Shader Inquisition",
	"the Quantum Merge",
	"the Sovereign Paradox",
}

// One micro-upgrade per decade, paired with the theme above it.
var defaultUpgrades = []string{
	"+2% myth coherence",
	"deprecated miracle shims removed",
	"divinity shard hotpatched",
	"stamina lattice re-meshed",
	"echo buffers doubled",
	"parry window blessed",
	"altar garbage collector tuned",
	"aura shaders recompiled",
	"timeline branches entangled",
	"sovereign key rotated",
}

var defaultArtifacts = []string{
	"Obsidian Compiler",
	"Echo Sentinel Chassis",
	"Sovereign Sigil",
	"Parry Bell",
	"Stamina Lattice",
	"Ghost Capacitor",
	"Prophecy Buffer",
	"Fracture Lens",
	"Myth Anchor",
	"Paradox Coil",
}

var defaultGhosts = []string{
	"…the sentinel still remembers your stance…",
	"…a hotfix was never shipped to these altars…",
	"…someone is replaying year one…",
	"…the parry bell rings with no hand to swing it…",
	"…uncommitted prayers flicker in the buffer…",
	"…static where the dev-god used to answer…",
	"…the arena floor hums a deprecated hymn…",
	"…rollback residue clings to this decade…",
	"…a build that never finished still compiles…",
	"…the paradox coil turns one notch on its own…",
}

// DefaultTables returns a fresh copy of the built-in tables so callers can
// mutate their copy without touching the defaults.
func DefaultTables() Tables {
	return Tables{
		Themes:    append([]string(nil), defaultThemes...),
		Upgrades:  append([]string(nil), defaultUpgrades...),
		Artifacts: append([]string(nil), defaultArtifacts...),
		Ghosts:    append([]string(nil), defaultGhosts...),
	}
}

// LoadTables reads an alternate table set from a YAML file
func LoadTables(path string) (Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tables{}, fmt.Errorf("failed to read tables file: %w", err)
	}

	var tables Tables
	if err := yaml.Unmarshal(data, &tables); err != nil {
		return Tables{}, fmt.Errorf("failed to parse tables YAML: %w", err)
	}
	return tables, nil
}

// Validate checks the table-length preconditions for a chronicle of the
// given span. Generation refuses to start on any violation: a wrong-sized
// decade table would otherwise read out of bounds, and an empty lookup
// table would make the modular index divide by zero.
func (t Tables) Validate(years int) error {
	if years <= 0 || years%10 != 0 {
		return fmt.Errorf("%w: got %d", ErrBadYearCount, years)
	}
	decades := years / 10
	if len(t.Themes) != decades {
		return fmt.Errorf("%w: %d themes for %d decades", ErrTableMismatch, len(t.Themes), decades)
	}
	if len(t.Upgrades) != decades {
		return fmt.Errorf("%w: %d upgrades for %d decades", ErrTableMismatch, len(t.Upgrades), decades)
	}
	if len(t.Artifacts) == 0 {
		return fmt.Errorf("%w: artifacts", ErrEmptyTable)
	}
	if len(t.Ghosts) == 0 {
		return fmt.Errorf("%w: ghosts", ErrEmptyTable)
	}
	return nil
}
