package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/spf13/cobra"

	"fractal-gods/audio"
	"fractal-gods/combat"
	"fractal-gods/config"
	"fractal-gods/lore"
	"fractal-gods/screens"
)

var rootCmd = &cobra.Command{
	Use:   "fractal-gods",
	Short: "A century of dev lore with a combat prototype attached",
	Long: "Fractal Gods generates one hundred years of self-mythologising\n" +
		"changelog lore, one layer per year and one sovereign per decade,\n" +
		"and opens a viewer for scrubbing through it. The arena holds the\n" +
		"combat prototype: one sovereign, one echo sentinel, one parry.",
	RunE:          runGame,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Int("years", 0, "length of the chronicle (multiple of 10)")
	rootCmd.PersistentFlags().Int64("seed", 0, "seed for the deadline draw and screen shake (0 = clock)")
	rootCmd.PersistentFlags().String("tables", "", "YAML file replacing the built-in lore tables")
	rootCmd.PersistentFlags().String("tuning", "", "JSON file replacing the built-in combat tuning")

	rootCmd.Flags().Bool("timeline", false, "open straight onto the lore timeline")
	rootCmd.Flags().Bool("arena", false, "open straight onto the combat arena")
	rootCmd.Flags().Bool("fullscreen", false, "start in fullscreen mode")
	rootCmd.Flags().Bool("mute", false, "disable the synthesized sound effects")
}

// loadConfig merges defaults, FRACTAL_* environment variables and flags,
// in that order of increasing precedence.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}

	if cmd.Flags().Changed("years") {
		cfg.Years, _ = cmd.Flags().GetInt("years")
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed, _ = cmd.Flags().GetInt64("seed")
	}
	if cmd.Flags().Changed("tables") {
		cfg.TablesPath, _ = cmd.Flags().GetString("tables")
	}
	if cmd.Flags().Changed("tuning") {
		cfg.TuningPath, _ = cmd.Flags().GetString("tuning")
	}
	if flag := cmd.Flags().Lookup("fullscreen"); flag != nil && flag.Changed {
		cfg.Fullscreen, _ = cmd.Flags().GetBool("fullscreen")
	}
	if flag := cmd.Flags().Lookup("mute"); flag != nil && flag.Changed {
		cfg.Mute, _ = cmd.Flags().GetBool("mute")
	}

	return cfg, nil
}

// loadChronicle builds the century from the configured tables.
func loadChronicle(cfg config.Config) (*lore.Chronicle, error) {
	tables := lore.DefaultTables()
	if cfg.TablesPath != "" {
		loaded, err := lore.LoadTables(cfg.TablesPath)
		if err != nil {
			return nil, err
		}
		tables = loaded
	}
	return lore.Generate(tables, cfg.Years)
}

// loadTuning builds the combat numbers from the configured overlay.
func loadTuning(cfg config.Config) (*combat.Tuning, error) {
	if cfg.TuningPath == "" {
		return combat.DefaultTuning(), nil
	}
	return combat.LoadTuning(cfg.TuningPath)
}

func runGame(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	chronicle, err := loadChronicle(cfg)
	if err != nil {
		return fmt.Errorf("failed to build chronicle: %w", err)
	}

	tuning, err := loadTuning(cfg)
	if err != nil {
		return fmt.Errorf("failed to load combat tuning: %w", err)
	}

	fonts, err := screens.LoadFonts()
	if err != nil {
		return fmt.Errorf("failed to load fonts: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("chronicle of %d years, seed %d", chronicle.Years, seed)

	synth := audio.NewSynth(ebitenaudio.NewContext(audio.SampleRate), cfg.Mute)
	game := NewGame(chronicle, tuning, fonts, synth, rand.New(rand.NewSource(seed)))

	if open, _ := cmd.Flags().GetBool("timeline"); open {
		game.OpenTimeline()
	}
	if open, _ := cmd.Flags().GetBool("arena"); open {
		game.OpenArena()
	}

	ebiten.SetWindowSize(config.GetWindowSize())
	ebiten.SetWindowTitle("Fractal Gods: Sovereign Paradox")
	if cfg.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return ebiten.RunGame(game)
}
