package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fractal-gods/lore"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the lore tables and combat tuning without opening a window",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		ok := true

		source := "built-in"
		tables := lore.DefaultTables()
		if cfg.TablesPath != "" {
			source = cfg.TablesPath
			tables, err = lore.LoadTables(cfg.TablesPath)
		}
		if err == nil {
			err = tables.Validate(cfg.Years)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "✗ lore tables (%s): %v\n", source, err)
			ok = false
		} else {
			fmt.Fprintf(os.Stderr, "✓ lore tables (%s): %d decades\n", source, cfg.Years/10)
		}

		tuningSource := "built-in"
		if cfg.TuningPath != "" {
			tuningSource = cfg.TuningPath
		}
		if _, err := loadTuning(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "✗ combat tuning (%s): %v\n", tuningSource, err)
			ok = false
		} else {
			fmt.Fprintf(os.Stderr, "✓ combat tuning (%s)\n", tuningSource)
		}

		if !ok {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
