package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"fractal-gods/lore"
)

var chronicleCmd = &cobra.Command{
	Use:   "chronicle",
	Short: "Print the generated lore without opening a window",
	RunE:  runChronicle,
}

func init() {
	chronicleCmd.Flags().Int("year", 0, "print a single year's full layer")
	chronicleCmd.Flags().Bool("gods", false, "print only the decade sovereigns")
	chronicleCmd.Flags().Bool("json", false, "dump the whole chronicle as JSON")
	rootCmd.AddCommand(chronicleCmd)
}

func runChronicle(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	chronicle, err := loadChronicle(cfg)
	if err != nil {
		return fmt.Errorf("failed to build chronicle: %w", err)
	}

	out := cmd.OutOrStdout()

	if dump, _ := cmd.Flags().GetBool("json"); dump {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(chronicle)
	}

	if year, _ := cmd.Flags().GetInt("year"); year != 0 {
		layer, ok := chronicle.Layer(year)
		if !ok {
			return fmt.Errorf("year %d is outside the chronicle (1..%d)", year, chronicle.Years)
		}
		printLayer(out, layer)
		return nil
	}

	if godsOnly, _ := cmd.Flags().GetBool("gods"); godsOnly {
		for _, god := range chronicle.Gods {
			fmt.Fprintf(out, "year %3d  %-24s %s\n", god.Year, god.Name, god.Contribution)
		}
		return nil
	}

	for _, layer := range chronicle.Layers {
		fmt.Fprintf(out, "%4d  %-28s %s\n", layer.Year, layer.Title, layer.MicroUpgrade)
		if layer.Year%10 == 0 {
			god := chronicle.Gods[(layer.Year-1)/10]
			fmt.Fprintf(out, "      ascended: %s\n", god.Name)
		}
	}
	return nil
}

// printLayer writes one year in full, region by region.
func printLayer(w io.Writer, layer lore.YearLayer) {
	fmt.Fprintln(w, layer.Title)
	fmt.Fprintln(w, layer.Logline)
	fmt.Fprintln(w, "upgrade:", layer.MicroUpgrade)
	for _, artifact := range layer.Artifacts {
		fmt.Fprintln(w, "relic:  ", artifact)
	}
	for _, patch := range layer.PatchLog {
		fmt.Fprintln(w, "patch:  ", patch)
	}
	fmt.Fprintln(w, "echo:   ", layer.Echo)
	fmt.Fprintln(w, "ghost:  ", layer.Ghost)
}
