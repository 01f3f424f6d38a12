package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/kozaktomas/color-season/internal/color"
	"github.com/kozaktomas/color-season/internal/constants"
	"github.com/kozaktomas/color-season/internal/season"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Classify hair, eye and skin colors into a season",
	Long: `Classify three "#RRGGBB" colors into a seasonal color type and print
the recommended palette.

Example:
  color-season analyze --hair "#FFD700" --eyes "#FFA500" --skin "#FFE4C4"
  color-season analyze --hair "#000000" --eyes "#00008B" --skin "#2F4F4F" --json
  color-season analyze --hair "#8B4513" --eyes "#A0522D" --skin "#4B0082" --explain`,
	Args: cobra.NoArgs,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().String("hair", "", "Hair color as #RRGGBB")
	analyzeCmd.Flags().String("eyes", "", "Eye color as #RRGGBB")
	analyzeCmd.Flags().String("skin", "", "Skin color as #RRGGBB")
	analyzeCmd.Flags().Bool("json", false, "Print the result as JSON")
	analyzeCmd.Flags().Bool("explain", false, "Show warmth and brightness per color")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	in := season.Input{
		Hair: mustGetString(cmd, "hair"),
		Eyes: mustGetString(cmd, "eyes"),
		Skin: mustGetString(cmd, "skin"),
	}
	out := cmd.OutOrStdout()

	result, err := season.Classify(in)
	if err != nil {
		return fmt.Errorf("analyzing colors: %w", err)
	}

	if mustGetBool(cmd, "json") {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	if mustGetBool(cmd, "explain") {
		if err := printExplanation(out, in); err != nil {
			return err
		}
	}

	printResult(out, result)
	return nil
}

// printExplanation shows how each color contributed to the decision.
func printExplanation(out io.Writer, in season.Input) error {
	assessment, err := season.Assess(in)
	if err != nil {
		return fmt.Errorf("analyzing colors: %w", err)
	}

	for _, part := range []struct{ name, hex string }{
		{"Hair", in.Hair},
		{"Eyes", in.Eyes},
		{"Skin", in.Skin},
	} {
		c, err := color.Decode(part.hex)
		if err != nil {
			return err
		}
		tone := "cool"
		if c.IsWarm() {
			tone = "warm"
		}
		fmt.Fprintf(out, "%-5s %s  %s  brightness %.1f\n", part.name, c.Hex(), tone, c.Brightness())
	}

	fmt.Fprintf(out, "\nWarm colors: %d of 3 (warm when >= %d)\n", assessment.WarmCount, constants.WarmCountThreshold)
	fmt.Fprintf(out, "Average brightness: %.2f (bright when > %.0f)\n\n", assessment.AvgBrightness, constants.BrightnessMidpoint)
	return nil
}

func printResult(out io.Writer, result season.Result) {
	fmt.Fprintf(out, "Season: %s\n", result.Season)
	fmt.Fprintf(out, "%s\n", result.Description)
	fmt.Fprintf(out, "Palette:")
	for _, c := range result.Colors {
		fmt.Fprintf(out, " %s", c)
	}
	fmt.Fprintln(out)
}
