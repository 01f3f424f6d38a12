package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kozaktomas/color-season/internal/season"
	"github.com/spf13/cobra"
)

var seasonsCmd = &cobra.Command{
	Use:   "seasons [name]",
	Short: "List the seasons and their palettes",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSeasons,
}

func init() {
	rootCmd.AddCommand(seasonsCmd)
	seasonsCmd.Flags().Bool("json", false, "Print the seasons as JSON")
}

func runSeasons(cmd *cobra.Command, args []string) error {
	results := season.All()
	if len(args) == 1 {
		r, ok := season.Lookup(args[0])
		if !ok {
			return fmt.Errorf("unknown season %q (expected one of %s)", args[0], seasonNames())
		}
		results = []season.Result{r}
	}

	out := cmd.OutOrStdout()
	if mustGetBool(cmd, "json") {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for i, r := range results {
		if i > 0 {
			out.Write([]byte("\n"))
		}
		printResult(out, r)
	}
	return nil
}

func seasonNames() string {
	names := make([]string, 0, 4)
	for _, r := range season.All() {
		names = append(names, string(r.Season))
	}
	return strings.Join(names, ", ")
}
