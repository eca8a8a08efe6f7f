// Command soulprint scores questionnaire answers and ranks destinations
// offline, without the database or HTTP service.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"soulprint/internal/scoring"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "soulprint",
		Short:         "Offline trait scoring and destination matching",
		Long:          "soulprint turns raw questionnaire answers into a trait vector and ranks a destination catalog against it.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newScoreCmd(), newMatchCmd(), newCompareCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func loadAggregator(configPath string) (*scoring.Aggregator, error) {
	cfg, err := scoring.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	return scoring.NewAggregator(cfg), nil
}

func markRequired(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", name, err))
		}
	}
}
