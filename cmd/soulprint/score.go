package main

import (
	"github.com/spf13/cobra"

	"soulprint/internal/scoring"
)

func newScoreCmd() *cobra.Command {
	var answersPath, configPath string

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Compute a trait vector from raw answers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var raw scoring.RawResponse
			if err := readJSON(answersPath, &raw); err != nil {
				return err
			}
			agg, err := loadAggregator(configPath)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), agg.Compute(raw))
		},
	}
	cmd.Flags().StringVarP(&answersPath, "answers", "a", "", "Path to raw answers JSON (required)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to an alternate scoring YAML")
	markRequired(cmd, "answers")
	return cmd
}
