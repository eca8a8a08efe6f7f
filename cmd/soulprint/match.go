package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"soulprint/internal/catalogfile"
	"soulprint/internal/matching"
	"soulprint/internal/scoring"
)

type matchFlags struct {
	traitsPath      string
	catalogPath     string
	includeInactive bool
}

func (f *matchFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.traitsPath, "traits", "t", "", "Path to trait vector JSON (required)")
	cmd.Flags().StringVar(&f.catalogPath, "catalog", "", "Path to destination catalog JSON (required)")
	cmd.Flags().BoolVar(&f.includeInactive, "include-inactive", false, "Also rank destinations marked inactive")
	markRequired(cmd, "traits", "catalog")
}

// rank loads both inputs and returns the full ranking plus the catalog it
// was computed over.
func (f *matchFlags) rank() ([]matching.MatchResult, []matching.DestinationProfile, error) {
	var traits scoring.TraitVector
	if err := readJSON(f.traitsPath, &traits); err != nil {
		return nil, nil, err
	}
	catalog, err := catalogfile.Load(f.catalogPath)
	if err != nil {
		return nil, nil, err
	}
	if !f.includeInactive {
		active := catalog[:0]
		for _, d := range catalog {
			if d.Active {
				active = append(active, d)
			}
		}
		catalog = active
	}
	return matching.MatchDestinations(traits, catalog), catalog, nil
}

func newMatchCmd() *cobra.Command {
	var flags matchFlags
	var top int

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Rank a destination catalog against a trait vector",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if top < 0 {
				return fmt.Errorf("--top must not be negative")
			}
			results, _, err := flags.rank()
			if err != nil {
				return err
			}
			if top > 0 && top < len(results) {
				results = results[:top]
			}
			return writeJSON(cmd.OutOrStdout(), results)
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVarP(&top, "top", "n", 0, "Only print the first n matches (0 prints all)")
	return cmd
}
