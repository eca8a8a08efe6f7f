package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"soulprint/internal/matching"
)

func newCompareCmd() *cobra.Command {
	var flags matchFlags
	var ids []string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare matched destinations side by side",
		RunE: func(cmd *cobra.Command, _ []string) error {
			results, catalog, err := flags.rank()
			if err != nil {
				return err
			}

			profiles := make(map[string]matching.DestinationProfile, len(catalog))
			for _, d := range catalog {
				profiles[d.ID] = d
			}
			matches := make(map[string]matching.MatchResult, len(results))
			for _, r := range results {
				matches[r.DestinationID] = r
			}

			seen := make(map[string]struct{}, len(ids))
			entries := make([]matching.Entry, 0, len(ids))
			for _, id := range ids {
				if _, dup := seen[id]; dup {
					continue
				}
				seen[id] = struct{}{}

				m, ok := matches[id]
				if !ok {
					return fmt.Errorf("destination %q is not in the ranked catalog", id)
				}
				entries = append(entries, matching.Entry{Profile: profiles[id], Match: m})
			}

			cmp, err := matching.Compare(entries)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), cmp)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringSliceVar(&ids, "ids", nil, "Comma-separated destination ids to compare (required)")
	markRequired(cmd, "ids")
	return cmd
}
