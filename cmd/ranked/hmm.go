package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gitrdm/ranked-belief/examples/hmm"
)

func hmmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hmm observation...",
		Short: "Decode weather from umbrella observations",
		Long: `hmm ranks the latent weather sequences behind a series of umbrella
sightings. Each observation is "yes" (umbrella seen) or "no".`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("at least one observation required")
			}
			for _, a := range args {
				if a != hmm.Yes && a != hmm.No {
					return fmt.Errorf("observation %q: must be %q or %q", a, hmm.Yes, hmm.No)
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			slog.Debug("decoding weather", "observations", args)

			pairs, err := hmm.Paths(args, topN())
			if err != nil {
				return err
			}
			for _, p := range pairs {
				states := make([]string, len(p.Value))
				for i, step := range p.Value {
					states[i] = step.State
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", p.Rank, strings.Join(states, " "))
			}
			return nil
		},
	}
}
