package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gitrdm/ranked-belief/examples/circuit"
)

func circuitCmd() *cobra.Command {
	var observed bool
	cmd := &cobra.Command{
		Use:   "circuit i1 i2 i3",
		Short: "Diagnose faults in the three-gate boolean circuit",
		Long: `circuit ranks explanations for a measured circuit output.

The inputs i1 i2 i3 are booleans (true/false or 1/0). The output that was
actually measured is given with --observed; the most plausible gate health
assignments explaining it are printed first.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var bits [3]bool
			for i, arg := range args {
				v, err := strconv.ParseBool(arg)
				if err != nil {
					return fmt.Errorf("input %d: %w", i+1, err)
				}
				bits[i] = v
			}
			in := circuit.Inputs{I1: bits[0], I2: bits[1], I3: bits[2]}
			slog.Debug("diagnosing circuit", "inputs", in, "observed", observed)

			pairs, err := circuit.Explanations(in, observed, topN())
			if err != nil {
				return err
			}
			for _, p := range pairs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  N=%t O1=%t O2=%t\n",
					p.Rank, p.Value.N, p.Value.O1, p.Value.O2)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&observed, "observed", false, "the output level that was measured")
	return cmd
}
