package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gitrdm/ranked-belief/examples/network"
)

func networkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "network",
		Short: "Rank sensor readings in the burglary network given a fire",
		Long: `network conditions the burglary/fire belief network on the house being on
fire and ranks the readings the sensor can produce.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			slog.Debug("conditioning network on fire")

			pairs, err := network.SensorReadings(topN())
			if err != nil {
				return err
			}
			for _, p := range pairs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  sensor=%t\n", p.Rank, p.Value)
			}
			return nil
		},
	}
}
