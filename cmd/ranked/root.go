package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func rootCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "ranked",
		Short: "Rank-ordered inference on example domains",
		Long: `ranked runs ranking-theoretic inference on a set of worked examples.

Each subcommand builds a lazy ranking over the outcomes of its domain,
conditions it on the given evidence and prints the least surprising
results first. Results are printed as "<rank>  <outcome>" lines; rank 0
is the normal course of events, higher ranks are increasingly surprising.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().IntP("top", "n", 5, "number of ranked results to print")

	viper.SetEnvPrefix("RANKED")
	viper.AutomaticEnv()
	cobra.CheckErr(viper.BindPFlag("top", cmd.PersistentFlags().Lookup("top")))

	cmd.AddCommand(
		circuitCmd(),
		hmmCmd(),
		localisationCmd(),
		networkCmd(),
		spellingCmd(),
	)
	return cmd
}

func topN() int {
	return viper.GetInt("top")
}
