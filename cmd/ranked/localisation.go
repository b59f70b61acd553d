package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gitrdm/ranked-belief/examples/localisation"
)

func localisationCmd() *cobra.Command {
	var start string
	cmd := &cobra.Command{
		Use:   "localisation reading...",
		Short: "Track a robot from noisy position readings",
		Long: `localisation ranks the walks a grid robot can have taken given a series
of sensor readings. Readings and the start cell are given as "x,y" pairs.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			origin, err := parseCoord(start)
			if err != nil {
				return fmt.Errorf("start: %w", err)
			}
			readings := make([]localisation.Coord, len(args))
			for i, arg := range args {
				c, err := parseCoord(arg)
				if err != nil {
					return fmt.Errorf("reading %d: %w", i+1, err)
				}
				readings[i] = c
			}
			slog.Debug("tracking robot", "start", origin, "readings", len(readings))

			pairs, err := localisation.PathLikelihoods(origin, readings, topN())
			if err != nil {
				return err
			}
			for _, p := range pairs {
				cells := make([]string, len(p.Value))
				for i, c := range p.Value {
					cells[i] = fmt.Sprintf("(%d,%d)", c.X, c.Y)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", p.Rank, strings.Join(cells, " -> "))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&start, "start", "0,0", "the robot's known starting cell")
	return cmd
}

func parseCoord(s string) (localisation.Coord, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return localisation.Coord{}, fmt.Errorf("%q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return localisation.Coord{}, fmt.Errorf("%q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return localisation.Coord{}, fmt.Errorf("%q: %w", s, err)
	}
	return localisation.Coord{X: x, Y: y}, nil
}
