package main

import (
	"fmt"
	"golv/cfr"
	"golv/experiments"
	"golv/experiments/metrics"
	"golv/game"
	"golv/game/kuhn"
	"golv/game/rps"
	"golv/logging"
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func newExperimentCmd(a *app) *cobra.Command {
	var output, metricsPath string
	cmd := &cobra.Command{
		Use:   "experiment",
		Short: "Solve a batch of seeded deals with every driver and store the records",
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != "" {
				a.cfg.Experiment.OutputDir = output
			}
			reg := prometheus.NewRegistry()

			done := logging.Timer(a.logger, "experiment finished")
			report, err := experiments.Run(cmd.Context(), a.cfg,
				experiments.WithLogger(a.logger),
				experiments.WithCounters(metrics.NewCounters(reg)))
			if err != nil {
				return err
			}
			done()

			dir, err := experiments.Save(a.cfg.Experiment.OutputDir, report)
			if err != nil {
				return err
			}
			if metricsPath != "" {
				if err := prometheus.WriteToTextfile(metricsPath, reg); err != nil {
					return fmt.Errorf("failed to write metrics: %w", err)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d deals stored in %s\n", len(report.Deals), dir)
			return nil
		},
	}
	cmd.Flags().StringVar(&output, "output", "", "Directory for run results (overrides experiment.output_dir)")
	cmd.Flags().StringVar(&metricsPath, "metrics", "", "Write prometheus counters to this file")
	return cmd
}

func newEquilibriumCmd(a *app) *cobra.Command {
	var name string
	var iterations int
	var seed uint64
	cmd := &cobra.Command{
		Use:   "equilibrium",
		Short: "Approximate an equilibrium with counterfactual regret minimization",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("iterations") {
				iterations = a.cfg.CFR.Iterations
			}
			if !cmd.Flags().Changed("seed") {
				seed = a.cfg.CFR.Seed
			}
			if iterations < 1 {
				return fmt.Errorf("iterations must be positive, got %d", iterations)
			}
			options := []cfr.Option{cfr.WithSeed(seed), cfr.WithLogger(a.logger)}
			w := cmd.OutOrStdout()

			switch name {
			case "kuhn":
				equilibrium[kuhn.Action](w, kuhn.New(), iterations, options)
			case "rps":
				equilibrium[rps.Action](w, rps.New(), iterations, options)
			case "rps-hidden":
				equilibrium[rps.Action](w, rps.NewSimultaneous(), iterations, options)
			default:
				return fmt.Errorf("unknown game %q", name)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "game", "kuhn", "Game to solve (kuhn, rps, rps-hidden)")
	cmd.Flags().IntVar(&iterations, "iterations", 0, "Iterations (defaults to cfr.iterations)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Sampling seed (defaults to cfr.seed)")
	return cmd
}

// equilibrium prints the game value and the average strategy of every
// information set, sorted by name.
func equilibrium[A comparable](w io.Writer, g game.Extensive[A], iterations int, options []cfr.Option) {
	s := cfr.New(g, options...)
	value := s.Solve(iterations)
	fmt.Fprintf(w, "value %.4f after %d iterations\n", value, iterations)

	nodes := s.Nodes()
	infoSets := make([]string, 0, len(nodes))
	for infoSet := range nodes {
		infoSets = append(infoSets, infoSet)
	}
	slices.Sort(infoSets)
	for _, infoSet := range infoSets {
		n := nodes[infoSet]
		parts := make([]string, len(n.Actions))
		for i, p := range n.AverageStrategy() {
			parts[i] = fmt.Sprintf("%v=%.3f", n.Actions[i], p)
		}
		fmt.Fprintf(w, "%-6q %s\n", infoSet, strings.Join(parts, " "))
	}
}
