package main

import (
	"context"
	"errors"
	"fmt"
	"golv/engine"
	"golv/experiments/metrics"
	"golv/game"
	"golv/game/cards"
	"golv/game/connectfour"
	"golv/game/tictactoe"
	"golv/game/tricks"
	"golv/memo"
	"golv/searcher"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

var errUnknownDriver = errors.New("unknown driver")

// positionFlags select the position a command works on.
type positionFlags struct {
	game    string
	variant string
	cards   int
	seed    uint64
	soloist int
	play    []int
}

func (f *positionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.game, "game", "tricks", "Game to solve (tricks, tictactoe, connectfour)")
	cmd.Flags().StringVar(&f.variant, "variant", "bridge", "Trick-taking variant (bridge, skat)")
	cmd.Flags().IntVar(&f.cards, "cards", 4, "Cards per suit of a trick-taking deal")
	cmd.Flags().Uint64Var(&f.seed, "seed", 1, "Seed of the trick-taking deal")
	cmd.Flags().IntVar(&f.soloist, "soloist", 0, "Maximizing seat of the trick-taking deal")
	cmd.Flags().IntSliceVar(&f.play, "play", nil, "Moves to play first on a board game")
}

func newSolveCmd(a *app) *cobra.Command {
	var flags positionFlags
	var driver string
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a position exactly",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.position(&flags)
			if err != nil {
				return err
			}
			return p.solve(cmd.OutOrStdout(), driver)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&driver, "driver", "bisect", "Search driver (alphabeta, negamax, mtd, bisect)")
	return cmd
}

func newAnalyzeCmd(a *app) *cobra.Command {
	var flags positionFlags
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Value every legal move of a position",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.position(&flags)
			if err != nil {
				return err
			}
			return p.analyze(cmd.Context(), cmd.OutOrStdout())
		},
	}
	flags.register(cmd)
	return cmd
}

func newPlayoutCmd(a *app) *cobra.Command {
	var flags positionFlags
	var driver string
	cmd := &cobra.Command{
		Use:   "playout",
		Short: "Play the principal line of a position to the end",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.position(&flags)
			if err != nil {
				return err
			}
			return p.playout(cmd.OutOrStdout(), driver)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&driver, "driver", "bisect", "Search driver (alphabeta, negamax, bisect)")
	return cmd
}

func newPushCmd(a *app) *cobra.Command {
	var flags positionFlags
	var top int
	cmd := &cobra.Command{
		Use:   "push",
		Short: "Rank the skat soloist's discards",
		RunE: func(cmd *cobra.Command, args []string) error {
			deal, err := tricks.Deal(tricks.Skat, flags.cards, flags.seed, tricks.WithSoloist(flags.soloist))
			if err != nil {
				return err
			}
			hands := make([]cards.Set, tricks.Skat.Players())
			for i := range hands {
				hands[i] = deal.Hand(i)
			}
			pushes, err := tricks.Pushes(hands, deal.Skat(), tricks.WithSoloist(flags.soloist))
			if err != nil {
				return err
			}

			ranked, err := engine.RankOptions(cmd.Context(), pushes, func(ctx context.Context, p tricks.Push) (int, error) {
				v, _ := searcher.Bisect(p.Game, p.Game.Order, searcher.WithLogger(a.logger))
				return v, nil
			}, engine.WithConcurrency(a.cfg.Search.Concurrency), engine.WithLogger(a.logger))
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, deal)
			for i, r := range ranked {
				if top > 0 && i == top {
					break
				}
				fmt.Fprintf(w, "%2d. discard %s value %d\n", i+1, r.Candidate.Discard, r.Value)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&flags.cards, "cards", 5, "Cards per suit (2, 5 or 8)")
	cmd.Flags().Uint64Var(&flags.seed, "seed", 1, "Seed of the deal")
	cmd.Flags().IntVar(&flags.soloist, "soloist", 0, "Seat of the soloist")
	cmd.Flags().IntVar(&top, "top", 10, "Discards to list, 0 for all")
	return cmd
}

// runner is a position of any game, ready for the commands.
type runner interface {
	solve(w io.Writer, driver string) error
	analyze(ctx context.Context, w io.Writer) error
	playout(w io.Writer, driver string) error
}

type position[M comparable, K comparable, V game.Value] struct {
	app   *app
	game  game.Game[M, K, V]
	clone func() game.Game[M, K, V]
	order game.Ordering[M]
}

func (a *app) position(f *positionFlags) (runner, error) {
	order := a.cfg.Search.Ordering
	switch f.game {
	case "tricks":
		if len(f.play) > 0 {
			return nil, fmt.Errorf("--play applies to board games only")
		}
		variant, err := tricks.ParseVariant(f.variant)
		if err != nil {
			return nil, err
		}
		g, err := tricks.Deal(variant, f.cards, f.seed, tricks.WithSoloist(f.soloist))
		if err != nil {
			return nil, err
		}
		p := &position[cards.Card, tricks.Key, int]{app: a, game: g, clone: func() game.Game[cards.Card, tricks.Key, int] { return g.Clone() }}
		if order {
			p.order = g.Order
		}
		return p, nil
	case "tictactoe":
		b := tictactoe.New()
		if err := play(b, f.play); err != nil {
			return nil, err
		}
		p := &position[int, string, int]{app: a, game: b, clone: func() game.Game[int, string, int] { return b.Clone() }}
		if order {
			p.order = tictactoe.Order
		}
		return p, nil
	case "connectfour":
		b := connectfour.New()
		if err := play(b, f.play); err != nil {
			return nil, err
		}
		p := &position[int, string, int]{app: a, game: b, clone: func() game.Game[int, string, int] { return b.Clone() }}
		if order {
			p.order = connectfour.Order
		}
		return p, nil
	}
	return nil, fmt.Errorf("unknown game %q", f.game)
}

// play applies moves after checking each is legal.
func play(g game.Game[int, string, int], moves []int) error {
	for _, m := range moves {
		if g.IsTerminal() || !slices.Contains(g.LegalMoves(), m) {
			return fmt.Errorf("%w: %d", game.ErrIllegalMove, m)
		}
		g.Apply(m)
	}
	return nil
}

func (p *position[M, K, V]) table() memo.Table[K, V] {
	if size := p.app.cfg.Search.TableSize; size > 0 {
		return memo.NewBoundedTable[K, V](size, memo.WithPolicy(memo.Checkpoints))
	}
	return memo.NewTable[K, V](memo.WithPolicy(memo.Checkpoints))
}

func (p *position[M, K, V]) solver(driver string, collector metrics.Collector) (engine.Solver[M, K, V], error) {
	options := []searcher.Option{searcher.WithLogger(p.app.logger), searcher.WithMetrics(collector)}
	switch driver {
	case "alphabeta":
		return func(g game.Game[M, K, V]) (V, M) {
			return searcher.SolveFullWindow(g, p.order, p.table(), options...)
		}, nil
	case "negamax":
		return func(g game.Game[M, K, V]) (V, M) {
			s := searcher.NewNegamax(g, p.order, p.table(), options...)
			return s.Solve(), s.BestMove()
		}, nil
	case "bisect":
		return func(g game.Game[M, K, V]) (V, M) {
			return searcher.Bisect(g, p.order, options...)
		}, nil
	}
	return nil, fmt.Errorf("%w %q", errUnknownDriver, driver)
}

func (p *position[M, K, V]) solve(w io.Writer, driver string) error {
	collector := metrics.NewCollector()
	fmt.Fprintln(w, p.game)

	if driver == "mtd" {
		r, ok := p.game.(game.Ranged[V])
		if !ok {
			return searcher.ErrUnranged
		}
		lo, hi := r.ValueRange()
		v := searcher.Refine(p.game, lo+(hi-lo)/2, lo, hi, p.order, p.table(),
			searcher.WithLogger(p.app.logger), searcher.WithMetrics(collector))
		fmt.Fprintf(w, "value %d\n", v)
	} else {
		solve, err := p.solver(driver, collector)
		if err != nil {
			return err
		}
		v, move := solve(p.game)
		fmt.Fprintf(w, "value %d move %v\n", v, move)
	}

	m := collector.Complete()
	fmt.Fprintf(w, "%s: %d nodes, %d cutoffs, %d table hits, %d probes in %s\n",
		m.Driver, m.Nodes, m.Cutoffs, m.TableHits, m.Probes, m.Duration)
	return nil
}

func (p *position[M, K, V]) analyze(ctx context.Context, w io.Writer) error {
	values, err := engine.Analyze(ctx, p.game, p.clone, p.order,
		engine.WithConcurrency(p.app.cfg.Search.Concurrency), engine.WithLogger(p.app.logger))
	if err != nil {
		return err
	}
	fmt.Fprintln(w, p.game)
	for _, mv := range values {
		fmt.Fprintf(w, "%v\t%d\n", mv.Move, mv.Value)
	}
	return nil
}

func (p *position[M, K, V]) playout(w io.Writer, driver string) error {
	solve, err := p.solver(driver, nil)
	if err != nil {
		return err
	}
	steps := engine.Playout(p.game, solve, engine.WithLogger(p.app.logger))
	for _, step := range steps {
		side := "max"
		if !step.IsMax {
			side = "min"
		}
		fmt.Fprintf(w, "%3d %s %v\t%d\n", step.Ply, side, step.Move, step.Value)
	}
	fmt.Fprintf(w, "final %d\n", p.game.Value())
	return nil
}
