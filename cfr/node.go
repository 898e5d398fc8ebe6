package cfr

// Node accumulates regrets and strategy mass for one information set.
type Node[A comparable] struct {
	Actions     []A
	Regret      []float64
	StrategySum []float64
}

func newNode[A comparable](actions []A) *Node[A] {
	return &Node[A]{
		Actions:     append([]A(nil), actions...),
		Regret:      make([]float64, len(actions)),
		StrategySum: make([]float64, len(actions)),
	}
}

// CurrentStrategy is regret matching: positive regrets normalized, uniform
// when no regret is positive.
func (n *Node[A]) CurrentStrategy() []float64 {
	strategy := make([]float64, len(n.Regret))
	total := 0.0
	for i, r := range n.Regret {
		if r > 0 {
			strategy[i] = r
			total += r
		}
	}
	return normalize(strategy, total)
}

// AverageStrategy is the accumulated strategy mass normalized, which
// converges to an equilibrium strategy.
func (n *Node[A]) AverageStrategy() []float64 {
	strategy := append([]float64(nil), n.StrategySum...)
	total := 0.0
	for _, s := range strategy {
		total += s
	}
	return normalize(strategy, total)
}

func (n *Node[A]) accumulate(strategy []float64) {
	for i, p := range strategy {
		n.StrategySum[i] += p
	}
}

const epsilon = 1e-9

func normalize(weights []float64, total float64) []float64 {
	if total < epsilon {
		for i := range weights {
			weights[i] = 1 / float64(len(weights))
		}
		return weights
	}
	for i := range weights {
		weights[i] /= total
	}
	return weights
}
