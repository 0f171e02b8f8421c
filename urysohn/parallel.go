package urysohn

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// EvaluateAll — concurrent batch evaluation of the limit function.
//
// Description:
//
//	Evaluates Limit(p, tol) for every point and returns the values in
//	input order. Point evaluations are independent pure computations,
//	so they fan out over an errgroup worker pool bounded by
//	Options.Workers (GOMAXPROCS when ≤ 0). Nodes are shared across
//	workers: children are memoized behind sync.Once, so the oracle is
//	still called at most once per distinct node.
//
// Cancellation is checked between point evaluations, not inside the
// recursion — each single evaluation is bounded by the tolerance, so
// there is nothing long-running to interrupt.
//
// Errors: ErrNilNode, ErrBadTolerance, context cancellation errors,
// and ErrOracleContract under Options.ValidateContracts.
func EvaluateAll[P any](ctx context.Context, n *Node[P], points []P, tol float64) ([]float64, error) {
	if n == nil {
		return nil, ErrNilNode
	}
	// fail fast on a bad tolerance before spawning any workers
	if _, err := DepthFor(tol); err != nil {
		return nil, err
	}

	workers := n.opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	out := make([]float64, len(points))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, p := range points {
		i, p := i, p
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			v, err := n.Limit(p, tol)
			if err != nil {
				return err
			}
			out[i] = v

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
