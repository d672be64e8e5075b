package wayfind

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// Run drives a search to conclusion by calling Step until Concluded
// reports true.
//
// A search that concludes Failed or CutOff is a successful run whose
// answer is "no target within reach": Run returns nil for every terminal
// status. Errors come only from the steps themselves (cancellation,
// enumeration failures) or from exceeding the expansion limit; in every
// error case the search is left resumable and Run may be called again.
//
// Example:
//
//	search, err := wayfind.NewBreadthFirst(g, start, wayfind.GoalNode(goal))
//	if err != nil {
//	    return err
//	}
//	if err := wayfind.Run(ctx, search); err != nil {
//	    return err
//	}
//	if search.Succeeded() {
//	    path := search.PathToTarget()
//	    // ...
//	}
func Run[N comparable, E comparable](ctx context.Context, s Search[N, E], opts ...RunOption) (runErr error) {
	if ctx == nil {
		return ErrNilContext
	}

	cfg := defaultRunConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	stepCtx := ctx
	if cfg.tracingEnabled {
		var span trace.Span
		stepCtx, span = cfg.spans.StartSearchSpan(ctx, s.Algorithm(), s.ID())
		defer func() {
			cfg.spans.EndSpanWithError(span, runErr)
		}()
	}

	steps := 0
	for !s.Concluded() {
		if steps >= cfg.maxExpansions {
			return &MaxExpansionsError{Max: cfg.maxExpansions, Steps: steps}
		}
		if _, err := s.Step(stepCtx); err != nil {
			return err
		}
		steps++
	}
	return nil
}
