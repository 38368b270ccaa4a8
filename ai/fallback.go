package ai

import (
	"context"
	"errors"
	"time"
)

// tryEach runs fn against each candidate in order, giving every attempt its
// own timeout. The first success wins; if all attempts fail the last error is
// returned. Both the decision generator and the chat function route their
// model-fallback lists through this.
func tryEach[T any](ctx context.Context, candidates []string, timeout time.Duration, fn func(context.Context, string) (T, error)) (T, error) {
	var zero T
	if len(candidates) == 0 {
		return zero, errors.New("no candidates to try")
	}

	var lastErr error
	for _, candidate := range candidates {
		attemptCtx, cancel := context.WithTimeout(ctx, timeout)
		result, err := fn(attemptCtx, candidate)
		cancel()
		if err == nil {
			return result, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}
	return zero, lastErr
}
