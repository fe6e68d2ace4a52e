// Package provider contains concurrency helpers for running operations across
// multiple connectors.
//
// Callers frequently need to fan the same RPC call out across every
// configured endpoint, collect per-endpoint results, and continue even if
// some endpoints fail. This package centralizes that pattern: each
// connector is dialed and used strictly sequentially inside its own
// goroutine, which matches Connector's no-internal-locking contract.
package provider

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/dmagro/ethrpc/internal/config"
)

// Result wraps a per-endpoint response with metadata.
type Result[T any] struct {
	EndpointName string
	Index        int
	Value        T
	Err          error
}

// ExecuteAll runs fn concurrently for each endpoint and collects results.
// Results are returned in endpoint order (by index), not completion order.
//
// This helper does not fail-fast: it always attempts every endpoint and
// records per-endpoint errors in the corresponding Result. Context
// cancellation still short-circuits work inside fn via gctx.
func ExecuteAll[T any](
	ctx context.Context,
	endpoints []config.Endpoint,
	fn func(ctx context.Context, e config.Endpoint) (T, error),
) []Result[T] {
	results := make([]Result[T], len(endpoints))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for i, e := range endpoints {
		i, e := i, e // capture loop vars
		g.Go(func() error {
			val, err := fn(gctx, e)
			mu.Lock()
			results[i] = Result[T]{
				EndpointName: e.Name,
				Index:        i,
				Value:        val,
				Err:          err,
			}
			mu.Unlock()
			return nil // don't fail-fast; collect all results
		})
	}

	_ = g.Wait()
	return results
}
