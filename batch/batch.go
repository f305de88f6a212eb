// SPDX-License-Identifier: MIT
// Package: geco/batch

// Package batch generates many instances in parallel, one per seed.
//
// Each call of the generation function owns its seed and builds its own
// sampler, so results are identical to a sequential loop regardless of the
// worker count or scheduling order.
package batch

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/geco"
)

const methodRun = "Run"

// Func generates one result for seed. It should honor ctx when it blocks.
type Func[T any] func(ctx context.Context, seed int64) (T, error)

// Option configures Run.
type Option func(*config)

type config struct {
	workers int
	logger  *zap.Logger
}

// WithWorkers bounds the number of concurrent calls (default GOMAXPROCS).
func WithWorkers(n int) Option { return func(c *config) { c.workers = n } }

// WithLogger sets the logger receiving per-seed debug records
// (default zap.NewNop).
func WithLogger(l *zap.Logger) Option { return func(c *config) { c.logger = l } }

// Run calls fn once per seed and returns the results in seed order. The
// first error cancels the context passed to calls that have not finished
// and is returned wrapped with its seed.
//
// Errors: nil fn or workers < 1 → geco.ErrInvalidParameter; ctx.Err() when
// ctx ends before all seeds are done.
func Run[T any](ctx context.Context, seeds []int64, fn Func[T], opts ...Option) ([]T, error) {
	cfg := config{workers: runtime.GOMAXPROCS(0), logger: zap.NewNop()}
	for _, o := range opts {
		o(&cfg)
	}
	if fn == nil {
		return nil, fmt.Errorf("%s: nil func: %w", methodRun, geco.ErrInvalidParameter)
	}
	if cfg.workers < 1 {
		return nil, fmt.Errorf("%s: %d workers: %w", methodRun, cfg.workers, geco.ErrInvalidParameter)
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}

	out := make([]T, len(seeds))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	start := time.Now()
	for i, seed := range seeds {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			began := time.Now()
			v, err := fn(gctx, seed)
			if err != nil {
				cfg.logger.Debug("generation failed", zap.Int("index", i), zap.Int64("seed", seed), zap.Error(err))
				return fmt.Errorf("%s: seed %d: %w", methodRun, seed, err)
			}
			out[i] = v
			cfg.logger.Debug("generated",
				zap.Int("index", i),
				zap.Int64("seed", seed),
				zap.Duration("elapsed", time.Since(began)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg.logger.Info("batch done",
		zap.Int("seeds", len(seeds)),
		zap.Int("workers", cfg.workers),
		zap.Duration("elapsed", time.Since(start)))
	return out, nil
}
