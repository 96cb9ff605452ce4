package inventory

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/appengine-ltd/gilded-rose/internal/classify"
)

// Engine advances an inventory by one day per Tick. It owns nothing
// mutable itself: the registry is read-only after construction and
// items are supplied by the caller, so the same engine can be shared.
type Engine struct {
	registry *classify.Registry
	logger   *slog.Logger
}

type Option func(*Engine)

// WithRegistry swaps the built-in classifier table for a custom one.
func WithRegistry(r *classify.Registry) Option {
	return func(e *Engine) { e.registry = r }
}

// WithLogger enables a per-item debug record of each transition. The
// logging is layered over the policy at the call site; policies
// themselves stay effect-free.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

func New(opts ...Option) *Engine {
	e := &Engine{registry: classify.DefaultRegistry()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Tick advances every item by one day, in place and in input order.
// Items are causally independent; no item's update depends on another.
// A nil item or an empty name aborts with classify.ErrInvalidInput,
// leaving later items untouched.
func (e *Engine) Tick(items []*Item) error {
	for i, it := range items {
		if err := e.updateItem(i, it); err != nil {
			return err
		}
	}
	return nil
}

// TickParallel is Tick fanned out over at most workers goroutines.
// Each worker owns exactly one item for the duration of its update and
// the registry is read-only, so no locking is needed and the resulting
// mutations are identical to a serial Tick. On error the inventory may
// be partially updated, same as the serial path.
func (e *Engine) TickParallel(ctx context.Context, items []*Item, workers int) error {
	if workers < 1 {
		workers = 1
	}
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, it := range items {
		i, it := i, it
		g.Go(func() error {
			return e.updateItem(i, it)
		})
	}
	return g.Wait()
}

// Run advances the inventory by the given number of days.
func (e *Engine) Run(items []*Item, days int) error {
	for d := 0; d < days; d++ {
		if err := e.Tick(items); err != nil {
			return fmt.Errorf("day %d: %w", d+1, err)
		}
	}
	return nil
}

func (e *Engine) updateItem(idx int, it *Item) error {
	if it == nil {
		return fmt.Errorf("%w: item %d is nil", classify.ErrInvalidInput, idx)
	}
	category, err := e.registry.ResolveName(it.Name)
	if err != nil {
		return fmt.Errorf("item %d: %w", idx, err)
	}
	policy := PolicyFor(category)
	if e.logger != nil {
		policy = loggedPolicy(policy, e.logger, idx, category)
	}
	policy(it)
	return nil
}

// loggedPolicy wraps a policy: run the inner transition, then record
// it. Composed here rather than baked into the policies so the
// business rules stay pure.
func loggedPolicy(p UpdatePolicy, logger *slog.Logger, idx int, category classify.Category) UpdatePolicy {
	return func(it *Item) {
		before := *it
		p(it)
		logger.Debug("item updated",
			"index", idx,
			"name", it.Name,
			"category", category.String(),
			"sell_in", fmt.Sprintf("%d->%d", before.SellIn, it.SellIn),
			"quality", fmt.Sprintf("%d->%d", before.Quality, it.Quality),
		)
	}
}
