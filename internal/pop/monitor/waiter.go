// Package monitor polls the security inheriting chain until blocks and transactions
// reach a wanted condition, failing fast when they drop out of the main chain.
package monitor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/popminer/internal/clock"
	"github.com/goodnatureofminers/popminer/internal/pop/model"
)

// DefaultPollInterval is the wait between two polls.
const DefaultPollInterval = 10 * time.Second

// ErrPollsExhausted is returned when MaxPolls polls did not satisfy the condition.
var ErrPollsExhausted = errors.New("poll limit reached")

// ReorgError reports an entity observed with negative confirmations.
// Exactly one of Block and Transaction is set.
type ReorgError struct {
	Block       *model.AltBlock
	Transaction *model.AltTransaction
}

func (e *ReorgError) Error() string {
	if e.Block != nil {
		return fmt.Sprintf("there was a reorg leaving block %s out of the main chain", e.Block.Hash)
	}
	if e.Transaction != nil {
		return fmt.Sprintf("there was a reorg leaving transaction %s out of the main chain", e.Transaction.TxID)
	}
	return "there was a reorg"
}

type entity interface {
	model.AltBlock | model.AltTransaction
}

// Waiter polls a fetch function at a fixed interval.
type Waiter struct {
	logger   *zap.Logger
	interval time.Duration
	maxPolls int
	sleep    func(context.Context, time.Duration) error
}

// NewWaiter builds a Waiter. maxPolls of 0 polls until the context ends.
func NewWaiter(interval time.Duration, maxPolls int, logger *zap.Logger) *Waiter {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Waiter{
		logger:   logger,
		interval: interval,
		maxPolls: maxPolls,
		sleep:    clock.SleepWithContext,
	}
}

// Wait polls fetch until done holds for the fetched entity. A negative
// confirmation count ends the wait with a *ReorgError whatever was seen before.
// Fetch errors and missing entities are logged and polled again.
func Wait[T entity](ctx context.Context, w *Waiter, fetch func(context.Context) (*T, error), done func(T) bool) (*T, error) {
	for poll := 1; ; poll++ {
		v, err := fetch(ctx)
		switch {
		case err != nil:
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			w.logger.Warn("poll failed", zap.Int("poll", poll), zap.Error(err))
		case v == nil:
			w.logger.Debug("entity not available yet", zap.Int("poll", poll))
		default:
			if reorg := checkReorg(*v); reorg != nil {
				return nil, reorg
			}
			if done(*v) {
				return v, nil
			}
		}

		if w.maxPolls > 0 && poll >= w.maxPolls {
			return nil, fmt.Errorf("%w: %d polls", ErrPollsExhausted, poll)
		}
		if err := w.sleep(ctx, w.interval); err != nil {
			return nil, err
		}
	}
}

func checkReorg[T entity](v T) *ReorgError {
	switch e := any(v).(type) {
	case model.AltBlock:
		if e.Confirmations < 0 {
			return &ReorgError{Block: &e}
		}
	case model.AltTransaction:
		if e.Confirmations < 0 {
			return &ReorgError{Transaction: &e}
		}
	}
	return nil
}
