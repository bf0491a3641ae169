package task

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/popminer/internal/pop/model"
)

// Work is the body of a task. It must install the task's target state on success.
type Work func(ctx context.Context) error

// Executor runs tasks against a mining operation.
type Executor struct {
	logger  *zap.Logger
	store   Store
	metrics Metrics
	journal Journal
	unit    time.Duration
	timer   backoff.Timer
}

// Option customises an Executor.
type Option func(*Executor)

// WithBackoffUnit replaces BackoffUnit as the base of the retry wait.
func WithBackoffUnit(unit time.Duration) Option {
	return func(e *Executor) { e.unit = unit }
}

// WithTimer replaces the timer used between attempts.
func WithTimer(timer backoff.Timer) Option {
	return func(e *Executor) { e.timer = timer }
}

// NewExecutor builds an Executor. journal may be nil.
func NewExecutor(store Store, metrics Metrics, journal Journal, logger *zap.Logger, opts ...Option) (*Executor, error) {
	if store == nil {
		return nil, errors.New("task store is required")
	}
	if metrics == nil {
		return nil, errors.New("task metrics is required")
	}
	e := &Executor{
		logger:  logger.Named("executor"),
		store:   store,
		metrics: metrics,
		journal: journal,
		unit:    BackoffUnit,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Run executes work unless op already reached target. Retryable failures are
// attempted again up to MaxAttempts times with a quadratic backoff; anything
// else is returned immediately. The operation is saved once target is reached.
func (e *Executor) Run(ctx context.Context, op *model.MiningOperation, name string, target model.StateType, work Work) (err error) {
	if op.State.HasReached(target) {
		return nil
	}

	started := time.Now()
	logger := e.logger.With(
		zap.String("operation_id", op.ID),
		zap.String("chain", op.ChainID),
		zap.String("task", name),
	)
	defer func() {
		e.metrics.ObserveTask(op.ChainID, name, err, started)
	}()

	logger.Info("task started")
	e.record(ctx, op, model.EventInfo, fmt.Sprintf("Task '%s' started", name))

	attempt := 1
	operation := func() error {
		if opErr := e.attempt(ctx, op, target, work); opErr != nil {
			if !IsRetryable(opErr) {
				return backoff.Permanent(opErr)
			}
			logger.Warn("task attempt failed", zap.Int("attempt", attempt), zap.Error(opErr))
			e.record(ctx, op, model.EventWarn, fmt.Sprintf("Task '%s' has failed: %s", name, opErr))
			return opErr
		}
		return nil
	}
	notify := func(_ error, wait time.Duration) {
		attempt++
		logger.Info("will try again", zap.Int("next_attempt", attempt), zap.Duration("wait", wait))
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(newQuadraticBackOff(e.unit), MaxAttempts-1), ctx)
	err = backoff.RetryNotifyWithTimer(operation, policy, notify, e.timer)
	if err == nil {
		logger.Info("task completed", zap.Int("attempts", attempt))
		e.record(ctx, op, model.EventInfo, fmt.Sprintf("Task '%s' completed", name))
		return nil
	}

	if IsRetryable(err) {
		logger.Warn("maximum attempts exceeded", zap.Int("attempts", attempt))
		err = Fatal(fmt.Errorf("task '%s': %w: %w", name, ErrMaxAttemptsExceeded, err))
	}
	logger.Error("task failed", zap.Error(err))
	return err
}

// attempt runs work when the target is not reached yet and persists the result.
// A failed save leaves the state advanced so the retry only saves again.
func (e *Executor) attempt(ctx context.Context, op *model.MiningOperation, target model.StateType, work Work) error {
	if !op.State.HasReached(target) {
		if err := work(ctx); err != nil {
			return err
		}
		if op.State.Type != target {
			return Fatalf("task finished in state %s instead of %s", op.State.Type, target)
		}
	}
	if err := e.store.SaveOperation(ctx, op.Clone()); err != nil {
		return Retry(fmt.Errorf("save operation: %w", err))
	}
	return nil
}

func (e *Executor) record(ctx context.Context, op *model.MiningOperation, level model.EventLevel, msg string) {
	if e.journal == nil {
		return
	}
	e.journal.Record(ctx, model.OperationEvent{
		OperationID: op.ID,
		ChainID:     op.ChainID,
		Time:        time.Now().UTC(),
		Level:       level,
		Message:     msg,
	})
}
