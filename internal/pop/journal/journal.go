// Package journal writes the per-operation event log in batches.
package journal

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/popminer/internal/pop/model"
	"github.com/goodnatureofminers/popminer/pkg/batcher"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Writer stores a batch of events.
	Writer interface {
		InsertOperationEvents(ctx context.Context, events []model.OperationEvent) error
	}
)

// Journal queues events and flushes them to a Writer in the background.
// Record never blocks a pipeline: events that do not fit the queue are dropped.
type Journal struct {
	batcher *batcher.Batcher[model.OperationEvent]
	logger  *zap.Logger
}

// New builds a Journal batching events into writer.
func New(writer Writer, logger *zap.Logger, cfg batcher.Config) (*Journal, error) {
	if writer == nil {
		return nil, errors.New("journal writer is required")
	}
	logger = logger.Named("journal")
	return &Journal{
		batcher: batcher.New(logger, writer.InsertOperationEvents, cfg),
		logger:  logger,
	}, nil
}

// Start runs the flush loop until ctx is done or Stop is called.
func (j *Journal) Start(ctx context.Context) {
	j.batcher.Start(ctx)
}

// Stop flushes queued events and waits for the flush loop.
func (j *Journal) Stop() {
	j.batcher.Stop()
}

// Record queues event without blocking. Events are dropped when the queue is full.
func (j *Journal) Record(_ context.Context, event model.OperationEvent) {
	if err := j.batcher.TryAdd(event); err != nil {
		j.logger.Warn("operation event dropped",
			zap.String("operation_id", event.OperationID),
			zap.String("chain", event.ChainID),
			zap.String("message", event.Message),
			zap.Error(err),
		)
	}
}
