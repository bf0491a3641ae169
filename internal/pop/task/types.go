package task

import (
	"context"
	"time"

	"github.com/goodnatureofminers/popminer/internal/pop/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Store persists an operation after each completed task.
	Store interface {
		SaveOperation(ctx context.Context, op model.MiningOperation) error
	}
	// Metrics records task outcomes.
	Metrics interface {
		ObserveTask(chain, task string, err error, started time.Time)
	}
	// Journal keeps the per-operation log shown to the operator.
	Journal interface {
		Record(ctx context.Context, event model.OperationEvent)
	}
)
