// Package transport exposes the miner over HTTP and gRPC.
package transport

import (
	"context"

	"github.com/goodnatureofminers/popminer/internal/pop/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Miner is the operation side of the miner service.
	Miner interface {
		Mine(ctx context.Context, chainKey string, height uint64) (*model.MiningOperation, error)
		Operation(ctx context.Context, id string) (*model.MiningOperation, error)
		Summaries(ctx context.Context, limit int) ([]model.OperationSummary, error)
		Chains() []string
	}
	// EventReader reads back the operation log.
	EventReader interface {
		OperationEvents(ctx context.Context, operationID string) ([]model.OperationEvent, error)
	}
)
