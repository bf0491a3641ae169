package monitor

import (
	"context"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/popminer/internal/pop/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// Chain is the read side of the security inheriting chain.
type Chain interface {
	Transaction(ctx context.Context, txID string) (*model.AltTransaction, error)
	BlockAtHeight(ctx context.Context, height uint64) (*model.AltBlock, error)
}

// Monitor waits on altchain transactions and blocks.
type Monitor struct {
	chain  Chain
	waiter *Waiter
	logger *zap.Logger
}

// NewMonitor builds a Monitor over chain.
func NewMonitor(chain Chain, waiter *Waiter, logger *zap.Logger) *Monitor {
	return &Monitor{chain: chain, waiter: waiter, logger: logger}
}

// Transaction polls the transaction until done holds.
func (m *Monitor) Transaction(ctx context.Context, txID string, done func(model.AltTransaction) bool) (*model.AltTransaction, error) {
	m.logger.Debug("waiting for transaction", zap.String("txid", txID))
	return Wait(ctx, m.waiter, func(ctx context.Context) (*model.AltTransaction, error) {
		return m.chain.Transaction(ctx, txID)
	}, done)
}

// BlockAtHeight polls the main chain block at height until done holds.
func (m *Monitor) BlockAtHeight(ctx context.Context, height uint64, done func(model.AltBlock) bool) (*model.AltBlock, error) {
	m.logger.Debug("waiting for block", zap.Uint64("height", height))
	return Wait(ctx, m.waiter, func(ctx context.Context) (*model.AltBlock, error) {
		return m.chain.BlockAtHeight(ctx, height)
	}, done)
}
