package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/popminer/internal/pop/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// Network is the security providing chain (VeriBlock) as seen by the miner.
type Network interface {
	SubmitEndorsement(ctx context.Context, payload []byte, feePerByte, maxFee int64) (*model.Transaction, error)
	Transaction(ctx context.Context, txID string) (*model.Transaction, error)
	Block(ctx context.Context, hash string) (*model.Block, error)
	// Publications blocks until the publications for the keystone are available.
	Publications(ctx context.Context, operationID, keystoneHash, contextHash, btcContextHash string) ([]model.Publication, error)
	// SubscribeBestBlocks streams new best blocks until release is called.
	SubscribeBestBlocks(ctx context.Context) (<-chan model.Block, func(), error)
	// SubscribeTransactionMeta streams meta state changes of txID, starting
	// with the current state, until release is called.
	SubscribeTransactionMeta(ctx context.Context, txID string) (<-chan model.MetaState, func(), error)
}

// SecurityInheritingChain is an altchain the miner endorses.
type SecurityInheritingChain interface {
	Key() string
	Name() string
	// MiningInstruction returns the instruction for height; 0 lets the chain pick its tip.
	MiningInstruction(ctx context.Context, height uint64) (*model.MiningInstruction, error)
	Submit(ctx context.Context, proof model.ProofOfProof, publications []model.Publication) (string, error)
	Transaction(ctx context.Context, txID string) (*model.AltTransaction, error)
	BlockAtHeight(ctx context.Context, height uint64) (*model.AltBlock, error)
	CheckBlockIsOnMainChain(ctx context.Context, height uint64, header []byte) (bool, error)
	PayoutInterval() uint64
	NeededConfirmations() int64
}

// SecurityInheritingMonitor waits for altchain entities to satisfy a condition.
type SecurityInheritingMonitor interface {
	Transaction(ctx context.Context, txID string, done func(model.AltTransaction) bool) (*model.AltTransaction, error)
	BlockAtHeight(ctx context.Context, height uint64, done func(model.AltBlock) bool) (*model.AltBlock, error)
}

// FeePolicy supplies the endorsement fee parameters.
type FeePolicy interface {
	FeePerByte() int64
	MaxFee() int64
}

// OperationRepository persists mining operations.
type OperationRepository interface {
	SaveOperation(ctx context.Context, op model.MiningOperation) error
	Operation(ctx context.Context, id string) (*model.MiningOperation, error)
	ActiveOperations(ctx context.Context, chainID string) ([]model.MiningOperation, error)
	Operations(ctx context.Context, limit int) ([]model.MiningOperation, error)
}

// EventLog receives the operator visible log of each operation.
type EventLog interface {
	Record(ctx context.Context, event model.OperationEvent)
}

// Metrics observes task runs and operation outcomes.
type Metrics interface {
	ObserveTask(chain, task string, err error, started time.Time)
	ObserveOperation(chain, state string, started time.Time)
}
