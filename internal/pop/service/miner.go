package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/popminer/internal/clock"
	"github.com/goodnatureofminers/popminer/internal/pop/model"
	"github.com/goodnatureofminers/popminer/internal/pop/registry"
	"github.com/goodnatureofminers/popminer/pkg/workerpool"
)

// DefaultResumeWorkers bounds the concurrent chain loads during Resume.
const DefaultResumeWorkers = 4

// ErrNotStarted is returned when mining is requested before Start.
var ErrNotStarted = errors.New("miner not started")

// PipelineRunner runs one operation to completion.
type PipelineRunner interface {
	Run(ctx context.Context, op *model.MiningOperation)
}

// MinerService creates mining operations and runs each on its own goroutine.
type MinerService struct {
	pipelines *registry.Registry[PipelineRunner]
	store     OperationRepository
	clock     clock.Clock
	newID     func() string
	logger    *zap.Logger

	mu      sync.Mutex
	ctx     context.Context
	running map[string]struct{}
	wg      sync.WaitGroup
}

// NewMinerService builds a MinerService over the registered pipelines.
func NewMinerService(
	pipelines *registry.Registry[PipelineRunner],
	store OperationRepository,
	logger *zap.Logger,
) (*MinerService, error) {
	if pipelines == nil {
		return nil, errors.New("pipeline registry is required")
	}
	if store == nil {
		return nil, errors.New("operation store is required")
	}
	return &MinerService{
		pipelines: pipelines,
		store:     store,
		clock:     clock.UTC,
		newID:     uuid.NewString,
		logger:    logger.Named("miner"),
		running:   make(map[string]struct{}),
	}, nil
}

// Start sets the context every pipeline runs under. Canceling it stops the
// pipelines without failing their operations.
func (m *MinerService) Start(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ctx = ctx
}

// Mine creates an operation endorsing height on chainKey and starts it.
// A zero height lets the altchain choose the block.
func (m *MinerService) Mine(ctx context.Context, chainKey string, height uint64) (*model.MiningOperation, error) {
	pipeline, err := m.pipelines.Get(chainKey)
	if err != nil {
		return nil, err
	}
	if !m.started() {
		return nil, ErrNotStarted
	}

	op := model.NewMiningOperation(m.newID(), chainKey, height, m.clock.Now())
	if err := m.store.SaveOperation(ctx, op.Clone()); err != nil {
		return nil, fmt.Errorf("save operation: %w", err)
	}
	snapshot := op.Clone()
	if err := m.start(pipeline, op); err != nil {
		return nil, err
	}
	m.logger.Info("mining operation created",
		zap.String("operation_id", op.ID),
		zap.String("chain", chainKey),
		zap.Uint64("height", height),
	)
	return &snapshot, nil
}

// Resume restarts every non-terminal operation of the registered chains. Each
// pipeline re-enters at its first unreached task.
func (m *MinerService) Resume(ctx context.Context) (int, error) {
	var (
		mu      sync.Mutex
		resumed int
	)
	err := workerpool.Each(ctx, DefaultResumeWorkers, m.pipelines.Keys(), func(ctx context.Context, key string) error {
		pipeline, err := m.pipelines.Get(key)
		if err != nil {
			return err
		}
		ops, err := m.store.ActiveOperations(ctx, key)
		if err != nil {
			return fmt.Errorf("load active operations of %s: %w", key, err)
		}
		for i := range ops {
			op := ops[i]
			if err := m.start(pipeline, &op); err != nil {
				return err
			}
			mu.Lock()
			resumed++
			mu.Unlock()
		}
		return nil
	})
	m.logger.Info("operations resumed", zap.Int("count", resumed))
	return resumed, err
}

func (m *MinerService) started() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ctx != nil
}

func (m *MinerService) start(pipeline PipelineRunner, op *model.MiningOperation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ctx == nil {
		return ErrNotStarted
	}
	if _, ok := m.running[op.ID]; ok {
		return nil
	}
	m.running[op.ID] = struct{}{}

	ctx := m.ctx
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		defer func() {
			m.mu.Lock()
			delete(m.running, op.ID)
			m.mu.Unlock()
		}()
		pipeline.Run(ctx, op)
	}()
	return nil
}

// Running returns the number of pipelines in flight.
func (m *MinerService) Running() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.running)
}

// Chains returns the keys of the chains that can be mined.
func (m *MinerService) Chains() []string {
	return m.pipelines.Keys()
}

// Operation returns the latest known state of id.
func (m *MinerService) Operation(ctx context.Context, id string) (*model.MiningOperation, error) {
	return m.store.Operation(ctx, id)
}

// Operations returns up to limit operations, newest first.
func (m *MinerService) Operations(ctx context.Context, limit int) ([]model.MiningOperation, error) {
	return m.store.Operations(ctx, limit)
}

// Summaries returns the display view of up to limit operations.
func (m *MinerService) Summaries(ctx context.Context, limit int) ([]model.OperationSummary, error) {
	ops, err := m.store.Operations(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]model.OperationSummary, len(ops))
	for i := range ops {
		out[i] = ops[i].Summary()
	}
	return out, nil
}

// Wait blocks until every running pipeline returned.
func (m *MinerService) Wait() {
	m.wg.Wait()
}
