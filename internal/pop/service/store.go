package service

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/goodnatureofminers/popminer/internal/pop/model"
)

// OperationStore persists operations through the repository and keeps the last
// saved snapshot of every running operation, so readers never touch an operation
// a pipeline is mutating. Terminal operations are read from the repository.
type OperationStore struct {
	repo OperationRepository

	mu        sync.RWMutex
	snapshots map[string]model.MiningOperation
}

// NewOperationStore wraps repo.
func NewOperationStore(repo OperationRepository) (*OperationStore, error) {
	if repo == nil {
		return nil, errors.New("operation repository is required")
	}
	return &OperationStore{repo: repo, snapshots: make(map[string]model.MiningOperation)}, nil
}

// SaveOperation writes op to the repository and records it as the latest
// snapshot, or drops the snapshot once op is terminal.
func (s *OperationStore) SaveOperation(ctx context.Context, op model.MiningOperation) error {
	if err := s.repo.SaveOperation(ctx, op); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if op.State.IsTerminal() {
		delete(s.snapshots, op.ID)
		return nil
	}
	s.snapshots[op.ID] = op
	return nil
}

// Snapshots returns the number of operations held in memory.
func (s *OperationStore) Snapshots() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.snapshots)
}

// Operation returns the latest snapshot of id, falling back to the repository.
func (s *OperationStore) Operation(ctx context.Context, id string) (*model.MiningOperation, error) {
	s.mu.RLock()
	op, ok := s.snapshots[id]
	s.mu.RUnlock()
	if ok {
		return &op, nil
	}
	return s.repo.Operation(ctx, id)
}

// ActiveOperations loads the non-terminal operations of chainID from the repository.
func (s *OperationStore) ActiveOperations(ctx context.Context, chainID string) ([]model.MiningOperation, error) {
	return s.repo.ActiveOperations(ctx, chainID)
}

// Operations returns up to limit operations, newest first, preferring snapshots
// over repository rows.
func (s *OperationStore) Operations(ctx context.Context, limit int) ([]model.MiningOperation, error) {
	ops, err := s.repo.Operations(ctx, limit)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	seen := make(map[string]struct{}, len(ops))
	for i := range ops {
		seen[ops[i].ID] = struct{}{}
		if snap, ok := s.snapshots[ops[i].ID]; ok {
			ops[i] = snap
		}
	}
	for id, snap := range s.snapshots {
		if _, ok := seen[id]; !ok {
			ops = append(ops, snap)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(ops, func(i, j int) bool {
		return ops[i].CreatedAt.After(ops[j].CreatedAt)
	})
	if limit > 0 && len(ops) > limit {
		ops = ops[:limit]
	}
	return ops, nil
}
