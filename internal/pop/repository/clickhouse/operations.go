package clickhouse

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"github.com/goodnatureofminers/popminer/internal/pop/model"
)

// Rows are versioned by (updated_at, state_rank) so the furthest state wins
// when two saves share a timestamp.
const selectOperations = `
SELECT
	id,
	argMax(chain_id, (updated_at, state_rank)) AS last_chain_id,
	argMax(block_height, (updated_at, state_rank)) AS last_block_height,
	argMax(state_json, (updated_at, state_rank)) AS last_state_json,
	min(created_at) AS first_created_at,
	max(updated_at) AS last_updated_at
FROM pop_operations`

// SaveOperation appends a new version of op.
func (r *Repository) SaveOperation(ctx context.Context, op model.MiningOperation) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("save_operation", op.ChainID, err, start)
	}()

	stateJSON, err := encodeState(op.State)
	if err != nil {
		return err
	}

	const query = `
INSERT INTO pop_operations (
	id,
	chain_id,
	block_height,
	state,
	state_rank,
	state_json,
	failure_reason,
	created_at,
	updated_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare operation batch: %w", err)
	}
	if err = batch.Append(
		op.ID,
		op.ChainID,
		op.BlockHeight,
		op.State.Type.String(),
		uint8(op.State.Type),
		stateJSON,
		op.State.FailureReason,
		op.CreatedAt,
		op.UpdatedAt,
	); err != nil {
		return fmt.Errorf("append operation: %w", err)
	}
	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert operation: %w", err)
	}
	return nil
}

// Operation returns the latest version of id, or nil when it is unknown.
func (r *Repository) Operation(ctx context.Context, id string) (op *model.MiningOperation, err error) {
	start := time.Now()
	defer func() {
		chain := ""
		if op != nil {
			chain = op.ChainID
		}
		r.metrics.Observe("operation", chain, err, start)
	}()

	ops, err := r.queryOperations(ctx, selectOperations+`
WHERE id = ?
GROUP BY id`, id)
	if err != nil {
		return nil, err
	}
	if len(ops) == 0 {
		return nil, nil
	}
	return &ops[0], nil
}

// ActiveOperations returns the operations of chainID that are neither complete
// nor failed, oldest first.
func (r *Repository) ActiveOperations(ctx context.Context, chainID string) (ops []model.MiningOperation, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("active_operations", chainID, err, start)
	}()

	return r.queryOperations(ctx, selectOperations+`
WHERE chain_id = ?
GROUP BY id
HAVING argMax(state, (updated_at, state_rank)) NOT IN (?, ?)
ORDER BY first_created_at ASC`, chainID, model.StateComplete.String(), model.StateFailed.String())
}

// Operations returns up to limit operations, newest first.
func (r *Repository) Operations(ctx context.Context, limit int) (ops []model.MiningOperation, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("operations", "", err, start)
	}()

	if limit <= 0 {
		limit = DefaultListLimit
	}
	return r.queryOperations(ctx, selectOperations+`
GROUP BY id
ORDER BY first_created_at DESC
LIMIT ?`, limit)
}

func (r *Repository) queryOperations(ctx context.Context, query string, args ...any) (ops []model.MiningOperation, err error) {
	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query operations: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	for rows.Next() {
		op, err := scanOperation(rows)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate operations: %w", err)
	}
	return ops, nil
}

func scanOperation(rows driver.Rows) (model.MiningOperation, error) {
	var (
		op        model.MiningOperation
		stateJSON string
	)
	if err := rows.Scan(&op.ID, &op.ChainID, &op.BlockHeight, &stateJSON, &op.CreatedAt, &op.UpdatedAt); err != nil {
		return model.MiningOperation{}, fmt.Errorf("scan operation: %w", err)
	}
	state, err := decodeState(stateJSON)
	if err != nil {
		return model.MiningOperation{}, fmt.Errorf("operation %s: %w", op.ID, err)
	}
	op.State = state
	op.CreatedAt = op.CreatedAt.UTC()
	op.UpdatedAt = op.UpdatedAt.UTC()
	return op, nil
}

func encodeState(state model.State) (string, error) {
	b, err := json.Marshal(state)
	if err != nil {
		return "", fmt.Errorf("encode operation state: %w", err)
	}
	return string(b), nil
}

func decodeState(s string) (model.State, error) {
	var state model.State
	if err := json.Unmarshal([]byte(s), &state); err != nil {
		return model.State{}, fmt.Errorf("decode operation state: %w", err)
	}
	return state, nil
}
