package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/popminer/internal/pop/model"
)

// InsertOperationEvents stores event log entries.
func (r *Repository) InsertOperationEvents(ctx context.Context, events []model.OperationEvent) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_operation_events", firstChain(events), err, start)
	}()

	if len(events) == 0 {
		return nil
	}

	const query = `
INSERT INTO pop_operation_events (
	operation_id,
	chain_id,
	time,
	level,
	message
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare events batch: %w", err)
	}
	for _, ev := range events {
		if err = batch.Append(
			ev.OperationID,
			ev.ChainID,
			ev.Time,
			string(ev.Level),
			ev.Message,
		); err != nil {
			return fmt.Errorf("append event: %w", err)
		}
	}
	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert events: %w", err)
	}
	return nil
}

// OperationEvents returns the log of operationID in chronological order.
func (r *Repository) OperationEvents(ctx context.Context, operationID string) (events []model.OperationEvent, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("operation_events", firstChain(events), err, start)
	}()

	const query = `
SELECT
	operation_id,
	chain_id,
	time,
	level,
	message
FROM pop_operation_events
WHERE operation_id = ?
ORDER BY time ASC`

	rows, err := r.conn.Query(ctx, query, operationID)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	for rows.Next() {
		var (
			ev    model.OperationEvent
			level string
		)
		if err = rows.Scan(&ev.OperationID, &ev.ChainID, &ev.Time, &level, &ev.Message); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		ev.Level = model.EventLevel(level)
		ev.Time = ev.Time.UTC()
		events = append(events, ev)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}

func firstChain(events []model.OperationEvent) string {
	if len(events) == 0 {
		return ""
	}
	return events[0].ChainID
}
