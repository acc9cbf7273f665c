package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"pick-time-service/internal/domain"
	"pick-time-service/internal/platform/obs"
	"pick-time-service/internal/services"
)

// SqliteEstimateWriter persists estimates: per-line minutes on the order
// lines, the invoice total, and an audit run snapshotting the cost model.
// Everything is written in one transaction so a failed run leaves no partial
// estimate behind.
type SqliteEstimateWriter struct{ DB *sql.DB }

func NewSqliteEstimateWriter(db *sql.DB) *SqliteEstimateWriter {
	return &SqliteEstimateWriter{DB: db}
}

func (s *SqliteEstimateWriter) WriteEstimate(
	ctx context.Context,
	est *domain.Estimate,
	params *domain.Params,
	revision int,
	reason string,
) (_ int64, err error) {
	defer obs.Time(ctx, "estimate.write")(&err)

	if s.DB == nil {
		return 0, errors.New("estimate writer: DB is nil")
	}
	if est == nil {
		return 0, errors.New("estimate writer: estimate must be non-nil")
	}

	snapshot, err := json.Marshal(params)
	if err != nil {
		return 0, fmt.Errorf("write estimate: marshal params snapshot: %w", err)
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("write estimate: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`UPDATE invoices SET total_exp_minutes = ? WHERE invoice_no = ?;`,
		est.TotalMinutes, est.InvoiceNo,
	)
	if err != nil {
		return 0, fmt.Errorf("write estimate: update invoice total: %w", err)
	}

	lineStmt, err := tx.PrepareContext(ctx,
		`UPDATE invoice_lines SET exp_minutes = ? WHERE line_id = ?;`,
	)
	if err != nil {
		return 0, fmt.Errorf("write estimate: prepare line update: %w", err)
	}
	defer lineStmt.Close()

	for _, line := range est.Lines {
		if line.LineID == 0 {
			continue
		}
		if _, err := lineStmt.ExecContext(ctx, line.Minutes(), line.LineID); err != nil {
			return 0, fmt.Errorf("write estimate: update line %d: %w", line.LineID, err)
		}
	}

	res, err := tx.ExecContext(ctx, `
	INSERT INTO estimate_runs (
		invoice_no,
		estimator_version,
		params_revision,
		params_snapshot,
		total_seconds,
		travel_seconds,
		pick_seconds,
		pack_seconds,
		summer_mode,
		reason
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`,
		est.InvoiceNo,
		services.EstimatorVersion,
		revision,
		string(snapshot),
		est.TotalSeconds,
		est.TravelSeconds,
		est.PickSeconds,
		est.PackSeconds,
		est.SummerMode,
		reason,
	)
	if err != nil {
		return 0, fmt.Errorf("write estimate: insert run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("write estimate: run id: %w", err)
	}

	auditStmt, err := tx.PrepareContext(ctx, `
	INSERT INTO estimate_lines (
		run_id,
		invoice_no,
		line_id,
		item_code,
		location,
		unit_type,
		qty,
		pick_seconds,
		walk_seconds,
		total_seconds
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return 0, fmt.Errorf("write estimate: prepare audit line insert: %w", err)
	}
	defer auditStmt.Close()

	for _, line := range est.Lines {
		_, err := auditStmt.ExecContext(ctx,
			runID,
			est.InvoiceNo,
			line.LineID,
			line.ItemCode,
			line.Location,
			line.UnitType,
			line.Qty,
			line.PickSeconds,
			line.WalkSeconds,
			line.TotalSeconds(),
		)
		if err != nil {
			return 0, fmt.Errorf("write estimate: insert audit line for %q: %w", line.ItemCode, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("write estimate: commit tx: %w", err)
	}

	return runID, nil
}
