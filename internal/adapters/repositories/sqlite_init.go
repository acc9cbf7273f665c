package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// InitSchema creates the SQLite schema: settings, invoices, order lines,
// item master, and the estimate audit tables.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createSettings := `
	CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`

	createInvoices := `
	CREATE TABLE IF NOT EXISTS invoices (
		invoice_no TEXT PRIMARY KEY,
		customer TEXT,
		total_exp_minutes REAL
	);
	`

	createInvoiceLines := `
	CREATE TABLE IF NOT EXISTS invoice_lines (
		line_id INTEGER PRIMARY KEY AUTOINCREMENT,
		invoice_no TEXT NOT NULL,
		item_code TEXT NOT NULL,
		qty INTEGER NOT NULL,
		unit_type TEXT,
		location TEXT,
		zone TEXT,
		corridor TEXT,
		exp_minutes REAL
	);
	`

	createItemMaster := `
	CREATE TABLE IF NOT EXISTS item_master (
		item_code TEXT PRIMARY KEY,
		unit_type TEXT,
		pick_difficulty TEXT,
		fragility TEXT,
		spill_risk TEXT,
		pressure_sensitivity TEXT,
		temperature_sensitivity TEXT,
		pieces_per_unit INTEGER NOT NULL DEFAULT 0,
		active INTEGER NOT NULL DEFAULT 1
	);
	`

	createEstimateRuns := `
	CREATE TABLE IF NOT EXISTS estimate_runs (
		run_id INTEGER PRIMARY KEY AUTOINCREMENT,
		invoice_no TEXT NOT NULL,
		estimator_version TEXT NOT NULL,
		params_revision INTEGER NOT NULL,
		params_snapshot TEXT NOT NULL,
		total_seconds REAL NOT NULL,
		travel_seconds REAL NOT NULL,
		pick_seconds REAL NOT NULL,
		pack_seconds REAL NOT NULL,
		summer_mode INTEGER NOT NULL,
		reason TEXT,
		created_at TEXT NOT NULL DEFAULT (datetime('now'))
	);
	`

	createEstimateLines := `
	CREATE TABLE IF NOT EXISTS estimate_lines (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id INTEGER NOT NULL,
		invoice_no TEXT NOT NULL,
		line_id INTEGER,
		item_code TEXT,
		location TEXT,
		unit_type TEXT,
		qty INTEGER,
		pick_seconds REAL NOT NULL,
		walk_seconds REAL NOT NULL,
		total_seconds REAL NOT NULL
	);
	`

	createLineIndex := `
	CREATE INDEX IF NOT EXISTS idx_invoice_lines_invoice_no
	ON invoice_lines(invoice_no);
	`

	createRunIndex := `
	CREATE INDEX IF NOT EXISTS idx_estimate_runs_invoice_no
	ON estimate_runs(invoice_no);
	`

	statements := []string{
		createSettings,
		createInvoices,
		createInvoiceLines,
		createItemMaster,
		createEstimateRuns,
		createEstimateLines,
		createLineIndex,
		createRunIndex,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
