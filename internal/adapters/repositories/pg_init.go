package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// InitSchemaPostgres creates the same schema as InitSchema in the Postgres
// dialect, for shared deployments provisioned through cmd/dbtool.
func InitSchemaPostgres(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	statements := []string{
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS invoices (
			invoice_no TEXT PRIMARY KEY,
			customer TEXT,
			total_exp_minutes DOUBLE PRECISION
		);`,
		`CREATE TABLE IF NOT EXISTS invoice_lines (
			line_id BIGSERIAL PRIMARY KEY,
			invoice_no TEXT NOT NULL,
			item_code TEXT NOT NULL,
			qty INTEGER NOT NULL,
			unit_type TEXT,
			location TEXT,
			zone TEXT,
			corridor TEXT,
			exp_minutes DOUBLE PRECISION
		);`,
		`CREATE TABLE IF NOT EXISTS item_master (
			item_code TEXT PRIMARY KEY,
			unit_type TEXT,
			pick_difficulty TEXT,
			fragility TEXT,
			spill_risk TEXT,
			pressure_sensitivity TEXT,
			temperature_sensitivity TEXT,
			pieces_per_unit INTEGER NOT NULL DEFAULT 0,
			active BOOLEAN NOT NULL DEFAULT TRUE
		);`,
		`CREATE TABLE IF NOT EXISTS estimate_runs (
			run_id BIGSERIAL PRIMARY KEY,
			invoice_no TEXT NOT NULL,
			estimator_version TEXT NOT NULL,
			params_revision INTEGER NOT NULL,
			params_snapshot TEXT NOT NULL,
			total_seconds DOUBLE PRECISION NOT NULL,
			travel_seconds DOUBLE PRECISION NOT NULL,
			pick_seconds DOUBLE PRECISION NOT NULL,
			pack_seconds DOUBLE PRECISION NOT NULL,
			summer_mode BOOLEAN NOT NULL,
			reason TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);`,
		`CREATE TABLE IF NOT EXISTS estimate_lines (
			id BIGSERIAL PRIMARY KEY,
			run_id BIGINT NOT NULL,
			invoice_no TEXT NOT NULL,
			line_id BIGINT,
			item_code TEXT,
			location TEXT,
			unit_type TEXT,
			qty INTEGER,
			pick_seconds DOUBLE PRECISION NOT NULL,
			walk_seconds DOUBLE PRECISION NOT NULL,
			total_seconds DOUBLE PRECISION NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_invoice_lines_invoice_no
			ON invoice_lines(invoice_no);`,
		`CREATE INDEX IF NOT EXISTS idx_estimate_runs_invoice_no
			ON estimate_runs(invoice_no);`,
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

// SeedFromJSONPostgres loads the same seed file as SeedFromJSON using
// Postgres upserts.
func SeedFromJSONPostgres(db *sql.DB, jsonPath string) error {
	data, err := readSeedFile(jsonPath)
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed orders: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	itemStmt, err := tx.Prepare(`
	INSERT INTO item_master (
		item_code, unit_type, pick_difficulty, fragility, spill_risk,
		pressure_sensitivity, temperature_sensitivity, pieces_per_unit, active
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, TRUE)
	ON CONFLICT (item_code) DO UPDATE
	SET unit_type = EXCLUDED.unit_type,
		pick_difficulty = EXCLUDED.pick_difficulty,
		fragility = EXCLUDED.fragility,
		spill_risk = EXCLUDED.spill_risk,
		pressure_sensitivity = EXCLUDED.pressure_sensitivity,
		temperature_sensitivity = EXCLUDED.temperature_sensitivity,
		pieces_per_unit = EXCLUDED.pieces_per_unit,
		active = TRUE;
	`)
	if err != nil {
		return fmt.Errorf("seed orders: prepare item upsert: %w", err)
	}
	defer itemStmt.Close()

	for _, item := range data.Items {
		_, err := itemStmt.Exec(
			item.ItemCode,
			item.UnitType,
			item.PickDifficulty,
			item.Fragility,
			item.SpillRisk,
			item.PressureSensitivity,
			item.TemperatureSensitivity,
			item.PiecesPerUnit,
		)
		if err != nil {
			return fmt.Errorf("seed orders: upsert item %q: %w", item.ItemCode, err)
		}
	}

	invoiceStmt, err := tx.Prepare(`
	INSERT INTO invoices (invoice_no, customer)
	VALUES ($1, $2)
	ON CONFLICT (invoice_no) DO UPDATE SET customer = EXCLUDED.customer;
	`)
	if err != nil {
		return fmt.Errorf("seed orders: prepare invoice upsert: %w", err)
	}
	defer invoiceStmt.Close()

	lineStmt, err := tx.Prepare(`
	INSERT INTO invoice_lines (invoice_no, item_code, qty, unit_type, location, zone, corridor)
	VALUES ($1, $2, $3, $4, $5, $6, $7);
	`)
	if err != nil {
		return fmt.Errorf("seed orders: prepare line insert: %w", err)
	}
	defer lineStmt.Close()

	for _, inv := range data.Invoices {
		if _, err := invoiceStmt.Exec(inv.InvoiceNo, inv.Customer); err != nil {
			return fmt.Errorf("seed orders: upsert invoice %q: %w", inv.InvoiceNo, err)
		}
		if _, err := tx.Exec(`DELETE FROM invoice_lines WHERE invoice_no = $1;`, inv.InvoiceNo); err != nil {
			return fmt.Errorf("seed orders: clear lines for %q: %w", inv.InvoiceNo, err)
		}
		for _, line := range inv.Lines {
			_, err := lineStmt.Exec(
				inv.InvoiceNo,
				line.ItemCode,
				line.Qty,
				line.UnitType,
				line.Location,
				line.Zone,
				line.Corridor,
			)
			if err != nil {
				return fmt.Errorf("seed orders: insert line for %q item %q: %w", inv.InvoiceNo, line.ItemCode, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed orders: commit tx: %w", err)
	}

	return nil
}
