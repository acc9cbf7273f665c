package repositories

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

type ItemSeed struct {
	ItemCode               string `json:"item_code"`
	UnitType               string `json:"unit_type"`
	PickDifficulty         string `json:"pick_difficulty"`
	Fragility              string `json:"fragility"`
	SpillRisk              string `json:"spill_risk"`
	PressureSensitivity    string `json:"pressure_sensitivity"`
	TemperatureSensitivity string `json:"temperature_sensitivity"`
	PiecesPerUnit          int    `json:"pieces_per_unit"`
}

type LineSeed struct {
	ItemCode string `json:"item_code"`
	Qty      int    `json:"qty"`
	UnitType string `json:"unit_type"`
	Location string `json:"location"`
	Zone     string `json:"zone"`
	Corridor string `json:"corridor"`
}

type InvoiceSeed struct {
	InvoiceNo string     `json:"invoice_no"`
	Customer  string     `json:"customer"`
	Lines     []LineSeed `json:"lines"`
}

type SeedFile struct {
	Items    []ItemSeed    `json:"items"`
	Invoices []InvoiceSeed `json:"invoices"`
}

// readSeedFile loads and validates a seed payload.
func readSeedFile(jsonPath string) (*SeedFile, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("seed orders: read %q: %w", jsonPath, err)
	}

	var data SeedFile
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("seed orders: parse json: %w", err)
	}

	for i, item := range data.Items {
		if strings.TrimSpace(item.ItemCode) == "" {
			return nil, fmt.Errorf("seed orders: item at index %d: item_code cannot be empty", i+1)
		}
	}
	for i, inv := range data.Invoices {
		if strings.TrimSpace(inv.InvoiceNo) == "" {
			return nil, fmt.Errorf("seed orders: invoice at index %d: invoice_no cannot be empty", i+1)
		}
		for j, line := range inv.Lines {
			if strings.TrimSpace(line.ItemCode) == "" {
				return nil, fmt.Errorf("seed orders: invoice %q line %d: item_code cannot be empty", inv.InvoiceNo, j+1)
			}
			if line.Qty < 0 {
				return nil, fmt.Errorf("seed orders: invoice %q line %d: qty cannot be negative", inv.InvoiceNo, j+1)
			}
		}
	}
	return &data, nil
}

// SeedFromJSON populates item master, invoices and order lines from a JSON
// file for local runs. Existing invoice lines are replaced wholesale so
// reseeding is repeatable.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
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
	INSERT OR REPLACE INTO item_master (
		item_code,
		unit_type,
		pick_difficulty,
		fragility,
		spill_risk,
		pressure_sensitivity,
		temperature_sensitivity,
		pieces_per_unit,
		active
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, 1);
	`)
	if err != nil {
		return fmt.Errorf("seed orders: prepare item insert: %w", err)
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
			return fmt.Errorf("seed orders: insert item %q: %w", item.ItemCode, err)
		}
	}

	invoiceStmt, err := tx.Prepare(`
	INSERT OR REPLACE INTO invoices (invoice_no, customer) VALUES (?, ?);
	`)
	if err != nil {
		return fmt.Errorf("seed orders: prepare invoice insert: %w", err)
	}
	defer invoiceStmt.Close()

	lineStmt, err := tx.Prepare(`
	INSERT INTO invoice_lines (invoice_no, item_code, qty, unit_type, location, zone, corridor)
	VALUES (?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("seed orders: prepare line insert: %w", err)
	}
	defer lineStmt.Close()

	for _, inv := range data.Invoices {
		if _, err := invoiceStmt.Exec(inv.InvoiceNo, inv.Customer); err != nil {
			return fmt.Errorf("seed orders: insert invoice %q: %w", inv.InvoiceNo, err)
		}

		// Replace lines so reseeding does not duplicate them.
		if _, err := tx.Exec(`DELETE FROM invoice_lines WHERE invoice_no = ?;`, inv.InvoiceNo); err != nil {
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
