package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"pick-time-service/internal/domain"
	"strings"
)

// SQLite-backed implementation of the OrderRepository port.
type SqliteOrderRepository struct{ DB *sql.DB }

func NewSqliteOrderRepository(db *sql.DB) *SqliteOrderRepository {
	return &SqliteOrderRepository{DB: db}
}

func (s *SqliteOrderRepository) InvoiceExists(ctx context.Context, invoiceNo string) (bool, error) {
	if s.DB == nil {
		return false, errors.New("order repository: DB is nil")
	}

	var one int
	err := s.DB.QueryRowContext(ctx,
		`SELECT 1 FROM invoices WHERE invoice_no = ?;`, invoiceNo,
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("invoice exists: query invoices table: %w", err)
	}
	return true, nil
}

// ListLines returns every line of the invoice in stored order.
func (s *SqliteOrderRepository) ListLines(ctx context.Context, invoiceNo string) ([]*domain.OrderLine, error) {
	if s.DB == nil {
		return nil, errors.New("order repository: DB is nil")
	}

	query := `
	SELECT
		line_id,
		invoice_no,
		item_code,
		qty,
		COALESCE(unit_type, ''),
		COALESCE(location, ''),
		COALESCE(zone, ''),
		COALESCE(corridor, ''),
		exp_minutes
	FROM invoice_lines
	WHERE invoice_no = ?
	ORDER BY line_id;
	`
	rows, err := s.DB.QueryContext(ctx, query, invoiceNo)
	if err != nil {
		return nil, fmt.Errorf("list lines: query invoice_lines table: %w", err)
	}
	defer rows.Close()

	lines := make([]*domain.OrderLine, 0, 16)
	for rows.Next() {
		var line domain.OrderLine
		var expMinutes sql.NullFloat64
		err := rows.Scan(
			&line.LineID,
			&line.InvoiceNo,
			&line.ItemCode,
			&line.Qty,
			&line.UnitType,
			&line.Location,
			&line.Zone,
			&line.Corridor,
			&expMinutes,
		)
		if err != nil {
			return nil, fmt.Errorf("list lines: scan row: %w", err)
		}
		if expMinutes.Valid {
			v := expMinutes.Float64
			line.ExpMinutes = &v
		}
		lines = append(lines, &line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list lines: row iteration: %w", err)
	}

	return lines, nil
}

// ItemsByCode returns the active item-master rows for the given codes.
func (s *SqliteOrderRepository) ItemsByCode(ctx context.Context, codes []string) (map[string]*domain.ItemMaster, error) {
	if s.DB == nil {
		return nil, errors.New("order repository: DB is nil")
	}

	seen := map[string]struct{}{}
	uniq := make([]string, 0, len(codes))
	ph := make([]string, 0, len(codes))
	for _, code := range codes {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		uniq = append(uniq, code)
		ph = append(ph, "?")
	}

	if len(uniq) == 0 {
		return map[string]*domain.ItemMaster{}, nil
	}

	// SQLite does not support binding slices directly in an IN (...) clause.
	// Only the placeholder structure is interpolated; all values remain parameterized.
	query := fmt.Sprintf(`
	SELECT
		item_code,
		COALESCE(unit_type, ''),
		COALESCE(pick_difficulty, ''),
		COALESCE(fragility, ''),
		COALESCE(spill_risk, ''),
		COALESCE(pressure_sensitivity, ''),
		COALESCE(temperature_sensitivity, ''),
		pieces_per_unit
	FROM item_master
	WHERE active = 1
		AND item_code IN (%s);
	`, strings.Join(ph, ","))

	args := make([]any, 0, len(uniq))
	for _, code := range uniq {
		args = append(args, code)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("items by code: query item_master table: %w", err)
	}
	defer rows.Close()

	items := make(map[string]*domain.ItemMaster, len(uniq))
	for rows.Next() {
		item := domain.ItemMaster{Active: true}
		err := rows.Scan(
			&item.ItemCode,
			&item.UnitType,
			&item.PickDifficulty,
			&item.Fragility,
			&item.SpillRisk,
			&item.PressureSensitivity,
			&item.TemperatureSensitivity,
			&item.PiecesPerUnit,
		)
		if err != nil {
			return nil, fmt.Errorf("items by code: scan row: %w", err)
		}
		items[item.ItemCode] = &item
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("items by code: row iteration: %w", err)
	}

	return items, nil
}
