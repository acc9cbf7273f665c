package settings

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"pick-time-service/internal/domain"
	"pick-time-service/internal/platform/obs"
	"strconv"
	"strings"
)

// Settings keys. The params payload is a versioned JSON document; the
// revision counter bumps on every save so audit runs can pin the exact model
// they were computed with.
const (
	paramsKey         = "pick_time_params_v1"
	paramsRevisionKey = "pick_time_params_v1_revision"
	summerModeKey     = "summer_mode"
)

// SQLiteSettingsStore is a key/value settings store backed by the embedded
// database. It implements ports.ParamsStore.
type SQLiteSettingsStore struct {
	DB *sql.DB
}

func NewSQLiteSettingsStore(db *sql.DB) *SQLiteSettingsStore {
	return &SQLiteSettingsStore{DB: db}
}

func (s *SQLiteSettingsStore) get(ctx context.Context, key, fallback string) (string, error) {
	if s.DB == nil {
		return "", errors.New("settings store: DB is nil")
	}

	var value string
	err := s.DB.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?;`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return fallback, nil
	}
	if err != nil {
		return "", fmt.Errorf("settings store: get %q: %w", key, err)
	}
	return value, nil
}

// Params returns the stored cost model, falling back to the documented
// default payload when the key is absent. Stored payloads are normalized so
// legacy documents (pre per-move/per-stop split) keep their old behavior.
func (s *SQLiteSettingsStore) Params(ctx context.Context) (_ *domain.Params, err error) {
	defer obs.Time(ctx, "settings.Params")(&err)

	raw, err := s.get(ctx, paramsKey, "")
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(raw) == "" {
		return domain.DefaultParams(), nil
	}

	var params domain.Params
	if err := json.Unmarshal([]byte(raw), &params); err != nil {
		return nil, fmt.Errorf("settings store: parse %s: %w", paramsKey, err)
	}
	params.Normalize()
	return &params, nil
}

// Revision returns the current params revision, defaulting to 1 when the
// counter has never been written.
func (s *SQLiteSettingsStore) Revision(ctx context.Context) (int, error) {
	raw, err := s.get(ctx, paramsRevisionKey, "1")
	if err != nil {
		return 0, err
	}
	rev, convErr := strconv.Atoi(strings.TrimSpace(raw))
	if convErr != nil || rev < 1 {
		return 1, nil
	}
	return rev, nil
}

// SummerMode reports the seasonal toggle; any unset or unrecognized value
// means off.
func (s *SQLiteSettingsStore) SummerMode(ctx context.Context) (bool, error) {
	raw, err := s.get(ctx, summerModeKey, "false")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes", "y", "on":
		return true, nil
	}
	return false, nil
}

// SetSummerMode stores the seasonal toggle.
func (s *SQLiteSettingsStore) SetSummerMode(ctx context.Context, on bool) error {
	if s.DB == nil {
		return errors.New("settings store: DB is nil")
	}
	_, err := s.DB.ExecContext(ctx,
		`INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?);`,
		summerModeKey, strconv.FormatBool(on),
	)
	if err != nil {
		return fmt.Errorf("settings store: set summer mode: %w", err)
	}
	return nil
}

// SaveParams stores a new cost model and bumps the revision counter in the
// same transaction, returning the new revision.
func (s *SQLiteSettingsStore) SaveParams(ctx context.Context, params *domain.Params) (_ int, err error) {
	defer obs.Time(ctx, "settings.SaveParams")(&err)

	if s.DB == nil {
		return 0, errors.New("settings store: DB is nil")
	}
	if params == nil {
		return 0, errors.New("settings store: params must be non-nil")
	}

	payload, err := json.Marshal(params)
	if err != nil {
		return 0, fmt.Errorf("settings store: marshal params: %w", err)
	}

	revision, err := s.Revision(ctx)
	if err != nil {
		return 0, err
	}
	revision++

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("settings store: save params: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	upsert := `INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?);`
	if _, err := tx.ExecContext(ctx, upsert, paramsKey, string(payload)); err != nil {
		return 0, fmt.Errorf("settings store: save params payload: %w", err)
	}
	if _, err := tx.ExecContext(ctx, upsert, paramsRevisionKey, strconv.Itoa(revision)); err != nil {
		return 0, fmt.Errorf("settings store: save params revision: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("settings store: save params: commit tx: %w", err)
	}
	return revision, nil
}
