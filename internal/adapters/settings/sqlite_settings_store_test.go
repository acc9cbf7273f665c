package settings

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"pick-time-service/internal/adapters/repositories"
	"pick-time-service/internal/domain"
)

func newTestStore(t *testing.T) *SQLiteSettingsStore {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := repositories.InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return NewSQLiteSettingsStore(db)
}

func TestParamsDefaultsWhenUnset(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	params, err := store.Params(ctx)
	if err != nil {
		t.Fatalf("Params: %v", err)
	}
	if params.Version != "v1" {
		t.Fatalf("version = %q, want default v1", params.Version)
	}

	rev, err := store.Revision(ctx)
	if err != nil {
		t.Fatalf("Revision: %v", err)
	}
	if rev != 1 {
		t.Fatalf("revision = %d, want default 1", rev)
	}
}

func TestSaveParamsBumpsRevision(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	params := domain.DefaultParams()
	params.Version = "v2"
	params.Pack.BaseSeconds = 50

	rev, err := store.SaveParams(ctx, params)
	if err != nil {
		t.Fatalf("SaveParams: %v", err)
	}
	if rev != 2 {
		t.Fatalf("revision after first save = %d, want 2", rev)
	}

	got, err := store.Params(ctx)
	if err != nil {
		t.Fatalf("Params: %v", err)
	}
	if got.Version != "v2" || got.Pack.BaseSeconds != 50 {
		t.Fatalf("stored params not returned: %+v", got)
	}

	rev, err = store.SaveParams(ctx, params)
	if err != nil {
		t.Fatalf("second SaveParams: %v", err)
	}
	if rev != 3 {
		t.Fatalf("revision after second save = %d, want 3", rev)
	}
}

func TestSaveParamsRejectsNil(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.SaveParams(context.Background(), nil); err == nil {
		t.Fatal("expected an error for nil params")
	}
}

func TestSummerModeRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	on, err := store.SummerMode(ctx)
	if err != nil {
		t.Fatalf("SummerMode: %v", err)
	}
	if on {
		t.Fatal("summer mode should default to off")
	}

	if err := store.SetSummerMode(ctx, true); err != nil {
		t.Fatalf("SetSummerMode: %v", err)
	}
	on, err = store.SummerMode(ctx)
	if err != nil {
		t.Fatalf("SummerMode: %v", err)
	}
	if !on {
		t.Fatal("summer mode should be on after SetSummerMode(true)")
	}
}

func TestNilDBFails(t *testing.T) {
	store := &SQLiteSettingsStore{}

	if _, err := store.Params(context.Background()); err == nil {
		t.Fatal("expected an error with a nil DB")
	}
}
