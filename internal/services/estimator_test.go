package services

import (
	"context"
	"errors"
	"testing"

	"pick-time-service/internal/domain"
)

func TestEstimateOrderNilParams(t *testing.T) {
	_, err := EstimateOrder(nil, false, "INV-1", nil, nil)
	if !errors.Is(err, ErrMissingParams) {
		t.Fatalf("err = %v, want ErrMissingParams", err)
	}
}

func TestEstimateOrderSingleStopTotals(t *testing.T) {
	params := domain.DefaultParams()

	lines := []*domain.OrderLine{
		line("A", "10-01-A02", "MAIN", "10", 1),
		line("B", "10-01-A02", "MAIN", "10", 3),
	}

	est, err := EstimateOrder(params, false, "INV-1", lines, nil)
	if err != nil {
		t.Fatalf("EstimateOrder: %v", err)
	}

	// Two lines, one shared stop. With no item-master rows, difficulty
	// defaults to rating 2 (2s each).
	almostEqual(t, est.OverheadSeconds, 90, "overhead")
	almostEqual(t, est.TravelSeconds, 2, "travel: single alignment")
	almostEqual(t, est.PickSeconds, 8+10.2, "pick: 6+2 and 6+2*1.1+2")
	almostEqual(t, est.PackSeconds, 45+2*3, "pack: base + 2 lines")
	almostEqual(t, est.TotalSeconds, 161.2, "total")
	almostEqual(t, est.TotalMinutes, 161.2/60.0, "minutes")

	if len(est.OrderedStops) != 1 {
		t.Fatalf("ordered stops = %d, want 1", len(est.OrderedStops))
	}
	if est.Travel.Stops != 1 {
		t.Fatalf("travel debug stops = %d, want 1", est.Travel.Stops)
	}

	// The first line at the stop carries the walk cost; the second does not.
	almostEqual(t, est.Lines[0].WalkSeconds, 2, "walk allocated to first line")
	almostEqual(t, est.Lines[1].WalkSeconds, 0, "no double allocation")
}

func TestEstimateOrderUpstairsStairsOnce(t *testing.T) {
	params := domain.DefaultParams()

	lines := []*domain.OrderLine{
		line("G", "10-01-A02", "MAIN", "10", 1),
		line("U1", "70-01-A03", "MAIN", "70", 1),
		line("U2", "70-02-A01", "MAIN", "70", 1),
	}

	est, err := EstimateOrder(params, false, "INV-2", lines, nil)
	if err != nil {
		t.Fatalf("EstimateOrder: %v", err)
	}

	wantStairs := params.Travel.SecStairsUp + params.Travel.SecStairsDown
	almostEqual(t, est.Travel.StairsSeconds, wantStairs, "stairs charged once for the whole trip")

	// The ground stop comes first regardless of input order.
	if est.OrderedStops[0].Corridor != "10" {
		t.Fatalf("first stop corridor = %q, want 10", est.OrderedStops[0].Corridor)
	}
}

func TestEstimateOrderSummerModeDeltas(t *testing.T) {
	params := domain.DefaultParams()

	items := map[string]*domain.ItemMaster{
		"CHOC": {ItemCode: "CHOC", UnitType: "item", PickDifficulty: "1", TemperatureSensitivity: "heat_sensitive", Active: true},
	}
	lines := []*domain.OrderLine{line("CHOC", "10-01-A02", "MAIN", "10", 1)}

	winter, err := EstimateOrder(params, false, "INV-3", lines, items)
	if err != nil {
		t.Fatalf("winter: %v", err)
	}
	summer, err := EstimateOrder(params, true, "INV-3", lines, items)
	if err != nil {
		t.Fatalf("summer: %v", err)
	}

	almostEqual(t, summer.PickSeconds-winter.PickSeconds,
		params.Pick.HandlingSeconds["heat_sensitive_summer"], "summer pick delta")
	almostEqual(t, summer.PackSeconds-winter.PackSeconds,
		params.Pack.SpecialGroupSeconds, "summer pack delta")
	if !summer.SummerMode || winter.SummerMode {
		t.Fatalf("summer flags = %v/%v", summer.SummerMode, winter.SummerMode)
	}
}

func TestEstimateOrderEmptyInvoice(t *testing.T) {
	params := domain.DefaultParams()

	est, err := EstimateOrder(params, false, "INV-EMPTY", nil, nil)
	if err != nil {
		t.Fatalf("EstimateOrder: %v", err)
	}
	almostEqual(t, est.TravelSeconds, 0, "no stops, no travel")
	almostEqual(t, est.TotalSeconds, est.OverheadSeconds+est.PackSeconds, "only overhead and pack base")
}

type fakeOrderRepo struct {
	invoices map[string][]*domain.OrderLine
	items    map[string]*domain.ItemMaster
}

func (r *fakeOrderRepo) InvoiceExists(_ context.Context, invoiceNo string) (bool, error) {
	_, ok := r.invoices[invoiceNo]
	return ok, nil
}

func (r *fakeOrderRepo) ListLines(_ context.Context, invoiceNo string) ([]*domain.OrderLine, error) {
	return r.invoices[invoiceNo], nil
}

func (r *fakeOrderRepo) ItemsByCode(_ context.Context, codes []string) (map[string]*domain.ItemMaster, error) {
	out := make(map[string]*domain.ItemMaster)
	for _, code := range codes {
		if item, ok := r.items[code]; ok {
			out[code] = item
		}
	}
	return out, nil
}

type fakeParamsStore struct {
	params   *domain.Params
	revision int
	summer   bool
}

func (s *fakeParamsStore) Params(context.Context) (*domain.Params, error)  { return s.params, nil }
func (s *fakeParamsStore) Revision(context.Context) (int, error)           { return s.revision, nil }
func (s *fakeParamsStore) SummerMode(context.Context) (bool, error)        { return s.summer, nil }
func (s *fakeParamsStore) SaveParams(_ context.Context, p *domain.Params) (int, error) {
	s.params = p
	s.revision++
	return s.revision, nil
}

type fakeEstimateWriter struct {
	est      *domain.Estimate
	revision int
	reason   string
}

func (w *fakeEstimateWriter) WriteEstimate(_ context.Context, est *domain.Estimate, _ *domain.Params, revision int, reason string) (int64, error) {
	w.est = est
	w.revision = revision
	w.reason = reason
	return 77, nil
}

func TestEstimateInvoiceUnknownInvoice(t *testing.T) {
	repo := &fakeOrderRepo{invoices: map[string][]*domain.OrderLine{}}
	store := &fakeParamsStore{params: domain.DefaultParams(), revision: 1}

	_, err := EstimateInvoice(context.Background(), "NOPE", repo, store)
	if !errors.Is(err, ErrInvoiceNotFound) {
		t.Fatalf("err = %v, want ErrInvoiceNotFound", err)
	}
}

func TestEstimateAndPersistInvoice(t *testing.T) {
	repo := &fakeOrderRepo{
		invoices: map[string][]*domain.OrderLine{
			"INV-9": {
				line("A", "10-01-A02", "MAIN", "10", 1),
				line("B", "12-02-A05", "MAIN", "12", 2),
			},
		},
		items: map[string]*domain.ItemMaster{
			"A": {ItemCode: "A", UnitType: "item", PickDifficulty: "1", Active: true},
		},
	}
	store := &fakeParamsStore{params: domain.DefaultParams(), revision: 4}
	writer := &fakeEstimateWriter{}

	est, runID, err := EstimateAndPersistInvoice(context.Background(), "INV-9", "nightly", repo, store, writer)
	if err != nil {
		t.Fatalf("EstimateAndPersistInvoice: %v", err)
	}
	if runID != 77 {
		t.Fatalf("run id = %d, want 77", runID)
	}
	if writer.est != est {
		t.Fatal("writer did not receive the estimate that was returned")
	}
	if writer.revision != 4 || writer.reason != "nightly" {
		t.Fatalf("writer got revision %d reason %q", writer.revision, writer.reason)
	}
	if est.TotalSeconds <= 0 || len(est.Lines) != 2 {
		t.Fatalf("estimate looks wrong: total %v, %d lines", est.TotalSeconds, len(est.Lines))
	}
}
