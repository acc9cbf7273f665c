package services

import (
	"context"
	"errors"
	"fmt"
	"pick-time-service/internal/domain"
	"pick-time-service/internal/ports"
)

// EstimatorVersion tags audit runs with the cost-model implementation that
// produced them.
const EstimatorVersion = "pick_estimator_v1.1"

// ErrMissingParams is returned when no parameter set is supplied at all.
// Estimating without any cost model is meaningless; this is the estimator's
// only hard failure mode.
var ErrMissingParams = errors.New("estimate order: parameter set is missing")

// ErrInvoiceNotFound is returned when the requested invoice is unknown.
var ErrInvoiceNotFound = errors.New("invoice not found")

// EstimateOrder is the pure estimation pipeline: build stops, order them into
// one walking trip, accumulate travel, sum per-line pick times, add packing
// and fixed overhead. Inputs arrive fully materialized; the function touches
// no shared state and may run concurrently with other estimations.
//
// All data-quality anomalies (bad locations, missing item rows, absent cost
// keys) degrade to documented defaults rather than failing; only a nil params
// set is an error.
func EstimateOrder(
	params *domain.Params,
	summerMode bool,
	invoiceNo string,
	lines []*domain.OrderLine,
	itemsByCode map[string]*domain.ItemMaster,
) (*domain.Estimate, error) {
	if params == nil {
		return nil, ErrMissingParams
	}

	stops := BuildStops(lines, params)
	ordered := OrderStopsOneTrip(stops, params)
	travelSec, travelDbg := EstimateTravelSeconds(ordered, params)

	// Travel allocation: the first line at each stop carries the cost of
	// reaching that stop, so persisted per-line minutes add up sensibly.
	walkAtStop := WalkSecondsAtStops(ordered, params)
	allocated := make(map[domain.StopKey]bool, len(walkAtStop))

	pickTotal := 0.0
	lineEstimates := make([]domain.LineEstimate, 0, len(lines))
	for _, line := range lines {
		item := itemsByCode[line.ItemCode]
		pickSec := EstimatePickSeconds(line, item, params, summerMode)
		pickTotal += pickSec

		walkSec := 0.0
		key := stopForLine(line, params).Key()
		if !allocated[key] {
			allocated[key] = true
			walkSec = walkAtStop[key]
		}

		lineEstimates = append(lineEstimates, domain.LineEstimate{
			LineID:      line.LineID,
			ItemCode:    line.ItemCode,
			Location:    line.Location,
			Qty:         DisplayQty(line, item),
			UnitType:    lineUnitType(line, item),
			PickSeconds: pickSec,
			WalkSeconds: walkSec,
		})
	}

	packSec, packDbg := EstimatePackSeconds(lines, itemsByCode, params, summerMode)
	overheadSec := params.Overhead.StartSeconds + params.Overhead.EndSeconds
	totalSec := overheadSec + travelSec + pickTotal + packSec

	return &domain.Estimate{
		InvoiceNo:       invoiceNo,
		TotalSeconds:    totalSec,
		TotalMinutes:    totalSec / 60.0,
		OverheadSeconds: overheadSec,
		TravelSeconds:   travelSec,
		PickSeconds:     pickTotal,
		PackSeconds:     packSec,
		Lines:           lineEstimates,
		OrderedStops:    ordered,
		Travel:          travelDbg,
		Pack:            packDbg,
		SummerMode:      summerMode,
		ParamsVersion:   params.Version,
	}, nil
}

// EstimateInvoice resolves an invoice to its lines and item attributes, loads
// the current cost model, and runs the pure pipeline. No persistence happens
// here.
func EstimateInvoice(
	ctx context.Context,
	invoiceNo string,
	repo ports.OrderRepository,
	store ports.ParamsStore,
) (*domain.Estimate, error) {
	exists, err := repo.InvoiceExists(ctx, invoiceNo)
	if err != nil {
		return nil, fmt.Errorf("estimate invoice %q: %w", invoiceNo, err)
	}
	if !exists {
		return nil, fmt.Errorf("estimate invoice %q: %w", invoiceNo, ErrInvoiceNotFound)
	}

	params, err := store.Params(ctx)
	if err != nil {
		return nil, fmt.Errorf("estimate invoice %q: load params: %w", invoiceNo, err)
	}

	summerMode, err := store.SummerMode(ctx)
	if err != nil {
		return nil, fmt.Errorf("estimate invoice %q: load summer mode: %w", invoiceNo, err)
	}

	lines, err := repo.ListLines(ctx, invoiceNo)
	if err != nil {
		return nil, fmt.Errorf("estimate invoice %q: list lines: %w", invoiceNo, err)
	}

	codes := make([]string, 0, len(lines))
	for _, line := range lines {
		if line.ItemCode != "" {
			codes = append(codes, line.ItemCode)
		}
	}
	items, err := repo.ItemsByCode(ctx, codes)
	if err != nil {
		return nil, fmt.Errorf("estimate invoice %q: load item master: %w", invoiceNo, err)
	}

	est, err := EstimateOrder(params, summerMode, invoiceNo, lines, items)
	if err != nil {
		return nil, fmt.Errorf("estimate invoice %q: %w", invoiceNo, err)
	}
	return est, nil
}

// EstimateAndPersistInvoice runs the estimator and writes the result back:
// per-line minutes, the invoice total, and an audit run snapshotting the cost
// model and its revision.
func EstimateAndPersistInvoice(
	ctx context.Context,
	invoiceNo string,
	reason string,
	repo ports.OrderRepository,
	store ports.ParamsStore,
	writer ports.EstimateWriter,
) (*domain.Estimate, int64, error) {
	est, err := EstimateInvoice(ctx, invoiceNo, repo, store)
	if err != nil {
		return nil, 0, err
	}

	params, err := store.Params(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("persist estimate %q: load params: %w", invoiceNo, err)
	}
	revision, err := store.Revision(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("persist estimate %q: load params revision: %w", invoiceNo, err)
	}

	runID, err := writer.WriteEstimate(ctx, est, params, revision, reason)
	if err != nil {
		return nil, 0, fmt.Errorf("persist estimate %q: %w", invoiceNo, err)
	}
	return est, runID, nil
}
