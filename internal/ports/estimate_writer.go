package ports

import (
	"context"
	"pick-time-service/internal/domain"
)

// EstimateWriter persists an estimate: per-line minutes, the invoice total,
// and an audit run capturing the exact cost model the numbers came from.
type EstimateWriter interface {
	// WriteEstimate stores the estimate and returns the audit run id.
	WriteEstimate(ctx context.Context, est *domain.Estimate, params *domain.Params, revision int, reason string) (int64, error)
}
