package ports

import (
	"context"
	"pick-time-service/internal/domain"
)

// ParamsStore is the boundary for the estimator's configuration: the cost
// model, its revision counter, and the seasonal summer-mode toggle.
type ParamsStore interface {
	// Params returns the current cost model. Implementations fall back to
	// the documented default payload when nothing has been stored yet.
	Params(ctx context.Context) (*domain.Params, error)
	// Revision returns the monotonically increasing params revision,
	// recorded on audit runs so old estimates stay explainable.
	Revision(ctx context.Context) (int, error)
	// SummerMode reports whether heat-sensitive handling penalties apply.
	SummerMode(ctx context.Context) (bool, error)
	// SaveParams stores a new cost model and returns the bumped revision.
	SaveParams(ctx context.Context, params *domain.Params) (int, error)
}
