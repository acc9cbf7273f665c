package ports

import (
	"context"
	"pick-time-service/internal/domain"
)

// OrderRepository is the boundary for retrieving the order lines and item
// attributes an estimation needs, already materialized.
type OrderRepository interface {
	// InvoiceExists reports whether the invoice is known.
	InvoiceExists(ctx context.Context, invoiceNo string) (bool, error)
	// ListLines returns every line of the invoice in stored order.
	ListLines(ctx context.Context, invoiceNo string) ([]*domain.OrderLine, error)
	// ItemsByCode returns the active item-master rows for the given codes.
	// Codes with no row are simply absent from the map.
	ItemsByCode(ctx context.Context, codes []string) (map[string]*domain.ItemMaster, error)
}
