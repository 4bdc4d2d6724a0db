package app

import (
	"context"

	"github.com/dwikikusuma/shopfront/internal/order/domain"
)

// OrderRepo reads the order ledger. Orders are written by checkout only.
type OrderRepo interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	Get(ctx context.Context, orderID string) (domain.Order, error)
}
