package memory

import (
	"context"

	order "github.com/dwikikusuma/shopfront/internal/order/domain"
	"github.com/dwikikusuma/shopfront/pkg/apperr"
)

// Orders reads the append-only order ledger. Orders are appended by Checkout.
type Orders struct {
	s *Store
}

func (r *Orders) ListByUser(ctx context.Context, userID string) ([]order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	ids := r.s.ordersByUser[userID]
	out := make([]order.Order, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.s.orders[id].Clone())
	}
	return out, nil
}

func (r *Orders) Get(ctx context.Context, orderID string) (order.Order, error) {
	if err := ctx.Err(); err != nil {
		return order.Order{}, err
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	o, ok := r.s.orders[orderID]
	if !ok {
		return order.Order{}, apperr.NotFound("order", orderID)
	}
	return o.Clone(), nil
}

// Count returns the number of orders in the ledger.
func (r *Orders) Count() int {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.orders)
}
