package app

import (
	"context"

	"github.com/dwikikusuma/shopfront/internal/cart/domain"
	catalog "github.com/dwikikusuma/shopfront/internal/catalog/domain"
)

// CartRepo stores one cart per user. Update and UpdateOrCreate run fn while
// holding the user's lock; the cart is saved only when fn returns nil.
type CartRepo interface {
	Get(ctx context.Context, userID string) (domain.Cart, error)
	Create(ctx context.Context, userID string) (domain.Cart, error)
	Update(ctx context.Context, userID string, fn func(*domain.Cart) error) (domain.Cart, error)
	UpdateOrCreate(ctx context.Context, userID string, fn func(*domain.Cart) error) (domain.Cart, error)
}

type ProductReader interface {
	Get(ctx context.Context, id string) (catalog.Product, error)
}
