package app

import (
	"context"

	"github.com/dwikikusuma/shopfront/internal/catalog/domain"
)

// ProductRepo stores products. List returns them in insertion order.
type ProductRepo interface {
	Create(ctx context.Context, p domain.Product) (domain.Product, error)
	Get(ctx context.Context, id string) (domain.Product, error)
	List(ctx context.Context, filter domain.Filter) ([]domain.Product, error)
}
