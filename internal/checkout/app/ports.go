package app

import (
	"context"

	cart "github.com/dwikikusuma/shopfront/internal/cart/domain"
	catalog "github.com/dwikikusuma/shopfront/internal/catalog/domain"
	order "github.com/dwikikusuma/shopfront/internal/order/domain"
	"github.com/shopspring/decimal"
)

type CartReader interface {
	GetCart(ctx context.Context, userID string) ([]CartItem, error)
}

type CartItem struct {
	ProductID string
	Quantity  int
}

type CatalogReader interface {
	GetProduct(ctx context.Context, productID string) (Product, error)
}

type Product struct {
	ID    string
	Name  string
	Price decimal.Decimal
}

// UnitOfWork runs fn with exclusive access to the user's cart and to every
// product in it. Writes made through the tx are applied only if fn returns
// nil; otherwise nothing changes.
type UnitOfWork interface {
	Checkout(ctx context.Context, userID string, fn func(tx CheckoutTx) error) error
}

type CheckoutTx interface {
	Cart() cart.Cart
	Product(id string) (catalog.Product, error)
	DecrementStock(productID string, qty int) error
	AppendOrder(o order.Order) error
	ClearCart()
}
