package memory

import (
	"context"
	"fmt"
	"sort"

	cart "github.com/dwikikusuma/shopfront/internal/cart/domain"
	catalog "github.com/dwikikusuma/shopfront/internal/catalog/domain"
	checkoutapp "github.com/dwikikusuma/shopfront/internal/checkout/app"
	order "github.com/dwikikusuma/shopfront/internal/order/domain"
	"github.com/dwikikusuma/shopfront/pkg/apperr"
)

var _ checkoutapp.UnitOfWork = (*Store)(nil)

// Checkout locks the user and every product in the user's cart, runs fn, and
// applies the buffered writes only when fn succeeds.
func (s *Store) Checkout(ctx context.Context, userID string, fn func(tx checkoutapp.CheckoutTx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ul := s.userLock(userID)
	ul.Lock()
	defer ul.Unlock()

	s.mu.RLock()
	c, ok := s.carts[userID]
	if ok {
		c = c.Clone()
	} else {
		c = cart.New(userID, s.now().UTC())
	}
	s.mu.RUnlock()

	ids := make([]string, 0, len(c.Items))
	locked := make(map[string]struct{}, len(c.Items))
	for _, it := range c.Items {
		if _, ok := locked[it.ProductID]; ok {
			continue
		}
		locked[it.ProductID] = struct{}{}
		ids = append(ids, it.ProductID)
	}
	sort.Strings(ids)

	for _, id := range ids {
		l := s.productLock(id)
		l.Lock()
		defer l.Unlock()
	}

	tx := &checkoutTx{
		s:          s,
		cart:       c,
		locked:     locked,
		decrements: make(map[string]int, len(ids)),
	}
	if err := fn(tx); err != nil {
		return err
	}

	s.commit(tx)
	return nil
}

func (s *Store) commit(tx *checkoutTx) {
	now := s.now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, qty := range tx.decrements {
		p, ok := s.products[id]
		if !ok {
			continue
		}
		p.Stock -= qty
		p.UpdatedAt = now
		s.products[id] = p
	}

	for _, o := range tx.orders {
		s.orders[o.ID] = o
		s.ordersByUser[o.UserID] = append(s.ordersByUser[o.UserID], o.ID)
	}

	if tx.clear {
		c, ok := s.carts[tx.cart.UserID]
		if !ok {
			c = cart.New(tx.cart.UserID, now)
		}
		c.Clear(now)
		s.carts[tx.cart.UserID] = c
	}
}

type checkoutTx struct {
	s      *Store
	cart   cart.Cart
	locked map[string]struct{}

	decrements map[string]int
	orders     []order.Order
	clear      bool
}

func (tx *checkoutTx) Cart() cart.Cart {
	return tx.cart.Clone()
}

// Product returns the product as it would look after this tx's pending
// decrements.
func (tx *checkoutTx) Product(id string) (catalog.Product, error) {
	tx.s.mu.RLock()
	p, ok := tx.s.products[id]
	tx.s.mu.RUnlock()

	if !ok {
		return catalog.Product{}, apperr.NotFound("product", id)
	}
	p.Stock -= tx.decrements[id]
	return p, nil
}

func (tx *checkoutTx) DecrementStock(productID string, qty int) error {
	if _, ok := tx.locked[productID]; !ok {
		return fmt.Errorf("product %s is not part of this checkout", productID)
	}
	if qty <= 0 {
		return apperr.Invalid("quantity", fmt.Sprintf("must be positive, got %d", qty))
	}

	p, err := tx.Product(productID)
	if err != nil {
		return err
	}
	if p.Stock < qty {
		return &apperr.StockError{ProductID: p.ID, Name: p.Name, Requested: qty, Available: p.Stock}
	}
	tx.decrements[productID] += qty
	return nil
}

func (tx *checkoutTx) AppendOrder(o order.Order) error {
	if o.UserID != tx.cart.UserID {
		return fmt.Errorf("order %s belongs to %s, not %s", o.ID, o.UserID, tx.cart.UserID)
	}

	tx.s.mu.RLock()
	_, exists := tx.s.orders[o.ID]
	tx.s.mu.RUnlock()
	if exists {
		return fmt.Errorf("order %s: %w", o.ID, apperr.ErrConflict)
	}
	for _, pending := range tx.orders {
		if pending.ID == o.ID {
			return fmt.Errorf("order %s: %w", o.ID, apperr.ErrConflict)
		}
	}

	tx.orders = append(tx.orders, o.Clone())
	return nil
}

func (tx *checkoutTx) ClearCart() {
	tx.clear = true
}
