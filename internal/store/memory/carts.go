package memory

import (
	"context"

	cart "github.com/dwikikusuma/shopfront/internal/cart/domain"
	"github.com/dwikikusuma/shopfront/pkg/apperr"
)

// Carts implements the cart service's CartRepo.
type Carts struct {
	s *Store
}

func (r *Carts) Get(ctx context.Context, userID string) (cart.Cart, error) {
	if err := ctx.Err(); err != nil {
		return cart.Cart{}, err
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.carts[userID]
	if !ok {
		return cart.Cart{}, apperr.NotFound("cart", userID)
	}
	return c.Clone(), nil
}

func (r *Carts) Create(ctx context.Context, userID string) (cart.Cart, error) {
	if err := ctx.Err(); err != nil {
		return cart.Cart{}, err
	}

	l := r.s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if c, ok := r.s.carts[userID]; ok {
		return c.Clone(), nil
	}
	c := cart.New(userID, r.s.now().UTC())
	r.s.carts[userID] = c
	return c.Clone(), nil
}

func (r *Carts) Update(ctx context.Context, userID string, fn func(*cart.Cart) error) (cart.Cart, error) {
	return r.update(ctx, userID, false, fn)
}

func (r *Carts) UpdateOrCreate(ctx context.Context, userID string, fn func(*cart.Cart) error) (cart.Cart, error) {
	return r.update(ctx, userID, true, fn)
}

func (r *Carts) update(ctx context.Context, userID string, create bool, fn func(*cart.Cart) error) (cart.Cart, error) {
	if err := ctx.Err(); err != nil {
		return cart.Cart{}, err
	}

	l := r.s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	r.s.mu.RLock()
	existing, ok := r.s.carts[userID]
	r.s.mu.RUnlock()

	var working cart.Cart
	switch {
	case ok:
		working = existing.Clone()
	case create:
		working = cart.New(userID, r.s.now().UTC())
	default:
		return cart.Cart{}, apperr.NotFound("cart", userID)
	}

	if err := fn(&working); err != nil {
		return cart.Cart{}, err
	}

	r.s.mu.Lock()
	r.s.carts[userID] = working
	r.s.mu.Unlock()

	return working.Clone(), nil
}
