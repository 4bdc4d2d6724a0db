package memory

import (
	"context"
	"fmt"

	catalog "github.com/dwikikusuma/shopfront/internal/catalog/domain"
	"github.com/dwikikusuma/shopfront/pkg/apperr"
)

// Products implements the catalog's ProductRepo and the cart's ProductReader.
type Products struct {
	s *Store
}

func (r *Products) Create(ctx context.Context, p catalog.Product) (catalog.Product, error) {
	if err := ctx.Err(); err != nil {
		return catalog.Product{}, err
	}

	if p.ID == "" {
		p.ID = r.s.newID()
	}
	now := r.s.now().UTC()
	p.CreatedAt, p.UpdatedAt = now, now

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.products[p.ID]; ok {
		return catalog.Product{}, fmt.Errorf("product %s: %w", p.ID, apperr.ErrConflict)
	}
	r.s.products[p.ID] = p
	r.s.productOrder = append(r.s.productOrder, p.ID)
	return p, nil
}

func (r *Products) Get(ctx context.Context, id string) (catalog.Product, error) {
	if err := ctx.Err(); err != nil {
		return catalog.Product{}, err
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.products[id]
	if !ok {
		return catalog.Product{}, apperr.NotFound("product", id)
	}
	return p, nil
}

func (r *Products) List(ctx context.Context, filter catalog.Filter) ([]catalog.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]catalog.Product, 0, len(r.s.productOrder))
	for _, id := range r.s.productOrder {
		if p := r.s.products[id]; filter.Matches(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

// Delete removes a product. Carts keep referencing it; their lines show no
// product and checkout fails with NotFound.
func (r *Products) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l := r.s.productLock(id)
	l.Lock()
	defer l.Unlock()

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.products[id]; !ok {
		return apperr.NotFound("product", id)
	}
	delete(r.s.products, id)
	for i, pid := range r.s.productOrder {
		if pid == id {
			r.s.productOrder = append(r.s.productOrder[:i], r.s.productOrder[i+1:]...)
			break
		}
	}
	return nil
}
