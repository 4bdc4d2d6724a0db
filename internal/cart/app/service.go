package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dwikikusuma/shopfront/internal/cart/domain"
	"github.com/dwikikusuma/shopfront/pkg/apperr"
	"github.com/dwikikusuma/shopfront/pkg/validate"
	"github.com/google/uuid"
)

type Service struct {
	repo     CartRepo
	products ProductReader

	newID func() string
	now   func() time.Time
}

func NewService(repo CartRepo, products ProductReader) *Service {
	return &Service{
		repo:     repo,
		products: products,
		newID:    uuid.NewString,
		now:      time.Now,
	}
}

type AddItemInput struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"min=1,max=10000"`
}

type UpdateQuantityInput struct {
	ItemID   string `json:"itemId" validate:"required"`
	Quantity int    `json:"quantity" validate:"max=10000"`
}

// AddItem puts quantity units of a product into the cart. Stock is checked
// against the requested quantity only; the cumulative amount is checked at
// checkout.
func (s *Service) AddItem(ctx context.Context, userID string, in AddItemInput) (domain.CartItem, error) {
	if err := requireUser(userID); err != nil {
		return domain.CartItem{}, err
	}
	in.ProductID = strings.TrimSpace(in.ProductID)
	if err := validate.Struct(in); err != nil {
		return domain.CartItem{}, err
	}

	product, err := s.products.Get(ctx, in.ProductID)
	if err != nil {
		return domain.CartItem{}, err
	}
	if product.Stock < in.Quantity {
		return domain.CartItem{}, &apperr.StockError{
			ProductID: product.ID,
			Name:      product.Name,
			Requested: in.Quantity,
			Available: product.Stock,
		}
	}

	var added domain.CartItem
	_, err = s.repo.UpdateOrCreate(ctx, userID, func(c *domain.Cart) error {
		if c.QuantityOf(product.ID)+in.Quantity > domain.MaxQuantity {
			return apperr.Invalid("quantity", fmt.Sprintf("must be at most %d per product in total", domain.MaxQuantity))
		}
		added = c.Add(s.newID(), product.ID, in.Quantity, s.now())
		return nil
	})
	if err != nil {
		return domain.CartItem{}, err
	}
	return added, nil
}

// UpdateQuantity sets an item's quantity; a quantity <= 0 removes the item.
func (s *Service) UpdateQuantity(ctx context.Context, userID string, in UpdateQuantityInput) (domain.Cart, error) {
	if err := requireUser(userID); err != nil {
		return domain.Cart{}, err
	}
	if err := validate.Struct(in); err != nil {
		return domain.Cart{}, err
	}

	return s.repo.Update(ctx, userID, func(c *domain.Cart) error {
		return c.SetQuantity(in.ItemID, in.Quantity, s.now())
	})
}

// RemoveItem is idempotent for items; only a missing cart is an error.
func (s *Service) RemoveItem(ctx context.Context, userID, itemID string) (domain.Cart, error) {
	if err := requireUser(userID); err != nil {
		return domain.Cart{}, err
	}

	return s.repo.Update(ctx, userID, func(c *domain.Cart) error {
		c.Remove(itemID, s.now())
		return nil
	})
}

// GetCart returns the items with live product snapshots. A user without a
// cart gets an empty one.
func (s *Service) GetCart(ctx context.Context, userID string) (domain.View, error) {
	if err := requireUser(userID); err != nil {
		return domain.View{}, err
	}

	view := domain.View{UserID: userID, Items: []domain.Line{}}

	cart, err := s.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return view, nil
		}
		return domain.View{}, err
	}

	for _, it := range cart.Items {
		line := domain.Line{CartItem: it}
		p, err := s.products.Get(ctx, it.ProductID)
		switch {
		case err == nil:
			line.Product = &p
		case !errors.Is(err, apperr.ErrNotFound):
			return domain.View{}, err
		}
		view.Items = append(view.Items, line)
	}
	return view, nil
}

func (s *Service) ClearCart(ctx context.Context, userID string) error {
	if err := requireUser(userID); err != nil {
		return err
	}
	_, err := s.repo.UpdateOrCreate(ctx, userID, func(c *domain.Cart) error {
		c.Clear(s.now())
		return nil
	})
	return err
}

// CreateCart makes sure the user has a cart. Existing carts are left as they are.
func (s *Service) CreateCart(ctx context.Context, userID string) (domain.Cart, error) {
	if err := requireUser(userID); err != nil {
		return domain.Cart{}, err
	}
	return s.repo.Create(ctx, userID)
}

func requireUser(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return apperr.Invalid("userId", "is required")
	}
	return nil
}
