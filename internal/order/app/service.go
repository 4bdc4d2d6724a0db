package app

import (
	"context"
	"strings"

	"github.com/dwikikusuma/shopfront/internal/order/domain"
	"github.com/dwikikusuma/shopfront/pkg/apperr"
)

type Service struct {
	repo OrderRepo
}

func NewService(repo OrderRepo) *Service {
	return &Service{repo: repo}
}

// ListOrders returns the user's orders, oldest first.
func (s *Service) ListOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperr.Invalid("userId", "is required")
	}
	return s.repo.ListByUser(ctx, userID)
}

// GetOrder returns NotFound for orders that belong to someone else.
func (s *Service) GetOrder(ctx context.Context, userID, orderID string) (domain.Order, error) {
	if strings.TrimSpace(userID) == "" {
		return domain.Order{}, apperr.Invalid("userId", "is required")
	}
	if strings.TrimSpace(orderID) == "" {
		return domain.Order{}, apperr.Invalid("orderId", "is required")
	}

	o, err := s.repo.Get(ctx, orderID)
	if err != nil {
		return domain.Order{}, err
	}
	if o.UserID != userID {
		return domain.Order{}, apperr.NotFound("order", orderID)
	}
	return o, nil
}
