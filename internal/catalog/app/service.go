package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/dwikikusuma/shopfront/internal/catalog/domain"
	"github.com/dwikikusuma/shopfront/pkg/apperr"
	"github.com/dwikikusuma/shopfront/pkg/validate"
	"github.com/shopspring/decimal"
)

type Service struct {
	repo ProductRepo
}

func NewService(repo ProductRepo) *Service {
	return &Service{
		repo: repo,
	}
}

type NewProduct struct {
	ID          string          `json:"id"`
	Name        string          `json:"name" validate:"required,max=200"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock" validate:"gte=0,lte=2147483647"`
	Category    string          `json:"category" validate:"required"`
	Rating      float64         `json:"rating" validate:"gte=0,lte=5"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
}

func (s *Service) CreateProduct(ctx context.Context, in NewProduct) (domain.Product, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)

	if err := validate.Struct(in); err != nil {
		return domain.Product{}, err
	}
	if in.Price.IsNegative() {
		return domain.Product{}, apperr.Invalid("price", "must not be negative")
	}

	p := domain.Product{
		ID:          strings.TrimSpace(in.ID),
		Name:        in.Name,
		Price:       in.Price,
		Stock:       in.Stock,
		Category:    in.Category,
		Rating:      in.Rating,
		Description: in.Description,
		Image:       in.Image,
	}

	product, err := s.repo.Create(ctx, p)
	if err != nil {
		return domain.Product{}, fmt.Errorf("create product %q: %w", p.Name, err)
	}

	return product, nil
}

func (s *Service) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Product{}, apperr.Invalid("id", "is required")
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) ListProducts(ctx context.Context, filter domain.Filter) ([]domain.Product, error) {
	if filter.MinPrice != nil && filter.MaxPrice != nil && filter.MinPrice.GreaterThan(*filter.MaxPrice) {
		return nil, apperr.Invalid("minPrice", "must not exceed maxPrice")
	}
	return s.repo.List(ctx, filter)
}

// Categories returns the distinct categories in the order they first appear.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	products, err := s.repo.List(ctx, domain.Filter{})
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out, nil
}

func (s *Service) Search(ctx context.Context, q string) ([]domain.Product, error) {
	if strings.TrimSpace(q) == "" {
		return nil, apperr.Invalid("q", "is required")
	}

	products, err := s.repo.List(ctx, domain.Filter{})
	if err != nil {
		return nil, err
	}

	out := make([]domain.Product, 0)
	for _, p := range products {
		if p.MatchesQuery(q) {
			out = append(out, p)
		}
	}
	return out, nil
}

// Seed creates products only when the catalog is empty. It reports how many
// were created.
func (s *Service) Seed(ctx context.Context, products []NewProduct) (int, error) {
	existing, err := s.repo.List(ctx, domain.Filter{})
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	for i, p := range products {
		if _, err := s.CreateProduct(ctx, p); err != nil {
			return i, fmt.Errorf("seed product %d: %w", i, err)
		}
	}
	return len(products), nil
}
