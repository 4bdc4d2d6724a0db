package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dwikikusuma/shopfront/internal/checkout/domain"
	"github.com/dwikikusuma/shopfront/internal/messaging"
	order "github.com/dwikikusuma/shopfront/internal/order/domain"
	"github.com/dwikikusuma/shopfront/pkg/apperr"
	"github.com/dwikikusuma/shopfront/pkg/money"
	"github.com/dwikikusuma/shopfront/pkg/validate"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type Options struct {
	Currency string
	// Scale is the number of fraction digits amounts are rounded to. Zero
	// means the currency's minor unit (see money.MinorUnits).
	Scale int32

	MaxConcurrent          int
	DefaultShippingAddress string
	DefaultPaymentMethod   string
	OrdersTopic            string

	// PublishTimeout bounds how long PlaceOrder waits for the order event
	// after the order is committed.
	PublishTimeout time.Duration
}

type Service struct {
	Cart    CartReader
	Catalog CatalogReader

	uow       UnitOfWork
	publisher messaging.Publisher
	log       *slog.Logger
	opts      Options

	newID func() string
	now   func() time.Time
}

func NewService(cart CartReader, catalog CatalogReader, uow UnitOfWork, publisher messaging.Publisher, log *slog.Logger, opts Options) *Service {
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 10
	}
	if opts.Currency == "" {
		opts.Currency = "USD"
	}
	if opts.Scale <= 0 {
		opts.Scale = money.MinorUnits(opts.Currency)
	}
	if opts.DefaultShippingAddress == "" {
		opts.DefaultShippingAddress = "123 Main St, City, State, ZIP"
	}
	if opts.DefaultPaymentMethod == "" {
		opts.DefaultPaymentMethod = "credit_card"
	}
	if opts.OrdersTopic == "" {
		opts.OrdersTopic = "orders.placed"
	}
	if opts.PublishTimeout <= 0 {
		opts.PublishTimeout = 3 * time.Second
	}

	return &Service{
		Cart:      cart,
		Catalog:   catalog,
		uow:       uow,
		publisher: publisher,
		log:       log,
		opts:      opts,
		newID:     uuid.NewString,
		now:       time.Now,
	}
}

// Quote prices the cart at current catalog prices without touching stock.
func (s *Service) Quote(ctx context.Context, userID string) (domain.Quote, error) {
	if strings.TrimSpace(userID) == "" {
		return domain.Quote{}, apperr.Invalid("userId", "is required")
	}

	items, err := s.Cart.GetCart(ctx, userID)
	if err != nil {
		return domain.Quote{}, err
	}

	if len(items) == 0 {
		return domain.Quote{}, apperr.ErrEmptyCart
	}

	lines := make([]domain.QuoteLine, len(items))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.MaxConcurrent)

	for idx := range items {
		g.Go(func() error {
			it := items[idx]
			if it.Quantity <= 0 {
				return apperr.Invalid("quantity", fmt.Sprintf("must be greater than zero, got %d", it.Quantity))
			}

			product, err := s.Catalog.GetProduct(ctx, it.ProductID)
			if err != nil {
				return fmt.Errorf("failed to get product %s: %w", it.ProductID, err)
			}

			unit := money.New(s.opts.Currency, product.Price)
			lines[idx] = domain.QuoteLine{
				ProductID: product.ID,
				Name:      product.Name,
				Quantity:  it.Quantity,
				UnitPrice: unit,
				LineTotal: unit.Times(it.Quantity).Round(s.opts.Scale),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.Quote{}, err
	}

	totals := make([]money.Money, 0, len(lines))
	for _, line := range lines {
		totals = append(totals, line.LineTotal)
	}

	return domain.Quote{
		Lines: lines,
		Total: money.Sum(s.opts.Currency, totals...),
	}, nil
}

type PlaceOrderInput struct {
	ShippingAddress string `json:"shippingAddress" validate:"max=500"`
	PaymentMethod   string `json:"paymentMethod" validate:"max=50"`
}

// PlaceOrder turns the user's cart into a pending order. Every item is
// validated before stock is touched; on any error stock, cart and ledger stay
// as they were.
func (s *Service) PlaceOrder(ctx context.Context, userID string, in PlaceOrderInput) (order.Order, error) {
	if strings.TrimSpace(userID) == "" {
		return order.Order{}, apperr.Invalid("userId", "is required")
	}
	in.ShippingAddress = strings.TrimSpace(in.ShippingAddress)
	in.PaymentMethod = strings.TrimSpace(in.PaymentMethod)
	if err := validate.Struct(in); err != nil {
		return order.Order{}, err
	}
	if in.ShippingAddress == "" {
		in.ShippingAddress = s.opts.DefaultShippingAddress
	}
	if in.PaymentMethod == "" {
		in.PaymentMethod = s.opts.DefaultPaymentMethod
	}

	var placed order.Order
	err := s.uow.Checkout(ctx, userID, func(tx CheckoutTx) error {
		c := tx.Cart()
		if c.IsEmpty() {
			return apperr.ErrEmptyCart
		}

		// Quantities per product, in first-seen order.
		ids := make([]string, 0, len(c.Items))
		want := make(map[string]int, len(c.Items))
		for _, it := range c.Items {
			if _, ok := want[it.ProductID]; !ok {
				ids = append(ids, it.ProductID)
			}
			want[it.ProductID] += it.Quantity
		}

		items := make([]order.OrderItem, 0, len(c.Items))
		for _, id := range ids {
			p, err := tx.Product(id)
			if err != nil {
				return err
			}
			if p.Stock < want[id] {
				return &apperr.StockError{ProductID: p.ID, Name: p.Name, Requested: want[id], Available: p.Stock}
			}
		}

		totals := make([]money.Money, 0, len(c.Items))
		for _, it := range c.Items {
			p, err := tx.Product(it.ProductID)
			if err != nil {
				return err
			}
			line := money.New(s.opts.Currency, p.Price).Times(it.Quantity).Round(s.opts.Scale)
			totals = append(totals, line)
			items = append(items, order.OrderItem{
				ProductID: p.ID,
				Name:      p.Name,
				UnitPrice: p.Price,
				Quantity:  it.Quantity,
				LineTotal: line.Amount,
			})
		}

		o := order.Order{
			ID:              s.newID(),
			UserID:          userID,
			Items:           items,
			Total:           money.Sum(s.opts.Currency, totals...).Amount,
			Currency:        s.opts.Currency,
			ShippingAddress: in.ShippingAddress,
			PaymentMethod:   in.PaymentMethod,
			Status:          order.StatusPending,
			CreatedAt:       s.now().UTC(),
		}
		if err := o.Verify(s.opts.Scale); err != nil {
			return fmt.Errorf("build order: %w", err)
		}

		for _, id := range ids {
			if err := tx.DecrementStock(id, want[id]); err != nil {
				return err
			}
		}
		if err := tx.AppendOrder(o); err != nil {
			return err
		}
		tx.ClearCart()

		placed = o
		return nil
	})
	if err != nil {
		return order.Order{}, err
	}

	s.log.InfoContext(ctx, "order placed",
		slog.String("order_id", placed.ID),
		slog.String("user_id", userID),
		slog.Int("items", len(placed.Items)),
		slog.String("total", money.New(placed.Currency, placed.Total).Format(s.opts.Scale)),
	)

	// detached from the caller, bounded by PublishTimeout
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.opts.PublishTimeout)
	defer cancel()
	if err := s.publisher.PublishEvent(pubCtx, s.opts.OrdersTopic, placed.ID, messaging.NewOrderPlaced(placed)); err != nil {
		s.log.ErrorContext(ctx, "publish order placed failed",
			slog.String("order_id", placed.ID),
			slog.Any("err", err),
		)
	}

	return placed.Clone(), nil
}
