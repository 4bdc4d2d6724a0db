package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	order "github.com/dwikikusuma/shopfront/internal/order/domain"
	"github.com/shopspring/decimal"
)

// Publisher defines an interface for publishing events to a message broker.
type Publisher interface {
	PublishEvent(ctx context.Context, topic string, key string, event any) error
}

// Subscriber defines an interface for subscribing to a message topic.
type Subscriber interface {
	Consume(ctx context.Context, topic string, groupID string, handler func(ctx context.Context, payload []byte) error)
}

// OrderPlaced is emitted once an order has been committed.
type OrderPlaced struct {
	OrderID  string            `json:"orderId"`
	UserID   string            `json:"userId"`
	Items    []OrderPlacedItem `json:"items"`
	Total    decimal.Decimal   `json:"total"`
	Currency string            `json:"currency"`
	PlacedAt time.Time         `json:"placedAt"`
}

type OrderPlacedItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

func NewOrderPlaced(o order.Order) OrderPlaced {
	items := make([]OrderPlacedItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderPlacedItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return OrderPlaced{
		OrderID:  o.ID,
		UserID:   o.UserID,
		Items:    items,
		Total:    o.Total,
		Currency: o.Currency,
		PlacedAt: o.CreatedAt,
	}
}

// LogPublisher writes events to the log. Used when no broker is configured.
type LogPublisher struct {
	log *slog.Logger
}

func NewLogPublisher(log *slog.Logger) *LogPublisher {
	return &LogPublisher{log: log}
}

func (p *LogPublisher) PublishEvent(ctx context.Context, topic string, key string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	p.log.InfoContext(ctx, "event published",
		slog.String("topic", topic),
		slog.String("key", key),
		slog.String("payload", string(payload)),
	)
	return nil
}
