package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

// StatusPending is the only state an order is created in. Later transitions
// belong to fulfilment.
const StatusPending Status = "pending"

// Order is immutable once placed. Prices are snapshots taken at checkout.
type Order struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	Items           []OrderItem     `json:"items"`
	Total           decimal.Decimal `json:"total"`
	Currency        string          `json:"currency"`
	ShippingAddress string          `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
	Status          Status          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
}

type OrderItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"productName"`
	UnitPrice decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"total"`
}

// Verify checks that every line total is its unit price times quantity at the
// given scale and that the lines add up to the order total.
func (o Order) Verify(scale int32) error {
	if len(o.Items) == 0 {
		return fmt.Errorf("order %s has no items", o.ID)
	}

	sum := decimal.Zero
	for i, it := range o.Items {
		if it.Quantity <= 0 {
			return fmt.Errorf("item %d: quantity must be positive, got %d", i, it.Quantity)
		}
		if it.UnitPrice.IsNegative() {
			return fmt.Errorf("item %d: unit price cannot be negative, got %s", i, it.UnitPrice)
		}
		expected := it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))).Round(scale)
		if !it.LineTotal.Equal(expected) {
			return fmt.Errorf("item %d: line total mismatch, got %s want %s", i, it.LineTotal, expected)
		}
		sum = sum.Add(it.LineTotal)
	}

	if !sum.Equal(o.Total) {
		return fmt.Errorf("order total mismatch, got %s want %s", o.Total, sum)
	}
	return nil
}

// Clone returns a copy that shares no item storage with o.
func (o Order) Clone() Order {
	out := o
	out.Items = make([]OrderItem, len(o.Items))
	copy(out.Items, o.Items)
	return out
}
