package httpapi

import (
	"time"

	checkout "github.com/dwikikusuma/shopfront/internal/checkout/domain"
	order "github.com/dwikikusuma/shopfront/internal/order/domain"
	"github.com/dwikikusuma/shopfront/pkg/money"
	"github.com/shopspring/decimal"
)

// amount is a computed total rendered with a fixed number of fraction digits.
// Quoting follows decimal.MarshalJSONWithoutQuotes like every other decimal
// in a response.
type amount struct {
	d     decimal.Decimal
	scale int32
}

func (a amount) MarshalJSON() ([]byte, error) {
	s := a.d.StringFixed(a.scale)
	if decimal.MarshalJSONWithoutQuotes {
		return []byte(s), nil
	}
	return []byte(`"` + s + `"`), nil
}

type moneyResponse struct {
	Currency string `json:"currency"`
	Amount   amount `json:"amount"`
}

type orderItemResponse struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"productName"`
	UnitPrice decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	LineTotal amount          `json:"total"`
}

type orderResponse struct {
	ID              string              `json:"id"`
	UserID          string              `json:"userId"`
	Items           []orderItemResponse `json:"items"`
	Total           amount              `json:"total"`
	Currency        string              `json:"currency"`
	ShippingAddress string              `json:"shippingAddress"`
	PaymentMethod   string              `json:"paymentMethod"`
	Status          order.Status        `json:"status"`
	CreatedAt       time.Time           `json:"createdAt"`
}

type quoteLineResponse struct {
	ProductID string        `json:"productId"`
	Name      string        `json:"name"`
	Quantity  int           `json:"quantity"`
	UnitPrice money.Money   `json:"unitPrice"`
	LineTotal moneyResponse `json:"lineTotal"`
}

type quoteResponse struct {
	Lines []quoteLineResponse `json:"lines"`
	Total moneyResponse       `json:"total"`
}

// scaleFor is the configured scale, or the currency's minor unit when none
// is configured.
func (h *handler) scaleFor(currency string) int32 {
	if h.scale > 0 {
		return h.scale
	}
	return money.MinorUnits(currency)
}

func (h *handler) presentOrder(o order.Order) orderResponse {
	scale := h.scaleFor(o.Currency)

	items := make([]orderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			LineTotal: amount{d: it.LineTotal, scale: scale},
		})
	}

	return orderResponse{
		ID:              o.ID,
		UserID:          o.UserID,
		Items:           items,
		Total:           amount{d: o.Total, scale: scale},
		Currency:        o.Currency,
		ShippingAddress: o.ShippingAddress,
		PaymentMethod:   o.PaymentMethod,
		Status:          o.Status,
		CreatedAt:       o.CreatedAt,
	}
}

func (h *handler) presentOrders(orders []order.Order) []orderResponse {
	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, h.presentOrder(o))
	}
	return out
}

func (h *handler) presentMoney(m money.Money) moneyResponse {
	return moneyResponse{Currency: m.Currency, Amount: amount{d: m.Amount, scale: h.scaleFor(m.Currency)}}
}

func (h *handler) presentQuote(q checkout.Quote) quoteResponse {
	lines := make([]quoteLineResponse, 0, len(q.Lines))
	for _, ln := range q.Lines {
		lines = append(lines, quoteLineResponse{
			ProductID: ln.ProductID,
			Name:      ln.Name,
			Quantity:  ln.Quantity,
			UnitPrice: ln.UnitPrice,
			LineTotal: h.presentMoney(ln.LineTotal),
		})
	}
	return quoteResponse{Lines: lines, Total: h.presentMoney(q.Total)}
}
