package grpc

import ogrpc "github.com/dwikikusuma/shopfront/internal/order/grpc"

type Money struct {
	Currency string `json:"currency"`
	Amount   string `json:"amount"`
}

type QuoteRequest struct {
	UserId string `json:"user_id"`
}

func (r *QuoteRequest) GetUserId() string {
	if r == nil {
		return ""
	}
	return r.UserId
}

type QuoteLine struct {
	ProductId string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int32  `json:"quantity"`
	UnitPrice *Money `json:"unit_price"`
	LineTotal *Money `json:"line_total"`
}

type QuoteResponse struct {
	Lines []*QuoteLine `json:"lines"`
	Total *Money       `json:"total"`
}

type PlaceOrderRequest struct {
	UserId          string `json:"user_id"`
	ShippingAddress string `json:"shipping_address,omitempty"`
	PaymentMethod   string `json:"payment_method,omitempty"`
}

type PlaceOrderResponse struct {
	Order *ogrpc.Order `json:"order"`
}
