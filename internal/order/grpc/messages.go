package grpc

type OrderItem struct {
	ProductId string `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice string `json:"unit_price"`
	Quantity  int32  `json:"quantity"`
	LineTotal string `json:"line_total"`
}

type Order struct {
	Id              string       `json:"id"`
	UserId          string       `json:"user_id"`
	Items           []*OrderItem `json:"items"`
	Total           string       `json:"total"`
	Currency        string       `json:"currency"`
	ShippingAddress string       `json:"shipping_address"`
	PaymentMethod   string       `json:"payment_method"`
	Status          string       `json:"status"`
	CreatedAtUnix   int64        `json:"created_at_unix"`
}

type ListOrdersRequest struct {
	UserId string `json:"user_id"`
}

type ListOrdersResponse struct {
	Orders []*Order `json:"orders"`
}

type GetOrderRequest struct {
	UserId  string `json:"user_id"`
	OrderId string `json:"order_id"`
}

type GetOrderResponse struct {
	Order *Order `json:"order"`
}
