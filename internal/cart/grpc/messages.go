package grpc

import cgrpc "github.com/dwikikusuma/shopfront/internal/catalog/grpc"

type CartItem struct {
	Id          string `json:"id"`
	ProductId   string `json:"product_id"`
	Quantity    int32  `json:"quantity"`
	AddedAtUnix int64  `json:"added_at_unix"`
}

type CartLine struct {
	Item    *CartItem      `json:"item"`
	Product *cgrpc.Product `json:"product,omitempty"`
}

type Cart struct {
	UserId string      `json:"user_id"`
	Lines  []*CartLine `json:"lines"`
}

type UserId struct {
	Id string `json:"id"`
}

type AddItemRequest struct {
	UserId    string `json:"user_id"`
	ProductId string `json:"product_id"`
	Quantity  int32  `json:"quantity"`
}

type AddItemResponse struct {
	Item *CartItem `json:"item"`
	Cart *Cart     `json:"cart"`
}

type UpdateQuantityRequest struct {
	UserId   string `json:"user_id"`
	ItemId   string `json:"item_id"`
	Quantity int32  `json:"quantity"`
}

type RemoveItemRequest struct {
	UserId string `json:"user_id"`
	ItemId string `json:"item_id"`
}

type ClearCartResponse struct{}
