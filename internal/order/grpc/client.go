package grpc

import (
	"context"

	"github.com/dwikikusuma/shopfront/pkg/grpcx"
	gogrpc "google.golang.org/grpc"
)

type Client struct {
	cc gogrpc.ClientConnInterface
}

func NewClient(cc gogrpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) ListOrders(ctx context.Context, userID string) (*ListOrdersResponse, error) {
	return grpcx.Invoke[ListOrdersResponse](ctx, c.cc, ServiceName, "ListOrders", &ListOrdersRequest{UserId: userID})
}

func (c *Client) GetOrder(ctx context.Context, userID, orderID string) (*GetOrderResponse, error) {
	return grpcx.Invoke[GetOrderResponse](ctx, c.cc, ServiceName, "GetOrder", &GetOrderRequest{UserId: userID, OrderId: orderID})
}
