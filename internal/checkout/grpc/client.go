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

func (c *Client) Quote(ctx context.Context, userID string) (*QuoteResponse, error) {
	return grpcx.Invoke[QuoteResponse](ctx, c.cc, ServiceName, "Quote", &QuoteRequest{UserId: userID})
}

func (c *Client) PlaceOrder(ctx context.Context, req *PlaceOrderRequest) (*PlaceOrderResponse, error) {
	return grpcx.Invoke[PlaceOrderResponse](ctx, c.cc, ServiceName, "PlaceOrder", req)
}
