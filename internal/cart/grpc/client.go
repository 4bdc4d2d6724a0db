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

func (c *Client) GetCart(ctx context.Context, userID string) (*Cart, error) {
	return grpcx.Invoke[Cart](ctx, c.cc, ServiceName, "GetCart", &UserId{Id: userID})
}

func (c *Client) AddItem(ctx context.Context, req *AddItemRequest) (*AddItemResponse, error) {
	return grpcx.Invoke[AddItemResponse](ctx, c.cc, ServiceName, "AddItem", req)
}

func (c *Client) UpdateQuantity(ctx context.Context, req *UpdateQuantityRequest) (*Cart, error) {
	return grpcx.Invoke[Cart](ctx, c.cc, ServiceName, "UpdateQuantity", req)
}

func (c *Client) RemoveItem(ctx context.Context, req *RemoveItemRequest) (*Cart, error) {
	return grpcx.Invoke[Cart](ctx, c.cc, ServiceName, "RemoveItem", req)
}

func (c *Client) ClearCart(ctx context.Context, userID string) error {
	_, err := grpcx.Invoke[ClearCartResponse](ctx, c.cc, ServiceName, "ClearCart", &UserId{Id: userID})
	return err
}
