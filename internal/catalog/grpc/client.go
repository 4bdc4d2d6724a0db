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

func (c *Client) ListProducts(ctx context.Context, req *ListProductsRequest) (*ListProductsResponse, error) {
	return grpcx.Invoke[ListProductsResponse](ctx, c.cc, ServiceName, "ListProducts", req)
}

func (c *Client) GetProduct(ctx context.Context, id string) (*GetProductResponse, error) {
	return grpcx.Invoke[GetProductResponse](ctx, c.cc, ServiceName, "GetProduct", &GetProductRequest{Id: id})
}

func (c *Client) ListCategories(ctx context.Context) (*ListCategoriesResponse, error) {
	return grpcx.Invoke[ListCategoriesResponse](ctx, c.cc, ServiceName, "ListCategories", &ListCategoriesRequest{})
}
