package grpc

import (
	"context"

	"github.com/dwikikusuma/shopfront/internal/catalog/app"
	"github.com/dwikikusuma/shopfront/internal/catalog/domain"
	"github.com/dwikikusuma/shopfront/pkg/apperr"
	"github.com/dwikikusuma/shopfront/pkg/grpcx"
	"github.com/shopspring/decimal"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "shop.catalog.v1.CatalogService"

type CatalogServer interface {
	ListProducts(context.Context, *ListProductsRequest) (*ListProductsResponse, error)
	GetProduct(context.Context, *GetProductRequest) (*GetProductResponse, error)
	ListCategories(context.Context, *ListCategoriesRequest) (*ListCategoriesResponse, error)
}

var ServiceDesc = gogrpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CatalogServer)(nil),
	Methods: []gogrpc.MethodDesc{
		grpcx.Unary(ServiceName, "ListProducts", CatalogServer.ListProducts),
		grpcx.Unary(ServiceName, "GetProduct", CatalogServer.GetProduct),
		grpcx.Unary(ServiceName, "ListCategories", CatalogServer.ListCategories),
	},
	Metadata: "shop/catalog/v1/catalog.proto",
}

func Register(s gogrpc.ServiceRegistrar, srv CatalogServer) {
	s.RegisterService(&ServiceDesc, srv)
}

type Server struct {
	svc *app.Service
}

func NewServer(svc *app.Service) *Server {
	return &Server{svc: svc}
}

func (s *Server) GetProduct(ctx context.Context, req *GetProductRequest) (*GetProductResponse, error) {
	p, err := s.svc.GetProduct(ctx, req.GetId())
	if err != nil {
		return nil, apperr.ToStatus(err)
	}
	return &GetProductResponse{Product: ToProto(p)}, nil
}

func (s *Server) ListProducts(ctx context.Context, req *ListProductsRequest) (*ListProductsResponse, error) {
	filter := domain.Filter{Category: req.Category, Search: req.Search}

	var err error
	if filter.MinPrice, err = parsePrice("min_price", req.MinPrice); err != nil {
		return nil, err
	}
	if filter.MaxPrice, err = parsePrice("max_price", req.MaxPrice); err != nil {
		return nil, err
	}

	products, err := s.svc.ListProducts(ctx, filter)
	if err != nil {
		return nil, apperr.ToStatus(err)
	}

	out := make([]*Product, 0, len(products))
	for _, p := range products {
		out = append(out, ToProto(p))
	}

	return &ListProductsResponse{Products: out}, nil
}

func (s *Server) ListCategories(ctx context.Context, _ *ListCategoriesRequest) (*ListCategoriesResponse, error) {
	cats, err := s.svc.Categories(ctx)
	if err != nil {
		return nil, apperr.ToStatus(err)
	}
	return &ListCategoriesResponse{Categories: cats}, nil
}

func parsePrice(field, v string) (*decimal.Decimal, error) {
	if v == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%s: %q is not a number", field, v)
	}
	return &d, nil
}

// ToProto converts a product for the wire. Other services embed it.
func ToProto(p domain.Product) *Product {
	return &Product{
		Id:            p.ID,
		Name:          p.Name,
		Price:         p.Price.String(),
		Stock:         int32(p.Stock),
		Category:      p.Category,
		Rating:        p.Rating,
		Description:   p.Description,
		Image:         p.Image,
		CreatedAtUnix: p.CreatedAt.Unix(),
		UpdatedAtUnix: p.UpdatedAt.Unix(),
	}
}
