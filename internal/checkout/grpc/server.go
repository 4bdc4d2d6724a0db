package grpc

import (
	"context"

	"github.com/dwikikusuma/shopfront/internal/checkout/app"
	"github.com/dwikikusuma/shopfront/internal/checkout/domain"
	ogrpc "github.com/dwikikusuma/shopfront/internal/order/grpc"
	"github.com/dwikikusuma/shopfront/pkg/apperr"
	"github.com/dwikikusuma/shopfront/pkg/grpcx"
	"github.com/dwikikusuma/shopfront/pkg/money"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "shop.checkout.v1.CheckoutService"

type CheckoutServer interface {
	Quote(context.Context, *QuoteRequest) (*QuoteResponse, error)
	PlaceOrder(context.Context, *PlaceOrderRequest) (*PlaceOrderResponse, error)
}

var ServiceDesc = gogrpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CheckoutServer)(nil),
	Methods: []gogrpc.MethodDesc{
		grpcx.Unary(ServiceName, "Quote", CheckoutServer.Quote),
		grpcx.Unary(ServiceName, "PlaceOrder", CheckoutServer.PlaceOrder),
	},
	Metadata: "shop/checkout/v1/checkout.proto",
}

func Register(s gogrpc.ServiceRegistrar, srv CheckoutServer) {
	s.RegisterService(&ServiceDesc, srv)
}

type Server struct {
	svc   *app.Service
	scale int32
}

func NewServer(svc *app.Service, scale int32) *Server {
	return &Server{svc: svc, scale: scale}
}

func (s *Server) Quote(ctx context.Context, req *QuoteRequest) (*QuoteResponse, error) {
	if req.GetUserId() == "" {
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}

	q, err := s.svc.Quote(ctx, req.UserId)
	if err != nil {
		return nil, apperr.ToStatus(err)
	}

	return s.toProto(q), nil
}

func (s *Server) PlaceOrder(ctx context.Context, req *PlaceOrderRequest) (*PlaceOrderResponse, error) {
	o, err := s.svc.PlaceOrder(ctx, req.UserId, app.PlaceOrderInput{
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
	})
	if err != nil {
		return nil, apperr.ToStatus(err)
	}
	return &PlaceOrderResponse{Order: ogrpc.ToProto(o, s.scale)}, nil
}

func (s *Server) toProto(q domain.Quote) *QuoteResponse {
	lines := make([]*QuoteLine, 0, len(q.Lines))
	for _, ln := range q.Lines {
		lines = append(lines, &QuoteLine{
			ProductId: ln.ProductID,
			Name:      ln.Name,
			Quantity:  int32(ln.Quantity),
			UnitPrice: &Money{Currency: ln.UnitPrice.Currency, Amount: ln.UnitPrice.Amount.String()},
			LineTotal: s.money(ln.LineTotal),
		})
	}

	return &QuoteResponse{
		Lines: lines,
		Total: s.money(q.Total),
	}
}

func (s *Server) money(m money.Money) *Money {
	return &Money{Currency: m.Currency, Amount: m.Amount.StringFixed(s.scale)}
}
