package grpc

import (
	"context"

	"github.com/dwikikusuma/shopfront/internal/order/app"
	"github.com/dwikikusuma/shopfront/internal/order/domain"
	"github.com/dwikikusuma/shopfront/pkg/apperr"
	"github.com/dwikikusuma/shopfront/pkg/grpcx"
	gogrpc "google.golang.org/grpc"
)

const ServiceName = "shop.order.v1.OrderService"

type OrderServer interface {
	ListOrders(context.Context, *ListOrdersRequest) (*ListOrdersResponse, error)
	GetOrder(context.Context, *GetOrderRequest) (*GetOrderResponse, error)
}

var ServiceDesc = gogrpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*OrderServer)(nil),
	Methods: []gogrpc.MethodDesc{
		grpcx.Unary(ServiceName, "ListOrders", OrderServer.ListOrders),
		grpcx.Unary(ServiceName, "GetOrder", OrderServer.GetOrder),
	},
	Metadata: "shop/order/v1/order.proto",
}

func Register(s gogrpc.ServiceRegistrar, srv OrderServer) {
	s.RegisterService(&ServiceDesc, srv)
}

type Server struct {
	svc   *app.Service
	scale int32
}

// NewServer renders line totals and order totals with scale fraction digits.
func NewServer(svc *app.Service, scale int32) *Server {
	return &Server{svc: svc, scale: scale}
}

func (s *Server) ListOrders(ctx context.Context, req *ListOrdersRequest) (*ListOrdersResponse, error) {
	orders, err := s.svc.ListOrders(ctx, req.UserId)
	if err != nil {
		return nil, apperr.ToStatus(err)
	}

	out := make([]*Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, ToProto(o, s.scale))
	}
	return &ListOrdersResponse{Orders: out}, nil
}

func (s *Server) GetOrder(ctx context.Context, req *GetOrderRequest) (*GetOrderResponse, error) {
	o, err := s.svc.GetOrder(ctx, req.UserId, req.OrderId)
	if err != nil {
		return nil, apperr.ToStatus(err)
	}
	return &GetOrderResponse{Order: ToProto(o, s.scale)}, nil
}

// ToProto converts an order for the wire. Checkout returns placed orders in
// the same shape. Computed totals carry exactly scale fraction digits.
func ToProto(o domain.Order, scale int32) *Order {
	items := make([]*OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, &OrderItem{
			ProductId: it.ProductID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice.String(),
			Quantity:  int32(it.Quantity),
			LineTotal: it.LineTotal.StringFixed(scale),
		})
	}

	return &Order{
		Id:              o.ID,
		UserId:          o.UserID,
		Items:           items,
		Total:           o.Total.StringFixed(scale),
		Currency:        o.Currency,
		ShippingAddress: o.ShippingAddress,
		PaymentMethod:   o.PaymentMethod,
		Status:          string(o.Status),
		CreatedAtUnix:   o.CreatedAt.Unix(),
	}
}
