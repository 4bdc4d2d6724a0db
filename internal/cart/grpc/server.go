package grpc

import (
	"context"

	"github.com/dwikikusuma/shopfront/internal/cart/app"
	"github.com/dwikikusuma/shopfront/internal/cart/domain"
	cgrpc "github.com/dwikikusuma/shopfront/internal/catalog/grpc"
	"github.com/dwikikusuma/shopfront/pkg/apperr"
	"github.com/dwikikusuma/shopfront/pkg/grpcx"
	gogrpc "google.golang.org/grpc"
)

const ServiceName = "shop.cart.v1.CartService"

type CartServer interface {
	GetCart(context.Context, *UserId) (*Cart, error)
	AddItem(context.Context, *AddItemRequest) (*AddItemResponse, error)
	UpdateQuantity(context.Context, *UpdateQuantityRequest) (*Cart, error)
	RemoveItem(context.Context, *RemoveItemRequest) (*Cart, error)
	ClearCart(context.Context, *UserId) (*ClearCartResponse, error)
}

var ServiceDesc = gogrpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CartServer)(nil),
	Methods: []gogrpc.MethodDesc{
		grpcx.Unary(ServiceName, "GetCart", CartServer.GetCart),
		grpcx.Unary(ServiceName, "AddItem", CartServer.AddItem),
		grpcx.Unary(ServiceName, "UpdateQuantity", CartServer.UpdateQuantity),
		grpcx.Unary(ServiceName, "RemoveItem", CartServer.RemoveItem),
		grpcx.Unary(ServiceName, "ClearCart", CartServer.ClearCart),
	},
	Metadata: "shop/cart/v1/cart.proto",
}

func Register(s gogrpc.ServiceRegistrar, srv CartServer) {
	s.RegisterService(&ServiceDesc, srv)
}

type Server struct {
	svc *app.Service
}

func NewServer(svc *app.Service) *Server {
	return &Server{svc: svc}
}

func (s *Server) GetCart(ctx context.Context, req *UserId) (*Cart, error) {
	view, err := s.svc.GetCart(ctx, req.Id)
	if err != nil {
		return nil, apperr.ToStatus(err)
	}
	return toProto(view), nil
}

func (s *Server) AddItem(ctx context.Context, req *AddItemRequest) (*AddItemResponse, error) {
	item, err := s.svc.AddItem(ctx, req.UserId, app.AddItemInput{
		ProductID: req.ProductId,
		Quantity:  int(req.Quantity),
	})
	if err != nil {
		return nil, apperr.ToStatus(err)
	}

	updatedCart, err := s.GetCart(ctx, &UserId{Id: req.UserId})
	if err != nil {
		return nil, err
	}

	return &AddItemResponse{Item: itemToProto(item), Cart: updatedCart}, nil
}

func (s *Server) UpdateQuantity(ctx context.Context, req *UpdateQuantityRequest) (*Cart, error) {
	_, err := s.svc.UpdateQuantity(ctx, req.UserId, app.UpdateQuantityInput{
		ItemID:   req.ItemId,
		Quantity: int(req.Quantity),
	})
	if err != nil {
		return nil, apperr.ToStatus(err)
	}
	return s.GetCart(ctx, &UserId{Id: req.UserId})
}

func (s *Server) RemoveItem(ctx context.Context, req *RemoveItemRequest) (*Cart, error) {
	if _, err := s.svc.RemoveItem(ctx, req.UserId, req.ItemId); err != nil {
		return nil, apperr.ToStatus(err)
	}
	return s.GetCart(ctx, &UserId{Id: req.UserId})
}

func (s *Server) ClearCart(ctx context.Context, req *UserId) (*ClearCartResponse, error) {
	if err := s.svc.ClearCart(ctx, req.Id); err != nil {
		return nil, apperr.ToStatus(err)
	}
	return &ClearCartResponse{}, nil
}

func toProto(view domain.View) *Cart {
	lines := make([]*CartLine, 0, len(view.Items))
	for _, line := range view.Items {
		l := &CartLine{Item: itemToProto(line.CartItem)}
		if line.Product != nil {
			l.Product = cgrpc.ToProto(*line.Product)
		}
		lines = append(lines, l)
	}

	return &Cart{
		UserId: view.UserID,
		Lines:  lines,
	}
}

func itemToProto(it domain.CartItem) *CartItem {
	return &CartItem{
		Id:          it.ID,
		ProductId:   it.ProductID,
		Quantity:    int32(it.Quantity),
		AddedAtUnix: it.AddedAt.Unix(),
	}
}
