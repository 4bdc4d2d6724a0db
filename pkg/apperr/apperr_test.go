package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"nil", nil, codes.OK},
		{"validation", Invalid("quantity", "must be positive"), codes.InvalidArgument},
		{"not found", NotFound("product", "42"), codes.NotFound},
		{"wrapped not found", fmt.Errorf("load cart: %w", NotFound("cart", "u1")), codes.NotFound},
		{"stock", &StockError{ProductID: "c", Requested: 100, Available: 5}, codes.FailedPrecondition},
		{"empty cart", ErrEmptyCart, codes.FailedPrecondition},
		{"conflict", fmt.Errorf("user a@b.c: %w", ErrConflict), codes.AlreadyExists},
		{"unauthenticated", ErrUnauthenticated, codes.Unauthenticated},
		{"grpc status", status.Error(codes.Unavailable, "down"), codes.Unavailable},
		{"plain", errors.New("boom"), codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Code(tt.err))
		})
	}
}

func TestStockErrorMessage(t *testing.T) {
	err := &StockError{ProductID: "c", Name: "Product C", Requested: 100, Available: 5}

	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Contains(t, err.Error(), "Product C")
	assert.Contains(t, err.Error(), "available 5")
}

func TestToStatusHidesInternalMessages(t *testing.T) {
	st, _ := status.FromError(ToStatus(errors.New("db password leaked")))
	assert.Equal(t, codes.Internal, st.Code())
	assert.Equal(t, "internal error", st.Message())

	st, _ = status.FromError(ToStatus(NotFound("order", "o-1")))
	assert.Equal(t, codes.NotFound, st.Code())
	assert.Equal(t, "order o-1 not found", st.Message())

	assert.NoError(t, ToStatus(nil))
}
