package app_test

import (
	"context"
	"testing"

	"github.com/dwikikusuma/shopfront/internal/cart/app"
	"github.com/dwikikusuma/shopfront/internal/cart/domain"
	catalog "github.com/dwikikusuma/shopfront/internal/catalog/domain"
	"github.com/dwikikusuma/shopfront/pkg/apperr"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(t *testing.T) (*app.Service, func(id string) error) {
	t.Helper()
	svc, store := newTestService(t,
		catalog.Product{ID: "a", Name: "Alpha", Price: decimal.NewFromInt(10), Stock: 5},
		catalog.Product{ID: "b", Name: "Beta", Price: decimal.NewFromInt(25), Stock: 1},
	)
	return svc, func(id string) error { return store.Products().Delete(context.Background(), id) }
}

func TestAddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown product -> not found", func(t *testing.T) {
		svc, _ := seeded(t)
		_, err := svc.AddItem(ctx, "u1", app.AddItemInput{ProductID: "zzz", Quantity: 1})
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("more than stock -> insufficient stock", func(t *testing.T) {
		svc, _ := seeded(t)
		_, err := svc.AddItem(ctx, "u1", app.AddItemInput{ProductID: "b", Quantity: 2})
		assert.ErrorIs(t, err, apperr.ErrInsufficientStock)
	})

	t.Run("non-positive quantity -> invalid", func(t *testing.T) {
		svc, _ := seeded(t)
		_, err := svc.AddItem(ctx, "u1", app.AddItemInput{ProductID: "a", Quantity: 0})
		assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	})

	t.Run("missing user -> invalid", func(t *testing.T) {
		svc, _ := seeded(t)
		_, err := svc.AddItem(ctx, " ", app.AddItemInput{ProductID: "a", Quantity: 1})
		assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	})

	t.Run("repeated adds sum without cumulative stock check", func(t *testing.T) {
		svc, _ := seeded(t)
		first, err := svc.AddItem(ctx, "u1", app.AddItemInput{ProductID: "b", Quantity: 1})
		require.NoError(t, err)
		second, err := svc.AddItem(ctx, "u1", app.AddItemInput{ProductID: "b", Quantity: 1})
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, 2, second.Quantity)

		view, err := svc.GetCart(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, view.Items, 1)
		assert.Equal(t, 2, view.Items[0].Quantity)
	})
}

func TestGetCart(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown user -> empty cart", func(t *testing.T) {
		svc, _ := seeded(t)
		view, err := svc.GetCart(ctx, "nobody")
		require.NoError(t, err)
		assert.Empty(t, view.Items)
		assert.NotNil(t, view.Items)
	})

	t.Run("insertion order with live products", func(t *testing.T) {
		svc, del := seeded(t)
		_, err := svc.AddItem(ctx, "u1", app.AddItemInput{ProductID: "b", Quantity: 1})
		require.NoError(t, err)
		_, err = svc.AddItem(ctx, "u1", app.AddItemInput{ProductID: "a", Quantity: 2})
		require.NoError(t, err)
		require.NoError(t, del("b"))

		view, err := svc.GetCart(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, view.Items, 2)
		assert.Equal(t, "b", view.Items[0].ProductID)
		assert.Nil(t, view.Items[0].Product)
		require.NotNil(t, view.Items[1].Product)
		assert.Equal(t, "Alpha", view.Items[1].Product.Name)
	})
}

func TestUpdateQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("zero removes the item", func(t *testing.T) {
		svc, _ := seeded(t)
		item, err := svc.AddItem(ctx, "u1", app.AddItemInput{ProductID: "a", Quantity: 2})
		require.NoError(t, err)

		_, err = svc.UpdateQuantity(ctx, "u1", app.UpdateQuantityInput{ItemID: item.ID, Quantity: 0})
		require.NoError(t, err)

		view, err := svc.GetCart(ctx, "u1")
		require.NoError(t, err)
		assert.Empty(t, view.Items)
	})

	t.Run("sets quantity", func(t *testing.T) {
		svc, _ := seeded(t)
		item, err := svc.AddItem(ctx, "u1", app.AddItemInput{ProductID: "a", Quantity: 2})
		require.NoError(t, err)

		c, err := svc.UpdateQuantity(ctx, "u1", app.UpdateQuantityInput{ItemID: item.ID, Quantity: 9})
		require.NoError(t, err)
		assert.Equal(t, 9, c.Items[0].Quantity)
	})

	t.Run("missing cart -> not found", func(t *testing.T) {
		svc, _ := seeded(t)
		_, err := svc.UpdateQuantity(ctx, "nobody", app.UpdateQuantityInput{ItemID: "x", Quantity: 1})
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("missing item -> not found", func(t *testing.T) {
		svc, _ := seeded(t)
		_, err := svc.CreateCart(ctx, "u1")
		require.NoError(t, err)
		_, err = svc.UpdateQuantity(ctx, "u1", app.UpdateQuantityInput{ItemID: "x", Quantity: 1})
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}

func TestRemoveItem(t *testing.T) {
	ctx := context.Background()
	svc, _ := seeded(t)

	_, err := svc.RemoveItem(ctx, "nobody", "x")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	item, err := svc.AddItem(ctx, "u1", app.AddItemInput{ProductID: "a", Quantity: 1})
	require.NoError(t, err)

	c, err := svc.RemoveItem(ctx, "u1", item.ID)
	require.NoError(t, err)
	assert.Empty(t, c.Items)

	_, err = svc.RemoveItem(ctx, "u1", item.ID)
	assert.NoError(t, err, "removing twice is not an error")
}

func TestClearCart(t *testing.T) {
	ctx := context.Background()
	svc, _ := seeded(t)

	_, err := svc.AddItem(ctx, "u1", app.AddItemInput{ProductID: "a", Quantity: 1})
	require.NoError(t, err)
	require.NoError(t, svc.ClearCart(ctx, "u1"))
	require.NoError(t, svc.ClearCart(ctx, "fresh-user"))

	view, err := svc.GetCart(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, view.Items)
}

func TestQuantityLimit(t *testing.T) {
	ctx := context.Background()
	bulk := catalog.Product{ID: "bulk", Name: "Bulk", Price: decimal.NewFromInt(1), Stock: 50000}

	t.Run("update beyond limit -> invalid, cart unchanged", func(t *testing.T) {
		svc, _ := newTestService(t, bulk)
		item, err := svc.AddItem(ctx, "u1", app.AddItemInput{ProductID: "bulk", Quantity: 3})
		require.NoError(t, err)

		_, err = svc.UpdateQuantity(ctx, "u1", app.UpdateQuantityInput{ItemID: item.ID, Quantity: 1<<32 + 3})
		assert.ErrorIs(t, err, apperr.ErrInvalidInput)

		view, err := svc.GetCart(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, view.Items, 1)
		assert.Equal(t, 3, view.Items[0].Quantity)
	})

	t.Run("update to exactly the limit", func(t *testing.T) {
		svc, _ := newTestService(t, bulk)
		item, err := svc.AddItem(ctx, "u1", app.AddItemInput{ProductID: "bulk", Quantity: 1})
		require.NoError(t, err)

		c, err := svc.UpdateQuantity(ctx, "u1", app.UpdateQuantityInput{ItemID: item.ID, Quantity: domain.MaxQuantity})
		require.NoError(t, err)
		assert.Equal(t, domain.MaxQuantity, c.Items[0].Quantity)
	})

	t.Run("single add beyond limit -> invalid", func(t *testing.T) {
		svc, _ := newTestService(t, bulk)
		_, err := svc.AddItem(ctx, "u1", app.AddItemInput{ProductID: "bulk", Quantity: domain.MaxQuantity + 1})
		assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	})

	t.Run("repeated adds cannot pass the limit", func(t *testing.T) {
		svc, _ := newTestService(t, bulk)
		_, err := svc.AddItem(ctx, "u1", app.AddItemInput{ProductID: "bulk", Quantity: domain.MaxQuantity})
		require.NoError(t, err)

		_, err = svc.AddItem(ctx, "u1", app.AddItemInput{ProductID: "bulk", Quantity: 1})
		assert.ErrorIs(t, err, apperr.ErrInvalidInput)

		view, err := svc.GetCart(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, domain.MaxQuantity, view.Items[0].Quantity)
	})
}
