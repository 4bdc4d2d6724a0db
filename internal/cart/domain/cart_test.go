package domain

import (
	"testing"
	"time"

	"github.com/dwikikusuma/shopfront/pkg/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func TestAddIncrementsExistingProduct(t *testing.T) {
	c := New("u1", now)
	first := c.Add("i1", "p1", 2, now)
	second := c.Add("i2", "p1", 3, now)

	require.Len(t, c.Items, 1)
	assert.Equal(t, "i1", second.ID)
	assert.Equal(t, 5, c.Items[0].Quantity)
	assert.Equal(t, first.ID, c.Items[0].ID)
}

func TestAddKeepsInsertionOrder(t *testing.T) {
	c := New("u1", now)
	c.Add("i1", "p2", 1, now)
	c.Add("i2", "p1", 1, now)
	c.Add("i3", "p3", 1, now)

	ids := []string{c.Items[0].ProductID, c.Items[1].ProductID, c.Items[2].ProductID}
	assert.Equal(t, []string{"p2", "p1", "p3"}, ids)
}

func TestSetQuantity(t *testing.T) {
	t.Run("positive sets", func(t *testing.T) {
		c := New("u1", now)
		c.Add("i1", "p1", 1, now)
		require.NoError(t, c.SetQuantity("i1", 7, now))
		assert.Equal(t, 7, c.Items[0].Quantity)
	})

	t.Run("zero removes", func(t *testing.T) {
		c := New("u1", now)
		c.Add("i1", "p1", 1, now)
		c.Add("i2", "p2", 1, now)
		require.NoError(t, c.SetQuantity("i1", 0, now))
		require.Len(t, c.Items, 1)
		assert.Equal(t, "i2", c.Items[0].ID)
	})

	t.Run("negative removes", func(t *testing.T) {
		c := New("u1", now)
		c.Add("i1", "p1", 1, now)
		require.NoError(t, c.SetQuantity("i1", -4, now))
		assert.True(t, c.IsEmpty())
	})

	t.Run("unknown item -> not found", func(t *testing.T) {
		c := New("u1", now)
		err := c.SetQuantity("nope", 1, now)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}

func TestRemoveIsIdempotent(t *testing.T) {
	c := New("u1", now)
	c.Add("i1", "p1", 1, now)

	assert.True(t, c.Remove("i1", now))
	assert.False(t, c.Remove("i1", now))
	assert.True(t, c.IsEmpty())
}

func TestCloneDoesNotAlias(t *testing.T) {
	c := New("u1", now)
	c.Add("i1", "p1", 1, now)

	cp := c.Clone()
	cp.Items[0].Quantity = 99
	assert.Equal(t, 1, c.Items[0].Quantity)
}
