package domain

import (
	"time"

	catalog "github.com/dwikikusuma/shopfront/internal/catalog/domain"
	"github.com/dwikikusuma/shopfront/pkg/apperr"
)

// MaxQuantity is the most units of one product a cart line may hold.
const MaxQuantity = 10000

type CartItem struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"addedAt"`
}

// Cart holds a user's items in insertion order. Every item has a positive
// quantity.
type Cart struct {
	UserID    string
	Items     []CartItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

func New(userID string, now time.Time) Cart {
	return Cart{UserID: userID, Items: []CartItem{}, CreatedAt: now, UpdatedAt: now}
}

// Add increments the item for productID or appends a new one with id.
func (c *Cart) Add(id, productID string, qty int, now time.Time) CartItem {
	c.UpdatedAt = now
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity += qty
			return c.Items[i]
		}
	}
	item := CartItem{ID: id, ProductID: productID, Quantity: qty, AddedAt: now}
	c.Items = append(c.Items, item)
	return item
}

// SetQuantity sets the quantity of itemID. A quantity <= 0 removes the item.
func (c *Cart) SetQuantity(itemID string, qty int, now time.Time) error {
	idx := c.index(itemID)
	if idx < 0 {
		return apperr.NotFound("cart item", itemID)
	}
	c.UpdatedAt = now
	if qty <= 0 {
		c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
		return nil
	}
	c.Items[idx].Quantity = qty
	return nil
}

// Remove drops itemID if present and reports whether it was.
func (c *Cart) Remove(itemID string, now time.Time) bool {
	idx := c.index(itemID)
	if idx < 0 {
		return false
	}
	c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
	c.UpdatedAt = now
	return true
}

func (c *Cart) Clear(now time.Time) {
	c.Items = []CartItem{}
	c.UpdatedAt = now
}

// QuantityOf returns the units of productID already in the cart.
func (c Cart) QuantityOf(productID string) int {
	for _, it := range c.Items {
		if it.ProductID == productID {
			return it.Quantity
		}
	}
	return 0
}

func (c Cart) IsEmpty() bool { return len(c.Items) == 0 }

// Clone returns a copy that shares no item storage with c.
func (c Cart) Clone() Cart {
	out := c
	out.Items = make([]CartItem, len(c.Items))
	copy(out.Items, c.Items)
	return out
}

func (c Cart) index(itemID string) int {
	for i, it := range c.Items {
		if it.ID == itemID {
			return i
		}
	}
	return -1
}

// Line pairs a cart item with the current state of its product. Product is nil
// when the product no longer exists.
type Line struct {
	CartItem
	Product *catalog.Product `json:"product"`
}

type View struct {
	UserID string `json:"userId"`
	Items  []Line `json:"items"`
}
