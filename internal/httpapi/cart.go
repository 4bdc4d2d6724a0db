package httpapi

import (
	"net/http"

	cartapp "github.com/dwikikusuma/shopfront/internal/cart/app"
	"github.com/dwikikusuma/shopfront/pkg/apperr"
	"github.com/gin-gonic/gin"
)

var errQuantityRequired = apperr.Invalid("quantity", "is required")

type addToCartRequest struct {
	ProductID string `json:"productId"`
	Quantity  *int   `json:"quantity"`
}

type updateCartRequest struct {
	Quantity *int `json:"quantity"`
}

func (h *handler) getCart(c *gin.Context) {
	view, err := h.cart.GetCart(c.Request.Context(), userID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *handler) addToCart(c *gin.Context) {
	var req addToCartRequest
	if !bindJSON(c, &req) {
		return
	}

	in := cartapp.AddItemInput{ProductID: req.ProductID, Quantity: 1}
	if req.Quantity != nil {
		in.Quantity = *req.Quantity
	}

	ctx := c.Request.Context()
	item, err := h.cart.AddItem(ctx, userID(c), in)
	if err != nil {
		writeError(c, err)
		return
	}

	view, err := h.cart.GetCart(ctx, userID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart",
		"item":    item,
		"cart":    view,
	})
}

func (h *handler) updateCartItem(c *gin.Context) {
	var req updateCartRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Quantity == nil {
		writeError(c, errQuantityRequired)
		return
	}

	ctx := c.Request.Context()
	_, err := h.cart.UpdateQuantity(ctx, userID(c), cartapp.UpdateQuantityInput{
		ItemID:   c.Param("itemId"),
		Quantity: *req.Quantity,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	h.respondCart(c, "Cart updated")
}

func (h *handler) removeCartItem(c *gin.Context) {
	if _, err := h.cart.RemoveItem(c.Request.Context(), userID(c), c.Param("itemId")); err != nil {
		writeError(c, err)
		return
	}
	h.respondCart(c, "Item removed from cart")
}

func (h *handler) clearCart(c *gin.Context) {
	if err := h.cart.ClearCart(c.Request.Context(), userID(c)); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}

func (h *handler) quote(c *gin.Context) {
	q, err := h.checkout.Quote(c.Request.Context(), userID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.presentQuote(q))
}

func (h *handler) respondCart(c *gin.Context, msg string) {
	view, err := h.cart.GetCart(c.Request.Context(), userID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg, "cart": view})
}
