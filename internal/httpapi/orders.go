package httpapi

import (
	"errors"
	"io"
	"net/http"

	checkoutapp "github.com/dwikikusuma/shopfront/internal/checkout/app"
	"github.com/dwikikusuma/shopfront/pkg/apperr"
	"github.com/gin-gonic/gin"
)

func (h *handler) placeOrder(c *gin.Context) {
	var in checkoutapp.PlaceOrderInput
	// an empty body means "use the defaults"
	if err := c.ShouldBindJSON(&in); err != nil && !errors.Is(err, io.EOF) {
		writeError(c, apperr.Invalid("body", err.Error()))
		return
	}

	o, err := h.checkout.PlaceOrder(c.Request.Context(), userID(c), in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"order":   h.presentOrder(o),
	})
}

func (h *handler) listOrders(c *gin.Context) {
	orders, err := h.orders.ListOrders(c.Request.Context(), userID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.presentOrders(orders))
}

func (h *handler) getOrder(c *gin.Context) {
	o, err := h.orders.GetOrder(c.Request.Context(), userID(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.presentOrder(o))
}
