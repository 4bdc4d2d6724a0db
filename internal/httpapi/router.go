package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/dwikikusuma/shopfront/internal/auth"
	cartapp "github.com/dwikikusuma/shopfront/internal/cart/app"
	catalogapp "github.com/dwikikusuma/shopfront/internal/catalog/app"
	checkoutapp "github.com/dwikikusuma/shopfront/internal/checkout/app"
	orderapp "github.com/dwikikusuma/shopfront/internal/order/app"
	userapp "github.com/dwikikusuma/shopfront/internal/user/app"
	"github.com/gin-gonic/gin"
)

type TokenVerifier interface {
	Verify(token string) (auth.Claims, error)
}

// Deps wires the application services into the REST surface.
type Deps struct {
	Catalog  *catalogapp.Service
	Cart     *cartapp.Service
	Checkout *checkoutapp.Service
	Orders   *orderapp.Service
	Users    *userapp.Service
	Tokens   TokenVerifier

	// CurrencyScale fixes the fraction digits of computed totals; zero means
	// the currency's minor unit.
	CurrencyScale int32

	Log         *slog.Logger
	CORSOrigins []string
}

type handler struct {
	catalog  *catalogapp.Service
	cart     *cartapp.Service
	checkout *checkoutapp.Service
	orders   *orderapp.Service
	users    *userapp.Service

	scale int32
}

func NewRouter(d Deps) *gin.Engine {
	log := d.Log
	if log == nil {
		log = slog.Default()
	}

	h := &handler{
		catalog:  d.Catalog,
		cart:     d.Cart,
		checkout: d.Checkout,
		orders:   d.Orders,
		users:    d.Users,
		scale:    d.CurrencyScale,
	}

	r := gin.New()
	r.Use(requestLogger(log), recovery(log), cors(d.CORSOrigins))

	ok := func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) }
	r.GET("/healthz", ok)
	r.GET("/readyz", ok)

	api := r.Group("/api")
	{
		api.POST("/auth/register", h.register)
		api.POST("/auth/login", h.login)

		api.GET("/products", h.listProducts)
		api.GET("/products/:id", h.getProduct)
		api.GET("/categories", h.categories)
		api.GET("/search", h.search)
	}

	authed := api.Group("", authenticate(d.Tokens))
	{
		authed.POST("/auth/logout", h.logout)

		authed.GET("/cart", h.getCart)
		authed.POST("/cart/add", h.addToCart)
		authed.PUT("/cart/update/:itemId", h.updateCartItem)
		authed.DELETE("/cart/remove/:itemId", h.removeCartItem)
		authed.DELETE("/cart/clear", h.clearCart)
		authed.GET("/cart/quote", h.quote)

		authed.POST("/orders", h.placeOrder)
		authed.GET("/orders", h.listOrders)
		authed.GET("/orders/:id", h.getOrder)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, errorResponse{Code: "NOT_FOUND", Message: "route not found"})
	})

	return r
}
