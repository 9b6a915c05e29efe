package httpserver

import (
	"log/slog"
	"net/http"

	"github.com/asiedu/ecommerce-cart/internal/logging"
	"github.com/labstack/echo/v4"
)

type Deps struct {
	CartHandler    *CartHandler
	UserHandler    *UserHandler
	ProductHandler *ProductHandler
	SearchHandler  *SearchHandler
	Logger         *slog.Logger
}

// RequestLogger puts the service logger into every request context so
// handlers can pick it up with logging.FromContext.
func RequestLogger(l *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			ctx := logging.IntoContext(req.Context(), l)
			c.SetRequest(req.WithContext(ctx))
			return next(c)
		}
	}
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	if d.Logger != nil {
		e.Use(RequestLogger(d.Logger))
	}

	v1 := e.Group("/api/v1")

	carts := v1.Group("/carts")
	carts.POST("", d.CartHandler.AddToCart)
	carts.GET("/:userId/:productId", d.CartHandler.GetCartItem)
	carts.DELETE("/:userId/:productId", d.CartHandler.RemoveFromCart)

	items := v1.Group("/cartitems")
	items.GET("", d.CartHandler.ListCartItems)
	items.GET("/:id", d.CartHandler.GetCartItemByID)
	items.PUT("/:id", d.CartHandler.UpdateCartItem)
	items.DELETE("/:id", d.CartHandler.RemoveCartItemByID)

	users := v1.Group("/users")
	users.GET("", d.UserHandler.GetUsers)
	users.GET("/:id", d.UserHandler.GetUser)
	users.POST("", d.UserHandler.CreateUser)
	users.PUT("/:id", d.UserHandler.UpdateUser)
	users.DELETE("/:id", d.UserHandler.DeleteUser)

	products := v1.Group("/products")
	products.GET("", d.ProductHandler.GetProducts)
	products.GET("/:id", d.ProductHandler.GetProduct)
	products.POST("", d.ProductHandler.CreateProduct)
	products.PUT("/:id", d.ProductHandler.UpdateProduct)
	products.DELETE("/:id", d.ProductHandler.DeleteProduct)

	if d.SearchHandler != nil {
		v1.GET("/search", d.SearchHandler.Search)
	}
}
