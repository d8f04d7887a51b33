package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/stylofy/stylofy-backend-go/handlers"
	"github.com/stylofy/stylofy-backend-go/middleware"
)

// Setup wires every route to its handler and guard.
func Setup(e *echo.Echo, h *handlers.Handler, guard *middleware.Guard) {
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "E-Commerce Backend is running")
	})
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Credential lifecycle
	e.POST("/sign-token", h.SignToken)
	e.GET("/signout", h.SignOut)
	e.POST("/sign-user", h.SignUser)

	// Catalog
	e.POST("/add-product", h.AddProduct, guard.SellerOnly)
	e.GET("/get-homepage-products", h.HomepageProducts)
	e.GET("/get-all-products", h.GetAllProducts)
	e.GET("/get-product/:id", h.GetProduct)

	// Cart and orders
	e.POST("/add-to-cart", h.AddToCart, guard.Authenticated)
	e.POST("/confirm-order", h.ConfirmOrder, guard.Authenticated)
	e.GET("/get-orders/:email", h.GetOrders, guard.Authenticated)
	e.DELETE("/delete-order/:id", h.DeleteOrder, guard.Authenticated)

	// Admin
	e.PATCH("/update-order-status/:id", h.UpdateOrderStatus, guard.AdminOnly)
	e.GET("/get-users", h.GetUsers, guard.AdminOnly)
	e.GET("/get-all-orders-admin", h.GetAllOrders, guard.AdminOnly)

	// Legacy full dumps, kept for the existing frontend debug views.
	e.GET("/products", h.ListProducts)
	e.GET("/users", h.ListUsers)
}
