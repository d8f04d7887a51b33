package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/stylofy/stylofy-backend-go/middleware"
	"github.com/stylofy/stylofy-backend-go/models"
	"github.com/stylofy/stylofy-backend-go/store"
)

type orderRequest struct {
	User          string                 `json:"user"`
	Product       string                 `json:"product"`
	PaymentMethod models.PaymentMethod   `json:"paymentMethod"`
	Discount      float64                `json:"discount"`
	Quantity      int                    `json:"quantity"`
	Price         float64                `json:"price"`
	Shipping      float64                `json:"shipping"`
	UserInfo      models.UserInfo        `json:"userInfo"`
	Address       models.ShippingAddress `json:"order"`
}

// ConfirmOrder records a purchase intent with status pending. No stock is
// decremented and no payment is captured here.
func (h *Handler) ConfirmOrder(c echo.Context) error {
	var req orderRequest
	if err := c.Bind(&req); err != nil {
		return message(c, http.StatusBadRequest, "Invalid request format")
	}

	if req.User == "" {
		if user, ok := c.Get(middleware.CtxUserKey).(models.User); ok {
			req.User = user.Email
		}
	}

	productID, err := primitive.ObjectIDFromHex(req.Product)
	if err != nil {
		return message(c, http.StatusBadRequest, "Invalid product ID")
	}
	if req.PaymentMethod != models.PaymentCard && req.PaymentMethod != models.PaymentCOD {
		return message(c, http.StatusBadRequest, "Invalid payment method")
	}
	if req.User == "" || req.Quantity <= 0 || req.Price < 0 || req.Shipping < 0 || req.Discount < 0 {
		return message(c, http.StatusBadRequest, "Invalid order values")
	}
	if req.UserInfo.Name == "" || req.UserInfo.Email == "" ||
		req.Address.Country == "" || req.Address.City == "" || req.Address.Address == "" {
		return message(c, http.StatusBadRequest, "Missing required order fields")
	}

	order := models.Order{
		User:          strings.ToLower(req.User),
		Product:       productID,
		PaymentMethod: req.PaymentMethod,
		Discount:      req.Discount,
		Quantity:      req.Quantity,
		Price:         req.Price,
		Shipping:      req.Shipping,
		UserInfo:      req.UserInfo,
		Address:       req.Address,
	}

	ctx, cancel := opCtx(c)
	defer cancel()

	saved, err := h.orders.Create(ctx, order)
	if err == store.ErrNotFound {
		return message(c, http.StatusNotFound, "Product not found")
	}
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusCreated, saved)
}

// GetOrders lists a user's orders newest-first with products resolved.
func (h *Handler) GetOrders(c echo.Context) error {
	email := strings.ToLower(c.Param("email"))

	ctx, cancel := opCtx(c)
	defer cancel()

	orders, err := h.orders.ListForUser(ctx, email)
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, orders)
}

// GetAllOrders is the unfiltered admin listing.
func (h *Handler) GetAllOrders(c echo.Context) error {
	ctx, cancel := opCtx(c)
	defer cancel()

	orders, err := h.orders.ListAll(ctx)
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, orders)
}

type statusRequest struct {
	Status models.OrderStatus `json:"status"`
}

// UpdateOrderStatus moves an order to accepted, shipped or rejected. Any
// other value fails before storage is touched.
func (h *Handler) UpdateOrderStatus(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return message(c, http.StatusBadRequest, "Invalid order ID")
	}

	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return message(c, http.StatusBadRequest, "Invalid request format")
	}
	if !models.ValidStatusUpdate(req.Status) {
		return message(c, http.StatusBadRequest, "Invalid status")
	}

	ctx, cancel := opCtx(c)
	defer cancel()

	err = h.orders.UpdateStatus(ctx, id, req.Status)
	if err == store.ErrNotFound {
		return message(c, http.StatusNotFound, "Order not found")
	}
	if err != nil {
		return serverError(c, err)
	}
	return message(c, http.StatusOK, "Order status updated successfully")
}

// DeleteOrder cancels an order. Only the owning user may cancel; this is
// stricter than the historical behavior on purpose.
func (h *Handler) DeleteOrder(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return message(c, http.StatusBadRequest, "Invalid order ID")
	}

	requester, ok := c.Get(middleware.CtxUserKey).(models.User)
	if !ok {
		return message(c, http.StatusUnauthorized, "No token provided")
	}

	ctx, cancel := opCtx(c)
	defer cancel()

	err = h.orders.Delete(ctx, id, requester.Email)
	if err == store.ErrNotFound {
		return message(c, http.StatusNotFound, "Order not found")
	}
	if err == store.ErrNotOwner {
		return message(c, http.StatusForbidden, "Forbidden")
	}
	if err != nil {
		return serverError(c, err)
	}
	return message(c, http.StatusOK, "Order canceled successfully")
}
