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

type cartRequest struct {
	UserID  string `json:"userId"`
	Product string `json:"product"`
}

// AddToCart records a pending selection. Duplicate adds accumulate; there is
// no dedup and no stock check.
func (h *Handler) AddToCart(c echo.Context) error {
	var req cartRequest
	if err := c.Bind(&req); err != nil {
		return message(c, http.StatusBadRequest, "Invalid request format")
	}

	if req.UserID == "" {
		if user, ok := c.Get(middleware.CtxUserKey).(models.User); ok {
			req.UserID = user.Email
		}
	}
	if req.UserID == "" {
		return message(c, http.StatusBadRequest, "User is required")
	}

	productID, err := primitive.ObjectIDFromHex(req.Product)
	if err != nil {
		return message(c, http.StatusBadRequest, "Invalid product ID")
	}

	ctx, cancel := opCtx(c)
	defer cancel()

	entry, err := h.carts.Add(ctx, models.Cart{
		UserID:  strings.ToLower(req.UserID),
		Product: productID,
	})
	if err == store.ErrNotFound {
		return message(c, http.StatusNotFound, "Product not found")
	}
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusCreated, entry)
}
