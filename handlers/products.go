package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/stylofy/stylofy-backend-go/middleware"
	"github.com/stylofy/stylofy-backend-go/models"
	"github.com/stylofy/stylofy-backend-go/store"
)

// defaultProductPage is the page size for the catalog listing.
const defaultProductPage = 18

// AddProduct creates a catalog entry. Seller-gated at the route; the seller
// field defaults to the requester when the payload leaves it empty.
func (h *Handler) AddProduct(c echo.Context) error {
	var product models.Product
	if err := c.Bind(&product); err != nil {
		return message(c, http.StatusBadRequest, "Invalid request format")
	}

	if product.Seller == "" {
		if seller, ok := c.Get(middleware.CtxUserKey).(models.User); ok {
			product.Seller = seller.Email
		}
	}

	if product.Name == "" || product.Description == "" || product.Category == "" ||
		product.Size == "" || product.Seller == "" || len(product.Images) == 0 {
		return message(c, http.StatusBadRequest, "Missing required product fields")
	}
	if product.Price < 0 || product.Quantity < 0 || product.Discount < 0 {
		return message(c, http.StatusBadRequest, "Invalid product values")
	}

	ctx, cancel := opCtx(c)
	defer cancel()

	saved, err := h.products.Create(ctx, product)
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusCreated, saved)
}

// HomepageProducts returns the fixed-size homepage sample.
func (h *Handler) HomepageProducts(c echo.Context) error {
	ctx, cancel := opCtx(c)
	defer cancel()

	products, err := h.products.Homepage(ctx)
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, products)
}

// GetAllProducts is the paged catalog listing, query params start/limit.
func (h *Handler) GetAllProducts(c echo.Context) error {
	start, limit := pageParams(c, defaultProductPage)

	ctx, cancel := opCtx(c)
	defer cancel()

	products, err := h.products.ListPaged(ctx, start, limit)
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, products)
}

func (h *Handler) GetProduct(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return message(c, http.StatusBadRequest, "Invalid product ID")
	}

	ctx, cancel := opCtx(c)
	defer cancel()

	product, err := h.products.GetByID(ctx, id)
	if err == store.ErrNotFound {
		return message(c, http.StatusNotFound, "Product not found")
	}
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, product)
}

// ListProducts is the legacy unguarded dump with seller info joined in.
func (h *Handler) ListProducts(c echo.Context) error {
	ctx, cancel := opCtx(c)
	defer cancel()

	products, err := h.products.ListWithSellers(ctx)
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, products)
}
