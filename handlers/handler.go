// Package handlers holds the echo route handlers. Each handler validates and
// authorizes before touching storage, and answers every failure with a JSON
// body carrying a message field.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/stylofy/stylofy-backend-go/models"
	"github.com/stylofy/stylofy-backend-go/token"
)

// storeTimeout bounds every store round trip.
const storeTimeout = 10 * time.Second

type UserStore interface {
	FindByEmail(ctx context.Context, email string) (models.User, error)
	SignUser(ctx context.Context, user models.User) (models.User, bool, error)
	ListAll(ctx context.Context) ([]models.User, error)
	ListSummaries(ctx context.Context, start, limit int64) ([]models.UserSummary, error)
}

type ProductStore interface {
	Create(ctx context.Context, product models.Product) (models.Product, error)
	Homepage(ctx context.Context) ([]models.Product, error)
	ListPaged(ctx context.Context, start, limit int64) ([]models.Product, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (models.Product, error)
	ListWithSellers(ctx context.Context) ([]models.ProductWithSeller, error)
}

type OrderStore interface {
	Create(ctx context.Context, order models.Order) (models.Order, error)
	ListForUser(ctx context.Context, email string) ([]models.PopulatedOrder, error)
	ListAll(ctx context.Context) ([]models.PopulatedOrder, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus) error
	Delete(ctx context.Context, id primitive.ObjectID, requester string) error
}

type CartStore interface {
	Add(ctx context.Context, cart models.Cart) (models.Cart, error)
}

type Handler struct {
	users    UserStore
	products ProductStore
	orders   OrderStore
	carts    CartStore
	codec    *token.Codec
}

func New(users UserStore, products ProductStore, orders OrderStore, carts CartStore, codec *token.Codec) *Handler {
	return &Handler{
		users:    users,
		products: products,
		orders:   orders,
		carts:    carts,
		codec:    codec,
	}
}

func opCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), storeTimeout)
}

func message(c echo.Context, status int, text string) error {
	return c.JSON(status, map[string]string{"message": text})
}

// serverError hides store failure detail behind a generic message.
func serverError(c echo.Context, err error) error {
	c.Logger().Error(err)
	return message(c, http.StatusInternalServerError, "Server Error")
}
