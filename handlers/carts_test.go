package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/stylofy/stylofy-backend-go/models"
	"github.com/stylofy/stylofy-backend-go/store"
)

func TestAddToCartInvalidProductID(t *testing.T) {
	h, m := newTestHandler()

	c, rec := testRequest(t, http.MethodPost, "/add-to-cart", `{"userId":"a@x.com","product":"oops"}`, nil)
	require.NoError(t, h.AddToCart(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid product ID")
	m.carts.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestAddToCartUnknownProduct(t *testing.T) {
	h, m := newTestHandler()
	m.carts.On("Add", mock.Anything, mock.Anything).Return(models.Cart{}, store.ErrNotFound)

	body := `{"userId":"a@x.com","product":"` + primitive.NewObjectID().Hex() + `"}`
	c, rec := testRequest(t, http.MethodPost, "/add-to-cart", body, nil)
	require.NoError(t, h.AddToCart(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Product not found")
}

func TestAddToCartDefaultsUserToRequester(t *testing.T) {
	requester := models.User{Email: "a@x.com", Role: models.RoleUser}
	productID := primitive.NewObjectID()

	h, m := newTestHandler()
	m.carts.On("Add", mock.Anything, mock.Anything).Return(models.Cart{}, nil)

	c, rec := testRequest(t, http.MethodPost, "/add-to-cart", `{"product":"`+productID.Hex()+`"}`, &requester)
	require.NoError(t, h.AddToCart(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	sent := m.carts.Calls[0].Arguments.Get(1).(models.Cart)
	assert.Equal(t, "a@x.com", sent.UserID)
	assert.Equal(t, productID, sent.Product)
}
