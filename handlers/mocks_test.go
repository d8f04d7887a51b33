package handlers

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/stylofy/stylofy-backend-go/middleware"
	"github.com/stylofy/stylofy-backend-go/models"
	"github.com/stylofy/stylofy-backend-go/token"
)

type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) FindByEmail(ctx context.Context, email string) (models.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(models.User)
	return u, args.Error(1)
}

func (m *mockUserStore) SignUser(ctx context.Context, user models.User) (models.User, bool, error) {
	args := m.Called(ctx, user)
	u, _ := args.Get(0).(models.User)
	return u, args.Bool(1), args.Error(2)
}

func (m *mockUserStore) ListAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	u, _ := args.Get(0).([]models.User)
	return u, args.Error(1)
}

func (m *mockUserStore) ListSummaries(ctx context.Context, start, limit int64) ([]models.UserSummary, error) {
	args := m.Called(ctx, start, limit)
	s, _ := args.Get(0).([]models.UserSummary)
	return s, args.Error(1)
}

type mockProductStore struct {
	mock.Mock
}

func (m *mockProductStore) Create(ctx context.Context, product models.Product) (models.Product, error) {
	args := m.Called(ctx, product)
	p, _ := args.Get(0).(models.Product)
	return p, args.Error(1)
}

func (m *mockProductStore) Homepage(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	p, _ := args.Get(0).([]models.Product)
	return p, args.Error(1)
}

func (m *mockProductStore) ListPaged(ctx context.Context, start, limit int64) ([]models.Product, error) {
	args := m.Called(ctx, start, limit)
	p, _ := args.Get(0).([]models.Product)
	return p, args.Error(1)
}

func (m *mockProductStore) GetByID(ctx context.Context, id primitive.ObjectID) (models.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(models.Product)
	return p, args.Error(1)
}

func (m *mockProductStore) ListWithSellers(ctx context.Context) ([]models.ProductWithSeller, error) {
	args := m.Called(ctx)
	p, _ := args.Get(0).([]models.ProductWithSeller)
	return p, args.Error(1)
}

type mockOrderStore struct {
	mock.Mock
}

func (m *mockOrderStore) Create(ctx context.Context, order models.Order) (models.Order, error) {
	args := m.Called(ctx, order)
	o, _ := args.Get(0).(models.Order)
	return o, args.Error(1)
}

func (m *mockOrderStore) ListForUser(ctx context.Context, email string) ([]models.PopulatedOrder, error) {
	args := m.Called(ctx, email)
	o, _ := args.Get(0).([]models.PopulatedOrder)
	return o, args.Error(1)
}

func (m *mockOrderStore) ListAll(ctx context.Context) ([]models.PopulatedOrder, error) {
	args := m.Called(ctx)
	o, _ := args.Get(0).([]models.PopulatedOrder)
	return o, args.Error(1)
}

func (m *mockOrderStore) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *mockOrderStore) Delete(ctx context.Context, id primitive.ObjectID, requester string) error {
	args := m.Called(ctx, id, requester)
	return args.Error(0)
}

type mockCartStore struct {
	mock.Mock
}

func (m *mockCartStore) Add(ctx context.Context, cart models.Cart) (models.Cart, error) {
	args := m.Called(ctx, cart)
	entry, _ := args.Get(0).(models.Cart)
	return entry, args.Error(1)
}

type handlerMocks struct {
	users    *mockUserStore
	products *mockProductStore
	orders   *mockOrderStore
	carts    *mockCartStore
}

func newTestHandler() (*Handler, *handlerMocks) {
	m := &handlerMocks{
		users:    new(mockUserStore),
		products: new(mockProductStore),
		orders:   new(mockOrderStore),
		carts:    new(mockCartStore),
	}
	h := New(m.users, m.products, m.orders, m.carts, token.NewCodec("handler-test-secret"))
	return h, m
}

// testRequest builds an echo context for a handler call. requester, when
// non-nil, plays the persisted user a guard would have stored.
func testRequest(t *testing.T, method, target, body string, requester *models.User) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if requester != nil {
		c.Set(middleware.CtxUserKey, *requester)
	}
	return c, rec
}
