package handler_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/ecommerce-service/internal/entities"
	"github.com/SergeyBogomolovv/ecommerce-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/ecommerce-service/internal/handler/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type handlerMocks struct {
	products *mocks.MockProductService
	orders   *mocks.MockOrderService
}

func setupHandler(t *testing.T) (chi.Router, handlerMocks) {
	t.Helper()

	m := handlerMocks{
		products: mocks.NewMockProductService(t),
		orders:   mocks.NewMockOrderService(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := chi.NewRouter()
	h := handler.NewHTTPHandler(logger, m.products, m.orders)
	h.Init(router)

	return router, m
}

func TestHTTPHandler_AddProduct(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(m handlerMocks)
		wantStatus   int
		wantContains string
	}{
		{
			name: "success",
			body: `{"name":"Keyboard","price":49.99,"quantity":10}`,
			mockBehavior: func(m handlerMocks) {
				m.products.EXPECT().
					Create(mock.Anything, entities.Product{Name: "Keyboard", Price: 49.99, Quantity: 10}).
					Return(entities.Product{ID: "665f1c2d3e4a5b6c7d8e9f00", Name: "Keyboard", Price: 49.99, Quantity: 10}, nil).
					Once()
			},
			wantStatus:   http.StatusOK,
			wantContains: `"id":"665f1c2d3e4a5b6c7d8e9f00"`,
		},
		{
			name:         "missing price",
			body:         `{"name":"Keyboard","quantity":10}`,
			mockBehavior: func(m handlerMocks) {},
			wantStatus:   http.StatusBadRequest,
			wantContains: `"Price":"required"`,
		},
		{
			name:         "malformed json",
			body:         `{"name":`,
			mockBehavior: func(m handlerMocks) {},
			wantStatus:   http.StatusBadRequest,
			wantContains: "invalid request body",
		},
		{
			name: "service failure",
			body: `{"name":"Keyboard","price":49.99,"quantity":10}`,
			mockBehavior: func(m handlerMocks) {
				m.products.EXPECT().
					Create(mock.Anything, mock.Anything).
					Return(entities.Product{}, errors.New("db down")).
					Once()
			},
			wantStatus:   http.StatusInternalServerError,
			wantContains: "internal server error: db down",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router, m := setupHandler(t)
			tc.mockBehavior(m)

			req := httptest.NewRequest(http.MethodPost, "/products/add-product/", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.wantContains)
		})
	}
}

func TestHTTPHandler_ListProducts(t *testing.T) {
	floatPtr := func(v float64) *float64 { return &v }
	intPtr := func(v int) *int { return &v }

	testCases := []struct {
		name         string
		query        string
		mockBehavior func(m handlerMocks)
		wantStatus   int
		wantContains string
	}{
		{
			name:  "success with filter",
			query: "?limit=2&offset=2&min_price=1.5",
			mockBehavior: func(m handlerMocks) {
				m.products.EXPECT().
					List(mock.Anything, 2, 2, entities.ProductFilter{MinPrice: floatPtr(1.5)}).
					Return(entities.ProductPage{
						Products:   []entities.Product{{ID: "p1", Name: "Mouse", Price: 19.99, Quantity: 3}},
						Limit:      2,
						Total:      5,
						NextOffset: intPtr(4),
						PrevOffset: intPtr(0),
					}, nil).
					Once()
			},
			wantStatus:   http.StatusOK,
			wantContains: `"next_offset":4`,
		},
		{
			name:  "defaults applied",
			query: "",
			mockBehavior: func(m handlerMocks) {
				m.products.EXPECT().
					List(mock.Anything, 10, 0, entities.ProductFilter{}).
					Return(entities.ProductPage{Products: []entities.Product{}, Limit: 10}, nil).
					Once()
			},
			wantStatus:   http.StatusOK,
			wantContains: `"prev_offset":null`,
		},
		{
			name:         "limit too small",
			query:        "?limit=0",
			mockBehavior: func(m handlerMocks) {},
			wantStatus:   http.StatusBadRequest,
			wantContains: "limit must be an integer between 1 and 100",
		},
		{
			name:         "limit too large",
			query:        "?limit=101",
			mockBehavior: func(m handlerMocks) {},
			wantStatus:   http.StatusBadRequest,
			wantContains: "limit must be an integer between 1 and 100",
		},
		{
			name:         "negative offset",
			query:        "?offset=-1",
			mockBehavior: func(m handlerMocks) {},
			wantStatus:   http.StatusBadRequest,
			wantContains: "offset must be a non-negative integer",
		},
		{
			name:         "min_price not a number",
			query:        "?min_price=abc",
			mockBehavior: func(m handlerMocks) {},
			wantStatus:   http.StatusBadRequest,
			wantContains: "min_price must be a number",
		},
		{
			name:  "service failure",
			query: "",
			mockBehavior: func(m handlerMocks) {
				m.products.EXPECT().
					List(mock.Anything, 10, 0, entities.ProductFilter{}).
					Return(entities.ProductPage{}, errors.New("db down")).
					Once()
			},
			wantStatus:   http.StatusInternalServerError,
			wantContains: "internal server error: db down",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router, m := setupHandler(t)
			tc.mockBehavior(m)

			req := httptest.NewRequest(http.MethodGet, "/products/products/"+tc.query, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.wantContains)
		})
	}
}

func TestHTTPHandler_CreateOrder(t *testing.T) {
	validBody := `{
		"items": [{"productId": "665f1c2d3e4a5b6c7d8e9f00", "boughtQuantity": 3, "unitPrice": 5.0}],
		"userAddress": {"city": "Moscow", "country": "Russia", "zipCode": "101000"}
	}`

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(m handlerMocks)
		wantStatus   int
		wantContains string
	}{
		{
			name: "success",
			body: validBody,
			mockBehavior: func(m handlerMocks) {
				m.orders.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{
						ID:        "order-1",
						CreatedOn: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
						Items: []entities.OrderItem{
							{ProductID: "665f1c2d3e4a5b6c7d8e9f00", BoughtQuantity: 3, UnitPrice: 5.0},
						},
						UserAddress: entities.Address{City: "Moscow", Country: "Russia", ZipCode: "101000"},
						TotalAmount: 15.0,
					}, nil).
					Once()
			},
			wantStatus:   http.StatusOK,
			wantContains: `"totalAmount":15`,
		},
		{
			name: "product not found",
			body: validBody,
			mockBehavior: func(m handlerMocks) {
				m.orders.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, &entities.ProductNotFoundError{ProductID: "665f1c2d3e4a5b6c7d8e9f00"}).
					Once()
			},
			wantStatus:   http.StatusNotFound,
			wantContains: "product not found for ID 665f1c2d3e4a5b6c7d8e9f00",
		},
		{
			name: "insufficient stock",
			body: validBody,
			mockBehavior: func(m handlerMocks) {
				m.orders.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, &entities.InsufficientStockError{ProductID: "665f1c2d3e4a5b6c7d8e9f00"}).
					Once()
			},
			wantStatus:   http.StatusBadRequest,
			wantContains: "insufficient quantity for product 665f1c2d3e4a5b6c7d8e9f00",
		},
		{
			name:         "empty items",
			body:         `{"items": [], "userAddress": {"city": "Moscow", "country": "Russia", "zipCode": "101000"}}`,
			mockBehavior: func(m handlerMocks) {},
			wantStatus:   http.StatusBadRequest,
			wantContains: `"Items":"min"`,
		},
		{
			name: "service failure",
			body: validBody,
			mockBehavior: func(m handlerMocks) {
				m.orders.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, errors.New("db down")).
					Once()
			},
			wantStatus:   http.StatusInternalServerError,
			wantContains: "internal server error: db down",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router, m := setupHandler(t)
			tc.mockBehavior(m)

			req := httptest.NewRequest(http.MethodPost, "/orders/create-order/", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.wantContains)
		})
	}
}
