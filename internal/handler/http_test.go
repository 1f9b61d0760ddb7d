package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SergeyBogomolovv/dairy-service/internal/entities"
	"github.com/SergeyBogomolovv/dairy-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/dairy-service/internal/handler/mocks"
	"github.com/SergeyBogomolovv/dairy-service/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type staticAuth struct {
	auth entities.AuthContext
	err  error
}

func (s staticAuth) Authenticate(_ context.Context, _ string) (entities.AuthContext, error) {
	return s.auth, s.err
}

func newOrderRouter(t *testing.T, svc *mocks.MockOrderService, catalog *mocks.MockStorefront, auth entities.AuthContext) chi.Router {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewOrderHandler(logger, svc, catalog, middleware.Auth(logger, staticAuth{auth: auth}))
	r := chi.NewRouter()
	h.Init(r)
	return r
}

const testOrderID = "7f9c24e5-2f8a-4b1d-9c3e-5a6b7c8d9e0f"

func TestOrderHandler_PlaceOrder(t *testing.T) {
	auth := entities.AuthContext{UserID: "user-1", Username: "alice"}

	placedOrder := entities.Order{
		ID:          testOrderID,
		UserID:      "user-1",
		Status:      entities.StatusPending,
		TotalAmount: decimal.NewFromInt(100),
	}

	validBody := `{"items":[{"product_id":"milk-id","quantity":"2"}]}`

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					PlaceOrder(mock.Anything, "user-1", mock.Anything).
					Return(placedOrder, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"order_id":"` + testOrderID + `"`,
		},
		{
			name:         "malformed body",
			body:         `{`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "empty items rejected by validation",
			body:         `{"items":[]}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name: "unknown product",
			body: validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					PlaceOrder(mock.Anything, "user-1", mock.Anything).
					Return(entities.Order{}, &entities.ProductNotFoundError{ProductID: "milk-id"}).Once()
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "insufficient stock",
			body: validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					PlaceOrder(mock.Anything, "user-1", mock.Anything).
					Return(entities.Order{}, &entities.InsufficientStockError{
						ProductID: "milk-id",
						Available: decimal.NewFromInt(1),
						Requested: decimal.NewFromInt(2),
					}).Once()
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "lost stock race",
			body: validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					PlaceOrder(mock.Anything, "user-1", mock.Anything).
					Return(entities.Order{}, entities.ErrStockConflict).Once()
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "internal error",
			body: validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					PlaceOrder(mock.Anything, "user-1", mock.Anything).
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			catalog := mocks.NewMockStorefront(t)
			tc.mockBehavior(svc)

			r := newOrderRouter(t, svc, catalog, auth)

			req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(tc.body))
			req.Header.Set("Authorization", "Bearer token")
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			if tc.wantBody != "" {
				assert.Contains(t, string(body), tc.wantBody)
			}
		})
	}
}

func TestOrderHandler_PlaceOrder_Unauthorized(t *testing.T) {
	svc := mocks.NewMockOrderService(t)
	catalog := mocks.NewMockStorefront(t)
	r := newOrderRouter(t, svc, catalog, entities.AuthContext{})

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestOrderHandler_GetOrder(t *testing.T) {
	auth := entities.AuthContext{UserID: "user-1"}
	validOrder := entities.Order{ID: testOrderID, UserID: "user-1", Status: entities.StatusPending}

	testCases := []struct {
		name         string
		orderID      string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:    "success",
			orderID: testOrderID,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrder(mock.Anything, auth, testOrderID).
					Return(validOrder, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":"` + testOrderID + `"`,
		},
		{
			name:    "not found",
			orderID: testOrderID,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrder(mock.Anything, auth, testOrderID).
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:         "invalid order id",
			orderID:      "not-a-uuid",
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			catalog := mocks.NewMockStorefront(t)
			tc.mockBehavior(svc)

			r := newOrderRouter(t, svc, catalog, auth)

			req := httptest.NewRequest(http.MethodGet, "/orders/"+tc.orderID, nil)
			req.Header.Set("Authorization", "Bearer token")
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			if tc.wantBody != "" {
				assert.Contains(t, string(body), tc.wantBody)
			}
		})
	}
}

func TestOrderHandler_ListProducts(t *testing.T) {
	svc := mocks.NewMockOrderService(t)
	catalog := mocks.NewMockStorefront(t)
	catalog.EXPECT().ListAvailable(mock.Anything).Return([]entities.Product{
		{ID: "milk-id", Name: "Milk (1L)", Price: decimal.NewFromInt(50), Stock: decimal.NewFromInt(100), Unit: "Liter"},
	}, nil).Once()

	r := newOrderRouter(t, svc, catalog, entities.AuthContext{})

	// the storefront needs no session
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var products []map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "Milk (1L)", products[0]["name"])
}

func TestOrderHandler_ListOrders(t *testing.T) {
	auth := entities.AuthContext{UserID: "user-1"}

	svc := mocks.NewMockOrderService(t)
	catalog := mocks.NewMockStorefront(t)
	svc.EXPECT().ListUserOrders(mock.Anything, "user-1").Return([]entities.Order{
		{ID: testOrderID, UserID: "user-1", Status: entities.StatusCompleted},
	}, nil).Once()

	r := newOrderRouter(t, svc, catalog, auth)

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.Header.Set("Authorization", "Bearer token")
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"id":"`+testOrderID+`"`)
}
