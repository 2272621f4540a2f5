package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	perrors "productcache/internal/errors"
	"productcache/internal/model"
	"productcache/internal/service"
)

// mockProductService is a mock implementation of the ProductService interface
type mockProductService struct {
	product  model.Product
	products []model.Product
	error    error
}

func (m *mockProductService) OpenSession(_ context.Context) error { return m.error }

func (m *mockProductService) CloseSession() error { return m.error }

func (m *mockProductService) FindByID(_ context.Context, _ int64) (*model.Product, error) {
	return &m.product, m.error
}

func (m *mockProductService) FindByName(_ context.Context, _ string) ([]model.Product, error) {
	return m.products, m.error
}

func (m *mockProductService) FindAll(_ context.Context) ([]model.Product, error) {
	return m.products, m.error
}

func (m *mockProductService) Create(_ context.Context, _ service.ProductCreateDto) (*model.Product, error) {
	return &m.product, m.error
}

func (m *mockProductService) Update(_ context.Context, _ model.Product) error {
	return m.error
}

func (m *mockProductService) Delete(_ context.Context, _ int64) error {
	return m.error
}

func newTestHandler(svc service.ProductService) *Handler {
	return NewHandler(svc, slog.New(slog.DiscardHandler))
}

func Test_Handler_FindByID(t *testing.T) {
	testCases := []struct {
		name         string
		mockService  *mockProductService
		productID    string
		expectedCode int
		expectedBody string
	}{
		{
			name: "Success - product found",
			mockService: &mockProductService{
				product: model.Product{ID: 1, Name: "Motor", Price: 99.99},
			},
			productID:    "1",
			expectedCode: http.StatusOK,
			expectedBody: `{"id":1,"name":"Motor","price":99.99}`,
		},
		{
			name: "Error - product not found",
			mockService: &mockProductService{
				error: perrors.ErrProductNotFound,
			},
			productID:    "999",
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Product with ID 999 not found"}`,
		},
		{
			name:         "Error - invalid ID",
			mockService:  &mockProductService{},
			productID:    "abc",
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Invalid ID: abc"}`,
		},
		{
			name: "Error - session not open",
			mockService: &mockProductService{
				error: perrors.ErrSessionNotOpen,
			},
			productID:    "1",
			expectedCode: http.StatusServiceUnavailable,
			expectedBody: `{"error":"Service session is not open"}`,
		},
		{
			name: "Error - service error",
			mockService: &mockProductService{
				error: errors.New("store unavailable"),
			},
			productID:    "2",
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Failed to retrieve product with ID 2"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			h := newTestHandler(tc.mockService)
			req := httptest.NewRequest(http.MethodGet, "/api/v1/products/"+tc.productID, nil)
			req.SetPathValue("id", tc.productID)
			rr := httptest.NewRecorder()

			// when
			h.FindByID(rr, req)

			// then
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.Equal(t, tc.expectedCode, rr.Code, "status code should match")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "response body should match")
		})
	}
}

func Test_Handler_Search(t *testing.T) {
	testCases := []struct {
		name         string
		mockService  *mockProductService
		query        string
		expectedCode int
		expectedBody string
	}{
		{
			name: "Success - products found",
			mockService: &mockProductService{
				products: []model.Product{
					{ID: 1, Name: "Motor A", Price: 99.99},
					{ID: 2, Name: "Motor B", Price: 149.99},
				},
			},
			query:        "?q=motor",
			expectedCode: http.StatusOK,
			expectedBody: `[{"id":1,"name":"Motor A","price":99.99},{"id":2,"name":"Motor B","price":149.99}]`,
		},
		{
			name: "Success - empty result",
			mockService: &mockProductService{
				products: []model.Product{},
			},
			query:        "?q=unicorn",
			expectedCode: http.StatusOK,
			expectedBody: `[]`,
		},
		{
			name:         "Error - missing q parameter",
			mockService:  &mockProductService{},
			query:        "",
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"q url parameter is required"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			h := newTestHandler(tc.mockService)
			req := httptest.NewRequest(http.MethodGet, "/api/v1/products/search"+tc.query, nil)
			rr := httptest.NewRecorder()

			// when
			h.Search(rr, req)

			// then
			assert.Equal(t, tc.expectedCode, rr.Code, "status code should match")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "response body should match")
		})
	}
}

func Test_Handler_Create(t *testing.T) {
	testCases := []struct {
		name         string
		mockService  *mockProductService
		body         string
		expectedCode int
		expectedBody string
	}{
		{
			name: "Success - product created",
			mockService: &mockProductService{
				product: model.Product{ID: 1, Name: "Motor", Price: 99.99},
			},
			body:         `{"name":"Motor","price":99.99}`,
			expectedCode: http.StatusCreated,
			expectedBody: `{"id":1,"name":"Motor","price":99.99}`,
		},
		{
			name:         "Error - missing name",
			mockService:  &mockProductService{},
			body:         `{"price":99.99}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"validation_errors":{"Name":"failed on rule: required"}}`,
		},
		{
			name:         "Error - negative price",
			mockService:  &mockProductService{},
			body:         `{"name":"Motor","price":-1}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"validation_errors":{"Price":"failed on rule: gte"}}`,
		},
		{
			name:         "Error - invalid body",
			mockService:  &mockProductService{},
			body:         `{not json`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Invalid request body"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			h := newTestHandler(tc.mockService)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/products", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			// when
			h.Create(rr, req)

			// then
			assert.Equal(t, tc.expectedCode, rr.Code, "status code should match")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "response body should match")
		})
	}
}

func Test_Handler_Update(t *testing.T) {
	testCases := []struct {
		name         string
		mockService  *mockProductService
		productID    string
		body         string
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Success - product updated",
			mockService:  &mockProductService{},
			productID:    "1",
			body:         `{"name":"Motor","price":149.99}`,
			expectedCode: http.StatusOK,
			expectedBody: `{"id":1,"name":"Motor","price":149.99}`,
		},
		{
			name: "Error - product not found",
			mockService: &mockProductService{
				error: perrors.ErrProductNotFound,
			},
			productID:    "999",
			body:         `{"name":"Ghost","price":1}`,
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Product with ID 999 not found"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			h := newTestHandler(tc.mockService)
			req := httptest.NewRequest(http.MethodPut, "/api/v1/products/"+tc.productID, strings.NewReader(tc.body))
			req.SetPathValue("id", tc.productID)
			rr := httptest.NewRecorder()

			// when
			h.Update(rr, req)

			// then
			assert.Equal(t, tc.expectedCode, rr.Code, "status code should match")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "response body should match")
		})
	}
}

func Test_Handler_DeleteByID(t *testing.T) {
	testCases := []struct {
		name         string
		mockService  *mockProductService
		productID    string
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Success - product deleted",
			mockService:  &mockProductService{},
			productID:    "1",
			expectedCode: http.StatusNoContent,
			expectedBody: "",
		},
		{
			name: "Error - product not found",
			mockService: &mockProductService{
				error: perrors.ErrProductNotFound,
			},
			productID:    "999",
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Product with ID 999 not found"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			h := newTestHandler(tc.mockService)
			req := httptest.NewRequest(http.MethodDelete, "/api/v1/products/"+tc.productID, nil)
			req.SetPathValue("id", tc.productID)
			rr := httptest.NewRecorder()

			// when
			h.DeleteByID(rr, req)

			// then
			assert.Equal(t, tc.expectedCode, rr.Code, "status code should match")
			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "response body should match")
			} else {
				assert.Empty(t, rr.Body.String(), "response body should be empty")
			}
		})
	}
}

func Test_Handler_HealthCheck(t *testing.T) {
	h := newTestHandler(&mockProductService{})
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()

	h.HealthCheck(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}
