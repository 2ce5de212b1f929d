package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rogerio-castellano/inventory-cli/internal/http/handlers"
	"github.com/rogerio-castellano/inventory-cli/internal/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginHandler(t *testing.T) {
	api := newTestAPI(t)

	t.Run("known operator", func(t *testing.T) {
		w := api.do(http.MethodPost, "/login", handlers.LoginRequest{Username: "contador"}, false)
		require.Equal(t, http.StatusOK, w.Code)
		var resp handlers.LoginResult
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "accountant", resp.Role)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("unknown operator", func(t *testing.T) {
		w := api.do(http.MethodPost, "/login", handlers.LoginRequest{Username: "guest"}, false)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestCreateProductHandler_Valid(t *testing.T) {
	api := newTestAPI(t)

	resp := api.createProduct(t, handlers.ProductRequest{Name: "Laptop", Quantity: 1, Price: 1500})

	assert.Equal(t, handlers.ProductResponse{Index: 0, Name: "Laptop", Quantity: 1, Price: 1500}, resp)
	data, err := os.ReadFile(api.repo.Path())
	require.NoError(t, err)
	assert.Equal(t, "Laptop,1,1500.00\n", string(data))
}

func TestCreateProductHandler_RequiresToken(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodPost, "/products", handlers.ProductRequest{Name: "Laptop", Quantity: 1, Price: 1}, false)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, api.repo.List())
}

func TestCreateProductHandler_Invalid(t *testing.T) {
	api := newTestAPI(t)

	testCases := []struct {
		name           string
		payload        handlers.ProductRequest
		expectedErrors []string
	}{
		{name: "Empty name", payload: handlers.ProductRequest{Name: " ", Price: 1}, expectedErrors: []string{"Name"}},
		{name: "Name too long", payload: handlers.ProductRequest{Name: strings.Repeat("x", 21), Price: 1}, expectedErrors: []string{"Name"}},
		{name: "Negative price", payload: handlers.ProductRequest{Name: "Mouse", Price: -5}, expectedErrors: []string{"Price"}},
		{name: "Negative quantity", payload: handlers.ProductRequest{Name: "Keyboard", Price: 50, Quantity: -1}, expectedErrors: []string{"Quantity"}},
		{name: "Everything wrong", payload: handlers.ProductRequest{Name: "", Price: -1, Quantity: -1}, expectedErrors: []string{"Name", "Price", "Quantity"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := api.do(http.MethodPost, "/products", tc.payload, true)
			require.Equal(t, http.StatusBadRequest, w.Code)

			var resp []handlers.ProductValidationError
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			var fields []string
			for _, e := range resp {
				fields = append(fields, e.Field)
			}
			assert.ElementsMatch(t, tc.expectedErrors, fields)
		})
	}
	assert.Empty(t, api.repo.List())
}

func TestCreateProductHandler_MalformedJSON(t *testing.T) {
	api := newTestAPI(t)

	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewBufferString(`{Name: "Invalid" Price: 100 "}`))
	req.Header.Set("Authorization", "Bearer "+api.token)
	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateProductHandler_CapacityExceeded(t *testing.T) {
	api := newTestAPI(t, repo.WithCapacity(1))
	api.createProduct(t, handlers.ProductRequest{Name: "Mouse", Quantity: 1, Price: 1})

	w := api.do(http.MethodPost, "/products", handlers.ProductRequest{Name: "Keyboard", Quantity: 1, Price: 1}, true)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Len(t, api.repo.List(), 1)
}

func TestCreateProductHandler_PersistenceFailure(t *testing.T) {
	api := newTestAPI(t)
	require.NoError(t, os.RemoveAll(filepath.Dir(api.repo.Path())))

	w := api.do(http.MethodPost, "/products", handlers.ProductRequest{Name: "Mouse", Quantity: 1, Price: 1}, true)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, api.repo.List())
}

func TestGetProductsHandler(t *testing.T) {
	api := newTestAPI(t)
	api.createProduct(t, handlers.ProductRequest{Name: "Phone", Quantity: 1, Price: 999.99})
	api.createProduct(t, handlers.ProductRequest{Name: "Tablet", Quantity: 2, Price: 499.99})

	resp := api.listProducts(t, "")

	assert.Equal(t, []handlers.ProductResponse{
		{Index: 0, Name: "Phone", Quantity: 1, Price: 999.99},
		{Index: 1, Name: "Tablet", Quantity: 2, Price: 499.99},
	}, resp.Data)
	assert.Equal(t, 2, resp.Meta.TotalCount)
	assert.Equal(t, repo.DefaultCapacity, resp.Meta.Capacity)
}

func TestGetProductsHandler_Filter(t *testing.T) {
	api := newTestAPI(t)
	api.createProduct(t, handlers.ProductRequest{Name: "Mouse", Quantity: 10, Price: 9.99})
	api.createProduct(t, handlers.ProductRequest{Name: "Keyboard", Quantity: 5, Price: 29.5})
	api.createProduct(t, handlers.ProductRequest{Name: "Gaming Mouse", Quantity: 0, Price: 59})

	resp := api.listProducts(t, "?name=mouse&minPrice=10")

	require.Len(t, resp.Data, 1)
	assert.Equal(t, 2, resp.Data[0].Index)
	assert.Equal(t, 1, resp.Meta.TotalCount)

	for _, q := range []string{"?limit=0", "?offset=-1", "?minQty=x", "?maxPrice=abc"} {
		w := api.do(http.MethodGet, "/products"+q, nil, false)
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
	}
}

func TestGetProductByNameHandler(t *testing.T) {
	api := newTestAPI(t)
	api.createProduct(t, handlers.ProductRequest{Name: "Mouse", Quantity: 10, Price: 9.99})
	api.createProduct(t, handlers.ProductRequest{Name: "Gaming Mouse", Quantity: 0, Price: 59})

	w := api.do(http.MethodGet, "/products/Gaming%20Mouse", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	var resp handlers.ProductResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, 1, resp.Index)

	w = api.do(http.MethodGet, "/products/Monitor", nil, false)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateProductHandler(t *testing.T) {
	api := newTestAPI(t)
	api.createProduct(t, handlers.ProductRequest{Name: "Mouse", Quantity: 10, Price: 9.99})

	w := api.do(http.MethodPut, "/products/Mouse", handlers.ProductRequest{Name: "Wireless Mouse", Quantity: 3, Price: 19.9}, true)

	require.Equal(t, http.StatusOK, w.Code)
	resp := api.listProducts(t, "")
	assert.Equal(t, []handlers.ProductResponse{{Index: 0, Name: "Wireless Mouse", Quantity: 3, Price: 19.9}}, resp.Data)
}

func TestUpdateProductHandler_NotFound(t *testing.T) {
	api := newTestAPI(t)
	api.createProduct(t, handlers.ProductRequest{Name: "Mouse", Quantity: 10, Price: 9.99})

	w := api.do(http.MethodPut, "/products/Monitor", handlers.ProductRequest{Name: "Monitor", Quantity: 0, Price: 199.99}, true)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, []handlers.ProductResponse{{Index: 0, Name: "Mouse", Quantity: 10, Price: 9.99}}, api.listProducts(t, "").Data)
}

func TestDeleteProductHandler(t *testing.T) {
	api := newTestAPI(t)
	api.createProduct(t, handlers.ProductRequest{Name: "Mouse", Quantity: 10, Price: 9.99})
	api.createProduct(t, handlers.ProductRequest{Name: "Keyboard", Quantity: 5, Price: 29.5})

	w := api.do(http.MethodDelete, "/products/Mouse", nil, true)
	require.Equal(t, http.StatusNoContent, w.Code)

	assert.Equal(t, []handlers.ProductResponse{{Index: 0, Name: "Keyboard", Quantity: 5, Price: 29.5}}, api.listProducts(t, "").Data)

	w = api.do(http.MethodDelete, "/products/Mouse", nil, true)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetSummaryHandler(t *testing.T) {
	api := newTestAPI(t)
	api.createProduct(t, handlers.ProductRequest{Name: "Mouse", Quantity: 10, Price: 9.99})
	api.createProduct(t, handlers.ProductRequest{Name: "Monitor", Quantity: 0, Price: 199.99})

	w := api.do(http.MethodGet, "/metrics/summary", nil, false)

	require.Equal(t, http.StatusOK, w.Code)
	var s repo.Summary
	require.NoError(t, json.NewDecoder(w.Body).Decode(&s))
	assert.Equal(t, 2, s.TotalProducts)
	assert.Equal(t, 10, s.TotalUnits)
	assert.Equal(t, "99.90", s.InventoryValue)
	assert.Equal(t, 1, s.OutOfStockCount)
}
