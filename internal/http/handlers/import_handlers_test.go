package handlers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rogerio-castellano/inventory-cli/internal/http/handlers"
	"github.com/rogerio-castellano/inventory-cli/internal/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func importCSV(t *testing.T, api *testAPI, csvData string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "products.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(csvData))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/products/import", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+api.token)
	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)
	return w
}

func TestImportProductsHandler(t *testing.T) {
	t.Run("File with unique valid products", func(t *testing.T) {
		api := newTestAPI(t)

		w := importCSV(t, api, "name,quantity,price\nMouse,10,25.99\nKeyboard,5,45.00\n")

		require.Equal(t, http.StatusOK, w.Code)
		var resp handlers.ImportProductsResult
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, 2, resp.ImportedProductsCount)
		assert.Empty(t, resp.Errors)
		assert.Len(t, api.repo.List(), 2)
	})

	t.Run("File with invalid rows", func(t *testing.T) {
		api := newTestAPI(t)

		w := importCSV(t, api, "price,name,quantity\n25.99,Mouse,10\n-1,Broken,3\n45,,1\n45,Keyboard,many\n45.00,Keyboard,5\n")

		require.Equal(t, http.StatusOK, w.Code)
		var resp handlers.ImportProductsResult
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, 2, resp.ImportedProductsCount)
		require.Len(t, resp.Errors, 3)
		assert.Contains(t, resp.Errors[0].Description, "row 3")
	})

	t.Run("Rows beyond capacity are reported", func(t *testing.T) {
		api := newTestAPI(t, repo.WithCapacity(1))

		w := importCSV(t, api, "name,quantity,price\nMouse,10,25.99\nKeyboard,5,45.00\n")

		require.Equal(t, http.StatusOK, w.Code)
		var resp handlers.ImportProductsResult
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, 1, resp.ImportedProductsCount)
		require.Len(t, resp.Errors, 1)
		assert.Contains(t, resp.Errors[0].Description, "inventory is full")
	})

	t.Run("Missing column", func(t *testing.T) {
		api := newTestAPI(t)

		w := importCSV(t, api, "name,price\nMouse,25.99\n")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
