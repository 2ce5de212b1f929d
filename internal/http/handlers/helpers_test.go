package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/rogerio-castellano/inventory-cli/internal/auth"
	"github.com/rogerio-castellano/inventory-cli/internal/http/handlers"
	"github.com/rogerio-castellano/inventory-cli/internal/http/router"
	"github.com/rogerio-castellano/inventory-cli/internal/repo"
	"github.com/stretchr/testify/require"
)

type testAPI struct {
	router http.Handler
	repo   *repo.FileProductRepository
	token  string
}

func newTestAPI(t *testing.T, opts ...repo.Option) *testAPI {
	t.Helper()
	productRepo := repo.NewFileProductRepository(filepath.Join(t.TempDir(), "inventario.txt"), opts...)
	require.NoError(t, productRepo.Load())

	tokens := auth.NewTokenIssuer("test-secret", time.Minute)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := handlers.NewServer(productRepo, tokens, logger, 20)
	api := &testAPI{router: router.NewRouter(s, tokens, nil), repo: productRepo}

	w := api.do(http.MethodPost, "/login", handlers.LoginRequest{Username: "admin"}, false)
	require.Equal(t, http.StatusOK, w.Code)
	var login handlers.LoginResult
	require.NoError(t, json.NewDecoder(w.Body).Decode(&login))
	api.token = login.Token
	return api
}

func (a *testAPI) do(method, target string, body any, authenticated bool) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if authenticated {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testAPI) createProduct(t *testing.T, p handlers.ProductRequest) handlers.ProductResponse {
	t.Helper()
	w := a.do(http.MethodPost, "/products", p, true)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp handlers.ProductResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func (a *testAPI) listProducts(t *testing.T, query string) handlers.ProductsSearchResult {
	t.Helper()
	w := a.do(http.MethodGet, "/products"+query, nil, false)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp handlers.ProductsSearchResult
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}
