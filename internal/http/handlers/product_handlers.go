package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/rogerio-castellano/inventory-cli/internal/models"
	"github.com/rogerio-castellano/inventory-cli/internal/repo"
)

// CreateProductHandler godoc
// @Summary Add a product
// @Description Appends a product to the inventory and persists the inventory file
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} ProductResponse
// @Failure 400 {array} ProductValidationError
// @Failure 409 {object} ErrorResponse "Inventory is full"
// @Failure 500 {object} ErrorResponse
// @Router /products [post]
func (s *Server) CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		s.respondError(w, r, http.StatusBadRequest, "invalid input")
		return
	}

	if validationErrors := s.validateProduct(req); len(validationErrors) > 0 {
		s.respond(w, r, http.StatusBadRequest, validationErrors)
		return
	}

	created, err := s.productRepo.Add(strings.TrimSpace(req.Name), req.Quantity, req.Price)
	if err != nil {
		s.respondStoreError(w, r, err, "create product")
		return
	}

	s.respond(w, r, http.StatusCreated, toProductResponse(created))
}

// GetProductsHandler godoc
// @Summary List products
// @Description Lists the inventory in order with each product's position, optionally filtered
// @Tags products
// @Produce json
// @Param name query string false "Name contains (case insensitive)"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param minQty query int false "Minimum quantity"
// @Param maxQty query int false "Maximum quantity"
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {object} ProductsSearchResult
// @Failure 400 {object} ErrorResponse
// @Router /products [get]
func (s *Server) GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := repo.ProductFilter{Name: q.Get("name")}
	var err error
	if filter.MinPrice, err = parseFloatPtr(q.Get("minPrice")); err != nil {
		s.respondError(w, r, http.StatusBadRequest, "invalid minPrice")
		return
	}
	if filter.MaxPrice, err = parseFloatPtr(q.Get("maxPrice")); err != nil {
		s.respondError(w, r, http.StatusBadRequest, "invalid maxPrice")
		return
	}
	if filter.MinQty, err = parseIntPtr(q.Get("minQty")); err != nil {
		s.respondError(w, r, http.StatusBadRequest, "invalid minQty")
		return
	}
	if filter.MaxQty, err = parseIntPtr(q.Get("maxQty")); err != nil {
		s.respondError(w, r, http.StatusBadRequest, "invalid maxQty")
		return
	}
	if filter.Offset, err = parseIntPtr(q.Get("offset")); err != nil || (filter.Offset != nil && *filter.Offset < 0) {
		s.respondError(w, r, http.StatusBadRequest, "offset must be zero or positive")
		return
	}
	if filter.Limit, err = parseIntPtr(q.Get("limit")); err != nil || (filter.Limit != nil && *filter.Limit <= 0) {
		s.respondError(w, r, http.StatusBadRequest, "limit must be greater than zero")
		return
	}

	products, total := repo.Filter(s.productRepo.List(), filter)

	resp := ProductsSearchResult{
		Data: make([]ProductResponse, len(products)),
		Meta: Meta{TotalCount: total, Capacity: s.productRepo.Capacity()},
	}
	for i, p := range products {
		resp.Data[i] = toProductResponse(p)
	}
	s.respond(w, r, http.StatusOK, resp)
}

// GetProductByNameHandler godoc
// @Summary Get the first product with a name
// @Tags products
// @Produce json
// @Param name path string true "Product name"
// @Success 200 {object} ProductResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/{name} [get]
func (s *Server) GetProductByNameHandler(w http.ResponseWriter, r *http.Request) {
	product, err := s.productRepo.FindByName(productName(r))
	if err != nil {
		s.respondStoreError(w, r, err, "fetch product")
		return
	}
	s.respond(w, r, http.StatusOK, toProductResponse(product))
}

// UpdateProductHandler godoc
// @Summary Replace a product
// @Description Overwrites name, quantity and price of the first product with the given name
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param name path string true "Product name"
// @Param product body ProductRequest true "Replacement product"
// @Success 200 {object} ProductResponse
// @Failure 400 {array} ProductValidationError
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /products/{name} [put]
func (s *Server) UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		s.respondError(w, r, http.StatusBadRequest, "invalid input")
		return
	}

	if validationErrors := s.validateProduct(req); len(validationErrors) > 0 {
		s.respond(w, r, http.StatusBadRequest, validationErrors)
		return
	}

	updated, err := s.productRepo.EditByName(productName(r), models.Product{
		Name:     strings.TrimSpace(req.Name),
		Quantity: req.Quantity,
		Price:    req.Price,
	})
	if err != nil {
		s.respondStoreError(w, r, err, "update product")
		return
	}
	s.respond(w, r, http.StatusOK, toProductResponse(updated))
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Description Removes the first product with the given name; later products move up one position
// @Tags products
// @Security BearerAuth
// @Param name path string true "Product name"
// @Success 204 "Deleted successfully"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /products/{name} [delete]
func (s *Server) DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.productRepo.DeleteByName(productName(r)); err != nil {
		s.respondStoreError(w, r, err, "delete product")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func parseFloatPtr(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func parseIntPtr(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
