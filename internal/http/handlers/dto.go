package handlers

import "github.com/rogerio-castellano/inventory-cli/internal/models"

type ProductRequest struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity" validate:"gte=0,lte=1000000000"`
	Price    float64 `json:"price" validate:"gte=0,lt=1e15"`
}

type ProductResponse struct {
	Index    int     `json:"index"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

func toProductResponse(p models.ListedProduct) ProductResponse {
	return ProductResponse{
		Index:    p.Index,
		Name:     p.Name,
		Quantity: p.Quantity,
		Price:    p.Price,
	}
}

type Meta struct {
	TotalCount int `json:"total_count"`
	Capacity   int `json:"capacity"`
}

type ProductsSearchResult struct {
	Data []ProductResponse `json:"data"`
	Meta Meta              `json:"meta"`
}

type LoginRequest struct {
	Username string `json:"username"`
}

type LoginResult struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type ImportProductsResult struct {
	ImportedProductsCount int                      `json:"imported"`
	Errors                []ProductValidationError `json:"errors"`
}
