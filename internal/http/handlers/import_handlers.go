package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/rogerio-castellano/inventory-cli/internal/repo"
)

type csvRow struct {
	Line     int
	Name     string
	Quantity string
	Price    string
}

func parseCSV(file io.Reader) ([]csvRow, error) {
	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV header")
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range []string{"name", "quantity", "price"} {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("CSV header is missing column %q", col)
		}
	}

	field := func(record []string, col string) string {
		if i := index[col]; i < len(record) {
			return strings.TrimSpace(record[i])
		}
		return ""
	}

	var rows []csvRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %v", err)
		}

		line, _ := reader.FieldPos(0)
		rows = append(rows, csvRow{
			Line:     line,
			Name:     field(record, "name"),
			Quantity: field(record, "quantity"),
			Price:    field(record, "price"),
		})
	}
	return rows, nil
}

func (s *Server) rowToRequest(r csvRow) (ProductRequest, error) {
	quantity, err := strconv.Atoi(r.Quantity)
	if err != nil {
		return ProductRequest{}, errors.New("invalid quantity")
	}
	price, err := strconv.ParseFloat(r.Price, 64)
	if err != nil {
		return ProductRequest{}, errors.New("invalid price")
	}
	req := ProductRequest{Name: r.Name, Quantity: quantity, Price: price}
	if errs := s.validateProduct(req); len(errs) > 0 {
		return ProductRequest{}, errors.New(strings.ToLower(errs[0].Description))
	}
	return req, nil
}

// ImportProductsHandler godoc
// @Summary Import products via CSV
// @Description Adds every valid row of a CSV file with a name,quantity,price header
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {object} ImportProductsResult
// @Failure 400 {object} ErrorResponse "Invalid file"
// @Failure 500 {object} ImportProductsResult "Import stopped by a storage failure"
// @Router /products/import [post]
// @Security BearerAuth
func (s *Server) ImportProductsHandler(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "missing file")
		return
	}
	defer file.Close()

	records, err := parseCSV(file)
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	result := ImportProductsResult{Errors: []ProductValidationError{}}
	for _, rec := range records {
		req, err := s.rowToRequest(rec)
		if err != nil {
			result.Errors = append(result.Errors, ProductValidationError{Description: fmt.Sprintf("row %d: %v", rec.Line, err)})
			continue
		}

		if _, err := s.productRepo.Add(req.Name, req.Quantity, req.Price); err != nil {
			if errors.Is(err, repo.ErrPersistence) {
				s.logger.ErrorContext(r.Context(), "import stopped", "row", rec.Line, "error", err)
				result.Errors = append(result.Errors, ProductValidationError{Description: fmt.Sprintf("row %d: could not save inventory", rec.Line)})
				s.respond(w, r, http.StatusInternalServerError, result)
				return
			}
			result.Errors = append(result.Errors, ProductValidationError{Description: fmt.Sprintf("row %d: %v", rec.Line, err)})
			continue
		}
		result.ImportedProductsCount++
	}

	s.logger.InfoContext(r.Context(), "products imported", "imported", result.ImportedProductsCount, "rejected", len(result.Errors))
	s.respond(w, r, http.StatusOK, result)
}
