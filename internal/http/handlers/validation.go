package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ProductValidationError struct {
	Field       string `json:"field,omitempty"`
	Description string `json:"description"`
}

func (s *Server) validateProduct(p ProductRequest) []ProductValidationError {
	errs := []ProductValidationError{}

	name := strings.TrimSpace(p.Name)
	switch {
	case name == "":
		errs = append(errs, ProductValidationError{Field: "Name", Description: "Name is required"})
	case len([]rune(name)) > s.maxNameLength:
		errs = append(errs, ProductValidationError{Field: "Name", Description: fmt.Sprintf("Name cannot be longer than %d characters", s.maxNameLength)})
	case strings.ContainsAny(name, "\r\n"):
		errs = append(errs, ProductValidationError{Field: "Name", Description: "Name cannot contain line breaks"})
	}

	if err := s.validate.Struct(p); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return append(errs, ProductValidationError{Description: err.Error()})
		}
		for _, fe := range fieldErrs {
			switch fe.Field() {
			case "Quantity":
				errs = append(errs, ProductValidationError{Field: "Quantity", Description: "Quantity must be between 0 and 1000000000"})
			case "Price":
				errs = append(errs, ProductValidationError{Field: "Price", Description: "Price must be a non-negative number"})
			}
		}
	}
	return errs
}
