package handlers

import (
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/rogerio-castellano/inventory-cli/internal/auth"
	"github.com/rogerio-castellano/inventory-cli/internal/input"
	"github.com/rogerio-castellano/inventory-cli/internal/repo"
)

// Server holds the dependencies shared by the HTTP handlers.
type Server struct {
	productRepo   repo.ProductRepository
	tokens        *auth.TokenIssuer
	logger        *slog.Logger
	validate      *validator.Validate
	maxNameLength int
}

// NewServer wires the handlers to a product repository and a token issuer.
func NewServer(productRepo repo.ProductRepository, tokens *auth.TokenIssuer, logger *slog.Logger, maxNameLength int) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if maxNameLength <= 0 {
		maxNameLength = input.DefaultMaxNameLength
	}
	return &Server{
		productRepo:   productRepo,
		tokens:        tokens,
		logger:        logger,
		validate:      validator.New(validator.WithRequiredStructEnabled()),
		maxNameLength: maxNameLength,
	}
}
