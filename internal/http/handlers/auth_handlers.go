package handlers

import (
	"net/http"
	"strings"

	"github.com/rogerio-castellano/inventory-cli/internal/auth"
)

// LoginHandler godoc
// @Summary Log in as one of the fixed operators
// @Description Resolves an operator name to its role and returns a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "operator name"
// @Success 200 {object} LoginResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /login [post]
func (s *Server) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := readJSON(w, r, &req); err != nil {
		s.respondError(w, r, http.StatusBadRequest, "invalid input")
		return
	}

	op, err := auth.ResolveOperator(strings.TrimSpace(req.Username))
	if err != nil {
		s.respondError(w, r, http.StatusUnauthorized, "incorrect username")
		return
	}

	token, err := s.tokens.GenerateToken(op)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "failed to generate token", "error", err)
		s.respondError(w, r, http.StatusInternalServerError, "failed to generate token")
		return
	}

	s.logger.InfoContext(r.Context(), "operator logged in", "username", op.Username, "role", op.Role)
	s.respond(w, r, http.StatusOK, LoginResult{Token: token, Role: string(op.Role)})
}
