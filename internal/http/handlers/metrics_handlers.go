package handlers

import (
	"net/http"
)

// GetSummaryHandler godoc
// @Summary Inventory summary
// @Tags metrics
// @Produce json
// @Success 200 {object} repo.Summary
// @Router /metrics/summary [get]
func (s *Server) GetSummaryHandler(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, http.StatusOK, s.productRepo.Summary())
}
