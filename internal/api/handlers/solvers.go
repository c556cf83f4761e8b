package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"solarcap-sim/internal/api/models"
)

// SolverHandler serves the integrator catalogue
type SolverHandler struct{}

// NewSolverHandler creates a new solver handler
func NewSolverHandler() *SolverHandler {
	return &SolverHandler{}
}

// ListSolvers handles GET /api/v1/solvers
func (h *SolverHandler) ListSolvers(c *gin.Context) {
	solvers := []models.SolverInfo{
		{
			Name:        "quadratic",
			Description: "Canonical model: per-step quadratic node-voltage solve with ESR, load shedding and on/off hysteresis.",
		},
		{
			Name:        "approx",
			Description: "Fast approximate model: bare q/C terminal voltage with a post-hoc ESR drop; no source saturation at Voc.",
		},
	}
	c.JSON(http.StatusOK, gin.H{"solvers": solvers})
}
