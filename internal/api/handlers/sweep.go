package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"solarcap-sim/internal/analysis"
	"solarcap-sim/internal/api/models"
	"solarcap-sim/internal/model"
	"solarcap-sim/internal/sim"
)

// SweepHandler handles load-power sweep requests
type SweepHandler struct{}

// NewSweepHandler creates a new sweep handler
func NewSweepHandler() *SweepHandler {
	return &SweepHandler{}
}

// RunSweep handles POST /api/v1/sweep
func (h *SweepHandler) RunSweep(c *gin.Context) {
	var req models.SweepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	nodeCfg, err := resolveNodeConfig(req.Config)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_CONFIG",
				Message: err.Error(),
			},
		})
		return
	}

	integ, err := sim.NewIntegrator(req.Config.Solver.Name)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_SOLVER",
				Message: err.Error(),
			},
		})
		return
	}

	results, err := analysis.SweepLoadPower(nodeCfg.ToModelParams(), req.LoadPowersW, integ)
	if err != nil {
		code := "SWEEP_ERROR"
		status := http.StatusInternalServerError
		if errors.Is(err, model.ErrInvalidParameter) {
			code = "INVALID_NODE"
			status = http.StatusBadRequest
		}
		c.JSON(status, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    code,
				Message: err.Error(),
			},
		})
		return
	}

	rankings := make([]models.SweepRanking, 0, len(results))
	for i, r := range results {
		rankings = append(rankings, models.SweepRanking{
			Rank:       i + 1,
			LoadPowerW: r.LoadPowerW,
			Summary:    summaryToAPI(r.Summary),
		})
	}
	c.JSON(http.StatusOK, models.SweepResponse{Rankings: rankings})
}
