package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"solarcap-sim/internal/analysis"
	"solarcap-sim/internal/api/models"
	"solarcap-sim/internal/api/store"
	"solarcap-sim/internal/config"
	"solarcap-sim/internal/model"
	"solarcap-sim/internal/sim"
)

// SimulateHandler handles simulation requests
type SimulateHandler struct {
	runs *store.RunStore
}

// NewSimulateHandler creates a new simulate handler backed by the given
// run store.
func NewSimulateHandler(runs *store.RunStore) *SimulateHandler {
	return &SimulateHandler{runs: runs}
}

// RunSimulation handles POST /api/v1/simulate
func (h *SimulateHandler) RunSimulation(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	node, integ, ok := h.buildRun(c, req.Config)
	if !ok {
		return
	}

	params := node.Params
	result, err := sim.New().Run(node, integ)
	if err != nil {
		status := http.StatusInternalServerError
		code := "SIMULATION_ERROR"
		if errors.Is(err, model.ErrArithmeticDomain) {
			code = "ARITHMETIC_DOMAIN_ERROR"
		}
		c.JSON(status, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    code,
				Message: err.Error(),
			},
		})
		return
	}

	id := h.runs.Put(params, result)

	resp := models.SimulateResponse{
		ID:      id,
		Status:  "completed",
		Summary: summaryToAPI(analysis.Summarize(result.Trace, params.TimeStepS)),
	}
	if req.Options.IncludeTrace {
		resp.Trace = traceToAPI(result.Trace, req.Options.LimitSamples)
	}
	c.JSON(http.StatusOK, resp)
}

// GetTrace handles GET /api/v1/runs/:id/trace
func (h *SimulateHandler) GetTrace(c *gin.Context) {
	id := c.Param("id")
	run, ok := h.runs.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "RUN_NOT_FOUND",
				Message: "No stored run with that id; it may have expired.",
			},
		})
		return
	}

	c.JSON(http.StatusOK, models.TraceResponse{
		ID:    run.ID,
		Trace: traceToAPI(run.Result.Trace, 0),
	})
}

// buildRun resolves the request config into a validated node and integrator,
// writing the error response itself when something is off.
func (h *SimulateHandler) buildRun(c *gin.Context, sc models.SimConfig) (*model.Node, sim.Integrator, bool) {
	nodeCfg, err := resolveNodeConfig(sc)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_CONFIG",
				Message: err.Error(),
			},
		})
		return nil, nil, false
	}

	node, err := model.NewNode(nodeCfg.ToModelParams())
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_NODE",
				Message: err.Error(),
			},
		})
		return nil, nil, false
	}

	integ, err := sim.NewIntegrator(sc.Solver.Name)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_SOLVER",
				Message: err.Error(),
			},
		})
		return nil, nil, false
	}
	return node, integ, true
}

// resolveNodeConfig merges an optional node preset file with inline overrides.
func resolveNodeConfig(sc models.SimConfig) (config.NodeConfig, error) {
	override := config.NodeConfig{
		Name:           sc.Node.Name,
		ArrayAreaM2:    sc.Node.ArrayAreaM2,
		Efficiency:     sc.Node.Efficiency,
		OpenCircuitV:   sc.Node.OpenCircuitV,
		CapacitanceF:   sc.Node.CapacitanceF,
		ESROhms:        sc.Node.ESROhms,
		InitialChargeC: sc.Node.InitialChargeC,
		LoadPowerW:     sc.Node.LoadPowerW,
		VThreshV:       sc.Node.VThreshV,
		TimeStepS:      sc.Node.TimeStepS,
		DurationS:      sc.Node.DurationS,
	}
	if sc.NodeFile == "" {
		return override, nil
	}
	base, err := config.LoadNodeFile(sc.NodeFile)
	if err != nil {
		return config.NodeConfig{}, err
	}
	return config.MergeNode(base, override), nil
}

func summaryToAPI(s analysis.TraceSummary) models.SimSummary {
	return models.SimSummary{
		Samples:       s.Samples,
		MinVoltageV:   s.MinVoltageV,
		MaxVoltageV:   s.MaxVoltageV,
		MeanVoltageV:  s.MeanVoltageV,
		FinalVoltageV: s.FinalVoltageV,
		FinalChargeC:  s.FinalChargeC,
		OnTimeS:       s.OnTimeS,
		OnFraction:    s.OnFraction,
		LoadEnergyJ:   s.LoadEnergyJ,
	}
}

func traceToAPI(trace []sim.TraceRow, limit int) []models.TraceRow {
	if limit > 0 && limit < len(trace) {
		trace = trace[:limit]
	}
	out := make([]models.TraceRow, 0, len(trace))
	for _, r := range trace {
		out = append(out, models.TraceRow{
			Index:          r.Index,
			TimeS:          r.TimeS,
			VoltageV:       r.VoltageV,
			ChargeC:        r.ChargeC,
			SourceCurrentA: r.SourceCurrentA,
			LoadPowerW:     r.LoadPowerW,
			LoadCurrentA:   r.LoadCurrentA,
			Mode:           string(r.Mode),
		})
	}
	return out
}
