package server

import (
	"net/http"

	"github.com/me/seeksim/internal/validate"
	"github.com/me/seeksim/pkg/model"
	"github.com/me/seeksim/pkg/sched"
)

// handleCreateComparison runs all four algorithms over the same workload
// snapshot and reports the winner by total seek distance. Any algorithm
// field in the body is ignored; SCAN and C-SCAN honor the direction.
func (s *Server) handleCreateComparison(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	var req model.SimulationRequest
	if err := decodeJSON(r, &req); err != nil {
		s.metrics.recordRejected("unknown")
		respondError(w, reqID, http.StatusBadRequest, &model.APIError{
			Code:    model.ErrValidation,
			Message: "Invalid JSON body: " + err.Error(),
		})
		return
	}

	cfg, apiErr := validate.Request(&req, s.config.Geometry())
	if apiErr != nil {
		s.metrics.recordRejected("unknown")
		respondError(w, reqID, http.StatusBadRequest, apiErr)
		return
	}
	dir, _ := sched.ParseDirection(req.Direction) // validated above

	engine := sched.New(cfg, req.Requests, req.Head)
	geo := model.GeometryFor(cfg)

	reports := make([]model.SimulationReport, 0, len(sched.Algorithms()))
	for _, algo := range sched.Algorithms() {
		res, err := engine.Simulate(algo, dir)
		if err != nil {
			respondError(w, reqID, http.StatusInternalServerError, &model.APIError{
				Code:    model.ErrInternal,
				Message: "simulation failed: " + err.Error(),
			})
			return
		}
		s.metrics.recordRun(res)
		reports = append(reports, model.NewSimulationReport(geo, req.Requests, req.Head, res))
	}

	respondCreated(w, reqID, model.NewComparisonReport(geo, req.Requests, req.Head, dir.String(), reports))
}
