package server

import (
	"net/http"

	"github.com/me/seeksim/internal/validate"
	"github.com/me/seeksim/pkg/model"
	"github.com/me/seeksim/pkg/sched"
)

// handleCreateSimulation runs one algorithm over the workload in the body
// and returns the full report. Nothing is stored; the report in the
// response is the only copy.
func (s *Server) handleCreateSimulation(w http.ResponseWriter, r *http.Request) {
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

	algo, err := sched.ParseAlgorithm(req.Algorithm)
	if err != nil {
		s.metrics.recordRejected("unknown")
		respondError(w, reqID, http.StatusBadRequest, model.NewUnknownAlgorithmError(req.Algorithm))
		return
	}

	cfg, apiErr := validate.Request(&req, s.config.Geometry())
	if apiErr != nil {
		s.metrics.recordRejected(algo.String())
		respondError(w, reqID, http.StatusBadRequest, apiErr)
		return
	}
	dir, _ := sched.ParseDirection(req.Direction) // validated above

	res, err := sched.New(cfg, req.Requests, req.Head).Simulate(algo, dir)
	if err != nil {
		// Unreachable once the algorithm parsed, but still a caller-input
		// problem, never a 500.
		s.metrics.recordRejected(algo.String())
		respondError(w, reqID, http.StatusBadRequest, model.NewUnknownAlgorithmError(req.Algorithm))
		return
	}

	s.metrics.recordRun(res)
	respondCreated(w, reqID, model.NewSimulationReport(model.GeometryFor(cfg), req.Requests, req.Head, res))
}
