package server

import "net/http"

type endpointInfo struct {
	Path        string   `json:"path"`
	Methods     []string `json:"methods"`
	Description string   `json:"description"`
}

type discoveryResponse struct {
	Name        string         `json:"name"`
	Version     string         `json:"version"`
	Description string         `json:"description"`
	Endpoints   []endpointInfo `json:"endpoints"`
}

func (s *Server) handleDiscovery(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	respondOK(w, reqID, discoveryResponse{
		Name:        "seeksim API",
		Version:     "v1",
		Description: "Disk-head scheduling simulator: FCFS, SSTF, SCAN and C-SCAN over a configurable disk geometry",
		Endpoints: []endpointInfo{
			{"/api/v1/algorithms", []string{"GET"}, "List the supported scheduling algorithms"},
			{"/api/v1/simulations", []string{"POST"}, "Run one algorithm over a request workload"},
			{"/api/v1/comparisons", []string{"POST"}, "Run every algorithm over the same workload and rank them by total seek"},
			{"/api/v1/health", []string{"GET"}, "Server health and version"},
			{"/metrics", []string{"GET"}, "Prometheus metrics"},
		},
	})
}
