package server

import (
	"net/http"
	"strconv"

	"github.com/me/seeksim/pkg/model"
	"github.com/me/seeksim/pkg/sched"
)

type algorithmInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Directional bool   `json:"directional"`
}

func (s *Server) handleListAlgorithms(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	opts := model.DefaultListOptions()
	if v := r.URL.Query().Get("limit"); v != "" {
		opts.Limit, _ = strconv.Atoi(v)
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		opts.Offset, _ = strconv.Atoi(v)
	}
	opts.Clamp()

	all := sched.Algorithms()
	page := []algorithmInfo{}
	for i := opts.Offset; i < len(all) && len(page) < opts.Limit; i++ {
		page = append(page, algorithmInfo{
			Name:        all[i].String(),
			Description: all[i].Description(),
			Directional: all[i].Directional(),
		})
	}

	respondList(w, reqID, page, &model.Pagination{
		Total:   len(all),
		Limit:   opts.Limit,
		Offset:  opts.Offset,
		HasMore: opts.Offset+len(page) < len(all),
	})
}
