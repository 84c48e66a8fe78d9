package api

import (
	"context"
	"net/http"

	"github.com/alexivanou/cityportal-api/internal/stats"
	"go.uber.org/zap"
)

// StatsCollector is implemented by *stats.Collector.
type StatsCollector interface {
	Collect(ctx context.Context) (*stats.Stats, error)
}

// StatsHandler handles statistics requests
type StatsHandler struct {
	collector StatsCollector
	logger    *zap.Logger
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(collector StatsCollector, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{collector: collector, logger: logger}
}

// GetStats handles GET /api/v1/stats
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	s, err := h.collector.Collect(r.Context())
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, s, h.logger)
}
