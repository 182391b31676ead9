package handler

import (
	"net/http"

	"app/internal/service"
	"app/internal/stats"

	"github.com/rs/zerolog"
)

// StatsHandler exposes the study-time statistics endpoint
type StatsHandler struct {
	statsService service.StatsService
	logger       zerolog.Logger
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(statsService service.StatsService, logger zerolog.Logger) *StatsHandler {
	return &StatsHandler{statsService: statsService, logger: logger}
}

// RegisterRoutes mounts the statistics route
func (h *StatsHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/statistics", h.getStatistics)
}

// getStatistics godoc
// @Summary Get study-time statistics
// @Description Aggregates sessions into per-course totals, a 7-day series and a daily average.
// @Tags statistics
// @Produce json
// @Param range query string false "Time range: all, week or month" default(all)
// @Success 200 {object} stats.Summary
// @Router /statistics [get]
func (h *StatsHandler) getStatistics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	rng := stats.ParseRange(r.URL.Query().Get("range"))
	summary, err := h.statsService.GetStatistics(r.Context(), rng)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to compute statistics")
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
