package httpapi

import "net/http"

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStats")
	defer span.End()

	summary, err := h.statsService.Get(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get stats failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, statsDTO{
		TotalTeams:       summary.TotalTeams,
		TotalPlayers:     summary.TotalPlayers,
		TotalFixtures:    summary.TotalFixtures,
		CompletedMatches: summary.CompletedMatches,
		UpcomingMatches:  summary.UpcomingMatches,
	})
}
