package controller

import (
	"bytes"
	"log/slog"
	"net/http"
	"time"

	"climabrasil-server/internal/modules/clima/inmet"
	"climabrasil-server/internal/modules/clima/service"
	"climabrasil-server/internal/modules/clima/types"
	"climabrasil-server/internal/modules/clima/views"
	"climabrasil-server/internal/utils"
)

type ClimaController interface {
	RegisterRoutes(mux *http.ServeMux)
}

type climaControllerImpl struct {
	fetcher inmet.HourFetcher
	now     func() time.Time
}

func NewClimaController(fetcher inmet.HourFetcher) ClimaController {
	return &climaControllerImpl{
		fetcher: fetcher,
		now:     time.Now,
	}
}

func (c *climaControllerImpl) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/clima", c.handleClima)
	mux.HandleFunc("GET /relatorio/diario", c.handleRelatorioDiario)
}

// handleClima serves the latest-hour snapshot. Upstream trouble degrades to an
// empty payload, never to an error status.
func (c *climaControllerImpl) handleClima(w http.ResponseWriter, r *http.Request) {
	window := service.BuildWindow(c.now())
	hora := window.Hours[len(window.Hours)-1]

	estacoes, err := c.fetcher.FetchHour(r.Context(), window.Date, hora)
	if err != nil {
		slog.Warn("snapshot: upstream fetch failed", "date", window.Date, "hora", hora, "error", err)
		utils.WriteJSON(w, http.StatusOK, map[string]any{"dados": []types.StationSnapshot{}})
		return
	}

	utils.WriteJSON(w, http.StatusOK, service.BuildSnapshot(estacoes, window.Date, hora))
}

func (c *climaControllerImpl) handleRelatorioDiario(w http.ResponseWriter, r *http.Request) {
	now := c.now()
	window := service.BuildWindow(now)
	report := service.BuildDailyReport(r.Context(), c.fetcher, window, now)

	var buf bytes.Buffer
	if err := views.RenderDailyReport(&buf, report); err != nil {
		slog.Error("daily report render failed", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to render report")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Error("daily report: write response failed", "error", err)
	}
}
