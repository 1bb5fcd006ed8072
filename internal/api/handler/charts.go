package handler

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-dashboard-api/internal/charts"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// GetChart desenha uma projeção do painel. Projeção vazia responde 204.
func GetChart(service dashboarding.Dashboarder, renderer charts.Renderer, topN int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		name := charts.Name(httprouter.ParamsFromContext(r.Context()).ByName("name"))

		format, err := charts.ParseFormat(r.URL.Query().Get("format"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato inválido. Valores aceitos: svg, png", nil)
			return
		}

		filters, ok := parseFilters(w, r)
		if !ok {
			return
		}

		dashboard, err := service.GetDashboard(r.Context(), filters)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		spec, err := charts.Build(name, dashboard.Aggregations, topN)
		switch {
		case errors.Is(err, charts.ErrUnknownChart):
			apiErrors.WriteError(w, apiErrors.ErrChartNotFound, "Gráfico inexistente", map[string]any{
				"name":     name,
				"accepted": charts.Names(),
			})
			return
		case errors.Is(err, charts.ErrEmptyChart):
			w.WriteHeader(http.StatusNoContent)
			return
		case err != nil:
			writeServiceError(w, logger, err)
			return
		}

		var buf bytes.Buffer
		if err := renderer.Render(&buf, spec, format); err != nil {
			logger.WithError(err).WithField("chart", string(name)).Error("charts: erro ao desenhar gráfico")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao desenhar o gráfico", nil)
			return
		}

		w.Header().Set("Content-Type", format.ContentType())
		w.Header().Set("Cache-Control", "no-cache")
		if _, err := buf.WriteTo(w); err != nil {
			logger.WithError(err).Warn("charts: erro ao enviar imagem")
		}
	})
}
