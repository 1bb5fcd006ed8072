package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/export"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// ExportDashboard devolve o painel filtrado como planilha XLSX
func ExportDashboard(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, ok := parseFilters(w, r)
		if !ok {
			return
		}

		dashboard, err := service.GetDashboard(r.Context(), filters)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		fileName, err := export.FileName(filters)
		if err != nil {
			logger.WithError(err).Error("export: erro ao gerar nome do arquivo")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar a planilha", nil)
			return
		}

		var buf bytes.Buffer
		if err := export.Write(&buf, dashboard); err != nil {
			logger.WithError(err).Error("export: erro ao gerar planilha")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar a planilha", nil)
			return
		}

		w.Header().Set("Content-Type", export.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
		if _, err := buf.WriteTo(w); err != nil {
			logger.WithError(err).Warn("export: erro ao enviar planilha")
		}
	})
}
