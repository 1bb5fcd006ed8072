package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// GetDashboard retorna KPIs, cartões, projeções e prévia para os filtros informados
func GetDashboard(service dashboarding.Dashboarder) http.Handler {
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

		logger.WithFields(log.Fields{
			"country": filters.CountryValue(),
			"year":    filters.YearValue(),
			"rows":    dashboard.Rows,
		}).Debug("dashboard: painel calculado")

		writeJSON(w, logger, http.StatusOK, dashboard)
	})
}

// GetFilterOptions retorna as opções dos seletores. Os anos respeitam o país informado.
func GetFilterOptions(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var country *string
		if value := r.URL.Query().Get("country"); !domain.IsSentinel(value) {
			country = &value
		}

		options, err := service.GetFilterOptions(r.Context(), country)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, options)
	})
}
