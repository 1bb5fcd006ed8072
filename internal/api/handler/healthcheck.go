package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// HealthcheckHandler responde 200 quando o dataset está carregado e 503 caso contrário
func HealthcheckHandler(tables dashboarding.TableProvider) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		table, err := tables.Table(r.Context())
		if err != nil {
			writeJSON(w, logger, http.StatusServiceUnavailable, map[string]any{
				"status": "unavailable",
				"error":  err.Error(),
				"time":   time.Now(),
			})
			return
		}

		writeJSON(w, logger, http.StatusOK, map[string]any{
			"status": "ok",
			"rows":   table.Len(),
			"time":   time.Now(),
		})
	})
}
