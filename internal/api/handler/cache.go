package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// CacheMaintainer expõe o estado e a limpeza manual da cache de painéis
type CacheMaintainer interface {
	GetStatus() map[string]any
	Purge() int
}

// GetCacheStatus retorna o status do agendador de limpeza e os contadores da cache
func GetCacheStatus(maintainer CacheMaintainer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, log.ForContext(r.Context()), http.StatusOK, maintainer.GetStatus())
	})
}

// PurgeCache esvazia a cache de painéis
func PurgeCache(maintainer CacheMaintainer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		removed := maintainer.Purge()
		logger.WithField("removed", removed).Info("cache: limpeza manual executada")

		writeJSON(w, logger, http.StatusOK, map[string]any{
			"message": "Cache esvaziada com sucesso",
			"removed": removed,
		})
	})
}
