package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, logger log.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.WithError(err).Error("erro ao codificar resposta")
	}
}

// parseFilters lê country e year da query string. Responde VAL_003 quando o ano não é inteiro.
func parseFilters(w http.ResponseWriter, r *http.Request) (domain.Filters, bool) {
	query := r.URL.Query()

	filters, err := domain.ParseFilters(query.Get("country"), query.Get("year"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano inválido. Use um número inteiro ou 'all'", map[string]string{
			"year": query.Get("year"),
		})
		return domain.Filters{}, false
	}

	return filters, true
}

func writeServiceError(w http.ResponseWriter, logger log.Logger, err error) {
	if errors.Is(err, dashboarding.ErrDatasetUnavailable) {
		logger.WithError(err).Error("dataset indisponível")
		apiErrors.WriteError(w, apiErrors.ErrDatasetUnavailable, "Dataset de vendas indisponível", nil)
		return
	}

	logger.WithError(err).Error("erro ao calcular painel")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao calcular o painel", nil)
}
