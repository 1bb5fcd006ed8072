package handler

import (
	"bytes"
	"html/template"
	"net/http"
	"net/url"

	"github.com/vfg2006/sales-dashboard-api/internal/charts"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
	"github.com/vfg2006/sales-dashboard-api/web"
)

var chartTitles = map[charts.Name]string{
	charts.TopCountriesSales:  "🏆 Pays par Ventes",
	charts.TopCountriesProfit: "💰 Pays par Profits",
	charts.CumulativeSales:    "📈 Évolution des Ventes Cumulées",
	charts.CogsByProduct:      "📉 COGS vs Produits",
	charts.ProfitBySegment:    "💹 Profits par Segment",
}

type pageChart struct {
	Title string
	URL   string
	Empty bool
}

type pageData struct {
	Dashboard    *domain.Dashboard
	Options      *domain.FilterOptions
	Country      string
	Year         string
	AllCountries string
	AllYears     string
	ExportURL    string
	PreviewRows  int
	Columns      []string
	Charts       []pageChart
}

// ParsePageTemplate carrega o template embutido da página do painel
func ParsePageTemplate() (*template.Template, error) {
	return template.New("dashboard.html").
		Funcs(template.FuncMap{"num": utils.Round2}).
		ParseFS(web.FS, "templates/dashboard.html")
}

// DashboardPage renderiza a página HTML. Mudar um seletor reenvia o formulário e recalcula o painel.
func DashboardPage(service dashboarding.Dashboarder, page *template.Template, previewRows int) http.Handler {
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

		options, err := service.GetFilterOptions(r.Context(), filters.Country)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		query := url.Values{
			"country": {filters.CountryValue()},
			"year":    {filters.YearValue()},
		}.Encode()

		data := pageData{
			Dashboard:    dashboard,
			Options:      options,
			Country:      filters.CountryValue(),
			Year:         filters.YearValue(),
			AllCountries: domain.AllCountries,
			AllYears:     domain.AllYears,
			ExportURL:    "/v1/dashboard/export?" + query,
			PreviewRows:  previewRows,
			Columns:      domain.RequiredColumns(),
		}
		for _, name := range charts.Names() {
			_, err := charts.Build(name, dashboard.Aggregations, 0)
			data.Charts = append(data.Charts, pageChart{
				Title: chartTitles[name],
				URL:   "/v1/dashboard/charts/" + string(name) + "?" + query,
				Empty: err != nil,
			})
		}

		var buf bytes.Buffer
		if err := page.Execute(&buf, data); err != nil {
			logger.WithError(err).Error("page: erro ao renderizar página")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao renderizar a página", nil)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := buf.WriteTo(w); err != nil {
			logger.WithError(err).Warn("page: erro ao enviar página")
		}
	})
}
