package handler

import (
	"html/template"
	"io/fs"
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/charts"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard-api/web"
)

func Healthcheck(tables dashboarding.TableProvider) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(tables),
		},
	}
}

func Dashboard(service dashboarding.Dashboarder, renderer charts.Renderer, topN int) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/dashboard/filters",
			Method:  http.MethodGet,
			Handler: GetFilterOptions(service),
		},
		{
			Path:    "/v1/dashboard/charts/:name",
			Method:  http.MethodGet,
			Handler: GetChart(service, renderer, topN),
		},
		{
			Path:    "/v1/dashboard/export",
			Method:  http.MethodGet,
			Handler: ExportDashboard(service),
		},
	}
}

func Page(service dashboarding.Dashboarder, page *template.Template, previewRows int) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: DashboardPage(service, page, previewRows),
		},
	}
}

func Cache(maintainer CacheMaintainer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cache/status",
			Method:  http.MethodGet,
			Handler: GetCacheStatus(maintainer),
		},
		{
			Path:    "/v1/cache/purge",
			Method:  http.MethodPost,
			Handler: PurgeCache(maintainer),
		},
	}
}

// Static serve os arquivos embutidos em web/static
func Static() ([]router.Route, error) {
	static, err := fs.Sub(web.FS, "static")
	if err != nil {
		return nil, err
	}

	return []router.Route{
		{
			Path:    "/static/*filepath",
			Method:  http.MethodGet,
			Handler: http.StripPrefix("/static/", http.FileServer(http.FS(static))),
		},
	}, nil
}
