package dashboarding

import (
	"context"

	"github.com/vfg2006/sales-dashboard-api/internal/dataset"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// TableProvider entrega o dataset carregado (memoizado durante toda a vida do processo)
type TableProvider interface {
	Table(ctx context.Context) (*dataset.Table, error)
}

// Dashboarder define as operações do painel consumidas pela camada de apresentação
type Dashboarder interface {
	// GetDashboard filtra o dataset e calcula KPIs, projeções e a prévia das linhas
	GetDashboard(ctx context.Context, filters domain.Filters) (*domain.Dashboard, error)

	// GetFilterOptions retorna as opções dos seletores de país e ano
	GetFilterOptions(ctx context.Context, country *string) (*domain.FilterOptions, error)
}
