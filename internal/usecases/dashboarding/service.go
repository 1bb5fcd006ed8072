package dashboarding

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/cache"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/filtering"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/metrics"
	"golang.org/x/sync/singleflight"
)

const DefaultPreviewRows = 10

// Options parametriza o cálculo do painel
type Options struct {
	Aggregation aggregating.Options
	PreviewRows int
}

// Service calcula o painel para cada par de filtros.
// Os dashboards memoizados são compartilhados entre requisições e não devem ser alterados.
type Service struct {
	tables TableProvider
	memo   cache.Cache[*domain.Dashboard]
	group  singleflight.Group
	opts   Options
}

// NewService cria o serviço do painel. memo pode ser nil para recalcular sempre.
func NewService(tables TableProvider, memo cache.Cache[*domain.Dashboard], opts Options) *Service {
	if opts.PreviewRows <= 0 {
		opts.PreviewRows = DefaultPreviewRows
	}
	if opts.Aggregation.TopN <= 0 {
		opts.Aggregation.TopN = aggregating.DefaultTopN
	}
	if opts.Aggregation.MonthOrder == "" {
		opts.Aggregation.MonthOrder = aggregating.MonthOrderAlphabetical
	}

	return &Service{
		tables: tables,
		memo:   memo,
		opts:   opts,
	}
}

// GetDashboard filtra o dataset e calcula KPIs, projeções e a prévia das linhas
func (s *Service) GetDashboard(ctx context.Context, filters domain.Filters) (*domain.Dashboard, error) {
	key := filters.Key()

	if s.memo != nil {
		if dashboard, ok := s.memo.Get(key); ok {
			return dashboard, nil
		}
	}

	result, err, _ := s.group.Do(key, func() (interface{}, error) {
		return s.compute(ctx, filters)
	})
	if err != nil {
		return nil, err
	}

	dashboard := result.(*domain.Dashboard)
	if s.memo != nil {
		s.memo.Set(key, dashboard)
	}

	return dashboard, nil
}

// GetFilterOptions retorna as opções dos seletores. A lista de anos respeita o país informado.
func (s *Service) GetFilterOptions(ctx context.Context, country *string) (*domain.FilterOptions, error) {
	table, err := s.tables.Table(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatasetUnavailable, err)
	}

	return filtering.Options(table, country)
}

func (s *Service) compute(ctx context.Context, filters domain.Filters) (*domain.Dashboard, error) {
	table, err := s.tables.Table(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatasetUnavailable, err)
	}

	filtered, err := filtering.Apply(table, filters)
	if err != nil {
		return nil, fmt.Errorf("erro ao aplicar filtros: %w", err)
	}

	aggs, err := aggregating.Compute(filtered, s.opts.Aggregation)
	if err != nil {
		return nil, fmt.Errorf("erro ao calcular agregações: %w", err)
	}

	preview, err := filtered.Head(s.opts.PreviewRows)
	if err != nil {
		return nil, fmt.Errorf("erro ao montar prévia: %w", err)
	}

	kpis := metrics.Compute(filtered)
	dashboard := &domain.Dashboard{
		Filters:      filters,
		Rows:         filtered.Len(),
		KPIs:         kpis,
		Cards:        metrics.Cards(kpis),
		Aggregations: aggs,
		Preview:      preview,
	}

	if dashboard.IsEmpty() {
		logrus.WithFields(logrus.Fields{
			"country": filters.CountryValue(),
			"year":    filters.YearValue(),
		}).Warn("dashboard: filtros sem linhas correspondentes")

		dashboard.Warnings = append(dashboard.Warnings, domain.Warning{
			Code:    WarningEmptyResult,
			Message: ErrEmptyResult.Error(),
		})
	}

	return dashboard, nil
}
