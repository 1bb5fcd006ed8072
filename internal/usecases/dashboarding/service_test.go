package dashboarding

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/cache"
	"github.com/vfg2006/sales-dashboard-api/internal/dataset"
	"github.com/vfg2006/sales-dashboard-api/internal/dataset/datasettest"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding/mocks"
	"go.uber.org/mock/gomock"
)

func TestService_GetDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	table := datasettest.Table(t, datasettest.Sample()...)
	tables := mocks.NewMockTableProvider(ctrl)
	tables.EXPECT().Table(gomock.Any()).Return(table, nil).AnyTimes()

	service := NewService(tables, nil, Options{})

	tests := []struct {
		name     string
		filters  domain.Filters
		validate func(t *testing.T, d *domain.Dashboard)
	}{
		{
			name:    "sem filtros - considera todas as linhas",
			filters: domain.Filters{},
			validate: func(t *testing.T, d *domain.Dashboard) {
				assert.Equal(t, 7, d.Rows)
				assert.InDelta(t, 652517.35, d.KPIs.TotalSales, 1e-6)
				assert.Len(t, d.Cards, 6)
				assert.Len(t, d.Preview, 7)
				assert.Len(t, d.Aggregations.TopCountriesBySales, 4)
				assert.Empty(t, d.Warnings)
			},
		},
		{
			name:    "país e ano",
			filters: domain.Filters{Country: strPtr("Germany"), Year: intPtr(2014)},
			validate: func(t *testing.T, d *domain.Dashboard) {
				assert.Equal(t, 2, d.Rows)
				assert.InDelta(t, 39740, d.KPIs.TotalSales, 1e-9)
				assert.InDelta(t, 17650, d.KPIs.TotalProfit, 1e-9)
				assert.Equal(t, []domain.GroupTotal{{Key: "Germany", Value: 39740}}, d.Aggregations.TopCountriesBySales)
				assert.Equal(t, "Germany", *d.Filters.Country)
			},
		},
		{
			name:    "filtros sem linhas - degrada para zeros com aviso",
			filters: domain.Filters{Country: strPtr("Mexico"), Year: intPtr(2013)},
			validate: func(t *testing.T, d *domain.Dashboard) {
				assert.Equal(t, 0, d.Rows)
				assert.Equal(t, domain.KPIs{}, d.KPIs)
				assert.Empty(t, d.Aggregations.TopCountriesBySales)
				assert.Empty(t, d.Aggregations.CumulativeSalesByMonth)
				assert.Empty(t, d.Preview)
				require.Len(t, d.Warnings, 1)
				assert.Equal(t, WarningEmptyResult, d.Warnings[0].Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dashboard, err := service.GetDashboard(context.Background(), tt.filters)
			require.NoError(t, err)
			tt.validate(t, dashboard)
		})
	}
}

func TestService_GetDashboard_PreviewLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tables := mocks.NewMockTableProvider(ctrl)
	tables.EXPECT().Table(gomock.Any()).Return(datasettest.Table(t, datasettest.Sample()...), nil)

	service := NewService(tables, nil, Options{
		PreviewRows: 3,
		Aggregation: aggregating.Options{TopN: 2, MonthOrder: aggregating.MonthOrderCalendar},
	})

	dashboard, err := service.GetDashboard(context.Background(), domain.Filters{})
	require.NoError(t, err)
	assert.Len(t, dashboard.Preview, 3)
	assert.Len(t, dashboard.Aggregations.TopCountriesByProfit, 2)
	assert.Equal(t, "January", dashboard.Aggregations.CumulativeSalesByMonth[0].Month)
}

func TestService_GetDashboard_Memoized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tables := mocks.NewMockTableProvider(ctrl)
	// Um cálculo por par de filtros distinto
	tables.EXPECT().Table(gomock.Any()).Return(datasettest.Table(t, datasettest.Sample()...), nil).Times(2)

	memo := cache.NewLRUCache[*domain.Dashboard](10, time.Minute)
	service := NewService(tables, memo, Options{})

	first, err := service.GetDashboard(context.Background(), domain.Filters{Country: strPtr("France")})
	require.NoError(t, err)
	second, err := service.GetDashboard(context.Background(), domain.Filters{Country: strPtr("France")})
	require.NoError(t, err)
	assert.Same(t, first, second)

	_, err = service.GetDashboard(context.Background(), domain.Filters{Year: intPtr(2014)})
	require.NoError(t, err)

	stats := memo.Stats()
	assert.Equal(t, 2, stats.Size)
	assert.Equal(t, uint64(1), stats.Hits)
}

func TestService_DatasetUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loadErr := &dataset.LoadError{Source: "csv:data/x.csv", Err: dataset.ErrUnreadable}
	tables := mocks.NewMockTableProvider(ctrl)
	tables.EXPECT().Table(gomock.Any()).Return(nil, loadErr).Times(2)

	service := NewService(tables, nil, Options{})

	_, err := service.GetDashboard(context.Background(), domain.Filters{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDatasetUnavailable)
	assert.True(t, dataset.IsLoadError(err))

	_, err = service.GetFilterOptions(context.Background(), nil)
	assert.True(t, errors.Is(err, ErrDatasetUnavailable))
}

func TestService_GetFilterOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tables := mocks.NewMockTableProvider(ctrl)
	tables.EXPECT().Table(gomock.Any()).Return(datasettest.Table(t, datasettest.Sample()...), nil).AnyTimes()

	service := NewService(tables, nil, Options{})

	opts, err := service.GetFilterOptions(context.Background(), strPtr("Canada"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Canada", "Germany", "France", "Mexico"}, opts.Countries)
	assert.Equal(t, []int{2013, 2014}, opts.Years)
}

func TestService_GetDashboard_CountryCodeNA(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	table := datasettest.Table(t,
		domain.SalesRecord{Country: "NA", Year: 2014, MonthName: "January", Product: "Paseo", Segment: "Government", Sales: 100, Profit: 20},
		domain.SalesRecord{Country: "France", Year: 2014, MonthName: "January", Product: "Paseo", Segment: "Government", Sales: 200, Profit: 50},
	)
	tables := mocks.NewMockTableProvider(ctrl)
	tables.EXPECT().Table(gomock.Any()).Return(table, nil).AnyTimes()

	service := NewService(tables, nil, Options{})

	all, err := service.GetDashboard(context.Background(), domain.Filters{})
	require.NoError(t, err)
	assert.Equal(t, 2, all.Rows)
	assert.Equal(t, []string{"France", "NA"}, []string{
		all.Aggregations.TopCountriesBySales[0].Key,
		all.Aggregations.TopCountriesBySales[1].Key,
	})

	namibia, err := service.GetDashboard(context.Background(), domain.Filters{Country: strPtr("NA")})
	require.NoError(t, err)
	assert.Equal(t, 1, namibia.Rows)
	assert.InDelta(t, 100, namibia.KPIs.TotalSales, 1e-9)
	assert.Empty(t, namibia.Warnings)

	opts, err := service.GetFilterOptions(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"NA", "France"}, opts.Countries)
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }
