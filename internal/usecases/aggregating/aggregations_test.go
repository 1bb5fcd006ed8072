package aggregating

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/dataset/datasettest"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func TestTopCountriesBySales_LimitAndOrder(t *testing.T) {
	rows := make([]domain.SalesRecord, 0, 30)
	for i := 0; i < 15; i++ {
		country := fmt.Sprintf("Country %02d", i)
		rows = append(rows,
			record(country, 2014, "January", "Paseo", "Government", float64(100*(i+1)), 10),
			record(country, 2013, "March", "Velo", "Enterprise", float64(7*i), 5),
		)
	}
	table := datasettest.Table(t, rows...)

	top, err := TopCountriesBySales(table, DefaultTopN)
	require.NoError(t, err)
	require.Len(t, top, 10)
	assert.Equal(t, "Country 14", top[0].Key)
	assert.InDelta(t, 1500+7*14, top[0].Value, 1e-9)
	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].Value, top[i].Value)
	}

	small := datasettest.Table(t, rows[:4]...)
	top, err = TopCountriesBySales(small, DefaultTopN)
	require.NoError(t, err)
	assert.Len(t, top, 2, "no máximo min(10, grupos distintos)")
}

func TestTopCountriesByProfit(t *testing.T) {
	table := datasettest.Table(t, datasettest.Sample()...)

	top, err := TopCountriesByProfit(table, DefaultTopN)
	require.NoError(t, err)
	require.Len(t, top, 4)
	assert.Equal(t, []string{"Mexico", "France", "Germany", "Canada"}, keysOf(top))
	assert.InDelta(t, 32823.6, top[1].Value, 1e-6)
	assert.InDelta(t, 14438.75, top[3].Value, 1e-6)
}

func TestCogsByProduct_OneRowPerGroupAscending(t *testing.T) {
	table := datasettest.Table(t, datasettest.Sample()...)

	cogs, err := CogsByProduct(table)
	require.NoError(t, err)
	assert.Equal(t, []string{"Montana", "Carretera", "Velo", "Paseo"}, keysOf(cogs))
	assert.InDelta(t, 8880, cogs[0].Value, 1e-9)
	assert.InDelta(t, 16185+13210+21780, cogs[1].Value, 1e-9)
	assert.InDelta(t, 7410+293750, cogs[3].Value, 1e-9)
}

func TestProfitBySegment_OneRowPerGroupAscending(t *testing.T) {
	table := datasettest.Table(t, datasettest.Sample()...)

	profit, err := ProfitBySegment(table)
	require.NoError(t, err)
	assert.Equal(t, []string{"Enterprise", "Midmarket", "Channel Partners", "Government", "Small Business"}, keysOf(profit))
	assert.InDelta(t, -1746.25, profit[0].Value, 1e-9)
	for i := 1; i < len(profit); i++ {
		assert.LessOrEqual(t, profit[i-1].Value, profit[i].Value)
	}
}

func TestCumulativeSalesByMonth(t *testing.T) {
	table := datasettest.Table(t, datasettest.Sample()...)

	tests := []struct {
		order  MonthOrder
		months []string
	}{
		{order: MonthOrderAlphabetical, months: []string{"December", "January", "June", "October"}},
		{order: MonthOrderCalendar, months: []string{"January", "June", "October", "December"}},
		{order: MonthOrderFirstSeen, months: []string{"January", "June", "October", "December"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.order), func(t *testing.T) {
			points, err := CumulativeSalesByMonth(table, tt.order)
			require.NoError(t, err)
			require.Len(t, points, len(tt.months))

			var running float64
			for i, p := range points {
				assert.Equal(t, tt.months[i], p.Month)
				running += p.Sales
				assert.InDelta(t, running, p.Cumulative, 1e-6)
				if i > 0 {
					assert.GreaterOrEqual(t, p.Cumulative, points[i-1].Cumulative)
				}
			}
			assert.InDelta(t, 652517.35, points[len(points)-1].Cumulative, 1e-6)
		})
	}
}

func TestCompute_TextKeysThatLookMissing(t *testing.T) {
	table := datasettest.Table(t,
		record("NA", 2014, "January", "NA", "NaN", 100, 40),
		record("NaN", 2014, "January", "Paseo", "Government", 50, 10),
		record("France", 2013, "March", "NA", "NaN", 200, 30),
	)

	aggs, err := Compute(table, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []domain.GroupTotal{
		{Key: "France", Value: 200},
		{Key: "NA", Value: 100},
		{Key: "NaN", Value: 50},
	}, aggs.TopCountriesBySales)
	assert.Equal(t, []string{"NA", "France", "NaN"}, keysOf(aggs.TopCountriesByProfit))
	assert.Equal(t, []domain.GroupTotal{
		{Key: "Paseo", Value: 40},
		{Key: "NA", Value: 230},
	}, aggs.CogsByProduct)
	assert.Equal(t, []domain.GroupTotal{
		{Key: "Government", Value: 10},
		{Key: "NaN", Value: 70},
	}, aggs.ProfitBySegment)
}

func TestCompute_EmptyTable(t *testing.T) {
	aggs, err := Compute(datasettest.Empty(t), DefaultOptions())
	require.NoError(t, err)

	assert.Empty(t, aggs.TopCountriesBySales)
	assert.Empty(t, aggs.TopCountriesByProfit)
	assert.Empty(t, aggs.CumulativeSalesByMonth)
	assert.Empty(t, aggs.CogsByProduct)
	assert.Empty(t, aggs.ProfitBySegment)
	assert.NotNil(t, aggs.CumulativeSalesByMonth)
}

func TestParseMonthOrder(t *testing.T) {
	order, err := ParseMonthOrder("")
	require.NoError(t, err)
	assert.Equal(t, MonthOrderAlphabetical, order)

	order, err = ParseMonthOrder(" Calendar ")
	require.NoError(t, err)
	assert.Equal(t, MonthOrderCalendar, order)

	_, err = ParseMonthOrder("fiscal")
	assert.Error(t, err)
}

func TestCalendarIndex(t *testing.T) {
	assert.Equal(t, 1, calendarIndex("January"))
	assert.Equal(t, 12, calendarIndex("Dec"))
	assert.Equal(t, 13, calendarIndex("Brumaire"))
}

func record(country string, year int, month, product, segment string, sales, profit float64) domain.SalesRecord {
	return domain.SalesRecord{
		Country: country, Year: year, MonthName: month, Product: product, Segment: segment,
		Sales: sales, UnitsSold: 1, Profit: profit, SalePrice: sales, ManufacturingPrice: 1, COGS: sales - profit,
	}
}

func keysOf(items []domain.GroupTotal) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Key
	}
	return out
}
