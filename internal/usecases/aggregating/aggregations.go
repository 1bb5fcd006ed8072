// Package aggregating calcula as projeções agrupadas usadas pelos gráficos do painel
package aggregating

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/vfg2006/sales-dashboard-api/internal/dataset"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"gonum.org/v1/gonum/floats"
)

// MonthOrder define a ordem dos meses na série de vendas acumuladas
type MonthOrder string

const (
	// MonthOrderAlphabetical ordena pelo nome do mês (ordem natural do agrupamento)
	MonthOrderAlphabetical MonthOrder = "alphabetical"
	// MonthOrderCalendar ordena de janeiro a dezembro
	MonthOrderCalendar MonthOrder = "calendar"
	// MonthOrderFirstSeen mantém a ordem da primeira aparição no dataset
	MonthOrderFirstSeen MonthOrder = "first-seen"
)

const DefaultTopN = 10

// ParseMonthOrder valida o valor configurado. Vazio equivale a alfabético.
func ParseMonthOrder(value string) (MonthOrder, error) {
	switch order := MonthOrder(strings.ToLower(strings.TrimSpace(value))); order {
	case "":
		return MonthOrderAlphabetical, nil
	case MonthOrderAlphabetical, MonthOrderCalendar, MonthOrderFirstSeen:
		return order, nil
	default:
		return "", fmt.Errorf("ordem de meses inválida: %q (use alphabetical, calendar ou first-seen)", value)
	}
}

// Options parametriza as projeções
type Options struct {
	TopN       int
	MonthOrder MonthOrder
}

// DefaultOptions reproduz o comportamento padrão do painel
func DefaultOptions() Options {
	return Options{TopN: DefaultTopN, MonthOrder: MonthOrderAlphabetical}
}

// Compute calcula as cinco projeções sobre a visão filtrada
func Compute(table *dataset.Table, opts Options) (domain.Aggregations, error) {
	var (
		aggs domain.Aggregations
		err  error
	)

	if aggs.TopCountriesBySales, err = TopCountriesBySales(table, opts.TopN); err != nil {
		return domain.Aggregations{}, err
	}
	if aggs.TopCountriesByProfit, err = TopCountriesByProfit(table, opts.TopN); err != nil {
		return domain.Aggregations{}, err
	}
	if aggs.CumulativeSalesByMonth, err = CumulativeSalesByMonth(table, opts.MonthOrder); err != nil {
		return domain.Aggregations{}, err
	}
	if aggs.CogsByProduct, err = CogsByProduct(table); err != nil {
		return domain.Aggregations{}, err
	}
	if aggs.ProfitBySegment, err = ProfitBySegment(table); err != nil {
		return domain.Aggregations{}, err
	}

	return aggs, nil
}

// TopCountriesBySales soma as vendas por país e devolve os n maiores
func TopCountriesBySales(table *dataset.Table, n int) ([]domain.GroupTotal, error) {
	return top(table, domain.ColCountry, domain.ColSales, n)
}

// TopCountriesByProfit soma o lucro por país e devolve os n maiores
func TopCountriesByProfit(table *dataset.Table, n int) ([]domain.GroupTotal, error) {
	return top(table, domain.ColCountry, domain.ColProfit, n)
}

// CogsByProduct soma o COGS por produto, em ordem crescente
func CogsByProduct(table *dataset.Table) ([]domain.GroupTotal, error) {
	return ascending(table, domain.ColProduct, domain.ColCOGS)
}

// ProfitBySegment soma o lucro por segmento, em ordem crescente
func ProfitBySegment(table *dataset.Table) ([]domain.GroupTotal, error) {
	return ascending(table, domain.ColSegment, domain.ColProfit)
}

// CumulativeSalesByMonth soma as vendas por mês e acumula na ordem pedida
func CumulativeSalesByMonth(table *dataset.Table, order MonthOrder) ([]domain.CumulativePoint, error) {
	grouped, err := table.GroupSum(domain.ColMonthName, domain.ColSales)
	if err != nil {
		return nil, err
	}

	items := grouped.Items()
	switch order {
	case MonthOrderCalendar:
		sort.SliceStable(items, func(i, j int) bool {
			return calendarIndex(items[i].Key) < calendarIndex(items[j].Key)
		})
	case MonthOrderFirstSeen:
		position := make(map[string]int)
		for i, month := range lo.Uniq(table.Strings(domain.ColMonthName)) {
			position[month] = i
		}
		sort.SliceStable(items, func(i, j int) bool {
			return position[items[i].Key] < position[items[j].Key]
		})
	}

	points := make([]domain.CumulativePoint, len(items))
	if len(items) == 0 {
		return points, nil
	}

	sales := lo.Map(items, func(item domain.GroupTotal, _ int) float64 { return item.Value })
	cumulative := floats.CumSum(make([]float64, len(sales)), sales)

	for i, item := range items {
		points[i] = domain.CumulativePoint{
			Month:      item.Key,
			Sales:      item.Value,
			Cumulative: cumulative[i],
		}
	}

	return points, nil
}

func top(table *dataset.Table, key, value string, n int) ([]domain.GroupTotal, error) {
	grouped, err := table.GroupSum(key, value)
	if err != nil {
		return nil, err
	}
	if grouped, err = grouped.Descending(); err != nil {
		return nil, err
	}
	if grouped, err = grouped.Head(n); err != nil {
		return nil, err
	}
	return grouped.Items(), nil
}

func ascending(table *dataset.Table, key, value string) ([]domain.GroupTotal, error) {
	grouped, err := table.GroupSum(key, value)
	if err != nil {
		return nil, err
	}
	if grouped, err = grouped.Ascending(); err != nil {
		return nil, err
	}
	return grouped.Items(), nil
}

// calendarIndex aceita nomes completos ou abreviados em inglês; nomes desconhecidos vão para o fim
func calendarIndex(name string) int {
	for _, layout := range []string{"January", "Jan"} {
		if t, err := time.Parse(layout, strings.TrimSpace(name)); err == nil {
			return int(t.Month())
		}
	}
	return 13
}
