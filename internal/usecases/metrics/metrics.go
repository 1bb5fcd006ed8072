// Package metrics calcula os indicadores (KPIs) sobre a visão filtrada
package metrics

import (
	"github.com/vfg2006/sales-dashboard-api/internal/dataset"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Compute calcula os seis KPIs. Tabela vazia produz zeros, nunca NaN.
func Compute(table *dataset.Table) domain.KPIs {
	kpis := domain.KPIs{
		TotalSales:            floats.Sum(table.Floats(domain.ColSales)),
		TotalUnits:            floats.Sum(table.Floats(domain.ColUnitsSold)),
		TotalProfit:           floats.Sum(table.Floats(domain.ColProfit)),
		AvgSalePrice:          mean(table.Floats(domain.ColSalePrice)),
		AvgManufacturingPrice: mean(table.Floats(domain.ColManufacturingPrice)),
	}

	kpis.ProfitMargin = ProfitMargin(kpis.TotalProfit, kpis.TotalSales)
	return kpis
}

// ProfitMargin retorna lucro/vendas em porcentagem, ou 0 quando não há vendas
func ProfitMargin(profit, sales float64) float64 {
	if sales == 0 {
		return 0
	}
	return profit / sales * 100
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}

// Cards formata os KPIs como cartões, na ordem de exibição do painel
func Cards(kpis domain.KPIs) []domain.KPICard {
	return []domain.KPICard{
		{Label: "💰 Ventes Totales", Value: utils.FormatEuros(kpis.TotalSales)},
		{Label: "📦 Total Unités Vendues", Value: utils.FormatThousands(kpis.TotalUnits)},
		{Label: "💵 Profit Total", Value: utils.FormatEuros(kpis.TotalProfit)},
		{Label: "💲 Prix de Vente Moyen", Value: utils.FormatPrice(kpis.AvgSalePrice)},
		{Label: "🏠 Prix de Fabrication Moyen", Value: utils.FormatPrice(kpis.AvgManufacturingPrice)},
		{Label: "📈 Marge Bénéficiaire", Value: utils.FormatPercent(kpis.ProfitMargin)},
	}
}
