// Package datasettest monta tabelas em memória para os testes dos pacotes consumidores
package datasettest

import (
	"strconv"
	"testing"

	"github.com/vfg2006/sales-dashboard-api/internal/dataset"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Records converte registros de domínio no formato bruto aceito por dataset.FromRecords
func Records(rows ...domain.SalesRecord) [][]string {
	records := [][]string{domain.RequiredColumns()}
	for _, r := range rows {
		records = append(records, []string{
			r.Country,
			strconv.Itoa(r.Year),
			r.MonthName,
			r.Product,
			r.Segment,
			formatFloat(r.Sales),
			formatFloat(r.UnitsSold),
			formatFloat(r.Profit),
			formatFloat(r.SalePrice),
			formatFloat(r.ManufacturingPrice),
			formatFloat(r.COGS),
		})
	}
	return records
}

// Table monta uma Table com as linhas informadas. Sem linhas, devolve a tabela vazia
// resultante de um filtro que não casa com nada.
func Table(t testing.TB, rows ...domain.SalesRecord) *dataset.Table {
	t.Helper()

	if len(rows) == 0 {
		return Empty(t)
	}

	table, err := dataset.FromRecords(Records(rows...))
	if err != nil {
		t.Fatalf("erro ao montar tabela de teste: %v", err)
	}
	return table
}

// Empty devolve uma tabela sem linhas, com o esquema completo
func Empty(t testing.TB) *dataset.Table {
	t.Helper()

	table, err := dataset.FromRecords(Records(domain.SalesRecord{Country: "placeholder", Year: 1}))
	if err != nil {
		t.Fatalf("erro ao montar tabela de teste: %v", err)
	}

	empty, err := table.Where(dataset.CountryIs("__nenhum__"))
	if err != nil {
		t.Fatalf("erro ao filtrar tabela de teste: %v", err)
	}
	return empty
}

// Sample é um conjunto pequeno cobrindo vários países, anos, meses, produtos e segmentos
func Sample() []domain.SalesRecord {
	return []domain.SalesRecord{
		{Country: "Canada", Year: 2014, MonthName: "January", Product: "Carretera", Segment: "Government", Sales: 32370, UnitsSold: 1618, Profit: 16185, SalePrice: 20, ManufacturingPrice: 3, COGS: 16185},
		{Country: "Germany", Year: 2014, MonthName: "January", Product: "Carretera", Segment: "Government", Sales: 26420, UnitsSold: 1321, Profit: 13210, SalePrice: 20, ManufacturingPrice: 3, COGS: 13210},
		{Country: "France", Year: 2014, MonthName: "June", Product: "Carretera", Segment: "Midmarket", Sales: 32670, UnitsSold: 2178, Profit: 10890, SalePrice: 15, ManufacturingPrice: 3, COGS: 21780},
		{Country: "Germany", Year: 2014, MonthName: "June", Product: "Montana", Segment: "Midmarket", Sales: 13320, UnitsSold: 888, Profit: 4440, SalePrice: 15, ManufacturingPrice: 5, COGS: 8880},
		{Country: "France", Year: 2013, MonthName: "October", Product: "Paseo", Segment: "Channel Partners", Sales: 29343.6, UnitsSold: 2470, Profit: 21933.6, SalePrice: 12, ManufacturingPrice: 10, COGS: 7410},
		{Country: "Canada", Year: 2013, MonthName: "October", Product: "Velo", Segment: "Enterprise", Sales: 165893.75, UnitsSold: 1397, Profit: -1746.25, SalePrice: 125, ManufacturingPrice: 120, COGS: 167640},
		{Country: "Mexico", Year: 2014, MonthName: "December", Product: "Paseo", Segment: "Small Business", Sales: 352500, UnitsSold: 1175, Profit: 58750, SalePrice: 300, ManufacturingPrice: 10, COGS: 293750},
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
