// Package export gera a planilha XLSX de um painel
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
	"github.com/xuri/excelize/v2"
)

const (
	SheetKPIs            = "KPIs"
	SheetTopSales        = "Top Pays Ventes"
	SheetTopProfit       = "Top Pays Profits"
	SheetCumulativeSales = "Ventes Cumulées"
	SheetCogsByProduct   = "COGS par Produit"
	SheetProfitBySegment = "Profits par Segment"
	SheetPreview         = "Aperçu"

	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Write escreve a planilha com os KPIs, as cinco projeções e a prévia das linhas
func Write(w io.Writer, dashboard *domain.Dashboard) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetKPIs); err != nil {
		return err
	}

	kpiRows := [][]any{
		{"Filtre", "Valeur"},
		{"Country", dashboard.Filters.CountryValue()},
		{"Year", dashboard.Filters.YearValue()},
		{"Rows", dashboard.Rows},
		{},
		{"KPI", "Valeur", "Affichage"},
	}
	raw := []float64{
		dashboard.KPIs.TotalSales,
		dashboard.KPIs.TotalUnits,
		dashboard.KPIs.TotalProfit,
		dashboard.KPIs.AvgSalePrice,
		dashboard.KPIs.AvgManufacturingPrice,
		dashboard.KPIs.ProfitMargin,
	}
	for i, card := range dashboard.Cards {
		var value float64
		if i < len(raw) {
			value = utils.Round2(raw[i])
		}
		kpiRows = append(kpiRows, []any{card.Label, value, card.Value})
	}
	if err := writeRows(f, SheetKPIs, kpiRows); err != nil {
		return err
	}

	aggs := dashboard.Aggregations
	sheets := []struct {
		name   string
		header []any
		items  []domain.GroupTotal
	}{
		{SheetTopSales, []any{domain.ColCountry, domain.ColSales}, aggs.TopCountriesBySales},
		{SheetTopProfit, []any{domain.ColCountry, domain.ColProfit}, aggs.TopCountriesByProfit},
		{SheetCogsByProduct, []any{domain.ColProduct, domain.ColCOGS}, aggs.CogsByProduct},
		{SheetProfitBySegment, []any{domain.ColSegment, domain.ColProfit}, aggs.ProfitBySegment},
	}
	for _, sheet := range sheets {
		rows := [][]any{sheet.header}
		for _, item := range sheet.items {
			rows = append(rows, []any{item.Key, item.Value})
		}
		if err := newSheet(f, sheet.name, rows); err != nil {
			return err
		}
	}

	cumulative := [][]any{{domain.ColMonthName, domain.ColSales, "Cumulative Sales"}}
	for _, point := range aggs.CumulativeSalesByMonth {
		cumulative = append(cumulative, []any{point.Month, point.Sales, point.Cumulative})
	}
	if err := newSheet(f, SheetCumulativeSales, cumulative); err != nil {
		return err
	}

	preview := [][]any{toAny(domain.RequiredColumns())}
	for _, r := range dashboard.Preview {
		preview = append(preview, []any{
			r.Country, r.Year, r.MonthName, r.Product, r.Segment,
			r.Sales, r.UnitsSold, r.Profit, r.SalePrice, r.ManufacturingPrice, r.COGS,
		})
	}
	if err := newSheet(f, SheetPreview, preview); err != nil {
		return err
	}

	f.SetActiveSheet(0)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("erro ao escrever planilha: %w", err)
	}

	return nil
}

// FileName monta o nome do arquivo de download a partir dos filtros
func FileName(filters domain.Filters) (string, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return "", err
	}

	country := strings.ReplaceAll(strings.ToLower(filters.CountryValue()), " ", "-")
	return fmt.Sprintf("ventes_%s_%s_%s.xlsx", country, strings.ToLower(filters.YearValue()), id), nil
}

func newSheet(f *excelize.File, name string, rows [][]any) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("erro ao criar aba %q: %w", name, err)
	}
	return writeRows(f, name, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("erro ao escrever célula %s!%s: %w", sheet, cell, err)
			}
		}
	}

	if len(rows) > 0 && len(rows[0]) > 0 {
		last, _ := excelize.ColumnNumberToName(len(rows[0]))
		if err := f.SetColWidth(sheet, "A", last, 20); err != nil {
			return err
		}
	}

	return nil
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
