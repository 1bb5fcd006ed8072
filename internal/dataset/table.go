package dataset

import (
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Table é uma visão imutável do dataset de vendas.
// Toda operação devolve uma nova Table; o DataFrame interno nunca é alterado.
type Table struct {
	df dataframe.DataFrame
}

var columnTypes = map[string]series.Type{
	domain.ColCountry:            series.String,
	domain.ColYear:               series.Int,
	domain.ColMonthName:          series.String,
	domain.ColProduct:            series.String,
	domain.ColSegment:            series.String,
	domain.ColSales:              series.Float,
	domain.ColUnitsSold:          series.Float,
	domain.ColProfit:             series.Float,
	domain.ColSalePrice:          series.Float,
	domain.ColManufacturingPrice: series.Float,
	domain.ColCOGS:               series.Float,
}

// textMarker prefixa as células das colunas de texto dentro do DataFrame.
// O gota trata "NA" e "NaN" como valores ausentes ao carregar, agrupar e comparar texto;
// com o prefixo, nenhum valor de texto coincide com esses marcadores.
const textMarker = "\x1f"

func encodeText(v string) string {
	return textMarker + v
}

func decodeText(v string) string {
	return strings.TrimPrefix(v, textMarker)
}

func isText(col string) bool {
	typ, ok := columnTypes[col]
	return !ok || typ == series.String
}

// FromRecords monta uma Table a partir de um cabeçalho seguido das linhas de dados
func FromRecords(records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, errors.Wrap(ErrMissingColumns, "cabeçalho ausente")
	}

	header := make([]string, len(records[0]))
	for i, name := range records[0] {
		header[i] = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
	}

	if missing := lo.Without(domain.RequiredColumns(), header...); len(missing) > 0 {
		return nil, errors.Wrapf(ErrMissingColumns, "%s", strings.Join(missing, ", "))
	}

	if len(records) < 2 {
		return nil, ErrNoRows
	}

	text := make([]bool, len(header))
	for i, name := range header {
		text[i] = isText(name)
	}

	clean := make([][]string, 0, len(records))
	clean = append(clean, header)
	for _, row := range records[1:] {
		cells := make([]string, len(header))
		for i := range cells {
			if i < len(row) {
				cells[i] = strings.TrimSpace(row[i])
			}
			if text[i] {
				cells[i] = encodeText(cells[i])
			}
		}
		clean = append(clean, cells)
	}

	df := dataframe.LoadRecords(
		clean,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.WithTypes(columnTypes),
	)
	if df.Err != nil {
		return nil, errors.Wrap(df.Err, "erro ao montar tabela")
	}

	for _, col := range append([]string{domain.ColYear}, domain.NumericColumns...) {
		for i, isNaN := range df.Col(col).IsNaN() {
			if isNaN {
				// +2: linha de cabeçalho e contagem a partir de 1
				return nil, errors.Wrapf(ErrInvalidValue, "coluna %q, linha %d", col, i+2)
			}
		}
	}

	return &Table{df: df}, nil
}

// Len retorna o número de linhas
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return t.df.Nrow()
}

// Columns retorna os nomes das colunas
func (t *Table) Columns() []string {
	return t.df.Names()
}

// Strings retorna os valores de uma coluna como texto
func (t *Table) Strings(col string) []string {
	if t.Len() == 0 {
		return []string{}
	}
	values := t.df.Col(col).Records()
	if isText(col) {
		for i, v := range values {
			values[i] = decodeText(v)
		}
	}
	return values
}

// Floats retorna os valores de uma coluna numérica
func (t *Table) Floats(col string) []float64 {
	if t.Len() == 0 {
		return []float64{}
	}
	return t.df.Col(col).Float()
}

// Ints retorna os valores de uma coluna inteira
func (t *Table) Ints(col string) ([]int, error) {
	if t.Len() == 0 {
		return []int{}, nil
	}
	return t.df.Col(col).Int()
}

// Where aplica os predicados em sequência (semântica E) e devolve a visão derivada
func (t *Table) Where(filters ...dataframe.F) (*Table, error) {
	df := t.df
	for _, f := range filters {
		if df.Nrow() == 0 {
			break
		}
		df = df.Filter(f)
		if df.Err != nil {
			return nil, errors.Wrapf(df.Err, "erro ao filtrar coluna %q", f.Colname)
		}
	}
	return &Table{df: df}, nil
}

// GroupSum agrupa pela coluna key e soma a coluna value. Os grupos saem ordenados pela chave.
func (t *Table) GroupSum(key, value string) (*Grouped, error) {
	if t.Len() == 0 {
		return &Grouped{key: key}, nil
	}

	agg := t.df.GroupBy(key).Aggregation(
		[]dataframe.AggregationType{dataframe.Aggregation_SUM},
		[]string{value},
	)
	if agg.Err != nil {
		return nil, errors.Wrapf(agg.Err, "erro ao agrupar %q por %q", value, key)
	}

	for _, name := range agg.Names() {
		if name != key {
			agg = agg.Rename(totalColumn, name)
			break
		}
	}

	agg = agg.Arrange(dataframe.Sort(key))
	if agg.Err != nil {
		return nil, errors.Wrapf(agg.Err, "erro ao ordenar grupos de %q", key)
	}

	return &Grouped{df: agg, key: key}, nil
}

// Head retorna as n primeiras linhas como SalesRecord
func (t *Table) Head(n int) ([]domain.SalesRecord, error) {
	rows := min(n, t.Len())
	out := make([]domain.SalesRecord, 0, max(rows, 0))
	if rows <= 0 {
		return out, nil
	}

	idx := make([]int, rows)
	for i := range idx {
		idx[i] = i
	}
	head := &Table{df: t.df.Subset(idx)}
	if head.df.Err != nil {
		return nil, errors.Wrap(head.df.Err, "erro ao recortar linhas")
	}

	years, err := head.Ints(domain.ColYear)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler coluna de ano")
	}

	countries := head.Strings(domain.ColCountry)
	months := head.Strings(domain.ColMonthName)
	products := head.Strings(domain.ColProduct)
	segments := head.Strings(domain.ColSegment)
	sales := head.Floats(domain.ColSales)
	units := head.Floats(domain.ColUnitsSold)
	profit := head.Floats(domain.ColProfit)
	salePrice := head.Floats(domain.ColSalePrice)
	mfgPrice := head.Floats(domain.ColManufacturingPrice)
	cogs := head.Floats(domain.ColCOGS)

	for i := 0; i < rows; i++ {
		out = append(out, domain.SalesRecord{
			Country:            countries[i],
			Year:               years[i],
			MonthName:          months[i],
			Product:            products[i],
			Segment:            segments[i],
			Sales:              sales[i],
			UnitsSold:          units[i],
			Profit:             profit[i],
			SalePrice:          salePrice[i],
			ManufacturingPrice: mfgPrice[i],
			COGS:               cogs[i],
		})
	}

	return out, nil
}
