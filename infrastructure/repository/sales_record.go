package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

const defaultSalesTable = "financials"

// salesColumns mapeia as colunas da tabela para os nomes canônicos do dataset
var salesColumns = []struct {
	column string
	header string
}{
	{"country", domain.ColCountry},
	{"year", domain.ColYear},
	{"month_name", domain.ColMonthName},
	{"product", domain.ColProduct},
	{"segment", domain.ColSegment},
	{"sales", domain.ColSales},
	{"units_sold", domain.ColUnitsSold},
	{"profit", domain.ColProfit},
	{"sale_price", domain.ColSalePrice},
	{"manufacturing_price", domain.ColManufacturingPrice},
	{"cogs", domain.ColCOGS},
}

// SalesRecordRepository lê o dataset de vendas de uma tabela Postgres
type SalesRecordRepository struct {
	conn  postgres.Queryer
	table string
}

func NewSalesRecordRepository(conn postgres.Queryer, table string) *SalesRecordRepository {
	if table == "" {
		table = defaultSalesTable
	}
	return &SalesRecordRepository{
		conn:  conn,
		table: table,
	}
}

func (r *SalesRecordRepository) Describe() string {
	return "postgres:" + r.table
}

// Records devolve cabeçalho canônico e linhas como texto, no formato de dataset.FromRecords
func (r *SalesRecordRepository) Records(ctx context.Context) ([][]string, error) {
	query, args, err := r.selectQuery()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	header := make([]string, len(salesColumns))
	for i, c := range salesColumns {
		header[i] = c.header
	}
	records := [][]string{header}

	for rows.Next() {
		var (
			country, month, product, segment string
			year                             sql.NullInt64
			numbers                          [6]sql.NullFloat64
		)

		err := rows.Scan(
			&country, &year, &month, &product, &segment,
			&numbers[0], &numbers[1], &numbers[2], &numbers[3], &numbers[4], &numbers[5],
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear linha: %w", err)
		}

		records = append(records, salesRow(country, year, month, product, segment, numbers))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar linhas: %w", err)
	}

	return records, nil
}

func (r *SalesRecordRepository) selectQuery() (string, []any, error) {
	columns := make([]string, len(salesColumns))
	for i, c := range salesColumns {
		columns[i] = c.column
	}

	return squirrel.
		Select(columns...).
		From(pq.QuoteIdentifier(r.table)).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// salesRow converte uma linha escaneada. Valores nulos viram células vazias,
// rejeitadas depois pela validação do dataset.
func salesRow(country string, year sql.NullInt64, month, product, segment string, numbers [6]sql.NullFloat64) []string {
	row := []string{country, "", month, product, segment}
	if year.Valid {
		row[1] = strconv.FormatInt(year.Int64, 10)
	}

	for _, n := range numbers {
		if !n.Valid {
			row = append(row, "")
			continue
		}
		row = append(row, strconv.FormatFloat(n.Float64, 'f', -1, 64))
	}

	return row
}
