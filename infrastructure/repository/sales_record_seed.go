package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// SalesColumns retorna as colunas da tabela de vendas na ordem de leitura
func SalesColumns() []string {
	cols := make([]string, 0, len(salesColumns))
	for _, c := range salesColumns {
		cols = append(cols, c.column)
	}
	return cols
}

// CreateTableStatement monta o DDL da tabela de vendas
func CreateTableStatement(table string) string {
	if table == "" {
		table = defaultSalesTable
	}

	defs := []string{"id SERIAL PRIMARY KEY"}
	for _, c := range salesColumns {
		switch c.header {
		case domain.ColYear:
			defs = append(defs, c.column+" INTEGER NOT NULL")
		case domain.ColCountry, domain.ColMonthName, domain.ColProduct, domain.ColSegment:
			defs = append(defs, c.column+" TEXT NOT NULL")
		default:
			defs = append(defs, c.column+" DOUBLE PRECISION NOT NULL")
		}
	}

	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n\t%s\n)", pq.QuoteIdentifier(table), strings.Join(defs, ",\n\t"))
}

// Seed recria o conteúdo da tabela com os registros informados, numa única transação via COPY
func Seed(ctx context.Context, db *sql.DB, table string, records []domain.SalesRecord) (int, error) {
	if table == "" {
		table = defaultSalesTable
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, CreateTableStatement(table)); err != nil {
		return 0, fmt.Errorf("erro ao criar tabela %s: %w", table, err)
	}

	if _, err := tx.ExecContext(ctx, "TRUNCATE "+pq.QuoteIdentifier(table)+" RESTART IDENTITY"); err != nil {
		return 0, fmt.Errorf("erro ao limpar tabela %s: %w", table, err)
	}

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(table, SalesColumns()...))
	if err != nil {
		return 0, fmt.Errorf("erro ao preparar COPY: %w", err)
	}

	for i, r := range records {
		_, err := stmt.ExecContext(ctx,
			r.Country, r.Year, r.MonthName, r.Product, r.Segment,
			r.Sales, r.UnitsSold, r.Profit, r.SalePrice, r.ManufacturingPrice, r.COGS,
		)
		if err != nil {
			_ = stmt.Close()
			return 0, fmt.Errorf("erro ao inserir linha %d: %w", i+1, err)
		}
	}

	if _, err := stmt.ExecContext(ctx); err != nil {
		_ = stmt.Close()
		return 0, fmt.Errorf("erro ao finalizar COPY: %w", err)
	}
	if err := stmt.Close(); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("erro ao confirmar transação: %w", err)
	}

	return len(records), nil
}
