// Package bootstrap monta as dependências compartilhadas pelos executáveis
package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/dataset"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
)

// Source escolhe a origem do dataset. A função devolvida libera a conexão do Postgres.
func Source(ctx context.Context, cfg *config.Config) (dataset.Source, func(), error) {
	if strings.EqualFold(cfg.Dataset.Source, dataset.SourcePostgres) {
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
		}

		logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
		return repository.NewSalesRecordRepository(conn, cfg.Dataset.Table), func() { _ = conn.Close() }, nil
	}

	src, err := dataset.NewFileSource(strings.ToLower(cfg.Dataset.Source), cfg.Dataset.Path, cfg.Dataset.Sheet)
	if err != nil {
		return nil, nil, err
	}

	return src, func() {}, nil
}

// DashboardOptions converte a configuração do painel. Ordem de meses inválida é erro.
func DashboardOptions(cfg *config.Config) (dashboarding.Options, error) {
	order, err := aggregating.ParseMonthOrder(cfg.Dashboard.MonthOrder)
	if err != nil {
		return dashboarding.Options{}, err
	}

	return dashboarding.Options{
		Aggregation: aggregating.Options{
			TopN:       cfg.Dashboard.TopN,
			MonthOrder: order,
		},
		PreviewRows: cfg.Dashboard.PreviewRows,
	}, nil
}
