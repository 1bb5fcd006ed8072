package main

import (
	"context"
	"database/sql"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/dataset"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// Carrega o arquivo de vendas (CSV ou XLSX) na tabela do Postgres usada por DATASET_SOURCE=postgres
func main() {
	flags := pflag.NewFlagSet("seed", pflag.ExitOnError)
	flags.String("data", "", "arquivo de origem (CSV ou XLSX)")
	flags.String("table", "", "tabela de destino")
	_ = flags.Parse(os.Args[1:])

	if f := flags.Lookup("data"); f.Changed {
		_ = viper.BindPFlag("DATASET_PATH", f)
	}
	if f := flags.Lookup("table"); f.Changed {
		_ = viper.BindPFlag("DATASET_TABLE", f)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	_ = log.Setup(cfg.App.LogLevel, cfg.App.Env)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	// A origem é sempre o arquivo, mesmo que DATASET_SOURCE aponte para o banco
	kind := cfg.Dataset.Source
	if kind == dataset.SourcePostgres {
		kind = ""
	}
	src, err := dataset.NewFileSource(kind, cfg.Dataset.Path, cfg.Dataset.Sheet)
	if err != nil {
		logrus.Fatal(err)
	}

	table, err := dataset.Load(ctx, src)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar o arquivo de vendas")
	}

	records, err := table.Head(table.Len())
	if err != nil {
		logrus.Fatal(err)
	}

	db, err := sql.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		logrus.Fatal(err)
	}
	defer db.Close()

	start := time.Now()
	inserted, err := repository.Seed(ctx, db, cfg.Dataset.Table, records)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao popular a tabela de vendas")
	}

	logrus.WithFields(logrus.Fields{
		"table":       cfg.Dataset.Table,
		"rows":        inserted,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("Tabela de vendas populada com sucesso")
}
