package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/api"
	"github.com/vfg2006/sales-dashboard-api/internal/bootstrap"
	"github.com/vfg2006/sales-dashboard-api/internal/cache"
	"github.com/vfg2006/sales-dashboard-api/internal/charts"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/dataset"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

func main() {
	configureWorkdir()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := log.Setup(cfg.App.LogLevel, cfg.App.Env); err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
	}
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source, release, err := bootstrap.Source(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar a origem do dataset")
	}
	defer release()

	// Carrega o dataset uma única vez, antes de aceitar requisições
	tables := dataset.NewMemo(source)
	if _, err := tables.Table(ctx); err != nil {
		if dataset.IsLoadError(err) {
			logrus.WithError(err).Fatalf("Não foi possível carregar o dataset de vendas (%s)", source.Describe())
		}
		logrus.WithError(err).Fatal("Erro inesperado ao carregar o dataset")
	}

	opts, err := bootstrap.DashboardOptions(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Configuração do painel inválida")
	}

	memo := cache.NewLRUCache[*domain.Dashboard](cfg.Cache.Size, cfg.Cache.TTL)
	dashboardService := dashboarding.NewService(tables, memo, opts)

	renderer, err := charts.NewRenderer(cfg.Charts.Engine, cfg.Charts.Width, cfg.Charts.Height)
	if err != nil {
		logrus.WithError(err).Fatal("Motor de gráficos inválido")
	}

	cacheCleanupService := scheduler.NewCacheCleanupService(memo, cfg)
	if err := cacheCleanupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza da cache")
	}

	server, err := api.New(cfg, tables, dashboardService, renderer, cacheCleanupService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureWorkdir posiciona o diretório de trabalho na raiz do módulo, de onde DATASET_PATH é resolvido
func configureWorkdir() {
	if _, err := os.Stat("go.mod"); err == nil {
		return
	}

	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return
	}

	root := path.Join(path.Dir(file), "..", "..")
	if _, err := os.Stat(path.Join(root, "go.mod")); err == nil {
		_ = os.Chdir(root)
	}
}
