package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/api/handler"
	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/charts"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

// NewHandler monta o roteador com todas as rotas e a cadeia de middlewares
func NewHandler(
	cfg *config.Config,
	tables dashboarding.TableProvider,
	dashboardService dashboarding.Dashboarder,
	renderer charts.Renderer,
	cacheMaintainer handler.CacheMaintainer,
) (http.Handler, error) {
	page, err := handler.ParsePageTemplate()
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar template da página: %w", err)
	}

	static, err := handler.Static()
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar arquivos estáticos: %w", err)
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(tables)...),
		router.WithRoutes(handler.Page(dashboardService, page, cfg.Dashboard.PreviewRows)...),
		router.WithRoutes(handler.Dashboard(dashboardService, renderer, cfg.Dashboard.TopN)...),
		router.WithRoutes(handler.Cache(cacheMaintainer)...),
		router.WithRoutes(static...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.CorsOrigins),
	}

	return alice.New(middlewares...).Then(rt), nil
}

func New(
	cfg *config.Config,
	tables dashboarding.TableProvider,
	dashboardService dashboarding.Dashboarder,
	renderer charts.Renderer,
	cacheMaintainer handler.CacheMaintainer,
) (*Server, error) {
	h, err := NewHandler(cfg, tables, dashboardService, renderer, cacheMaintainer)
	if err != nil {
		return nil, err
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           h,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}
