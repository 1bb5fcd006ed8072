package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/cache"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
)

// ExpiringCache é a parte da cache de painéis usada pela limpeza
type ExpiringCache interface {
	CleanExpired() int
	Purge() int
	Stats() cache.Stats
}

// CacheCleanupConfig representa a configuração do agendador de limpeza da cache
type CacheCleanupConfig struct {
	CronSchedule string
	Enabled      bool
}

// CacheCleanupService remove periodicamente os painéis expirados da cache
type CacheCleanupService struct {
	scheduler        *gocron.Scheduler
	config           CacheCleanupConfig
	cache            ExpiringCache
	running          bool
	mutex            sync.Mutex
	lastRunAt        time.Time
	lastRemoved      int
	totalRemoved     int
	lastPurgeAt      time.Time
	lastPurgeRemoved int
}

// NewCacheCleanupService cria uma nova instância do serviço de limpeza da cache
func NewCacheCleanupService(cache ExpiringCache, appConfig *config.Config) *CacheCleanupService {
	cleanupConfig := CacheCleanupConfig{
		CronSchedule: appConfig.Cache.CleanupCron,
		Enabled:      appConfig.Cache.CleanupEnabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": cleanupConfig.CronSchedule,
		"enabled":       cleanupConfig.Enabled,
		"cache_size":    appConfig.Cache.Size,
		"cache_ttl":     appConfig.Cache.TTL.String(),
	}).Info("Configuração do agendador de limpeza da cache carregada")

	return &CacheCleanupService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    cleanupConfig,
		cache:     cache,
	}
}

// Start inicia o agendador
func (s *CacheCleanupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Limpeza da cache desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de limpeza da cache")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.CleanExpired()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza da cache: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de limpeza da cache")
		s.scheduler.Stop()
	}()

	return nil
}

// CleanExpired remove as entradas expiradas. Execuções concorrentes são ignoradas.
func (s *CacheCleanupService) CleanExpired() int {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		logrus.Info("Limpeza da cache já em andamento, ignorando")
		return 0
	}
	s.running = true
	s.mutex.Unlock()

	startTime := time.Now()
	removed := s.cache.CleanExpired()

	s.mutex.Lock()
	s.running = false
	s.lastRunAt = startTime
	s.lastRemoved = removed
	s.totalRemoved += removed
	s.mutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"removed":  removed,
		"duration": time.Since(startTime).String(),
	}).Debug("Limpeza da cache concluída")

	return removed
}

// Purge esvazia a cache manualmente
func (s *CacheCleanupService) Purge() int {
	removed := s.cache.Purge()

	s.mutex.Lock()
	s.lastPurgeAt = time.Now()
	s.lastPurgeRemoved = removed
	s.mutex.Unlock()

	logrus.WithField("removed", removed).Info("Cache de painéis esvaziada manualmente")
	return removed
}

// GetStatus retorna o status atual do agendador e os contadores da cache
func (s *CacheCleanupService) GetStatus() map[string]any {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return map[string]any{
		"cleanup_enabled":    s.config.Enabled,
		"cleanup_cron":       s.config.CronSchedule,
		"cleanup_running":    s.running,
		"last_cleanup_at":    s.lastRunAt,
		"last_removed":       s.lastRemoved,
		"total_removed":      s.totalRemoved,
		"last_purge_at":      s.lastPurgeAt,
		"last_purge_removed": s.lastPurgeRemoved,
		"cache":              s.cache.Stats(),
	}
}
