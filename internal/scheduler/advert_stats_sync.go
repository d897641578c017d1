package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/wb-analytics-sync/infrastructure/integrator/sheets"
	"github.com/vfg2006/wb-analytics-sync/infrastructure/repository"
	"github.com/vfg2006/wb-analytics-sync/internal/config"
	"github.com/vfg2006/wb-analytics-sync/internal/domain"
	"github.com/vfg2006/wb-analytics-sync/internal/usecases/advertstats"
)

// AdvertStatsSyncConfig representa a configuração do agendador de estatística de campanhas
type AdvertStatsSyncConfig struct {
	CronSchedule       string
	LookbackDays       int
	MaxConcurrentUnits int
	SyncEnabled        bool
}

// AdvertStatsSyncService gerencia o agendamento e execução da sincronização de estatística de campanhas
type AdvertStatsSyncService struct {
	scheduler           *gocron.Scheduler
	config              AdvertStatsSyncConfig
	appConfig           *config.Config
	statsService        *advertstats.Service
	sink                sheets.Sink
	syncRunRepo         repository.SyncRunRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewAdvertStatsSyncService cria uma nova instância do serviço de sincronização de estatística de campanhas
func NewAdvertStatsSyncService(
	statsService *advertstats.Service,
	sink sheets.Sink,
	syncRunRepo repository.SyncRunRepository,
	appConfig *config.Config,
) *AdvertStatsSyncService {
	syncConfig := AdvertStatsSyncConfig{
		CronSchedule:       appConfig.AdvertStatsSync.CronSchedule,
		LookbackDays:       appConfig.AdvertStatsSync.LookbackDays,
		MaxConcurrentUnits: appConfig.AdvertStatsSync.MaxConcurrentUnits,
		SyncEnabled:        appConfig.AdvertStatsSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":        syncConfig.CronSchedule,
		"lookback_days":        syncConfig.LookbackDays,
		"max_concurrent_units": syncConfig.MaxConcurrentUnits,
		"sync_enabled":         syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de estatística de campanhas carregada")

	return &AdvertStatsSyncService{
		scheduler:    scheduler,
		config:       syncConfig,
		appConfig:    appConfig,
		statsService: statsService,
		sink:         sink,
		syncRunRepo:  syncRunRepo,
		syncRunning:  false,
	}
}

// Start inicia o agendador
func (s *AdvertStatsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de estatística de campanhas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de estatística de campanhas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAdvertStats(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de estatística de campanhas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de estatística de campanhas")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAdvertStats executa uma rodada completa: coleta as estatísticas
// das campanhas ativas de todas as contas, escreve a tabela na planilha
// e registra o resumo da execução no banco.
func (s *AdvertStatsSyncService) syncAdvertStats(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de estatística de campanhas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	dates := lookbackDates(s.config.LookbackDays)
	logrus.WithFields(logrus.Fields{
		"days":       s.config.LookbackDays,
		"start_date": dates[0].Format(time.DateOnly),
		"end_date":   dates[len(dates)-1].Format(time.DateOnly),
	}).Info("Iniciando sincronização de estatística de campanhas")

	table, summary, err := s.statsService.Collect(ctx, dates)
	if err != nil {
		logrus.WithError(err).Error("Erro ao coletar estatística de campanhas")
		return
	}

	if len(table.Rows) == 0 {
		logrus.Info("Nenhuma linha de estatística de campanhas para escrever")
	} else if err := s.sink.Append(ctx, s.appConfig.Sheets.AdvertStatsSheet, table); err != nil {
		logrus.WithError(err).Error("Erro ao escrever estatística de campanhas na planilha")
		return
	}

	run := &domain.SyncRun{
		Job:         "advert-stats",
		DateFrom:    dates[0],
		DateTo:      dates[len(dates)-1],
		Units:       summary.Units,
		Succeeded:   summary.Succeeded,
		Empty:       summary.Empty,
		Failed:      summary.Failed,
		RowsWritten: len(table.Rows),
		StartedAt:   startTime,
		FinishedAt:  time.Now(),
	}
	if err := s.syncRunRepo.Save(run); err != nil {
		logrus.WithError(err).Error("Erro ao registrar execução da sincronização de estatística de campanhas")
	}

	logrus.WithFields(logrus.Fields{
		"duration":  time.Since(startTime).String(),
		"units":     summary.Units,
		"succeeded": summary.Succeeded,
		"empty":     summary.Empty,
		"failed":    summary.Failed,
		"rows":      len(table.Rows),
	}).Info("Sincronização de estatística de campanhas concluída")

	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente uma sincronização de estatística de campanhas
func (s *AdvertStatsSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de estatística de campanhas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de estatística de campanhas")
	go s.syncAdvertStats(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *AdvertStatsSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_max_concurrent":    s.config.MaxConcurrentUnits,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
