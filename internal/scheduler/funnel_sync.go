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
	"github.com/vfg2006/wb-analytics-sync/internal/usecases/funnel"
)

// FunnelSyncConfig representa a configuração do agendador do funil de vendas
type FunnelSyncConfig struct {
	CronSchedule       string
	LookbackDays       int
	MaxConcurrentUnits int
	SyncEnabled        bool
}

// FunnelSyncService gerencia o agendamento e execução da sincronização do funil de vendas
type FunnelSyncService struct {
	scheduler           *gocron.Scheduler
	config              FunnelSyncConfig
	appConfig           *config.Config
	funnelService       *funnel.Service
	sink                sheets.Sink
	syncRunRepo         repository.SyncRunRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewFunnelSyncService cria uma nova instância do serviço de sincronização do funil de vendas
func NewFunnelSyncService(
	funnelService *funnel.Service,
	sink sheets.Sink,
	syncRunRepo repository.SyncRunRepository,
	appConfig *config.Config,
) *FunnelSyncService {
	syncConfig := FunnelSyncConfig{
		CronSchedule:       appConfig.FunnelSync.CronSchedule,
		LookbackDays:       appConfig.FunnelSync.LookbackDays,
		MaxConcurrentUnits: appConfig.FunnelSync.MaxConcurrentUnits,
		SyncEnabled:        appConfig.FunnelSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":        syncConfig.CronSchedule,
		"lookback_days":        syncConfig.LookbackDays,
		"max_concurrent_units": syncConfig.MaxConcurrentUnits,
		"sync_enabled":         syncConfig.SyncEnabled,
	}).Info("Configuração do agendador do funil de vendas carregada")

	return &FunnelSyncService{
		scheduler:     scheduler,
		config:        syncConfig,
		appConfig:     appConfig,
		funnelService: funnelService,
		sink:          sink,
		syncRunRepo:   syncRunRepo,
		syncRunning:   false,
	}
}

// Start inicia o agendador
func (s *FunnelSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização do funil de vendas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do funil de vendas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncFunnel(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização do funil de vendas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do funil de vendas")
		s.scheduler.Stop()
	}()

	return nil
}

// syncFunnel coleta o funil de vendas do dia de todas as contas,
// escreve a tabela na planilha e registra o resumo no banco.
func (s *FunnelSyncService) syncFunnel(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização do funil de vendas já em andamento, ignorando")
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
	}).Info("Iniciando sincronização do funil de vendas")

	table, summary, err := s.funnelService.Collect(ctx, dates)
	if err != nil {
		logrus.WithError(err).Error("Erro ao coletar o funil de vendas")
		return
	}

	if len(table.Rows) == 0 {
		logrus.Info("Nenhuma linha do funil de vendas para escrever")
	} else if err := s.sink.Append(ctx, s.appConfig.Sheets.FunnelSheet, table); err != nil {
		logrus.WithError(err).Error("Erro ao escrever o funil de vendas na planilha")
		return
	}

	run := &domain.SyncRun{
		Job:         "funnel",
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
		logrus.WithError(err).Error("Erro ao registrar execução da sincronização do funil de vendas")
	}

	logrus.WithFields(logrus.Fields{
		"duration":  time.Since(startTime).String(),
		"units":     summary.Units,
		"succeeded": summary.Succeeded,
		"empty":     summary.Empty,
		"failed":    summary.Failed,
		"rows":      len(table.Rows),
	}).Info("Sincronização do funil de vendas concluída")

	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente uma sincronização do funil de vendas
func (s *FunnelSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização do funil de vendas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual do funil de vendas")
	go s.syncFunnel(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *FunnelSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_max_concurrent":    s.config.MaxConcurrentUnits,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
