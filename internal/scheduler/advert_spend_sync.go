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
	"github.com/vfg2006/wb-analytics-sync/internal/usecases/advertspend"
)

// AdvertSpendSyncConfig representa a configuração do agendador de gastos de campanha
type AdvertSpendSyncConfig struct {
	CronSchedule       string
	LookbackDays       int
	MaxConcurrentUnits int
	SyncEnabled        bool
}

// AdvertSpendSyncService gerencia o agendamento e execução da sincronização de gastos de campanha
type AdvertSpendSyncService struct {
	scheduler           *gocron.Scheduler
	config              AdvertSpendSyncConfig
	appConfig           *config.Config
	spendService        *advertspend.Service
	sink                sheets.Sink
	syncRunRepo         repository.SyncRunRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewAdvertSpendSyncService cria uma nova instância do serviço de sincronização de gastos de campanha
func NewAdvertSpendSyncService(
	spendService *advertspend.Service,
	sink sheets.Sink,
	syncRunRepo repository.SyncRunRepository,
	appConfig *config.Config,
) *AdvertSpendSyncService {
	syncConfig := AdvertSpendSyncConfig{
		CronSchedule:       appConfig.AdvertSpendSync.CronSchedule,
		LookbackDays:       appConfig.AdvertSpendSync.LookbackDays,
		MaxConcurrentUnits: appConfig.AdvertSpendSync.MaxConcurrentUnits,
		SyncEnabled:        appConfig.AdvertSpendSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":        syncConfig.CronSchedule,
		"lookback_days":        syncConfig.LookbackDays,
		"max_concurrent_units": syncConfig.MaxConcurrentUnits,
		"sync_enabled":         syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de gastos de campanha carregada")

	return &AdvertSpendSyncService{
		scheduler:    scheduler,
		config:       syncConfig,
		appConfig:    appConfig,
		spendService: spendService,
		sink:         sink,
		syncRunRepo:  syncRunRepo,
		syncRunning:  false,
	}
}

// Start inicia o agendador
func (s *AdvertSpendSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de gastos de campanha desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de gastos de campanha")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAdvertSpend(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de gastos de campanha: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de gastos de campanha")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAdvertSpend coleta o histórico de gastos do dia de todas as
// contas, escreve a tabela na planilha e registra o resumo no banco.
func (s *AdvertSpendSyncService) syncAdvertSpend(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de gastos de campanha já em andamento, ignorando")
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
	}).Info("Iniciando sincronização de gastos de campanha")

	table, summary, err := s.spendService.Collect(ctx, dates)
	if err != nil {
		logrus.WithError(err).Error("Erro ao coletar gastos de campanha")
		return
	}

	if len(table.Rows) == 0 {
		logrus.Info("Nenhuma linha de gastos de campanha para escrever")
	} else if err := s.sink.Append(ctx, s.appConfig.Sheets.AdvertSpendSheet, table); err != nil {
		logrus.WithError(err).Error("Erro ao escrever gastos de campanha na planilha")
		return
	}

	run := &domain.SyncRun{
		Job:         "advert-spend",
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
		logrus.WithError(err).Error("Erro ao registrar execução da sincronização de gastos de campanha")
	}

	logrus.WithFields(logrus.Fields{
		"duration":  time.Since(startTime).String(),
		"units":     summary.Units,
		"succeeded": summary.Succeeded,
		"empty":     summary.Empty,
		"failed":    summary.Failed,
		"rows":      len(table.Rows),
	}).Info("Sincronização de gastos de campanha concluída")

	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente uma sincronização de gastos de campanha
func (s *AdvertSpendSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de gastos de campanha já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de gastos de campanha")
	go s.syncAdvertSpend(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *AdvertSpendSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_max_concurrent":    s.config.MaxConcurrentUnits,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
