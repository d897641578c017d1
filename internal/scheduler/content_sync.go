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
	"github.com/vfg2006/wb-analytics-sync/internal/usecases/content"
)

// ContentSyncConfig representa a configuração do agendador de cards de conteúdo
type ContentSyncConfig struct {
	CronSchedule       string
	MaxConcurrentUnits int
	SyncEnabled        bool
}

// ContentSyncService gerencia o agendamento e execução da sincronização de cards de conteúdo
type ContentSyncService struct {
	scheduler           *gocron.Scheduler
	config              ContentSyncConfig
	appConfig           *config.Config
	contentService      *content.Service
	sink                sheets.Sink
	syncRunRepo         repository.SyncRunRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewContentSyncService cria uma nova instância do serviço de sincronização de cards de conteúdo
func NewContentSyncService(
	contentService *content.Service,
	sink sheets.Sink,
	syncRunRepo repository.SyncRunRepository,
	appConfig *config.Config,
) *ContentSyncService {
	syncConfig := ContentSyncConfig{
		CronSchedule:       appConfig.ContentSync.CronSchedule,
		MaxConcurrentUnits: appConfig.ContentSync.MaxConcurrentUnits,
		SyncEnabled:        appConfig.ContentSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":        syncConfig.CronSchedule,
		"max_concurrent_units": syncConfig.MaxConcurrentUnits,
		"sync_enabled":         syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de cards de conteúdo carregada")

	return &ContentSyncService{
		scheduler:      scheduler,
		config:         syncConfig,
		appConfig:      appConfig,
		contentService: contentService,
		sink:           sink,
		syncRunRepo:    syncRunRepo,
		syncRunning:    false,
	}
}

// Start inicia o agendador
func (s *ContentSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de cards de conteúdo desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de cards de conteúdo")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncContent(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de cards de conteúdo: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de cards de conteúdo")
		s.scheduler.Stop()
	}()

	return nil
}

// syncContent coleta os cards de todas as contas e sobrescreve a aba de
// fotos por inteiro. O catálogo é um retrato do momento, não um
// histórico, por isso a escrita substitui em vez de acrescentar.
func (s *ContentSyncService) syncContent(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de cards de conteúdo já em andamento, ignorando")
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

	logrus.Info("Iniciando sincronização de cards de conteúdo")

	table, summary, err := s.contentService.Collect(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao coletar cards de conteúdo")
		return
	}

	if err := s.sink.Overwrite(ctx, s.appConfig.Sheets.ContentSheet, table); err != nil {
		logrus.WithError(err).Error("Erro ao escrever cards de conteúdo na planilha")
		return
	}

	today := time.Now()
	run := &domain.SyncRun{
		Job:         "content",
		DateFrom:    today,
		DateTo:      today,
		Units:       summary.Units,
		Succeeded:   summary.Succeeded,
		Empty:       summary.Empty,
		Failed:      summary.Failed,
		RowsWritten: len(table.Rows),
		StartedAt:   startTime,
		FinishedAt:  time.Now(),
	}
	if err := s.syncRunRepo.Save(run); err != nil {
		logrus.WithError(err).Error("Erro ao registrar execução da sincronização de cards de conteúdo")
	}

	logrus.WithFields(logrus.Fields{
		"duration":  time.Since(startTime).String(),
		"units":     summary.Units,
		"succeeded": summary.Succeeded,
		"empty":     summary.Empty,
		"failed":    summary.Failed,
		"rows":      len(table.Rows),
	}).Info("Sincronização de cards de conteúdo concluída")

	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente uma sincronização de cards de conteúdo
func (s *ContentSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de cards de conteúdo já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de cards de conteúdo")
	go s.syncContent(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *ContentSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentUnits,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
