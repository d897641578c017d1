package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/wb-analytics-sync/infrastructure/database/postgres"
	"github.com/vfg2006/wb-analytics-sync/infrastructure/integrator/sheets"
	"github.com/vfg2006/wb-analytics-sync/infrastructure/integrator/wb/wbclient"
	"github.com/vfg2006/wb-analytics-sync/infrastructure/repository"
	"github.com/vfg2006/wb-analytics-sync/internal/api"
	"github.com/vfg2006/wb-analytics-sync/internal/api/handler"
	"github.com/vfg2006/wb-analytics-sync/internal/config"
	"github.com/vfg2006/wb-analytics-sync/internal/scheduler"
	"github.com/vfg2006/wb-analytics-sync/internal/usecases/advertspend"
	"github.com/vfg2006/wb-analytics-sync/internal/usecases/advertstats"
	"github.com/vfg2006/wb-analytics-sync/internal/usecases/content"
	"github.com/vfg2006/wb-analytics-sync/internal/usecases/funnel"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	syncRunRepo := repository.NewSyncRunRepository(pgConn)

	wbClient := wbclient.NewClient(cfg)

	sheetsSink, err := sheets.NewClient(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao Google Sheets")
	}

	statsService := advertstats.NewService(cfg, wbClient)
	spendService := advertspend.NewService(cfg, wbClient)
	contentService := content.NewService(cfg, wbClient)
	funnelService := funnel.NewService(cfg, wbClient)

	// Inicializa os agendadores de sincronização separados
	advertStatsSyncService := scheduler.NewAdvertStatsSyncService(
		statsService,
		sheetsSink,
		syncRunRepo,
		cfg,
	)

	advertSpendSyncService := scheduler.NewAdvertSpendSyncService(
		spendService,
		sheetsSink,
		syncRunRepo,
		cfg,
	)

	contentSyncService := scheduler.NewContentSyncService(
		contentService,
		sheetsSink,
		syncRunRepo,
		cfg,
	)

	funnelSyncService := scheduler.NewFunnelSyncService(
		funnelService,
		sheetsSink,
		syncRunRepo,
		cfg,
	)

	// Inicia os agendadores em background
	if err := advertStatsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de estatística de campanhas")
	} else {
		logrus.Info("Agendador de estatística de campanhas iniciado com sucesso")
	}

	if err := advertSpendSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de gastos de campanha")
	} else {
		logrus.Info("Agendador de gastos de campanha iniciado com sucesso")
	}

	if err := contentSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de cards de conteúdo")
	} else {
		logrus.Info("Agendador de cards de conteúdo iniciado com sucesso")
	}

	if err := funnelSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do funil de vendas")
	} else {
		logrus.Info("Agendador do funil de vendas iniciado com sucesso")
	}

	server, err := api.New(cfg, handler.JobServices{
		AdvertStatsSyncService: advertStatsSyncService,
		AdvertSpendSyncService: advertSpendSyncService,
		ContentSyncService:     contentSyncService,
		FunnelSyncService:      funnelSyncService,
		SyncRunRepo:            syncRunRepo,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
