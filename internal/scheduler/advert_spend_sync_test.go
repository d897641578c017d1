package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	sheetsmocks "github.com/vfg2006/wb-analytics-sync/infrastructure/integrator/sheets/mocks"
	wbdomain "github.com/vfg2006/wb-analytics-sync/infrastructure/integrator/wb/domain"
	wbmocks "github.com/vfg2006/wb-analytics-sync/infrastructure/integrator/wb/mocks"
	repomocks "github.com/vfg2006/wb-analytics-sync/infrastructure/repository/mocks"
	"github.com/vfg2006/wb-analytics-sync/internal/config"
	"github.com/vfg2006/wb-analytics-sync/internal/domain"
	"github.com/vfg2006/wb-analytics-sync/internal/usecases/advertspend"
	"go.uber.org/mock/gomock"
)

func spendTestConfig() *config.Config {
	return &config.Config{
		Accounts: map[string]string{"loja-a": "token-a"},
		Sheets:   config.Sheets{AdvertSpendSheet: "БД_Рекламные_затраты"},
		AdvertSpendSync: config.AdvertSpendSync{
			LookbackDays:       1,
			MaxConcurrentUnits: 2,
			MaxRetries:         1,
		},
	}
}

func TestAdvertSpendSyncService_syncAdvertSpend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := wbmocks.NewMockClient(ctrl)
	mockSink := sheetsmocks.NewMockSink(ctrl)
	mockRepo := repomocks.NewMockSyncRunRepository(ctrl)

	cfg := spendTestConfig()
	yesterday := time.Now().AddDate(0, 0, -1).Format(time.DateOnly)

	mockClient.EXPECT().
		GetSpendHistory(gomock.Any(), "token-a", yesterday, yesterday).
		Return([]wbdomain.SpendUpdate{
			{UpdTime: yesterday + "T08:00:00Z", CampName: "555111222 Vestido", UpdSum: 42.0, AdvertID: 7},
		}, nil)

	mockSink.EXPECT().
		Append(gomock.Any(), "БД_Рекламные_затраты", gomock.Any()).
		Return(nil)

	mockRepo.EXPECT().
		Save(gomock.Any()).
		DoAndReturn(func(run *domain.SyncRun) error {
			assert.Equal(t, "advert-spend", run.Job)
			assert.Equal(t, 1, run.Units)
			assert.Equal(t, 1, run.Succeeded)
			assert.Equal(t, 0, run.Failed)
			assert.Equal(t, 1, run.RowsWritten)
			return nil
		})

	service := &AdvertSpendSyncService{
		config: AdvertSpendSyncConfig{
			LookbackDays:       cfg.AdvertSpendSync.LookbackDays,
			MaxConcurrentUnits: cfg.AdvertSpendSync.MaxConcurrentUnits,
		},
		appConfig:    cfg,
		spendService: advertspend.NewService(cfg, mockClient),
		sink:         mockSink,
		syncRunRepo:  mockRepo,
	}

	service.syncAdvertSpend(context.Background())

	assert.False(t, service.lastSyncCompletedAt.IsZero(), "a conclusão deve ser registrada")
}

func TestAdvertSpendSyncService_syncAdvertSpend_SemLinhasNaoEscreve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := wbmocks.NewMockClient(ctrl)
	mockSink := sheetsmocks.NewMockSink(ctrl)
	mockRepo := repomocks.NewMockSyncRunRepository(ctrl)

	cfg := spendTestConfig()
	yesterday := time.Now().AddDate(0, 0, -1).Format(time.DateOnly)

	mockClient.EXPECT().
		GetSpendHistory(gomock.Any(), "token-a", yesterday, yesterday).
		Return(nil, nil)

	// Sem linhas: a planilha não é tocada, mas a execução é registrada
	mockRepo.EXPECT().
		Save(gomock.Any()).
		DoAndReturn(func(run *domain.SyncRun) error {
			assert.Equal(t, 1, run.Empty)
			assert.Equal(t, 0, run.RowsWritten)
			return nil
		})

	service := &AdvertSpendSyncService{
		config: AdvertSpendSyncConfig{
			LookbackDays:       cfg.AdvertSpendSync.LookbackDays,
			MaxConcurrentUnits: cfg.AdvertSpendSync.MaxConcurrentUnits,
		},
		appConfig:    cfg,
		spendService: advertspend.NewService(cfg, mockClient),
		sink:         mockSink,
		syncRunRepo:  mockRepo,
	}

	service.syncAdvertSpend(context.Background())
}

func TestLookbackDates(t *testing.T) {
	tests := []struct {
		name string
		days int
		want int
	}{
		{name: "Um dia - só ontem", days: 1, want: 1},
		{name: "Três dias em ordem crescente", days: 3, want: 3},
		{name: "Valor inválido vira um dia", days: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dates := lookbackDates(tt.days)
			assert.Len(t, dates, tt.want)

			yesterday := time.Now().AddDate(0, 0, -1).Format(time.DateOnly)
			assert.Equal(t, yesterday, dates[len(dates)-1].Format(time.DateOnly),
				"a última data é sempre ontem")

			for i := 1; i < len(dates); i++ {
				assert.True(t, dates[i-1].Before(dates[i]), "as datas vêm em ordem crescente")
			}
		})
	}
}
