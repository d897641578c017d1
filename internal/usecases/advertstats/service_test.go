package advertstats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	wbdomain "github.com/vfg2006/wb-analytics-sync/infrastructure/integrator/wb/domain"
	"github.com/vfg2006/wb-analytics-sync/infrastructure/integrator/wb/mocks"
	"github.com/vfg2006/wb-analytics-sync/internal/config"
	"github.com/vfg2006/wb-analytics-sync/internal/domain"
	"go.uber.org/mock/gomock"
)

func testConfig(accounts map[string]string) *config.Config {
	return &config.Config{
		Accounts: accounts,
		AdvertStatsSync: config.AdvertStatsSync{
			MaxConcurrentUnits: 10,
			MaxRetries:         1,
		},
	}
}

func TestService_buildCampaignSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := NewService(testConfig(map[string]string{"loja-a": "token-a"}), mockClient)

	// Lance automático: {1, 2, 3} entre os dois status
	mockClient.EXPECT().
		ListPromotionAdverts(gomock.Any(), "token-a", wbdomain.CampaignStatusActive).
		Return([]wbdomain.PromotionAdvert{{AdvertID: 1}, {AdvertID: 2}}, nil)
	mockClient.EXPECT().
		ListPromotionAdverts(gomock.Any(), "token-a", wbdomain.CampaignStatusPaused).
		Return([]wbdomain.PromotionAdvert{{AdvertID: 3}}, nil)

	// Lance manual: {3, 4} mais uma campanha fora de veiculação, que o
	// filtro do cliente descarta
	mockClient.EXPECT().
		ListAuctionAdverts(gomock.Any(), "token-a", wbdomain.CampaignStatusActive).
		Return([]wbdomain.AuctionAdvert{
			{ID: 3, Status: wbdomain.CampaignStatusActive},
			{ID: 4, Status: wbdomain.CampaignStatusActive},
			{ID: 5, Status: 7},
		}, nil)
	mockClient.EXPECT().
		ListAuctionAdverts(gomock.Any(), "token-a", wbdomain.CampaignStatusPaused).
		Return(nil, nil)

	ids := service.buildCampaignSet(context.Background(), domain.SellerAccount{Name: "loja-a", Token: "token-a"})

	assert.Equal(t, []int64{1, 2, 3, 4}, ids, "a união é deduplicada e preserva a ordem de descoberta")
}

func TestService_Collect_LoteiaAs100(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := NewService(testConfig(map[string]string{"loja-a": "token-a"}), mockClient)

	// 150 campanhas ativas: a busca de estatística deve ir em dois lotes
	// (100 + 50)
	adverts := make([]wbdomain.PromotionAdvert, 150)
	for i := range adverts {
		adverts[i] = wbdomain.PromotionAdvert{AdvertID: int64(i + 1)}
	}

	mockClient.EXPECT().
		ListPromotionAdverts(gomock.Any(), "token-a", wbdomain.CampaignStatusActive).
		Return(adverts, nil)
	mockClient.EXPECT().
		ListPromotionAdverts(gomock.Any(), "token-a", wbdomain.CampaignStatusPaused).
		Return(nil, nil)
	mockClient.EXPECT().
		ListAuctionAdverts(gomock.Any(), "token-a", gomock.Any()).
		Return(nil, nil).
		Times(2)

	var batchSizes []int
	mockClient.EXPECT().
		GetFullStats(gomock.Any(), "token-a", gomock.Any(), "2025-06-01", "2025-06-01").
		DoAndReturn(func(_ context.Context, _ string, ids []int64, _, _ string) ([]wbdomain.FullStat, error) {
			batchSizes = append(batchSizes, len(ids))
			return []wbdomain.FullStat{{AdvertID: ids[0], Views: 100, Sum: 10.0}}, nil
		}).
		Times(2)

	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	table, summary, err := service.Collect(context.Background(), []time.Time{date})

	assert.NoError(t, err)
	assert.Equal(t, []int{100, 50}, batchSizes)
	assert.Equal(t, 1, summary.Succeeded)
	assert.Len(t, table.Rows, 2)
	assert.Equal(t, Columns, table.Columns)
}

func TestService_Collect_ContaSemCampanhasFicaVazia(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := NewService(testConfig(map[string]string{"loja-a": "token-a"}), mockClient)

	mockClient.EXPECT().
		ListPromotionAdverts(gomock.Any(), "token-a", gomock.Any()).
		Return(nil, nil).
		Times(2)
	mockClient.EXPECT().
		ListAuctionAdverts(gomock.Any(), "token-a", gomock.Any()).
		Return(nil, nil).
		Times(2)

	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	table, summary, err := service.Collect(context.Background(), []time.Time{date})

	assert.NoError(t, err)
	assert.Equal(t, 1, summary.Empty, "conta sem campanhas vira unidade vazia, não falha")
	assert.Empty(t, table.Rows)
}
