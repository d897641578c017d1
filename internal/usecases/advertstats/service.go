package advertstats

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	wbdomain "github.com/vfg2006/wb-analytics-sync/infrastructure/integrator/wb/domain"
	"github.com/vfg2006/wb-analytics-sync/infrastructure/integrator/wb/wbclient"
	"github.com/vfg2006/wb-analytics-sync/internal/config"
	"github.com/vfg2006/wb-analytics-sync/internal/domain"
	"github.com/vfg2006/wb-analytics-sync/internal/usecases/assembling"
	"github.com/vfg2006/wb-analytics-sync/internal/usecases/collecting"
)

// BatchSize é o limite de IDs por chamada ao endpoint fullstats.
const BatchSize = 100

// Columns é a lista fixa de colunas da tabela de estatística de
// campanhas, na ordem de exibição da planilha.
var Columns = []string{
	"date", "avg_position", "cr", "atbs", "article_id", "advertId",
	"views", "clicks", "sum", "orders", "sum_price", "canceled",
	"ctr", "cpc", "cpm", "account",
}

// Service coleta a estatística diária de campanhas de todas as contas:
// monta o conjunto de campanhas ativas por conta, busca o fullstats em
// lotes de 100 IDs por (conta × dia) e projeta o resultado na tabela
// final.
type Service struct {
	cfg    *config.Config
	client wbclient.Client
}

func NewService(cfg *config.Config, client wbclient.Client) *Service {
	return &Service{cfg: cfg, client: client}
}

// Collect executa uma rodada completa para as datas informadas.
func (s *Service) Collect(ctx context.Context, dates []time.Time) (domain.ResultTable, collecting.RunSummary, error) {
	accounts := domain.AccountsFromMap(s.cfg.Accounts)

	// O conjunto de campanhas é montado uma vez por conta e
	// compartilhado, imutável, entre as unidades (conta × dia).
	campaignSets := make(map[string][]int64, len(accounts))
	var units []collecting.Unit
	for _, account := range accounts {
		ids := s.buildCampaignSet(ctx, account)
		campaignSets[account.Name] = ids

		logrus.WithFields(logrus.Fields{
			"account":   account.Name,
			"campaigns": len(ids),
		}).Info("Conjunto de campanhas ativas montado")

		for _, date := range dates {
			units = append(units, collecting.Unit{Account: account, Date: date})
		}
	}

	gate := collecting.NewGate(s.cfg.AdvertStatsSync.MaxConcurrentUnits)
	policy := s.policy()

	outcomes, summary := collecting.FanOut(units, gate, func(unit collecting.Unit) ([]wbdomain.FullStat, error) {
		date := unit.Date.Format(time.DateOnly)
		return collecting.FetchAllBatches(campaignSets[unit.Account.Name], BatchSize,
			func(ids []int64) ([]wbdomain.FullStat, error) {
				return s.client.GetFullStats(ctx, unit.Account.Token, ids, date, date)
			}, policy)
	})

	var rows []domain.FlatRow
	for _, outcome := range outcomes {
		if outcome.Status != collecting.UnitSucceeded {
			continue
		}
		rows = append(rows, ProjectStats(outcome.Records, outcome.Unit.Account.Name, outcome.Unit.Date.Format(time.DateOnly))...)
	}

	table := assembling.Project(rows, Columns)
	table = assembling.Dedup(table)
	table = assembling.FillNulls(table, 0)

	return table, summary, nil
}

func (s *Service) policy() collecting.BackoffPolicy {
	cfg := s.cfg.AdvertStatsSync
	return collecting.BackoffPolicy{
		MaxRetries:     cfg.MaxRetries,
		RateLimitDelay: time.Duration(cfg.RateLimitDelaySecs) * time.Second,
		NetworkDelay:   time.Duration(cfg.NetworkDelaySecs) * time.Second,
		BatchCooldown:  time.Duration(cfg.BatchCooldownSecs) * time.Second,
	}
}
