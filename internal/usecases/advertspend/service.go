package advertspend

import (
	"context"
	"time"

	wbdomain "github.com/vfg2006/wb-analytics-sync/infrastructure/integrator/wb/domain"
	"github.com/vfg2006/wb-analytics-sync/infrastructure/integrator/wb/wbclient"
	"github.com/vfg2006/wb-analytics-sync/internal/config"
	"github.com/vfg2006/wb-analytics-sync/internal/domain"
	"github.com/vfg2006/wb-analytics-sync/internal/usecases/assembling"
	"github.com/vfg2006/wb-analytics-sync/internal/usecases/collecting"
)

// Columns é a lista fixa de colunas da tabela de gastos de campanha.
var Columns = []string{
	"updTime", "campName", "paymentType", "updNum", "updSum",
	"advertId", "advertType", "advertStatus", "sku", "account",
}

// Service coleta o histórico diário de gastos de campanha de todas as
// contas. Cada unidade (conta × dia) é uma requisição única com retry;
// não há paginação neste endpoint.
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

	var units []collecting.Unit
	for _, date := range dates {
		for _, account := range accounts {
			units = append(units, collecting.Unit{Account: account, Date: date})
		}
	}

	gate := collecting.NewGate(s.cfg.AdvertSpendSync.MaxConcurrentUnits)
	policy := s.policy()

	outcomes, summary := collecting.FanOut(units, gate, func(unit collecting.Unit) ([]wbdomain.SpendUpdate, error) {
		date := unit.Date.Format(time.DateOnly)
		return collecting.DoWithRetry(policy, func() ([]wbdomain.SpendUpdate, error) {
			return s.client.GetSpendHistory(ctx, unit.Account.Token, date, date)
		})
	})

	var rows []domain.FlatRow
	for _, outcome := range outcomes {
		if outcome.Status != collecting.UnitSucceeded {
			continue
		}
		rows = append(rows, ProjectSpend(outcome.Records, outcome.Unit.Account.Name, outcome.Unit.Date.Format(time.DateOnly))...)
	}

	table := assembling.Project(rows, Columns)

	return table, summary, nil
}

func (s *Service) policy() collecting.BackoffPolicy {
	cfg := s.cfg.AdvertSpendSync
	delay := time.Duration(cfg.RetryDelaySecs) * time.Second
	return collecting.BackoffPolicy{
		MaxRetries:     cfg.MaxRetries,
		RateLimitDelay: delay,
		NetworkDelay:   delay,
	}
}
