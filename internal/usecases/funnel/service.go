package funnel

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

// Columns é a lista fixa de colunas da tabela do funil de vendas.
var Columns = []string{
	"account", "nm_id", "vendor_code", "title", "subject_id",
	"subject_name", "brand_name", "product_rating", "feedback_rating",
	"stocks_wb", "stocks_mp", "balance_sum", "open_count", "cart_count",
	"order_count", "orders_sum", "buyout_count", "buyout_sum",
	"cancel_count", "cancel_sum", "avg_price", "avg_orders_count_per_day",
	"share_order_percent", "add_to_wish_list", "time_to_ready",
	"localization_percent", "date",
}

// Service coleta o funil de vendas diário de todas as contas. A
// listagem é paginada por offset, com até 1000 produtos por página; a
// unidade de trabalho é (conta × dia).
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

	gate := collecting.NewGate(s.cfg.FunnelSync.MaxConcurrentUnits)
	policy := s.policy()
	limit := s.cfg.FunnelSync.PageSize

	outcomes, summary := collecting.FanOut(units, gate, func(unit collecting.Unit) ([]wbdomain.FunnelEntry, error) {
		date := unit.Date.Format(time.DateOnly)
		return collecting.FetchAllPages(func(cursor collecting.Cursor) (collecting.Page[wbdomain.FunnelEntry], error) {
			products, err := s.client.GetFunnelProducts(ctx, unit.Account.Token, date, date, limit, cursor.Offset)
			if err != nil {
				return collecting.Page[wbdomain.FunnelEntry]{}, err
			}
			return collecting.Page[wbdomain.FunnelEntry]{
				Items: products,
				Next:  collecting.Cursor{Offset: cursor.Offset + len(products)},
			}, nil
		}, limit, policy)
	})

	var rows []domain.FlatRow
	for _, outcome := range outcomes {
		if outcome.Status != collecting.UnitSucceeded {
			continue
		}
		rows = append(rows, ProjectFunnel(outcome.Records, outcome.Unit.Account.Name)...)
	}

	table := assembling.Project(rows, Columns)
	table = assembling.Dedup(table)

	return table, summary, nil
}

func (s *Service) policy() collecting.BackoffPolicy {
	cfg := s.cfg.FunnelSync
	pageDelay := time.Duration(cfg.PageDelaySecs) * time.Second
	return collecting.BackoffPolicy{
		MaxRetries:     cfg.MaxRetries,
		RateLimitDelay: time.Duration(cfg.RateLimitDelaySecs) * time.Second,
		RateLimitStep:  100 * time.Millisecond,
		NetworkDelay:   pageDelay,
		PageDelay:      pageDelay,
	}
}
