package content

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

// Columns é a lista fixa de colunas da tabela de fotos de produto.
var Columns = []string{"nmID", "subjectName", "vendorCode", "photos", "account"}

// Service coleta os cards de conteúdo de todas as contas. A listagem é
// paginada pelo cursor (updatedAt, nmID) devolvido a cada página; a
// unidade de trabalho é a conta inteira, sem recorte de data.
type Service struct {
	cfg    *config.Config
	client wbclient.Client
}

func NewService(cfg *config.Config, client wbclient.Client) *Service {
	return &Service{cfg: cfg, client: client}
}

// Collect executa uma rodada completa sobre todas as contas.
func (s *Service) Collect(ctx context.Context) (domain.ResultTable, collecting.RunSummary, error) {
	accounts := domain.AccountsFromMap(s.cfg.Accounts)

	units := make([]collecting.Unit, 0, len(accounts))
	for _, account := range accounts {
		units = append(units, collecting.Unit{Account: account})
	}

	gate := collecting.NewGate(s.cfg.ContentSync.MaxConcurrentUnits)
	policy := s.policy()
	limit := s.cfg.ContentSync.PageSize

	outcomes, summary := collecting.FanOut(units, gate, func(unit collecting.Unit) ([]wbdomain.ContentCard, error) {
		return collecting.FetchAllPages(func(cursor collecting.Cursor) (collecting.Page[wbdomain.ContentCard], error) {
			response, err := s.client.ListCards(ctx, unit.Account.Token, wbdomain.CardsCursor{
				UpdatedAt: cursor.UpdatedAt,
				NmID:      cursor.LastID,
			}, limit)
			if err != nil {
				return collecting.Page[wbdomain.ContentCard]{}, err
			}
			return collecting.Page[wbdomain.ContentCard]{
				Items: response.Cards,
				Next: collecting.Cursor{
					UpdatedAt: response.Cursor.UpdatedAt,
					LastID:    response.Cursor.NmID,
				},
			}, nil
		}, limit, policy)
	})

	var rows []domain.FlatRow
	for _, outcome := range outcomes {
		if outcome.Status != collecting.UnitSucceeded {
			continue
		}
		rows = append(rows, ProjectCards(outcome.Records, outcome.Unit.Account.Name)...)
	}

	table := assembling.Project(rows, Columns)

	return table, summary, nil
}

func (s *Service) policy() collecting.BackoffPolicy {
	cfg := s.cfg.ContentSync
	return collecting.BackoffPolicy{
		MaxRetries:     cfg.MaxRetries,
		RateLimitDelay: time.Duration(cfg.RateLimitDelaySecs) * time.Second,
		NetworkDelay:   time.Duration(cfg.RateLimitDelaySecs) * time.Second,
	}
}
