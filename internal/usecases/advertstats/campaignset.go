package advertstats

import (
	"context"
	"slices"

	"github.com/sirupsen/logrus"
	wbdomain "github.com/vfg2006/wb-analytics-sync/infrastructure/integrator/wb/domain"
	"github.com/vfg2006/wb-analytics-sync/internal/domain"
)

// buildCampaignSet monta o conjunto deduplicado de IDs de campanha em
// veiculação de uma conta: a união das listagens de lance automático e
// de lance manual, filtradas aos status 9 e 11. Uma falha em uma das
// listagens não derruba a conta — só reduz o conjunto, com aviso no
// log.
func (s *Service) buildCampaignSet(ctx context.Context, account domain.SellerAccount) []int64 {
	seen := make(map[int64]struct{})
	var ids []int64

	add := func(id int64) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	for _, status := range wbdomain.ActiveCampaignStatuses {
		adverts, err := s.client.ListPromotionAdverts(ctx, account.Token, status)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"account": account.Name,
				"status":  status,
			}).Warn("Erro ao listar campanhas de lance automático")
			continue
		}
		for _, advert := range adverts {
			add(advert.AdvertID)
		}
	}

	for _, status := range wbdomain.ActiveCampaignStatuses {
		adverts, err := s.client.ListAuctionAdverts(ctx, account.Token, status)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"account": account.Name,
				"status":  status,
			}).Warn("Erro ao listar campanhas de lance manual")
			continue
		}
		for _, advert := range adverts {
			// O endpoint de leilão devolve campanhas fora do status
			// pedido; o filtro é reaplicado aqui.
			if slices.Contains(wbdomain.ActiveCampaignStatuses, advert.Status) {
				add(advert.ID)
			}
		}
	}

	return ids
}
