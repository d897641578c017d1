package domain

// Status de campanha considerados "em veiculação" pelos jobs de
// sincronização: 9 (ativa) e 11 (pausada-ativa).
const (
	CampaignStatusActive = 9
	CampaignStatusPaused = 11
)

// ActiveCampaignStatuses é a lista de status consultada nos dois
// endpoints de listagem de campanhas.
var ActiveCampaignStatuses = []int{CampaignStatusActive, CampaignStatusPaused}

// PromotionAdvert é uma campanha de lance automático
// (POST /adv/v1/promotion/adverts).
type PromotionAdvert struct {
	AdvertID int64  `json:"advertId"`
	Name     string `json:"name"`
	Type     int    `json:"type"`
	Status   int    `json:"status"`
}

// AuctionAdvert é uma campanha de lance manual
// (GET /adv/v0/auction/adverts). O endpoint não filtra por status de
// forma confiável, então o filtro também é aplicado do lado do cliente.
type AuctionAdvert struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Status int    `json:"status"`
}

// AuctionAdvertsResponse é o envelope da listagem de campanhas de
// lance manual.
type AuctionAdvertsResponse struct {
	Adverts []AuctionAdvert `json:"adverts"`
}
