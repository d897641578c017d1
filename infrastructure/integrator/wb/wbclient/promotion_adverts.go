package wbclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	wbdomain "github.com/vfg2006/wb-analytics-sync/infrastructure/integrator/wb/domain"
)

// ListPromotionAdverts lista as campanhas de lance automático com o
// status informado. O endpoint filtra por status do lado do servidor.
func (c *WBClient) ListPromotionAdverts(ctx context.Context, token string, status int) ([]wbdomain.PromotionAdvert, error) {
	endpoint := fmt.Sprintf("%s/adv/v1/promotion/adverts", c.cfg.WB.AdvertURL)

	params := url.Values{}
	params.Set("status", fmt.Sprintf("%d", status))
	params.Set("order", "id")

	req, err := newJSONRequest(ctx, http.MethodPost, endpoint+"?"+params.Encode(), []any{})
	if err != nil {
		return nil, err
	}

	var adverts []wbdomain.PromotionAdvert
	if err := c.doJSON(req, token, &adverts); err != nil {
		return nil, errors.Wrap(err, "erro ao listar campanhas de lance automático")
	}

	return adverts, nil
}

// ListAuctionAdverts lista as campanhas de lance manual com o status
// informado. O filtro de status também é reaplicado pelo chamador,
// porque o endpoint devolve campanhas fora do status solicitado.
func (c *WBClient) ListAuctionAdverts(ctx context.Context, token string, status int) ([]wbdomain.AuctionAdvert, error) {
	endpoint := fmt.Sprintf("%s/adv/v0/auction/adverts", c.cfg.WB.AdvertURL)

	params := url.Values{}
	params.Set("status", fmt.Sprintf("%d", status))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	var response wbdomain.AuctionAdvertsResponse
	if err := c.doJSON(req, token, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao listar campanhas de lance manual")
	}

	return response.Adverts, nil
}
