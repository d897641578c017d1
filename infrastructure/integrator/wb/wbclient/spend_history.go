package wbclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	wbdomain "github.com/vfg2006/wb-analytics-sync/infrastructure/integrator/wb/domain"
)

// GetSpendHistory busca o histórico de gastos de campanha do período.
// A resposta é uma lista plana, sem paginação.
func (c *WBClient) GetSpendHistory(ctx context.Context, token string, dateFrom, dateTo string) ([]wbdomain.SpendUpdate, error) {
	endpoint := fmt.Sprintf("%s/adv/v1/upd", c.cfg.WB.AdvertURL)

	params := url.Values{}
	params.Set("from", dateFrom)
	params.Set("to", dateTo)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var updates []wbdomain.SpendUpdate
	if err := c.doJSON(req, token, &updates); err != nil {
		return nil, err
	}

	return updates, nil
}
