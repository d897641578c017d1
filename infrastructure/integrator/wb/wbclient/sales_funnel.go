package wbclient

import (
	"context"
	"fmt"
	"net/http"

	wbdomain "github.com/vfg2006/wb-analytics-sync/infrastructure/integrator/wb/domain"
)

type funnelPeriodPayload struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type funnelPayload struct {
	SelectedPeriod funnelPeriodPayload `json:"selectedPeriod"`
	Limit          int                 `json:"limit"`
	Offset         int                 `json:"offset"`
}

// GetFunnelProducts busca uma página do funil de vendas para o período
// informado. A paginação é por offset; a última página é detectada pelo
// chamador quando a resposta traz menos produtos que o limite.
func (c *WBClient) GetFunnelProducts(ctx context.Context, token string, dateFrom, dateTo string, limit, offset int) ([]wbdomain.FunnelEntry, error) {
	endpoint := fmt.Sprintf("%s/api/analytics/v3/sales-funnel/products", c.cfg.WB.AnalyticsURL)

	payload := funnelPayload{
		SelectedPeriod: funnelPeriodPayload{
			Start: dateFrom,
			End:   dateTo,
		},
		Limit:  limit,
		Offset: offset,
	}

	req, err := newJSONRequest(ctx, http.MethodPost, endpoint, payload)
	if err != nil {
		return nil, err
	}

	var response wbdomain.FunnelResponse
	if err := c.doJSON(req, token, &response); err != nil {
		return nil, err
	}

	return response.Data.Products, nil
}
