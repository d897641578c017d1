package wbclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	wbdomain "github.com/vfg2006/wb-analytics-sync/infrastructure/integrator/wb/domain"
)

// GetFullStats busca a estatística completa de um lote de campanhas
// para o período informado. O endpoint aceita no máximo 100 IDs por
// chamada e devolve todos os registros do lote de uma vez — não há
// paginação adicional do lado do servidor.
func (c *WBClient) GetFullStats(ctx context.Context, token string, ids []int64, dateFrom, dateTo string) ([]wbdomain.FullStat, error) {
	endpoint := fmt.Sprintf("%s/adv/v3/fullstats", c.cfg.WB.AdvertURL)

	idsStr := make([]string, 0, len(ids))
	for _, id := range ids {
		idsStr = append(idsStr, strconv.FormatInt(id, 10))
	}

	params := url.Values{}
	params.Set("ids", strings.Join(idsStr, ","))
	params.Set("beginDate", dateFrom)
	params.Set("endDate", dateTo)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var stats []wbdomain.FullStat
	if err := c.doJSON(req, token, &stats); err != nil {
		return nil, err
	}

	return stats, nil
}
