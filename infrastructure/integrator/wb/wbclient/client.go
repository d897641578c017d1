package wbclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	wbdomain "github.com/vfg2006/wb-analytics-sync/infrastructure/integrator/wb/domain"
	"github.com/vfg2006/wb-analytics-sync/internal/config"
)

// Client é a fronteira com as APIs do vendedor Wildberries. Cada método
// executa uma única requisição; paginação, retry e backoff ficam por
// conta do chamador (internal/usecases/collecting).
type Client interface {
	ListPromotionAdverts(ctx context.Context, token string, status int) ([]wbdomain.PromotionAdvert, error)
	ListAuctionAdverts(ctx context.Context, token string, status int) ([]wbdomain.AuctionAdvert, error)
	GetFullStats(ctx context.Context, token string, ids []int64, dateFrom, dateTo string) ([]wbdomain.FullStat, error)
	GetSpendHistory(ctx context.Context, token string, dateFrom, dateTo string) ([]wbdomain.SpendUpdate, error)
	ListCards(ctx context.Context, token string, cursor wbdomain.CardsCursor, limit int) (*wbdomain.CardsResponse, error)
	GetFunnelProducts(ctx context.Context, token string, dateFrom, dateTo string, limit, offset int) ([]wbdomain.FunnelEntry, error)
}

type WBClient struct {
	httpClient *http.Client
	cfg        *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &WBClient{
		httpClient: &http.Client{
			Timeout: 90 * time.Second,
		},
		cfg: cfg,
	}
}

// doJSON executa a requisição, classifica respostas não-2xx em
// wbdomain.APIError e decodifica o corpo JSON em out (quando não nil).
func (c *WBClient) doJSON(req *http.Request, token string, out any) error {
	req.Header.Set("Authorization", token)
	req.Header.Set("Accept", "application/json")
	if req.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "erro de rede ao chamar a API WB")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return &wbdomain.APIError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "erro ao decodificar a resposta da API WB")
	}

	return nil
}

// newJSONRequest monta uma requisição com corpo JSON.
func newJSONRequest(ctx context.Context, method, url string, payload any) (*http.Request, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar o corpo da requisição")
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	return req, nil
}
