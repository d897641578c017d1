package wbclient

import (
	"context"
	"fmt"
	"net/http"

	wbdomain "github.com/vfg2006/wb-analytics-sync/infrastructure/integrator/wb/domain"
)

type cardsListSettings struct {
	Cursor cardsListCursor `json:"cursor"`
	Filter cardsListFilter `json:"filter"`
}

type cardsListCursor struct {
	Limit     int    `json:"limit"`
	UpdatedAt string `json:"updatedAt,omitempty"`
	NmID      int64  `json:"nmID,omitempty"`
}

type cardsListFilter struct {
	WithPhoto int `json:"withPhoto"`
}

type cardsListPayload struct {
	Settings cardsListSettings `json:"settings"`
}

// ListCards busca uma página de cards de conteúdo. O cursor de entrada
// vazio busca a primeira página; nas seguintes deve ser reenviado o
// cursor devolvido pela resposta anterior.
func (c *WBClient) ListCards(ctx context.Context, token string, cursor wbdomain.CardsCursor, limit int) (*wbdomain.CardsResponse, error) {
	endpoint := fmt.Sprintf("%s/content/v2/get/cards/list", c.cfg.WB.ContentURL)

	payload := cardsListPayload{
		Settings: cardsListSettings{
			Cursor: cardsListCursor{
				Limit:     limit,
				UpdatedAt: cursor.UpdatedAt,
				NmID:      cursor.NmID,
			},
			// -1 inclui cards com e sem foto
			Filter: cardsListFilter{WithPhoto: -1},
		},
	}

	req, err := newJSONRequest(ctx, http.MethodPost, endpoint, payload)
	if err != nil {
		return nil, err
	}

	var response wbdomain.CardsResponse
	if err := c.doJSON(req, token, &response); err != nil {
		return nil, err
	}

	return &response, nil
}
