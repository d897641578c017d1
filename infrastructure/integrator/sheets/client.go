package sheets

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/wb-analytics-sync/internal/config"
	"github.com/vfg2006/wb-analytics-sync/internal/domain"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

// Sink é o destino tabular dos jobs: o append preserva o histórico da
// aba, o overwrite a substitui por inteiro. A semântica de cabeçalho e
// o carimbo de última atualização são responsabilidade do sink, não dos
// jobs.
type Sink interface {
	Append(ctx context.Context, sheetName string, table domain.ResultTable) error
	Overwrite(ctx context.Context, sheetName string, table domain.ResultTable) error
}

const (
	openRetries   = 5
	openBaseDelay = 5 * time.Second
)

type Client struct {
	svc           *gsheets.Service
	spreadsheetID string
}

// NewClient cria o cliente do Google Sheets e valida o acesso à
// planilha configurada, repetindo com backoff exponencial quando o
// serviço responde 503.
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	svc, err := gsheets.NewService(ctx,
		option.WithCredentialsFile(cfg.Sheets.CredentialsFile),
		option.WithScopes(gsheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar o cliente do Google Sheets")
	}

	client := &Client{
		svc:           svc,
		spreadsheetID: cfg.Sheets.SpreadsheetID,
	}

	if err := client.openWithRetry(ctx); err != nil {
		return nil, err
	}

	return client, nil
}

// openWithRetry confirma o acesso à planilha. Um 503 é repetido com a
// espera dobrando a cada tentativa; os demais erros de API (403, 404)
// não são repetidos.
func (c *Client) openWithRetry(ctx context.Context) error {
	delay := openBaseDelay

	var lastErr error
	for attempt := 1; attempt <= openRetries; attempt++ {
		logrus.WithField("attempt", attempt).Info("Abrindo a planilha de destino")

		_, err := c.svc.Spreadsheets.Get(c.spreadsheetID).
			Fields("spreadsheetId").
			Context(ctx).
			Do()
		if err == nil {
			logrus.Info("Planilha de destino aberta com sucesso")
			return nil
		}
		lastErr = err

		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && apiErr.Code != http.StatusServiceUnavailable {
			return errors.Wrap(err, "erro ao abrir a planilha de destino")
		}

		if attempt < openRetries {
			logrus.WithError(err).Warnf("Planilha indisponível, aguardando %s antes da próxima tentativa", delay)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return errors.Wrapf(lastErr, "não foi possível abrir a planilha após %d tentativas", openRetries)
}
