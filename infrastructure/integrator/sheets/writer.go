package sheets

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/wb-analytics-sync/internal/domain"
	gsheets "google.golang.org/api/sheets/v4"
)

// Append adiciona as linhas da tabela ao final da aba. O cabeçalho só é
// escrito quando a aba está vazia (no máximo uma linha de valores); em
// toda escrita o carimbo de última atualização vai para a primeira
// linha da última coluna.
func (c *Client) Append(ctx context.Context, sheetName string, table domain.ResultTable) error {
	existing, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, sheetName).
		Context(ctx).
		Do()
	if err != nil {
		return errors.Wrapf(err, "erro ao ler os dados existentes da aba %s", sheetName)
	}

	data := table.Values()
	if len(existing.Values) <= 1 {
		logrus.WithField("sheet", sheetName).Info("Aba vazia: escrevendo cabeçalho e dados")
		data = append([][]any{table.Header()}, data...)
	} else {
		logrus.WithField("sheet", sheetName).Info("Escrevendo apenas os dados")
	}

	_, err = c.svc.Spreadsheets.Values.Append(c.spreadsheetID, sheetName, &gsheets.ValueRange{Values: data}).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return errors.Wrapf(err, "erro ao adicionar linhas à aba %s", sheetName)
	}

	return c.stampUpdatedAt(ctx, sheetName)
}

// Overwrite substitui todo o conteúdo da aba pelo cabeçalho e pelas
// linhas da tabela.
func (c *Client) Overwrite(ctx context.Context, sheetName string, table domain.ResultTable) error {
	_, err := c.svc.Spreadsheets.Values.Clear(c.spreadsheetID, sheetName, &gsheets.ClearValuesRequest{}).
		Context(ctx).
		Do()
	if err != nil {
		return errors.Wrapf(err, "erro ao limpar a aba %s", sheetName)
	}

	data := append([][]any{table.Header()}, table.Values()...)
	_, err = c.svc.Spreadsheets.Values.Update(c.spreadsheetID, sheetName+"!A1", &gsheets.ValueRange{Values: data}).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return errors.Wrapf(err, "erro ao sobrescrever a aba %s", sheetName)
	}

	return c.stampUpdatedAt(ctx, sheetName)
}

// stampUpdatedAt escreve a data e hora da escrita na primeira linha da
// última coluna da aba.
func (c *Client) stampUpdatedAt(ctx context.Context, sheetName string) error {
	spreadsheet, err := c.svc.Spreadsheets.Get(c.spreadsheetID).
		Fields("sheets(properties(title,gridProperties(columnCount)))").
		Context(ctx).
		Do()
	if err != nil {
		return errors.Wrap(err, "erro ao obter as propriedades da planilha")
	}

	var columnCount int64
	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil && sheet.Properties.Title == sheetName && sheet.Properties.GridProperties != nil {
			columnCount = sheet.Properties.GridProperties.ColumnCount
			break
		}
	}
	if columnCount == 0 {
		return fmt.Errorf("aba %s não encontrada na planilha", sheetName)
	}

	cell := fmt.Sprintf("%s!%s1", sheetName, columnLetter(columnCount))
	stamp := time.Now().Format("2006-01-02 15:04:05")

	_, err = c.svc.Spreadsheets.Values.Update(c.spreadsheetID, cell, &gsheets.ValueRange{Values: [][]any{{stamp}}}).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return errors.Wrap(err, "erro ao escrever o carimbo de atualização")
	}

	logrus.WithFields(logrus.Fields{
		"sheet":      sheetName,
		"updated_at": stamp,
	}).Info("Carimbo de última atualização registrado")

	return nil
}

// columnLetter converte um índice de coluna 1-based na notação A1.
func columnLetter(column int64) string {
	letters := ""
	for column > 0 {
		column--
		letters = string(rune('A'+column%26)) + letters
		column /= 26
	}
	return letters
}
