package content

import (
	wbdomain "github.com/vfg2006/wb-analytics-sync/infrastructure/integrator/wb/domain"
	"github.com/vfg2006/wb-analytics-sync/internal/domain"
)

// ProjectCards achata os cards de conteúdo em linhas planas,
// etiquetadas com a conta. Do bloco de fotos sobrevive apenas a
// miniatura da primeira; cards sem foto ficam com o campo nulo.
func ProjectCards(cards []wbdomain.ContentCard, account string) []domain.FlatRow {
	rows := make([]domain.FlatRow, 0, len(cards))
	for _, card := range cards {
		var photo any
		if len(card.Photos) > 0 {
			photo = card.Photos[0].Thumbnail
		}

		rows = append(rows, domain.FlatRow{
			"nmID":        card.NmID,
			"subjectName": card.SubjectName,
			"vendorCode":  card.VendorCode,
			"photos":      photo,
			"account":     account,
		})
	}
	return rows
}
