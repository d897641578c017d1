package advertspend

import (
	"time"

	wbdomain "github.com/vfg2006/wb-analytics-sync/infrastructure/integrator/wb/domain"
	"github.com/vfg2006/wb-analytics-sync/internal/domain"
)

// skuLength é o prefixo do nome da campanha que identifica o SKU.
const skuLength = 9

// ProjectSpend achata os registros de gasto em linhas planas,
// etiquetadas com a conta. O updTime é normalizado para data e as
// linhas são filtradas à data consultada — a API ocasionalmente devolve
// atualizações de dias adjacentes.
func ProjectSpend(updates []wbdomain.SpendUpdate, account, date string) []domain.FlatRow {
	rows := make([]domain.FlatRow, 0, len(updates))
	for _, update := range updates {
		updDate := normalizeDate(update.UpdTime)
		if updDate != date {
			continue
		}

		rows = append(rows, domain.FlatRow{
			"updTime":      updDate,
			"campName":     update.CampName,
			"paymentType":  update.PaymentType,
			"updNum":       update.UpdNum,
			"updSum":       update.UpdSum,
			"advertId":     update.AdvertID,
			"advertType":   update.AdvertType,
			"advertStatus": update.AdvertStatus,
			"sku":          skuFromCampName(update.CampName),
			"account":      account,
		})
	}
	return rows
}

// normalizeDate reduz um timestamp ISO 8601 à data (YYYY-MM-DD).
func normalizeDate(updTime string) string {
	if t, err := time.Parse(time.RFC3339, updTime); err == nil {
		return t.Format(time.DateOnly)
	}
	if len(updTime) >= len(time.DateOnly) {
		return updTime[:len(time.DateOnly)]
	}
	return updTime
}

// skuFromCampName deriva o SKU dos primeiros 9 caracteres do nome da
// campanha, respeitando runas multibyte.
func skuFromCampName(name string) string {
	runes := []rune(name)
	if len(runes) <= skuLength {
		return name
	}
	return string(runes[:skuLength])
}
