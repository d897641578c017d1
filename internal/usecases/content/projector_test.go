package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	wbdomain "github.com/vfg2006/wb-analytics-sync/infrastructure/integrator/wb/domain"
)

func TestProjectCards(t *testing.T) {
	cards := []wbdomain.ContentCard{
		{
			NmID:        111,
			SubjectName: "Vestidos",
			VendorCode:  "V-001",
			Photos: []wbdomain.CardPhoto{
				{Thumbnail: "https://img.wb.ru/111/tm.jpg"},
				{Thumbnail: "https://img.wb.ru/111/tm2.jpg"},
			},
		},
		{
			NmID:        222,
			SubjectName: "Sapatos",
			VendorCode:  "V-002",
		},
	}

	rows := ProjectCards(cards, "loja-a")

	assert.Len(t, rows, 2)
	assert.Equal(t, int64(111), rows[0]["nmID"])
	assert.Equal(t, "Vestidos", rows[0]["subjectName"])
	assert.Equal(t, "https://img.wb.ru/111/tm.jpg", rows[0]["photos"],
		"apenas a miniatura da primeira foto sobrevive")
	assert.Equal(t, "loja-a", rows[0]["account"])

	assert.Nil(t, rows[1]["photos"], "card sem foto fica com o campo nulo")
	assert.Equal(t, "V-002", rows[1]["vendorCode"])
}

func TestProjectCards_ListaVazia(t *testing.T) {
	rows := ProjectCards(nil, "loja-a")
	assert.Empty(t, rows)
}
