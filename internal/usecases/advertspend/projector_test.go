package advertspend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	wbdomain "github.com/vfg2006/wb-analytics-sync/infrastructure/integrator/wb/domain"
)

func TestProjectSpend_FiltraPelaDataConsultada(t *testing.T) {
	updates := []wbdomain.SpendUpdate{
		{UpdTime: "2025-06-01T10:30:00Z", CampName: "555111222 Vestido", UpdSum: 120.5, AdvertID: 7},
		{UpdTime: "2025-05-31T23:59:00Z", CampName: "999888777 Sapato", UpdSum: 50.0, AdvertID: 8},
		{UpdTime: "2025-06-01", CampName: "111222333 Bolsa", UpdSum: 10.0, AdvertID: 9},
	}

	rows := ProjectSpend(updates, "loja-a", "2025-06-01")

	assert.Len(t, rows, 2, "atualizações de dias adjacentes são descartadas")
	assert.Equal(t, "2025-06-01", rows[0]["updTime"])
	assert.Equal(t, 120.5, rows[0]["updSum"])
	assert.Equal(t, "loja-a", rows[0]["account"])
	assert.Equal(t, "2025-06-01", rows[1]["updTime"])
	assert.Equal(t, int64(9), rows[1]["advertId"])
}

func TestSkuFromCampName(t *testing.T) {
	tests := []struct {
		name     string
		campName string
		want     string
	}{
		{
			name:     "Nome longo - primeiros 9 caracteres",
			campName: "555111222 Vestido de verão",
			want:     "555111222",
		},
		{
			name:     "Nome curto - devolvido inteiro",
			campName: "12345",
			want:     "12345",
		},
		{
			name:     "Nome com exatamente 9 caracteres",
			campName: "123456789",
			want:     "123456789",
		},
		{
			name:     "Nome com caracteres multibyte",
			campName: "платье летнее",
			want:     "платье ле",
		},
		{
			name:     "Nome vazio",
			campName: "",
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, skuFromCampName(tt.campName))
		})
	}
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name    string
		updTime string
		want    string
	}{
		{
			name:    "Timestamp RFC3339",
			updTime: "2025-06-01T10:30:00Z",
			want:    "2025-06-01",
		},
		{
			name:    "Timestamp com fuso",
			updTime: "2025-06-01T10:30:00+03:00",
			want:    "2025-06-01",
		},
		{
			name:    "Só a data",
			updTime: "2025-06-01",
			want:    "2025-06-01",
		},
		{
			name:    "Valor curto inesperado - devolvido como veio",
			updTime: "junho",
			want:    "junho",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeDate(tt.updTime))
		})
	}
}
