package advertstats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	wbdomain "github.com/vfg2006/wb-analytics-sync/infrastructure/integrator/wb/domain"
)

func TestComputeCPM(t *testing.T) {
	tests := []struct {
		name  string
		sum   float64
		views int
		want  any
	}{
		{
			name:  "Sem visualizações - CPM nulo, nunca divisão por zero",
			sum:   150.0,
			views: 0,
			want:  nil,
		},
		{
			name:  "Caso típico - sum/views*1000 com duas casas",
			sum:   200.0,
			views: 1000,
			want:  200.0,
		},
		{
			name:  "Arredondamento para duas casas decimais",
			sum:   10.0,
			views: 3000,
			want:  3.33,
		},
		{
			name:  "Gasto zero com visualizações - CPM zero",
			sum:   0,
			views: 500,
			want:  0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeCPM(tt.sum, tt.views))
		})
	}
}

func TestProjectStats_CamposDeTopo(t *testing.T) {
	stats := []wbdomain.FullStat{
		{
			AdvertID: 12345,
			Views:    1000,
			Clicks:   50,
			Ctr:      5.0,
			Cpc:      2.0,
			Sum:      100.0,
			Atbs:     10,
			Orders:   5,
			Cr:       0.5,
			Shks:     5,
			SumPrice: 2500.0,
			Canceled: 1,
			BoosterStats: []wbdomain.BoosterStat{
				{Date: "2025-06-01", AvgPosition: 3.4},
				{Date: "2025-06-01", AvgPosition: 9.9},
			},
		},
	}

	rows := ProjectStats(stats, "loja-a", "2025-06-01")

	assert.Len(t, rows, 1)
	row := rows[0]
	assert.Equal(t, "loja-a", row["account"])
	assert.Equal(t, "2025-06-01", row["date"])
	assert.Equal(t, int64(12345), row["advertId"])
	assert.Equal(t, 1000, row["views"])
	assert.Equal(t, 100.0, row["sum"])
	assert.Equal(t, 3.4, row["avg_position"], "a posição média vem do primeiro bloco de booster")
	assert.Equal(t, 100.0, row["cpm"])
}

func TestProjectStats_SemBooster(t *testing.T) {
	rows := ProjectStats([]wbdomain.FullStat{{AdvertID: 1}}, "loja-a", "2025-06-01")

	assert.Nil(t, rows[0]["avg_position"], "sem booster o campo fica nulo")
	assert.Nil(t, rows[0]["cpm"], "sem visualizações o CPM fica nulo")
}

func TestProjectStats_DesagregacaoPorPlataforma(t *testing.T) {
	stats := []wbdomain.FullStat{
		{
			AdvertID: 7,
			Views:    300,
			Sum:      30.0,
			Days: []wbdomain.StatDay{
				{
					Date: "2025-06-01",
					Apps: []wbdomain.AppStat{
						{
							AppType: wbdomain.AppTypeAndroid,
							Views:   200,
							Clicks:  8,
							Cpc:     1.5,
							Nms:     []wbdomain.NmStat{{NmID: 555111, Name: "Produto"}},
						},
						{
							AppType: wbdomain.AppTypePC,
							Views:   100,
							Clicks:  2,
							Cpc:     4.0,
						},
						{
							// Tipo desconhecido é ignorado
							AppType: 99,
							Views:   1,
						},
					},
				},
			},
		},
	}

	rows := ProjectStats(stats, "loja-a", "2025-06-01")
	row := rows[0]

	assert.Equal(t, 200, row["views_android"])
	assert.Equal(t, 8, row["clicks_android"])
	assert.Equal(t, 100, row["views_pc"])
	assert.Equal(t, 4.0, row["cpc"], "o cpc da tabela é o do bloco de PC")
	assert.Equal(t, int64(555111), row["article_id"])
	assert.NotContains(t, row, "views_99")
}

func TestProjectStats_NaoModificaOsRegistrosDeEntrada(t *testing.T) {
	stats := []wbdomain.FullStat{{AdvertID: 1, Views: 10, Sum: 5.0}}

	rowsA := ProjectStats(stats, "loja-a", "2025-06-01")
	rowsB := ProjectStats(stats, "loja-b", "2025-06-02")

	rowsA[0]["views"] = -1

	assert.Equal(t, 10, stats[0].Views)
	assert.Equal(t, 10, rowsB[0]["views"], "cada projeção produz linhas novas")
	assert.Equal(t, "loja-b", rowsB[0]["account"])
}
