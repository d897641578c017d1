package funnel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	wbdomain "github.com/vfg2006/wb-analytics-sync/infrastructure/integrator/wb/domain"
)

func intPtr(v int) *int { return &v }

func int64Ptr(v int64) *int64 { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestProjectFunnel_EntradaCompleta(t *testing.T) {
	entries := []wbdomain.FunnelEntry{
		{
			Product: wbdomain.FunnelProduct{
				NmID:           111,
				VendorCode:     "V-001",
				Title:          "Vestido",
				SubjectID:      int64Ptr(42),
				SubjectName:    "Vestidos",
				BrandName:      "Marca",
				ProductRating:  floatPtr(4.7),
				FeedbackRating: floatPtr(4.5),
				Stocks: &wbdomain.FunnelStocks{
					WB:         intPtr(10),
					MP:         intPtr(3),
					BalanceSum: floatPtr(1500.0),
				},
			},
			Statistic: wbdomain.FunnelStatistic{
				Selected: &wbdomain.FunnelSelected{
					OpenCount:   intPtr(200),
					CartCount:   intPtr(30),
					OrderCount:  intPtr(12),
					OrderSum:    floatPtr(24000.0),
					TimeToReady: &wbdomain.FunnelTimeSpan{Days: 1, Hours: 2, Mins: 30},
					Period:      &wbdomain.FunnelPeriod{Start: "2025-06-01", End: "2025-06-01"},
				},
			},
		},
	}

	rows := ProjectFunnel(entries, "loja-a")

	assert.Len(t, rows, 1)
	row := rows[0]
	assert.Equal(t, "loja-a", row["account"])
	assert.Equal(t, int64(111), row["nm_id"])
	assert.Equal(t, int64(42), row["subject_id"])
	assert.Equal(t, 4.7, row["product_rating"])
	assert.Equal(t, 10, row["stocks_wb"])
	assert.Equal(t, 200, row["open_count"])
	assert.Equal(t, 24000.0, row["orders_sum"])
	assert.Equal(t, 1*24*60+2*60+30, row["time_to_ready"], "o tempo decomposto vira minutos totais")
	assert.Equal(t, "2025-06-01", row["date"])
}

func TestProjectFunnel_BlocosAusentesViramNulos(t *testing.T) {
	entries := []wbdomain.FunnelEntry{
		{
			Product: wbdomain.FunnelProduct{NmID: 222, VendorCode: "V-002"},
		},
	}

	rows := ProjectFunnel(entries, "loja-a")
	row := rows[0]

	assert.Equal(t, int64(222), row["nm_id"])
	assert.Nil(t, row["subject_id"])
	assert.Nil(t, row["product_rating"])
	assert.Nil(t, row["stocks_wb"], "bloco de estoques ausente vira campos nulos")
	assert.Nil(t, row["open_count"], "métricas ausentes viram nulos, nunca zeros fabricados")
	assert.Nil(t, row["orders_sum"])
	assert.Nil(t, row["date"], "sem período não há data")
	assert.Equal(t, 0, row["time_to_ready"], "tempo ausente é tratado como zero")
}

func TestTimeToReadyMinutes(t *testing.T) {
	tests := []struct {
		name string
		span *wbdomain.FunnelTimeSpan
		want int
	}{
		{
			name: "Nulo vira zero",
			span: nil,
			want: 0,
		},
		{
			name: "Somente minutos",
			span: &wbdomain.FunnelTimeSpan{Mins: 45},
			want: 45,
		},
		{
			name: "Dias, horas e minutos somados",
			span: &wbdomain.FunnelTimeSpan{Days: 2, Hours: 3, Mins: 15},
			want: 2*24*60 + 3*60 + 15,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, timeToReadyMinutes(tt.span))
		})
	}
}
