package advertstats

import (
	wbdomain "github.com/vfg2006/wb-analytics-sync/infrastructure/integrator/wb/domain"
	"github.com/vfg2006/wb-analytics-sync/internal/domain"
	"github.com/vfg2006/wb-analytics-sync/pkg/utils"
)

// ProjectStats achata os blocos campanha-dia em linhas planas, uma por
// registro, etiquetadas com a conta e a data da consulta. Os registros
// de entrada nunca são modificados.
func ProjectStats(stats []wbdomain.FullStat, account, date string) []domain.FlatRow {
	rows := make([]domain.FlatRow, 0, len(stats))
	for _, stat := range stats {
		rows = append(rows, projectStat(stat, account, date))
	}
	return rows
}

func projectStat(stat wbdomain.FullStat, account, date string) domain.FlatRow {
	row := domain.FlatRow{
		"account":   account,
		"date":      date,
		"advertId":  stat.AdvertID,
		"views":     stat.Views,
		"clicks":    stat.Clicks,
		"ctr":       stat.Ctr,
		"cpc":       stat.Cpc,
		"sum":       stat.Sum,
		"atbs":      stat.Atbs,
		"orders":    stat.Orders,
		"cr":        stat.Cr,
		"shks":      stat.Shks,
		"sum_price": stat.SumPrice,
		"canceled":  stat.Canceled,
	}

	// Para campanhas automáticas, a posição média vem do primeiro
	// bloco de booster; sem booster, o campo fica nulo.
	if len(stat.BoosterStats) > 0 {
		row["avg_position"] = stat.BoosterStats[0].AvgPosition
	} else {
		row["avg_position"] = nil
	}

	row["cpm"] = ComputeCPM(stat.Sum, stat.Views)

	if len(stat.Days) == 0 {
		return row
	}

	for _, app := range stat.Days[0].Apps {
		suffix := platformSuffix(app.AppType)
		if suffix == "" {
			continue
		}

		row["atbs_"+suffix] = app.Atbs
		row["canceled_"+suffix] = app.Canceled
		row["clicks_"+suffix] = app.Clicks
		row["cr_"+suffix] = app.Cr
		row["ctr_"+suffix] = app.Ctr
		row["orders_"+suffix] = app.Orders
		row["shks_"+suffix] = app.Shks
		row["sum_price_"+suffix] = app.SumPrice
		row["views_"+suffix] = app.Views

		// O cpc da tabela é o do bloco de PC; as demais plataformas
		// não o reportam por clique.
		if app.AppType == wbdomain.AppTypePC {
			row["cpc"] = app.Cpc
		}

		if len(app.Nms) > 0 {
			row["article_id"] = app.Nms[0].NmID
		}
	}

	return row
}

func platformSuffix(appType int) string {
	switch appType {
	case wbdomain.AppTypePC:
		return "pc"
	case wbdomain.AppTypeAndroid:
		return "android"
	case wbdomain.AppTypeIOS:
		return "ios"
	default:
		return ""
	}
}

// ComputeCPM deriva o custo por mil impressões: sum/views*1000 com duas
// casas decimais. Sem visualizações não há CPM — o valor é nulo, nunca
// uma divisão por zero.
func ComputeCPM(sum float64, views int) any {
	if views == 0 {
		return nil
	}
	return utils.RoundWithTwoDecimalPlace(sum / float64(views) * 1000)
}
