package funnel

import (
	wbdomain "github.com/vfg2006/wb-analytics-sync/infrastructure/integrator/wb/domain"
	"github.com/vfg2006/wb-analytics-sync/internal/domain"
)

// ProjectFunnel achata as entradas do funil em linhas planas,
// etiquetadas com a conta. Blocos aninhados ausentes viram campos
// nulos; a linha nunca é descartada por falta de chave.
func ProjectFunnel(entries []wbdomain.FunnelEntry, account string) []domain.FlatRow {
	rows := make([]domain.FlatRow, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, projectEntry(entry, account))
	}
	return rows
}

func projectEntry(entry wbdomain.FunnelEntry, account string) domain.FlatRow {
	product := entry.Product

	row := domain.FlatRow{
		"account":         account,
		"nm_id":           product.NmID,
		"vendor_code":     product.VendorCode,
		"title":           product.Title,
		"subject_id":      int64Value(product.SubjectID),
		"subject_name":    product.SubjectName,
		"brand_name":      product.BrandName,
		"product_rating":  floatValue(product.ProductRating),
		"feedback_rating": floatValue(product.FeedbackRating),
	}

	if stocks := product.Stocks; stocks != nil {
		row["stocks_wb"] = intValue(stocks.WB)
		row["stocks_mp"] = intValue(stocks.MP)
		row["balance_sum"] = floatValue(stocks.BalanceSum)
	} else {
		row["stocks_wb"] = nil
		row["stocks_mp"] = nil
		row["balance_sum"] = nil
	}

	selected := entry.Statistic.Selected
	if selected == nil {
		selected = &wbdomain.FunnelSelected{}
	}

	row["open_count"] = intValue(selected.OpenCount)
	row["cart_count"] = intValue(selected.CartCount)
	row["order_count"] = intValue(selected.OrderCount)
	row["orders_sum"] = floatValue(selected.OrderSum)
	row["buyout_count"] = intValue(selected.BuyoutCount)
	row["buyout_sum"] = floatValue(selected.BuyoutSum)
	row["cancel_count"] = intValue(selected.CancelCount)
	row["cancel_sum"] = floatValue(selected.CancelSum)
	row["avg_price"] = floatValue(selected.AvgPrice)
	row["avg_orders_count_per_day"] = floatValue(selected.AvgOrdersCountPerDay)
	row["share_order_percent"] = floatValue(selected.ShareOrderPercent)
	row["add_to_wish_list"] = intValue(selected.AddToWishlist)
	row["time_to_ready"] = timeToReadyMinutes(selected.TimeToReady)
	row["localization_percent"] = floatValue(selected.LocalizationPercent)

	if selected.Period != nil {
		row["date"] = selected.Period.End
	} else {
		row["date"] = nil
	}

	return row
}

// timeToReadyMinutes converte o tempo decomposto em minutos totais,
// tratando componentes ausentes como zero.
func timeToReadyMinutes(span *wbdomain.FunnelTimeSpan) int {
	if span == nil {
		return 0
	}
	return span.Days*24*60 + span.Hours*60 + span.Mins
}

func intValue(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func int64Value(v *int64) any {
	if v == nil {
		return nil
	}
	return *v
}

func floatValue(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
