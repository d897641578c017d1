package domain

// FunnelEntry é uma entrada de produto do funil de vendas
// (POST /api/analytics/v3/sales-funnel/products). Campos numéricos
// opcionais usam ponteiros: chave ausente no JSON vira nil, que o
// projetor converte em célula nula em vez de zero fabricado.
type FunnelEntry struct {
	Product   FunnelProduct   `json:"product"`
	Statistic FunnelStatistic `json:"statistic"`
}

// FunnelProduct é o bloco de identificação do produto.
type FunnelProduct struct {
	NmID           int64         `json:"nmId"`
	VendorCode     string        `json:"vendorCode"`
	Title          string        `json:"title"`
	SubjectID      *int64        `json:"subjectId"`
	SubjectName    string        `json:"subjectName"`
	BrandName      string        `json:"brandName"`
	ProductRating  *float64      `json:"productRating"`
	FeedbackRating *float64      `json:"feedbackRating"`
	Stocks         *FunnelStocks `json:"stocks"`
}

// FunnelStocks é o bloco de estoques do produto.
type FunnelStocks struct {
	WB         *int     `json:"wb"`
	MP         *int     `json:"mp"`
	BalanceSum *float64 `json:"balanceSum"`
}

// FunnelStatistic envolve as métricas do período selecionado.
type FunnelStatistic struct {
	Selected *FunnelSelected `json:"selected"`
}

// FunnelSelected são as métricas agregadas do período consultado.
type FunnelSelected struct {
	OpenCount            *int             `json:"openCount"`
	CartCount            *int             `json:"cartCount"`
	OrderCount           *int             `json:"orderCount"`
	OrderSum             *float64         `json:"orderSum"`
	BuyoutCount          *int             `json:"buyoutCount"`
	BuyoutSum            *float64         `json:"buyoutSum"`
	CancelCount          *int             `json:"cancelCount"`
	CancelSum            *float64         `json:"cancelSum"`
	AvgPrice             *float64         `json:"avgPrice"`
	AvgOrdersCountPerDay *float64         `json:"avgOrdersCountPerDay"`
	ShareOrderPercent    *float64         `json:"shareOrderPercent"`
	AddToWishlist        *int             `json:"addToWishlist"`
	TimeToReady          *FunnelTimeSpan  `json:"timeToReady"`
	LocalizationPercent  *float64         `json:"localizationPercent"`
	Period               *FunnelPeriod    `json:"period"`
}

// FunnelTimeSpan é o tempo até o produto ficar pronto, decomposto.
type FunnelTimeSpan struct {
	Days  int `json:"days"`
	Hours int `json:"hours"`
	Mins  int `json:"mins"`
}

// FunnelPeriod é o período efetivamente coberto pela estatística.
type FunnelPeriod struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// FunnelResponse é o envelope da resposta do funil de vendas.
type FunnelResponse struct {
	Data FunnelData `json:"data"`
}

// FunnelData agrupa a lista de produtos da resposta.
type FunnelData struct {
	Products []FunnelEntry `json:"products"`
}
