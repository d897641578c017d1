package domain

// Tipos de aplicativo no detalhamento por plataforma do fullstats.
const (
	AppTypePC      = 1
	AppTypeAndroid = 32
	AppTypeIOS     = 64
)

// FullStat é um bloco de estatística campanha-dia retornado pelo
// endpoint /adv/v3/fullstats. As métricas de topo agregam todas as
// plataformas; o detalhamento por plataforma fica em Days[].Apps.
type FullStat struct {
	AdvertID     int64         `json:"advertId"`
	Views        int           `json:"views"`
	Clicks       int           `json:"clicks"`
	Ctr          float64       `json:"ctr"`
	Cpc          float64       `json:"cpc"`
	Sum          float64       `json:"sum"`
	Atbs         int           `json:"atbs"`
	Orders       int           `json:"orders"`
	Cr           float64       `json:"cr"`
	Shks         int           `json:"shks"`
	SumPrice     float64       `json:"sum_price"`
	Canceled     int           `json:"canceled"`
	Days         []StatDay     `json:"days"`
	BoosterStats []BoosterStat `json:"boosterStats"`
}

// StatDay é o detalhamento diário de um FullStat.
type StatDay struct {
	Date string    `json:"date"`
	Apps []AppStat `json:"apps"`
}

// AppStat é o detalhamento de métricas por plataforma (PC/Android/iOS).
type AppStat struct {
	AppType  int       `json:"appType"`
	Views    int       `json:"views"`
	Clicks   int       `json:"clicks"`
	Ctr      float64   `json:"ctr"`
	Cpc      float64   `json:"cpc"`
	Sum      float64   `json:"sum"`
	Atbs     int       `json:"atbs"`
	Orders   int       `json:"orders"`
	Cr       float64   `json:"cr"`
	Shks     int       `json:"shks"`
	SumPrice float64   `json:"sum_price"`
	Canceled int       `json:"canceled"`
	Nms      []NmStat  `json:"nms"`
}

// NmStat identifica um produto vinculado ao bloco de plataforma.
type NmStat struct {
	NmID int64  `json:"nmId"`
	Name string `json:"name"`
}

// BoosterStat é a posição média do booster para campanhas automáticas.
type BoosterStat struct {
	Date        string  `json:"date"`
	AvgPosition float64 `json:"avg_position"`
	NmID        int64   `json:"nm"`
}
