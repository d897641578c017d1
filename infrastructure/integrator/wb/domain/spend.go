package domain

// SpendUpdate é um registro de atualização de gasto de campanha
// retornado pelo endpoint /adv/v1/upd.
type SpendUpdate struct {
	UpdTime      string  `json:"updTime"`
	UpdNum       int64   `json:"updNum"`
	UpdSum       float64 `json:"updSum"`
	AdvertID     int64   `json:"advertId"`
	CampName     string  `json:"campName"`
	AdvertType   int     `json:"advertType"`
	PaymentType  string  `json:"paymentType"`
	AdvertStatus int     `json:"advertStatus"`
}
