package domain

// ContentCard é um card de conteúdo de produto retornado por
// POST /content/v2/get/cards/list.
type ContentCard struct {
	NmID        int64       `json:"nmID"`
	VendorCode  string      `json:"vendorCode"`
	SubjectName string      `json:"subjectName"`
	Title       string      `json:"title"`
	Photos      []CardPhoto `json:"photos"`
	UpdatedAt   string      `json:"updatedAt"`
}

// CardPhoto carrega as variações de tamanho de uma foto do card.
type CardPhoto struct {
	Big       string `json:"big"`
	Thumbnail string `json:"tm"`
	Square    string `json:"square"`
}

// CardsCursor é o cursor de continuação da listagem de cards. A API
// devolve o par (updatedAt, nmID) do último card da página, que deve
// ser reenviado na próxima requisição.
type CardsCursor struct {
	UpdatedAt string `json:"updatedAt,omitempty"`
	NmID      int64  `json:"nmID,omitempty"`
	Total     int    `json:"total,omitempty"`
}

// CardsResponse é o envelope da listagem de cards.
type CardsResponse struct {
	Cards  []ContentCard `json:"cards"`
	Cursor CardsCursor   `json:"cursor"`
}
