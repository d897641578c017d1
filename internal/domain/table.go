package domain

// FlatRow é um mapeamento de nome de campo para valor escalar
// (string, número ou nil), pronto para armazenamento tabular.
type FlatRow map[string]any

// ResultTable é o conjunto de linhas de uma execução, com a lista fixa
// de colunas do job. Imutável após a montagem; o único destino é o sink.
type ResultTable struct {
	Columns []string
	Rows    []FlatRow
}

// Values devolve as linhas na ordem das colunas, no formato esperado
// pelo sink de planilhas. Valores ausentes viram células vazias.
func (t ResultTable) Values() [][]any {
	values := make([][]any, 0, len(t.Rows))
	for _, row := range t.Rows {
		line := make([]any, len(t.Columns))
		for i, col := range t.Columns {
			if v, ok := row[col]; ok && v != nil {
				line[i] = v
			} else {
				line[i] = ""
			}
		}
		values = append(values, line)
	}
	return values
}

// Header devolve a linha de cabeçalho para escrita na planilha.
func (t ResultTable) Header() []any {
	header := make([]any, len(t.Columns))
	for i, col := range t.Columns {
		header[i] = col
	}
	return header
}
