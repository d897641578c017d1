package assembling

import (
	"fmt"
	"strings"

	"github.com/vfg2006/wb-analytics-sync/internal/domain"
)

// Project monta a tabela final de um job: projeta cada linha para a
// lista fixa de colunas, descartando campos intermediários que não vão
// para a planilha.
func Project(rows []domain.FlatRow, columns []string) domain.ResultTable {
	projected := make([]domain.FlatRow, 0, len(rows))
	for _, row := range rows {
		out := make(domain.FlatRow, len(columns))
		for _, col := range columns {
			if v, ok := row[col]; ok {
				out[col] = v
			} else {
				out[col] = nil
			}
		}
		projected = append(projected, out)
	}

	return domain.ResultTable{Columns: columns, Rows: projected}
}

// FillNulls substitui valores nulos pelo valor informado, para os jobs
// cuja planilha de exibição não aceita células vazias.
func FillNulls(table domain.ResultTable, value any) domain.ResultTable {
	for _, row := range table.Rows {
		for _, col := range table.Columns {
			if row[col] == nil {
				row[col] = value
			}
		}
	}
	return table
}

// Dedup remove linhas exatamente iguais (igualdade de todos os valores
// na ordem das colunas), preservando a primeira ocorrência e a ordem
// das demais.
func Dedup(table domain.ResultTable) domain.ResultTable {
	seen := make(map[string]struct{}, len(table.Rows))
	unique := make([]domain.FlatRow, 0, len(table.Rows))

	for _, row := range table.Rows {
		key := rowKey(row, table.Columns)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, row)
	}

	return domain.ResultTable{Columns: table.Columns, Rows: unique}
}

func rowKey(row domain.FlatRow, columns []string) string {
	var b strings.Builder
	for _, col := range columns {
		fmt.Fprintf(&b, "%v\x1f", row[col])
	}
	return b.String()
}
