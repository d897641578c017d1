package assembling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/wb-analytics-sync/internal/domain"
)

func TestProject(t *testing.T) {
	columns := []string{"a", "b", "c"}
	rows := []domain.FlatRow{
		{"a": 1, "b": "x", "c": 2.5, "descartado": "não vai para a planilha"},
		{"a": 2},
	}

	table := Project(rows, columns)

	assert.Equal(t, columns, table.Columns)
	assert.Len(t, table.Rows, 2)
	assert.Equal(t, domain.FlatRow{"a": 1, "b": "x", "c": 2.5}, table.Rows[0])
	assert.Equal(t, domain.FlatRow{"a": 2, "b": nil, "c": nil}, table.Rows[1],
		"colunas ausentes viram nulos, nunca são omitidas")
}

func TestFillNulls(t *testing.T) {
	table := domain.ResultTable{
		Columns: []string{"a", "b"},
		Rows: []domain.FlatRow{
			{"a": nil, "b": 1},
			{"a": "x", "b": nil},
		},
	}

	filled := FillNulls(table, 0)

	assert.Equal(t, domain.FlatRow{"a": 0, "b": 1}, filled.Rows[0])
	assert.Equal(t, domain.FlatRow{"a": "x", "b": 0}, filled.Rows[1])
}

func TestDedup(t *testing.T) {
	tests := []struct {
		name string
		rows []domain.FlatRow
		want int
	}{
		{
			name: "Linhas idênticas são removidas preservando a primeira",
			rows: []domain.FlatRow{
				{"a": 1, "b": "x"},
				{"a": 1, "b": "x"},
				{"a": 2, "b": "x"},
			},
			want: 2,
		},
		{
			name: "Linhas que diferem em uma coluna são preservadas",
			rows: []domain.FlatRow{
				{"a": 1, "b": "x"},
				{"a": 1, "b": "y"},
			},
			want: 2,
		},
		{
			name: "Tabela vazia",
			rows: nil,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := domain.ResultTable{Columns: []string{"a", "b"}, Rows: tt.rows}
			deduped := Dedup(table)
			assert.Len(t, deduped.Rows, tt.want)
		})
	}
}

func TestDedup_PreservaAOrdem(t *testing.T) {
	table := domain.ResultTable{
		Columns: []string{"a"},
		Rows: []domain.FlatRow{
			{"a": 3},
			{"a": 1},
			{"a": 3},
			{"a": 2},
		},
	}

	deduped := Dedup(table)

	assert.Equal(t, []domain.FlatRow{{"a": 3}, {"a": 1}, {"a": 2}}, deduped.Rows)
}
