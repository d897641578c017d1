package collecting

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	wbdomain "github.com/vfg2006/wb-analytics-sync/infrastructure/integrator/wb/domain"
)

func apiError(status int) error {
	return &wbdomain.APIError{StatusCode: status, Message: http.StatusText(status)}
}

// zeroPolicy devolve uma política sem esperas para os testes.
func zeroPolicy(maxRetries int) BackoffPolicy {
	return BackoffPolicy{MaxRetries: maxRetries}
}

func TestBatchify(t *testing.T) {
	tests := []struct {
		name  string
		items []int64
		size  int
		want  [][]int64
	}{
		{
			name:  "Lista menor que o lote - um único lote",
			items: []int64{1, 2, 3},
			size:  100,
			want:  [][]int64{{1, 2, 3}},
		},
		{
			name:  "Lista múltipla do lote - lotes cheios",
			items: []int64{1, 2, 3, 4},
			size:  2,
			want:  [][]int64{{1, 2}, {3, 4}},
		},
		{
			name:  "Lista com resto - último lote parcial",
			items: []int64{1, 2, 3, 4, 5},
			size:  2,
			want:  [][]int64{{1, 2}, {3, 4}, {5}},
		},
		{
			name:  "Lista vazia - nenhum lote",
			items: nil,
			size:  2,
			want:  nil,
		},
		{
			name:  "Tamanho inválido - nenhum lote",
			items: []int64{1, 2},
			size:  0,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Batchify(tt.items, tt.size)
			assert.Equal(t, tt.want, got)

			// Cada elemento deve aparecer exatamente uma vez, na ordem
			var flat []int64
			for _, batch := range got {
				flat = append(flat, batch...)
			}
			if tt.want != nil {
				assert.Equal(t, tt.items, flat)
			}
		})
	}
}

func TestFetchAllPages_TerminaNaPaginaVazia(t *testing.T) {
	pages := [][]string{
		{"a", "b"},
		{"c", "d"},
		{},
	}

	calls := 0
	items, err := FetchAllPages(func(cursor Cursor) (Page[string], error) {
		page := pages[calls]
		calls++
		return Page[string]{Items: page, Next: Cursor{Offset: cursor.Offset + len(page)}}, nil
	}, 2, zeroPolicy(5))

	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, items)
	assert.Equal(t, 3, calls)
}

func TestFetchAllPages_TerminaNaPaginaIncompleta(t *testing.T) {
	pages := [][]string{
		{"a", "b"},
		{"c"},
	}

	calls := 0
	items, err := FetchAllPages(func(cursor Cursor) (Page[string], error) {
		page := pages[calls]
		calls++
		return Page[string]{Items: page}, nil
	}, 2, zeroPolicy(5))

	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, items)
	assert.Equal(t, 2, calls, "uma página menor que o limite encerra a paginação sem chamada extra")
}

func TestFetchAllPages_AbortaSemRetryEm401(t *testing.T) {
	calls := 0
	items, err := FetchAllPages(func(cursor Cursor) (Page[string], error) {
		calls++
		return Page[string]{}, apiError(http.StatusUnauthorized)
	}, 10, zeroPolicy(5))

	assert.Error(t, err)
	assert.Nil(t, items)
	assert.Equal(t, 1, calls, "falha de autorização não é repetida")
	assert.True(t, wbdomain.IsAuthFailure(err))
}

func TestFetchAllPages_EsgotaTentativasApos429(t *testing.T) {
	calls := 0
	items, err := FetchAllPages(func(cursor Cursor) (Page[string], error) {
		calls++
		return Page[string]{}, apiError(http.StatusTooManyRequests)
	}, 10, zeroPolicy(5))

	assert.Error(t, err)
	assert.Empty(t, items)
	assert.Equal(t, 5, calls, "são feitas exatamente MaxRetries tentativas")
}

func TestFetchAllPages_PreservaParcialQuandoEsgota(t *testing.T) {
	calls := 0
	items, err := FetchAllPages(func(cursor Cursor) (Page[string], error) {
		calls++
		if calls == 1 {
			return Page[string]{Items: []string{"a", "b"}, Next: Cursor{Offset: 2}}, nil
		}
		return Page[string]{}, errors.New("connection reset")
	}, 2, zeroPolicy(3))

	assert.Error(t, err)
	assert.Equal(t, []string{"a", "b"}, items, "as páginas já acumuladas sobrevivem ao esgotamento")
}

func TestFetchAllPages_ContadorDeTentativasReiniciaAposSucesso(t *testing.T) {
	// Falha duas vezes, devolve uma página, falha mais duas vezes e
	// devolve a última página: nunca esgota com MaxRetries=3.
	script := []error{
		apiError(http.StatusTooManyRequests),
		apiError(http.StatusTooManyRequests),
		nil,
		apiError(http.StatusTooManyRequests),
		apiError(http.StatusTooManyRequests),
		nil,
	}

	calls := 0
	items, err := FetchAllPages(func(cursor Cursor) (Page[string], error) {
		err := script[calls]
		calls++
		if err != nil {
			return Page[string]{}, err
		}
		if cursor.Offset == 0 {
			return Page[string]{Items: []string{"a"}, Next: Cursor{Offset: 1}}, nil
		}
		return Page[string]{}, nil
	}, 1, zeroPolicy(3))

	assert.NoError(t, err)
	assert.Equal(t, []string{"a"}, items)
	assert.Equal(t, 6, calls)
}

func TestFetchAllBatches_DescartaLoteEm400(t *testing.T) {
	ids := []int64{1, 2, 3, 4}

	var fetched [][]int64
	out, err := FetchAllBatches(ids, 2, func(batch []int64) ([]int64, error) {
		fetched = append(fetched, batch)
		if batch[0] == 1 {
			return nil, apiError(http.StatusBadRequest)
		}
		return batch, nil
	}, zeroPolicy(5))

	assert.NoError(t, err, "um 400 descarta o lote sem derrubar a unidade")
	assert.Equal(t, []int64{3, 4}, out)
	assert.Equal(t, [][]int64{{1, 2}, {3, 4}}, fetched)
}

func TestFetchAllBatches_AbortaUnidadeEm401(t *testing.T) {
	ids := []int64{1, 2, 3, 4, 5, 6}

	calls := 0
	out, err := FetchAllBatches(ids, 2, func(batch []int64) ([]int64, error) {
		calls++
		if calls == 2 {
			return nil, apiError(http.StatusForbidden)
		}
		return batch, nil
	}, zeroPolicy(5))

	assert.Error(t, err)
	assert.Equal(t, []int64{1, 2}, out, "o acumulado até a falha é preservado")
	assert.Equal(t, 2, calls, "os lotes restantes não são buscados")
}

func TestFetchAllBatches_RepeteLoteApos429(t *testing.T) {
	ids := []int64{1, 2}

	calls := 0
	out, err := FetchAllBatches(ids, 2, func(batch []int64) ([]int64, error) {
		calls++
		if calls < 3 {
			return nil, apiError(http.StatusTooManyRequests)
		}
		return batch, nil
	}, zeroPolicy(5))

	assert.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, out)
	assert.Equal(t, 3, calls)
}

func TestFetchAllBatches_EsgotaTentativasDoLote(t *testing.T) {
	ids := []int64{1, 2, 3, 4}

	perBatch := make(map[int64]int)
	out, err := FetchAllBatches(ids, 2, func(batch []int64) ([]int64, error) {
		perBatch[batch[0]]++
		if batch[0] == 1 {
			return nil, apiError(http.StatusTooManyRequests)
		}
		return batch, nil
	}, zeroPolicy(5))

	assert.NoError(t, err, "esgotar as tentativas de um lote descarta só o lote")
	assert.Equal(t, []int64{3, 4}, out)
	assert.Equal(t, 5, perBatch[1], "o lote problemático recebe exatamente MaxRetries tentativas")
	assert.Equal(t, 1, perBatch[3])
}

func TestDoWithRetry(t *testing.T) {
	tests := []struct {
		name      string
		script    func(call int) ([]int, error)
		wantItems []int
		wantErr   bool
		wantCalls int
	}{
		{
			name: "Sucesso na primeira tentativa",
			script: func(call int) ([]int, error) {
				return []int{1}, nil
			},
			wantItems: []int{1},
			wantCalls: 1,
		},
		{
			name: "Falha transitória seguida de sucesso",
			script: func(call int) ([]int, error) {
				if call == 1 {
					return nil, errors.New("timeout")
				}
				return []int{2}, nil
			},
			wantItems: []int{2},
			wantCalls: 2,
		},
		{
			name: "429 persistente esgota as tentativas",
			script: func(call int) ([]int, error) {
				return nil, apiError(http.StatusTooManyRequests)
			},
			wantErr:   true,
			wantCalls: 5,
		},
		{
			name: "401 aborta sem retry",
			script: func(call int) ([]int, error) {
				return nil, apiError(http.StatusUnauthorized)
			},
			wantErr:   true,
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			items, err := DoWithRetry(zeroPolicy(5), func() ([]int, error) {
				calls++
				return tt.script(calls)
			})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantItems, items)
			}
			assert.Equal(t, tt.wantCalls, calls)
		})
	}
}
