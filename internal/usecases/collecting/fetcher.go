package collecting

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Cursor carrega o estado de continuação de uma busca paginada. Os
// campos usados dependem do endpoint: offset para o funil de vendas,
// (UpdatedAt, LastID) para a listagem de cards.
type Cursor struct {
	Offset    int
	UpdatedAt string
	LastID    int64
}

// Page é o resultado de uma chamada paginada: os itens da página e o
// cursor da próxima, calculado pela função de busca, que conhece o
// protocolo do endpoint.
type Page[T any] struct {
	Items []T
	Next  Cursor
}

// PageFunc busca uma única página a partir do cursor informado.
type PageFunc[T any] func(cursor Cursor) (Page[T], error)

// BatchFunc busca todos os registros de um lote de IDs.
type BatchFunc[T any] func(ids []int64) ([]T, error)

// Batchify particiona items em lotes de no máximo size elementos,
// preservando a ordem e cobrindo cada elemento exatamente uma vez.
func Batchify[T any](items []T, size int) [][]T {
	if size <= 0 || len(items) == 0 {
		return nil
	}

	batches := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		batches = append(batches, items[start:end])
	}
	return batches
}

// FetchAllPages percorre uma busca paginada por cursor até a primeira
// página vazia ou menor que o limite. Falhas de autorização e validação
// abortam a unidade inteira; 429 e falhas de rede são repetidos até
// policy.MaxRetries. Se as tentativas se esgotarem no meio da
// paginação, as páginas já acumuladas são preservadas e devolvidas
// junto com o erro.
func FetchAllPages[T any](fetch PageFunc[T], limit int, policy BackoffPolicy) ([]T, error) {
	var items []T
	cursor := Cursor{}
	attempt := 0

	for {
		page, err := fetch(cursor)
		if err != nil {
			switch classify(err) {
			case failureAuth, failureValidation:
				// Sem retry: aborta a unidade, descartando o parcial
				return nil, err

			case failureRateLimited:
				attempt++
				if attempt >= policy.MaxRetries {
					logrus.WithError(err).Warnf("Número de tentativas esgotado (%d) após 429", policy.MaxRetries)
					return items, err
				}
				time.Sleep(policy.RateLimitDelay + time.Duration(attempt-1)*policy.RateLimitStep)

			default:
				attempt++
				if attempt >= policy.MaxRetries {
					logrus.WithError(err).Warnf("Número de tentativas esgotado (%d) após falha de rede", policy.MaxRetries)
					return items, err
				}
				time.Sleep(policy.NetworkDelay)
			}
			continue
		}

		if len(page.Items) == 0 {
			return items, nil
		}

		items = append(items, page.Items...)

		if len(page.Items) < limit {
			return items, nil
		}

		cursor = page.Next
		attempt = 0

		if policy.PageDelay > 0 {
			time.Sleep(policy.PageDelay)
		}
	}
}

// FetchAllBatches particiona ids em lotes de batchSize e executa uma
// requisição por lote. Um 400 descarta apenas o lote; 401/403
// interrompem a unidade inteira; 429 e falhas de rede são repetidos por
// lote até policy.MaxRetries. Após cada lote há uma pausa obrigatória
// de policy.BatchCooldown, independentemente do resultado.
func FetchAllBatches[T any](ids []int64, batchSize int, fetch BatchFunc[T], policy BackoffPolicy) ([]T, error) {
	var out []T

	for _, batch := range Batchify(ids, batchSize) {
		records, err := fetchBatch(batch, fetch, policy)
		if err != nil {
			if classify(err) == failureAuth {
				return out, err
			}
			// 400 ou tentativas esgotadas: registra e segue para o
			// próximo lote
			logrus.WithError(err).WithField("batch_size", len(batch)).Warn("Lote descartado")
		} else {
			out = append(out, records...)
		}

		if policy.BatchCooldown > 0 {
			time.Sleep(policy.BatchCooldown)
		}
	}

	return out, nil
}

func fetchBatch[T any](batch []int64, fetch BatchFunc[T], policy BackoffPolicy) ([]T, error) {
	var lastErr error

	for attempt := 0; attempt < policy.MaxRetries; attempt++ {
		records, err := fetch(batch)
		if err == nil {
			return records, nil
		}
		lastErr = err

		switch classify(err) {
		case failureAuth, failureValidation:
			return nil, err
		case failureRateLimited:
			time.Sleep(policy.RateLimitDelay)
		default:
			time.Sleep(policy.NetworkDelay)
		}
	}

	return nil, lastErr
}

// DoWithRetry executa uma requisição única (sem paginação) repetindo
// falhas transitórias e 429 até policy.MaxRetries. Falhas de
// autorização abortam imediatamente.
func DoWithRetry[T any](policy BackoffPolicy, fn func() ([]T, error)) ([]T, error) {
	var lastErr error

	for attempt := 0; attempt < policy.MaxRetries; attempt++ {
		items, err := fn()
		if err == nil {
			return items, nil
		}
		lastErr = err

		switch classify(err) {
		case failureAuth:
			return nil, err
		case failureRateLimited:
			time.Sleep(policy.RateLimitDelay)
		default:
			time.Sleep(policy.NetworkDelay)
		}
	}

	return nil, lastErr
}
