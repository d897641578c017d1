package collecting

import (
	"time"

	"github.com/vfg2006/wb-analytics-sync/internal/domain"
)

// Unit é uma unidade de trabalho: uma conta e, para os jobs diários,
// a data consultada.
type Unit struct {
	Account domain.SellerAccount
	Date    time.Time
}

// UnitStatus classifica o desfecho de uma unidade de trabalho.
type UnitStatus int

const (
	// UnitSucceeded: a unidade produziu registros (possivelmente
	// parciais, se as tentativas se esgotaram no meio da paginação).
	UnitSucceeded UnitStatus = iota
	// UnitEmpty: a busca terminou sem erro e sem registros.
	UnitEmpty
	// UnitFailed: a unidade não produziu nenhum registro utilizável.
	UnitFailed
)

func (s UnitStatus) String() string {
	switch s {
	case UnitSucceeded:
		return "succeeded"
	case UnitEmpty:
		return "empty"
	case UnitFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// UnitOutcome é o resultado etiquetado de uma unidade: em vez de uma
// lista plana onde "vazio" e "falhou" são indistinguíveis, cada unidade
// carrega o próprio desfecho.
type UnitOutcome[T any] struct {
	Unit    Unit
	Status  UnitStatus
	Records []T
	Err     error
}

// RunSummary é o resumo de uma rodada de coleta, exposto ao chamador e
// persistido no histórico de execuções.
type RunSummary struct {
	Units     int
	Succeeded int
	Empty     int
	Failed    int
}
