package collecting

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// FanOut executa fn para todas as unidades concorrentemente, cada
// goroutine adquirindo o gate antes de tocar a rede. A falha de uma
// unidade nunca derruba as irmãs: o erro fica contido no UnitOutcome
// correspondente. Não há cancelamento nem prazo global — a rodada
// termina quando todas as unidades terminam.
func FanOut[T any](units []Unit, gate *Gate, fn func(Unit) ([]T, error)) ([]UnitOutcome[T], RunSummary) {
	outcomes := make([]UnitOutcome[T], len(units))

	var wg sync.WaitGroup
	for i, unit := range units {
		wg.Add(1)

		go func(i int, unit Unit) {
			defer wg.Done()

			gate.Acquire()
			defer gate.Release()

			records, err := fn(unit)
			outcomes[i] = resolveOutcome(unit, records, err)
		}(i, unit)
	}
	wg.Wait()

	summary := RunSummary{Units: len(units)}
	for _, outcome := range outcomes {
		switch outcome.Status {
		case UnitSucceeded:
			summary.Succeeded++
		case UnitEmpty:
			summary.Empty++
		case UnitFailed:
			summary.Failed++
		}
	}

	return outcomes, summary
}

// resolveOutcome etiqueta o desfecho de uma unidade. Registros parciais
// acompanhados de erro contam como sucesso, com aviso no log.
func resolveOutcome[T any](unit Unit, records []T, err error) UnitOutcome[T] {
	logger := logrus.WithFields(logrus.Fields{
		"account": unit.Account.Name,
		"date":    unit.Date.Format(time.DateOnly),
	})

	switch {
	case err != nil && len(records) == 0:
		logger.WithError(err).Warn("Unidade de trabalho falhou")
		return UnitOutcome[T]{Unit: unit, Status: UnitFailed, Err: err}

	case err != nil:
		logger.WithError(err).WithField("records", len(records)).
			Warn("Unidade de trabalho concluída com resultado parcial")
		return UnitOutcome[T]{Unit: unit, Status: UnitSucceeded, Records: records, Err: err}

	case len(records) == 0:
		logger.Info("Unidade de trabalho concluída sem registros")
		return UnitOutcome[T]{Unit: unit, Status: UnitEmpty}

	default:
		logger.WithField("records", len(records)).Info("Unidade de trabalho concluída")
		return UnitOutcome[T]{Unit: unit, Status: UnitSucceeded, Records: records}
	}
}
