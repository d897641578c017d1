package collecting

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/wb-analytics-sync/internal/domain"
)

func unitsFor(names ...string) []Unit {
	units := make([]Unit, 0, len(names))
	for _, name := range names {
		units = append(units, Unit{
			Account: domain.SellerAccount{Name: name, Token: "token-" + name},
			Date:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		})
	}
	return units
}

func TestFanOut_EtiquetaOsDesfechos(t *testing.T) {
	units := unitsFor("sucesso", "vazia", "falha", "parcial")
	gate := NewGate(4)

	outcomes, summary := FanOut(units, gate, func(unit Unit) ([]string, error) {
		switch unit.Account.Name {
		case "sucesso":
			return []string{"r1", "r2"}, nil
		case "vazia":
			return nil, nil
		case "falha":
			return nil, errors.New("boom")
		default:
			// Registros parciais com erro contam como sucesso
			return []string{"r3"}, errors.New("tentativas esgotadas")
		}
	})

	assert.Len(t, outcomes, 4)
	assert.Equal(t, UnitSucceeded, outcomes[0].Status)
	assert.Equal(t, []string{"r1", "r2"}, outcomes[0].Records)
	assert.Equal(t, UnitEmpty, outcomes[1].Status)
	assert.Equal(t, UnitFailed, outcomes[2].Status)
	assert.Error(t, outcomes[2].Err)
	assert.Equal(t, UnitSucceeded, outcomes[3].Status, "resultado parcial conta como sucesso")
	assert.Error(t, outcomes[3].Err)

	assert.Equal(t, RunSummary{Units: 4, Succeeded: 2, Empty: 1, Failed: 1}, summary)
}

func TestFanOut_FalhaDeUmaUnidadeNaoDerrubaAsIrmas(t *testing.T) {
	units := unitsFor("a", "b", "c")
	gate := NewGate(3)

	outcomes, summary := FanOut(units, gate, func(unit Unit) ([]int, error) {
		if unit.Account.Name == "b" {
			return nil, errors.New("boom")
		}
		return []int{1}, nil
	})

	assert.Equal(t, UnitSucceeded, outcomes[0].Status)
	assert.Equal(t, UnitFailed, outcomes[1].Status)
	assert.Equal(t, UnitSucceeded, outcomes[2].Status)
	assert.Equal(t, 2, summary.Succeeded)
	assert.Equal(t, 1, summary.Failed)
}

func TestFanOut_PreservaAOrdemDasUnidades(t *testing.T) {
	units := unitsFor("u0", "u1", "u2", "u3", "u4")
	gate := NewGate(2)

	outcomes, _ := FanOut(units, gate, func(unit Unit) ([]string, error) {
		return []string{unit.Account.Name}, nil
	})

	for i, outcome := range outcomes {
		assert.Equal(t, units[i].Account.Name, outcome.Unit.Account.Name)
		assert.Equal(t, []string{units[i].Account.Name}, outcome.Records)
	}
}

func TestFanOut_RespeitaOLimiteDoGate(t *testing.T) {
	const maxConcurrent = 3
	units := unitsFor("a", "b", "c", "d", "e", "f", "g", "h", "i", "j")
	gate := NewGate(maxConcurrent)

	var inFlight, peak int32
	var mu sync.Mutex

	FanOut(units, gate, func(unit Unit) ([]int, error) {
		current := atomic.AddInt32(&inFlight, 1)
		mu.Lock()
		if current > peak {
			peak = current
		}
		mu.Unlock()

		time.Sleep(5 * time.Millisecond)
		atomic.AddInt32(&inFlight, -1)
		return []int{1}, nil
	})

	assert.LessOrEqual(t, peak, int32(maxConcurrent),
		"nunca deve haver mais unidades em voo do que o limite do gate")
	assert.Equal(t, int32(0), atomic.LoadInt32(&inFlight))
}

func TestGate_MaximoInvalidoViraUm(t *testing.T) {
	gate := NewGate(0)
	gate.Acquire()
	assert.Equal(t, 1, gate.InFlight())
	gate.Release()
	assert.Equal(t, 0, gate.InFlight())
}
