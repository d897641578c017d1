package collecting

import (
	"time"

	wbdomain "github.com/vfg2006/wb-analytics-sync/infrastructure/integrator/wb/domain"
)

// BackoffPolicy parametriza o comportamento de retry e espera de um
// job. Cada job configura os próprios valores; os testes usam durações
// zeradas.
type BackoffPolicy struct {
	// MaxRetries limita as tentativas de uma mesma requisição.
	MaxRetries int
	// RateLimitDelay é a espera após um 429.
	RateLimitDelay time.Duration
	// RateLimitStep é o acréscimo na espera a cada novo 429 da mesma
	// requisição (usado pelo funil de vendas).
	RateLimitStep time.Duration
	// NetworkDelay é a espera após uma falha de rede.
	NetworkDelay time.Duration
	// PageDelay é a pausa entre páginas consecutivas bem-sucedidas.
	PageDelay time.Duration
	// BatchCooldown é a pausa obrigatória após cada lote de IDs,
	// independentemente do resultado (teto de 1 req/min do provedor).
	BatchCooldown time.Duration
}

type failureKind int

const (
	failureTransient failureKind = iota
	failureRateLimited
	failureAuth
	failureValidation
)

// classify mapeia um erro do integrador na taxonomia de falhas que
// dirige o retry: 429 espera e repete, 401/403 aborta a unidade,
// 400 depende do modo de paginação, o resto é tratado como transitório.
func classify(err error) failureKind {
	switch {
	case wbdomain.IsRateLimited(err):
		return failureRateLimited
	case wbdomain.IsAuthFailure(err):
		return failureAuth
	case wbdomain.IsValidationFailure(err):
		return failureValidation
	default:
		return failureTransient
	}
}
