package domain

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// APIError representa uma resposta não-2xx da API do Wildberries.
// O status HTTP é a única informação usada para classificar a falha
// (limite de requisições, autorização, validação).
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API WB respondeu com status %d", e.StatusCode)
	}
	return fmt.Sprintf("API WB respondeu com status %d: %s", e.StatusCode, e.Message)
}

// IsRateLimited indica uma resposta 429 (limite de requisições excedido).
func IsRateLimited(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests
}

// IsAuthFailure indica uma falha de autorização (401/403), que nunca
// deve ser repetida.
func IsAuthFailure(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden
}

// IsValidationFailure indica uma resposta 400.
func IsValidationFailure(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusBadRequest
}
