package scheduler

import (
	"context"
	"time"

	"github.com/vfg2006/wb-analytics-sync/internal/domain"
)

// SyncService é o contrato comum dos agendadores de sincronização,
// usado pela API para disparo manual e consulta de status.
type SyncService interface {
	Start(ctx context.Context) error
	TriggerManualSync()
	GetStatus() map[string]any
}

// lookbackDates devolve as datas da janela de retrovisão, começando de
// ontem e indo para trás, em ordem cronológica crescente.
func lookbackDates(days int) []time.Time {
	if days < 1 {
		days = 1
	}
	yesterday := time.Now().AddDate(0, 0, -1)
	window := domain.DateRange{
		Start: yesterday.AddDate(0, 0, -(days - 1)),
		End:   yesterday,
	}
	return window.Days()
}
