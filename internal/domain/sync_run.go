package domain

import "time"

// SyncRun registra o resultado agregado de uma execução de sincronização:
// quantas unidades de trabalho (conta [× data]) tiveram sucesso, vieram
// vazias ou falharam, e quantas linhas foram escritas no destino.
type SyncRun struct {
	ID          string
	Job         string
	DateFrom    time.Time
	DateTo      time.Time
	Units       int
	Succeeded   int
	Empty       int
	Failed      int
	RowsWritten int
	StartedAt   time.Time
	FinishedAt  time.Time
}
