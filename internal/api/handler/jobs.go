package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/wb-analytics-sync/infrastructure/repository"
	"github.com/vfg2006/wb-analytics-sync/internal/scheduler"
	"github.com/vfg2006/wb-analytics-sync/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// JobType define o tipo de job de sincronização que será executado
const (
	JobTypeAdvertStats = "advert-stats"
	JobTypeAdvertSpend = "advert-spend"
	JobTypeContent     = "content"
	JobTypeFunnel      = "funnel"
	JobTypeAll         = "all"
)

const defaultRunsLimit = 20

// JobServices contém os agendadores necessários para disparo manual e
// o repositório de execuções para consulta do histórico
type JobServices struct {
	AdvertStatsSyncService *scheduler.AdvertStatsSyncService
	AdvertSpendSyncService *scheduler.AdvertSpendSyncService
	ContentSyncService     *scheduler.ContentSyncService
	FunnelSyncService      *scheduler.FunnelSyncService
	SyncRunRepo            repository.SyncRunRepository
}

// RunSyncJob executa manualmente um job de sincronização específico
func RunSyncJob(services JobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunSyncJob")

		jobType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if jobType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de job não especificado", nil)
			return
		}

		switch jobType {
		case JobTypeAdvertStats:
			if services.AdvertStatsSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de estatística de campanhas não disponível", nil)
				return
			}
			services.AdvertStatsSyncService.TriggerManualSync()

		case JobTypeAdvertSpend:
			if services.AdvertSpendSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de gastos de campanha não disponível", nil)
				return
			}
			services.AdvertSpendSyncService.TriggerManualSync()

		case JobTypeContent:
			if services.ContentSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de cards de conteúdo não disponível", nil)
				return
			}
			services.ContentSyncService.TriggerManualSync()

		case JobTypeFunnel:
			if services.FunnelSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço do funil de vendas não disponível", nil)
				return
			}
			services.FunnelSyncService.TriggerManualSync()

		case JobTypeAll:
			if services.AdvertStatsSyncService != nil {
				services.AdvertStatsSyncService.TriggerManualSync()
			}
			if services.AdvertSpendSyncService != nil {
				services.AdvertSpendSyncService.TriggerManualSync()
			}
			if services.ContentSyncService != nil {
				services.ContentSyncService.TriggerManualSync()
			}
			if services.FunnelSyncService != nil {
				services.FunnelSyncService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de job inválido. Valores aceitos: advert-stats, advert-spend, content, funnel, all", nil)
			return
		}

		response := map[string]any{
			"message": "Job de sincronização iniciado com sucesso",
			"type":    jobType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetSyncStatus retorna o status dos agendadores de sincronização
func GetSyncStatus(services JobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetSyncStatus")

		status := map[string]any{
			"advert-stats": services.AdvertStatsSyncService.GetStatus(),
			"advert-spend": services.AdvertSpendSyncService.GetStatus(),
			"content":      services.ContentSyncService.GetStatus(),
			"funnel":       services.FunnelSyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}

// ListSyncRuns retorna o histórico de execuções registradas no banco,
// opcionalmente filtrado por job (?job=funnel) e limitado (?limit=N)
func ListSyncRuns(services JobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListSyncRuns")

		job := r.URL.Query().Get("job")

		limit := defaultRunsLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
				return
			}
			limit = parsed
		}

		runs, err := services.SyncRunRepo.ListRecent(job, limit)
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar execuções de sincronização")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar execuções de sincronização", nil)
			return
		}

		json.NewEncoder(w).Encode(runs)
	}
}
