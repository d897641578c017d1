package handler

import (
	"net/http"

	"github.com/vfg2006/wb-analytics-sync/internal/api/handler/router"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Jobs(services JobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/jobs/:type/run",
			Method:  http.MethodPost,
			Handler: RunSyncJob(services),
		},
		{
			Path:    "/v1/jobs/status",
			Method:  http.MethodGet,
			Handler: GetSyncStatus(services),
		},
		{
			Path:    "/v1/jobs/runs",
			Method:  http.MethodGet,
			Handler: ListSyncRuns(services),
		},
	}
}
