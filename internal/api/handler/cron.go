package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/store-revenue-api/internal/scheduler"
	"github.com/vfg2006/store-revenue-api/pkg/apiErrors"
	"github.com/vfg2006/store-revenue-api/pkg/log"
)

// CronJobServices agrupa os agendadores expostos pelas rotas de cron
type CronJobServices struct {
	CacheWarmService *scheduler.CacheWarmService
}

// RunCronJob dispara manualmente um agendador pelo tipo informado na URL
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jobType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		switch jobType {
		case "cache-warm":
			services.CacheWarmService.TriggerManualWarm(r.Context())
			writeJSON(w, r, map[string]string{"status": "started", "job": jobType})

		default:
			log.ForContext(r.Context()).WithField("job", jobType).Warn("cron: tipo de job desconhecido")
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Tipo de job desconhecido", nil)
		}
	})
}

// GetCronStatus retorna o status dos agendadores
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, map[string]any{
			"cache_warm": services.CacheWarmService.GetStatus(),
		})
	})
}
