package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-launcher-api/internal/domain"
	"github.com/vfg2006/campaign-launcher-api/internal/scheduler"
	"github.com/vfg2006/campaign-launcher-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-launcher-api/pkg/middleware"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	CampaignStatusSyncService *scheduler.CampaignStatusSyncService
}

// RunCampaignStatusSync executa manualmente a sincronização de status das
// campanhas lançadas
func RunCampaignStatusSync(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCampaignStatusSync")

		// Verificar permissões - apenas administradores podem executar cron jobs
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar cron jobs", nil)
			return
		}

		if services.CampaignStatusSyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de status não disponível", nil)
			return
		}

		services.CampaignStatusSyncService.TriggerManualSync()

		response := map[string]any{
			"message": "Sincronização de status iniciada com sucesso",
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem verificar status de cron jobs", nil)
			return
		}

		status := map[string]any{
			"campaign-status-sync": services.CampaignStatusSyncService.GetStatus(),
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}
