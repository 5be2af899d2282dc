package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-launcher-api/internal/domain"
	"github.com/vfg2006/campaign-launcher-api/internal/usecases/account"
	"github.com/vfg2006/campaign-launcher-api/pkg/apiErrors"
)

// MetaIntegrationStatus verifica a conexão com a API do Meta. Sempre responde
// 200; a falha de acesso é representada no campo connected
func MetaIntegrationStatus(service account.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, err := service.CheckAccess()
		if err != nil {
			logrus.Error("Error checking meta integration access: ", err)
			status = &domain.IntegrationStatus{
				Connected: false,
				Message:   "Não conectado à API do Meta",
			}
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logrus.Error("Error encoding response meta integration status: ", err)
		}
	}
}

// ListMetaAdAccounts lista as contas de anúncios acessíveis pelo token
func ListMetaAdAccounts(service account.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accounts, err := service.ListAdAccounts()
		if err != nil {
			handleAccountError(w, err)
			return
		}

		if accounts == nil {
			accounts = []*domain.AdAccountResponse{}
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(accounts); err != nil {
			logrus.Error("Error encoding response list ad accounts: ", err)
		}
	}
}

// ListMetaPages lista as páginas acessíveis pelo token
func ListMetaPages(service account.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pages, err := service.ListPages()
		if err != nil {
			handleAccountError(w, err)
			return
		}

		if pages == nil {
			pages = []*domain.PageResponse{}
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(pages); err != nil {
			logrus.Error("Error encoding response list pages: ", err)
		}
	}
}

// GetCampaignDetails consulta uma campanha diretamente na plataforma pelo
// identificador externo. Serve para conferir o estado após um lançamento
func GetCampaignDetails(service account.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if campaignID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador da campanha não informado", nil)
			return
		}

		campaign, err := service.GetCampaign(campaignID)
		if err != nil {
			handleAccountError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(campaign); err != nil {
			logrus.Error("Error encoding response campaign details: ", err)
		}
	}
}

func handleAccountError(w http.ResponseWriter, err error) {
	var accErr *account.AccountError
	if errors.As(err, &accErr) {
		apiErrors.WriteError(w, accErr.Code, accErr.Err.Error(), accErr.Details)
		return
	}

	logrus.Error("Error from account service: ", err)
	apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar a API do Meta", nil)
}
