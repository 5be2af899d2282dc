package account

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-launcher-api/infrastructure/integrator/meta"
	"github.com/vfg2006/campaign-launcher-api/internal/config"
	"github.com/vfg2006/campaign-launcher-api/internal/domain"
	"github.com/vfg2006/campaign-launcher-api/pkg/apiErrors"
)

type AccountService interface {
	CheckAccess() (*domain.IntegrationStatus, error)
	ListAdAccounts() ([]*domain.AdAccountResponse, error)
	ListPages() ([]*domain.PageResponse, error)
	GetCampaign(campaignID string) (*domain.CampaignDetailsResponse, error)
}

type Service struct {
	metaService *meta.MetaIntegrator
	cfg         *config.Config
}

func NewService(metaService *meta.MetaIntegrator, cfg *config.Config) AccountService {
	return &Service{
		metaService: metaService,
		cfg:         cfg,
	}
}

// CheckAccess confirma que o token configurado dá acesso à Graph API e
// identifica o usuário dono do token
func (s *Service) CheckAccess() (*domain.IntegrationStatus, error) {
	identity, err := s.metaService.CheckAccess()
	if err != nil {
		logrus.Error("Error checking access with integrator meta:", err)
		return nil, NewAccountError(ErrAccessCheck, apiErrors.ErrExternalService, "Falha ao verificar acesso à API do Meta")
	}

	return &domain.IntegrationStatus{
		Connected: true,
		UserID:    identity.ID,
		UserName:  identity.Name,
		Message:   fmt.Sprintf("connected as %s", identity.Name),
	}, nil
}

func (s *Service) ListAdAccounts() ([]*domain.AdAccountResponse, error) {
	accounts, err := s.metaService.ListAdAccounts()
	if err != nil {
		logrus.Error("Error getting ad accounts from integrator meta:", err)
		return nil, NewAccountError(ErrMetaIntegration, apiErrors.ErrExternalService, "Falha ao obter contas da API do Meta")
	}

	// Transforma as contas para o formato de resposta da API
	response := make([]*domain.AdAccountResponse, 0, len(accounts))
	for _, account := range accounts {
		response = append(response, &domain.AdAccountResponse{
			ID:            account.ID,
			Name:          account.Name,
			AccountStatus: account.AccountStatus,
			IsDefault:     account.ID == s.cfg.Meta.AdAccountID,
		})
	}

	return response, nil
}

func (s *Service) ListPages() ([]*domain.PageResponse, error) {
	pages, err := s.metaService.ListPages()
	if err != nil {
		logrus.Error("Error getting pages from integrator meta:", err)
		return nil, NewAccountError(ErrMetaIntegration, apiErrors.ErrExternalService, "Falha ao obter páginas da API do Meta")
	}

	response := make([]*domain.PageResponse, 0, len(pages))
	for _, page := range pages {
		response = append(response, &domain.PageResponse{
			ID:        page.ID,
			Name:      page.Name,
			Category:  page.Category,
			IsDefault: page.ID == s.cfg.Meta.PageID,
		})
	}

	return response, nil
}

func (s *Service) GetCampaign(campaignID string) (*domain.CampaignDetailsResponse, error) {
	if campaignID == "" {
		return nil, ErrCampaignIDRequired
	}

	campaign, err := s.metaService.CampaignByID(campaignID)
	if err != nil {
		if strings.Contains(err.Error(), "não encontrada") {
			return nil, NewAccountErrorWithCampaignID(ErrCampaignNotFound, apiErrors.ErrLaunchNotFound, campaignID, "Campanha não encontrada na plataforma")
		}

		logrus.Error("Error getting campaign from integrator meta:", err)
		return nil, NewAccountErrorWithCampaignID(ErrMetaIntegration, apiErrors.ErrExternalService, campaignID, "Falha ao consultar campanha na API do Meta")
	}

	return &domain.CampaignDetailsResponse{
		ID:              campaign.ID,
		Name:            campaign.Name,
		Objective:       campaign.Objective,
		Status:          campaign.Status,
		EffectiveStatus: campaign.EffectiveStatus,
		CreatedTime:     campaign.CreatedTime,
		UpdatedTime:     campaign.UpdatedTime,
	}, nil
}
