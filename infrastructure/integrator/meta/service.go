package meta

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/campaign-launcher-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/campaign-launcher-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/campaign-launcher-api/internal/config"
	"github.com/vfg2006/campaign-launcher-api/pkg/utils"
)

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// CheckAccess valida o token consultando a identidade do usuário no
// endpoint /me. Usado pela rota de status da integração
func (s *MetaIntegrator) CheckAccess() (*metadomain.Identity, error) {
	if err := s.Client.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	url := fmt.Sprintf("%s/me?fields=id,name&access_token=%s", s.cfg.Meta.URL, s.cfg.Meta.AccessToken)

	data, err := utils.MakeRequest(url)
	if err != nil {
		if strings.Contains(err.Error(), "Error on Request") {
			if refreshErr := s.Client.RefreshToken(); refreshErr != nil {
				return nil, fmt.Errorf("erro ao renovar token: %w", refreshErr)
			}

			url = fmt.Sprintf("%s/me?fields=id,name&access_token=%s", s.cfg.Meta.URL, s.cfg.Meta.AccessToken)

			data, err = utils.MakeRequest(url)
			if err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	var identity metadomain.Identity
	if err := json.Unmarshal(data, &identity); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":   identity.ID,
		"user_name": identity.Name,
	}).Info("integration: connected to Meta Graph API")

	return &identity, nil
}

// ListAdAccounts lista as contas de anúncios acessíveis pelo token
func (s *MetaIntegrator) ListAdAccounts() ([]metadomain.AdAccount, error) {
	accounts, err := s.Client.GetAdAccounts()
	if err != nil {
		logrus.WithError(err).Error("integration: failed to list ad accounts")
		return nil, err
	}

	logrus.WithField("total_accounts", len(accounts)).Info("integration: successfully retrieved ad accounts")

	return accounts, nil
}

// ListPages lista as páginas administradas pelo usuário do token
func (s *MetaIntegrator) ListPages() ([]metadomain.Page, error) {
	pages, err := s.Client.GetPages()
	if err != nil {
		logrus.WithError(err).Error("integration: failed to list pages")
		return nil, err
	}

	logrus.WithField("total_pages", len(pages)).Info("integration: successfully retrieved pages")

	return pages, nil
}

// CampaignByID consulta os detalhes de uma campanha na plataforma
func (s *MetaIntegrator) CampaignByID(campaignID string) (*metadomain.CampaignDetails, error) {
	campaign, err := s.Client.GetCampaignByID(campaignID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Error("integration: failed to get campaign details")
		return nil, err
	}

	return campaign, nil
}

// DefaultAdAccountID resolve a conta de anúncios a usar: a configurada
// ou, na ausência, a primeira acessível pelo token
func (s *MetaIntegrator) DefaultAdAccountID() (string, error) {
	if s.cfg.Meta.AdAccountID != "" {
		return s.cfg.Meta.AdAccountID, nil
	}

	accounts, err := s.ListAdAccounts()
	if err != nil {
		return "", err
	}

	if len(accounts) == 0 {
		return "", fmt.Errorf("nenhuma conta de anúncios acessível pelo token")
	}

	return accounts[0].ID, nil
}

// DefaultPageID resolve a página a usar como identidade do creative: a
// configurada ou, na ausência, a primeira administrada pelo usuário
func (s *MetaIntegrator) DefaultPageID() (string, error) {
	if s.cfg.Meta.PageID != "" {
		return s.cfg.Meta.PageID, nil
	}

	pages, err := s.ListPages()
	if err != nil {
		return "", err
	}

	if len(pages) == 0 {
		return "", fmt.Errorf("nenhuma página administrada pelo usuário do token")
	}

	return pages[0].ID, nil
}
