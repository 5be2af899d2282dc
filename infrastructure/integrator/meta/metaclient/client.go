package metaclient

import (
	"net/http"
	"time"

	metadomain "github.com/vfg2006/campaign-launcher-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/campaign-launcher-api/internal/config"
	"github.com/vfg2006/campaign-launcher-api/internal/domain"
)

type Client interface {
	CreateResource(accountID string, resource domain.ResourceType, payload map[string]any) (string, error)
	GetCampaignByID(campaignID string) (*metadomain.CampaignDetails, error)
	GetAdAccounts() ([]metadomain.AdAccount, error)
	GetPages() ([]metadomain.Page, error)
	RefreshToken() error
	EnsureValidToken() error
	HandleResponse(resp *http.Response) ([]byte, error)
}

type MetaClient struct {
	Cfg          *config.Config
	TokenManager *TokenManager
	httpClient   *http.Client
}

func NewClient(cfg *config.Config, tokenManager *TokenManager) Client {
	timeout := time.Duration(cfg.Meta.RequestTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	client := &MetaClient{
		Cfg:          cfg,
		TokenManager: tokenManager,
		httpClient:   &http.Client{Timeout: timeout},
	}
	return client
}

// RefreshToken obtém um novo token de longa duração
func (c *MetaClient) RefreshToken() error {
	return c.TokenManager.RefreshToken()
}

// EnsureValidToken verifica se o token atual é válido e tenta renová-lo se necessário
func (c *MetaClient) EnsureValidToken() error {
	return c.TokenManager.EnsureValidToken()
}

// HandleResponse manipula a resposta HTTP e verifica erros de token expirado
func (c *MetaClient) HandleResponse(resp *http.Response) ([]byte, error) {
	return c.TokenManager.HandleResponse(resp)
}
