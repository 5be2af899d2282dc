package metaclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/campaign-launcher-api/infrastructure/integrator/meta/domain"
)

// GetCampaignByID consulta os detalhes de uma campanha já criada,
// usado para sincronizar o status dos lançamentos
func (c *MetaClient) GetCampaignByID(campaignID string) (*metadomain.CampaignDetails, error) {
	// Garantir que o token seja válido antes de fazer a requisição
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	baseURL := fmt.Sprintf("%s/%s", c.Cfg.Meta.URL, campaignID)

	params := url.Values{}
	params.Add("fields", "id,name,objective,status,effective_status,created_time,updated_time")
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	url := baseURL + "?" + params.Encode()

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := c.HandleResponse(resp)
	if err != nil {
		// Se o erro indica que o token foi renovado, tentar novamente
		if err.Error() == "token expirado e renovado, por favor tente novamente" {
			return c.GetCampaignByID(campaignID)
		}
		return nil, err
	}

	var campaign metadomain.CampaignDetails
	if err := json.Unmarshal(body, &campaign); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	if campaign.ID == "" {
		return nil, fmt.Errorf("campanha %s não encontrada", campaignID)
	}

	return &campaign, nil
}
