package metaclient

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/campaign-launcher-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/campaign-launcher-api/internal/domain"
)

// resourcePaths mapeia cada nível da hierarquia de anúncios para o
// segmento de URL correspondente da Graph API
var resourcePaths = map[domain.ResourceType]string{
	domain.ResourceCampaign: "campaigns",
	domain.ResourceAdSet:    "adsets",
	domain.ResourceCreative: "adcreatives",
	domain.ResourceAd:       "ads",
}

// CreateResource cria um recurso da hierarquia de anúncios e retorna o
// identificador gerado pela plataforma. Erros são normalizados na
// taxonomia do pipeline; apenas rate limit e falhas transitórias de
// rede são retentados, com backoff exponencial limitado pela
// configuração de retry
func (c *MetaClient) CreateResource(accountID string, resource domain.ResourceType, payload map[string]any) (string, error) {
	path, ok := resourcePaths[resource]
	if !ok {
		return "", domain.NewValidationError(fmt.Sprintf("tipo de recurso desconhecido: %s", resource))
	}

	if err := c.EnsureValidToken(); err != nil {
		return "", domain.NewAuthError(fmt.Sprintf("erro ao verificar validade do token: %v", err))
	}

	if !strings.HasPrefix(accountID, "act_") {
		accountID = "act_" + accountID
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", domain.NewValidationError(fmt.Sprintf("payload não serializável: %v", err))
	}

	endpoint := fmt.Sprintf("%s/%s/%s", c.Cfg.Meta.URL, accountID, path)

	maxAttempts := c.Cfg.Retry.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	delay := time.Duration(c.Cfg.Retry.BaseDelayMs) * time.Millisecond

	var lastErr error
	tokenRefreshed := false

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		id, err := c.postResource(endpoint, body)
		if err == nil {
			logrus.WithFields(logrus.Fields{
				"resource_type": string(resource),
				"resource_id":   id,
				"attempt":       attempt,
			}).Info("Recurso criado na plataforma")
			return id, nil
		}

		lastErr = err

		// Token expirado: renova uma vez e repete a chamada sem
		// consumir tentativa da política de backoff. A requisição
		// original foi rejeitada, então repetir não duplica recurso
		if isExpiredTokenErr(err) && !tokenRefreshed {
			logrus.Warn("Token expirado detectado ao criar recurso. Renovando...")
			if refreshErr := c.RefreshToken(); refreshErr == nil {
				tokenRefreshed = true
				attempt--
				continue
			}
			return "", err
		}

		if !domain.IsRetryable(err) {
			return "", err
		}

		if attempt == maxAttempts {
			break
		}

		logrus.WithFields(logrus.Fields{
			"resource_type": string(resource),
			"attempt":       attempt,
			"delay_ms":      delay.Milliseconds(),
			"error":         err.Error(),
		}).Warn("Erro transitório da plataforma, aguardando para retentar")

		time.Sleep(delay)
		delay = time.Duration(float64(delay) * c.Cfg.Retry.BackoffMultiplier)
	}

	logrus.WithFields(logrus.Fields{
		"resource_type": string(resource),
		"max_attempts":  maxAttempts,
	}).Error("Tentativas esgotadas ao criar recurso na plataforma")

	return "", lastErr
}

// postResource faz uma única chamada de criação e classifica o resultado
func (c *MetaClient) postResource(endpoint string, body []byte) (string, error) {
	params := url.Values{}
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	req, err := http.NewRequest(http.MethodPost, endpoint+"?"+params.Encode(), bytes.NewReader(body))
	if err != nil {
		return "", domain.NewPermanentAPIError(fmt.Sprintf("erro ao criar a requisição: %v", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", domain.NewTransientNetworkError(err.Error())
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", domain.NewTransientNetworkError(fmt.Sprintf("erro ao ler resposta: %v", err))
	}

	if resp.StatusCode != http.StatusOK {
		return "", classifyError(resp.StatusCode, respBody)
	}

	var created metadomain.CreateResourceResponse
	if err := json.Unmarshal(respBody, &created); err != nil {
		return "", domain.NewPermanentAPIError(fmt.Sprintf("resposta inválida da plataforma: %v", err))
	}

	if created.ID == "" {
		return "", domain.NewPermanentAPIError("plataforma não retornou identificador do recurso criado")
	}

	return created.ID, nil
}

// classifyError traduz uma resposta de erro da Graph API para a
// taxonomia do pipeline
func classifyError(statusCode int, body []byte) *domain.LaunchError {
	errResp, parseErr := ParseErrorResponse(body)
	if parseErr != nil || (errResp.Error.Code == 0 && errResp.Error.Message == "") {
		if statusCode == http.StatusUnauthorized {
			return domain.NewAuthError(string(body))
		}
		return domain.NewPermanentAPIError(fmt.Sprintf("status %d: %s", statusCode, string(body)))
	}

	details := errResp.BestMessage()

	var kind domain.ErrorKind
	switch {
	case errResp.IsRateLimited():
		kind = domain.KindRateLimit
	case errResp.IsAuthError() || statusCode == http.StatusUnauthorized:
		kind = domain.KindAuth
	case statusCode == http.StatusBadRequest:
		kind = domain.KindValidation
	default:
		kind = domain.KindPermanentAPI
	}

	return domain.NewPlatformError(kind, details, errResp.Error.Code, errResp.Error.ErrorSubcode)
}

// isExpiredTokenErr identifica o caso específico de token expirado,
// único erro de credencial que ainda pode ser recuperado por renovação
func isExpiredTokenErr(err error) bool {
	var launchErr *domain.LaunchError
	if !errors.As(err, &launchErr) || launchErr.Kind != domain.KindAuth {
		return false
	}

	if launchErr.PlatformCode == 190 {
		return true
	}

	switch launchErr.PlatformSubcode {
	case 460, 463, 467:
		return true
	}

	return false
}
