package togetherclient

import (
	"net/http"
	"time"

	togetherdomain "github.com/vfg2006/campaign-launcher-api/infrastructure/integrator/together/domain"
	"github.com/vfg2006/campaign-launcher-api/internal/config"
)

type Client interface {
	CreateChatCompletion(params ChatCompletionParams) (*togetherdomain.ChatCompletionResponse, error)
}

type TogetherClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria uma nova instância do cliente da Together AI.
func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.Together.RequestTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &TogetherClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg,
	}
}
