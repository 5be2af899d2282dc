package togetherclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	togetherdomain "github.com/vfg2006/campaign-launcher-api/infrastructure/integrator/together/domain"
)

type ChatCompletionParams struct {
	SystemPrompt string
	UserPrompt   string
}

func (c *TogetherClient) CreateChatCompletion(params ChatCompletionParams) (*togetherdomain.ChatCompletionResponse, error) {
	timeout := time.Duration(c.config.Together.RequestTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Construir a URL da requisição.
	endpoint, err := url.Parse(c.config.Together.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/chat/completions")

	request := togetherdomain.ChatCompletionRequest{
		Model: c.config.Together.Model,
		Messages: []togetherdomain.ChatCompletionMessage{
			{Role: "system", Content: params.SystemPrompt},
			{Role: "user", Content: params.UserPrompt},
		},
		Temperature: c.config.Together.Temperature,
		MaxTokens:   c.config.Together.MaxTokens,
		N:           1,
	}

	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar a requisição: %w", err)
	}

	// Criar a requisição HTTP.
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	// Adicionar cabeçalhos necessários.
	req.Header.Set("Authorization", "Bearer "+c.config.Together.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	// Executar a requisição.
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	// Verificar o código de status da resposta.
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("requisição falhou com status %s: %s", resp.Status, string(respBody))
	}

	// Decodificar a resposta JSON.
	var response togetherdomain.ChatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	if len(response.Choices) == 0 {
		return nil, fmt.Errorf("resposta do modelo sem alternativas de conteúdo")
	}

	return &response, nil
}
