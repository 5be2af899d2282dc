package togetherclient

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	togetherdomain "github.com/vfg2006/campaign-launcher-api/infrastructure/integrator/together/domain"
	"github.com/vfg2006/campaign-launcher-api/internal/config"
)

func testTogetherConfig(serverURL string) *config.Config {
	return &config.Config{
		Together: config.Together{
			BaseURL:               serverURL,
			APIKey:                "test-key",
			Model:                 "meta-llama/Llama-3.3-70B-Instruct-Turbo",
			Temperature:           0.7,
			MaxTokens:             800,
			RequestTimeoutSeconds: 5,
		},
	}
}

func TestCreateChatCompletion_Success(t *testing.T) {
	var gotPath, gotAuth, gotContentType string
	var gotRequest togetherdomain.ChatCompletionRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		json.NewDecoder(r.Body).Decode(&gotRequest)

		assert.Equal(t, http.MethodPost, r.Method)
		json.NewEncoder(w).Encode(togetherdomain.ChatCompletionResponse{
			ID:    "cmpl-123",
			Model: "meta-llama/Llama-3.3-70B-Instruct-Turbo",
			Choices: []togetherdomain.ChatCompletionChoice{
				{
					Index:        0,
					Message:      togetherdomain.ChatCompletionMessage{Role: "assistant", Content: `{"headline":"x"}`},
					FinishReason: "stop",
				},
			},
			Usage: togetherdomain.ChatCompletionUsage{PromptTokens: 320, CompletionTokens: 85, TotalTokens: 405},
		})
	}))
	defer server.Close()

	client := NewClient(testTogetherConfig(server.URL))

	resp, err := client.CreateChatCompletion(ChatCompletionParams{
		SystemPrompt: "You are a copywriter.",
		UserPrompt:   "Write an ad for Ótica Central.",
	})

	require.NoError(t, err)
	assert.Equal(t, "/chat/completions", gotPath)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "application/json", gotContentType)

	assert.Equal(t, "meta-llama/Llama-3.3-70B-Instruct-Turbo", gotRequest.Model)
	require.Len(t, gotRequest.Messages, 2)
	assert.Equal(t, "system", gotRequest.Messages[0].Role)
	assert.Equal(t, "You are a copywriter.", gotRequest.Messages[0].Content)
	assert.Equal(t, "user", gotRequest.Messages[1].Role)
	assert.Equal(t, 0.7, gotRequest.Temperature)
	assert.Equal(t, 800, gotRequest.MaxTokens)
	assert.Equal(t, 1, gotRequest.N)

	assert.Equal(t, "cmpl-123", resp.ID)
	require.Len(t, resp.Choices, 1)
	assert.Equal(t, `{"headline":"x"}`, resp.Choices[0].Message.Content)
	assert.Equal(t, 405, resp.Usage.TotalTokens)
}

func TestCreateChatCompletion_BaseURLWithPath(t *testing.T) {
	var gotPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(togetherdomain.ChatCompletionResponse{
			Choices: []togetherdomain.ChatCompletionChoice{
				{Message: togetherdomain.ChatCompletionMessage{Role: "assistant", Content: "ok"}},
			},
		})
	}))
	defer server.Close()

	cfg := testTogetherConfig(server.URL + "/v1")
	client := NewClient(cfg)

	_, err := client.CreateChatCompletion(ChatCompletionParams{SystemPrompt: "s", UserPrompt: "u"})

	require.NoError(t, err)
	assert.Equal(t, "/v1/chat/completions", gotPath)
}

func TestCreateChatCompletion_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "Rate limit exceeded", "type": "rate_limit"},
		})
	}))
	defer server.Close()

	client := NewClient(testTogetherConfig(server.URL))

	_, err := client.CreateChatCompletion(ChatCompletionParams{SystemPrompt: "s", UserPrompt: "u"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "Rate limit exceeded")
}

func TestCreateChatCompletion_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(togetherdomain.ChatCompletionResponse{ID: "cmpl-456"})
	}))
	defer server.Close()

	client := NewClient(testTogetherConfig(server.URL))

	_, err := client.CreateChatCompletion(ChatCompletionParams{SystemPrompt: "s", UserPrompt: "u"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "sem alternativas")
}
