package together

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	togetherdomain "github.com/vfg2006/campaign-launcher-api/infrastructure/integrator/together/domain"
	"github.com/vfg2006/campaign-launcher-api/infrastructure/integrator/together/togetherclient"
	"github.com/vfg2006/campaign-launcher-api/internal/config"
	"github.com/vfg2006/campaign-launcher-api/internal/domain"
)

const systemPrompt = "You are an expert marketing copywriter specializing in creating engaging ad content for social media platforms."

type TogetherIntegrator interface {
	GenerateAdContent(brief *domain.CampaignBrief) (*domain.GeneratedContent, error)
}

type TogetherService struct {
	cfg    *config.Config
	Client togetherclient.Client
}

func New(cfg *config.Config, client togetherclient.Client) TogetherIntegrator {
	return &TogetherService{
		cfg:    cfg,
		Client: client,
	}
}

// GenerateAdContent monta o prompt a partir do brief, consulta o modelo
// e devolve o conteúdo extraído, validado e ajustado aos limites de
// caracteres dos campos do anúncio
func (s *TogetherService) GenerateAdContent(brief *domain.CampaignBrief) (*domain.GeneratedContent, error) {
	params := togetherclient.ChatCompletionParams{
		SystemPrompt: systemPrompt,
		UserPrompt:   buildPrompt(brief),
	}

	resp, err := s.Client.CreateChatCompletion(params)
	if err != nil {
		logrus.WithError(err).Error("together: chat completion request failed")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"model":             resp.Model,
		"prompt_tokens":     resp.Usage.PromptTokens,
		"completion_tokens": resp.Usage.CompletionTokens,
	}).Info("together: chat completion succeeded")

	content, err := extractAdContent(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}

	if err := validateAdContent(content); err != nil {
		return nil, err
	}

	return &domain.GeneratedContent{
		Headlines:        []string{fitToLimit("headline", content.Headline, domain.MaxHeadlineLength)},
		PrimaryTexts:     []string{fitToLimit("primary_text", content.PrimaryText, domain.MaxPrimaryTextLength)},
		Descriptions:     []string{fitToLimit("description", content.Description, domain.MaxDescriptionLength)},
		ImageDescription: strings.TrimSpace(content.ImageDescription),
	}, nil
}

func buildPrompt(brief *domain.CampaignBrief) string {
	return fmt.Sprintf(`Create engaging ad content for a social media campaign based on the following brief:

BUSINESS INFORMATION:
- Business Name: %s
- Business Description: %s
- Product/Service: %s

KEY SELLING POINTS:
%s

TARGET AUDIENCE:
- Age Range: %d-%d
- Gender: %s
- Locations: %s
- Description: %s

CAMPAIGN OBJECTIVE: %s
CALL TO ACTION: %s

Please generate the following content for this ad campaign:
1. A compelling headline (max %d characters)
2. Primary text (max %d characters)
3. Ad description (max %d characters)
4. Image description for the ad creative

Format your response as a JSON object with the following structure:
{
  "headline": "Your headline here",
  "primary_text": "Your primary text here",
  "description": "Your description here",
  "image_description": "Your image description here"
}

Keep the content concise, engaging, and aligned with the brand and target audience. Make sure to highlight the key selling points and include a clear call to action.`,
		brief.BusinessName,
		brief.BusinessDescription,
		brief.ProductOrService,
		strings.TrimSpace(brief.KeySellingPoints),
		brief.Audience.AgeMin,
		brief.Audience.AgeMax,
		brief.Audience.Gender,
		strings.Join(brief.Audience.Countries, ", "),
		brief.Audience.Description,
		brief.Objective,
		brief.CallToAction,
		domain.MaxHeadlineLength,
		domain.MaxPrimaryTextLength,
		domain.MaxDescriptionLength,
	)
}

// extractAdContent interpreta a resposta do modelo, que nem sempre vem
// como JSON puro. Tenta o parse direto e, em seguida, o trecho entre a
// primeira e a última chave, removendo marcadores de bloco de código
func extractAdContent(text string) (*togetherdomain.AdContent, error) {
	var content togetherdomain.AdContent
	if err := json.Unmarshal([]byte(text), &content); err == nil {
		return &content, nil
	}

	startIdx := strings.Index(text, "{")
	endIdx := strings.LastIndex(text, "}")

	if startIdx == -1 || endIdx == -1 || endIdx < startIdx {
		return nil, fmt.Errorf("não foi possível extrair JSON válido da resposta do modelo")
	}

	jsonStr := text[startIdx : endIdx+1]
	if err := json.Unmarshal([]byte(jsonStr), &content); err != nil {
		jsonStr = strings.ReplaceAll(jsonStr, "```json", "")
		jsonStr = strings.ReplaceAll(jsonStr, "```", "")

		if err := json.Unmarshal([]byte(jsonStr), &content); err != nil {
			return nil, fmt.Errorf("não foi possível extrair JSON válido da resposta do modelo: %w", err)
		}
	}

	return &content, nil
}

func validateAdContent(content *togetherdomain.AdContent) error {
	missing := make([]string, 0, 4)

	if strings.TrimSpace(content.Headline) == "" {
		missing = append(missing, "headline")
	}
	if strings.TrimSpace(content.PrimaryText) == "" {
		missing = append(missing, "primary_text")
	}
	if strings.TrimSpace(content.Description) == "" {
		missing = append(missing, "description")
	}
	if strings.TrimSpace(content.ImageDescription) == "" {
		missing = append(missing, "image_description")
	}

	if len(missing) > 0 {
		return fmt.Errorf("conteúdo gerado sem os campos obrigatórios: %s", strings.Join(missing, ", "))
	}

	return nil
}

// fitToLimit corta o texto no limite de caracteres do campo. O corte é
// por runas para não quebrar caracteres multibyte no meio
func fitToLimit(field, text string, limit int) string {
	text = strings.TrimSpace(text)

	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}

	logrus.WithFields(logrus.Fields{
		"field":  field,
		"length": len(runes),
		"limit":  limit,
	}).Warn("together: generated text exceeds field limit, truncating")

	return strings.TrimSpace(string(runes[:limit]))
}
