package generating

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-launcher-api/infrastructure/integrator/together"
	"github.com/vfg2006/campaign-launcher-api/internal/config"
	"github.com/vfg2006/campaign-launcher-api/internal/domain"
	"github.com/vfg2006/campaign-launcher-api/pkg/apiErrors"
)

// ContentGenerator gera o conteúdo dos anúncios a partir do brief
type ContentGenerator interface {
	Generate(brief *domain.CampaignBrief) (*domain.GeneratedContent, error)
}

type Service struct {
	cfg             *config.Config
	togetherService together.TogetherIntegrator
}

func NewService(cfg *config.Config, togetherService together.TogetherIntegrator) ContentGenerator {
	return &Service{
		cfg:             cfg,
		togetherService: togetherService,
	}
}

// Generate valida o brief e delega a geração ao provedor de IA. Em modo
// de teste devolve conteúdo fixo, sem consumir a API
func (s *Service) Generate(brief *domain.CampaignBrief) (*domain.GeneratedContent, error) {
	if brief == nil {
		return nil, NewGeneratingError(ErrBriefIncomplete, apiErrors.ErrMissingRequiredData, "Brief não informado")
	}

	missing := make([]string, 0, 3)
	if strings.TrimSpace(brief.BusinessName) == "" {
		missing = append(missing, "business_name")
	}
	if strings.TrimSpace(brief.ProductOrService) == "" {
		missing = append(missing, "product_or_service")
	}
	if strings.TrimSpace(brief.KeySellingPoints) == "" {
		missing = append(missing, "key_selling_points")
	}

	if len(missing) > 0 {
		return nil, NewGeneratingError(
			ErrBriefIncomplete,
			apiErrors.ErrMissingRequiredData,
			"Campos obrigatórios ausentes no brief: "+strings.Join(missing, ", "),
		)
	}

	if s.cfg.Together.TestMode {
		logrus.Warn("generating: test mode enabled, returning canned ad content")
		return testModeContent(), nil
	}

	content, err := s.togetherService.GenerateAdContent(brief)
	if err != nil {
		logrus.Error("Error generating ad content with together:", err)
		return nil, NewGeneratingError(ErrContentGeneration, apiErrors.ErrContentProvider, "Falha ao gerar conteúdo com o provedor de IA")
	}

	return content, nil
}

// testModeContent devolve um conteúdo genérico dentro dos limites de
// caracteres dos campos do anúncio
func testModeContent() *domain.GeneratedContent {
	return &domain.GeneratedContent{
		Headlines:        []string{"Discover What Makes Us Different"},
		PrimaryTexts:     []string{"Quality you can trust. Join thousands of happy customers and see the difference for yourself today."},
		Descriptions:     []string{"Trusted by thousands."},
		ImageDescription: "A bright lifestyle photo of happy customers using the product in a natural setting.",
	}
}
