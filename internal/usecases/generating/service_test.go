package generating_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-launcher-api/infrastructure/integrator/together/mocks"
	"github.com/vfg2006/campaign-launcher-api/internal/config"
	"github.com/vfg2006/campaign-launcher-api/internal/domain"
	"github.com/vfg2006/campaign-launcher-api/internal/usecases/generating"
	"github.com/vfg2006/campaign-launcher-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func generatingBrief() *domain.CampaignBrief {
	return &domain.CampaignBrief{
		BusinessName:     "Ótica Central",
		ProductOrService: "Óculos de grau e de sol",
		KeySellingPoints: "Entrega em 24h; armações exclusivas",
		Objective:        domain.ObjectiveConsideration,
	}
}

func generatedContent() *domain.GeneratedContent {
	return &domain.GeneratedContent{
		Headlines:        []string{"Enxergue Melhor Hoje"},
		PrimaryTexts:     []string{"Armações exclusivas com entrega em 24h."},
		Descriptions:     []string{"Entrega em 24h"},
		ImageDescription: "Óculos sobre uma mesa de madeira",
	}
}

func TestGenerate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	togetherMock := mocks.NewMockTogetherIntegrator(ctrl)
	service := generating.NewService(&config.Config{}, togetherMock)

	brief := generatingBrief()
	want := generatedContent()

	togetherMock.EXPECT().GenerateAdContent(brief).Return(want, nil)

	content, err := service.Generate(brief)

	require.NoError(t, err)
	assert.Equal(t, want, content)
}

func TestGenerate_BriefIncomplete(t *testing.T) {
	tests := []struct {
		name    string
		brief   *domain.CampaignBrief
		details []string
	}{
		{
			name:    "brief não informado",
			brief:   nil,
			details: []string{"Brief não informado"},
		},
		{
			name: "sem business_name",
			brief: &domain.CampaignBrief{
				ProductOrService: "Óculos",
				KeySellingPoints: "Entrega em 24h",
			},
			details: []string{"business_name"},
		},
		{
			name: "sem product_or_service",
			brief: &domain.CampaignBrief{
				BusinessName:     "Ótica Central",
				KeySellingPoints: "Entrega em 24h",
			},
			details: []string{"product_or_service"},
		},
		{
			name: "key_selling_points apenas com espaços",
			brief: &domain.CampaignBrief{
				BusinessName:     "Ótica Central",
				ProductOrService: "Óculos",
				KeySellingPoints: "   ",
			},
			details: []string{"key_selling_points"},
		},
		{
			name:    "todos os campos ausentes",
			brief:   &domain.CampaignBrief{},
			details: []string{"business_name", "product_or_service", "key_selling_points"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// Nenhuma chamada ao provedor é esperada
			togetherMock := mocks.NewMockTogetherIntegrator(ctrl)
			service := generating.NewService(&config.Config{}, togetherMock)

			_, err := service.Generate(tt.brief)

			require.Error(t, err)
			assert.ErrorIs(t, err, generating.ErrBriefIncomplete)

			var genErr *generating.GeneratingError
			require.ErrorAs(t, err, &genErr)
			assert.Equal(t, apiErrors.ErrMissingRequiredData, genErr.Code)
			for _, detail := range tt.details {
				assert.Contains(t, genErr.Details, detail)
			}
		})
	}
}

func TestGenerate_TestMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Em modo de teste o provedor de IA não é consultado
	togetherMock := mocks.NewMockTogetherIntegrator(ctrl)

	cfg := &config.Config{Together: config.Together{TestMode: true}}
	service := generating.NewService(cfg, togetherMock)

	content, err := service.Generate(generatingBrief())

	require.NoError(t, err)
	require.Len(t, content.Headlines, 1)
	require.Len(t, content.PrimaryTexts, 1)
	require.Len(t, content.Descriptions, 1)

	assert.LessOrEqual(t, len([]rune(content.Headlines[0])), domain.MaxHeadlineLength)
	assert.LessOrEqual(t, len([]rune(content.PrimaryTexts[0])), domain.MaxPrimaryTextLength)
	assert.LessOrEqual(t, len([]rune(content.Descriptions[0])), domain.MaxDescriptionLength)
	assert.NotEmpty(t, content.ImageDescription)
}

func TestGenerate_ProviderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	togetherMock := mocks.NewMockTogetherIntegrator(ctrl)
	service := generating.NewService(&config.Config{}, togetherMock)

	togetherMock.EXPECT().GenerateAdContent(gomock.Any()).Return(nil, assert.AnError)

	_, err := service.Generate(generatingBrief())

	require.Error(t, err)
	assert.True(t, errors.Is(err, generating.ErrContentGeneration))

	var genErr *generating.GeneratingError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, apiErrors.ErrContentProvider, genErr.Code)
}
