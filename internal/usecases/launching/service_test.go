package launching_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-launcher-api/internal/config"
	"github.com/vfg2006/campaign-launcher-api/internal/domain"
	"github.com/vfg2006/campaign-launcher-api/internal/usecases/launching"
	"github.com/vfg2006/campaign-launcher-api/internal/usecases/launching/mocks"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Meta: config.Meta{
			AdAccountID: "1234567890",
			PageID:      "9876543210",
		},
		Launch: config.Launch{
			DefaultDailyBudgetCents: 8500,
			DefaultCurrency:         "USD",
			DefaultScheduleDays:     30,
			DefaultAgeMin:           25,
			DefaultAgeMax:           45,
			DefaultStatus:           "PAUSED",
			DefaultImageURL:         "https://placehold.co/600x400",
			LinkURL:                 "https://example.com",
		},
	}
}

func testBrief() domain.CampaignBrief {
	return domain.CampaignBrief{
		BusinessName:     "Ótica Central",
		ProductOrService: "Óculos de grau e de sol",
		KeySellingPoints: "Entrega rápida, armações exclusivas",
		CampaignName:     "Ótica Central - Inverno",
		Objective:        domain.ObjectiveConsideration,
		Budget: domain.Budget{
			AmountCents: 12000,
			Currency:    "BRL",
			Type:        domain.BudgetTypeDaily,
		},
		Audience: domain.Audience{
			AgeMin:    20,
			AgeMax:    50,
			Gender:    domain.GenderAll,
			Countries: []string{"BR"},
		},
	}
}

func testContent() domain.GeneratedContent {
	return domain.GeneratedContent{
		Headlines:        []string{"Enxergue melhor hoje"},
		PrimaryTexts:     []string{"Armações exclusivas com entrega rápida para você"},
		Descriptions:     []string{"Visite nossa loja"},
		ImageDescription: "Óculos sobre uma mesa de madeira",
	}
}

func TestService_Launch_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockPlatformClient(ctrl)
	mockRepo := mocks.NewMockLaunchRepository(ctrl)

	service := launching.NewService(testConfig(), mockClient, mockRepo)

	gomock.InOrder(
		mockClient.EXPECT().
			CreateResource("1234567890", domain.ResourceCampaign, gomock.Any()).
			Return("120210000001", nil),
		mockClient.EXPECT().
			CreateResource("1234567890", domain.ResourceAdSet, gomock.Any()).
			Return("120210000002", nil),
		mockClient.EXPECT().
			CreateResource("1234567890", domain.ResourceCreative, gomock.Any()).
			Return("120210000003", nil),
		mockClient.EXPECT().
			CreateResource("1234567890", domain.ResourceAd, gomock.Any()).
			Return("120210000004", nil),
	)

	var saved *domain.CampaignLaunch
	mockRepo.EXPECT().
		SaveLaunch(gomock.Any()).
		DoAndReturn(func(launch *domain.CampaignLaunch) (*domain.CampaignLaunch, error) {
			saved = launch
			return launch, nil
		})

	result, err := service.Launch(launching.LaunchParams{
		UserID:  42,
		Brief:   testBrief(),
		Content: testContent(),
	})

	require.NoError(t, err)
	require.NotNil(t, result)

	assert.True(t, result.Success)
	assert.Equal(t, string(domain.StageAdCreated), result.Stage)
	assert.Equal(t, "120210000001", result.CampaignID)
	assert.Equal(t, "120210000002", result.AdSetID)
	assert.Equal(t, "120210000003", result.CreativeID)
	assert.Equal(t, "120210000004", result.AdID)
	assert.NotEmpty(t, result.LaunchID)
	assert.Empty(t, result.ErrorKind)

	// O registro persistido espelha o resultado
	require.NotNil(t, saved)
	assert.Equal(t, result.LaunchID, saved.ID)
	assert.Equal(t, 42, saved.UserID)
	assert.Equal(t, domain.LaunchStatusSucceeded, saved.Status)
	assert.Equal(t, string(domain.StageAdCreated), saved.Stage)
	require.NotNil(t, saved.CampaignID)
	assert.Equal(t, "120210000001", *saved.CampaignID)
	require.NotNil(t, saved.AdID)
	assert.Equal(t, "120210000004", *saved.AdID)
	assert.Nil(t, saved.ErrorKind)
}

func TestService_Launch_PipelineFailures(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(client *mocks.MockPlatformClient)
		validate func(t *testing.T, result *domain.BuildResult)
	}{
		{
			name: "Falha de validação no ad set interrompe o pipeline com a campanha criada",
			setup: func(client *mocks.MockPlatformClient) {
				gomock.InOrder(
					client.EXPECT().
						CreateResource("1234567890", domain.ResourceCampaign, gomock.Any()).
						Return("120210000001", nil),
					client.EXPECT().
						CreateResource("1234567890", domain.ResourceAdSet, gomock.Any()).
						Return("", domain.NewPlatformError(domain.KindValidation, "Invalid parameter", 100, 0)),
				)
			},
			validate: func(t *testing.T, result *domain.BuildResult) {
				assert.False(t, result.Success)
				assert.Equal(t, domain.StageAdSetCreated.Attempt(), result.Stage)
				assert.Equal(t, domain.KindValidation, result.ErrorKind)
				assert.Equal(t, "120210000001", result.CampaignID)
				assert.Empty(t, result.AdSetID)
				assert.Empty(t, result.CreativeID)
				assert.Empty(t, result.AdID)
			},
		},
		{
			name: "Rate limit persistente no creative falha sem tentar o anúncio",
			setup: func(client *mocks.MockPlatformClient) {
				gomock.InOrder(
					client.EXPECT().
						CreateResource("1234567890", domain.ResourceCampaign, gomock.Any()).
						Return("120210000001", nil),
					client.EXPECT().
						CreateResource("1234567890", domain.ResourceAdSet, gomock.Any()).
						Return("120210000002", nil),
					client.EXPECT().
						CreateResource("1234567890", domain.ResourceCreative, gomock.Any()).
						Return("", domain.NewRateLimitError("User request limit reached")),
				)
			},
			validate: func(t *testing.T, result *domain.BuildResult) {
				assert.False(t, result.Success)
				assert.Equal(t, domain.StageCreativeCreated.Attempt(), result.Stage)
				assert.Equal(t, domain.KindRateLimit, result.ErrorKind)
				assert.Equal(t, "120210000001", result.CampaignID)
				assert.Equal(t, "120210000002", result.AdSetID)
				assert.Empty(t, result.CreativeID)
				assert.Empty(t, result.AdID)
			},
		},
		{
			name: "Falha de autenticação na campanha falha sem nenhum recurso criado",
			setup: func(client *mocks.MockPlatformClient) {
				client.EXPECT().
					CreateResource("1234567890", domain.ResourceCampaign, gomock.Any()).
					Return("", domain.NewPlatformError(domain.KindAuth, "Error validating access token", 190, 460))
			},
			validate: func(t *testing.T, result *domain.BuildResult) {
				assert.False(t, result.Success)
				assert.Equal(t, domain.StageCampaignCreated.Attempt(), result.Stage)
				assert.Equal(t, domain.KindAuth, result.ErrorKind)
				assert.Empty(t, result.PartialIDs())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := mocks.NewMockPlatformClient(ctrl)
			mockRepo := mocks.NewMockLaunchRepository(ctrl)

			service := launching.NewService(testConfig(), mockClient, mockRepo)

			tt.setup(mockClient)

			var saved *domain.CampaignLaunch
			mockRepo.EXPECT().
				SaveLaunch(gomock.Any()).
				DoAndReturn(func(launch *domain.CampaignLaunch) (*domain.CampaignLaunch, error) {
					saved = launch
					return launch, nil
				})

			result, err := service.Launch(launching.LaunchParams{
				UserID:  42,
				Brief:   testBrief(),
				Content: testContent(),
			})

			require.NoError(t, err)
			require.NotNil(t, result)
			tt.validate(t, result)

			// A falha do pipeline também é registrada para auditoria
			require.NotNil(t, saved)
			assert.Equal(t, domain.LaunchStatusFailed, saved.Status)
			require.NotNil(t, saved.ErrorKind)
			assert.Equal(t, string(result.ErrorKind), *saved.ErrorKind)
			require.NotNil(t, saved.ErrorMessage)
			assert.NotEmpty(t, *saved.ErrorMessage)
		})
	}
}

func TestService_Launch_UnsupportedImageReference(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockPlatformClient(ctrl)
	mockRepo := mocks.NewMockLaunchRepository(ctrl)

	service := launching.NewService(testConfig(), mockClient, mockRepo)

	// Campanha e ad set são criados; o creative nem chega à plataforma
	// porque a imagem referenciada por hash é recusada na montagem
	gomock.InOrder(
		mockClient.EXPECT().
			CreateResource("1234567890", domain.ResourceCampaign, gomock.Any()).
			Return("120210000001", nil),
		mockClient.EXPECT().
			CreateResource("1234567890", domain.ResourceAdSet, gomock.Any()).
			Return("120210000002", nil),
	)
	mockRepo.EXPECT().SaveLaunch(gomock.Any()).Return(nil, nil)

	content := testContent()
	content.ImageReference = "f4c1a2b3d4e5f6a7b8c9"

	result, err := service.Launch(launching.LaunchParams{
		UserID:  42,
		Brief:   testBrief(),
		Content: content,
	})

	require.NoError(t, err)
	require.NotNil(t, result)

	assert.False(t, result.Success)
	assert.Equal(t, domain.StageCreativeCreated.Attempt(), result.Stage)
	assert.Equal(t, domain.KindUnsupportedFeature, result.ErrorKind)
	assert.Equal(t, "120210000001", result.CampaignID)
	assert.Equal(t, "120210000002", result.AdSetID)
	assert.Empty(t, result.CreativeID)
}

func TestService_Launch_BriefRejectedBeforePipeline(t *testing.T) {
	start := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		mutate func(brief *domain.CampaignBrief)
	}{
		{
			name: "Agendamento com término anterior ao início",
			mutate: func(brief *domain.CampaignBrief) {
				brief.Schedule.StartTime = start
				brief.Schedule.EndTime = start.AddDate(0, 0, -7)
			},
		},
		{
			name: "País não reconhecido na segmentação",
			mutate: func(brief *domain.CampaignBrief) {
				brief.Audience.Countries = []string{"Atlantis"}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// Nenhuma expectativa: o brief rejeitado não pode gerar
			// chamadas remotas nem registro de lançamento
			mockClient := mocks.NewMockPlatformClient(ctrl)
			mockRepo := mocks.NewMockLaunchRepository(ctrl)

			service := launching.NewService(testConfig(), mockClient, mockRepo)

			brief := testBrief()
			tt.mutate(&brief)

			result, err := service.Launch(launching.LaunchParams{
				UserID:  42,
				Brief:   brief,
				Content: testContent(),
			})

			require.Error(t, err)
			assert.Nil(t, result)
			assert.Equal(t, domain.KindValidation, domain.KindOf(err))
		})
	}
}

func TestService_Launch_MissingAccountConfiguration(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockPlatformClient(ctrl)
	mockRepo := mocks.NewMockLaunchRepository(ctrl)

	cfg := testConfig()
	cfg.Meta.AdAccountID = ""
	cfg.Meta.PageID = ""

	service := launching.NewService(cfg, mockClient, mockRepo)

	result, err := service.Launch(launching.LaunchParams{
		UserID:  42,
		Brief:   testBrief(),
		Content: testContent(),
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestService_Launch_AppliesConfiguredDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockPlatformClient(ctrl)
	mockRepo := mocks.NewMockLaunchRepository(ctrl)

	service := launching.NewService(testConfig(), mockClient, mockRepo)

	var campaignPayload, adSetPayload, creativePayload map[string]any
	gomock.InOrder(
		mockClient.EXPECT().
			CreateResource("1234567890", domain.ResourceCampaign, gomock.Any()).
			DoAndReturn(func(_ string, _ domain.ResourceType, payload map[string]any) (string, error) {
				campaignPayload = payload
				return "120210000001", nil
			}),
		mockClient.EXPECT().
			CreateResource("1234567890", domain.ResourceAdSet, gomock.Any()).
			DoAndReturn(func(_ string, _ domain.ResourceType, payload map[string]any) (string, error) {
				adSetPayload = payload
				return "120210000002", nil
			}),
		mockClient.EXPECT().
			CreateResource("1234567890", domain.ResourceCreative, gomock.Any()).
			DoAndReturn(func(_ string, _ domain.ResourceType, payload map[string]any) (string, error) {
				creativePayload = payload
				return "120210000003", nil
			}),
		mockClient.EXPECT().
			CreateResource("1234567890", domain.ResourceAd, gomock.Any()).
			Return("120210000004", nil),
	)

	var saved *domain.CampaignLaunch
	mockRepo.EXPECT().
		SaveLaunch(gomock.Any()).
		DoAndReturn(func(launch *domain.CampaignLaunch) (*domain.CampaignLaunch, error) {
			saved = launch
			return launch, nil
		})

	// Brief mínimo: tudo além da identidade do negócio fica por conta
	// dos padrões de configuração
	brief := domain.CampaignBrief{
		BusinessName:     "Ótica Central",
		ProductOrService: "Óculos de grau",
		KeySellingPoints: "Atendimento personalizado",
	}

	result, err := service.Launch(launching.LaunchParams{
		UserID:  42,
		Brief:   brief,
		Content: testContent(),
	})

	require.NoError(t, err)
	require.True(t, result.Success)
	require.NotNil(t, saved)

	normalized := saved.Brief
	assert.Contains(t, normalized.CampaignName, "Ótica Central Campaign")
	assert.Equal(t, domain.ObjectiveConsideration, normalized.Objective)
	assert.Equal(t, "LEARN_MORE", normalized.CallToAction)
	assert.Equal(t, "https://example.com", normalized.WebsiteURL)
	assert.Equal(t, int64(8500), normalized.Budget.AmountCents)
	assert.Equal(t, "USD", normalized.Budget.Currency)
	assert.Equal(t, domain.BudgetTypeDaily, normalized.Budget.Type)
	assert.Equal(t, 25, normalized.Audience.AgeMin)
	assert.Equal(t, 45, normalized.Audience.AgeMax)
	assert.Equal(t, domain.GenderAll, normalized.Audience.Gender)
	assert.Equal(t, []string{"US"}, normalized.Audience.Countries)
	assert.Equal(t, "1234567890", normalized.AdAccountID)
	assert.Equal(t, "9876543210", normalized.PageID)

	expectedEnd := normalized.Schedule.StartTime.AddDate(0, 0, 30)
	assert.Equal(t, expectedEnd, normalized.Schedule.EndTime)

	// O status padrão e a imagem padrão chegam aos payloads
	require.NotNil(t, campaignPayload)
	assert.Equal(t, "PAUSED", campaignPayload["status"])
	assert.Equal(t, "OUTCOME_TRAFFIC", campaignPayload["objective"])

	require.NotNil(t, adSetPayload)
	assert.Equal(t, int64(8500), adSetPayload["daily_budget"])

	require.NotNil(t, creativePayload)
	storySpec, ok := creativePayload["object_story_spec"].(launching.Payload)
	require.True(t, ok)
	assert.Equal(t, "9876543210", storySpec["page_id"])
}

func TestService_Launch_PersistenceFailureDoesNotFailLaunch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockPlatformClient(ctrl)
	mockRepo := mocks.NewMockLaunchRepository(ctrl)

	service := launching.NewService(testConfig(), mockClient, mockRepo)

	mockClient.EXPECT().
		CreateResource("1234567890", gomock.Any(), gomock.Any()).
		Return("120210000009", nil).
		Times(4)

	mockRepo.EXPECT().
		SaveLaunch(gomock.Any()).
		Return(nil, assert.AnError)

	result, err := service.Launch(launching.LaunchParams{
		UserID:  42,
		Brief:   testBrief(),
		Content: testContent(),
	})

	// A auditoria falhou, mas os recursos existem na plataforma: o
	// resultado do pipeline prevalece
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.Success)
}
