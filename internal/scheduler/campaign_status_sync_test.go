package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-launcher-api/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-launcher-api/internal/domain"
	accountmocks "github.com/vfg2006/campaign-launcher-api/internal/usecases/account/mocks"
	"go.uber.org/mock/gomock"
)

func TestCampaignStatusSyncService_syncLaunchStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Mocks
	mockLaunchRepo := mocks.NewMockCampaignLaunchRepository(ctrl)
	mockAccountService := accountmocks.NewMockAccountService(ctrl)

	// Service
	service := &CampaignStatusSyncService{
		config: CampaignStatusSyncConfig{
			LookbackDays:        30,
			RequestDelaySeconds: 0,
		},
		launchRepo:     mockLaunchRepo,
		accountService: mockAccountService,
	}

	tests := []struct {
		name    string
		launch  *domain.CampaignLaunch
		setup   func()
		updated bool
	}{
		{
			name: "Deve atualizar com o effective_status quando presente",
			launch: &domain.CampaignLaunch{
				ID:         "lnc001",
				CampaignID: stringPtr("238512"),
			},
			setup: func() {
				mockAccountService.EXPECT().
					GetCampaign("238512").
					Return(&domain.CampaignDetailsResponse{
						ID:              "238512",
						Status:          "ACTIVE",
						EffectiveStatus: "PAUSED",
					}, nil)

				mockLaunchRepo.EXPECT().
					UpdatePlatformStatus("lnc001", "PAUSED").
					Return(nil)
			},
			updated: true,
		},
		{
			name: "Deve usar o status configurado quando effective_status vem vazio",
			launch: &domain.CampaignLaunch{
				ID:         "lnc002",
				CampaignID: stringPtr("238513"),
			},
			setup: func() {
				mockAccountService.EXPECT().
					GetCampaign("238513").
					Return(&domain.CampaignDetailsResponse{
						ID:     "238513",
						Status: "ACTIVE",
					}, nil)

				mockLaunchRepo.EXPECT().
					UpdatePlatformStatus("lnc002", "ACTIVE").
					Return(nil)
			},
			updated: true,
		},
		{
			name: "Não deve atualizar quando o status não mudou",
			launch: &domain.CampaignLaunch{
				ID:             "lnc003",
				CampaignID:     stringPtr("238514"),
				PlatformStatus: stringPtr("ACTIVE"),
			},
			setup: func() {
				mockAccountService.EXPECT().
					GetCampaign("238514").
					Return(&domain.CampaignDetailsResponse{
						ID:              "238514",
						Status:          "ACTIVE",
						EffectiveStatus: "ACTIVE",
					}, nil)
			},
			updated: false,
		},
		{
			name: "Deve pular lançamento sem campaign_id",
			launch: &domain.CampaignLaunch{
				ID: "lnc004",
			},
			setup:   func() {},
			updated: false,
		},
		{
			name: "Não deve atualizar quando a consulta à plataforma falha",
			launch: &domain.CampaignLaunch{
				ID:         "lnc005",
				CampaignID: stringPtr("238515"),
			},
			setup: func() {
				mockAccountService.EXPECT().
					GetCampaign("238515").
					Return(nil, assert.AnError)
			},
			updated: false,
		},
		{
			name: "Não deve atualizar quando a plataforma não retorna status",
			launch: &domain.CampaignLaunch{
				ID:         "lnc006",
				CampaignID: stringPtr("238516"),
			},
			setup: func() {
				mockAccountService.EXPECT().
					GetCampaign("238516").
					Return(&domain.CampaignDetailsResponse{ID: "238516"}, nil)
			},
			updated: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			updated := service.syncLaunchStatus(tt.launch)
			assert.Equal(t, tt.updated, updated)
		})
	}
}

func TestCampaignStatusSyncService_syncAllCampaignStatuses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLaunchRepo := mocks.NewMockCampaignLaunchRepository(ctrl)
	mockAccountService := accountmocks.NewMockAccountService(ctrl)

	service := &CampaignStatusSyncService{
		config: CampaignStatusSyncConfig{
			LookbackDays:        30,
			RequestDelaySeconds: 0,
		},
		launchRepo:     mockLaunchRepo,
		accountService: mockAccountService,
	}

	tests := []struct {
		name  string
		setup func()
	}{
		{
			name: "Deve sincronizar todos os lançamentos candidatos",
			setup: func() {
				mockLaunchRepo.EXPECT().
					ListSyncCandidates(30).
					Return([]*domain.CampaignLaunch{
						{ID: "lnc001", CampaignID: stringPtr("238512")},
						{ID: "lnc002", CampaignID: stringPtr("238513")},
					}, nil)

				mockAccountService.EXPECT().
					GetCampaign("238512").
					Return(&domain.CampaignDetailsResponse{ID: "238512", EffectiveStatus: "ACTIVE"}, nil)
				mockLaunchRepo.EXPECT().
					UpdatePlatformStatus("lnc001", "ACTIVE").
					Return(nil)

				mockAccountService.EXPECT().
					GetCampaign("238513").
					Return(&domain.CampaignDetailsResponse{ID: "238513", EffectiveStatus: "PAUSED"}, nil)
				mockLaunchRepo.EXPECT().
					UpdatePlatformStatus("lnc002", "PAUSED").
					Return(nil)
			},
		},
		{
			name: "Deve encerrar sem consultas quando não há candidatos",
			setup: func() {
				mockLaunchRepo.EXPECT().
					ListSyncCandidates(30).
					Return([]*domain.CampaignLaunch{}, nil)
			},
		},
		{
			name: "Deve encerrar quando a busca de candidatos falha",
			setup: func() {
				mockLaunchRepo.EXPECT().
					ListSyncCandidates(30).
					Return(nil, assert.AnError)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			service.syncAllCampaignStatuses()

			// A execução libera o marcador de sincronização ao terminar
			service.syncMutex.Lock()
			assert.False(t, service.syncRunning)
			service.syncMutex.Unlock()
		})
	}
}

func stringPtr(s string) *string {
	return &s
}
