package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-launcher-api/infrastructure/repository"
	"github.com/vfg2006/campaign-launcher-api/internal/config"
	"github.com/vfg2006/campaign-launcher-api/internal/domain"
	"github.com/vfg2006/campaign-launcher-api/internal/usecases/account"
)

// CampaignStatusSyncConfig representa a configuração do agendador de status das campanhas
type CampaignStatusSyncConfig struct {
	CronSchedule        string
	LookbackDays        int
	RequestDelaySeconds int
	SyncEnabled         bool
}

// CampaignStatusSyncService gerencia o agendamento e execução da sincronização
// do status de veiculação das campanhas lançadas pela plataforma
type CampaignStatusSyncService struct {
	scheduler           *gocron.Scheduler
	config              CampaignStatusSyncConfig
	appConfig           *config.Config
	launchRepo          repository.CampaignLaunchRepository
	accountService      account.AccountService
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewCampaignStatusSyncService cria uma nova instância do serviço de sincronização de status
func NewCampaignStatusSyncService(
	launchRepo repository.CampaignLaunchRepository,
	accountService account.AccountService,
	appConfig *config.Config,
) *CampaignStatusSyncService {
	// Criar a configuração com base na config global
	syncConfig := CampaignStatusSyncConfig{
		CronSchedule:        appConfig.CampaignStatusSync.CronSchedule,
		LookbackDays:        appConfig.CampaignStatusSync.LookbackDays,
		RequestDelaySeconds: appConfig.CampaignStatusSync.RequestDelaySeconds,
		SyncEnabled:         appConfig.CampaignStatusSync.Enabled,
	}

	// Criar o agendador
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"lookback_days":         syncConfig.LookbackDays,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de status das campanhas carregada")

	return &CampaignStatusSyncService{
		scheduler:      scheduler,
		config:         syncConfig,
		appConfig:      appConfig,
		launchRepo:     launchRepo,
		accountService: accountService,
		syncRunning:    false,
	}
}

// Start inicia o agendador
func (s *CampaignStatusSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de status das campanhas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de status das campanhas")

	// Agendar a sincronização de status
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllCampaignStatuses()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de status das campanhas: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de status das campanhas")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllCampaignStatuses sincroniza o status de veiculação de todos os
// lançamentos recentes bem sucedidos
func (s *CampaignStatusSyncService) syncAllCampaignStatuses() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de status das campanhas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de status das campanhas lançadas")

	// Buscar os lançamentos candidatos à sincronização
	launches, err := s.launchRepo.ListSyncCandidates(s.config.LookbackDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lançamentos para sincronização de status")
		return
	}

	if len(launches) == 0 {
		logrus.Info("Nenhum lançamento recente encontrado para sincronização de status")
		return
	}

	logrus.WithFields(logrus.Fields{
		"launches":      len(launches),
		"lookback_days": s.config.LookbackDays,
	}).Info("Lançamentos encontrados para sincronização de status")

	updated := 0
	for _, launch := range launches {
		if s.syncLaunchStatus(launch) {
			updated++
		}

		// Aguardar antes da próxima requisição para evitar sobrecarga na API
		time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"launches": len(launches),
		"updated":  updated,
	}).Info("Sincronização de status das campanhas concluída")

	s.lastSyncCompletedAt = time.Now()
}

// syncLaunchStatus consulta a plataforma e atualiza o status de veiculação
// de um lançamento. Retorna true quando o registro foi atualizado
func (s *CampaignStatusSyncService) syncLaunchStatus(launch *domain.CampaignLaunch) bool {
	// Se o lançamento não tiver campaign_id, pular
	if launch.CampaignID == nil || *launch.CampaignID == "" {
		logrus.WithField("launch_id", launch.ID).Warn("Lançamento sem campaign_id. Pulando.")
		return false
	}

	campaignID := *launch.CampaignID

	details, err := s.accountService.GetCampaign(campaignID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"launch_id":   launch.ID,
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Error("Erro ao consultar status da campanha na plataforma")
		return false
	}

	// O effective_status considera pausas herdadas dos níveis superiores,
	// então prevalece sobre o status configurado
	status := details.EffectiveStatus
	if status == "" {
		status = details.Status
	}

	if status == "" {
		logrus.WithFields(logrus.Fields{
			"launch_id":   launch.ID,
			"campaign_id": campaignID,
		}).Warn("Plataforma não retornou status para a campanha")
		return false
	}

	// Evitar escrita quando o status não mudou desde a última sincronização
	if launch.PlatformStatus != nil && *launch.PlatformStatus == status {
		logrus.WithFields(logrus.Fields{
			"launch_id":       launch.ID,
			"campaign_id":     campaignID,
			"platform_status": status,
		}).Debug("Status da campanha inalterado desde a última sincronização")
		return false
	}

	err = s.launchRepo.UpdatePlatformStatus(launch.ID, status)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"launch_id":   launch.ID,
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Error("Erro ao salvar status da campanha no banco de dados")
		return false
	}

	logrus.WithFields(logrus.Fields{
		"launch_id":       launch.ID,
		"campaign_id":     campaignID,
		"platform_status": status,
	}).Info("Status da campanha sincronizado com sucesso")

	return true
}

// TriggerManualSync inicia manualmente uma sincronização de status das campanhas
func (s *CampaignStatusSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de status das campanhas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de status das campanhas")
	go s.syncAllCampaignStatuses()
}

// GetStatus retorna o status atual do agendador
func (s *CampaignStatusSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
