package launching

import (
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/campaign-launcher-api/internal/config"
	"github.com/vfg2006/campaign-launcher-api/internal/domain"
	"github.com/vfg2006/campaign-launcher-api/pkg/log"
	"github.com/vfg2006/campaign-launcher-api/pkg/utils"
)

// LaunchParams é a entrada do pipeline: o brief do usuário e o conteúdo
// já gerado para os anúncios
type LaunchParams struct {
	UserID  int
	Brief   domain.CampaignBrief
	Content domain.GeneratedContent
}

// PipelineState é o estado de uma única execução do pipeline. Cada
// invocação cria o seu; nunca é compartilhado
type PipelineState struct {
	Stage      domain.Stage
	CampaignID string
	AdSetID    string
	CreativeID string
	AdID       string
}

type pipelineStep struct {
	resource domain.ResourceType
	target   domain.Stage
	build    func(state *PipelineState) (Payload, error)
	record   func(state *PipelineState, id string)
}

type Service struct {
	cfg        *config.Config
	client     PlatformClient
	repository LaunchRepository
}

func NewService(cfg *config.Config, client PlatformClient, repository LaunchRepository) Launcher {
	return &Service{
		cfg:        cfg,
		client:     client,
		repository: repository,
	}
}

// Launch valida o brief, executa o pipeline de criação e persiste o
// resultado. Falhas do pipeline não são erros da operação: viram um
// BuildResult de falha com os identificadores parciais. O retorno de
// erro fica reservado a problemas anteriores à primeira chamada remota
func (s *Service) Launch(params LaunchParams) (*domain.BuildResult, error) {
	brief, err := s.normalizeBrief(params.Brief)
	if err != nil {
		return nil, err
	}

	content := params.Content
	if content.ImageReference == "" {
		content.ImageReference = s.cfg.Launch.DefaultImageURL
	}

	spec, err := domain.NewCampaignSpec(brief, content)
	if err != nil {
		return nil, err
	}

	if brief.AdAccountID == "" {
		return nil, domain.NewValidationError("nenhuma conta de anúncios informada no brief ou configurada")
	}

	if brief.PageID == "" {
		return nil, domain.NewValidationError("nenhuma página informada no brief ou configurada")
	}

	launchID, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar o identificador do lançamento: %w", err)
	}

	logger := log.L.WithFields(log.Fields{
		"launch_id":     launchID,
		"campaign_name": brief.CampaignName,
	})

	logger.Info("launching: starting campaign build pipeline")

	result := s.runPipeline(logger, spec)
	result.LaunchID = launchID

	if result.Success {
		logger.WithFields(log.Fields{"stage": result.Stage}).Info("launching: campaign build pipeline completed")
	} else {
		logger.WithFields(log.Fields{
			"stage":       result.Stage,
			"error":       result.Message,
			"partial_ids": result.PartialIDs(),
		}).Error("launching: campaign build pipeline failed")
	}

	s.saveLaunch(logger, launchID, params.UserID, spec, result)

	return result, nil
}

func (s *Service) GetLaunch(launchID string) (*domain.CampaignLaunch, error) {
	return s.repository.GetLaunchByID(launchID)
}

func (s *Service) ListLaunches(filter domain.ListLaunchesFilter) ([]*domain.CampaignLaunch, error) {
	return s.repository.ListLaunches(filter)
}

// runPipeline percorre os quatro estágios em ordem estrita. Um estágio
// concluído nunca é reexecutado; as retentativas de uma mesma chamada
// vivem dentro do cliente da plataforma
func (s *Service) runPipeline(logger log.Logger, spec *domain.CampaignSpec) *domain.BuildResult {
	status := s.cfg.Launch.DefaultStatus
	state := &PipelineState{Stage: domain.StagePending}

	steps := []pipelineStep{
		{
			resource: domain.ResourceCampaign,
			target:   domain.StageCampaignCreated,
			build: func(*PipelineState) (Payload, error) {
				return BuildCampaignPayload(spec, status)
			},
			record: func(st *PipelineState, id string) { st.CampaignID = id },
		},
		{
			resource: domain.ResourceAdSet,
			target:   domain.StageAdSetCreated,
			build: func(st *PipelineState) (Payload, error) {
				return BuildAdSetPayload(spec, st.CampaignID, status)
			},
			record: func(st *PipelineState, id string) { st.AdSetID = id },
		},
		{
			resource: domain.ResourceCreative,
			target:   domain.StageCreativeCreated,
			build: func(*PipelineState) (Payload, error) {
				return BuildCreativePayload(spec, spec.Brief.PageID)
			},
			record: func(st *PipelineState, id string) { st.CreativeID = id },
		},
		{
			resource: domain.ResourceAd,
			target:   domain.StageAdCreated,
			build: func(st *PipelineState) (Payload, error) {
				return BuildAdPayload(spec, st.AdSetID, st.CreativeID, status), nil
			},
			record: func(st *PipelineState, id string) { st.AdID = id },
		},
	}

	for _, step := range steps {
		payload, err := step.build(state)
		if err != nil {
			logger.WithFields(log.Fields{
				"stage":         step.target.Attempt(),
				"resource_type": string(step.resource),
				"error":         err.Error(),
			}).Error("launching: failed to build resource payload")

			return s.failedResult(state, step.target, err)
		}

		resourceID, err := s.client.CreateResource(spec.Brief.AdAccountID, step.resource, payload)
		if err != nil {
			logger.WithFields(log.Fields{
				"stage":         step.target.Attempt(),
				"resource_type": string(step.resource),
				"error":         err.Error(),
			}).Error("launching: resource creation failed")

			return s.failedResult(state, step.target, err)
		}

		step.record(state, resourceID)
		state.Stage = step.target

		logger.WithFields(log.Fields{
			"stage":         string(step.target),
			"resource_type": string(step.resource),
		}).Info("launching: pipeline stage completed")
	}

	return &domain.BuildResult{
		Success:    true,
		Stage:      string(domain.StageAdCreated),
		CampaignID: state.CampaignID,
		AdSetID:    state.AdSetID,
		CreativeID: state.CreativeID,
		AdID:       state.AdID,
	}
}

// failedResult monta o resultado de falha sem desfazer nada: recursos
// parciais permanecem na plataforma e são reportados ao chamador
func (s *Service) failedResult(state *PipelineState, target domain.Stage, err error) *domain.BuildResult {
	state.Stage = domain.StageFailed

	return &domain.BuildResult{
		Success:    false,
		Stage:      target.Attempt(),
		CampaignID: state.CampaignID,
		AdSetID:    state.AdSetID,
		CreativeID: state.CreativeID,
		AdID:       state.AdID,
		ErrorKind:  domain.KindOf(err),
		Message:    err.Error(),
	}
}

// normalizeBrief aplica os padrões de configuração aos campos que o
// usuário deixou em branco. Depois daqui o spec é imutável: os builders
// não aplicam padrão nenhum
func (s *Service) normalizeBrief(brief domain.CampaignBrief) (domain.CampaignBrief, error) {
	launchCfg := s.cfg.Launch

	if strings.TrimSpace(brief.CampaignName) == "" {
		brief.CampaignName = fmt.Sprintf("%s Campaign %s", brief.BusinessName, time.Now().Format("2006-01-02"))
	}

	if brief.Objective == "" {
		brief.Objective = domain.ObjectiveConsideration
	} else {
		brief.Objective = domain.CampaignObjective(strings.ToUpper(string(brief.Objective)))
	}

	if brief.CallToAction == "" {
		brief.CallToAction = "LEARN_MORE"
	} else {
		brief.CallToAction = strings.ToUpper(brief.CallToAction)
		if !domain.IsAllowedCallToAction(brief.CallToAction) {
			log.L.WithField("call_to_action", brief.CallToAction).Warn("launching: call to action not supported, falling back to LEARN_MORE")
			brief.CallToAction = "LEARN_MORE"
		}
	}

	if brief.WebsiteURL == "" {
		brief.WebsiteURL = launchCfg.LinkURL
	}

	if brief.Budget.AmountCents <= 0 {
		brief.Budget.AmountCents = launchCfg.DefaultDailyBudgetCents
	}

	if brief.Budget.Currency == "" {
		brief.Budget.Currency = launchCfg.DefaultCurrency
	}

	if brief.Budget.Type == "" {
		brief.Budget.Type = domain.BudgetTypeDaily
	}

	now := time.Now()
	if brief.Schedule.StartTime.IsZero() {
		brief.Schedule.StartTime = now
	}

	if brief.Schedule.EndTime.IsZero() {
		brief.Schedule.EndTime = brief.Schedule.StartTime.AddDate(0, 0, launchCfg.DefaultScheduleDays)
	}

	if brief.Audience.AgeMin <= 0 {
		brief.Audience.AgeMin = launchCfg.DefaultAgeMin
	}

	if brief.Audience.AgeMax <= 0 {
		brief.Audience.AgeMax = launchCfg.DefaultAgeMax
	}

	if brief.Audience.Gender == "" {
		brief.Audience.Gender = domain.GenderAll
	} else {
		brief.Audience.Gender = domain.Gender(strings.ToUpper(string(brief.Audience.Gender)))
	}

	countries, err := domain.NormalizeCountries(brief.Audience.Countries)
	if err != nil {
		return brief, err
	}

	if len(countries) == 0 {
		countries = []string{"US"}
	}
	brief.Audience.Countries = countries

	if brief.AdAccountID == "" {
		brief.AdAccountID = s.cfg.Meta.AdAccountID
	}

	if brief.PageID == "" {
		brief.PageID = s.cfg.Meta.PageID
	}

	return brief, nil
}

func (s *Service) saveLaunch(logger log.Logger, launchID string, userID int, spec *domain.CampaignSpec, result *domain.BuildResult) {
	status := domain.LaunchStatusSucceeded
	if !result.Success {
		status = domain.LaunchStatusFailed
	}

	launch := &domain.CampaignLaunch{
		ID:               launchID,
		UserID:           userID,
		BusinessName:     spec.Brief.BusinessName,
		CampaignName:     spec.Brief.CampaignName,
		Objective:        spec.Brief.Objective,
		Status:           status,
		Stage:            result.Stage,
		CampaignID:       optionalID(result.CampaignID),
		AdSetID:          optionalID(result.AdSetID),
		CreativeID:       optionalID(result.CreativeID),
		AdID:             optionalID(result.AdID),
		DailyBudgetCents: spec.Brief.Budget.AmountCents,
		Currency:         spec.Brief.Budget.Currency,
		Brief:            spec.Brief,
		Content:          spec.Content,
	}

	if !result.Success {
		kind := string(result.ErrorKind)
		message := result.Message
		launch.ErrorKind = &kind
		launch.ErrorMessage = &message
	}

	if _, err := s.repository.SaveLaunch(launch); err != nil {
		// O resultado do pipeline prevalece sobre a falha de auditoria
		logger.WithError(err).Error("launching: failed to persist launch record")
	}
}

func optionalID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}
