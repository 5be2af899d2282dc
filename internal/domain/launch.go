package domain

import "time"

// ResourceType identifica cada nível da hierarquia de recursos que a
// plataforma exige para veicular um anúncio
type ResourceType string

const (
	ResourceCampaign ResourceType = "campaign"
	ResourceAdSet    ResourceType = "adset"
	ResourceCreative ResourceType = "creative"
	ResourceAd       ResourceType = "ad"
)

// Stage é o estado do pipeline de lançamento. A progressão é estritamente
// sequencial: cada recurso depende do identificador do anterior
type Stage string

const (
	StagePending         Stage = "Pending"
	StageCampaignCreated Stage = "CampaignCreated"
	StageAdSetCreated    Stage = "AdSetCreated"
	StageCreativeCreated Stage = "CreativeCreated"
	StageAdCreated       Stage = "AdCreated"
	StageFailed          Stage = "Failed"
)

// Attempt nomeia a tentativa de alcançar um estágio, usada quando o
// pipeline falha antes de completá-lo
func (s Stage) Attempt() string {
	return string(s) + "-attempt"
}

// BuildResult é o valor terminal devolvido ao chamador: sucesso com os
// quatro identificadores, ou falha parcial com o que foi criado até o
// momento. Recursos já criados permanecem vivos na plataforma e são
// sempre reportados, nunca removidos automaticamente
type BuildResult struct {
	Success    bool      `json:"success"`
	LaunchID   string    `json:"launch_id,omitempty"`
	Stage      string    `json:"stage"`
	CampaignID string    `json:"campaign_id,omitempty"`
	AdSetID    string    `json:"ad_set_id,omitempty"`
	CreativeID string    `json:"creative_id,omitempty"`
	AdID       string    `json:"ad_id,omitempty"`
	ErrorKind  ErrorKind `json:"error_kind,omitempty"`
	Message    string    `json:"error_message,omitempty"`
}

// PartialIDs retorna apenas os identificadores obtidos, para logs e
// para orientar a remediação manual de estado parcial
func (r *BuildResult) PartialIDs() map[string]string {
	ids := make(map[string]string)

	if r.CampaignID != "" {
		ids["campaign_id"] = r.CampaignID
	}
	if r.AdSetID != "" {
		ids["ad_set_id"] = r.AdSetID
	}
	if r.CreativeID != "" {
		ids["creative_id"] = r.CreativeID
	}
	if r.AdID != "" {
		ids["ad_id"] = r.AdID
	}

	return ids
}

type LaunchStatus string

const (
	LaunchStatusSucceeded LaunchStatus = "SUCCEEDED"
	LaunchStatusFailed    LaunchStatus = "FAILED"
)

// CampaignLaunch é o registro persistido de uma execução do pipeline
type CampaignLaunch struct {
	ID               string            `json:"id"`
	UserID           int               `json:"user_id"`
	BusinessName     string            `json:"business_name"`
	CampaignName     string            `json:"campaign_name"`
	Objective        CampaignObjective `json:"objective"`
	Status           LaunchStatus      `json:"status"`
	Stage            string            `json:"stage"`
	CampaignID       *string           `json:"campaign_id"`
	AdSetID          *string           `json:"ad_set_id"`
	CreativeID       *string           `json:"creative_id"`
	AdID             *string           `json:"ad_id"`
	ErrorKind        *string           `json:"error_kind,omitempty"`
	ErrorMessage     *string           `json:"error_message,omitempty"`
	PlatformStatus   *string           `json:"platform_status,omitempty"`
	DailyBudgetCents int64             `json:"daily_budget_cents"`
	Currency         string            `json:"currency"`
	Brief            CampaignBrief     `json:"brief"`
	Content          GeneratedContent  `json:"content"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// ListLaunchesFilter restringe a listagem de lançamentos
type ListLaunchesFilter struct {
	UserID *int
	Status *LaunchStatus
	Limit  int
	Offset int
}
