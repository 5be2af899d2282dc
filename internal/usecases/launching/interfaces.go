package launching

import (
	"github.com/vfg2006/campaign-launcher-api/internal/domain"
)

// PlatformClient é a fatia do cliente da Graph API que o pipeline usa
// para criar recursos
type PlatformClient interface {
	// CreateResource cria um recurso da hierarquia de anúncios e retorna o identificador
	CreateResource(accountID string, resource domain.ResourceType, payload map[string]any) (string, error)
}

// LaunchRepository persiste e consulta o registro de cada execução do pipeline
type LaunchRepository interface {
	SaveLaunch(launch *domain.CampaignLaunch) (*domain.CampaignLaunch, error)
	GetLaunchByID(launchID string) (*domain.CampaignLaunch, error)
	ListLaunches(filter domain.ListLaunchesFilter) ([]*domain.CampaignLaunch, error)
}

// Launcher define a interface do pipeline de construção de campanhas
type Launcher interface {
	// Launch executa o pipeline completo e retorna o resultado terminal,
	// com os identificadores criados mesmo em caso de falha parcial
	Launch(params LaunchParams) (*domain.BuildResult, error)

	// GetLaunch consulta o registro persistido de um lançamento
	GetLaunch(launchID string) (*domain.CampaignLaunch, error)

	// ListLaunches lista os lançamentos registrados
	ListLaunches(filter domain.ListLaunchesFilter) ([]*domain.CampaignLaunch, error)
}
