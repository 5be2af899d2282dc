package handler

import (
	"net/http"

	"github.com/vfg2006/campaign-launcher-api/infrastructure/integrator/meta"
	"github.com/vfg2006/campaign-launcher-api/internal/api/handler/router"
	"github.com/vfg2006/campaign-launcher-api/internal/usecases/account"
	"github.com/vfg2006/campaign-launcher-api/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-launcher-api/internal/usecases/generating"
	"github.com/vfg2006/campaign-launcher-api/internal/usecases/launching"
	"github.com/vfg2006/campaign-launcher-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// Launches retorna as rotas do pipeline de lançamento e do histórico
func Launches(
	launcher launching.Launcher,
	generator generating.ContentGenerator,
	metaService *meta.MetaIntegrator,
) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/campaigns/launch",
			Method:      http.MethodPost,
			Handler:     LaunchCampaign(launcher, generator, metaService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/launches",
			Method:      http.MethodGet,
			Handler:     ListLaunches(launcher),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/launches/:id",
			Method:      http.MethodGet,
			Handler:     GetLaunch(launcher),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// Campaigns retorna as rotas de consulta de campanhas na plataforma
func Campaigns(service account.AccountService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/campaigns/:id",
			Method:      http.MethodGet,
			Handler:     GetCampaignDetails(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// Contents retorna as rotas de geração de conteúdo sem lançamento
func Contents(generator generating.ContentGenerator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/contents/generate",
			Method:      http.MethodPost,
			Handler:     GenerateContent(generator),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// MetaIntegration retorna as rotas de verificação da integração com o Meta
func MetaIntegration(service account.AccountService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/integrations/meta/status",
			Method:      http.MethodGet,
			Handler:     MetaIntegrationStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/integrations/meta/adaccounts",
			Method:      http.MethodGet,
			Handler:     ListMetaAdAccounts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/integrations/meta/pages",
			Method:      http.MethodGet,
			Handler:     ListMetaPages(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/campaign-status-sync",
			Method:      http.MethodPost,
			Handler:     RunCampaignStatusSync(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
