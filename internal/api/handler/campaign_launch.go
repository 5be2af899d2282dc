package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-launcher-api/infrastructure/integrator/meta"
	"github.com/vfg2006/campaign-launcher-api/internal/domain"
	"github.com/vfg2006/campaign-launcher-api/internal/usecases/generating"
	"github.com/vfg2006/campaign-launcher-api/internal/usecases/launching"
	"github.com/vfg2006/campaign-launcher-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-launcher-api/pkg/middleware"
)

var validate = validator.New()

// LaunchContentRequest carrega o conteúdo pré-aprovado pelo usuário. Quando
// ausente, o conteúdo é gerado automaticamente a partir do brief
type LaunchContentRequest struct {
	Headlines        []string `json:"headlines" validate:"required,min=1,dive,required"`
	PrimaryTexts     []string `json:"primary_texts" validate:"required,min=1,dive,required"`
	Descriptions     []string `json:"descriptions" validate:"required,min=1,dive,required"`
	ImageDescription string   `json:"image_description"`
	ImageReference   string   `json:"image_reference" validate:"omitempty,url"`
}

type LaunchCampaignRequest struct {
	BusinessName        string `json:"business_name" validate:"required"`
	BusinessDescription string `json:"business_description"`
	ProductOrService    string `json:"product_or_service" validate:"required"`
	KeySellingPoints    string `json:"key_selling_points" validate:"required"`

	CampaignName string `json:"campaign_name"`
	Objective    string `json:"objective" validate:"omitempty,oneof=AWARENESS CONSIDERATION CONVERSIONS"`
	CallToAction string `json:"call_to_action"`
	WebsiteURL   string `json:"website_url" validate:"omitempty,url"`

	DailyBudgetCents int64      `json:"daily_budget_cents" validate:"omitempty,gt=0"`
	Currency         string     `json:"currency" validate:"omitempty,len=3"`
	StartTime        *time.Time `json:"start_time"`
	EndTime          *time.Time `json:"end_time"`

	AgeMin              int               `json:"age_min" validate:"omitempty,gte=13,lte=65"`
	AgeMax              int               `json:"age_max" validate:"omitempty,gte=13,lte=65"`
	Gender              string            `json:"gender" validate:"omitempty,oneof=ALL MALE FEMALE"`
	Locations           []string          `json:"locations"`
	Interests           []domain.Interest `json:"interests"`
	AudienceDescription string            `json:"audience_description"`

	AdAccountID string `json:"ad_account_id"`
	PageID      string `json:"page_id"`

	Content *LaunchContentRequest `json:"content"`
}

func (r *LaunchCampaignRequest) toBrief() domain.CampaignBrief {
	brief := domain.CampaignBrief{
		BusinessName:        r.BusinessName,
		BusinessDescription: r.BusinessDescription,
		ProductOrService:    r.ProductOrService,
		KeySellingPoints:    r.KeySellingPoints,
		CampaignName:        r.CampaignName,
		Objective:           domain.CampaignObjective(r.Objective),
		CallToAction:        r.CallToAction,
		WebsiteURL:          r.WebsiteURL,
		Budget: domain.Budget{
			AmountCents: r.DailyBudgetCents,
			Currency:    strings.ToUpper(r.Currency),
		},
		Audience: domain.Audience{
			AgeMin:      r.AgeMin,
			AgeMax:      r.AgeMax,
			Gender:      domain.Gender(r.Gender),
			Countries:   r.Locations,
			Interests:   r.Interests,
			Description: r.AudienceDescription,
		},
		AdAccountID: r.AdAccountID,
		PageID:      r.PageID,
	}

	if r.StartTime != nil {
		brief.Schedule.StartTime = *r.StartTime
	}
	if r.EndTime != nil {
		brief.Schedule.EndTime = *r.EndTime
	}

	return brief
}

func (r *LaunchContentRequest) toContent() domain.GeneratedContent {
	return domain.GeneratedContent{
		Headlines:        r.Headlines,
		PrimaryTexts:     r.PrimaryTexts,
		Descriptions:     r.Descriptions,
		ImageDescription: r.ImageDescription,
		ImageReference:   r.ImageReference,
	}
}

// LaunchCampaign monta o brief, garante conteúdo e conta/página de destino e
// dispara o pipeline de criação na plataforma. Falha parcial responde 422 com
// os identificadores já criados
func LaunchCampaign(
	launcher launching.Launcher,
	generator generating.ContentGenerator,
	metaService *meta.MetaIntegrator,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - LaunchCampaign")

		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req LaunchCampaignRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if err := validate.Struct(req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Dados do brief inválidos", err.Error())
			return
		}

		brief := req.toBrief()

		var content domain.GeneratedContent
		if req.Content != nil {
			content = req.Content.toContent()
		} else {
			generated, err := generator.Generate(&brief)
			if err != nil {
				handleGeneratingError(w, err)
				return
			}
			content = *generated
		}

		if brief.AdAccountID == "" {
			accountID, err := metaService.DefaultAdAccountID()
			if err != nil {
				logrus.Error("launching: no ad account available: ", err)
				apiErrors.WriteError(w, apiErrors.ErrLaunchValidation, "Nenhuma conta de anúncios disponível para o lançamento", err.Error())
				return
			}
			brief.AdAccountID = accountID
		}

		if brief.PageID == "" {
			pageID, err := metaService.DefaultPageID()
			if err != nil {
				logrus.Error("launching: no page available: ", err)
				apiErrors.WriteError(w, apiErrors.ErrLaunchValidation, "Nenhuma página disponível para o lançamento", err.Error())
				return
			}
			brief.PageID = pageID
		}

		result, err := launcher.Launch(launching.LaunchParams{
			UserID:  claims.UserID,
			Brief:   brief,
			Content: content,
		})
		if err != nil {
			handleLaunchError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if !result.Success {
			w.WriteHeader(http.StatusUnprocessableEntity)
		}

		if err := json.NewEncoder(w).Encode(result); err != nil {
			logrus.Error("Error encoding response launch campaign: ", err)
		}
	}
}

// handleLaunchError trata erros anteriores ao pipeline (brief rejeitado na
// normalização). Falhas durante o pipeline chegam como BuildResult
func handleLaunchError(w http.ResponseWriter, err error) {
	var launchErr *domain.LaunchError
	if errors.As(err, &launchErr) {
		switch launchErr.Kind {
		case domain.KindValidation:
			apiErrors.WriteError(w, apiErrors.ErrLaunchValidation, launchErr.Error(), launchErr.Details)
		case domain.KindUnsupportedFeature:
			apiErrors.WriteError(w, apiErrors.ErrLaunchUnsupported, launchErr.Error(), launchErr.Details)
		case domain.KindRateLimit:
			apiErrors.WriteError(w, apiErrors.ErrLaunchRateLimited, launchErr.Error(), launchErr.Details)
		case domain.KindAuth:
			apiErrors.WriteError(w, apiErrors.ErrLaunchAuth, launchErr.Error(), launchErr.Details)
		case domain.KindTransientNetwork:
			apiErrors.WriteError(w, apiErrors.ErrLaunchNetwork, launchErr.Error(), launchErr.Details)
		default:
			apiErrors.WriteError(w, apiErrors.ErrLaunchPlatform, launchErr.Error(), launchErr.Details)
		}
		return
	}

	logrus.Error("Error launching campaign: ", err)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao lançar campanha", nil)
}

func handleGeneratingError(w http.ResponseWriter, err error) {
	var genErr *generating.GeneratingError
	if errors.As(err, &genErr) {
		apiErrors.WriteError(w, genErr.Code, genErr.Error(), genErr.Details)
		return
	}

	logrus.Error("Error generating content: ", err)
	apiErrors.WriteError(w, apiErrors.ErrContentGeneration, "Erro ao gerar conteúdo do anúncio", nil)
}

// ListLaunches lista o histórico de lançamentos. Operadores enxergam apenas
// os próprios registros; administradores podem filtrar por usuário
func ListLaunches(launcher launching.Launcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		filter := domain.ListLaunchesFilter{}

		if claims.UserRoleID != middleware.RoleAdmin {
			userID := claims.UserID
			filter.UserID = &userID
		} else if rawUserID := r.URL.Query().Get("user_id"); rawUserID != "" {
			userID, err := strconv.Atoi(rawUserID)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro user_id inválido", nil)
				return
			}
			filter.UserID = &userID
		}

		if rawStatus := r.URL.Query().Get("status"); rawStatus != "" {
			status := domain.LaunchStatus(strings.ToUpper(rawStatus))
			if status != domain.LaunchStatusSucceeded && status != domain.LaunchStatusFailed {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro status inválido", nil)
				return
			}
			filter.Status = &status
		}

		if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
			limit, err := strconv.Atoi(rawLimit)
			if err != nil || limit < 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
				return
			}
			filter.Limit = limit
		}

		if rawOffset := r.URL.Query().Get("offset"); rawOffset != "" {
			offset, err := strconv.Atoi(rawOffset)
			if err != nil || offset < 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro offset inválido", nil)
				return
			}
			filter.Offset = offset
		}

		launches, err := launcher.ListLaunches(filter)
		if err != nil {
			logrus.Error("Error listing launches: ", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar lançamentos", nil)
			return
		}

		if launches == nil {
			launches = []*domain.CampaignLaunch{}
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(launches); err != nil {
			logrus.Error("Error encoding response list launches: ", err)
		}
	}
}

// GetLaunch consulta um lançamento pelo identificador interno
func GetLaunch(launcher launching.Launcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		params := httprouter.ParamsFromContext(r.Context())
		launchID := params.ByName("id")
		if launchID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador do lançamento não informado", nil)
			return
		}

		launch, err := launcher.GetLaunch(launchID)
		if err != nil {
			logrus.Error("Error getting launch: ", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar lançamento", nil)
			return
		}

		if launch == nil {
			apiErrors.WriteError(w, apiErrors.ErrLaunchNotFound, "Lançamento não encontrado", nil)
			return
		}

		if claims.UserRoleID != middleware.RoleAdmin && launch.UserID != claims.UserID {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este lançamento", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(launch); err != nil {
			logrus.Error("Error encoding response get launch: ", err)
		}
	}
}
