package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-launcher-api/internal/domain"
	"github.com/vfg2006/campaign-launcher-api/internal/usecases/generating"
	"github.com/vfg2006/campaign-launcher-api/pkg/apiErrors"
)

// GenerateContentRequest é o brief mínimo para geração de conteúdo sem
// lançamento. Permite ao usuário revisar o texto antes de lançar
type GenerateContentRequest struct {
	BusinessName        string            `json:"business_name" validate:"required"`
	BusinessDescription string            `json:"business_description"`
	ProductOrService    string            `json:"product_or_service" validate:"required"`
	KeySellingPoints    string            `json:"key_selling_points" validate:"required"`
	Objective           string            `json:"objective" validate:"omitempty,oneof=AWARENESS CONSIDERATION CONVERSIONS"`
	CallToAction        string            `json:"call_to_action"`
	AgeMin              int               `json:"age_min" validate:"omitempty,gte=13,lte=65"`
	AgeMax              int               `json:"age_max" validate:"omitempty,gte=13,lte=65"`
	Gender              string            `json:"gender" validate:"omitempty,oneof=ALL MALE FEMALE"`
	Locations           []string          `json:"locations"`
	Interests           []domain.Interest `json:"interests"`
	AudienceDescription string            `json:"audience_description"`
}

func (r *GenerateContentRequest) toBrief() domain.CampaignBrief {
	return domain.CampaignBrief{
		BusinessName:        r.BusinessName,
		BusinessDescription: r.BusinessDescription,
		ProductOrService:    r.ProductOrService,
		KeySellingPoints:    r.KeySellingPoints,
		Objective:           domain.CampaignObjective(r.Objective),
		CallToAction:        r.CallToAction,
		Audience: domain.Audience{
			AgeMin:      r.AgeMin,
			AgeMax:      r.AgeMax,
			Gender:      domain.Gender(r.Gender),
			Countries:   r.Locations,
			Interests:   r.Interests,
			Description: r.AudienceDescription,
		},
	}
}

// GenerateContent gera variações de texto e a descrição de imagem para um
// brief, sem tocar a plataforma de anúncios
func GenerateContent(generator generating.ContentGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GenerateContent")

		var req GenerateContentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if err := validate.Struct(req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Dados do brief inválidos", err.Error())
			return
		}

		brief := req.toBrief()

		content, err := generator.Generate(&brief)
		if err != nil {
			handleGeneratingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(content); err != nil {
			logrus.Error("Error encoding response generate content: ", err)
		}
	}
}
