package launching

import (
	"fmt"

	"github.com/vfg2006/campaign-launcher-api/internal/domain"
)

// Payload é o corpo JSON de criação de um recurso na Graph API. A
// serialização de mapas ordena as chaves, então specs iguais produzem
// bytes iguais no wire
type Payload map[string]any

// objectiveMapping traduz o objetivo de alto nível do brief para o
// objetivo aceito pela API de Marketing da Meta
var objectiveMapping = map[domain.CampaignObjective]string{
	domain.ObjectiveAwareness:     "BRAND_AWARENESS",
	domain.ObjectiveConsideration: "OUTCOME_TRAFFIC",
	domain.ObjectiveConversions:   "CONVERSIONS",
}

// BuildCampaignPayload monta o corpo de criação da campanha. Função
// pura: o mesmo spec sempre produz o mesmo payload
func BuildCampaignPayload(spec *domain.CampaignSpec, status string) (Payload, error) {
	objective, ok := objectiveMapping[spec.Brief.Objective]
	if !ok {
		return nil, domain.NewValidationError(fmt.Sprintf("objetivo de campanha não reconhecido: %q", spec.Brief.Objective))
	}

	if spec.Brief.Budget.AmountCents <= 0 {
		return nil, domain.NewValidationError("orçamento da campanha ausente ou não positivo")
	}

	return Payload{
		"name":                  spec.Brief.CampaignName,
		"objective":             objective,
		"status":                status,
		"buying_type":           "AUCTION",
		"special_ad_categories": []string{},
	}, nil
}

// BuildAdSetPayload monta o corpo de criação do conjunto de anúncios,
// vinculado à campanha já criada
func BuildAdSetPayload(spec *domain.CampaignSpec, campaignID string, status string) (Payload, error) {
	schedule := spec.Brief.Schedule
	if !schedule.EndTime.IsZero() && schedule.EndTime.Before(schedule.StartTime) {
		return nil, domain.NewValidationError("a data de término do agendamento precede a data de início")
	}

	// A Meta diferencia orçamento diário de orçamento total pelo nome do campo
	budgetField := "daily_budget"
	if spec.Brief.Budget.Type == domain.BudgetTypeLifetime {
		budgetField = "lifetime_budget"
	}

	payload := Payload{
		"name":              spec.Brief.CampaignName + " - Ad Set",
		"campaign_id":       campaignID,
		budgetField:         spec.Brief.Budget.AmountCents,
		"billing_event":     "IMPRESSIONS",
		"optimization_goal": "LINK_CLICKS",
		"bid_strategy":      "LOWEST_COST_WITHOUT_CAP",
		"targeting":         buildTargeting(spec.Brief.Audience),
		"start_time":        schedule.StartTime.Unix(),
		"status":            status,
	}

	if !schedule.EndTime.IsZero() {
		payload["end_time"] = schedule.EndTime.Unix()
	}

	return payload, nil
}

func buildTargeting(audience domain.Audience) Payload {
	targeting := Payload{
		"age_min": audience.AgeMin,
		"age_max": audience.AgeMax,
		"geo_locations": Payload{
			"countries": audience.Countries,
			"cities":    []string{},
			"regions":   []string{},
		},
	}

	// 1 = masculino, 2 = feminino; a ausência do campo significa todos
	switch audience.Gender {
	case domain.GenderMale:
		targeting["genders"] = []int{1}
	case domain.GenderFemale:
		targeting["genders"] = []int{2}
	}

	if len(audience.Interests) > 0 {
		interests := make([]Payload, 0, len(audience.Interests))
		for _, interest := range audience.Interests {
			interests = append(interests, Payload{"id": interest.ID, "name": interest.Name})
		}
		targeting["interests"] = interests
	}

	return targeting
}

// BuildCreativePayload monta o corpo de criação do creative. A imagem
// entra como URL pública no campo picture; referências por hash exigem
// upload prévio de mídia, que não é suportado
func BuildCreativePayload(spec *domain.CampaignSpec, pageID string) (Payload, error) {
	content := spec.Content

	if !content.HasPlaceholderImage() {
		return nil, domain.NewUnsupportedFeatureError(
			fmt.Sprintf("imagem referenciada por hash não é suportada: %q; informe uma URL pública", content.ImageReference),
		)
	}

	picture := content.ImageReference
	if picture == "" {
		picture = domain.PlaceholderImageURL
	}

	linkData := Payload{
		"message":     content.PrimaryText(),
		"link":        spec.Brief.WebsiteURL,
		"name":        content.Headline(),
		"description": content.Description(),
		"picture":     picture,
	}

	if spec.Brief.CallToAction != "" {
		linkData["call_to_action"] = Payload{"type": spec.Brief.CallToAction}
	}

	return Payload{
		"name": "Creative for " + content.Headline(),
		"object_story_spec": Payload{
			"page_id":   pageID,
			"link_data": linkData,
		},
	}, nil
}

// BuildAdPayload monta o corpo de criação do anúncio final, amarrando o
// conjunto de anúncios ao creative
func BuildAdPayload(spec *domain.CampaignSpec, adSetID string, creativeID string, status string) Payload {
	return Payload{
		"name":     spec.Brief.CampaignName + " - Ad",
		"adset_id": adSetID,
		"creative": Payload{"creative_id": creativeID},
		"status":   status,
	}
}
