package launching

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-launcher-api/internal/domain"
)

func payloadSpec(t *testing.T) *domain.CampaignSpec {
	t.Helper()

	spec, err := domain.NewCampaignSpec(
		domain.CampaignBrief{
			BusinessName:     "Ótica Central",
			ProductOrService: "Óculos de grau",
			KeySellingPoints: "Armações exclusivas",
			CampaignName:     "Ótica Central - Inverno",
			Objective:        domain.ObjectiveConsideration,
			CallToAction:     "LEARN_MORE",
			WebsiteURL:       "https://oticacentral.example.com",
			Budget: domain.Budget{
				AmountCents: 12000,
				Currency:    "BRL",
				Type:        domain.BudgetTypeDaily,
			},
			Schedule: domain.Schedule{
				StartTime: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
				EndTime:   time.Date(2026, 4, 9, 12, 0, 0, 0, time.UTC),
			},
			Audience: domain.Audience{
				AgeMin:    25,
				AgeMax:    45,
				Gender:    domain.GenderAll,
				Countries: []string{"BR", "US"},
			},
			AdAccountID: "1234567890",
			PageID:      "9876543210",
		},
		domain.GeneratedContent{
			Headlines:      []string{"Enxergue melhor hoje", "Armações que combinam com você"},
			PrimaryTexts:   []string{"Entrega rápida e atendimento personalizado"},
			Descriptions:   []string{"Visite nossa loja"},
			ImageReference: "https://placehold.co/600x400",
		},
	)
	require.NoError(t, err)

	return spec
}

// Builders são funções puras: o mesmo spec precisa produzir exatamente
// os mesmos bytes no wire, chamada após chamada
func TestPayloadBuilders_Deterministic(t *testing.T) {
	spec := payloadSpec(t)

	builders := []struct {
		name  string
		build func() (Payload, error)
	}{
		{
			name:  "campaign",
			build: func() (Payload, error) { return BuildCampaignPayload(spec, "PAUSED") },
		},
		{
			name:  "adset",
			build: func() (Payload, error) { return BuildAdSetPayload(spec, "120210000001", "PAUSED") },
		},
		{
			name:  "creative",
			build: func() (Payload, error) { return BuildCreativePayload(spec, spec.Brief.PageID) },
		},
		{
			name: "ad",
			build: func() (Payload, error) {
				return BuildAdPayload(spec, "120210000002", "120210000003", "PAUSED"), nil
			},
		},
	}

	for _, tt := range builders {
		t.Run(tt.name, func(t *testing.T) {
			first, err := tt.build()
			require.NoError(t, err)

			second, err := tt.build()
			require.NoError(t, err)

			firstJSON, err := json.Marshal(first)
			require.NoError(t, err)

			secondJSON, err := json.Marshal(second)
			require.NoError(t, err)

			assert.Equal(t, firstJSON, secondJSON)
		})
	}
}

func TestBuildCampaignPayload(t *testing.T) {
	spec := payloadSpec(t)

	payload, err := BuildCampaignPayload(spec, "PAUSED")
	require.NoError(t, err)

	assert.Equal(t, "Ótica Central - Inverno", payload["name"])
	assert.Equal(t, "OUTCOME_TRAFFIC", payload["objective"])
	assert.Equal(t, "PAUSED", payload["status"])
	assert.Equal(t, "AUCTION", payload["buying_type"])
	assert.Equal(t, []string{}, payload["special_ad_categories"])
}

func TestBuildCampaignPayload_UnknownObjective(t *testing.T) {
	spec := payloadSpec(t)
	spec.Brief.Objective = "ENGAGEMENT"

	_, err := BuildCampaignPayload(spec, "PAUSED")
	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestBuildAdSetPayload(t *testing.T) {
	spec := payloadSpec(t)

	payload, err := BuildAdSetPayload(spec, "120210000001", "PAUSED")
	require.NoError(t, err)

	assert.Equal(t, "Ótica Central - Inverno - Ad Set", payload["name"])
	assert.Equal(t, "120210000001", payload["campaign_id"])
	assert.Equal(t, int64(12000), payload["daily_budget"])
	assert.Equal(t, "IMPRESSIONS", payload["billing_event"])
	assert.Equal(t, "LINK_CLICKS", payload["optimization_goal"])
	assert.Equal(t, spec.Brief.Schedule.StartTime.Unix(), payload["start_time"])
	assert.Equal(t, spec.Brief.Schedule.EndTime.Unix(), payload["end_time"])

	targeting, ok := payload["targeting"].(Payload)
	require.True(t, ok)
	assert.Equal(t, 25, targeting["age_min"])
	assert.Equal(t, 45, targeting["age_max"])

	geo, ok := targeting["geo_locations"].(Payload)
	require.True(t, ok)
	assert.Equal(t, []string{"BR", "US"}, geo["countries"])

	// Gênero ALL significa campo ausente
	_, hasGenders := targeting["genders"]
	assert.False(t, hasGenders)
}

func TestBuildAdSetPayload_LifetimeBudget(t *testing.T) {
	spec := payloadSpec(t)
	spec.Brief.Budget.Type = domain.BudgetTypeLifetime

	payload, err := BuildAdSetPayload(spec, "120210000001", "PAUSED")
	require.NoError(t, err)

	assert.Equal(t, int64(12000), payload["lifetime_budget"])
	_, hasDaily := payload["daily_budget"]
	assert.False(t, hasDaily)
}

func TestBuildAdSetPayload_EndBeforeStart(t *testing.T) {
	spec := payloadSpec(t)
	spec.Brief.Schedule.EndTime = spec.Brief.Schedule.StartTime.AddDate(0, 0, -1)

	_, err := BuildAdSetPayload(spec, "120210000001", "PAUSED")
	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestBuildTargeting_Genders(t *testing.T) {
	tests := []struct {
		name     string
		gender   domain.Gender
		expected []int
	}{
		{name: "Masculino", gender: domain.GenderMale, expected: []int{1}},
		{name: "Feminino", gender: domain.GenderFemale, expected: []int{2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			targeting := buildTargeting(domain.Audience{
				AgeMin:    25,
				AgeMax:    45,
				Gender:    tt.gender,
				Countries: []string{"BR"},
			})

			assert.Equal(t, tt.expected, targeting["genders"])
		})
	}
}

func TestBuildTargeting_Interests(t *testing.T) {
	targeting := buildTargeting(domain.Audience{
		AgeMin:    25,
		AgeMax:    45,
		Countries: []string{"BR"},
		Interests: []domain.Interest{
			{ID: "6003139266461", Name: "Eyewear"},
		},
	})

	interests, ok := targeting["interests"].([]Payload)
	require.True(t, ok)
	require.Len(t, interests, 1)
	assert.Equal(t, "6003139266461", interests[0]["id"])
	assert.Equal(t, "Eyewear", interests[0]["name"])
}

func TestBuildCreativePayload(t *testing.T) {
	spec := payloadSpec(t)

	payload, err := BuildCreativePayload(spec, spec.Brief.PageID)
	require.NoError(t, err)

	assert.Equal(t, "Creative for Enxergue melhor hoje", payload["name"])

	storySpec, ok := payload["object_story_spec"].(Payload)
	require.True(t, ok)
	assert.Equal(t, "9876543210", storySpec["page_id"])

	linkData, ok := storySpec["link_data"].(Payload)
	require.True(t, ok)
	assert.Equal(t, "Entrega rápida e atendimento personalizado", linkData["message"])
	assert.Equal(t, "https://oticacentral.example.com", linkData["link"])
	assert.Equal(t, "Enxergue melhor hoje", linkData["name"])
	assert.Equal(t, "Visite nossa loja", linkData["description"])
	assert.Equal(t, "https://placehold.co/600x400", linkData["picture"])

	cta, ok := linkData["call_to_action"].(Payload)
	require.True(t, ok)
	assert.Equal(t, "LEARN_MORE", cta["type"])
}

func TestBuildCreativePayload_HashReferenceUnsupported(t *testing.T) {
	spec := payloadSpec(t)
	spec.Content.ImageReference = "f4c1a2b3d4e5f6a7b8c9"

	_, err := BuildCreativePayload(spec, spec.Brief.PageID)
	require.Error(t, err)
	assert.Equal(t, domain.KindUnsupportedFeature, domain.KindOf(err))
}

func TestBuildAdPayload(t *testing.T) {
	spec := payloadSpec(t)

	payload := BuildAdPayload(spec, "120210000002", "120210000003", "PAUSED")

	assert.Equal(t, "Ótica Central - Inverno - Ad", payload["name"])
	assert.Equal(t, "120210000002", payload["adset_id"])
	assert.Equal(t, "PAUSED", payload["status"])

	creative, ok := payload["creative"].(Payload)
	require.True(t, ok)
	assert.Equal(t, "120210000003", creative["creative_id"])
}
