package domain

import (
	"fmt"
	"strings"
	"time"
)

// CampaignObjective é o objetivo de alto nível escolhido pelo usuário.
// O mapeamento para o objetivo específico da Meta acontece na construção
// do payload, não aqui
type CampaignObjective string

const (
	ObjectiveAwareness     CampaignObjective = "AWARENESS"
	ObjectiveConsideration CampaignObjective = "CONSIDERATION"
	ObjectiveConversions   CampaignObjective = "CONVERSIONS"
)

type BudgetType string

const (
	BudgetTypeDaily    BudgetType = "DAILY"
	BudgetTypeLifetime BudgetType = "LIFETIME"
)

// Budget sempre em centavos, como a Meta exige
type Budget struct {
	AmountCents int64      `json:"amount_cents"`
	Currency    string     `json:"currency"`
	Type        BudgetType `json:"type"`
}

type Schedule struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

type Gender string

const (
	GenderAll    Gender = "ALL"
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

type Interest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Audience struct {
	AgeMin      int        `json:"age_min"`
	AgeMax      int        `json:"age_max"`
	Gender      Gender     `json:"gender"`
	Countries   []string   `json:"countries"`
	Interests   []Interest `json:"interests,omitempty"`
	Description string     `json:"description,omitempty"`
}

// CampaignBrief é a intenção de campanha enviada pelo usuário.
// Imutável depois de submetida ao pipeline
type CampaignBrief struct {
	BusinessName        string            `json:"business_name"`
	BusinessDescription string            `json:"business_description"`
	ProductOrService    string            `json:"product_or_service"`
	KeySellingPoints    string            `json:"key_selling_points"`
	CampaignName        string            `json:"campaign_name"`
	Objective           CampaignObjective `json:"objective"`
	CallToAction        string            `json:"call_to_action"`
	WebsiteURL          string            `json:"website_url"`
	Budget              Budget            `json:"budget"`
	Schedule            Schedule          `json:"schedule"`
	Audience            Audience          `json:"audience"`
	AdAccountID         string            `json:"ad_account_id"`
	PageID              string            `json:"page_id"`
}

// AllowedCallToActions são os tipos de CTA aceitos pela Meta que o
// formulário oferece
var AllowedCallToActions = []string{
	"LEARN_MORE",
	"SIGN_UP",
	"SHOP_NOW",
	"CONTACT_US",
	"SUBSCRIBE",
}

func IsAllowedCallToAction(cta string) bool {
	for _, allowed := range AllowedCallToActions {
		if cta == allowed {
			return true
		}
	}
	return false
}

// CountryISOMapping traduz o nome do país usado no formulário para o
// código ISO-2 que a segmentação geográfica da Meta espera
var CountryISOMapping = map[string]string{
	"USA":       "US",
	"UK":        "GB",
	"India":     "IN",
	"Canada":    "CA",
	"Australia": "AU",
	"Germany":   "DE",
	"France":    "FR",
	"Japan":     "JP",
	"Brazil":    "BR",
	"Mexico":    "MX",
	"Spain":     "ES",
	"Italy":     "IT",
}

// NormalizeCountries converte nomes de países em códigos ISO-2,
// preservando códigos que já estão no formato correto e removendo
// duplicados. Nomes que não constam no mapeamento e não têm formato de
// código ISO-2 são rejeitados
func NormalizeCountries(locations []string) ([]string, error) {
	seen := make(map[string]bool)
	countries := make([]string, 0, len(locations))

	for _, location := range locations {
		code, ok := CountryISOMapping[location]
		if !ok {
			if len(location) != 2 {
				return nil, NewValidationError(fmt.Sprintf("país não reconhecido para segmentação: %q", location))
			}
			code = strings.ToUpper(location)
		}

		if !seen[code] {
			seen[code] = true
			countries = append(countries, code)
		}
	}

	return countries, nil
}
