package domain

// CampaignDetailsResponse é a visão da campanha na plataforma exposta
// pela API, usada para conferir o que o pipeline criou
type CampaignDetailsResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Objective       string `json:"objective"`
	Status          string `json:"status"`
	EffectiveStatus string `json:"effective_status,omitempty"`
	CreatedTime     string `json:"created_time,omitempty"`
	UpdatedTime     string `json:"updated_time,omitempty"`
}
