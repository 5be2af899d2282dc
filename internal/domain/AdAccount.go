package domain

// IntegrationStatus é a resposta da verificação de acesso à plataforma
// de anúncios
type IntegrationStatus struct {
	Connected bool   `json:"connected"`
	UserID    string `json:"user_id,omitempty"`
	UserName  string `json:"user_name,omitempty"`
	Message   string `json:"message"`
}

// AdAccountResponse é a visão de uma conta de anúncios exposta pela API
type AdAccountResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	AccountStatus int    `json:"account_status"`
	IsDefault     bool   `json:"is_default"`
}

// PageResponse é a visão de uma página exposta pela API. A página dá a
// identidade do creative no object_story_spec
type PageResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category,omitempty"`
	IsDefault bool   `json:"is_default"`
}
