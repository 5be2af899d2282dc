package metadomain

// Identity é o usuário dono do token, retornado pelo endpoint /me
type Identity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AdAccount é uma conta de anúncios acessível pelo token.
// O ID já vem prefixado com "act_" pela API
type AdAccount struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	AccountStatus int    `json:"account_status,omitempty"`
}

// Page é uma página do Facebook administrada pelo usuário,
// necessária para o object_story_spec do creative
type Page struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}
