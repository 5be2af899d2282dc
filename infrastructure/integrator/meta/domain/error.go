package metadomain

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string      `json:"message"`
	Type         string      `json:"type"`
	Code         int         `json:"code"`
	ErrorSubcode int         `json:"error_subcode,omitempty"`
	ErrorUserMsg string      `json:"error_user_msg,omitempty"`
	FBTraceID    string      `json:"fbtrace_id"`
	ErrorData    interface{} `json:"error_data,omitempty"`
}

// IsTokenExpired verifica se o erro é de token expirado
func (e *ErrorResponse) IsTokenExpired() bool {
	// O código 190 representa "token expirado" nas respostas da API do Meta
	// Possíveis subcódigos relacionados a problemas de token: 460, 463, 467
	return e.Error.Code == 190 ||
		(e.Error.Type == "OAuthException" && (e.Error.ErrorSubcode == 460 || e.Error.ErrorSubcode == 463 || e.Error.ErrorSubcode == 467))
}

// IsRateLimited verifica se o erro é de limite de requisições.
// A Meta sinaliza throttling com os códigos 4 (app), 17 (usuário),
// 32 (página) e 613 (limite customizado)
func (e *ErrorResponse) IsRateLimited() bool {
	switch e.Error.Code {
	case 4, 17, 32, 613:
		return true
	}
	return false
}

// IsAuthError verifica se o erro é de credencial. O código 100 é
// parâmetro inválido e vem com type OAuthException, mas não é erro de
// credencial
func (e *ErrorResponse) IsAuthError() bool {
	if e.IsTokenExpired() {
		return true
	}
	return e.Error.Type == "OAuthException" && e.Error.Code != 100 && !e.IsRateLimited()
}

// BestMessage prefere a mensagem amigável da plataforma quando existe
func (e *ErrorResponse) BestMessage() string {
	if e.Error.ErrorUserMsg != "" {
		return e.Error.ErrorUserMsg
	}
	return e.Error.Message
}
