package account

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de integração com a plataforma
var (
	// Erros de validação
	ErrCampaignIDRequired = errors.New("campaign ID is required")
	ErrCampaignNotFound   = errors.New("campaign not found")

	// Erros de serviços externos
	ErrMetaIntegration = errors.New("error communicating with Meta")
	ErrAccessCheck     = errors.New("access check against Meta failed")
)

// AccountError é um erro com contexto adicional para a integração
type AccountError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	CampaignID string // ID da campanha envolvida (quando aplicável)
	Details    string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AccountError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AccountError) Unwrap() error {
	return e.Err
}

// NewAccountError cria um novo AccountError
func NewAccountError(err error, code string, details string) *AccountError {
	return &AccountError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewAccountErrorWithCampaignID cria um novo AccountError com o ID da campanha
func NewAccountErrorWithCampaignID(err error, code string, campaignID string, details string) *AccountError {
	return &AccountError{
		Err:        err,
		Code:       code,
		CampaignID: campaignID,
		Details:    details,
	}
}
