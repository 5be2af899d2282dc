package generating

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de geração de conteúdo
var (
	// Erros de validação
	ErrBriefIncomplete = errors.New("brief is missing required fields")

	// Erros de serviços externos
	ErrContentGeneration = errors.New("error generating ad content")
)

// GeneratingError é um erro com contexto adicional para geração de conteúdo
type GeneratingError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *GeneratingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *GeneratingError) Unwrap() error {
	return e.Err
}

// NewGeneratingError cria um novo GeneratingError
func NewGeneratingError(err error, code string, details string) *GeneratingError {
	return &GeneratingError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
