package domain

import (
	"errors"
	"fmt"
)

// Tipos de erros do pipeline de lançamento. A taxonomia decide, entre
// outras coisas, o que pode ser retentado pelo cliente da plataforma
var (
	// Erros vindos da plataforma de anúncios
	ErrAuth             = errors.New("credencial inválida ou expirada na plataforma")
	ErrValidation       = errors.New("payload rejeitado pela plataforma")
	ErrRateLimit        = errors.New("limite de requisições da plataforma atingido")
	ErrTransientNetwork = errors.New("falha de rede ao comunicar com a plataforma")
	ErrPermanentAPI     = errors.New("erro permanente da plataforma")

	// Erros locais do pipeline
	ErrUnsupportedFeature = errors.New("recurso não suportado pelo pipeline")
)

// ErrorKind é o nome da classe de erro reportado ao chamador no
// resultado do lançamento
type ErrorKind string

const (
	KindAuth               ErrorKind = "AuthError"
	KindValidation         ErrorKind = "ValidationError"
	KindRateLimit          ErrorKind = "RateLimitError"
	KindTransientNetwork   ErrorKind = "TransientNetworkError"
	KindPermanentAPI       ErrorKind = "PermanentApiError"
	KindUnsupportedFeature ErrorKind = "UnsupportedFeatureError"
)

// LaunchError é um erro classificado do pipeline de lançamento
type LaunchError struct {
	Err             error     // Erro base da taxonomia
	Kind            ErrorKind // Classe reportada ao chamador
	Stage           string    // Etapa em que o erro ocorreu, preenchida pelo orquestrador
	Details         string    // Mensagem da plataforma, quando houver
	PlatformCode    int       // Código numérico retornado pela Meta
	PlatformSubcode int       // Subcódigo retornado pela Meta
}

// Error implementa a interface error
func (e *LaunchError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *LaunchError) Unwrap() error {
	return e.Err
}

func NewValidationError(details string) *LaunchError {
	return &LaunchError{Err: ErrValidation, Kind: KindValidation, Details: details}
}

func NewAuthError(details string) *LaunchError {
	return &LaunchError{Err: ErrAuth, Kind: KindAuth, Details: details}
}

func NewRateLimitError(details string) *LaunchError {
	return &LaunchError{Err: ErrRateLimit, Kind: KindRateLimit, Details: details}
}

func NewTransientNetworkError(details string) *LaunchError {
	return &LaunchError{Err: ErrTransientNetwork, Kind: KindTransientNetwork, Details: details}
}

func NewPermanentAPIError(details string) *LaunchError {
	return &LaunchError{Err: ErrPermanentAPI, Kind: KindPermanentAPI, Details: details}
}

func NewUnsupportedFeatureError(details string) *LaunchError {
	return &LaunchError{Err: ErrUnsupportedFeature, Kind: KindUnsupportedFeature, Details: details}
}

// NewPlatformError cria um erro classificado carregando os códigos
// numéricos originais da plataforma
func NewPlatformError(kind ErrorKind, details string, code, subcode int) *LaunchError {
	launchErr := &LaunchError{
		Kind:            kind,
		Details:         details,
		PlatformCode:    code,
		PlatformSubcode: subcode,
	}

	switch kind {
	case KindAuth:
		launchErr.Err = ErrAuth
	case KindValidation:
		launchErr.Err = ErrValidation
	case KindRateLimit:
		launchErr.Err = ErrRateLimit
	case KindTransientNetwork:
		launchErr.Err = ErrTransientNetwork
	default:
		launchErr.Err = ErrPermanentAPI
	}

	return launchErr
}

// IsRetryable indica se o erro pode ser retentado pela política de
// backoff. Apenas rate limit e falhas transitórias de rede entram aqui
func IsRetryable(err error) bool {
	return errors.Is(err, ErrRateLimit) || errors.Is(err, ErrTransientNetwork)
}

// KindOf extrai a classe de um erro do pipeline. Erros não
// classificados são tratados como permanentes e nunca retentados
func KindOf(err error) ErrorKind {
	var launchErr *LaunchError
	if errors.As(err, &launchErr) {
		return launchErr.Kind
	}

	switch {
	case errors.Is(err, ErrAuth):
		return KindAuth
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrRateLimit):
		return KindRateLimit
	case errors.Is(err, ErrTransientNetwork):
		return KindTransientNetwork
	case errors.Is(err, ErrUnsupportedFeature):
		return KindUnsupportedFeature
	default:
		return KindPermanentAPI
	}
}
