package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "rate limit", err: NewRateLimitError("limite atingido"), want: true},
		{name: "rede transitória", err: NewTransientNetworkError("connection reset"), want: true},
		{name: "autenticação", err: NewAuthError("token inválido"), want: false},
		{name: "validação", err: NewValidationError("orçamento abaixo do mínimo"), want: false},
		{name: "permanente", err: NewPermanentAPIError("resposta sem id"), want: false},
		{name: "não suportado", err: NewUnsupportedFeatureError("upload de imagem"), want: false},
		{name: "rate limit embrulhado", err: fmt.Errorf("criando ad set: %w", NewRateLimitError("x")), want: true},
		{name: "erro comum", err: assert.AnError, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{name: "erro classificado", err: NewRateLimitError("x"), want: KindRateLimit},
		{name: "classificado embrulhado", err: fmt.Errorf("etapa: %w", NewAuthError("x")), want: KindAuth},
		{name: "sentinela embrulhada", err: fmt.Errorf("etapa: %w", ErrValidation), want: KindValidation},
		{name: "não classificado vira permanente", err: assert.AnError, want: KindPermanentAPI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestNewPlatformError(t *testing.T) {
	err := NewPlatformError(KindRateLimit, "(#17) User request limit reached", 17, 0)

	assert.Equal(t, KindRateLimit, err.Kind)
	assert.Equal(t, 17, err.PlatformCode)
	assert.ErrorIs(t, err, ErrRateLimit)
	assert.Contains(t, err.Error(), "User request limit reached")

	// Uma classe desconhecida cai na sentinela de erro permanente
	unknown := NewPlatformError(ErrorKind("Outra"), "x", 0, 0)
	assert.ErrorIs(t, unknown, ErrPermanentAPI)
}

func TestLaunchError_Error(t *testing.T) {
	withDetails := NewValidationError("campo name é obrigatório")
	assert.Equal(t, "payload rejeitado pela plataforma: campo name é obrigatório", withDetails.Error())

	bare := &LaunchError{Err: ErrAuth, Kind: KindAuth}
	assert.Equal(t, ErrAuth.Error(), bare.Error())
}
