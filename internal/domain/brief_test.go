package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCountries(t *testing.T) {
	tests := []struct {
		name      string
		locations []string
		want      []string
		wantErr   bool
	}{
		{
			name:      "nomes conhecidos viram códigos ISO",
			locations: []string{"Brazil", "USA", "Germany"},
			want:      []string{"BR", "US", "DE"},
		},
		{
			name:      "códigos ISO são preservados em maiúsculas",
			locations: []string{"br", "US"},
			want:      []string{"BR", "US"},
		},
		{
			name:      "duplicados são removidos",
			locations: []string{"Brazil", "BR", "br"},
			want:      []string{"BR"},
		},
		{
			name:      "nome desconhecido é rejeitado",
			locations: []string{"Brazil", "Atlantis"},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeCountries(tt.locations)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, KindValidation, KindOf(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsAllowedCallToAction(t *testing.T) {
	for _, cta := range AllowedCallToActions {
		assert.True(t, IsAllowedCallToAction(cta), cta)
	}

	assert.False(t, IsAllowedCallToAction("BUY_TICKETS"))
	assert.False(t, IsAllowedCallToAction(""))
	assert.False(t, IsAllowedCallToAction("learn_more"))
}
