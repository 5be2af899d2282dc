package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneratedContent_FirstVariantIsDefault(t *testing.T) {
	content := &GeneratedContent{
		Headlines:    []string{"Primeira", "Segunda"},
		PrimaryTexts: []string{"Texto principal"},
		Descriptions: []string{"Descrição"},
	}

	assert.Equal(t, "Primeira", content.Headline())
	assert.Equal(t, "Texto principal", content.PrimaryText())
	assert.Equal(t, "Descrição", content.Description())
}

func TestGeneratedContent_EmptyVariants(t *testing.T) {
	content := &GeneratedContent{}

	assert.Empty(t, content.Headline())
	assert.Empty(t, content.PrimaryText())
	assert.Empty(t, content.Description())
}

func TestGeneratedContent_IsEmpty(t *testing.T) {
	tests := []struct {
		name    string
		content *GeneratedContent
		want    bool
	}{
		{name: "nil", content: nil, want: true},
		{name: "sem nenhum campo", content: &GeneratedContent{}, want: true},
		{
			name: "sem descrição",
			content: &GeneratedContent{
				Headlines:    []string{"h"},
				PrimaryTexts: []string{"p"},
			},
			want: true,
		},
		{
			name: "headline apenas com espaços",
			content: &GeneratedContent{
				Headlines:    []string{"   "},
				PrimaryTexts: []string{"p"},
				Descriptions: []string{"d"},
			},
			want: true,
		},
		{
			name: "completo",
			content: &GeneratedContent{
				Headlines:    []string{"h"},
				PrimaryTexts: []string{"p"},
				Descriptions: []string{"d"},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.content.IsEmpty())
		})
	}
}

func TestHasPlaceholderImage(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		want bool
	}{
		{name: "sem referência usa o placeholder", ref: "", want: true},
		{name: "url https", ref: "https://placehold.co/600x400", want: true},
		{name: "url http", ref: "http://example.com/img.png", want: true},
		{name: "hash de imagem não é url", ref: "f4c1a2b3d4e5f6a7b8c9", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := &GeneratedContent{ImageReference: tt.ref}
			assert.Equal(t, tt.want, content.HasPlaceholderImage())
		})
	}
}
