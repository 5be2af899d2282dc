package domain

import "strings"

// PlaceholderImageURL é usado enquanto o upload real de imagens não é
// suportado pelo pipeline
const PlaceholderImageURL = "https://placehold.co/600x400"

// Limites de caracteres dos campos de texto de um anúncio da Meta
const (
	MaxHeadlineLength    = 40
	MaxPrimaryTextLength = 125
	MaxDescriptionLength = 30
)

// GeneratedContent é o texto produzido pelo LLM para os anúncios.
// Cada campo de texto carrega variantes ordenadas; a primeira é a
// seleção padrão do pipeline
type GeneratedContent struct {
	Headlines        []string `json:"headlines"`
	PrimaryTexts     []string `json:"primary_texts"`
	Descriptions     []string `json:"descriptions"`
	ImageDescription string   `json:"image_description"`
	ImageReference   string   `json:"image_reference"`
}

func (c *GeneratedContent) Headline() string {
	if len(c.Headlines) == 0 {
		return ""
	}
	return c.Headlines[0]
}

func (c *GeneratedContent) PrimaryText() string {
	if len(c.PrimaryTexts) == 0 {
		return ""
	}
	return c.PrimaryTexts[0]
}

func (c *GeneratedContent) Description() string {
	if len(c.Descriptions) == 0 {
		return ""
	}
	return c.Descriptions[0]
}

func (c *GeneratedContent) IsEmpty() bool {
	if c == nil {
		return true
	}

	return strings.TrimSpace(c.Headline()) == "" ||
		strings.TrimSpace(c.PrimaryText()) == "" ||
		strings.TrimSpace(c.Description()) == ""
}

// HasPlaceholderImage indica se a referência de imagem é uma URL,
// caso em que o creative usa o campo de imagem por URL em vez de hash
func (c *GeneratedContent) HasPlaceholderImage() bool {
	ref := c.ImageReference
	if ref == "" {
		return true
	}
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}
