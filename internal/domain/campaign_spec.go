package domain

// CampaignSpec é a união de brief + conteúdo gerado, validada antes de
// qualquer chamada remota. Nunca é mutada no meio do pipeline: cada
// etapa deriva um payload novo a partir do spec original mais os
// identificadores já acumulados
type CampaignSpec struct {
	Brief   CampaignBrief    `json:"brief"`
	Content GeneratedContent `json:"content"`
}

func NewCampaignSpec(brief CampaignBrief, content GeneratedContent) (*CampaignSpec, error) {
	spec := &CampaignSpec{
		Brief:   brief,
		Content: content,
	}

	if err := spec.Validate(); err != nil {
		return nil, err
	}

	return spec, nil
}

// Validate garante orçamento, janela de veiculação e conteúdo mínimos
// antes de o pipeline encostar na plataforma
func (s *CampaignSpec) Validate() error {
	if s.Brief.CampaignName == "" {
		return NewValidationError("nome da campanha é obrigatório")
	}

	if s.Brief.Budget.AmountCents <= 0 {
		return NewValidationError("orçamento deve ser maior que zero")
	}

	if !s.Brief.Schedule.EndTime.IsZero() && s.Brief.Schedule.EndTime.Before(s.Brief.Schedule.StartTime) {
		return NewValidationError("data final da veiculação é anterior à data inicial")
	}

	if s.Content.IsEmpty() {
		return NewValidationError("conteúdo gerado está vazio ou incompleto")
	}

	return nil
}
