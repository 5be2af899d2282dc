package metadomain

// CreateResourceResponse é o corpo retornado pela Graph API ao criar
// qualquer recurso da hierarquia de anúncios
type CreateResourceResponse struct {
	ID string `json:"id"`
}
