package utils

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// Cliente compartilhado para as chamadas GET simples à Graph API
var httpClient = &http.Client{Timeout: 30 * time.Second}

// MakeRequest faz um GET e retorna o corpo da resposta.
// Qualquer status diferente de 200 vira erro com o prefixo "Error on Request",
// que o integrador da Meta usa para decidir se renova o token.
func MakeRequest(url string) ([]byte, error) {
	resp, err := httpClient.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Error on Request: %s status: %s", url, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return data, nil
}
