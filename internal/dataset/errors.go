package dataset

import (
	"errors"
	"fmt"
)

var (
	ErrUnreadable     = errors.New("dataset inacessível ou ilegível")
	ErrMissingColumns = errors.New("colunas obrigatórias ausentes")
	ErrNoRows         = errors.New("dataset sem linhas de dados")
	ErrInvalidValue   = errors.New("valor inválido em coluna obrigatória")
)

// LoadError indica que o dataset não pôde ser carregado. É fatal na inicialização.
type LoadError struct {
	Source string // Descrição da origem (arquivo, tabela)
	Err    error  // Erro base
}

// Error implementa a interface error
func (e *LoadError) Error() string {
	return fmt.Sprintf("falha ao carregar dataset %s: %v", e.Source, e.Err)
}

// Unwrap retorna o erro subjacente
func (e *LoadError) Unwrap() error {
	return e.Err
}

// IsLoadError verifica se err (ou algum erro encadeado) é um LoadError
func IsLoadError(err error) bool {
	var loadErr *LoadError
	return errors.As(err, &loadErr)
}
