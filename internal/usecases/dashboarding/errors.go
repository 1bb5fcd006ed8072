package dashboarding

import "errors"

// WarningEmptyResult é o código do aviso para filtros sem linhas
const WarningEmptyResult = "EMPTY_RESULT"

var (
	// ErrDatasetUnavailable indica que o dataset não foi carregado
	ErrDatasetUnavailable = errors.New("dataset indisponível")

	// ErrEmptyResult indica que a combinação de filtros não retornou linhas. Não é fatal.
	ErrEmptyResult = errors.New("nenhuma linha corresponde aos filtros selecionados")
)
