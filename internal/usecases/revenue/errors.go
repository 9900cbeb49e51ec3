package revenue

import "github.com/pkg/errors"

var (
	// ErrMissingStoreID indica consulta sem identificador de loja.
	ErrMissingStoreID = errors.New("identificador de loja é obrigatório")

	// ErrComputationFailed indica que a fonte de pedidos falhou. Distingue
	// "consulta falhou" de "zero pedidos" (que é um total zero válido).
	ErrComputationFailed = errors.New("falha ao computar receita")
)
