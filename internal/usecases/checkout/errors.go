package checkout

import "github.com/pkg/errors"

var (
	// ErrEmptyOrder indica tentativa de checkout sem nenhum produto.
	ErrEmptyOrder = errors.New("o pedido precisa de ao menos um produto")
	// ErrProductNotFound indica que algum produto do pedido não existe.
	ErrProductNotFound = errors.New("produto não encontrado")
	// ErrMissingStoreID indica requisição sem identificador de loja.
	ErrMissingStoreID = errors.New("identificador da loja é obrigatório")
)
