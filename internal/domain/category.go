package domain

import "time"

// Category pertence a uma loja; Gender é opcional e usado apenas como filtro
// de listagem no lado do cliente.
type Category struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"store_id"`
	Name      string    `json:"name"`
	Gender    *string   `json:"gender,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryFilter restringe a listagem de categorias de uma loja.
type CategoryFilter struct {
	Gender *string
}

// CategoryRequest é o corpo aceito na criação e atualização de categorias.
type CategoryRequest struct {
	Name   string  `json:"name"`
	Gender *string `json:"gender,omitempty"`
}
