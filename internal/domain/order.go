package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order representa um pedido registrado para uma loja. Somente pedidos com
// IsPaid = true participam do cálculo de receita.
type Order struct {
	ID          string       `json:"id"`
	StoreID     string       `json:"store_id"`
	UserID      int          `json:"user_id"`
	OrderNumber string       `json:"order_number"`
	IsPaid      bool         `json:"is_paid"`
	CreatedAt   time.Time    `json:"created_at"`
	Items       []*OrderItem `json:"items"`
}

// OrderItem referencia um produto. Cada item contribui com exatamente uma
// unidade do preço do produto — não existe multiplicador de quantidade no
// modelo de pedidos.
type OrderItem struct {
	ID      string   `json:"id"`
	OrderID string   `json:"order_id"`
	Product *Product `json:"product"`
}

// Product é somente leitura para o lado de consulta; o preço é um valor
// decimal exato e nunca deve ser convertido para float antes da soma.
type Product struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// ItemsTotal soma os preços dos itens do pedido em aritmética decimal.
func (o *Order) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		if item == nil || item.Product == nil {
			continue
		}
		total = total.Add(item.Product.Price)
	}
	return total
}

// CheckoutRequest é o corpo aceito pelo endpoint de checkout.
type CheckoutRequest struct {
	ProductIDs []string `json:"product_ids"`
}
