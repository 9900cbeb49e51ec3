package revenue

import (
	"context"

	"github.com/vfg2006/store-revenue-api/internal/domain"
)

// Revenuer expõe as quatro consultas de receita de uma loja e o ponto de
// invalidação usado pelo caminho de escrita do checkout.
type Revenuer interface {
	// TotalRevenue soma todos os pedidos pagos da loja, sem janela de tempo.
	TotalRevenue(ctx context.Context, storeID string) (*domain.RevenueReport, error)

	// RevenueOnDate soma os pedidos pagos criados no dia calendário informado
	// (formato YYYY-MM-DD). Data inválida produz resposta vazia (nil, nil) —
	// não é erro. Esta consulta nunca passa pelo cache.
	RevenueOnDate(ctx context.Context, storeID, date string) (*domain.RevenueReport, error)

	// CurrentMonthRevenue soma os pedidos pagos do mês calendário corrente.
	CurrentMonthRevenue(ctx context.Context, storeID string) (*domain.RevenueReport, error)

	// PreviousMonthRevenue soma os pedidos pagos do mês calendário anterior.
	PreviousMonthRevenue(ctx context.Context, storeID string) (*domain.RevenueReport, error)

	// InvalidateStore remove as chaves de receita da loja do cache; chamado
	// quando um pedido transiciona para pago.
	InvalidateStore(ctx context.Context, storeID string) error
}
