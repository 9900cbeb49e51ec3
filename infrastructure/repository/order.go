package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/store-revenue-api/infrastructure/database/postgres"
	"github.com/vfg2006/store-revenue-api/internal/domain"
)

const (
	ordersTable = "orders o"
)

type OrderRepository interface {
	// FindPaidOrders retorna os pedidos pagos da loja, cada um com seus itens
	// e o preço do produto de cada item. Quando window é informada, filtra por
	// created_at dentro do intervalo fechado [Start, End].
	FindPaidOrders(ctx context.Context, storeID string, window *domain.TimeWindow) ([]*domain.Order, error)
	Create(ctx context.Context, order *domain.Order) error
	// MarkPaid marca o pedido como pago e retorna o store_id do pedido, para
	// que o chamador invalide as chaves de receita da loja.
	MarkPaid(ctx context.Context, orderID string) (string, error)
	// ListStoreIDs retorna os identificadores de loja com ao menos um pedido
	// pago; usado pelo aquecimento de cache.
	ListStoreIDs(ctx context.Context) ([]string, error)
}

type orderRepository struct {
	conn *postgres.Connection
}

func NewOrderRepository(conn *postgres.Connection) OrderRepository {
	return &orderRepository{
		conn: conn,
	}
}

func (r *orderRepository) FindPaidOrders(ctx context.Context, storeID string, window *domain.TimeWindow) ([]*domain.Order, error) {
	builder := squirrel.
		Select(
			"o.id", "o.store_id", "o.user_id", "o.order_number", "o.is_paid", "o.created_at",
			"oi.id", "p.id", "p.name", "p.price",
		).
		From(ordersTable).
		Join("order_items oi ON oi.order_id = o.id").
		Join("products p ON p.id = oi.product_id").
		Where(squirrel.Eq{"o.store_id": storeID, "o.is_paid": true})

	if window != nil {
		builder = builder.
			Where(squirrel.GtOrEq{"o.created_at": window.Start}).
			Where(squirrel.LtOrEq{"o.created_at": window.End})
	}

	query, args, err := builder.
		OrderBy("o.created_at ASC", "oi.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	byID := make(map[string]*domain.Order)
	orders := make([]*domain.Order, 0)

	for rows.Next() {
		var (
			order    domain.Order
			item     domain.OrderItem
			product  domain.Product
			priceRaw string
		)

		err := rows.Scan(
			&order.ID,
			&order.StoreID,
			&order.UserID,
			&order.OrderNumber,
			&order.IsPaid,
			&order.CreatedAt,
			&item.ID,
			&product.ID,
			&product.Name,
			&priceRaw,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear pedido: %w", err)
		}

		price, err := decimal.NewFromString(priceRaw)
		if err != nil {
			return nil, fmt.Errorf("erro ao converter preço decimal %q: %w", priceRaw, err)
		}
		product.Price = price

		current, ok := byID[order.ID]
		if !ok {
			current = &order
			byID[order.ID] = current
			orders = append(orders, current)
		}

		item.OrderID = current.ID
		item.Product = &product
		current.Items = append(current.Items, &item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return orders, nil
}

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		query, args, err := squirrel.
			Insert("orders").
			Columns("id", "store_id", "user_id", "order_number", "is_paid", "created_at").
			Values(order.ID, order.StoreID, order.UserID, order.OrderNumber, order.IsPaid, order.CreatedAt).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			if pqErr, ok := err.(*pq.Error); ok {
				return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
			}
			return fmt.Errorf("erro ao inserir pedido: %w", err)
		}

		for _, item := range order.Items {
			query, args, err := squirrel.
				Insert("order_items").
				Columns("id", "order_id", "product_id").
				Values(item.ID, order.ID, item.Product.ID).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("erro ao inserir item do pedido: %w", err)
			}
		}

		return nil
	})
}

func (r *orderRepository) MarkPaid(ctx context.Context, orderID string) (string, error) {
	query, args, err := squirrel.
		Update("orders").
		Set("is_paid", true).
		Where(squirrel.Eq{"id": orderID}).
		Suffix("RETURNING store_id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("erro ao construir a query: %w", err)
	}

	var storeID string
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&storeID); err != nil {
		if err == sql.ErrNoRows {
			return "", fmt.Errorf("pedido não encontrado: %s", orderID)
		}
		return "", fmt.Errorf("erro ao marcar pedido como pago: %w", err)
	}

	return storeID, nil
}

func (r *orderRepository) ListStoreIDs(ctx context.Context) ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT o.store_id").
		From(ordersTable).
		Where(squirrel.Eq{"o.is_paid": true}).
		OrderBy("o.store_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("erro ao escanear store_id: %w", err)
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return ids, nil
}
