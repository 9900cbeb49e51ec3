package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/store-revenue-api/infrastructure/database/postgres"
	"github.com/vfg2006/store-revenue-api/internal/domain"
)

const (
	productsTable = "products p"
)

type ProductRepository interface {
	GetByIDs(ctx context.Context, ids []string) ([]*domain.Product, error)
}

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

func (r *productRepository) GetByIDs(ctx context.Context, ids []string) ([]*domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := squirrel.
		Select("p.id", "p.name", "p.price").
		From(productsTable).
		Where(squirrel.Eq{"p.id": ids}).
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

	products := make([]*domain.Product, 0, len(ids))
	for rows.Next() {
		var (
			product  domain.Product
			priceRaw string
		)

		if err := rows.Scan(&product.ID, &product.Name, &priceRaw); err != nil {
			return nil, fmt.Errorf("erro ao escanear produto: %w", err)
		}

		price, err := decimal.NewFromString(priceRaw)
		if err != nil {
			return nil, fmt.Errorf("erro ao converter preço decimal %q: %w", priceRaw, err)
		}
		product.Price = price

		products = append(products, &product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return products, nil
}
