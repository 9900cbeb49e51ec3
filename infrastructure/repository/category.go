package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/store-revenue-api/infrastructure/database/postgres"
	"github.com/vfg2006/store-revenue-api/internal/domain"
)

const (
	categoriesTable = "categories c"
)

type CategoryRepository interface {
	ListByStore(ctx context.Context, storeID string, filter *domain.CategoryFilter) ([]*domain.Category, error)
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, category *domain.Category) error
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id string) error
}

type categoryRepository struct {
	conn *postgres.Connection
}

func NewCategoryRepository(conn *postgres.Connection) CategoryRepository {
	return &categoryRepository{
		conn: conn,
	}
}

func (r *categoryRepository) ListByStore(ctx context.Context, storeID string, filter *domain.CategoryFilter) ([]*domain.Category, error) {
	builder := squirrel.
		Select("c.id", "c.store_id", "c.name", "c.gender", "c.created_at", "c.updated_at").
		From(categoriesTable).
		Where(squirrel.Eq{"c.store_id": storeID})

	if filter != nil && filter.Gender != nil {
		builder = builder.Where(squirrel.Eq{"c.gender": *filter.Gender})
	}

	query, args, err := builder.
		OrderBy("c.name ASC").
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

	categories := make([]*domain.Category, 0)
	for rows.Next() {
		category, err := r.scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear categoria: %w", err)
		}
		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return categories, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	query, args, err := squirrel.
		Select("c.id", "c.store_id", "c.name", "c.gender", "c.created_at", "c.updated_at").
		From(categoriesTable).
		Where(squirrel.Eq{"c.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(ctx, query, args...)

	category := &domain.Category{}
	var gender sql.NullString

	err = row.Scan(
		&category.ID,
		&category.StoreID,
		&category.Name,
		&gender,
		&category.CreatedAt,
		&category.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear categoria: %w", err)
	}

	if gender.Valid {
		category.Gender = &gender.String
	}

	return category, nil
}

func (r *categoryRepository) Create(ctx context.Context, category *domain.Category) error {
	query, args, err := squirrel.
		Insert("categories").
		Columns("id", "store_id", "name", "gender").
		Values(category.ID, category.StoreID, category.Name, category.Gender).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *categoryRepository) Update(ctx context.Context, category *domain.Category) error {
	query, args, err := squirrel.
		Update("categories").
		Set("name", category.Name).
		Set("gender", category.Gender).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": category.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	query, args, err := squirrel.
		Delete("categories").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *categoryRepository) scanCategory(rows *sql.Rows) (*domain.Category, error) {
	category := &domain.Category{}
	var gender sql.NullString

	err := rows.Scan(
		&category.ID,
		&category.StoreID,
		&category.Name,
		&gender,
		&category.CreatedAt,
		&category.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if gender.Valid {
		category.Gender = &gender.String
	}

	return category, nil
}
