// Package category implements the Category repository using PostgreSQL.
package category

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/vocab-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vocab-backend/internal/domain"
)

// Repo provides category persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new category repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const categoryColumns = `id, name, color, description, created_at`

const listSQL = `
SELECT ` + categoryColumns + `
FROM categories
ORDER BY name`

const getByIDSQL = `
SELECT ` + categoryColumns + `
FROM categories
WHERE id = $1`

const createSQL = `
INSERT INTO categories (name, color, description)
VALUES ($1, $2, $3)
RETURNING ` + categoryColumns

const deleteSQL = `DELETE FROM categories WHERE id = $1`

// List returns all categories ordered by name.
func (r *Repo) List(ctx context.Context) ([]domain.Category, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := querier.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := make([]domain.Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("category rows: %w", err)
	}

	return categories, nil
}

// GetByID returns a category by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	c, err := scanCategory(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "category", id)
	}

	return c, nil
}

// Create inserts a category. Returns domain.ErrAlreadyExists on a duplicate name.
func (r *Repo) Create(ctx context.Context, name string, color, description *string) (*domain.Category, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	c, err := scanCategory(querier.QueryRow(ctx, createSQL, name, color, description))
	if err != nil {
		return nil, postgres.MapError(err, "category", 0)
	}

	return c, nil
}

// Update applies a partial update.
func (r *Repo) Update(ctx context.Context, id int64, u domain.CategoryUpdate) (*domain.Category, error) {
	q := psql.Update("categories")

	if u.Name != nil {
		q = q.Set("name", *u.Name)
	}
	if u.Color != nil {
		q = q.Set("color", *u.Color)
	}
	if u.Description != nil {
		q = q.Set("description", *u.Description)
	}

	sql, args, err := q.
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + categoryColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update category query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.db)

	c, err := scanCategory(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "category", id)
	}

	return c, nil
}

// Delete removes a category. Words in it keep existing with no category.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := querier.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "category", id)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("category %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var c domain.Category
	if err := row.Scan(&c.ID, &c.Name, &c.Color, &c.Description, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
