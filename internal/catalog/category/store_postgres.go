// Copyright (c) 2026 Giftwell. All rights reserved.
// Author: dev@giftwell.app

package category

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/giftwell/giftwell/internal/platform/apperr"
	"github.com/giftwell/giftwell/internal/platform/database/schema"
	"github.com/giftwell/giftwell/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListCategories(context context.Context) ([]*Category, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s
		FROM %s
		ORDER BY %s ASC;
	`,
		schema.CatalogCategory.ID,
		schema.CatalogCategory.Name,
		schema.CatalogCategory.Slug,
		schema.CatalogCategory.Table,
		schema.CatalogCategory.Name,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "Category")
	}
	defer rows.Close()

	var categories []*Category
	for rows.Next() {
		c := &Category{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug); err != nil {
			return nil, dberr.Wrap(err, "Category")
		}
		categories = append(categories, c)
	}

	return categories, nil
}

func (repository *PostgresRepository) GetCategoryByID(context context.Context, id int) (*Category, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s
		FROM %s
		WHERE %s = $1;
	`,
		schema.CatalogCategory.ID,
		schema.CatalogCategory.Name,
		schema.CatalogCategory.Slug,
		schema.CatalogCategory.Table,
		schema.CatalogCategory.ID,
	)

	c := &Category{}
	err := repository.db.QueryRow(context, query, id).Scan(&c.ID, &c.Name, &c.Slug)
	if err != nil {
		return nil, dberr.Wrap(err, "Category")
	}

	return c, nil
}

func (repository *PostgresRepository) GetCategoryBySlug(context context.Context, slug string) (*Category, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s
		FROM %s
		WHERE %s = $1;
	`,
		schema.CatalogCategory.ID,
		schema.CatalogCategory.Name,
		schema.CatalogCategory.Slug,
		schema.CatalogCategory.Table,
		schema.CatalogCategory.Slug,
	)

	c := &Category{}
	err := repository.db.QueryRow(context, query, slug).Scan(&c.ID, &c.Name, &c.Slug)
	if err != nil {
		return nil, dberr.Wrap(err, "Category")
	}

	return c, nil
}

func (repository *PostgresRepository) CreateCategory(context context.Context, category *Category) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES ($1, $2)
		RETURNING %s;
	`,
		schema.CatalogCategory.Table,
		schema.CatalogCategory.Name,
		schema.CatalogCategory.Slug,
		schema.CatalogCategory.ID,
	)

	err := repository.db.QueryRow(context, query, category.Name, category.Slug).Scan(&category.ID)
	if err != nil {
		return dberr.Wrap(err, "Category")
	}

	return nil
}

func (repository *PostgresRepository) DeleteCategory(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1;`,
		schema.CatalogCategory.Table,
		schema.CatalogCategory.ID,
	)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		// RESTRICT on the gift_category junction rejects deletes of used tags.
		return dberr.Wrap(err, "Category")
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Category")
	}

	return nil
}
