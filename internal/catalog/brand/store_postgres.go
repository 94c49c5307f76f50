// Copyright (c) 2026 Giftwell. All rights reserved.
// Author: dev@giftwell.app

package brand

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

func (repository *PostgresRepository) ListBrands(context context.Context) ([]*Brand, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC;
	`,
		schema.CatalogBrand.ID,
		schema.CatalogBrand.Name,
		schema.CatalogBrand.Slug,
		schema.CatalogBrand.Est,
		schema.CatalogBrand.Table,
		schema.CatalogBrand.Name,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "Brand")
	}
	defer rows.Close()

	var brands []*Brand
	for rows.Next() {
		b := &Brand{}
		if err := rows.Scan(&b.ID, &b.Name, &b.Slug, &b.Est); err != nil {
			return nil, dberr.Wrap(err, "Brand")
		}
		brands = append(brands, b)
	}

	return brands, nil
}

func (repository *PostgresRepository) GetBrandByID(context context.Context, id int) (*Brand, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		WHERE %s = $1;
	`,
		schema.CatalogBrand.ID,
		schema.CatalogBrand.Name,
		schema.CatalogBrand.Slug,
		schema.CatalogBrand.Est,
		schema.CatalogBrand.Table,
		schema.CatalogBrand.ID,
	)

	b := &Brand{}
	err := repository.db.QueryRow(context, query, id).Scan(&b.ID, &b.Name, &b.Slug, &b.Est)
	if err != nil {
		return nil, dberr.Wrap(err, "Brand")
	}

	return b, nil
}

func (repository *PostgresRepository) GetBrandBySlug(context context.Context, slug string) (*Brand, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		WHERE %s = $1;
	`,
		schema.CatalogBrand.ID,
		schema.CatalogBrand.Name,
		schema.CatalogBrand.Slug,
		schema.CatalogBrand.Est,
		schema.CatalogBrand.Table,
		schema.CatalogBrand.Slug,
	)

	b := &Brand{}
	err := repository.db.QueryRow(context, query, slug).Scan(&b.ID, &b.Name, &b.Slug, &b.Est)
	if err != nil {
		return nil, dberr.Wrap(err, "Brand")
	}

	return b, nil
}

func (repository *PostgresRepository) CreateBrand(context context.Context, brand *Brand) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		RETURNING %s;
	`,
		schema.CatalogBrand.Table,
		schema.CatalogBrand.Name,
		schema.CatalogBrand.Slug,
		schema.CatalogBrand.Est,
		schema.CatalogBrand.ID,
	)

	err := repository.db.QueryRow(context, query, brand.Name, brand.Slug, brand.Est).Scan(&brand.ID)
	if err != nil {
		return dberr.Wrap(err, "Brand")
	}

	return nil
}

func (repository *PostgresRepository) UpdateBrand(context context.Context, brand *Brand) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $1, %s = $2, %s = $3
		WHERE %s = $4;
	`,
		schema.CatalogBrand.Table,
		schema.CatalogBrand.Name,
		schema.CatalogBrand.Slug,
		schema.CatalogBrand.Est,
		schema.CatalogBrand.ID,
	)

	tag, err := repository.db.Exec(context, query, brand.Name, brand.Slug, brand.Est, brand.ID)
	if err != nil {
		return dberr.Wrap(err, "Brand")
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Brand")
	}

	return nil
}

func (repository *PostgresRepository) DeleteBrand(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1;`,
		schema.CatalogBrand.Table,
		schema.CatalogBrand.ID,
	)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		// Gifts hold a RESTRICT FK to brands.
		return dberr.Wrap(err, "Brand")
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Brand")
	}

	return nil
}

func (repository *PostgresRepository) CountEstablishedBy(context context.Context, year int) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s <= $1;`,
		schema.CatalogBrand.Table,
		schema.CatalogBrand.Est,
	)

	var count int
	if err := repository.db.QueryRow(context, query, year).Scan(&count); err != nil {
		return 0, dberr.Wrap(err, "Brand")
	}

	return count, nil
}
