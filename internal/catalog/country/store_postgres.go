// Copyright (c) 2026 Giftwell. All rights reserved.
// Author: dev@giftwell.app

package country

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

func (repository *PostgresRepository) ListCountries(context context.Context) ([]*Country, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s
		ORDER BY %s ASC;
	`,
		schema.CatalogCountry.ID,
		schema.CatalogCountry.Name,
		schema.CatalogCountry.Table,
		schema.CatalogCountry.Name,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "Country")
	}
	defer rows.Close()

	var countries []*Country
	for rows.Next() {
		c := &Country{}
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, dberr.Wrap(err, "Country")
		}
		countries = append(countries, c)
	}

	return countries, nil
}

func (repository *PostgresRepository) GetCountryByID(context context.Context, id int) (*Country, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s
		WHERE %s = $1;
	`,
		schema.CatalogCountry.ID,
		schema.CatalogCountry.Name,
		schema.CatalogCountry.Table,
		schema.CatalogCountry.ID,
	)

	c := &Country{}
	err := repository.db.QueryRow(context, query, id).Scan(&c.ID, &c.Name)
	if err != nil {
		return nil, dberr.Wrap(err, "Country")
	}

	return c, nil
}

func (repository *PostgresRepository) CreateCountry(context context.Context, country *Country) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1)
		RETURNING %s;
	`,
		schema.CatalogCountry.Table,
		schema.CatalogCountry.Name,
		schema.CatalogCountry.ID,
	)

	err := repository.db.QueryRow(context, query, country.Name).Scan(&country.ID)
	if err != nil {
		return dberr.Wrap(err, "Country")
	}

	return nil
}

func (repository *PostgresRepository) DeleteCountry(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1;`,
		schema.CatalogCountry.Table,
		schema.CatalogCountry.ID,
	)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		// RESTRICT foreign keys on catalog.gift reject deletes of referenced rows.
		return dberr.Wrap(err, "Country")
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Country")
	}

	return nil
}
