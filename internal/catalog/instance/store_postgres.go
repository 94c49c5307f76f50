// Copyright (c) 2026 Giftwell. All rights reserved.
// Author: dev@giftwell.app

package instance

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/giftwell/giftwell/internal/platform/apperr"
	"github.com/giftwell/giftwell/internal/platform/database/schema"
	"github.com/giftwell/giftwell/internal/platform/dberr"
	"github.com/giftwell/giftwell/pkg/pagination"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// selectInstanceColumns is the shared column list: instance row plus the
// gift name.
func selectInstanceColumns() string {
	return fmt.Sprintf(`
		SELECT
			i.%s, i.%s, g.%s, i.%s, i.%s, i.%s, i.%s, i.%s, i.%s, i.%s,
			i.%s, i.%s
	`,
		schema.CatalogGiftInstance.ID,
		schema.CatalogGiftInstance.GiftID,
		schema.CatalogGift.Name,
		schema.CatalogGiftInstance.EventDate,
		schema.CatalogGiftInstance.Size,
		schema.CatalogGiftInstance.Colour,
		schema.CatalogGiftInstance.Price,
		schema.CatalogGiftInstance.URL,
		schema.CatalogGiftInstance.RequesterID,
		schema.CatalogGiftInstance.Status,
		schema.CatalogGiftInstance.CreatedAt,
		schema.CatalogGiftInstance.UpdatedAt,
	)
}

func selectInstanceFrom() string {
	return fmt.Sprintf(`
		FROM %s i
		JOIN %s g ON g.%s = i.%s
	`,
		schema.CatalogGiftInstance.Table,
		schema.CatalogGift.Table,
		schema.CatalogGift.ID,
		schema.CatalogGiftInstance.GiftID,
	)
}

func selectInstance() string {
	return selectInstanceColumns() + selectInstanceFrom()
}

func scanInstance(row pgx.Row) (*Instance, error) {
	i := &Instance{}
	err := row.Scan(
		&i.ID, &i.GiftID, &i.GiftName, &i.EventDate, &i.Size, &i.Colour,
		&i.Price, &i.URL, &i.RequesterID, &i.Status, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return i, nil
}

func (repository *PostgresRepository) ListInstances(context context.Context, params pagination.Params) ([]*Instance, int, error) {
	// The window count rides along with the page so total and rows come
	// from one snapshot.
	query := fmt.Sprintf(`%s, COUNT(*) OVER () %s ORDER BY i.%s ASC LIMIT $1 OFFSET $2;`,
		selectInstanceColumns(), selectInstanceFrom(), schema.CatalogGiftInstance.CreatedAt)

	rows, err := repository.db.Query(context, query, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, dberr.Wrap(err, "Gift instance")
	}
	defer rows.Close()

	var instances []*Instance
	var total int
	for rows.Next() {
		i := &Instance{}
		err := rows.Scan(
			&i.ID, &i.GiftID, &i.GiftName, &i.EventDate, &i.Size, &i.Colour,
			&i.Price, &i.URL, &i.RequesterID, &i.Status, &i.CreatedAt, &i.UpdatedAt,
			&total,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "Gift instance")
		}
		instances = append(instances, i)
	}

	// An offset past the last row yields no rows and no window count.
	if len(instances) == 0 {
		total, err = repository.CountInstances(context)
		if err != nil {
			return nil, 0, err
		}
	}

	return instances, total, nil
}

func (repository *PostgresRepository) ListByRequester(context context.Context, userID string) ([]*Instance, error) {
	query := fmt.Sprintf(`%s WHERE i.%s = $1 ORDER BY i.%s ASC NULLS LAST, i.%s ASC;`,
		selectInstance(),
		schema.CatalogGiftInstance.RequesterID,
		schema.CatalogGiftInstance.EventDate,
		schema.CatalogGiftInstance.CreatedAt,
	)

	rows, err := repository.db.Query(context, query, userID)
	if err != nil {
		return nil, dberr.Wrap(err, "Gift instance")
	}
	defer rows.Close()

	var instances []*Instance
	for rows.Next() {
		i, err := scanInstance(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "Gift instance")
		}
		instances = append(instances, i)
	}

	return instances, nil
}

func (repository *PostgresRepository) GetInstanceByID(context context.Context, id string) (*Instance, error) {
	query := fmt.Sprintf(`%s WHERE i.%s = $1;`,
		selectInstance(), schema.CatalogGiftInstance.ID)

	i, err := scanInstance(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "Gift instance")
	}

	return i, nil
}

func (repository *PostgresRepository) CreateInstance(context context.Context, instance *Instance) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s, %s;
	`,
		schema.CatalogGiftInstance.Table,
		schema.CatalogGiftInstance.ID,
		schema.CatalogGiftInstance.GiftID,
		schema.CatalogGiftInstance.EventDate,
		schema.CatalogGiftInstance.Size,
		schema.CatalogGiftInstance.Colour,
		schema.CatalogGiftInstance.Price,
		schema.CatalogGiftInstance.URL,
		schema.CatalogGiftInstance.Status,
		schema.CatalogGiftInstance.CreatedAt,
		schema.CatalogGiftInstance.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		instance.ID, instance.GiftID, instance.EventDate, instance.Size,
		instance.Colour, instance.Price, instance.URL, instance.Status,
	).Scan(&instance.CreatedAt, &instance.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "Gift instance")
	}

	return nil
}

func (repository *PostgresRepository) ClaimInstance(context context.Context, instance *Instance, userID string) (bool, error) {
	// The requester guard makes the claim atomic: an instance held by
	// another member is left untouched and the caller sees zero rows.
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $1, %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = NOW()
		WHERE %s = $7 AND (%s IS NULL OR %s = $1);
	`,
		schema.CatalogGiftInstance.Table,
		schema.CatalogGiftInstance.RequesterID,
		schema.CatalogGiftInstance.EventDate,
		schema.CatalogGiftInstance.Size,
		schema.CatalogGiftInstance.Colour,
		schema.CatalogGiftInstance.Price,
		schema.CatalogGiftInstance.URL,
		schema.CatalogGiftInstance.UpdatedAt,
		schema.CatalogGiftInstance.ID,
		schema.CatalogGiftInstance.RequesterID,
		schema.CatalogGiftInstance.RequesterID,
	)

	tag, err := repository.db.Exec(context, query,
		userID, instance.EventDate, instance.Size, instance.Colour,
		instance.Price, instance.URL, instance.ID,
	)
	if err != nil {
		return false, dberr.Wrap(err, "Gift instance")
	}

	return tag.RowsAffected() > 0, nil
}

func (repository *PostgresRepository) ReleaseInstance(context context.Context, id string, userID string) (bool, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = NULL, %s = NOW()
		WHERE %s = $1 AND %s = $2;
	`,
		schema.CatalogGiftInstance.Table,
		schema.CatalogGiftInstance.RequesterID,
		schema.CatalogGiftInstance.UpdatedAt,
		schema.CatalogGiftInstance.ID,
		schema.CatalogGiftInstance.RequesterID,
	)

	tag, err := repository.db.Exec(context, query, id, userID)
	if err != nil {
		return false, dberr.Wrap(err, "Gift instance")
	}

	return tag.RowsAffected() > 0, nil
}

func (repository *PostgresRepository) SetStatus(context context.Context, id string, status string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $1, %s = NOW()
		WHERE %s = $2;
	`,
		schema.CatalogGiftInstance.Table,
		schema.CatalogGiftInstance.Status,
		schema.CatalogGiftInstance.UpdatedAt,
		schema.CatalogGiftInstance.ID,
	)

	tag, err := repository.db.Exec(context, query, status, id)
	if err != nil {
		return dberr.Wrap(err, "Gift instance")
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Gift instance")
	}

	return nil
}

func (repository *PostgresRepository) DeleteInstance(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1;`,
		schema.CatalogGiftInstance.Table,
		schema.CatalogGiftInstance.ID,
	)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "Gift instance")
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Gift instance")
	}

	return nil
}

func (repository *PostgresRepository) CountInstances(context context.Context) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s;`, schema.CatalogGiftInstance.Table)

	var count int
	if err := repository.db.QueryRow(context, query).Scan(&count); err != nil {
		return 0, dberr.Wrap(err, "Gift instance")
	}

	return count, nil
}

func (repository *PostgresRepository) CountByStatus(context context.Context, status string) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = $1;`,
		schema.CatalogGiftInstance.Table,
		schema.CatalogGiftInstance.Status,
	)

	var count int
	if err := repository.db.QueryRow(context, query, status).Scan(&count); err != nil {
		return 0, dberr.Wrap(err, "Gift instance")
	}

	return count, nil
}
