// Copyright (c) 2026 Giftwell. All rights reserved.
// Author: dev@giftwell.app

package gift

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

// selectGift is the shared projection: gift row plus resolved brand name,
// country name and aggregated category names.
func selectGift() string {
	return fmt.Sprintf(`
		SELECT
			g.%s, g.%s, g.%s, b.%s, g.%s, g.%s, g.%s, co.%s,
			COALESCE(ARRAY_AGG(c.%s ORDER BY c.%s) FILTER (WHERE c.%s IS NOT NULL), '{}'),
			g.%s, g.%s
		FROM %s g
		LEFT JOIN %s b ON b.%s = g.%s
		LEFT JOIN %s co ON co.%s = g.%s
		LEFT JOIN %s gc ON gc.%s = g.%s
		LEFT JOIN %s c ON c.%s = gc.%s
	`,
		schema.CatalogGift.ID,
		schema.CatalogGift.Name,
		schema.CatalogGift.BrandID,
		schema.CatalogBrand.Name,
		schema.CatalogGift.Description,
		schema.CatalogGift.Ref,
		schema.CatalogGift.MadeInID,
		schema.CatalogCountry.Name,
		schema.CatalogCategory.Name,
		schema.CatalogCategory.Name,
		schema.CatalogCategory.ID,
		schema.CatalogGift.CreatedAt,
		schema.CatalogGift.UpdatedAt,
		schema.CatalogGift.Table,
		schema.CatalogBrand.Table,
		schema.CatalogBrand.ID,
		schema.CatalogGift.BrandID,
		schema.CatalogCountry.Table,
		schema.CatalogCountry.ID,
		schema.CatalogGift.MadeInID,
		schema.CatalogGiftCategory.Table,
		schema.CatalogGiftCategory.GiftID,
		schema.CatalogGift.ID,
		schema.CatalogCategory.Table,
		schema.CatalogCategory.ID,
		schema.CatalogGiftCategory.CategoryID,
	)
}

// groupGift closes the aggregation over the joined projection.
func groupGift() string {
	return fmt.Sprintf(`GROUP BY g.%s, b.%s, co.%s`,
		schema.CatalogGift.ID,
		schema.CatalogBrand.Name,
		schema.CatalogCountry.Name,
	)
}

func scanGift(row pgx.Row) (*Gift, error) {
	g := &Gift{}
	err := row.Scan(
		&g.ID, &g.Name, &g.BrandID, &g.BrandName, &g.Description, &g.Ref,
		&g.MadeInID, &g.MadeInName, &g.Categories, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// categoryFilter builds an EXISTS clause matching gifts tagged with any of
// the given categories. The placeholder index is supplied by the caller.
func categoryFilter(placeholder int) string {
	return fmt.Sprintf(`EXISTS (
		SELECT 1 FROM %s tag
		WHERE tag.%s = g.%s AND tag.%s = ANY($%d)
	)`,
		schema.CatalogGiftCategory.Table,
		schema.CatalogGiftCategory.GiftID,
		schema.CatalogGift.ID,
		schema.CatalogGiftCategory.CategoryID,
		placeholder,
	)
}

func (repository *PostgresRepository) ListGifts(context context.Context, params pagination.Params, categoryIDs []int) ([]*Gift, int, error) {
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s g;`, schema.CatalogGift.Table)
	countArgs := []any{}
	if len(categoryIDs) > 0 {
		countQuery = fmt.Sprintf(`SELECT COUNT(*) FROM %s g WHERE %s;`,
			schema.CatalogGift.Table, categoryFilter(1))
		countArgs = append(countArgs, categoryIDs)
	}

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "Gift")
	}

	query := fmt.Sprintf(`%s %s ORDER BY g.%s ASC LIMIT $1 OFFSET $2;`,
		selectGift(), groupGift(), schema.CatalogGift.ID)
	args := []any{params.Limit, params.Offset()}
	if len(categoryIDs) > 0 {
		query = fmt.Sprintf(`%s WHERE %s %s ORDER BY g.%s ASC LIMIT $1 OFFSET $2;`,
			selectGift(), categoryFilter(3), groupGift(), schema.CatalogGift.ID)
		args = append(args, categoryIDs)
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "Gift")
	}
	defer rows.Close()

	var gifts []*Gift
	for rows.Next() {
		g, err := scanGift(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "Gift")
		}
		gifts = append(gifts, g)
	}

	return gifts, total, nil
}

func (repository *PostgresRepository) GetGiftByID(context context.Context, id int) (*Gift, error) {
	query := fmt.Sprintf(`%s WHERE g.%s = $1 %s;`,
		selectGift(), schema.CatalogGift.ID, groupGift())

	g, err := scanGift(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "Gift")
	}

	return g, nil
}

func (repository *PostgresRepository) CreateGift(context context.Context, gift *Gift, categoryIDs []int) error {
	tx, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "Gift")
	}
	defer tx.Rollback(context)

	insert := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s, %s, %s;
	`,
		schema.CatalogGift.Table,
		schema.CatalogGift.Name,
		schema.CatalogGift.BrandID,
		schema.CatalogGift.Description,
		schema.CatalogGift.Ref,
		schema.CatalogGift.MadeInID,
		schema.CatalogGift.ID,
		schema.CatalogGift.CreatedAt,
		schema.CatalogGift.UpdatedAt,
	)

	err = tx.QueryRow(context, insert,
		gift.Name, gift.BrandID, gift.Description, gift.Ref, gift.MadeInID,
	).Scan(&gift.ID, &gift.CreatedAt, &gift.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "Gift")
	}

	if err := insertCategories(context, tx, gift.ID, categoryIDs); err != nil {
		return err
	}

	if err := tx.Commit(context); err != nil {
		return dberr.Wrap(err, "Gift")
	}

	return nil
}

func (repository *PostgresRepository) UpdateGift(context context.Context, gift *Gift, categoryIDs []int) error {
	tx, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "Gift")
	}
	defer tx.Rollback(context)

	update := fmt.Sprintf(`
		UPDATE %s
		SET %s = $1, %s = $2, %s = $3, %s = $4, %s = $5, %s = NOW()
		WHERE %s = $6;
	`,
		schema.CatalogGift.Table,
		schema.CatalogGift.Name,
		schema.CatalogGift.BrandID,
		schema.CatalogGift.Description,
		schema.CatalogGift.Ref,
		schema.CatalogGift.MadeInID,
		schema.CatalogGift.UpdatedAt,
		schema.CatalogGift.ID,
	)

	tag, err := tx.Exec(context, update,
		gift.Name, gift.BrandID, gift.Description, gift.Ref, gift.MadeInID, gift.ID,
	)
	if err != nil {
		return dberr.Wrap(err, "Gift")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Gift")
	}

	// A nil slice means the tag set was not part of the update.
	if categoryIDs != nil {
		clear := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1;`,
			schema.CatalogGiftCategory.Table,
			schema.CatalogGiftCategory.GiftID,
		)
		if _, err := tx.Exec(context, clear, gift.ID); err != nil {
			return dberr.Wrap(err, "Gift")
		}

		if err := insertCategories(context, tx, gift.ID, categoryIDs); err != nil {
			return err
		}
	}

	if err := tx.Commit(context); err != nil {
		return dberr.Wrap(err, "Gift")
	}

	return nil
}

func insertCategories(context context.Context, tx pgx.Tx, giftID int, categoryIDs []int) error {
	if len(categoryIDs) == 0 {
		return nil
	}

	insert := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		SELECT $1, UNNEST($2::int[])
		ON CONFLICT DO NOTHING;
	`,
		schema.CatalogGiftCategory.Table,
		schema.CatalogGiftCategory.GiftID,
		schema.CatalogGiftCategory.CategoryID,
	)

	if _, err := tx.Exec(context, insert, giftID, categoryIDs); err != nil {
		return dberr.Wrap(err, "Category")
	}

	return nil
}

func (repository *PostgresRepository) DeleteGift(context context.Context, id int) error {
	// Junction rows cascade with the gift; the RESTRICT foreign key on
	// instances rejects the delete while copies exist.
	del := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1;`,
		schema.CatalogGift.Table,
		schema.CatalogGift.ID,
	)

	tag, err := repository.db.Exec(context, del, id)
	if err != nil {
		return dberr.Wrap(err, "Gift")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Gift")
	}

	return nil
}

func (repository *PostgresRepository) CategoriesOf(context context.Context, giftID int) ([]string, error) {
	query := fmt.Sprintf(`
		SELECT c.%s
		FROM %s c
		JOIN %s gc ON gc.%s = c.%s
		WHERE gc.%s = $1
		ORDER BY c.%s ASC;
	`,
		schema.CatalogCategory.Name,
		schema.CatalogCategory.Table,
		schema.CatalogGiftCategory.Table,
		schema.CatalogGiftCategory.CategoryID,
		schema.CatalogCategory.ID,
		schema.CatalogGiftCategory.GiftID,
		schema.CatalogCategory.Name,
	)

	rows, err := repository.db.Query(context, query, giftID)
	if err != nil {
		return nil, dberr.Wrap(err, "Category")
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, dberr.Wrap(err, "Category")
		}
		names = append(names, name)
	}

	return names, nil
}

func (repository *PostgresRepository) CountGifts(context context.Context) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s;`, schema.CatalogGift.Table)

	var count int
	if err := repository.db.QueryRow(context, query).Scan(&count); err != nil {
		return 0, dberr.Wrap(err, "Gift")
	}

	return count, nil
}

func (repository *PostgresRepository) CountDescriptionContains(context context.Context, needle string) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s ILIKE '%%' || $1 || '%%';`,
		schema.CatalogGift.Table,
		schema.CatalogGift.Description,
	)

	var count int
	if err := repository.db.QueryRow(context, query, needle).Scan(&count); err != nil {
		return 0, dberr.Wrap(err, "Gift")
	}

	return count, nil
}
