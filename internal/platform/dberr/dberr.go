// Copyright (c) 2026 Giftwell. All rights reserved.
// Author: dev@giftwell.app

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
//
// # SQLSTATE Classification
//
// The registry leans on PostgreSQL constraints for its integrity rules:
// unique indexes back the duplicate-name/duplicate-ref checks, and RESTRICT
// foreign keys back the delete protection. This package translates the
// corresponding SQLSTATEs into client-safe [apperr.AppError] values so that
// repositories never leak pg internals upward.
package dberr

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/giftwell/giftwell/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// The resource name is used in client-facing messages for not-found, duplicate,
// and in-use classifications (e.g. "Brand is still referenced...").
func Wrap(err error, resource string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource)
	}

	// 2. Constraint violation mapping via SQLSTATE
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return apperr.Conflict(resource + " already exists")
		case pgerrcode.ForeignKeyViolation, pgerrcode.RestrictViolation:
			return apperr.InUse(resource)
		case pgerrcode.NotNullViolation, pgerrcode.CheckViolation:
			return apperr.ValidationError(resource + " violates a data constraint")
		}
	}

	// 3. Unknown query errors become Internal Server Errors
	return apperr.Internal(err)
}

// IsUniqueViolation reports whether err is a PostgreSQL unique-constraint violation.
//
// Services use this when they need to distinguish a duplicate from other
// storage failures without re-querying.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// IsRestrictViolation reports whether err is a PostgreSQL foreign-key or
// restrict violation (an attempted delete of a still-referenced row).
func IsRestrictViolation(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgerrcode.ForeignKeyViolation || pgErr.Code == pgerrcode.RestrictViolation
}
