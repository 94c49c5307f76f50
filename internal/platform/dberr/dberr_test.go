// Copyright (c) 2026 Giftwell. All rights reserved.
// Author: dev@giftwell.app

package dberr_test

import (
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giftwell/giftwell/internal/platform/apperr"
	"github.com/giftwell/giftwell/internal/platform/dberr"
)

/*
TestWrap verifies the SQLSTATE-to-AppError classification table.
*/
func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
		wantHTTP int
	}{
		{"no_rows", pgx.ErrNoRows, "NOT_FOUND", 404},
		{"unique_violation", &pgconn.PgError{Code: pgerrcode.UniqueViolation}, "CONFLICT", 409},
		{"foreign_key_violation", &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, "RESOURCE_IN_USE", 409},
		{"restrict_violation", &pgconn.PgError{Code: pgerrcode.RestrictViolation}, "RESOURCE_IN_USE", 409},
		{"not_null_violation", &pgconn.PgError{Code: pgerrcode.NotNullViolation}, "VALIDATION_ERROR", 400},
		{"check_violation", &pgconn.PgError{Code: pgerrcode.CheckViolation}, "VALIDATION_ERROR", 400},
		{"unknown_error", errors.New("connection refused"), "INTERNAL_ERROR", 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := dberr.Wrap(tt.err, "Brand")
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, tt.wantCode, ae.Code)
			assert.Equal(t, tt.wantHTTP, ae.HTTPStatus)
		})
	}
}

/*
TestWrap_Nil verifies that a nil error passes through untouched.
*/
func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "Brand"))
}

/*
TestWrap_ResourceInMessage verifies that the resource name reaches the
client-facing message.
*/
func TestWrap_ResourceInMessage(t *testing.T) {
	err := dberr.Wrap(pgx.ErrNoRows, "Gift")
	assert.Equal(t, "Gift not found", err.Error())

	err = dberr.Wrap(&pgconn.PgError{Code: pgerrcode.UniqueViolation}, "Category")
	assert.Equal(t, "Category already exists", err.Error())
}

/*
TestIsUniqueViolation checks the duplicate-key predicate.
*/
func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, dberr.IsUniqueViolation(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
	assert.False(t, dberr.IsUniqueViolation(&pgconn.PgError{Code: pgerrcode.CheckViolation}))
	assert.False(t, dberr.IsUniqueViolation(errors.New("plain")))
	assert.False(t, dberr.IsUniqueViolation(nil))
}

/*
TestIsRestrictViolation checks the still-referenced predicate.
*/
func TestIsRestrictViolation(t *testing.T) {
	assert.True(t, dberr.IsRestrictViolation(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}))
	assert.True(t, dberr.IsRestrictViolation(&pgconn.PgError{Code: pgerrcode.RestrictViolation}))
	assert.False(t, dberr.IsRestrictViolation(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
	assert.False(t, dberr.IsRestrictViolation(nil))
}
