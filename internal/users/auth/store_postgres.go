// Copyright (c) 2026 Giftwell. All rights reserved.
// Author: dev@giftwell.app

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/giftwell/giftwell/internal/platform/database/schema"
	"github.com/giftwell/giftwell/internal/platform/dberr"
)

// # User Repository

// PostgresUserRepository implements the UserRepository interface using pgx.
//
// Storage errors are mapped through [dberr.Wrap], so unique violations on
// username or email surface as Conflict without a pre-flight SELECT.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new PostgreSQL implementation of the UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

func userColumns() string {
	account := schema.UserAccount
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s",
		account.ID, account.Username, account.Email, account.Password,
		account.DisplayName, account.Role, account.IsVerified,
		account.CreatedAt, account.UpdatedAt,
	)
}

func scanUser(row interface{ Scan(...any) error }) (*User, error) {
	user := &User{}
	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash,
		&user.DisplayName, &user.Role, &user.IsVerified,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Create persists a new user record into the users.account table.
func (repository *PostgresUserRepository) Create(context context.Context, user *User) error {
	account := schema.UserAccount
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`, account.Table, userColumns())

	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	_, err := repository.pool.Exec(context, query,
		user.ID,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.DisplayName,
		user.Role,
		user.IsVerified,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		return dberr.Wrap(err, "User")
	}

	return nil
}

// FindByEmail retrieves a user record by their unique email address,
// filtering out soft-deleted accounts.
func (repository *PostgresUserRepository) FindByEmail(context context.Context, email string) (*User, error) {
	account := schema.UserAccount
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL;
	`, userColumns(), account.Table, account.Email, account.DeletedAt)

	user, err := scanUser(repository.pool.QueryRow(context, query, email))
	if err != nil {
		return nil, dberr.Wrap(err, "User")
	}

	return user, nil
}

// FindByUsername retrieves a user record by their unique username.
func (repository *PostgresUserRepository) FindByUsername(context context.Context, username string) (*User, error) {
	account := schema.UserAccount
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL;
	`, userColumns(), account.Table, account.Username, account.DeletedAt)

	user, err := scanUser(repository.pool.QueryRow(context, query, username))
	if err != nil {
		return nil, dberr.Wrap(err, "User")
	}

	return user, nil
}

// FindByID retrieves a user record by primary key.
func (repository *PostgresUserRepository) FindByID(context context.Context, id string) (*User, error) {
	account := schema.UserAccount
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL;
	`, userColumns(), account.Table, account.ID, account.DeletedAt)

	user, err := scanUser(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "User")
	}

	return user, nil
}

// Update persists changes to a user's mutable profile fields.
func (repository *PostgresUserRepository) Update(context context.Context, user *User) error {
	account := schema.UserAccount
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4
		WHERE %s = $1 AND %s IS NULL;
	`, account.Table, account.Username, account.DisplayName, account.UpdatedAt,
		account.ID, account.DeletedAt)

	user.UpdatedAt = time.Now()
	_, err := repository.pool.Exec(context, query,
		user.ID,
		user.Username,
		user.DisplayName,
		user.UpdatedAt,
	)

	if err != nil {
		return dberr.Wrap(err, "User")
	}

	return nil
}

// UpdatePassword updates only the password hash for a specific user.
func (repository *PostgresUserRepository) UpdatePassword(context context.Context, userID, newHash string) error {
	account := schema.UserAccount
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3
		WHERE %s = $1 AND %s IS NULL;
	`, account.Table, account.Password, account.UpdatedAt, account.ID, account.DeletedAt)

	_, err := repository.pool.Exec(context, query, userID, newHash, time.Now())
	if err != nil {
		return dberr.Wrap(err, "User")
	}

	return nil
}

// SoftDelete marks a user account as deleted by setting deletedat.
func (repository *PostgresUserRepository) SoftDelete(context context.Context, id string) error {
	account := schema.UserAccount
	query := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1;`,
		account.Table, account.DeletedAt, account.ID)

	_, err := repository.pool.Exec(context, query, id, time.Now())
	if err != nil {
		return dberr.Wrap(err, "User")
	}
	return nil
}

// MarkVerified updates the user's status to isverified = true.
func (repository *PostgresUserRepository) MarkVerified(context context.Context, userID string) error {
	account := schema.UserAccount
	query := fmt.Sprintf(`UPDATE %s SET %s = TRUE, %s = $2 WHERE %s = $1;`,
		account.Table, account.IsVerified, account.UpdatedAt, account.ID)

	_, err := repository.pool.Exec(context, query, userID, time.Now())
	if err != nil {
		return dberr.Wrap(err, "User")
	}
	return nil
}

// # Session Repository

// PostgresSessionRepository implements the SessionRepository interface.
type PostgresSessionRepository struct {
	pool *pgxpool.Pool
}

// NewSessionRepository creates a new PostgreSQL implementation of SessionRepository.
func NewSessionRepository(pool *pgxpool.Pool) *PostgresSessionRepository {
	return &PostgresSessionRepository{pool: pool}
}

// Create persists a new session record into the users.session table.
func (repository *PostgresSessionRepository) Create(context context.Context, session *Session) error {
	table := schema.UserSession
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`, table.Table, table.ID, table.UserID, table.TokenHash, table.UserAgent,
		table.IPAddress, table.ExpiresAt, table.IsRevoked, table.CreatedAt)

	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}

	_, err := repository.pool.Exec(context, query,
		session.ID,
		session.UserID,
		session.TokenHash,
		session.UserAgent,
		session.IPAddress,
		session.ExpiresAt,
		session.IsRevoked,
		session.CreatedAt,
	)

	if err != nil {
		return dberr.Wrap(err, "Session")
	}

	return nil
}

// FindByTokenHash resolves a refresh token hash into an active, unexpired session.
func (repository *PostgresSessionRepository) FindByTokenHash(context context.Context, tokenHash string) (*Session, error) {
	table := schema.UserSession
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s = FALSE AND %s > NOW();
	`, table.ID, table.UserID, table.TokenHash, table.UserAgent, table.IPAddress,
		table.ExpiresAt, table.IsRevoked, table.CreatedAt,
		table.Table, table.TokenHash, table.IsRevoked, table.ExpiresAt)

	session := &Session{}
	err := repository.pool.QueryRow(context, query, tokenHash).Scan(
		&session.ID,
		&session.UserID,
		&session.TokenHash,
		&session.UserAgent,
		&session.IPAddress,
		&session.ExpiresAt,
		&session.IsRevoked,
		&session.CreatedAt,
	)

	if err != nil {
		return nil, dberr.Wrap(err, "Session")
	}

	return session, nil
}

// Revoke marks a specific session as revoked.
func (repository *PostgresSessionRepository) Revoke(context context.Context, sessionID string) error {
	table := schema.UserSession
	query := fmt.Sprintf(`UPDATE %s SET %s = TRUE WHERE %s = $1;`,
		table.Table, table.IsRevoked, table.ID)

	_, err := repository.pool.Exec(context, query, sessionID)
	if err != nil {
		return dberr.Wrap(err, "Session")
	}
	return nil
}

// RevokeAll marks all active sessions for a user as revoked.
func (repository *PostgresSessionRepository) RevokeAll(context context.Context, userID string) error {
	table := schema.UserSession
	query := fmt.Sprintf(`UPDATE %s SET %s = TRUE WHERE %s = $1 AND %s = FALSE;`,
		table.Table, table.IsRevoked, table.UserID, table.IsRevoked)

	_, err := repository.pool.Exec(context, query, userID)
	if err != nil {
		return dberr.Wrap(err, "Session")
	}
	return nil
}

// RevokeOthers marks all active sessions for a user as revoked, except for one.
func (repository *PostgresSessionRepository) RevokeOthers(context context.Context, userID, currentSessionID string) error {
	table := schema.UserSession
	query := fmt.Sprintf(`UPDATE %s SET %s = TRUE WHERE %s = $1 AND %s != $2 AND %s = FALSE;`,
		table.Table, table.IsRevoked, table.UserID, table.ID, table.IsRevoked)

	_, err := repository.pool.Exec(context, query, userID, currentSessionID)
	if err != nil {
		return dberr.Wrap(err, "Session")
	}
	return nil
}

// DeleteExpired permanently removes all sessions past their expiration.
func (repository *PostgresSessionRepository) DeleteExpired(context context.Context) error {
	table := schema.UserSession
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s <= NOW();`,
		table.Table, table.ExpiresAt)

	_, err := repository.pool.Exec(context, query)
	if err != nil {
		return dberr.Wrap(err, "Session")
	}
	return nil
}
