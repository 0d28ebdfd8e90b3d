package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ferdiebergado/accountkit/internal/platform/db"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound       = errors.New("user repository: user not found")
	ErrQueryFailed    = errors.New("user repository: query failed")
	ErrDuplicateEmail = errors.New("user repository: email already registered")
)

const pgUniqueViolation = "23505"

type Repository struct {
	db *sql.DB
}

var _ UserRepository = (*Repository)(nil)

func NewRepository(conn *sql.DB) *Repository {
	return &Repository{db: conn}
}

// executor returns the current transaction if one is carried by ctx,
// otherwise the connection pool.
func (r *Repository) executor(ctx context.Context) db.Executor {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db
}

type CreateUserParams struct {
	Email             string
	PasswordHash      string
	AvatarURL         string
	VerificationToken string
}

const queryUserCreate = `
INSERT INTO users (email, password_hash, avatar_url, verification_token)
VALUES ($1, $2, $3, $4)
RETURNING id, email, subscription, avatar_url, verified, verification_token, created_at, updated_at
`

func (r *Repository) Create(ctx context.Context, params CreateUserParams) (User, error) {
	row := r.executor(ctx).QueryRowContext(ctx, queryUserCreate,
		params.Email, params.PasswordHash, params.AvatarURL, params.VerificationToken)

	var u User
	err := row.Scan(&u.ID, &u.Email, &u.Subscription, &u.AvatarURL, &u.Verified,
		&u.VerificationToken, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return u, ErrDuplicateEmail
		}
		return u, fmt.Errorf("%w: create user with email %s: %v", ErrQueryFailed, params.Email, err)
	}
	return u, nil
}

const queryUserFindByEmail = `
SELECT id, email, password_hash, subscription, avatar_url, session_token, verified, verification_token, created_at, updated_at
FROM users
WHERE email = $1
LIMIT 1
`

func (r *Repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	row := r.executor(ctx).QueryRowContext(ctx, queryUserFindByEmail, email)
	var u User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Subscription, &u.AvatarURL,
		&u.SessionToken, &u.Verified, &u.VerificationToken, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: find user with email %s: %v", ErrQueryFailed, email, err)
	}
	return &u, nil
}

const queryUserFind = `
SELECT id, email, subscription, avatar_url, session_token, verified, created_at, updated_at
FROM users
WHERE id = $1
`

func (r *Repository) Find(ctx context.Context, userID string) (User, error) {
	row := r.executor(ctx).QueryRowContext(ctx, queryUserFind, userID)
	var u User
	err := row.Scan(&u.ID, &u.Email, &u.Subscription, &u.AvatarURL, &u.SessionToken,
		&u.Verified, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return u, ErrNotFound
		}
		return u, fmt.Errorf("%w: find user with id %s: %v", ErrQueryFailed, userID, err)
	}
	return u, nil
}

const queryUserUpdateAvatarURL = `
UPDATE users SET avatar_url = $2, updated_at = now()
WHERE id = $1
`

func (r *Repository) UpdateAvatarURL(ctx context.Context, userID, avatarURL string) error {
	res, err := r.executor(ctx).ExecContext(ctx, queryUserUpdateAvatarURL, userID, avatarURL)
	if err != nil {
		return fmt.Errorf("%w: update avatar for user %s: %v", ErrQueryFailed, userID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: rows affected: %v", ErrQueryFailed, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
