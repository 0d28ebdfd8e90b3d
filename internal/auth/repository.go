package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ferdiebergado/accountkit/internal/platform/db"
	"github.com/ferdiebergado/accountkit/internal/user"
)

var (
	ErrTokenNotFound = errors.New("auth repository: verification token not found")
	ErrQueryFailed   = errors.New("auth repository: query failed")
)

type Repository struct {
	db *sql.DB
}

var _ AuthRepository = (*Repository)(nil)

func NewRepository(conn *sql.DB) *Repository {
	return &Repository{db: conn}
}

func (r *Repository) executor(ctx context.Context) db.Executor {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db
}

const querySaveSessionToken = `
UPDATE users SET session_token = $2, updated_at = now()
WHERE id = $1
`

// SaveSessionToken overwrites the single session slot, superseding any prior
// session for the account.
func (r *Repository) SaveSessionToken(ctx context.Context, userID, token string) error {
	if _, err := r.executor(ctx).ExecContext(ctx, querySaveSessionToken, userID, token); err != nil {
		return fmt.Errorf("%w: save session token for user %s: %v", ErrQueryFailed, userID, err)
	}
	return nil
}

const queryClearSessionToken = `
UPDATE users SET session_token = '', updated_at = now()
WHERE id = $1
`

func (r *Repository) ClearSessionToken(ctx context.Context, userID string) error {
	if _, err := r.executor(ctx).ExecContext(ctx, queryClearSessionToken, userID); err != nil {
		return fmt.Errorf("%w: clear session token for user %s: %v", ErrQueryFailed, userID, err)
	}
	return nil
}

const queryFindByVerificationToken = `
SELECT id, email, verified FROM users
WHERE verification_token = $1 AND verification_token <> ''
LIMIT 1
`

func (r *Repository) FindUserByVerificationToken(ctx context.Context, token string) (user.User, error) {
	row := r.executor(ctx).QueryRowContext(ctx, queryFindByVerificationToken, token)
	var u user.User
	if err := row.Scan(&u.ID, &u.Email, &u.Verified); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return u, ErrTokenNotFound
		}
		return u, fmt.Errorf("%w: find user by verification token: %v", ErrQueryFailed, err)
	}
	return u, nil
}

const queryMarkVerified = `
UPDATE users SET verified = TRUE, verification_token = '', updated_at = now()
WHERE id = $1
`

// MarkVerified flips the verified flag and clears the single-use token so a
// repeat verification attempt no longer matches.
func (r *Repository) MarkVerified(ctx context.Context, userID string) error {
	if _, err := r.executor(ctx).ExecContext(ctx, queryMarkVerified, userID); err != nil {
		return fmt.Errorf("%w: mark user %s verified: %v", ErrQueryFailed, userID, err)
	}
	return nil
}
