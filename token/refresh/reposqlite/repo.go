package refreshreposqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/jrsteele09/go-auth-api/token/refresh"
	"github.com/pkg/errors"
)

var _ refresh.Repo = (*SQLiteRefreshTokenRepo)(nil)

// SQLiteRefreshTokenRepo implements refresh.Repo on the SQLite credential
// store. The user_id primary key enforces the one-record-per-user invariant
// at the schema level.
type SQLiteRefreshTokenRepo struct {
	db *sql.DB
}

func NewSQLiteRefreshTokenRepo(db *sql.DB) *SQLiteRefreshTokenRepo {
	return &SQLiteRefreshTokenRepo{db: db}
}

// Upsert stores the record as the user's current refresh token, replacing any
// previous value.
func (tr *SQLiteRefreshTokenRepo) Upsert(ctx context.Context, record *refresh.StoredRefreshToken) error {
	_, err := tr.db.ExecContext(ctx,
		`INSERT INTO refresh_tokens (user_id, token, created_at) VALUES (?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET token = excluded.token, created_at = excluded.created_at`,
		record.UserID, record.Token, record.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return errors.Wrap(err, "[SQLiteRefreshTokenRepo.Upsert] exec")
	}
	return nil
}

func (tr *SQLiteRefreshTokenRepo) GetByUserID(ctx context.Context, userID string) (*refresh.StoredRefreshToken, error) {
	row := tr.db.QueryRowContext(ctx,
		"SELECT user_id, token, created_at FROM refresh_tokens WHERE user_id = ?", userID)

	record := &refresh.StoredRefreshToken{}
	var createdAt string
	if err := row.Scan(&record.UserID, &record.Token, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, refresh.ErrNotFound
		}
		return nil, errors.Wrap(err, "[SQLiteRefreshTokenRepo.GetByUserID] scan")
	}

	parsed, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, errors.Wrap(err, "[SQLiteRefreshTokenRepo.GetByUserID] parsing created_at")
	}
	record.CreatedAt = parsed

	return record, nil
}
