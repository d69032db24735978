package database

import (
	"context"
	"errors"
	"tablica-wiadomosci/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var ErrUsernameTaken = errors.New("username is already registered")

// GetMemberByUsername returns (nil, nil) when no member exists under the
// username, so callers can tell "not found" apart from a failed query.
func (q *Queries) GetMemberByUsername(ctx context.Context, username string) (*models.Member, error) {
	query := `
		SELECT
			id,
			name,
			username,
			password_hash,
			follower_count,
			time
		FROM member
		WHERE username = $1
	`
	var member models.Member

	err := q.db.QueryRow(ctx, query, username).Scan(
		&member.ID,
		&member.Name,
		&member.Username,
		&member.PasswordHash,
		&member.FollowerCount,
		&member.Time,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &member, nil
}

type CreateMemberParams struct {
	Name         string
	Username     string
	PasswordHash string
}

// CreateMember inserts a new member. The unique constraint on username is the
// backstop for two concurrent registrations racing past the pre-check; a
// violation comes back as ErrUsernameTaken.
func (q *Queries) CreateMember(ctx context.Context, arg CreateMemberParams) (*models.Member, error) {
	query := `
		INSERT INTO member (name, username, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, name, username, password_hash, follower_count, time
	`
	row := q.db.QueryRow(ctx, query, arg.Name, arg.Username, arg.PasswordHash)

	var member models.Member
	err := row.Scan(
		&member.ID,
		&member.Name,
		&member.Username,
		&member.PasswordHash,
		&member.FollowerCount,
		&member.Time,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	return &member, nil
}

func (q *Queries) UpdateMemberName(ctx context.Context, username string, newName string) (bool, error) {
	query := `UPDATE member SET name = $1 WHERE username = $2`
	res, err := q.db.Exec(ctx, query, newName, username)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}
