package database

import (
	"context"
	"errors"
	"tablica-wiadomosci/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
)

var ErrAuthorNotFound = errors.New("message author does not exist")

type CreateMessageParams struct {
	MemberID       int64
	Content        string
	CloudfrontLink *string
}

func (q *Queries) CreateMessage(ctx context.Context, arg CreateMessageParams) (*models.Message, error) {
	query := `
		INSERT INTO message (member_id, content, cloudfront_link)
		VALUES ($1, $2, $3)
		RETURNING id, member_id, content, cloudfront_link
	`
	row := q.db.QueryRow(ctx, query, arg.MemberID, arg.Content, arg.CloudfrontLink)

	var message models.Message
	err := row.Scan(
		&message.ID,
		&message.MemberID,
		&message.Content,
		&message.CloudfrontLink,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, ErrAuthorNotFound
		}
		return nil, err
	}

	return &message, nil
}

// ListBoardMessages returns every message joined with its author, in insertion
// order. The board re-queries on each call, so a just-committed create shows
// up immediately.
func (q *Queries) ListBoardMessages(ctx context.Context) ([]models.BoardMessage, error) {
	query := `
		SELECT
			message.id,
			message.member_id,
			member.name,
			message.content,
			message.cloudfront_link
		FROM message
		INNER JOIN member ON message.member_id = member.id
		ORDER BY message.id
	`
	rows, err := q.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []models.BoardMessage
	for rows.Next() {
		var msg models.BoardMessage
		err := rows.Scan(
			&msg.ID,
			&msg.MemberID,
			&msg.AuthorName,
			&msg.Content,
			&msg.CloudfrontLink,
		)
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if messages == nil {
		return []models.BoardMessage{}, nil
	}

	return messages, nil
}

// DeleteMessage removes a message only when memberID owns it. Zero rows
// affected means the message does not exist or belongs to someone else.
func (q *Queries) DeleteMessage(ctx context.Context, messageID int64, memberID int64) (bool, error) {
	query := `DELETE FROM message WHERE id = $1 AND member_id = $2`
	res, err := q.db.Exec(ctx, query, messageID, memberID)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}
