package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/message"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/database"
)

type messageRepositoryImpl struct {
	db *database.DB
}

func NewMessageRepository(db *database.DB) message.MessageRepository {
	return &messageRepositoryImpl{db: db}
}

const messageColumns = `
	m.id, m.sender_id, m.recipient_id, m.subject, m.body, m.is_read, m.read_at,
	m.created_at, su.full_name, ru.full_name
`

const messageJoin = `
	FROM messages m
	JOIN users su ON su.id = m.sender_id
	JOIN users ru ON ru.id = m.recipient_id
`

func scanMessage(row interface{ Scan(dest ...any) error }) (message.Message, error) {
	var msg message.Message
	err := row.Scan(
		&msg.ID, &msg.SenderID, &msg.RecipientID, &msg.Subject, &msg.Body,
		&msg.IsRead, &msg.ReadAt, &msg.CreatedAt, &msg.SenderName, &msg.RecipientName,
	)
	return msg, err
}

// Create implements message.MessageRepository.
func (r *messageRepositoryImpl) Create(ctx context.Context, msg message.Message) (message.Message, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO messages (sender_id, recipient_id, subject, body)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var createdID string
	err := q.QueryRow(ctx, query, msg.SenderID, msg.RecipientID, msg.Subject, msg.Body).Scan(&createdID)
	if err != nil {
		return message.Message{}, err
	}
	return r.GetByID(ctx, createdID)
}

// GetByID implements message.MessageRepository.
func (r *messageRepositoryImpl) GetByID(ctx context.Context, id string) (message.Message, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + messageColumns + messageJoin + ` WHERE m.id = $1`
	return scanMessage(q.QueryRow(ctx, query, id))
}

// List implements message.MessageRepository.
func (r *messageRepositoryImpl) List(ctx context.Context, filter message.MessageFilter) ([]message.Message, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"(m.sender_id = $1 OR m.recipient_id = $1)"}
	args := []interface{}{filter.UserID}
	argIdx := 2

	if filter.Unread != nil {
		conditions = append(conditions, fmt.Sprintf("m.is_read = $%d", argIdx))
		args = append(args, !*filter.Unread)
		argIdx++
	}
	where := strings.Join(conditions, " AND ")

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) `+messageJoin+` WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s %s WHERE %s
		ORDER BY m.created_at DESC
		LIMIT $%d OFFSET $%d
	`, messageColumns, messageJoin, where, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var messages []message.Message
	for rows.Next() {
		msg, err := scanMessage(rows)
		if err != nil {
			return nil, 0, err
		}
		messages = append(messages, msg)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}

// MarkAsRead implements message.MessageRepository.
func (r *messageRepositoryImpl) MarkAsRead(ctx context.Context, id, recipientID string) error {
	q := GetQuerier(ctx, r.db)

	// Idempotent: re-reading an already-read message is a no-op.
	_, err := q.Exec(ctx, `
		UPDATE messages
		SET is_read = TRUE, read_at = $3
		WHERE id = $1 AND recipient_id = $2 AND is_read = FALSE
	`, id, recipientID, time.Now())
	return err
}
