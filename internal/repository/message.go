package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/bizledger/api-server-go/internal/model"
)

type MessageRepository interface {
	Create(ctx context.Context, params model.CreateChatMessageParams) (*model.ChatMessage, error)
	FindBySender(ctx context.Context, senderID string, limit, offset int) ([]model.ChatMessage, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type messageRepo struct {
	db sqlxDB
}

func NewMessageRepository(db *sqlx.DB) MessageRepository {
	return &messageRepo{db: db}
}

func (r *messageRepo) Create(ctx context.Context, params model.CreateChatMessageParams) (*model.ChatMessage, error) {
	var msg model.ChatMessage
	err := r.db.GetContext(ctx, &msg, `
		INSERT INTO chat_messages (id, sender_id, receiver_id, body)
		VALUES ($1, $2, $3, $4)
		RETURNING *
	`, uuid.NewString(), params.SenderID, params.ReceiverID, params.Body)
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

func (r *messageRepo) FindBySender(ctx context.Context, senderID string, limit, offset int) ([]model.ChatMessage, error) {
	var messages []model.ChatMessage
	err := r.db.SelectContext(ctx, &messages, `
		SELECT * FROM chat_messages
		WHERE sender_id = $1
		ORDER BY sent_at DESC
		LIMIT $2 OFFSET $3
	`, senderID, limit, offset)
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *messageRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM chat_messages WHERE sent_at < $1
	`, cutoff)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
