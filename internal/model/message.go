package model

import (
	"time"
)

type ChatMessage struct {
	ID         string    `db:"id" json:"id"`
	SenderID   string    `db:"sender_id" json:"senderId"`
	ReceiverID string    `db:"receiver_id" json:"receiverId"`
	Body       string    `db:"body" json:"message"`
	SentAt     time.Time `db:"sent_at" json:"sentAt"`
}

type CreateChatMessageParams struct {
	SenderID   string
	ReceiverID string
	Body       string
}
