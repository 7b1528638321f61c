package service

import (
	"context"

	"github.com/rs/zerolog/log"

	apperrors "github.com/bizledger/api-server-go/internal/errors"
	"github.com/bizledger/api-server-go/internal/model"
	"github.com/bizledger/api-server-go/internal/repository"
)

const defaultMessagePageSize = 50

type SendMessageRequest struct {
	ReceiverID string `json:"receiverId"`
	Message    string `json:"message"`
}

type ChatService struct {
	messageRepo repository.MessageRepository
}

func NewChatService(messageRepo repository.MessageRepository) *ChatService {
	return &ChatService{messageRepo: messageRepo}
}

// Send persists a chat message. The sender is always the authenticated
// caller; a request can never write on behalf of another sender.
func (s *ChatService) Send(ctx context.Context, senderID string, req SendMessageRequest) (*model.ChatMessage, error) {
	if req.ReceiverID == "" {
		return nil, apperrors.MissingRequired("receiverId")
	}
	if req.Message == "" {
		return nil, apperrors.MissingRequired("message")
	}

	msg, err := s.messageRepo.Create(ctx, model.CreateChatMessageParams{
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		Body:       req.Message,
	})
	if err != nil {
		return nil, apperrors.Database(err)
	}

	log.Debug().Str("messageId", msg.ID).Str("senderId", senderID).Msg("chat message stored")

	return msg, nil
}

// List returns the caller's own sent messages, newest first.
func (s *ChatService) List(ctx context.Context, senderID string, limit, offset int) ([]model.ChatMessage, error) {
	if limit <= 0 || limit > defaultMessagePageSize {
		limit = defaultMessagePageSize
	}
	if offset < 0 {
		offset = 0
	}

	messages, err := s.messageRepo.FindBySender(ctx, senderID, limit, offset)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if messages == nil {
		messages = []model.ChatMessage{}
	}
	return messages, nil
}
