package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/bizledger/api-server-go/internal/errors"
	"github.com/bizledger/api-server-go/internal/model"
)

type mockMessageRepo struct {
	mock.Mock
}

func (m *mockMessageRepo) Create(ctx context.Context, params model.CreateChatMessageParams) (*model.ChatMessage, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ChatMessage), args.Error(1)
}

func (m *mockMessageRepo) FindBySender(ctx context.Context, senderID string, limit, offset int) ([]model.ChatMessage, error) {
	args := m.Called(ctx, senderID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ChatMessage), args.Error(1)
}

func (m *mockMessageRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

func TestChatSend(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a message for the authenticated sender", func(t *testing.T) {
		repo := new(mockMessageRepo)
		repo.On("Create", ctx, model.CreateChatMessageParams{
			SenderID:   "user-1",
			ReceiverID: "user-2",
			Body:       "hello",
		}).Return(&model.ChatMessage{
			ID:         "msg-1",
			SenderID:   "user-1",
			ReceiverID: "user-2",
			Body:       "hello",
			SentAt:     time.Now(),
		}, nil)
		svc := NewChatService(repo)

		msg, err := svc.Send(ctx, "user-1", SendMessageRequest{ReceiverID: "user-2", Message: "hello"})
		require.NoError(t, err)
		assert.Equal(t, "msg-1", msg.ID)
		repo.AssertExpectations(t)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		repo := new(mockMessageRepo)
		svc := NewChatService(repo)

		_, err := svc.Send(ctx, "user-1", SendMessageRequest{Message: "hello"})
		assert.Equal(t, apperrors.ErrCodeMissingRequired, apperrors.GetCode(err))

		_, err = svc.Send(ctx, "user-1", SendMessageRequest{ReceiverID: "user-2"})
		assert.Equal(t, apperrors.ErrCodeMissingRequired, apperrors.GetCode(err))

		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("maps store failures to database errors", func(t *testing.T) {
		repo := new(mockMessageRepo)
		repo.On("Create", ctx, mock.Anything).Return(nil, errors.New("connection reset"))
		svc := NewChatService(repo)

		_, err := svc.Send(ctx, "user-1", SendMessageRequest{ReceiverID: "user-2", Message: "hello"})
		assert.Equal(t, apperrors.ErrCodeDatabase, apperrors.GetCode(err))
	})
}

func TestChatList(t *testing.T) {
	ctx := context.Background()

	t.Run("clamps the page size", func(t *testing.T) {
		repo := new(mockMessageRepo)
		repo.On("FindBySender", ctx, "user-1", defaultMessagePageSize, 0).Return([]model.ChatMessage{}, nil)
		svc := NewChatService(repo)

		_, err := svc.List(ctx, "user-1", 500, -3)
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("returns an empty slice rather than nil", func(t *testing.T) {
		repo := new(mockMessageRepo)
		repo.On("FindBySender", ctx, "user-1", 10, 0).Return(nil, nil)
		svc := NewChatService(repo)

		messages, err := svc.List(ctx, "user-1", 10, 0)
		require.NoError(t, err)
		assert.NotNil(t, messages)
		assert.Empty(t, messages)
	})
}
