package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/bizledger/api-server-go/internal/errors"
)

func TestAssistantAsk(t *testing.T) {
	ctx := context.Background()

	t.Run("forwards the prompt and relays the reply", func(t *testing.T) {
		var gotAuth string
		var gotBody []byte
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotBody, _ = io.ReadAll(r.Body)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"candidates":[{"content":"ok"}]}`))
		}))
		defer upstream.Close()

		svc := NewAssistantService(upstream.URL, "test-api-key", upstream.Client())

		reply, err := svc.Ask(ctx, "How do I read a balance sheet?")
		require.NoError(t, err)

		assert.Equal(t, "Bearer test-api-key", gotAuth)
		assert.JSONEq(t, `{"contents":[{"parts":[{"text":"How do I read a balance sheet?"}]}]}`, string(gotBody))
		assert.JSONEq(t, `{"candidates":[{"content":"ok"}]}`, string(reply))
	})

	t.Run("requires a prompt", func(t *testing.T) {
		svc := NewAssistantService("http://unused", "test-api-key", http.DefaultClient)

		_, err := svc.Ask(ctx, "")
		assert.Equal(t, apperrors.ErrCodeMissingRequired, apperrors.GetCode(err))
	})

	t.Run("fails when no API key is configured", func(t *testing.T) {
		svc := NewAssistantService("http://unused", "", http.DefaultClient)
		assert.False(t, svc.Enabled())

		_, err := svc.Ask(ctx, "hello")
		assert.Equal(t, apperrors.ErrCodeInternal, apperrors.GetCode(err))
	})

	t.Run("maps upstream errors to external service errors", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer upstream.Close()

		svc := NewAssistantService(upstream.URL, "test-api-key", upstream.Client())

		_, err := svc.Ask(ctx, "hello")
		assert.Equal(t, apperrors.ErrCodeExternal, apperrors.GetCode(err))
	})

	t.Run("rejects non-JSON upstream replies", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>gateway error</html>"))
		}))
		defer upstream.Close()

		svc := NewAssistantService(upstream.URL, "test-api-key", upstream.Client())

		_, err := svc.Ask(ctx, "hello")
		assert.Equal(t, apperrors.ErrCodeExternal, apperrors.GetCode(err))
	})

	t.Run("maps unreachable upstream to external service error", func(t *testing.T) {
		svc := NewAssistantService("http://127.0.0.1:1", "test-api-key", http.DefaultClient)

		_, err := svc.Ask(ctx, "hello")
		assert.Equal(t, apperrors.ErrCodeExternal, apperrors.GetCode(err))
	})
}

func TestAssistantRequestShape(t *testing.T) {
	payload := assistantRequest{
		Contents: []assistantContent{{Parts: []assistantPart{{Text: "hi"}}}},
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"contents":[{"parts":[{"text":"hi"}]}]}`, string(body))
}
