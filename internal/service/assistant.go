package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	apperrors "github.com/bizledger/api-server-go/internal/errors"
)

// AssistantService forwards prompts to the generative-language API and
// relays the response. The assistant's behavior is the provider's concern;
// this service only does the passthrough and its error mapping.
type AssistantService struct {
	apiURL string
	apiKey string
	client *http.Client
}

type assistantRequest struct {
	Contents []assistantContent `json:"contents"`
}

type assistantContent struct {
	Parts []assistantPart `json:"parts"`
}

type assistantPart struct {
	Text string `json:"text"`
}

func NewAssistantService(apiURL, apiKey string, client *http.Client) *AssistantService {
	return &AssistantService{
		apiURL: apiURL,
		apiKey: apiKey,
		client: client,
	}
}

// Enabled reports whether an API key was configured at startup.
func (s *AssistantService) Enabled() bool {
	return s.apiKey != ""
}

// Ask sends the prompt upstream and returns the raw JSON reply.
func (s *AssistantService) Ask(ctx context.Context, prompt string) (json.RawMessage, error) {
	if prompt == "" {
		return nil, apperrors.MissingRequired("prompt")
	}
	if !s.Enabled() {
		return nil, apperrors.Internal("Assistant is not configured")
	}

	payload := assistantRequest{
		Contents: []assistantContent{{Parts: []assistantPart{{Text: prompt}}}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, apperrors.Internal("Failed to encode assistant request").WithCause(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, apperrors.Internal("Failed to build assistant request").WithCause(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, apperrors.External("assistant", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.External("assistant", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Warn().Int("status", resp.StatusCode).Msg("assistant upstream returned non-2xx")
		return nil, apperrors.External("assistant", fmt.Errorf("upstream status %d", resp.StatusCode))
	}

	if !json.Valid(raw) {
		return nil, apperrors.External("assistant", fmt.Errorf("upstream returned invalid JSON"))
	}

	return json.RawMessage(raw), nil
}
