package augment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zonewatch-systems/zonewatch/internal/config"
)

func chatServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *OpenAIClient) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := NewOpenAIClient(config.AugmentConfig{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Model:   "gpt-4o-mini",
	})
	return server, client
}

func TestOpenAIClient_Complete(t *testing.T) {
	var gotReq chatRequest
	_, client := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "```json\n{\"summary\": \"ok\"}\n```"}},
			},
			"usage": map[string]int{"prompt_tokens": 120, "completion_tokens": 45},
		})
	})

	raw, usage, err := client.Complete(context.Background(), "system role", "user prompt")
	require.NoError(t, err)

	assert.JSONEq(t, `{"summary": "ok"}`, string(raw))
	assert.Equal(t, int64(120), usage.InputTokens)
	assert.Equal(t, int64(45), usage.OutputTokens)

	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, "system role", gotReq.Messages[0].Content)
	assert.Equal(t, "user", gotReq.Messages[1].Role)
	assert.Equal(t, "gpt-4o-mini", gotReq.Model)
	assert.Zero(t, gotReq.Temperature)
}

func TestOpenAIClient_NonOKStatus(t *testing.T) {
	_, client := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})

	_, _, err := client.Complete(context.Background(), "role", "prompt")
	assert.Error(t, err)
}

func TestOpenAIClient_EmptyContent(t *testing.T) {
	_, client := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{},
			"usage":   map[string]int{"prompt_tokens": 10, "completion_tokens": 0},
		})
	})

	_, _, err := client.Complete(context.Background(), "role", "prompt")
	assert.Error(t, err)
}

func TestOpenAIClient_NonJSONContent(t *testing.T) {
	_, client := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "sorry, I cannot help with that"}},
			},
		})
	})

	_, _, err := client.Complete(context.Background(), "role", "prompt")
	assert.Error(t, err)
}

func TestNewCapability(t *testing.T) {
	capability := NewCapability(config.AugmentConfig{})
	_, ok := capability.(NoopCapability)
	assert.True(t, ok, "missing credentials must select the no-op capability")

	capability = NewCapability(config.AugmentConfig{APIKey: "k", BaseURL: "http://x", Model: "m"})
	_, ok = capability.(*OpenAIClient)
	assert.True(t, ok)
}

func TestNoopCapability(t *testing.T) {
	_, usage, err := NoopCapability{}.Complete(context.Background(), "role", "prompt")
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Zero(t, usage.InputTokens)
	assert.Zero(t, usage.OutputTokens)
}
