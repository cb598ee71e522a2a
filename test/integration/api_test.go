package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"nextgen-api/internal/application/port/output"
	"nextgen-api/internal/application/usecase"
	"nextgen-api/internal/infrastructure/httpserver"
	"nextgen-api/internal/infrastructure/llm/openrouter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...any) {}
func (nopLogger) Info(msg string, args ...any)  {}
func (nopLogger) Warn(msg string, args ...any)  {}
func (nopLogger) Error(msg string, args ...any) {}
func (l nopLogger) WithField(key string, value any) output.LoggerPort {
	return l
}
func (nopLogger) Close() error { return nil }

// newAPI wires the real adapter, usecase and router against a fake provider.
func newAPI(t *testing.T, provider http.HandlerFunc) http.Handler {
	t.Helper()

	providerServer := httptest.NewServer(provider)
	t.Cleanup(providerServer.Close)

	llmCfg := openrouter.DefaultConfig("test-key", "test-model")
	llmCfg.BaseURL = providerServer.URL
	llmCfg.Timeout = 2 * time.Second
	llm := openrouter.NewOpenRouterAdapter(llmCfg)

	processor := usecase.NewProcessTaskUseCase(llm, nopLogger{})

	return httpserver.New(httpserver.DefaultConfig(), processor, nopLogger{}).Handler()
}

func TestGenerate_EndToEnd(t *testing.T) {
	handler := newAPI(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "test-model", body["model"])

		messages, ok := body["messages"].([]any)
		require.True(t, ok)
		require.Len(t, messages, 2)
		user := messages[1].(map[string]any)
		assert.Contains(t, user["content"], "summarize")
		assert.Contains(t, user["content"], "breaking news")

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"id": "gen-1",
			"object": "chat.completion",
			"model": "test-model",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "who what when where why"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 20, "completion_tokens": 5, "total_tokens": 25}
		}`)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/nextgen/generate",
		strings.NewReader(`{"task_name": "summarize", "payload": {"text": "breaking news"}}`))
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "who what when where why", body["result"])
	assert.Equal(t, "test-model", body["model"])
}

func TestGenerate_ProviderErrorMapsToBadGateway(t *testing.T) {
	handler := newAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error": {"message": "rate limited", "type": "rate_limit_error"}}`)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/nextgen/generate",
		strings.NewReader(`{"task_name": "summarize", "payload": {}}`))
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	detail, _ := body["detail"].(string)
	assert.Contains(t, detail, "rate limited")
}

func TestCoreRoutes(t *testing.T) {
	handler := newAPI(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("provider must not be called for core routes")
	})

	tests := []struct {
		method string
		path   string
		key    string
		value  any
	}{
		{http.MethodGet, "/api/nextgen/", "message", "NextGen API is live!"},
		{http.MethodGet, "/api/nextgen/capabilities", "models", []any{"03-mini-openai", "gpt-4", "llama-3"}},
		{http.MethodPost, "/api/nextgen/heartbeat", "info", "heartbeat OK"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusOK, rec.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.value, body[tt.key])
		})
	}
}
