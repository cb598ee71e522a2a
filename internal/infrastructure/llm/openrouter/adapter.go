package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"nextgen-api/internal/application/port/output"
	"nextgen-api/internal/domain/entity"
	"nextgen-api/internal/infrastructure/prompts"

	"github.com/sashabaranov/go-openai"
)

var _ output.LLMPort = (*OpenRouterAdapter)(nil)

type OpenRouterAdapter struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	logger  output.LoggerPort
}

type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
	Logger  output.LoggerPort
}

func DefaultConfig(apiKey, model string) Config {
	return Config{
		APIKey:  apiKey,
		Model:   model,
		BaseURL: "https://openrouter.ai/api/v1",
		Timeout: 60 * time.Second,
	}
}

type loggingTransport struct {
	base   http.RoundTripper
	logger output.LoggerPort
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.logger != nil {
		var bodyBytes []byte
		if req.Body != nil {
			bodyBytes, _ = io.ReadAll(req.Body)
			req.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		}

		var requestData map[string]interface{}
		if len(bodyBytes) > 0 {
			json.Unmarshal(bodyBytes, &requestData)
		}

		t.logger.Info("HTTP Request",
			"method", req.Method,
			"url", req.URL.String(),
			"body", requestData,
		)
	}

	resp, err := t.base.RoundTrip(req)

	if t.logger != nil && resp != nil {
		t.logger.Info("HTTP Response",
			"status", resp.Status,
			"statusCode", resp.StatusCode,
		)
	}

	return resp, err
}

func NewOpenRouterAdapter(cfg Config) *OpenRouterAdapter {
	config := openai.DefaultConfig(cfg.APIKey)
	config.BaseURL = cfg.BaseURL

	if cfg.Logger != nil {
		transport := &loggingTransport{
			base:   http.DefaultTransport,
			logger: cfg.Logger,
		}
		config.HTTPClient = &http.Client{
			Transport: transport,
		}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &OpenRouterAdapter{
		client:  openai.NewClientWithConfig(config),
		model:   cfg.Model,
		timeout: timeout,
		logger:  cfg.Logger,
	}
}

// Generate performs one chat completion for the task. The deadline applied
// here is the only timeout in the request path.
func (a *OpenRouterAdapter) Generate(ctx context.Context, req entity.TaskRequest) (entity.TaskResult, error) {
	payload, err := json.Marshal(req.Payload)
	if err != nil {
		return nil, entity.NewInvalidPayloadFault(fmt.Sprintf("payload not serializable: %v", err))
	}

	userPrompt, err := prompts.GenerateTaskPrompt(req.TaskName, string(payload))
	if err != nil {
		return nil, entity.NewGenericFault(fmt.Sprintf("prompt generation failed: %v", err))
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompts.DefaultSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: 0.0,
	})
	if err != nil {
		return nil, classify(err)
	}

	if len(resp.Choices) == 0 {
		return nil, entity.NewLLMProviderFault("no choices in response")
	}

	return entity.TaskResult{
		"result": resp.Choices[0].Message.Content,
		"model":  resp.Model,
		"usage": map[string]any{
			"prompt_tokens":     resp.Usage.PromptTokens,
			"completion_tokens": resp.Usage.CompletionTokens,
		},
	}, nil
}

// classify maps a go-openai error onto the fault taxonomy. Most specific kind
// wins: deadline before transport, transport before generic.
func classify(err error) *entity.Fault {
	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	var urlErr *url.Error
	var netErr net.Error

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return entity.NewTimeoutFault("provider call exceeded deadline")
	case errors.As(err, &netErr) && netErr.Timeout():
		return entity.NewTimeoutFault(fmt.Sprintf("provider call timed out: %v", err))
	case errors.As(err, &apiErr):
		return entity.NewLLMProviderFault(fmt.Sprintf("provider error: %s", apiErr.Message))
	case errors.As(err, &reqErr):
		return entity.NewLLMProviderFault(fmt.Sprintf("provider error: %v", reqErr))
	case errors.As(err, &urlErr):
		return entity.NewNetworkFault(fmt.Sprintf("provider unreachable: %v", urlErr))
	default:
		return entity.NewGenericFault(err.Error())
	}
}
