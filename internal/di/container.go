package di

import (
	"fmt"
	"time"

	"nextgen-api/internal/application/port/input"
	"nextgen-api/internal/application/port/output"
	"nextgen-api/internal/application/usecase"
	"nextgen-api/internal/infrastructure/httpserver"
	"nextgen-api/internal/infrastructure/llm/openrouter"
	"nextgen-api/internal/infrastructure/logger"
)

type Container struct {
	LLM           output.LLMPort
	Logger        output.LoggerPort
	TaskProcessor input.TaskProcessor
	Server        *httpserver.Server
}

type Config struct {
	AppEnv           string
	Host             string
	Port             int
	AllowedOrigins   []string
	OpenRouterAPIKey string
	OpenRouterModel  string
	LLMTimeout       time.Duration
	LogLLMTraffic    bool
}

func NewContainer(cfg Config) (*Container, error) {
	log, err := logger.NewLoggerAdapter(cfg.AppEnv)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	llmCfg := openrouter.DefaultConfig(cfg.OpenRouterAPIKey, cfg.OpenRouterModel)
	if cfg.LLMTimeout > 0 {
		llmCfg.Timeout = cfg.LLMTimeout
	}
	if cfg.LogLLMTraffic {
		llmCfg.Logger = log.WithField("component", "llm")
	}
	llm := openrouter.NewOpenRouterAdapter(llmCfg)

	processor := usecase.NewProcessTaskUseCase(llm, log.WithField("component", "processor"))

	serverCfg := httpserver.DefaultConfig()
	if cfg.Host != "" {
		serverCfg.Host = cfg.Host
	}
	if cfg.Port > 0 {
		serverCfg.Port = cfg.Port
	}
	if len(cfg.AllowedOrigins) > 0 {
		serverCfg.AllowedOrigins = cfg.AllowedOrigins
	}
	server := httpserver.New(serverCfg, processor, log.WithField("component", "http"))

	return &Container{
		LLM:           llm,
		Logger:        log,
		TaskProcessor: processor,
		Server:        server,
	}, nil
}

func (c *Container) Close() {
	if c.Logger != nil {
		c.Logger.Close()
	}
}
