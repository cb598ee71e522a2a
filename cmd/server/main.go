package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nextgen-api/internal/di"
	"nextgen-api/internal/infrastructure/env"

	"github.com/fatih/color"
)

func main() {
	envService := env.NewEnvService()

	container, err := di.NewContainer(di.Config{
		AppEnv:           envService.GetWithDefault("APP_ENV", "dev"),
		Host:             envService.GetWithDefault("HOST", "0.0.0.0"),
		Port:             envService.GetInt("PORT", 8000),
		AllowedOrigins:   envService.GetList("ALLOWED_ORIGINS", []string{"*"}),
		OpenRouterAPIKey: envService.MustGet("OPENROUTER_API_KEY"),
		OpenRouterModel:  envService.MustGet("OPENROUTER_MODEL_NAME"),
		LLMTimeout:       envService.GetDuration("LLM_TIMEOUT", 60*time.Second),
		LogLLMTraffic:    envService.GetBool("LOG_LLM_TRAFFIC", false),
	})
	if err != nil {
		log.Fatalf("Initialization failed: %v", err)
	}
	defer container.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- container.Server.Start()
	}()

	color.Green("NextGen API is live on %s", container.Server.Addr())

	select {
	case <-ctx.Done():
		container.Logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := container.Server.Shutdown(shutdownCtx); err != nil {
			container.Logger.Error("Shutdown failed", "error", err)
			os.Exit(1)
		}
	case err := <-errCh:
		if err != nil {
			container.Logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}
}
