// Package bootstrap builds the application object graph once at process
// start. Handlers receive their dependencies explicitly; there is no global
// service instance.
package bootstrap

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/Arshavi-03/Finergize-recommend/internal/llm"
	"github.com/Arshavi-03/Finergize-recommend/internal/llm/gemini"
	"github.com/Arshavi-03/Finergize-recommend/internal/llm/openai"
	"github.com/Arshavi-03/Finergize-recommend/internal/model"
	"github.com/Arshavi-03/Finergize-recommend/internal/recommender"
	"github.com/Arshavi-03/Finergize-recommend/internal/services/health"
	"github.com/Arshavi-03/Finergize-recommend/internal/shared/config"
	"github.com/Arshavi-03/Finergize-recommend/internal/shared/server"
	"github.com/Arshavi-03/Finergize-recommend/internal/shared/telemetry"
)

// App holds shared dependencies.
type App struct {
	Config             config.Config
	Router             *gin.Engine
	Bundle             *model.Bundle
	RecommenderService *recommender.Service
	RecommenderHandler *recommender.Handler
	HealthService      *health.Service
}

// Build prepares shared dependencies and wires the router.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	bundle := model.LoadOrDefault(cfg.ModelPath)

	remote := buildRemote(ctx, cfg)

	svc := recommender.NewService(bundle.Catalog(), bundle.Survey(), remote, cfg.RemoteTimeout)
	handler := recommender.NewHandler(svc)
	healthSvc := health.NewService()

	app := &App{
		Config:             cfg,
		Bundle:             bundle,
		RecommenderService: svc,
		RecommenderHandler: handler,
		HealthService:      healthSvc,
	}
	app.Router = server.NewRouter(server.RouterDeps{
		Config:      cfg,
		Recommender: handler,
		Health:      healthSvc,
	})
	return app, nil
}

// buildRemote constructs the configured remote scorer, or nil when disabled
// or uncredentialed. A broken remote configuration never blocks start-up; the
// local engine carries every request instead.
func buildRemote(ctx context.Context, cfg config.Config) llm.Client {
	if !cfg.UseRemoteScorer {
		telemetry.Info("remote_scorer.disabled", map[string]any{"reason": "USE_REMOTE_SCORER=false"})
		return nil
	}
	if cfg.RemoteAPIKey() == "" {
		telemetry.Warn("remote_scorer.disabled", map[string]any{
			"reason":   "missing API key",
			"provider": cfg.LLMProvider,
		})
		return nil
	}

	var (
		client llm.Client
		err    error
	)
	switch cfg.LLMProvider {
	case "gemini":
		client, err = gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.LLMModel)
	default:
		client, err = openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel, cfg.RemoteTimeout)
	}
	if err != nil {
		telemetry.Error("remote_scorer.init_failed", map[string]any{
			"provider": cfg.LLMProvider,
			"error":    err.Error(),
		})
		return nil
	}

	telemetry.Info("remote_scorer.enabled", map[string]any{"provider": cfg.LLMProvider})
	return client
}
