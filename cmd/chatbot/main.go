package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dileep-u-k/restaurant-chatbot/internal/assistant"
	"github.com/dileep-u-k/restaurant-chatbot/internal/llm"
	"github.com/dileep-u-k/restaurant-chatbot/internal/tools"
	"github.com/dileep-u-k/restaurant-chatbot/web"

	"github.com/gin-gonic/gin"
	"github.com/phuslu/log"
	"github.com/redis/go-redis/v9"
)

// main is the composition root: it loads configuration, wires the services
// together and runs the HTTP server until SIGINT or SIGTERM.
func main() {
	cfg, err := LoadConfig()
	if err != nil {
		newLogger(defaultLogLevel, "", os.Stderr).Fatal().Err(err).Msg("configuration error")
	}
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	GetBuildInfo().Log(logger)

	ctx := context.Background()

	client, closeClient, err := initializeLLMClient(ctx, cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not create model client")
	}
	defer closeClient()

	toolManager, err := tools.NewRestaurantToolManager()
	if err != nil {
		logger.Fatal().Err(err).Msg("could not register tools")
	}
	logger.Info().Strs("tools", toolManager.Names()).Msg("tool manager initialized")

	profiler, closeRedis := initializeProfiler(ctx, cfg, logger)
	defer closeRedis()

	bot := assistant.New(client, toolManager, profiler, logger, assistant.Options{
		SystemPrompt: cfg.Assistant.SystemPrompt,
		Generation: &llm.GenerationConfig{
			Model:       cfg.Model.Name,
			Temperature: cfg.Model.Temperature,
			TopP:        cfg.Model.TopP,
			MaxTokens:   cfg.Model.MaxOutputTokens,
		},
		Timeout: cfg.Model.RequestTimeout,
	})

	gin.SetMode(os.Getenv("GIN_MODE"))
	engine := newRouter(NewChatHandler(bot, logger), logger)

	srv := &http.Server{Addr: fmt.Sprintf(":%s", cfg.Port), Handler: engine}
	runServerWithGracefulShutdown(srv, logger)
}

// newRouter mounts the chat endpoint and the widget.
func newRouter(chat *ChatHandler, logger *log.Logger) *gin.Engine {
	engine := gin.New()
	engine.Use(RequestID(), RequestLogger(logger), Recovery(logger))
	engine.POST("/chat", chat.HandleChat)
	engine.StaticFS("/", web.FileSystem())
	return engine
}

// initializeLLMClient picks the model client for cfg.Provider. The returned
// func releases it.
func initializeLLMClient(ctx context.Context, cfg *AppConfig, logger *log.Logger) (llm.LLMClient, func(), error) {
	switch cfg.Provider {
	case ProviderKeyword:
		logger.Warn().Msg("using the offline keyword model; answers will not come from Gemini")
		return llm.NewKeywordClient(), func() {}, nil
	case ProviderGemini:
		client, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.Model.Name, logger)
		if err != nil {
			return nil, nil, err
		}
		logger.Info().Str("model", cfg.Model.Name).Msg("gemini client initialized")
		return client, func() {
			if err := client.Close(); err != nil {
				logger.Warn().Err(err).Msg("failed to close gemini client")
			}
		}, nil
	default:
		return nil, nil, fmt.Errorf("unknown model provider %q", cfg.Provider)
	}
}

// initializeProfiler connects to Redis when REDIS_ADDR is set. Statistics are
// optional: without Redis the profiler is nil and records nothing.
func initializeProfiler(ctx context.Context, cfg *AppConfig, logger *log.Logger) (*llm.Profiler, func()) {
	if cfg.RedisAddr == "" {
		logger.Info().Msg("REDIS_ADDR not set; usage statistics disabled")
		return nil, func() {}
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		logger.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("could not connect to Redis; usage statistics disabled")
		_ = rdb.Close()
		return nil, func() {}
	}

	profiler := llm.NewProfiler(rdb, logger)
	if stats, err := profiler.GetModelStats(pingCtx, cfg.Model.Name); err == nil {
		logger.Info().
			Str("model", stats.ModelID).
			Int64("successes", stats.TotalSuccesses).
			Int64("failures", stats.TotalFailures).
			Int64("avg_latency_ms", stats.AvgLatencyMS).
			Msg("usage statistics enabled")
	}
	return profiler, func() { _ = rdb.Close() }
}

func runServerWithGracefulShutdown(srv *http.Server, logger *log.Logger) {
	go func() {
		logger.Info().Msgf("server running at http://localhost%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("listen error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("server shutdown failed")
		return
	}
	logger.Info().Msg("server exited gracefully")
}
