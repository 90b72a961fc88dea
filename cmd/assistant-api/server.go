package main

import (
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/MuhamadAgungGumelar/support-assistant-be/internal/core/assistant"
	"github.com/MuhamadAgungGumelar/support-assistant-be/internal/core/kb"
	"github.com/MuhamadAgungGumelar/support-assistant-be/internal/core/plans"
	"github.com/MuhamadAgungGumelar/support-assistant-be/internal/modules/assistant/handlers"
	"github.com/MuhamadAgungGumelar/support-assistant-be/internal/modules/assistant/repositories"
	"github.com/MuhamadAgungGumelar/support-assistant-be/internal/modules/assistant/services"
	"github.com/MuhamadAgungGumelar/support-assistant-be/internal/shared/config"
	"github.com/MuhamadAgungGumelar/support-assistant-be/internal/shared/database"
	"github.com/MuhamadAgungGumelar/support-assistant-be/internal/shared/metrics"

	_ "github.com/MuhamadAgungGumelar/support-assistant-be/cmd/assistant-api/docs"
)

const shutdownTimeout = 10 * time.Second

// loadKnowledgeBase returns the knowledge base for cfg.KBSource. The database
// connection is closed once the knowledge base is read.
func loadKnowledgeBase(cfg *config.Config) (*kb.KnowledgeBase, error) {
	switch cfg.KBSource {
	case config.KBSourceFile:
		return kb.LoadFile(cfg.KBPath)

	case config.KBSourceDatabase:
		db, err := database.NewDB(cfg.DatabaseURL, database.Options{Verbose: !cfg.IsProduction()})
		if err != nil {
			return nil, err
		}
		defer db.Close()

		return kb.NewRetriever(repositories.NewKBRepo(db.GORM)).GetKnowledgeBase()

	default:
		return kb.Default(), nil
	}
}

// newPlanCache uses redis when REDIS_ADDR is set so replicas share one cache
func newPlanCache(cfg *config.Config) (plans.Cache, func() error) {
	if cfg.RedisAddr == "" {
		return plans.NewMemoryCache(), func() error { return nil }
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	return plans.NewRedisCache(client), client.Close
}

func newPlanSource(cfg *config.Config, cache plans.Cache, m *metrics.Metrics) *plans.Source {
	return plans.NewSource(plans.Config{
		BaseURL:  cfg.PlansAPIURL,
		Timeout:  cfg.PlansFetchTimeout,
		CacheTTL: cfg.PlansCacheTTL,
	}, cache, m)
}

// newApp builds the fiber application with every route registered
func newApp(cfg *config.Config, k *kb.KnowledgeBase, source *plans.Source, m *metrics.Metrics) *fiber.App {
	engine := assistant.NewEngine(k, source, m)
	chatService := services.NewChatService(engine)

	chatHandler := handlers.NewChatHandler(chatService, m)
	kbHandler := handlers.NewKBHandler(engine.KnowledgeBase())
	healthHandler := handlers.NewHealthHandler(cfg.KBSource, source.Endpoint())

	app := fiber.New(fiber.Config{
		AppName:      fmt.Sprintf("%s Support Assistant API", k.Company.Name),
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(cors.New())

	// Swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Health check
	app.Get("/health", healthHandler.GetHealth)

	// Metrics
	app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))

	// Knowledge Base routes
	app.Get("/knowledge-base", kbHandler.GetKnowledgeBase)

	// Chat routes
	api := app.Group("/api")
	api.Post("/chat", chatHandler.Chat)

	return app
}

// serve runs app on ln until stop fires or the server fails. Listener errors
// come back to the caller instead of exiting the process.
func serve(app *fiber.App, ln net.Listener, stop <-chan os.Signal) error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- app.Listener(ln)
	}()

	select {
	case err := <-serveErr:
		if err == nil {
			return errors.New("server stopped unexpectedly")
		}
		return fmt.Errorf("serve: %w", err)
	case s := <-stop:
		log.Info().Str("signal", s.String()).Msg("🛑 Shutting down assistant-api...")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			return fmt.Errorf("graceful shutdown: %w", err)
		}
		return nil
	}
}
