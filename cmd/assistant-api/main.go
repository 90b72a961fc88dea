package main

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/MuhamadAgungGumelar/support-assistant-be/internal/core/plans"
	"github.com/MuhamadAgungGumelar/support-assistant-be/internal/shared/config"
	"github.com/MuhamadAgungGumelar/support-assistant-be/internal/shared/metrics"
	"github.com/MuhamadAgungGumelar/support-assistant-be/internal/shared/utils"
)

// @title Support Assistant API
// @version 1.0
// @description Keyword-driven support chat backed by a static company knowledge base and a live pricing plan service
// @contact.name API Support
// @contact.email hello@arkanadigital.com
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("❌ assistant-api stopped")
	}
	log.Info().Msg("👋 Bye")
}

// run returns instead of exiting so deferred cleanup always happens
func run() error {
	// Load config
	cfg := config.LoadConfig()
	utils.InitLogger(cfg.LogLevel)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("🚀 Starting assistant-api")

	// Knowledge base
	k, err := loadKnowledgeBase(cfg)
	if err != nil {
		return fmt.Errorf("load knowledge base (%s): %w", cfg.KBSource, err)
	}
	utils.LogInfo("📚 Knowledge base loaded", map[string]interface{}{
		"kb_source": cfg.KBSource,
		"company":   k.Company.Name,
		"services":  len(k.Services),
		"plans":     len(k.Pricing.Plans),
		"faqs":      len(k.FAQs),
	})

	m := metrics.New(cfg.MetricsNamespace)

	// Remote plan source
	cache, closeCache := newPlanCache(cfg)
	defer func() {
		if err := closeCache(); err != nil {
			log.Warn().Err(err).Msg("⚠️ Failed to close plan cache")
		}
	}()
	source := newPlanSource(cfg, cache, m)
	utils.LogInfo("💳 Using plan source", map[string]interface{}{
		"endpoint": source.Endpoint(),
		"cache":    cache.Name(),
		"ttl":      cfg.PlansCacheTTL.String(),
	})

	if cfg.PlansRefreshSchedule != "" {
		refresher, err := plans.NewRefresher(source, cfg.PlansRefreshSchedule)
		if err != nil {
			return err
		}
		refresher.Start()
		defer refresher.Stop()
	}

	app := newApp(cfg, k, source, m)

	ln, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		return fmt.Errorf("listen on :%s: %w", cfg.Port, err)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sig)

	log.Info().Msgf("✅ assistant-api running at :%s", cfg.Port)
	log.Info().Msgf("📄 Swagger UI: http://localhost:%s/swagger/", cfg.Port)
	return serve(app, ln, sig)
}
