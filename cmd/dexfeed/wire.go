package main

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/b2jena/pokemon-dance/internal/adapters/pokeapi"
	"github.com/b2jena/pokemon-dance/internal/adapters/speech"
	"github.com/b2jena/pokemon-dance/internal/adapters/typestyles"
	"github.com/b2jena/pokemon-dance/internal/app"
	"github.com/b2jena/pokemon-dance/internal/config"
	"github.com/b2jena/pokemon-dance/internal/observability/metrics"
	"github.com/b2jena/pokemon-dance/internal/ports"
)

// stdRNG delegates to math/rand/v2 (auto-seeded, safe for concurrent use).
type stdRNG struct{}

func (stdRNG) Intn(n int) int    { return rand.IntN(n) }
func (stdRNG) Float64() float64 { return rand.Float64() }

type components struct {
	feed     *app.Feed
	stage    *app.Stage
	narrator *app.Narrator
	registry *prometheus.Registry
	opts     app.Options
}

func build(cfg config.Config, logger *slog.Logger) (*components, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	feedMetrics, err := metrics.NewFeedMetrics(registry)
	if err != nil {
		return nil, err
	}
	catalogMetrics, err := metrics.NewCatalogMetrics(registry)
	if err != nil {
		return nil, err
	}

	styles := typestyles.NewEmbeddedStore()
	if err := styles.Load(); err != nil {
		return nil, fmt.Errorf("load type styles: %w", err)
	}

	catalog := pokeapi.NewClient(
		&http.Client{Timeout: cfg.RequestTimeout},
		pokeapi.Config{
			BaseURL:   cfg.APIBaseURL,
			RateLimit: cfg.RateLimit,
			Burst:     cfg.RateBurst,
			CacheTTL:  cfg.CacheTTL,
		},
		catalogMetrics,
		logger,
	)

	var speaker ports.Speaker
	if cfg.EnableNarration {
		if s, ok := speech.Detect(cfg.SpeechCommand); ok {
			speaker = s
		} else {
			logger.Info("no text-to-speech command found, narration disabled")
		}
	}
	narrator := app.NewNarrator(speaker, logger)

	opts := app.Options{
		MaxID:                 cfg.MaxID,
		MaxAttempts:           cfg.MaxAttempts,
		UseSpeciesDescription: cfg.UseSpeciesDescription,
		EnableNarration:       cfg.EnableNarration,
		EnableShuffleEffect:   cfg.EnableShuffleEffect,
	}

	rng := stdRNG{}
	stage := app.NewStage(rng, narrator, opts, feedMetrics, logger)
	feed := app.NewFeed(catalog, styles, rng, stage, opts, feedMetrics, logger)

	return &components{
		feed:     feed,
		stage:    stage,
		narrator: narrator,
		registry: registry,
		opts:     opts,
	}, nil
}
