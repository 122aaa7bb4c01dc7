package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/b2jena/pokemon-dance/internal/domain"
	"github.com/b2jena/pokemon-dance/internal/observability/metrics"
)

const (
	endpointPokemon = "pokemon"
	endpointSpecies = "species"

	maxBodyBytes = 4 << 20
	userAgent    = "pokemon-dance/1.0"
)

// Config controls how the client talks to PokéAPI.
type Config struct {
	BaseURL string
	// RateLimit is requests per second; zero disables limiting.
	RateLimit float64
	Burst     int
	// CacheTTL keeps decoded records in memory; zero disables memoization.
	CacheTTL time.Duration
}

func DefaultConfig() Config {
	return Config{
		BaseURL:   "https://pokeapi.co/api/v2",
		RateLimit: 5,
		Burst:     5,
		CacheTTL:  10 * time.Minute,
	}
}

// Client implements ports.Catalog against PokéAPI.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	cache      *cache.Cache
	metrics    *metrics.CatalogMetrics
	logger     *slog.Logger
}

func NewClient(httpClient *http.Client, cfg Config, m *metrics.CatalogMetrics, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultConfig().BaseURL
	}

	c := &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		metrics:    m,
		logger:     logger,
	}
	if cfg.RateLimit > 0 {
		burst := max(cfg.Burst, 1)
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}
	if cfg.CacheTTL > 0 {
		c.cache = cache.New(cfg.CacheTTL, cfg.CacheTTL*2)
	}
	return c
}

func (c *Client) FetchPokemon(ctx context.Context, id int) (domain.Pokemon, error) {
	key := fmt.Sprintf("pokemon:%d", id)
	if p, ok := cached[domain.Pokemon](c, key); ok {
		return p, nil
	}

	var resp pokemonResponse
	url := fmt.Sprintf("%s/pokemon/%d", c.baseURL, id)
	if err := c.getJSON(ctx, endpointPokemon, url, &resp); err != nil {
		return domain.Pokemon{}, fmt.Errorf("fetch pokemon %d: %w", id, err)
	}
	if resp.Name == "" {
		return domain.Pokemon{}, fmt.Errorf("fetch pokemon %d: %w: missing name", id, domain.ErrDecode)
	}

	p := resp.toDomain()
	c.store(key, p)
	return p, nil
}

func (c *Client) FetchSpecies(ctx context.Context, url string) (domain.Species, error) {
	if url == "" {
		return domain.Species{}, fmt.Errorf("fetch species: %w: empty species link", domain.ErrNetwork)
	}

	key := "species:" + url
	if s, ok := cached[domain.Species](c, key); ok {
		return s, nil
	}

	var resp speciesResponse
	if err := c.getJSON(ctx, endpointSpecies, url, &resp); err != nil {
		return domain.Species{}, fmt.Errorf("fetch species: %w", err)
	}

	s := resp.toDomain()
	c.store(key, s)
	return s, nil
}

func cached[T any](c *Client, key string) (T, bool) {
	var zero T
	if c.cache == nil {
		return zero, false
	}
	if v, found := c.cache.Get(key); found {
		if typed, ok := v.(T); ok {
			c.metrics.IncrementCacheHits()
			return typed, true
		}
	}
	c.metrics.IncrementCacheMisses()
	return zero, false
}

func (c *Client) store(key string, v any) {
	if c.cache != nil {
		c.cache.Set(key, v, cache.DefaultExpiration)
	}
}

func (c *Client) getJSON(ctx context.Context, endpoint, url string, out any) error {
	start := time.Now()
	outcome := "ok"
	defer func() {
		c.metrics.ObserveRequest(endpoint, outcome, time.Since(start).Seconds())
	}()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			outcome = "network_error"
			return fmt.Errorf("%w: rate limiter: %w", domain.ErrNetwork, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		outcome = "network_error"
		return fmt.Errorf("%w: build request: %w", domain.ErrNetwork, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		outcome = "network_error"
		return fmt.Errorf("%w: http call: %w", domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		outcome = "network_error"
		return fmt.Errorf("%w: read response: %w", domain.ErrNetwork, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		outcome = "network_error"
		return fmt.Errorf("%w: upstream status %d", domain.ErrNetwork, resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		outcome = "decode_error"
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			c.logger.DebugContext(ctx, "malformed catalog body", "url", url, "offset", syntaxErr.Offset)
		}
		return fmt.Errorf("%w: %w", domain.ErrDecode, err)
	}

	return nil
}
