package pokeapi

import (
	"context"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/b2jena/pokemon-dance/internal/domain"
	"github.com/b2jena/pokemon-dance/internal/observability/metrics"
)

const testBaseURL = "https://pokeapi.test/api/v2"

const pikachuJSON = `{
  "id": 25,
  "name": "pikachu",
  "height": 4,
  "weight": 60,
  "sprites": {
    "front_default": "https://img.test/front/25.png",
    "other": {
      "official-artwork": {"front_default": "https://img.test/art/25.png"},
      "dream_world": {"front_default": null}
    }
  },
  "types": [{"slot": 1, "type": {"name": "electric", "url": "https://pokeapi.test/api/v2/type/13/"}}],
  "stats": [
    {"base_stat": 35, "effort": 0, "stat": {"name": "hp"}},
    {"base_stat": 55, "effort": 0, "stat": {"name": "attack"}}
  ],
  "species": {"name": "pikachu", "url": "https://pokeapi.test/api/v2/pokemon-species/25/"}
}`

const pikachuSpeciesJSON = `{
  "name": "pikachu",
  "flavor_text_entries": [
    {"flavor_text": "Cuando se enfada", "language": {"name": "es"}},
    {"flavor_text": "When several of\fthese POKéMON gather", "language": {"name": "en"}}
  ]
}`

// setupTestClient returns a client whose transport is served by httpmock.
func setupTestClient(t *testing.T, cfg Config) (*Client, *metrics.CatalogMetrics) {
	t.Helper()

	httpClient := &http.Client{Timeout: 5 * time.Second}
	httpmock.ActivateNonDefault(httpClient)
	t.Cleanup(httpmock.DeactivateAndReset)

	m, err := metrics.NewCatalogMetrics(prometheus.NewRegistry())
	require.NoError(t, err)

	if cfg.BaseURL == "" {
		cfg.BaseURL = testBaseURL
	}
	return NewClient(httpClient, cfg, m, slog.Default()), m
}

func TestClient_FetchPokemon_Success(t *testing.T) {
	client, _ := setupTestClient(t, Config{})
	httpmock.RegisterResponder("GET", testBaseURL+"/pokemon/25",
		httpmock.NewStringResponder(http.StatusOK, pikachuJSON))

	p, err := client.FetchPokemon(context.Background(), 25)
	require.NoError(t, err)

	assert.Equal(t, 25, p.ID)
	assert.Equal(t, "pikachu", p.Name)
	assert.Equal(t, "https://img.test/art/25.png", p.Sprites.OfficialArtwork)
	assert.Equal(t, "https://img.test/front/25.png", p.Sprites.FrontDefault)
	assert.Empty(t, p.Sprites.DreamWorld)
	assert.Equal(t, []string{"electric"}, p.Types)
	assert.Equal(t, []domain.Stat{{Name: "hp", Base: 35}, {Name: "attack", Base: 55}}, p.Stats)
	assert.Equal(t, 4, p.Height)
	assert.Equal(t, 60, p.Weight)
	assert.Equal(t, "https://pokeapi.test/api/v2/pokemon-species/25/", p.SpeciesURL)
}

func TestClient_FetchPokemon_HTTPError(t *testing.T) {
	client, _ := setupTestClient(t, Config{})

	tests := []struct {
		name       string
		statusCode int
	}{
		{"not_found", http.StatusNotFound},
		{"too_many_requests", http.StatusTooManyRequests},
		{"internal_server_error", http.StatusInternalServerError},
		{"service_unavailable", http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpmock.Reset()
			httpmock.RegisterResponder("GET", testBaseURL+"/pokemon/1",
				httpmock.NewStringResponder(tt.statusCode, `Not Found`))

			_, err := client.FetchPokemon(context.Background(), 1)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrNetwork)
		})
	}
}

func TestClient_FetchPokemon_TransportError(t *testing.T) {
	client, m := setupTestClient(t, Config{})
	httpmock.RegisterResponder("GET", testBaseURL+"/pokemon/7",
		httpmock.NewErrorResponder(assert.AnError))

	_, err := client.FetchPokemon(context.Background(), 7)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNetwork)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Requests.WithLabelValues(endpointPokemon, "network_error")), 0.001)
}

func TestClient_FetchPokemon_InvalidJSON(t *testing.T) {
	client, m := setupTestClient(t, Config{})
	httpmock.RegisterResponder("GET", testBaseURL+"/pokemon/3",
		httpmock.NewStringResponder(http.StatusOK, `{invalid json`))

	_, err := client.FetchPokemon(context.Background(), 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDecode)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Requests.WithLabelValues(endpointPokemon, "decode_error")), 0.001)
}

func TestClient_FetchPokemon_MissingName(t *testing.T) {
	client, _ := setupTestClient(t, Config{})
	httpmock.RegisterResponder("GET", testBaseURL+"/pokemon/3",
		httpmock.NewStringResponder(http.StatusOK, `{"id": 3}`))

	_, err := client.FetchPokemon(context.Background(), 3)
	assert.ErrorIs(t, err, domain.ErrDecode)
}

func TestClient_FetchPokemon_CachesRecords(t *testing.T) {
	client, m := setupTestClient(t, Config{CacheTTL: time.Minute})
	httpmock.RegisterResponder("GET", testBaseURL+"/pokemon/25",
		httpmock.NewStringResponder(http.StatusOK, pikachuJSON))

	for range 3 {
		_, err := client.FetchPokemon(context.Background(), 25)
		require.NoError(t, err)
	}

	assert.Equal(t, 1, httpmock.GetTotalCallCount())
	assert.InDelta(t, 2, testutil.ToFloat64(m.CacheHits), 0.001)
	assert.InDelta(t, 1, testutil.ToFloat64(m.CacheMisses), 0.001)
}

func TestClient_FetchSpecies_Success(t *testing.T) {
	client, _ := setupTestClient(t, Config{})
	speciesURL := "https://pokeapi.test/api/v2/pokemon-species/25/"
	httpmock.RegisterResponder("GET", speciesURL,
		httpmock.NewStringResponder(http.StatusOK, pikachuSpeciesJSON))

	s, err := client.FetchSpecies(context.Background(), speciesURL)
	require.NoError(t, err)

	require.Len(t, s.FlavorTexts, 2)
	assert.Equal(t, "en", s.FlavorTexts[1].Language)
	assert.Equal(t, "When several of these POKéMON gather", domain.SpeciesDescription(s))
}

func TestClient_FetchSpecies_EmptyLink(t *testing.T) {
	client, _ := setupTestClient(t, Config{})

	_, err := client.FetchSpecies(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrNetwork)
	assert.Zero(t, httpmock.GetTotalCallCount())
}

func TestClient_RateLimiterHonoursContext(t *testing.T) {
	client, _ := setupTestClient(t, Config{RateLimit: 0.001, Burst: 1})
	httpmock.RegisterResponder("GET", testBaseURL+"/pokemon/25",
		httpmock.NewStringResponder(http.StatusOK, pikachuJSON))

	// The first call consumes the only token.
	_, err := client.FetchPokemon(context.Background(), 25)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = client.FetchPokemon(ctx, 25)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNetwork)
}
