package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/b2jena/pokemon-dance/internal/domain"
	"github.com/b2jena/pokemon-dance/internal/observability/metrics"
	"github.com/b2jena/pokemon-dance/internal/ports"
	"github.com/b2jena/pokemon-dance/internal/render"
)

// Feed draws random records from the catalog and places them on the stage.
type Feed struct {
	catalog ports.Catalog
	styles  domain.TypeStyler
	rng     domain.RNG
	stage   *Stage
	opts    Options
	metrics *metrics.FeedMetrics
	logger  *slog.Logger
}

func NewFeed(catalog ports.Catalog, styles domain.TypeStyler, rng domain.RNG, stage *Stage, opts Options, m *metrics.FeedMetrics, logger *slog.Logger) *Feed {
	return &Feed{
		catalog: catalog,
		styles:  styles,
		rng:     rng,
		stage:   stage,
		opts:    opts.withDefaults(),
		metrics: m,
		logger:  logger,
	}
}

// AddRandom appends one card for a random record. Failed draws are retried with a fresh
// id up to MaxAttempts; after that an error placeholder is appended instead.
// Only context cancellation and domain.ErrStageCleared are returned.
func (f *Feed) AddRandom(ctx context.Context) (render.CardView, error) {
	gen := f.stage.Generation()

	for attempt := 1; attempt <= f.opts.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return render.CardView{}, err
		}

		id := domain.RandomID(f.rng, f.opts.MaxID)
		f.metrics.IncrementAttempts()

		model, err := f.fetchOne(ctx, id)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return render.CardView{}, ctxErr
			}
			kind := failureKind(err)
			f.metrics.IncrementFailures(kind)
			f.logger.DebugContext(ctx, "draw attempt failed",
				"attempt", attempt, "pokemon_id", id, "kind", kind, "error", err)
			continue
		}

		return f.place(ctx, newCard(model), gen)
	}

	f.logger.WarnContext(ctx, "no usable record found, adding placeholder", "attempts", f.opts.MaxAttempts)
	f.metrics.IncrementPlaceholders()
	return f.place(ctx, newPlaceholder(), gen)
}

// Bootstrap adds n cards one at a time, pausing between them for a staggered entrance.
func (f *Feed) Bootstrap(ctx context.Context, n int, pause time.Duration) error {
	for i := range n {
		if _, err := f.AddRandom(ctx); err != nil && !errors.Is(err, domain.ErrStageCleared) {
			return fmt.Errorf("bootstrap card %d: %w", i+1, err)
		}
		if pause <= 0 || i == n-1 {
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(pause):
		}
	}
	return nil
}

func (f *Feed) fetchOne(ctx context.Context, id int) (domain.DisplayModel, error) {
	p, err := f.catalog.FetchPokemon(ctx, id)
	if err != nil {
		return domain.DisplayModel{}, err
	}

	model, err := domain.NewDisplayModel(p, f.styles)
	if err != nil {
		return domain.DisplayModel{}, err
	}

	if f.opts.UseSpeciesDescription {
		return model.WithFlavor(f.description(ctx, p)), nil
	}
	return model.WithFlavor(domain.TemplateIntro(model, p.Height, p.Weight, f.rng)), nil
}

// description is best-effort: any species failure yields the fallback text.
func (f *Feed) description(ctx context.Context, p domain.Pokemon) string {
	if p.SpeciesURL == "" {
		return domain.FallbackDescription
	}
	species, err := f.catalog.FetchSpecies(ctx, p.SpeciesURL)
	if err != nil {
		f.logger.DebugContext(ctx, "species fetch failed, using fallback description",
			"pokemon_id", p.ID, "error", err)
		return domain.FallbackDescription
	}
	return domain.SpeciesDescription(species)
}

func (f *Feed) place(ctx context.Context, c *Card, gen uint64) (render.CardView, error) {
	view, ok := f.stage.Append(c, gen)
	if !ok {
		f.metrics.IncrementStaleDropped()
		f.logger.DebugContext(ctx, "dropping card loaded before stage clear", "card_id", c.ID)
		return render.CardView{}, domain.ErrStageCleared
	}
	if !c.Placeholder {
		f.metrics.IncrementCardsAdded()
	}
	return view, nil
}

func failureKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrNoImage):
		return "no_image"
	case errors.Is(err, domain.ErrDecode):
		return "decode"
	case errors.Is(err, domain.ErrNetwork):
		return "network"
	default:
		return "other"
	}
}
