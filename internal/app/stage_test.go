package app_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/b2jena/pokemon-dance/internal/app"
	"github.com/b2jena/pokemon-dance/internal/domain"
)

// namedCatalog returns a distinct creature name per call.
func namedCatalog() *fakeCatalog {
	var mu sync.Mutex
	names := []string{"pikachu", "bulbasaur", "eevee", "snorlax"}
	n := 0
	return &fakeCatalog{pokemon: func(int) (domain.Pokemon, error) {
		mu.Lock()
		defer mu.Unlock()
		p := pikachu()
		p.Name = names[n%len(names)]
		n++
		return p, nil
	}}
}

func addCards(t *testing.T, fx *fixture, n int) []string {
	t.Helper()
	ids := make([]string, 0, n)
	for range n {
		view, err := fx.feed.AddRandom(context.Background())
		require.NoError(t, err)
		ids = append(ids, view.ID)
	}
	return ids
}

func TestActivate_ToggleReturnsToCollapsed(t *testing.T) {
	fx := newFixture(t, app.DefaultOptions(), namedCatalog(), &seqRNG{})
	ids := addCards(t, fx, 1)

	view, err := fx.stage.Activate(ids[0])
	require.NoError(t, err)
	assert.True(t, view.Expanded)

	view, err = fx.stage.Activate(ids[0])
	require.NoError(t, err)
	assert.False(t, view.Expanded)
}

func TestActivate_NarrationIsExclusive(t *testing.T) {
	fx := newFixture(t, app.DefaultOptions(), namedCatalog(), &seqRNG{})
	ids := addCards(t, fx, 2)

	_, err := fx.stage.Activate(ids[0])
	require.NoError(t, err)
	first := <-fx.speaker.started
	assert.Contains(t, first, "Pikachu. ")

	_, err = fx.stage.Activate(ids[1])
	require.NoError(t, err)
	second := <-fx.speaker.started
	assert.Contains(t, second, "Bulbasaur. ")

	active, maxActive, spoken := fx.speaker.stats()
	assert.Equal(t, 1, active)
	assert.Equal(t, 1, maxActive)
	assert.Equal(t, []string{first, second}, spoken)
	assert.Equal(t, second, fx.narrator.Current())
	assert.Equal(t, second, fx.stage.View().Narrating)

	// Collapsing does not start another utterance.
	_, err = fx.stage.Activate(ids[0])
	require.NoError(t, err)
	_, _, spoken = fx.speaker.stats()
	assert.Len(t, spoken, 2)
}

func TestActivate_NarrationDisabled(t *testing.T) {
	opts := app.DefaultOptions()
	opts.EnableNarration = false
	fx := newFixture(t, opts, namedCatalog(), &seqRNG{})
	ids := addCards(t, fx, 1)

	view, err := fx.stage.Activate(ids[0])
	require.NoError(t, err)
	assert.True(t, view.Expanded)

	_, _, spoken := fx.speaker.stats()
	assert.Empty(t, spoken)
	assert.Empty(t, fx.narrator.Current())
}

func TestActivate_UnknownCard(t *testing.T) {
	fx := newFixture(t, app.DefaultOptions(), namedCatalog(), &seqRNG{})

	_, err := fx.stage.Activate("missing")
	assert.ErrorIs(t, err, domain.ErrCardNotFound)
	_, err = fx.stage.Hover("missing", true)
	assert.ErrorIs(t, err, domain.ErrCardNotFound)
}

func TestActivate_ConcurrentClearLeavesNoNarration(t *testing.T) {
	fx := newFixture(t, app.DefaultOptions(), namedCatalog(), &seqRNG{})

	for range 100 {
		ids := addCards(t, fx, 1)

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = fx.stage.Activate(ids[0])
		}()
		go func() {
			defer wg.Done()
			fx.stage.Clear()
		}()
		wg.Wait()

		require.Zero(t, fx.stage.Len())
		require.Empty(t, fx.narrator.Current())
		active, _, _ := fx.speaker.stats()
		require.Zero(t, active)
	}
}

func TestAppend_SeedsEntranceDelay(t *testing.T) {
	rng := &seqRNG{floats: []float64{0.25, 0.75}}
	fx := newFixture(t, app.DefaultOptions(), namedCatalog(), rng)
	addCards(t, fx, 2)

	view := fx.stage.View()
	require.Len(t, view.Cards, 2)
	assert.InDelta(t, 0.5, view.Cards[0].SpriteDelay, 1e-9)
	assert.InDelta(t, 0.25, view.Cards[0].WrapDelay, 1e-9)
	assert.InDelta(t, 1.5, view.Cards[1].SpriteDelay, 1e-9)
	assert.InDelta(t, 0.75, view.Cards[1].WrapDelay, 1e-9)
}

func TestHover_TogglesDancing(t *testing.T) {
	fx := newFixture(t, app.DefaultOptions(), namedCatalog(), &seqRNG{})
	ids := addCards(t, fx, 1)

	view, err := fx.stage.Hover(ids[0], false)
	require.NoError(t, err)
	assert.False(t, view.Dancing)

	view, err = fx.stage.Hover(ids[0], true)
	require.NoError(t, err)
	assert.True(t, view.Dancing)
}

func TestClear_EmptiesStageAndStopsNarration(t *testing.T) {
	fx := newFixture(t, app.DefaultOptions(), namedCatalog(), &seqRNG{})
	ids := addCards(t, fx, 3)

	_, err := fx.stage.Activate(ids[2])
	require.NoError(t, err)
	<-fx.speaker.started

	fx.stage.Clear()

	assert.Zero(t, fx.stage.Len())
	assert.Empty(t, fx.stage.View().Cards)
	assert.Empty(t, fx.narrator.Current())
	active, _, _ := fx.speaker.stats()
	assert.Zero(t, active)

	_, err = fx.stage.Activate(ids[0])
	assert.ErrorIs(t, err, domain.ErrCardNotFound)

	addCards(t, fx, 1)
	assert.Equal(t, 1, fx.stage.Len())
}

func TestShuffle_ReassignsDelaysAndDancing(t *testing.T) {
	// Two entrance draws on append, then delay and dancing draws per card.
	rng := &seqRNG{floats: []float64{0.25, 0.75, 0.5, 0.2, 0.0, 0.9}}
	fx := newFixture(t, app.DefaultOptions(), namedCatalog(), rng)
	addCards(t, fx, 2)

	require.NoError(t, fx.stage.Shuffle())
	view := fx.stage.View()
	require.True(t, view.Shuffle)
	require.Len(t, view.Cards, 2)

	assert.InDelta(t, 0.15, view.Cards[0].SpriteDelay, 1e-9)
	assert.InDelta(t, 0.075, view.Cards[0].WrapDelay, 1e-9)
	assert.False(t, view.Cards[0].Dancing)

	assert.InDelta(t, 0.1, view.Cards[1].SpriteDelay, 1e-9)
	assert.InDelta(t, 0.05, view.Cards[1].WrapDelay, 1e-9)
	assert.True(t, view.Cards[1].Dancing)

	require.NoError(t, fx.stage.Shuffle())
	assert.False(t, fx.stage.View().Shuffle)
}

func TestShuffle_SkipsPlaceholders(t *testing.T) {
	catalog := &fakeCatalog{pokemon: func(int) (domain.Pokemon, error) {
		return domain.Pokemon{}, domain.ErrNetwork
	}}
	fx := newFixture(t, app.DefaultOptions(), catalog, &seqRNG{floats: []float64{0.9}})
	addCards(t, fx, 1)

	require.NoError(t, fx.stage.Shuffle())
	view := fx.stage.View()
	require.Len(t, view.Cards, 1)
	assert.True(t, view.Cards[0].Placeholder)
	assert.Zero(t, view.Cards[0].SpriteDelay)
}

func TestShuffle_Disabled(t *testing.T) {
	opts := app.DefaultOptions()
	opts.EnableShuffleEffect = false
	fx := newFixture(t, opts, namedCatalog(), &seqRNG{})

	assert.ErrorIs(t, fx.stage.Shuffle(), domain.ErrShuffleDisabled)
}
