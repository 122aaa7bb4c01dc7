package app

import (
	"log/slog"
	"sync"

	"github.com/b2jena/pokemon-dance/internal/domain"
	"github.com/b2jena/pokemon-dance/internal/observability/metrics"
	"github.com/b2jena/pokemon-dance/internal/render"
)

// entranceSpread bounds the random entrance delay of a new card, in seconds.
const entranceSpread = 2.0

// Stage is the shared container of displayed cards.
//
// Every Clear bumps the stage generation. A card whose fetch started under an older
// generation is dropped on arrival instead of landing on the cleared stage.
type Stage struct {
	rng      domain.RNG
	narrator *Narrator
	opts     Options
	metrics  *metrics.FeedMetrics
	logger   *slog.Logger

	mu         sync.Mutex
	cards      []*Card
	index      map[string]*Card
	shuffle    bool
	generation uint64
}

func NewStage(rng domain.RNG, narrator *Narrator, opts Options, m *metrics.FeedMetrics, logger *slog.Logger) *Stage {
	return &Stage{
		rng:      rng,
		narrator: narrator,
		opts:     opts.withDefaults(),
		metrics:  m,
		logger:   logger,
		index:    make(map[string]*Card),
	}
}

// Generation identifies the current stage contents; it changes on every Clear.
func (s *Stage) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// Append adds c if the stage has not been cleared since generation gen.
// New cards get a random entrance delay so a burst of adds does not reveal in lockstep.
func (s *Stage) Append(c *Card, gen uint64) (render.CardView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return render.CardView{}, false
	}
	if !c.Placeholder {
		c.SpriteDelay = s.rng.Float64() * entranceSpread
		c.WrapDelay = c.SpriteDelay / 2
	}
	s.cards = append(s.cards, c)
	s.index[c.ID] = c
	s.metrics.SetStageSize(len(s.cards))
	return c.View(), true
}

// Clear empties the stage and stops any narration.
func (s *Stage) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cards = nil
	s.index = make(map[string]*Card)
	s.generation++
	s.metrics.SetStageSize(0)
	s.narrator.Stop()
}

// Shuffle toggles the stage-wide shuffle presentation and re-rolls per-card
// animation offsets and dancing flags.
func (s *Stage) Shuffle() error {
	if !s.opts.EnableShuffleEffect {
		return domain.ErrShuffleDisabled
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.shuffle = !s.shuffle
	idx := 0
	for _, c := range s.cards {
		if c.Placeholder {
			continue
		}
		delay := float64(idx%10)*0.1 + s.rng.Float64()*0.3
		c.SpriteDelay = delay
		c.WrapDelay = delay / 2
		c.Dancing = s.rng.Float64() > 0.3
		idx++
	}
	return nil
}

// Activate toggles a card's detail panel. Expanding narrates the card when enabled.
//
// Narration starts under the stage lock so a concurrent Clear either removes the card
// first or stops the utterance afterwards. The narrator never takes the stage lock.
func (s *Stage) Activate(id string) (render.CardView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.index[id]
	if !ok {
		return render.CardView{}, domain.ErrCardNotFound
	}
	if c.Toggle() == Expanded && s.opts.EnableNarration {
		s.narrator.Speak(c.NarrationText())
	}
	return c.View(), nil
}

// Hover sets the transient dancing flag on pointer enter (on) and leave.
func (s *Stage) Hover(id string, on bool) (render.CardView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.index[id]
	if !ok {
		return render.CardView{}, domain.ErrCardNotFound
	}
	if !c.Placeholder {
		c.Dancing = on
	}
	return c.View(), nil
}

// View describes the whole stage.
func (s *Stage) View() render.StageView {
	s.mu.Lock()
	cards := make([]render.CardView, len(s.cards))
	for i, c := range s.cards {
		cards[i] = c.View()
	}
	shuffle := s.shuffle
	s.mu.Unlock()

	return render.StageView{
		Shuffle:   shuffle,
		Narrating: s.narrator.Current(),
		Cards:     cards,
	}
}

func (s *Stage) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cards)
}
