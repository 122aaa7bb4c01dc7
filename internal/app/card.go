package app

import (
	"github.com/google/uuid"

	"github.com/b2jena/pokemon-dance/internal/domain"
	"github.com/b2jena/pokemon-dance/internal/render"
)

// CardState is the detail panel state of a card.
type CardState int

const (
	Collapsed CardState = iota
	Expanded
)

func (s CardState) String() string {
	if s == Expanded {
		return "expanded"
	}
	return "collapsed"
}

// Card is a stage-owned card. All mutation happens under the stage lock.
type Card struct {
	ID          string
	Model       domain.DisplayModel
	Placeholder bool
	State       CardState
	Dancing     bool
	SpriteDelay float64
	WrapDelay   float64
}

func newCard(m domain.DisplayModel) *Card {
	return &Card{ID: uuid.NewString(), Model: m, Dancing: true}
}

func newPlaceholder() *Card {
	return &Card{ID: uuid.NewString(), Placeholder: true}
}

// Toggle flips Collapsed and Expanded. Placeholders never expand.
func (c *Card) Toggle() CardState {
	if c.Placeholder {
		return c.State
	}
	if c.State == Collapsed {
		c.State = Expanded
	} else {
		c.State = Collapsed
	}
	return c.State
}

// NarrationText is what gets spoken when the card expands.
func (c *Card) NarrationText() string {
	return c.Model.Name + ". " + c.Model.Flavor
}

// View describes the card in its current state.
func (c *Card) View() render.CardView {
	if c.Placeholder {
		return render.Placeholder(c.ID)
	}
	v := render.Card(c.ID, c.Model)
	v.Expanded = c.State == Expanded
	v.Dancing = c.Dancing
	v.SpriteDelay = c.SpriteDelay
	v.WrapDelay = c.WrapDelay
	return v
}
