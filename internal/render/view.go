// Package render turns display models into view descriptions and materializes them.
package render

import (
	"github.com/b2jena/pokemon-dance/internal/domain"
)

const (
	placeholderTitle = "Could not load Pokémon"
	placeholderHint  = "Tap Add again"
)

// BadgeView is one category badge.
type BadgeView struct {
	Text  string `json:"text"`
	Color string `json:"color"`
}

// CardView describes a card independently of any UI toolkit.
type CardView struct {
	ID          string      `json:"id"`
	Placeholder bool        `json:"placeholder"`
	Image       string      `json:"image,omitempty"`
	Alt         string      `json:"alt,omitempty"`
	Name        string      `json:"name"`
	Badges      []BadgeView `json:"badges,omitempty"`
	BadgeLine   string      `json:"badge_line"`
	Intro       string      `json:"intro,omitempty"`
	Size        string      `json:"size,omitempty"`
	Stats       string      `json:"stats,omitempty"`
	Expanded    bool        `json:"expanded"`
	Dancing     bool        `json:"dancing"`
	// Delays are animation offsets in seconds.
	SpriteDelay float64 `json:"sprite_delay"`
	WrapDelay   float64 `json:"wrap_delay"`
}

// StageView describes the whole stage.
type StageView struct {
	Shuffle   bool       `json:"shuffle"`
	Narrating string     `json:"narrating,omitempty"`
	Cards     []CardView `json:"cards"`
}

// Card builds the initial view of a card: collapsed and dancing.
// The same model always yields the same view.
func Card(id string, m domain.DisplayModel) CardView {
	badges := make([]BadgeView, len(m.Badges))
	for i, b := range m.Badges {
		badges[i] = BadgeView{Text: b.Text(), Color: b.Color}
	}

	return CardView{
		ID:        id,
		Image:     m.Image,
		Alt:       m.Name + " sprite",
		Name:      m.Name,
		Badges:    badges,
		BadgeLine: domain.BadgeLine(m.Badges, " · "),
		Intro:     m.Flavor,
		Size:      m.Size,
		Stats:     m.Stats,
		Dancing:   true,
	}
}

// Placeholder is the inline error card shown when no record could be loaded.
func Placeholder(id string) CardView {
	return CardView{
		ID:          id,
		Placeholder: true,
		Name:        placeholderTitle,
		BadgeLine:   placeholderHint,
	}
}
