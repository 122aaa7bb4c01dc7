package pokeapi

import "github.com/b2jena/pokemon-dance/internal/domain"

// pokemonResponse mirrors the parts of GET /pokemon/{id} we use.
type pokemonResponse struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Height  int    `json:"height"`
	Weight  int    `json:"weight"`
	Sprites struct {
		FrontDefault string `json:"front_default"`
		Other        struct {
			OfficialArtwork struct {
				FrontDefault string `json:"front_default"`
			} `json:"official-artwork"`
			DreamWorld struct {
				FrontDefault string `json:"front_default"`
			} `json:"dream_world"`
		} `json:"other"`
	} `json:"sprites"`
	Types []struct {
		Slot int `json:"slot"`
		Type struct {
			Name string `json:"name"`
		} `json:"type"`
	} `json:"types"`
	Stats []struct {
		BaseStat int `json:"base_stat"`
		Stat     struct {
			Name string `json:"name"`
		} `json:"stat"`
	} `json:"stats"`
	Species struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	} `json:"species"`
}

// speciesResponse mirrors the parts of GET /pokemon-species/{id} we use.
type speciesResponse struct {
	Name              string `json:"name"`
	FlavorTextEntries []struct {
		FlavorText string `json:"flavor_text"`
		Language   struct {
			Name string `json:"name"`
		} `json:"language"`
	} `json:"flavor_text_entries"`
}

func (r pokemonResponse) toDomain() domain.Pokemon {
	p := domain.Pokemon{
		ID:   r.ID,
		Name: r.Name,
		Sprites: domain.Sprites{
			OfficialArtwork: r.Sprites.Other.OfficialArtwork.FrontDefault,
			FrontDefault:    r.Sprites.FrontDefault,
			DreamWorld:      r.Sprites.Other.DreamWorld.FrontDefault,
		},
		Types:      make([]string, 0, len(r.Types)),
		Stats:      make([]domain.Stat, 0, len(r.Stats)),
		Height:     r.Height,
		Weight:     r.Weight,
		SpeciesURL: r.Species.URL,
	}
	for _, t := range r.Types {
		p.Types = append(p.Types, t.Type.Name)
	}
	for _, s := range r.Stats {
		p.Stats = append(p.Stats, domain.Stat{Name: s.Stat.Name, Base: s.BaseStat})
	}
	return p
}

func (r speciesResponse) toDomain() domain.Species {
	s := domain.Species{
		Name:        r.Name,
		FlavorTexts: make([]domain.FlavorText, 0, len(r.FlavorTextEntries)),
	}
	for _, e := range r.FlavorTextEntries {
		s.FlavorTexts = append(s.FlavorTexts, domain.FlavorText{Text: e.FlavorText, Language: e.Language.Name})
	}
	return s
}
