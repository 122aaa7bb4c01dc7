package http

import "github.com/b2jena/pokemon-dance/internal/render"

// StageResponse is the JSON shape returned by GET /v1/stage.
type StageResponse struct {
	Shuffle   bool           `json:"shuffle"`
	Narrating string         `json:"narrating,omitempty"`
	Cards     []CardResponse `json:"cards"`
	Meta      MetaResp       `json:"meta"`
}

type CardResponse struct {
	ID          string          `json:"id"`
	Placeholder bool            `json:"placeholder"`
	Name        string          `json:"name"`
	Image       string          `json:"image,omitempty"`
	Badges      []BadgeResponse `json:"badges"`
	Intro       string          `json:"intro,omitempty"`
	Size        string          `json:"size,omitempty"`
	Stats       string          `json:"stats,omitempty"`
	Expanded    bool            `json:"expanded"`
	Dancing     bool            `json:"dancing"`
	SpriteDelay float64         `json:"sprite_delay"`
	WrapDelay   float64         `json:"wrap_delay"`
}

type BadgeResponse struct {
	Text  string `json:"text"`
	Color string `json:"color"`
}

type NarrationResponse struct {
	Text   string `json:"text"`
	Active bool   `json:"active"`
}

type MetaResp struct {
	RequestID string `json:"request_id"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func toCardResponse(v render.CardView) CardResponse {
	badges := make([]BadgeResponse, len(v.Badges))
	for i, b := range v.Badges {
		badges[i] = BadgeResponse{Text: b.Text, Color: b.Color}
	}
	return CardResponse{
		ID:          v.ID,
		Placeholder: v.Placeholder,
		Name:        v.Name,
		Image:       v.Image,
		Badges:      badges,
		Intro:       v.Intro,
		Size:        v.Size,
		Stats:       v.Stats,
		Expanded:    v.Expanded,
		Dancing:     v.Dancing,
		SpriteDelay: v.SpriteDelay,
		WrapDelay:   v.WrapDelay,
	}
}

func toStageResponse(v render.StageView, requestID string) StageResponse {
	cards := make([]CardResponse, len(v.Cards))
	for i, c := range v.Cards {
		cards[i] = toCardResponse(c)
	}
	return StageResponse{
		Shuffle:   v.Shuffle,
		Narrating: v.Narrating,
		Cards:     cards,
		Meta:      MetaResp{RequestID: requestID},
	}
}
