package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TypeStyle is the badge decoration of one category.
type TypeStyle struct {
	Emoji string `json:"emoji"`
	Color string `json:"color"`
}

// DefaultTypeStyle decorates categories missing from the lookup table.
var DefaultTypeStyle = TypeStyle{Emoji: "🎲", Color: "#777"}

// TypeStyler resolves a category name to its badge decoration.
type TypeStyler interface {
	Style(typeName string) TypeStyle
}

// TypeStyleMap is an in-memory TypeStyler.
type TypeStyleMap map[string]TypeStyle

func (m TypeStyleMap) Style(typeName string) TypeStyle {
	if s, ok := m[typeName]; ok {
		return s
	}
	return DefaultTypeStyle
}

// Badge is a rendered category marker.
type Badge struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	Emoji string `json:"emoji"`
	Color string `json:"color"`
}

// Text is the emoji-tagged label, e.g. "⚡ Electric".
func (b Badge) Text() string {
	return b.Emoji + " " + b.Label
}

// DisplayModel is everything a card shows. Build it with NewDisplayModel.
type DisplayModel struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Image  string  `json:"image"`
	Badges []Badge `json:"badges"`
	Flavor string  `json:"flavor"`
	Size   string  `json:"size"`
	Stats  string  `json:"stats"`
}

// WithFlavor returns a copy of m carrying the given flavor text.
func (m DisplayModel) WithFlavor(text string) DisplayModel {
	m.Badges = append([]Badge(nil), m.Badges...)
	m.Flavor = text
	return m
}

// ResolveImage returns the first non-empty sprite in preference order:
// official artwork, default front sprite, dream world art.
func ResolveImage(s Sprites) (string, error) {
	for _, candidate := range []string{s.OfficialArtwork, s.FrontDefault, s.DreamWorld} {
		if candidate != "" {
			return candidate, nil
		}
	}
	return "", ErrNoImage
}

// NewDisplayModel derives the display model of p. Records without a usable image fail with ErrNoImage.
func NewDisplayModel(p Pokemon, styles TypeStyler) (DisplayModel, error) {
	image, err := ResolveImage(p.Sprites)
	if err != nil {
		return DisplayModel{}, fmt.Errorf("pokemon %d: %w", p.ID, err)
	}

	return DisplayModel{
		ID:     p.ID,
		Name:   Capitalize(p.Name),
		Image:  image,
		Badges: NewBadges(p.Types, styles),
		Size:   FormatSize(p.Height, p.Weight),
		Stats:  FormatStats(p.Stats),
	}, nil
}

// NewBadges decorates each category; unknown ones get DefaultTypeStyle.
func NewBadges(types []string, styles TypeStyler) []Badge {
	badges := make([]Badge, 0, len(types))
	for _, t := range types {
		style := DefaultTypeStyle
		if styles != nil {
			style = styles.Style(t)
		}
		badges = append(badges, Badge{
			Type:  t,
			Label: cases.Title(language.English).String(t),
			Emoji: style.Emoji,
			Color: style.Color,
		})
	}
	return badges
}

// BadgeLine joins badge texts with sep.
func BadgeLine(badges []Badge, sep string) string {
	parts := make([]string, len(badges))
	for i, b := range badges {
		parts[i] = b.Text()
	}
	return strings.Join(parts, sep)
}

// Capitalize upper-cases the first letter and leaves the rest untouched.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return cases.Upper(language.English).String(s[:size]) + s[size:]
}

// FormatSize renders catalog units (decimetres, hectograms) as "0.4m / 6.0kg".
func FormatSize(heightDM, weightHG int) string {
	return fmt.Sprintf("%.1fm / %.1fkg", float64(heightDM)/10, float64(weightHG)/10)
}

// FormatStats renders stats as "hp: 35, attack: 55".
func FormatStats(stats []Stat) string {
	parts := make([]string, len(stats))
	for i, s := range stats {
		parts[i] = fmt.Sprintf("%s: %d", s.Name, s.Base)
	}
	return strings.Join(parts, ", ")
}
