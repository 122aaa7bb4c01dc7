package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// FallbackDescription is used when a species has no English flavor text.
const FallbackDescription = "A mysterious Pokémon!"

// introLines is the pool TemplateIntro draws from.
var introLines = []func(name, types, height, weight string) string{
	func(n, _, _, _ string) string { return n + " is feeling groovy!" },
	func(n, _, _, _ string) string { return n + " joined the dance floor." },
	func(n, _, _, _ string) string { return "Watch " + n + " wiggle to the beat!" },
	func(n, t, _, _ string) string { return fmt.Sprintf("%s brings %s vibes.", n, t) },
	func(n, _, h, w string) string { return fmt.Sprintf("%s is %sm tall and weighs %skg.", n, h, w) },
	func(n, _, _, _ string) string { return n + " says hello with a spin!" },
	func(n, _, _, _ string) string { return n + " shows off a signature move!" },
}

// IntroLineCount is the size of the template pool.
func IntroLineCount() int { return len(introLines) }

// TemplateIntro joins two distinct template lines, picked uniformly without replacement.
func TemplateIntro(m DisplayModel, heightDM, weightHG int, rng RNG) string {
	picks, err := PickDistinct(len(introLines), 2, rng)
	if err != nil {
		return ""
	}

	types := BadgeLine(m.Badges, " / ")
	height := strconv.FormatFloat(float64(heightDM)/10, 'f', -1, 64)
	weight := strconv.FormatFloat(float64(weightHG)/10, 'f', -1, 64)

	lines := make([]string, len(picks))
	for i, p := range picks {
		lines[i] = introLines[p](m.Name, types, height, weight)
	}
	return strings.Join(lines, " ")
}

// SpeciesDescription returns the first English flavor text with form feeds turned into spaces.
func SpeciesDescription(s Species) string {
	for _, entry := range s.FlavorTexts {
		if entry.Language != "en" {
			continue
		}
		if text := strings.ReplaceAll(entry.Text, "\f", " "); text != "" {
			return text
		}
		break
	}
	return FallbackDescription
}
