package domain

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
	// Float64 returns a random float in [0.0, 1.0).
	Float64() float64
}

// Sprites holds the image candidates of a record, flattened from the catalog's nested layout.
type Sprites struct {
	OfficialArtwork string `json:"official_artwork"`
	FrontDefault    string `json:"front_default"`
	DreamWorld      string `json:"dream_world"`
}

// Stat is a single named base stat.
type Stat struct {
	Name string `json:"name"`
	Base int    `json:"base"`
}

// Pokemon is the decoded catalog record for one entity.
type Pokemon struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Sprites    Sprites  `json:"sprites"`
	Types      []string `json:"types"`
	Stats      []Stat   `json:"stats"`
	Height     int      `json:"height"` // decimetres
	Weight     int      `json:"weight"` // hectograms
	SpeciesURL string   `json:"species_url"`
}

// FlavorText is one language-tagged description block of a species.
type FlavorText struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

// Species is the secondary record linked from a Pokemon.
type Species struct {
	Name        string       `json:"name"`
	FlavorTexts []FlavorText `json:"flavor_texts"`
}

// RandomID draws an id uniformly from [1, maxID].
func RandomID(rng RNG, maxID int) int {
	return rng.Intn(maxID) + 1
}
