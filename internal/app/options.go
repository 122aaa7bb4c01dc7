package app

// Options unify the three page variants into one configurable feed.
type Options struct {
	MaxID       int
	MaxAttempts int
	// UseSpeciesDescription takes flavor text from the species record instead of templates.
	UseSpeciesDescription bool
	EnableNarration       bool
	EnableShuffleEffect   bool
}

func DefaultOptions() Options {
	return Options{
		MaxID:               898,
		MaxAttempts:         5,
		EnableNarration:     true,
		EnableShuffleEffect: true,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.MaxID <= 0 {
		o.MaxID = d.MaxID
	}
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = d.MaxAttempts
	}
	return o
}
