package ports

import "context"

// Speaker is a text-to-speech backend.
type Speaker interface {
	// Speak blocks until the utterance finishes or ctx is cancelled.
	Speak(ctx context.Context, text string) error
}
