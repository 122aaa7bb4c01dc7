package app

import (
	"context"
	"log/slog"
	"sync"

	"github.com/b2jena/pokemon-dance/internal/ports"
)

// Narrator owns the single active utterance. Starting a new one cancels the previous
// and waits for it to stop, so at most one utterance runs at any time.
// A nil Narrator, or one without a speaker, skips narration silently.
type Narrator struct {
	speaker ports.Speaker
	logger  *slog.Logger

	mu      sync.Mutex
	current string
	cancel  context.CancelFunc
	done    chan struct{}
}

func NewNarrator(speaker ports.Speaker, logger *slog.Logger) *Narrator {
	return &Narrator{speaker: speaker, logger: logger}
}

// Speak starts narrating text, replacing any utterance in flight.
func (n *Narrator) Speak(text string) {
	if n == nil || n.speaker == nil {
		return
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	n.stopLocked()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	n.current, n.cancel, n.done = text, cancel, done

	go n.run(ctx, cancel, done, text)
}

// Stop cancels the active utterance, if any, and waits for it to end.
func (n *Narrator) Stop() {
	if n == nil {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.stopLocked()
}

// Current returns the text being narrated, or "" when idle.
func (n *Narrator) Current() string {
	if n == nil {
		return ""
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

func (n *Narrator) run(ctx context.Context, cancel context.CancelFunc, done chan struct{}, text string) {
	err := n.speaker.Speak(ctx, text)
	close(done)
	if err != nil {
		n.logger.Warn("narration failed", "error", err)
	}

	n.mu.Lock()
	if n.done == done {
		n.current, n.cancel, n.done = "", nil, nil
	}
	n.mu.Unlock()
	cancel()
}

// stopLocked must be called with n.mu held.
func (n *Narrator) stopLocked() {
	if n.cancel == nil {
		return
	}
	n.cancel()
	<-n.done
	n.current, n.cancel, n.done = "", nil, nil
}
