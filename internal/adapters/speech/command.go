// Package speech narrates text through a platform text-to-speech command.
package speech

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// candidates are tried in order when no command is configured.
var candidates = []string{"espeak-ng", "espeak", "say", "spd-say"}

// CommandSpeaker implements ports.Speaker by running a TTS binary with the text as last argument.
type CommandSpeaker struct {
	path string
	args []string
}

// Detect finds a usable TTS command. An empty command tries the known candidates.
// It reports false when nothing is installed; narration is then skipped.
func Detect(command string, args ...string) (*CommandSpeaker, bool) {
	names := candidates
	if command != "" {
		names = []string{command}
	}
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return &CommandSpeaker{path: path, args: args}, true
		}
	}
	return nil, false
}

// Speak runs the command and blocks until it exits. Cancelling ctx kills the process
// and is not reported as an error.
func (s *CommandSpeaker) Speak(ctx context.Context, text string) error {
	args := append(append([]string(nil), s.args...), text)
	cmd := exec.CommandContext(ctx, s.path, args...) //nolint:gosec // G204: path resolved by LookPath
	err := cmd.Run()
	if ctx.Err() != nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return fmt.Errorf("speech command exited with %d", exitErr.ExitCode())
	}
	return err
}
