package render

import (
	"fmt"
	"io"
	"strings"

	colorize "github.com/fatih/color"
)

// Terminal materializes card views as text blocks on a terminal.
type Terminal struct {
	out   io.Writer
	width int
}

func NewTerminal(out io.Writer, width int) *Terminal {
	if width <= 0 {
		width = 80 // Default if we can't get terminal width
	}
	return &Terminal{out: out, width: width}
}

// RenderCard prints one card. Expanded cards include their intro and size lines.
func (t *Terminal) RenderCard(c CardView) error {
	var lines []string

	if c.Placeholder {
		lines = append(lines,
			colorize.RedString("✗ %s", c.Name),
			colorize.HiBlackString("%s", c.BadgeLine),
		)
		return t.write(lines)
	}

	lines = append(lines, colorize.HiWhiteString("%s", c.Name))
	lines = append(lines, colorize.CyanString("Types: ")+colorize.HiWhiteString("%s", c.BadgeLine))
	lines = append(lines, colorize.CyanString("Image: ")+c.Image)

	if c.Expanded {
		if c.Intro != "" {
			lines = append(lines, "")
			lines = append(lines, wrapText(c.Intro, t.width-2)...)
		}
		if c.Size != "" {
			lines = append(lines, colorize.CyanString("Size:  ")+c.Size)
		}
		if c.Stats != "" {
			lines = append(lines, colorize.CyanString("Stats: ")+c.Stats)
		}
	}

	return t.write(lines)
}

// Render prints every card of the stage, separated by rules.
func (t *Terminal) Render(stage StageView) error {
	for _, c := range stage.Cards {
		if err := t.RenderCard(c); err != nil {
			return err
		}
	}
	return nil
}

func (t *Terminal) write(lines []string) error {
	rule := strings.Repeat("─", min(t.width, 40))
	if _, err := fmt.Fprintln(t.out, rule); err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(t.out, line); err != nil {
			return err
		}
	}
	return nil
}

// wrapText breaks text into lines of at most width runes, splitting on spaces.
func wrapText(text string, width int) []string {
	if width < 20 {
		width = 20 // Minimum width for text
	}
	var lines []string
	var current strings.Builder
	for _, word := range strings.Fields(text) {
		if current.Len() > 0 && len([]rune(current.String()))+1+len([]rune(word)) > width {
			lines = append(lines, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(word)
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}
