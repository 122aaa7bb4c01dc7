package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/b2jena/pokemon-dance/internal/config"
	"github.com/b2jena/pokemon-dance/internal/render"
)

var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Print random Pokémon cards to the terminal",
	Long: `Draw fetches random Pokémon and prints them as cards.

Examples:
  dexfeed draw
  dexfeed draw -n 5 --expand
  dexfeed draw --species --expand`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		count, _ := cmd.Flags().GetInt("count")
		species, _ := cmd.Flags().GetBool("species")
		expand, _ := cmd.Flags().GetBool("expand")

		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = drawConfig(cfg, cmd.Flags().Changed("species"), species)

		out := cmd.OutOrStdout()
		return draw(cmd.Context(), cfg, out, terminalWidth(out), count, expand)
	},
}

func init() {
	drawCmd.Flags().IntP("count", "n", 3, "number of cards to draw")
	drawCmd.Flags().Bool("species", false, "use the species description as flavor text")
	drawCmd.Flags().BoolP("expand", "e", false, "show each card's flavor text and stats")
}

// drawConfig applies the draw flags on top of the loaded config. Narration is
// always off for terminal output.
func drawConfig(cfg config.Config, speciesSet, species bool) config.Config {
	if speciesSet {
		cfg.UseSpeciesDescription = species
	}
	cfg.EnableNarration = false
	return cfg
}

func terminalWidth(out io.Writer) int {
	f, ok := out.(*os.File)
	if !ok {
		return 80
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return 80 // Default if we can't get terminal width
	}
	return width
}

func draw(ctx context.Context, cfg config.Config, out io.Writer, width, count int, expand bool) error {
	if count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", count)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	c, err := build(cfg, logger)
	if err != nil {
		return err
	}

	if err := c.feed.Bootstrap(ctx, count, 0); err != nil {
		return err
	}

	if expand {
		for _, card := range c.stage.View().Cards {
			if _, err := c.stage.Activate(card.ID); err != nil {
				return err
			}
		}
	}

	return render.NewTerminal(out, width).Render(c.stage.View())
}
