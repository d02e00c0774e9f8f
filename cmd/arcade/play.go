package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cyberarcade/neon-arcade/internal/core"
	"github.com/cyberarcade/neon-arcade/internal/platform/tui"
	"github.com/cyberarcade/neon-arcade/internal/registry"
	"github.com/cyberarcade/neon-arcade/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Void Runner controls:
  A/D, Left/Right  - Steer
  Enter            - Start
  P                - Pause
  R, Enter         - Restart (after game over)

Neon Cipher controls:
  Arrows, HJKL     - Move the tile cursor
  Enter/Space      - Select tile (or click it)
  P                - Pause
  R, Enter         - Restart (after game over)

Common:
  Esc/B            - Back
  Ctrl+S           - Save a screenshot to ~/.arcade/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower start, gentler progression
  normal - The default tuning
  hard   - Faster start, steeper progression
  fixed  - No progression, stays at the starting level

Examples:
  arcade play voidrunner
  arcade play voidrunner --difficulty hard
  arcade play neoncipher --seed 42
  arcade play voidrunner --config ./my-voidrunner.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

// terminalConfig builds the runtime config from the flags and the
// current terminal size.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database, or returns nil so games still run
// with an in-memory best score.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()

	runErr := tui.Run(game, store, terminalConfig(), logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
