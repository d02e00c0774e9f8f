// arcade is a neon terminal arcade with two real-time games.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--log-file <path>     - Write logs to a file
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/cyberarcade/neon-arcade/internal/games/neoncipher"
	"github.com/cyberarcade/neon-arcade/internal/games/voidrunner"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLogFile    string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Cyberpunk Arcade - neon games in your terminal",
	Long: `Cyberpunk Arcade is a terminal gaming platform with two games:

  voidrunner  - Void Runner, steer a ship through falling debris
  neoncipher  - Neon Cipher, memorize and replay a glowing sequence

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores and statistics

Examples:
  arcade list
  arcade play voidrunner
  arcade play neoncipher --difficulty hard
  arcade menu
  arcade serve --ssh :2222
  arcade scores voidrunner`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return configureGames(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discarded, stderr for serve)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// logger is shared by the games and the platform. It discards output
// unless --log-file is set, except for serve which logs to stderr.
var (
	logger    *log.Logger
	logOutput io.WriteCloser
)

// configureGames applies the shared flags to every game package.
func configureGames(cmd *cobra.Command) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	var fallback io.Writer = io.Discard
	if cmd.Name() == "serve" {
		fallback = os.Stderr
	}
	logger = newLogger(fallback)

	voidrunner.SetConfigPath(flagConfig)
	voidrunner.SetDifficultyPreset(flagDifficulty)
	voidrunner.SetLogger(logger)

	neoncipher.SetConfigPath(flagConfig)
	neoncipher.SetDifficultyPreset(flagDifficulty)
	neoncipher.SetLogger(logger)
	return nil
}

// newLogger returns a logger writing to --log-file, or to fallback when
// no file was given.
func newLogger(fallback io.Writer) *log.Logger {
	w := fallback
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot open log file: %v\n", err)
		} else {
			logOutput = f
			w = f
		}
	}

	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
	})
	if logOutput != nil {
		l.SetLevel(log.DebugLevel)
	}
	return l
}

// closeLog closes the log file, if any.
func closeLog() {
	if logOutput != nil {
		logOutput.Close()
		logOutput = nil
	}
}
