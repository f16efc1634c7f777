// starfall is a terminal arcade shooter: clear hostile ships from a
// rotating starfield and leap between procedurally generated galaxies.
//
// Usage:
//
//	starfall list              - List available modes
//	starfall play <mode>       - Play a mode
//	starfall menu              - Interactive mode picker
//	starfall serve             - Start SSH server for remote play
//	starfall scores <mode>     - Show high scores for a mode
//	starfall prefs             - Show or change stored preferences
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.starfall/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import modes to register them
	_ "github.com/vovakirdan/starfall/internal/games/starfall"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "starfall",
	Short: "Starfall - clear the galaxy, one starfield at a time",
	Long: `Starfall is a terminal arcade shooter. A sphere of stars, asteroids
and hostile ships rotates in front of you; click targets to destroy them,
clear every hostile to leap to the next galaxy.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  prefs    - Show or change stored preferences

Examples:
  starfall play starfall
  starfall play starfall_zen --difficulty easy
  starfall menu
  starfall serve --ssh :2222
  starfall scores starfall`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.starfall/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(prefsCmd)
}
