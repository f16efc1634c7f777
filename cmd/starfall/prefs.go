package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/starfall/internal/storage"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs [key] [value]",
	Short: "Show or change stored preferences",
	Long: `Show or change preferences stored in the scores database.

Known keys:
  volume       - Sound volume, 0-100
  language     - UI language code (e.g. en, ru)
  laser_color  - Laser palette index

With no arguments, all preferences are printed. With a key, its current
value is printed. With a key and value, the preference is updated.

Examples:
  starfall prefs
  starfall prefs volume
  starfall prefs volume 60
  starfall prefs language ru`,
	Args: cobra.MaximumNArgs(2),
	Run:  runPrefs,
}

var knownPrefs = []string{storage.PrefVolume, storage.PrefLanguage, storage.PrefLaserColor}

func runPrefs(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch len(args) {
	case 0:
		for _, key := range knownPrefs {
			v, ok, prefErr := store.Pref(key)
			if prefErr != nil {
				fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", key, prefErr)
				os.Exit(1)
			}
			if !ok {
				v = "(unset)"
			}
			fmt.Printf("  %-12s %s\n", key, v)
		}

	case 1:
		v, ok, prefErr := store.Pref(args[0])
		if prefErr != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", args[0], prefErr)
			os.Exit(1)
		}
		if !ok {
			fmt.Println("(unset)")
			return
		}
		fmt.Println(v)

	case 2:
		key, value := args[0], args[1]
		if key == storage.PrefVolume {
			if vol, convErr := strconv.Atoi(value); convErr != nil || vol < 0 || vol > 100 {
				fmt.Fprintln(os.Stderr, "Error: volume must be a number between 0 and 100")
				os.Exit(1)
			}
		}
		if setErr := store.SetPref(key, value); setErr != nil {
			fmt.Fprintf(os.Stderr, "Error saving %s: %v\n", key, setErr)
			os.Exit(1)
		}
		fmt.Printf("%s = %s\n", key, value)
	}
}
