package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hophop/internal/platform/tui"
	"github.com/vovakirdan/hophop/internal/storage"
)

var (
	flagFrontend    string
	flagLimit       int
	flagRecent      bool
	flagRunID       string
	flagInteractive bool
	flagClear       bool
	flagYes         bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded runs",
	Long: `Display the best recorded runs, newest runs, or a single run.

Every finished run is stored with the player, the frontend it was played
on, its score and its seed, so a run can be replayed with --seed.

Examples:
  hophop scores
  hophop scores --frontend ssh --limit 20
  hophop scores --recent
  hophop scores --id 6f1c...
  hophop scores --interactive
  hophop scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagFrontend, "frontend", "", "Only runs from this frontend: tui, window, ssh")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the newest runs instead of the best")
	scoresCmd.Flags().StringVar(&flagRunID, "id", "", "Show a single run")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Open the scoreboard")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
	scoresCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Do not ask before clearing")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		clearRuns(store)
	case flagInteractive:
		width, height := terminalSize()
		if _, err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
	case flagRunID != "":
		showRun(store, flagRunID)
	case flagRecent:
		runs, err := store.RecentRuns(flagLimit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Recent Runs")
		fmt.Println()
		printRuns(runs)
	default:
		runs, err := store.TopRuns(flagFrontend, flagLimit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
			os.Exit(1)
		}
		title := "High Scores"
		if flagFrontend != "" {
			title += " - " + flagFrontend
		}
		fmt.Println(title)
		fmt.Println()
		printRuns(runs)

		if len(runs) > 0 {
			if best, err := store.HighScore(flagFrontend); err == nil {
				fmt.Println()
				fmt.Printf("Best: %d\n", best)
			}
		}
	}
}

func printRuns(runs []storage.Run) {
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'hophop play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-12s  %-7s  %-6s  %-8s  %-16s  %s\n", "Rank", "Player", "Where", "Score", "Time", "Date", "ID")
	fmt.Printf("  %-4s  %-12s  %-7s  %-6s  %-8s  %-16s  %s\n", "----", "------", "-----", "-----", "----", "----", "--")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-12s  %-7s  %-6d  %-8s  %-16s  %s\n",
			i+1, truncate(r.Player, 12), r.Frontend, r.Score,
			formatDuration(r), r.CreatedAt.Local().Format("2006-01-02 15:04"), shortID(r.ID))
	}
}

func showRun(store *storage.Store, id string) {
	run, err := store.RunByID(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving run: %v\n", err)
		os.Exit(1)
	}
	if run == nil {
		fmt.Fprintf(os.Stderr, "Error: no run with id %q\n", id)
		os.Exit(1)
	}

	fmt.Printf("Run %s\n\n", run.ID)
	fmt.Printf("  Player:    %s\n", run.Player)
	fmt.Printf("  Frontend:  %s\n", run.Frontend)
	fmt.Printf("  Score:     %d\n", run.Score)
	fmt.Printf("  Best:      %d\n", run.Best)
	fmt.Printf("  Duration:  %s\n", formatDuration(*run))
	fmt.Printf("  Seed:      %d\n", run.Seed)
	fmt.Printf("  Played:    %s\n", run.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Println()
	fmt.Printf("Replay the same pipes with 'hophop play --seed %d'\n", run.Seed)
}

func clearRuns(store *storage.Store) {
	if !flagYes {
		fmt.Print("Delete all recorded runs? [y/N] ")
		answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
			fmt.Println("Cancelled.")
			return
		}
	}
	if err := store.ClearRuns(); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("All runs deleted.")
}

func formatDuration(r storage.Run) string {
	return r.Duration.Round(100 * time.Millisecond).String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
