package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/oaz/profiler/internal/competency"
	"github.com/oaz/profiler/internal/profile"
	"github.com/oaz/profiler/internal/recommend"
	"github.com/oaz/profiler/internal/store"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report [session-id]",
	Short: "Show the proficiency report for a finished session",
	Long:  "Without an argument, reports the most recent finished session.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		var snap *profile.Snapshot
		if len(args) == 1 {
			snap, err = s.SnapshotRepo().BySession(ctx, args[0])
		} else {
			snap, err = s.SnapshotRepo().Latest(ctx)
		}
		if err != nil {
			return fmt.Errorf("load snapshot: %w", err)
		}
		if snap == nil {
			fmt.Println("No finished sessions found.")
			return nil
		}

		printSnapshot(snap)
		return nil
	},
}

func printSnapshot(snap *profile.Snapshot) {
	fmt.Printf("Session:  %s\n", snap.SessionID)
	fmt.Printf("Taken:    %s\n", snap.TakenAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Printf("Overall:  %.0f / 100  (%s)\n\n", snap.GlobalScore, snap.GlobalLevel)

	fmt.Printf("%-28s  %-6s  %-5s  %-5s  %s\n", "Competency", "Score", "Level", "±CI", "Items")
	fmt.Println(strings.Repeat("─", 58))
	for _, c := range snap.Competencies {
		fmt.Printf("%-28s  %-6.0f  %-5s  %-5.1f  %d\n",
			competency.DisplayName(c.Competency), c.Score, c.Level, c.CI, c.ItemsAnswered)
	}

	rec := recommend.Generate(snap, recommend.DefaultConfig())
	fmt.Println()
	fmt.Println(rec.Summary)
	for _, t := range rec.Tracks {
		fmt.Printf("  [%s] %s: %s → %s\n",
			t.Priority, t.CompetencyName, t.CurrentLevel, t.TargetLevel)
	}
}
