package cmd

import (
	"github.com/oaz/profiler/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "profiler",
	Short: "Adaptive AI-proficiency assessment",
	Long:  "Profiler runs a short adaptive assessment and maps your AI/ML proficiency across nine competencies.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAssess(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PROFILER_DB env var)")

	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PROFILER_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
