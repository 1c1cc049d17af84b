package cmd

import (
	"fmt"
	"os"

	"github.com/oaz/profiler/internal/app"
	"github.com/oaz/profiler/internal/assessment"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Run an interactive assessment session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAssess(cmd)
	},
}

func init() {
	// Bare `profiler` is a shortcut for `profiler assess`, so both
	// commands carry the same flags.
	for _, fs := range []*pflag.FlagSet{assessCmd.Flags(), rootCmd.Flags()} {
		fs.String("bank", "", "Path to a YAML item bank (default: the built-in bank)")
		fs.String("mode", string(assessment.ModeAdaptive), "Selection mode: adaptive or fixed_block")
		fs.String("user", "local", "User reference recorded on the session")
		fs.Bool("llm", false, "Grade open-ended answers with the configured model provider")
	}
}

func runAssess(cmd *cobra.Command) error {
	bank, _ := cmd.Flags().GetString("bank")
	modeStr, _ := cmd.Flags().GetString("mode")
	user, _ := cmd.Flags().GetString("user")
	useLLM, _ := cmd.Flags().GetBool("llm")

	mode := assessment.Mode(modeStr)
	switch mode {
	case assessment.ModeAdaptive, assessment.ModeFixedBlock:
	default:
		return fmt.Errorf("unknown mode %q", modeStr)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}

	ctx := cmd.Context()
	a, err := app.Build(ctx, app.Options{
		BankPath: bank,
		DBPath:   dbPath,
		Mode:     mode,
		UseLLM:   useLLM,
	})
	if err != nil {
		return err
	}
	defer a.Close()

	return a.RunInteractive(ctx, user, mode, os.Stdin, os.Stdout)
}
