package cmd

import (
	"fmt"
	"os"

	"github.com/machine-client/tsjanitor/config"
	"github.com/machine-client/tsjanitor/constants/lipgloss"
	"github.com/machine-client/tsjanitor/lint"
	"github.com/spf13/cobra"
)

// RootDependencies holds the wiring shared by all subcommands.
type RootDependencies struct {
	Config *config.Config
	Cwd    string
	Runner *lint.Runner
}

// RootCmd: tsjanitor
var rootCmd = &cobra.Command{
	Use:   "tsjanitor",
	Short: "One-shot maintenance jobs for the machine-client TypeScript project.",
	Long: `tsjanitor bundles the disposable maintenance jobs used to clean up the
machine-client TypeScript codebase: rewriting the monolithic dashboard client
into a delegating facade, stripping lint-reported dead code, and removing
stale imports from a fixed set of files.

Every edit is a best-effort regex substitution over file text, intended for a
single supervised run. Nothing here parses TypeScript syntax.`,
	Run: func(cmd *cobra.Command, args []string) {
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Printf("tsjanitor %s\n", config.DefaultConfig.Version)
			return
		}
		_ = cmd.Help()
	},
}

func init() {
	config.InitFlags(rootCmd)
}

// handleRootCommand loads configuration and builds the shared dependencies.
func handleRootCommand(cmd *cobra.Command) *RootDependencies {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Error getting current directory: %v", err)))
		return nil
	}

	cfg := config.LoadConfigs(rootCmd, cwd)

	return &RootDependencies{
		Config: cfg,
		Cwd:    cwd,
		Runner: lint.NewRunner(cfg.ProjectRoot),
	}
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
