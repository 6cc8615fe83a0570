package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"github.com/machine-client/tsjanitor/constants/lipgloss"
	"github.com/machine-client/tsjanitor/editor"
	"github.com/machine-client/tsjanitor/lint"
	"github.com/machine-client/tsjanitor/utils"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// cleanupCmd: tsjanitor cleanup
var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Delete lint-reported unused imports and parameters",
	Long: `The 'cleanup' command runs the configured lint command, collects every
"defined but never used" diagnostic from its output, and strips the reported
symbols from import lists and function signatures with regex substitutions.
Files are rewritten only when their content changed. The configured test
command runs afterwards and its result is reported, not acted on.`,
	Run: func(cmd *cobra.Command, args []string) {
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		skipTests, _ := cmd.Flags().GetBool("skip-tests")
		handleCleanupCommand(cmd, dryRun, skipTests)
	},
}

func init() {
	cleanupCmd.Flags().Bool("dry-run", false, "Show diffs of pending edits without writing any file")
	cleanupCmd.Flags().Bool("skip-tests", false, "Skip the test run after applying edits")

	rootCmd.AddCommand(cleanupCmd)
}

func handleCleanupCommand(cmd *cobra.Command, dryRun bool, skipTests bool) {
	rootDependencies := handleRootCommand(cmd)
	if rootDependencies == nil {
		return
	}

	// Create a context with cancel function
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	spinner := pterm.DefaultSpinner.WithStyle(pterm.NewStyle(pterm.FgLightBlue)).WithSequence("⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏").WithDelay(100).WithRemoveWhenDone(true)

	spinnerLint, _ := spinner.Start("Running lint...")
	lintOutput, _, err := rootDependencies.Runner.Run(ctx, rootDependencies.Config.LintCommand)
	spinnerLint.Stop()
	fmt.Print("\r")

	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		return
	}

	files := lint.ParseUnused(lintOutput)
	if len(files) == 0 {
		fmt.Println(lipgloss.Green.Render("✓ No unused items found!"))
		return
	}

	fileEditor := editor.NewEditor(dryRun, rootDependencies.Config.Theme)
	totalRemoved := applyFindings(fileEditor, files, rootDependencies.Config.ProjectRoot)

	fmt.Printf("\n🎯 Total items removed: %d\n", totalRemoved)

	if !dryRun {
		printGitSummary(rootDependencies.Config.ProjectRoot)
	}

	if skipTests {
		return
	}

	fmt.Println("\nRunning tests...")
	spinnerTests, _ := spinner.Start("Running tests...")
	_, exitCode, err := rootDependencies.Runner.Run(ctx, rootDependencies.Config.TestCommand)
	spinnerTests.Stop()
	fmt.Print("\r")

	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		return
	}
	if exitCode == 0 {
		fmt.Println(lipgloss.Green.Render("✅ ALL TESTS PASSING"))
	} else {
		fmt.Println(lipgloss.Red.Render("❌ TESTS FAILED - review changes"))
	}
}

// applyFindings strips the reported symbols from each file and returns the
// number of items attempted. Files that disappeared since the lint run are
// skipped silently.
func applyFindings(fileEditor *editor.Editor, files []lint.FileFindings, projectRoot string) int {
	totalRemoved := 0

	for _, fileFindings := range files {
		path := fileFindings.Path
		if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
			continue
		}

		fmt.Printf("\n📁 %s\n", displayPath(projectRoot, path))

		// Edit bottom-up so earlier substitutions don't shift later target lines
		findings := append([]lint.Finding(nil), fileFindings.Findings...)
		sort.Slice(findings, func(i, j int) bool {
			if findings[i].Line != findings[j].Line {
				return findings[i].Line > findings[j].Line
			}
			return findings[i].Symbol > findings[j].Symbol
		})

		changed, applyErr := fileEditor.Apply(path, func(content string) string {
			for _, finding := range findings {
				fmt.Printf("  ❌ DELETE: %s (line %d)\n", finding.Symbol, finding.Line)

				content = editor.RemoveFromImports(content, finding.Symbol)

				// If it's a parameter, try to remove it
				if editor.HasFunctionTokens(content) {
					content = editor.RemoveParameter(content, finding.Symbol, finding.Line)
				}

				totalRemoved++
			}
			return content
		})
		if applyErr != nil {
			fmt.Println(lipgloss.Red.Render(fmt.Sprintf("  %v", applyErr)))
			continue
		}
		if changed && !fileEditor.DryRun() {
			fmt.Println(lipgloss.Green.Render("  ✅ Saved"))
		}
	}

	return totalRemoved
}

// printGitSummary shows which files the run touched when the project root is
// a git repository.
func printGitSummary(projectRoot string) {
	gitOps := utils.NewGitOperations(projectRoot)
	if gitOps.CheckGitRepo() != nil {
		return
	}

	status, err := gitOps.GetGitStatus()
	if err != nil || strings.TrimSpace(status) == "" {
		return
	}

	fmt.Println(lipgloss.Gray.Render("\nWorking tree after cleanup:"))
	for _, line := range strings.Split(strings.TrimRight(status, "\n"), "\n") {
		fmt.Println(lipgloss.Gray.Render("  " + line))
	}
}

// displayPath prefers a project-relative path for readability.
func displayPath(projectRoot, path string) string {
	if rel, err := filepath.Rel(projectRoot, path); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return path
}
