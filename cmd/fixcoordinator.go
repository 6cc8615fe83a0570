package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/machine-client/tsjanitor/constants/lipgloss"
	"github.com/machine-client/tsjanitor/editor"
	"github.com/spf13/cobra"
)

// fixCoordinatorCmd: tsjanitor fix-coordinator
var fixCoordinatorCmd = &cobra.Command{
	Use:   "fix-coordinator",
	Short: "Remove unused WorkflowCoordinator imports from test files",
	Long: `The 'fix-coordinator' command checks the fixed list of test files for a
stale WorkflowCoordinator import. The import is removed only when it is the
sole occurrence of the symbol in the file; a file that references the symbol
anywhere else is reported as using it and left untouched.`,
	Run: func(cmd *cobra.Command, args []string) {
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		handleFixCoordinatorCommand(cmd, dryRun)
	},
}

func init() {
	fixCoordinatorCmd.Flags().Bool("dry-run", false, "Show diffs of pending edits without writing any file")

	rootCmd.AddCommand(fixCoordinatorCmd)
}

func handleFixCoordinatorCommand(cmd *cobra.Command, dryRun bool) {
	rootDependencies := handleRootCommand(cmd)
	if rootDependencies == nil {
		return
	}

	fileEditor := editor.NewEditor(dryRun, rootDependencies.Config.Theme)

	for _, relPath := range editor.CoordinatorTestFiles {
		path := filepath.Join(rootDependencies.Config.ProjectRoot, relPath)
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			fmt.Println(lipgloss.Yellow.Render(fmt.Sprintf("Skipping %s (not found)", relPath)))
			continue
		}
		if err != nil {
			fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Error reading %s: %v", relPath, err)))
			continue
		}

		result := editor.StripCoordinatorImport(string(data))
		switch result.Outcome {
		case editor.CoordinatorNotFound:
			fmt.Printf("Not found in %s\n", relPath)
		case editor.CoordinatorUsed:
			fmt.Printf("Used in %s (%d times)\n", relPath, result.Count)
		case editor.CoordinatorNoChange:
			fmt.Printf("No change needed: %s\n", relPath)
		case editor.CoordinatorFixed:
			_, applyErr := fileEditor.Apply(path, func(content string) string {
				return editor.StripCoordinatorImport(content).Content
			})
			if applyErr != nil {
				fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", applyErr)))
				continue
			}
			if dryRun {
				fmt.Println(lipgloss.Green.Render(fmt.Sprintf("Would fix: %s", relPath)))
			} else {
				fmt.Println(lipgloss.Green.Render(fmt.Sprintf("Fixed: %s", relPath)))
			}
		}
	}

	fmt.Println("Done!")
}
