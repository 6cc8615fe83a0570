package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/machine-client/tsjanitor/constants/lipgloss"
	"github.com/machine-client/tsjanitor/editor"
	"github.com/spf13/cobra"
)

// fixStepsCmd: tsjanitor fix-step-config
var fixStepsCmd = &cobra.Command{
	Use:   "fix-step-config",
	Short: "Remove unused WorkflowStepConfig imports from workflow steps",
	Long: `The 'fix-step-config' command walks the fixed list of workflow step files
and removes ", WorkflowStepConfig" from their import of
../engine/WorkflowStep.js. Files are written back only when the import
actually changed; rerunning over already-fixed files reports "No change".`,
	Run: func(cmd *cobra.Command, args []string) {
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		handleFixStepsCommand(cmd, dryRun)
	},
}

func init() {
	fixStepsCmd.Flags().Bool("dry-run", false, "Show diffs of pending edits without writing any file")

	rootCmd.AddCommand(fixStepsCmd)
}

func handleFixStepsCommand(cmd *cobra.Command, dryRun bool) {
	rootDependencies := handleRootCommand(cmd)
	if rootDependencies == nil {
		return
	}

	fileEditor := editor.NewEditor(dryRun, rootDependencies.Config.Theme)

	for _, relPath := range editor.StepConfigFiles {
		path := filepath.Join(rootDependencies.Config.ProjectRoot, relPath)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			fmt.Println(lipgloss.Yellow.Render(fmt.Sprintf("Skipping %s (not found)", relPath)))
			continue
		}

		changed, err := fileEditor.Apply(path, editor.StripStepConfigImport)
		if err != nil {
			fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
			continue
		}

		if changed && dryRun {
			fmt.Println(lipgloss.Green.Render(fmt.Sprintf("Would fix: %s", relPath)))
		} else if changed {
			fmt.Println(lipgloss.Green.Render(fmt.Sprintf("Fixed: %s", relPath)))
		} else {
			fmt.Printf("No change: %s\n", relPath)
		}
	}

	fmt.Println("Done!")
}
