package cmd

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/machine-client/tsjanitor/constants/lipgloss"
	"github.com/machine-client/tsjanitor/embed_data"
	"github.com/machine-client/tsjanitor/utils"
	"github.com/spf13/cobra"
)

// dashboardRelPath is the file replaced wholesale by the rewrite.
const dashboardRelPath = "src/dashboard.ts"

// rewriteCmd: tsjanitor rewrite-dashboard
var rewriteCmd = &cobra.Command{
	Use:   "rewrite-dashboard",
	Short: "Overwrite src/dashboard.ts with the delegating API facade",
	Long: `The 'rewrite-dashboard' command replaces src/dashboard.ts under the project
root with the embedded facade that delegates project and task operations to
ProjectAPI and TaskAPI. The previous content is not inspected or merged; this
is a destructive full overwrite.`,
	Run: func(cmd *cobra.Command, args []string) {
		force, _ := cmd.Flags().GetBool("force")
		handleRewriteCommand(cmd, force)
	},
}

func init() {
	rewriteCmd.Flags().BoolP("force", "f", false, "Overwrite without confirmation")

	rootCmd.AddCommand(rewriteCmd)
}

func handleRewriteCommand(cmd *cobra.Command, force bool) {
	rootDependencies := handleRootCommand(cmd)
	if rootDependencies == nil {
		return
	}

	target := filepath.Join(rootDependencies.Config.ProjectRoot, dashboardRelPath)

	if !force {
		fmt.Println(lipgloss.Yellow.Render(fmt.Sprintf("This will overwrite %s entirely.", target)))
		accepted, err := utils.ConfirmPrompt(dashboardRelPath, bufio.NewReader(os.Stdin))
		if err != nil {
			fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
			return
		}
		if !accepted {
			fmt.Println(lipgloss.Yellow.Render("Rewrite cancelled."))
			return
		}
	}

	if err := os.WriteFile(target, embed_data.DashboardReplacement, 0644); err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Error writing %s: %v", target, err)))
		os.Exit(1)
	}

	lineCount := bytes.Count(embed_data.DashboardReplacement, []byte("\n")) + 1
	fmt.Println(lipgloss.Green.Render("✓ dashboard.ts refactored successfully!"))
	fmt.Printf("New file size: %d lines (%s)\n", lineCount, humanize.Bytes(uint64(len(embed_data.DashboardReplacement))))
}
