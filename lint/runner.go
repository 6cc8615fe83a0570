package lint

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Runner executes the configured lint and test commands with the working
// directory pinned to the project root, capturing combined output.
type Runner struct {
	workDir string
}

// NewRunner creates a new runner for the given project root.
func NewRunner(workDir string) *Runner {
	return &Runner{workDir: workDir}
}

// Run executes a shell command and returns its combined stdout+stderr and
// exit code. A non-zero exit is not an error: lint commands conventionally
// exit non-zero when they have findings. An error is returned only when the
// command cannot be started at all.
func (r *Runner) Run(ctx context.Context, command string) (string, int, error) {
	if command == "" {
		return "", 0, fmt.Errorf("empty command provided")
	}

	// Security checks
	if err := r.validateCommand(command); err != nil {
		return "", 0, fmt.Errorf("command validation failed: %v", err)
	}

	// Platform-specific execution
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.CommandContext(ctx, "cmd", "/C", command)
	} else {
		// Unix-like systems
		cmd = exec.CommandContext(ctx, "bash", "-c", command)
	}
	cmd.Dir = r.workDir

	output, err := cmd.CombinedOutput()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return string(output), exitErr.ExitCode(), nil
		}
		return string(output), 0, fmt.Errorf("command execution failed: %v", err)
	}

	return string(output), 0, nil
}

// validateCommand performs security checks on the configured command
func (r *Runner) validateCommand(command string) error {
	// List of dangerous commands/patterns to reject
	dangerousPatterns := []string{
		"rm -rf /",
		":(){ :|:& };:", // Fork bomb
		"> /dev/sda",    // Disk overwrite
		"wipefs",
		"fdisk",
		"mkfs",
		"dd if=",
	}

	cmdLower := strings.ToLower(command)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(cmdLower, strings.ToLower(pattern)) {
			return fmt.Errorf("potentially dangerous command detected: %s", pattern)
		}
	}

	return nil
}
