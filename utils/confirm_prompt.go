package utils

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/machine-client/tsjanitor/constants/lipgloss"
)

// ConfirmPrompt asks the user to confirm an action against the given target
// and returns true for an explicit yes. EOF counts as a no.
func ConfirmPrompt(target string, reader *bufio.Reader) (bool, error) {
	fmt.Print(lipgloss.BlueSky.Render(fmt.Sprintf("Apply changes to %s? (y/N): ", target)))

	response, err := reader.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			return false, nil
		}
		return false, fmt.Errorf("error reading input: %w", err)
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}
