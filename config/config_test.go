package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "tsjanitor"}
	InitFlags(cmd)
	return cmd
}

func TestLoadConfigs_Defaults(t *testing.T) {
	viper.Reset()
	cwd := t.TempDir()

	cfg := LoadConfigs(newTestCommand(), cwd)

	assert.Equal(t, "npm run lint", cfg.LintCommand)
	assert.Equal(t, "npm test", cfg.TestCommand)
	assert.Equal(t, "dracula", cfg.Theme)
	// Without an explicit project root the invocation directory is used
	assert.Equal(t, cwd, cfg.ProjectRoot)
}

func TestLoadConfigs_FileOverride(t *testing.T) {
	viper.Reset()
	cwd := t.TempDir()

	configContent := "lint_command: pnpm lint\nproject_root: /srv/machine-client\n"
	require.NoError(t, os.WriteFile(filepath.Join(cwd, "tsjanitor-config.yaml"), []byte(configContent), 0644))

	cfg := LoadConfigs(newTestCommand(), cwd)

	assert.Equal(t, "pnpm lint", cfg.LintCommand)
	assert.Equal(t, "/srv/machine-client", cfg.ProjectRoot)
	// Keys absent from the file keep their defaults
	assert.Equal(t, "npm test", cfg.TestCommand)
}

func TestLoadConfigs_EnvOverride(t *testing.T) {
	viper.Reset()
	cwd := t.TempDir()

	t.Setenv("TEST_COMMAND", "pnpm test --run")

	cfg := LoadConfigs(newTestCommand(), cwd)

	assert.Equal(t, "pnpm test --run", cfg.TestCommand)
}

func TestGetConfigFileType(t *testing.T) {
	assert.Equal(t, "json", GetConfigFileType("tsjanitor-config.json"))
	assert.Equal(t, "yaml", GetConfigFileType("tsjanitor-config.yaml"))
	assert.Equal(t, "yaml", GetConfigFileType("tsjanitor-config.yml"))
	assert.Equal(t, "", GetConfigFileType("tsjanitor-config.toml"))
}
