package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/machine-client/tsjanitor/constants/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config represents the structure of the configuration file
type Config struct {
	Version     string `mapstructure:"version"`
	ProjectRoot string `mapstructure:"project_root"`
	LintCommand string `mapstructure:"lint_command"`
	TestCommand string `mapstructure:"test_command"`
	Theme       string `mapstructure:"theme"`
}

// DefaultConfig values
var DefaultConfig = Config{
	Version:     "1.0.0",
	ProjectRoot: "",
	LintCommand: "npm run lint",
	TestCommand: "npm test",
	Theme:       "dracula",
}

// cfgFile holds the path to the configuration file (set via CLI)
var cfgFile string

// LoadConfigs initializes the configuration from file, flags, and environment variables, and returns the final config.
func LoadConfigs(rootCmd *cobra.Command, cwd string) *Config {
	var config *Config

	// Set default values using Viper
	setDefaults()

	// Automatically read environment variables
	viper.AutomaticEnv()

	// Explicitly bind environment variables to config keys
	bindEnv()

	// Check if the user provided a config file
	if cfgFile != "" {
		// Use the config file from the flag
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Error reading config file: %v", err)))
			os.Exit(1)
		}
	} else {
		// Look for configuration files in the current directory
		viper.SetConfigName("tsjanitor-config") // Name of config file (without extension)
		viper.AddConfigPath(cwd)                // Look in the current working directory

		// Support both JSON and YAML formats
		viper.SetConfigType("yaml") // Set default type
		if err := viper.ReadInConfig(); err != nil {
			// If YAML fails, try JSON
			viper.SetConfigType("json")
			_ = viper.ReadInConfig() // Continue with defaults if both fail
		}
	}

	// Bind CLI flags to override config values
	bindFlags(rootCmd)

	// Unmarshal the configuration into the Config struct
	if err := viper.Unmarshal(&config); err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Unable to decode into struct: %v", err)))
		os.Exit(1)
	}

	// The project root falls back to the invocation directory
	if config.ProjectRoot == "" {
		config.ProjectRoot = cwd
	}

	return config
}

// setDefaults sets all default configuration values
func setDefaults() {
	viper.SetDefault("version", DefaultConfig.Version)
	viper.SetDefault("project_root", DefaultConfig.ProjectRoot)
	viper.SetDefault("lint_command", DefaultConfig.LintCommand)
	viper.SetDefault("test_command", DefaultConfig.TestCommand)
	viper.SetDefault("theme", DefaultConfig.Theme)
}

// bindEnv explicitly binds environment variables to configuration keys
func bindEnv() {
	_ = viper.BindEnv("project_root", "PROJECT_ROOT")
	_ = viper.BindEnv("lint_command", "LINT_COMMAND")
	_ = viper.BindEnv("test_command", "TEST_COMMAND")
	_ = viper.BindEnv("theme", "THEME")
}

// bindFlags binds the CLI flags to configuration values.
func bindFlags(rootCmd *cobra.Command) {
	_ = viper.BindPFlag("project_root", rootCmd.PersistentFlags().Lookup("project_root"))
	_ = viper.BindPFlag("lint_command", rootCmd.PersistentFlags().Lookup("lint_command"))
	_ = viper.BindPFlag("test_command", rootCmd.PersistentFlags().Lookup("test_command"))
	_ = viper.BindPFlag("theme", rootCmd.PersistentFlags().Lookup("theme"))
}

// InitFlags initializes the flags for the root command.
func InitFlags(rootCmd *cobra.Command) {
	// Use PersistentFlags so that these flags are available in all subcommands
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Specifies the path to a configuration file (JSON or YAML) that contains all the settings for the application.")

	rootCmd.PersistentFlags().String("project_root", DefaultConfig.ProjectRoot, "Root directory of the TypeScript project to edit (defaults to the current directory).")
	rootCmd.PersistentFlags().String("lint_command", DefaultConfig.LintCommand, "Shell command that produces the lint diagnostics consumed by 'cleanup'.")
	rootCmd.PersistentFlags().String("test_command", DefaultConfig.TestCommand, "Shell command run after 'cleanup' to check for regressions.")
	rootCmd.PersistentFlags().String("theme", DefaultConfig.Theme, "Syntax highlight theme for dry-run diff previews (e.g., 'dracula', 'monokai').")

	// Version flag
	rootCmd.Flags().BoolP("version", "v", false, "Specifies the version of the application.")
}

// GetConfigFileType returns the type of the configuration file based on its extension
func GetConfigFileType(filename string) string {
	if strings.HasSuffix(filename, ".json") {
		return "json"
	} else if strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml") {
		return "yaml"
	}
	return ""
}
