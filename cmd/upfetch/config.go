package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"upfetch/pkg/config"
	"upfetch/pkg/ui"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration files",
	Long: `Manage upfetch configuration files.

Configuration can be loaded from:
  - Command line flags (highest priority)
  - Environment variables (UPFETCH_*)
  - Configuration file
  - Default values (lowest priority)`,
}

// initCmd represents the config init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an example configuration file",
	Long: `Create an example configuration file with all available options.

The file will be created in the current directory as 'upfetch.yaml'
unless a different path is specified with the --config flag.`,
	Run: runConfigInit,
}

// showCmd represents the config show command
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long: `Show the effective configuration after merging all sources:
command line flags, environment variables, configuration file, and defaults.`,
	Run: runConfigShow,
}

// validateCmd represents the config validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration file",
	Long: `Validate a configuration file for syntax errors and invalid values.

This command checks YAML syntax, value types, and value ranges.`,
	Run: runConfigValidate,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(initCmd)
	configCmd.AddCommand(showCmd)
	configCmd.AddCommand(validateCmd)
}

const exampleConfig = `# upfetch configuration file
#
# All options can also be set through environment variables prefixed with
# UPFETCH_, for example: UPFETCH_OUTPUT, UPFETCH_LOG_LEVEL

# UniProt API settings
uniprot:
  # Search endpoint
  base_url: "https://rest.uniprot.org/uniprotkb/search"

  # User agent sent with every request
  user_agent: "upfetch/1.0 (+https://example.org)"

  # Records per page, max 500
  page_size: 500

  # Per-request timeout
  timeout: 60s

# Rate limiting
rate_limit:
  # Fixed pause before each request (~3 requests/sec)
  request_delay: 340ms

# Retry policy for transient failures (5xx, network errors)
retry:
  max_attempts: 5
  initial_delay: 250ms
  max_delay: 30s
  multiplier: 2.0

# Output settings
output:
  file: "uniprot_output.tsv"

# Logging
logging:
  # Log level (debug, info, warn, error)
  level: "info"

  # Optional log file (console only when empty)
  file: ""
`

func runConfigInit(cmd *cobra.Command, args []string) {
	configPath := configFile
	if configPath == "" {
		configPath = "upfetch.yaml"
	}

	if _, err := os.Stat(configPath); err == nil {
		ui.PrintError("Configuration file already exists", configPath)
		fmt.Println("\nTo overwrite, first remove the existing file:")
		fmt.Printf("  rm %s\n", configPath)
		os.Exit(1)
	}

	if err := os.WriteFile(configPath, []byte(exampleConfig), 0644); err != nil {
		ui.PrintError("Failed to write configuration file", err.Error())
		os.Exit(1)
	}

	ui.PrintSuccess("Created configuration file: " + configPath)
}

func runConfigShow(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(configFile, nil)
	if err != nil {
		ui.PrintError("Failed to load configuration", err.Error())
		os.Exit(1)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		ui.PrintError("Failed to render configuration", err.Error())
		os.Exit(1)
	}

	fmt.Print(string(data))
}

func runConfigValidate(cmd *cobra.Command, args []string) {
	configPath := configFile
	if configPath == "" {
		configPath = "upfetch.yaml"
	}

	cfg := config.DefaultConfig()
	if err := cfg.LoadFromFile(configPath); err != nil {
		ui.PrintError("Invalid configuration file", err.Error())
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		ui.PrintError("Invalid configuration", err.Error())
		os.Exit(1)
	}

	ui.PrintSuccess("Configuration is valid: " + configPath)
}
