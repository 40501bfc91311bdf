package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hildr/notion-cli/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Save your Notion API key to the config file",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the config file",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current config",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value (api_key or timeout)",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configPath()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	fmt.Print("Enter your Notion API key: ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	key := strings.TrimSpace(line)
	if key == "" {
		return fmt.Errorf("no API key entered")
	}

	cfg := config.Load(path)
	cfg.APIKey = key
	if err := config.Save(path, cfg); err != nil {
		return err
	}

	fmt.Printf("%s API key saved to %s\n", color.GreenString("✓"), path)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	cfg := config.Load(path)
	fmt.Printf("Config file: %s\n", path)
	if cfg.APIKey != "" {
		fmt.Printf("  api_key: %s\n", maskKey(cfg.APIKey))
	} else {
		fmt.Println("  api_key: (not set)")
	}
	if cfg.Timeout > 0 {
		fmt.Printf("  timeout: %d\n", cfg.Timeout)
	} else {
		fmt.Printf("  timeout: (default %d)\n", config.DefaultTimeoutSeconds)
	}

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	cfg := config.Load(path)
	key, value := args[0], args[1]

	switch key {
	case "api_key":
		cfg.APIKey = value
	case "timeout":
		secs, err := strconv.Atoi(value)
		if err != nil || secs <= 0 {
			return fmt.Errorf("timeout must be a positive integer, got %q", value)
		}
		cfg.Timeout = secs
	default:
		return fmt.Errorf("unknown config key %q (expected api_key or timeout)", key)
	}

	if err := config.Save(path, cfg); err != nil {
		return err
	}

	fmt.Printf("%s %s updated in %s\n", color.GreenString("✓"), key, path)
	return nil
}

// maskKey hides all but the tail of a credential for display.
func maskKey(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return "****" + key[len(key)-4:]
}
