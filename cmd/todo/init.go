package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/flashingpumpkin/todo/internal/config"
	"github.com/spf13/cobra"
)

// newInitCmd creates the init subcommand.
func newInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a default configuration file",
		Long: `Create a default .todo/config.toml configuration file in the current directory.

The file lists every setting with its default value:
- Colour theme
- Sample tasks shown at startup
- Status message timeout and coalescing
- Log level, format and destination

If the configuration file already exists, the command will fail unless --force is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, force)
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing configuration file")
	return cmd
}

func runInit(cmd *cobra.Command, force bool) error {
	workingDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	configPath := config.ConfigPath(workingDir)

	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	content, err := config.Encode(config.NewConfig())
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", configDir, err)
	}

	if err := os.WriteFile(configPath, content, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", configPath)
	return nil
}
