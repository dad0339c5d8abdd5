package main

import (
	"fmt"
	"os"

	"e2enotify/internal/cli"
	"e2enotify/internal/cli/commands"
	"e2enotify/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "e2enotify",
		Short:   "Test-run notification reporter",
		Long:    `Notification reporters for end-to-end test runs. Consume a runner's event stream, summarize it, and post the result to Discord and Telegram, or send ad-hoc task notifications.`,
		Version: version,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
