package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shellsage/shellsage/cmd"
)

var (
	version = "v0.4.0" // Overwritten at build time
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "shellsage",
		Short: "AI-powered terminal assistant",
		Long: `shellsage turns natural language into ready-to-run shell commands and
explains failed commands: root cause, a suggested fix, risks, and
prevention tips. Works with a local Ollama model or hosted API providers.`,
		SilenceUsage: true,
	}

	// Disable automatic 'completion' command added by cobra
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Add subcommands
	rootCmd.AddCommand(
		cmd.NewAskCmd(),
		cmd.NewRunCmd(),
		cmd.NewModelsCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("shellsage version %s\n", version)
		},
	}
}
