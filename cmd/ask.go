package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shellsage/shellsage/pkg/config"
	"github.com/shellsage/shellsage/pkg/formatter"
	"github.com/shellsage/shellsage/pkg/generator"
	"github.com/shellsage/shellsage/pkg/llm"
	"github.com/shellsage/shellsage/pkg/model"
	"github.com/shellsage/shellsage/pkg/shell"
	"github.com/shellsage/shellsage/pkg/sysinfo"
)

var (
	execute      bool
	outputFormat string
	verbose      bool
)

func NewAskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask QUERY...",
		Short: "Generate a shell command from a natural language query",
		Long: `Describe what you want to do and get a ready-to-run shell command with an
explanation, technical details, and a safety check against destructive
suggestions.

Examples:
  # Ask for a command
  shellsage ask "list all files modified in the last 24 hours"

  # Generate and optionally execute it
  shellsage ask --execute "compress the logs directory"

  # Machine-readable output
  shellsage ask -o json "show disk usage by directory"`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAsk,
	}

	cmd.Flags().BoolVar(&execute, "execute", false, "Offer to execute the generated command")
	cmd.Flags().StringVarP(&outputFormat, "output", "o", "human", "Output format (human, json, yaml)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	return cmd
}

func runAsk(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	log := newLogger(verbose)
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	gateway, err := llm.NewGateway(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize model gateway: %w", err)
	}

	collector := sysinfo.NewCollector(log)
	qctx := collector.QueryContext(nil)

	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
	s.Suffix = " Consulting model..."
	s.Start()

	items := generator.New(gateway, log).Generate(cmd.Context(), query, qctx)

	s.Stop()

	if err := formatter.DisplayGeneration(items, outputFormat); err != nil {
		return err
	}

	if !execute {
		return nil
	}

	var command string
	for _, item := range items {
		if item.Type == model.TypeCommand {
			command = formatter.CleanCommand(item.Content)
			break
		}
	}
	if command == "" {
		return nil
	}

	if !confirm("\n› Execute command? [y]/n: ") {
		return nil
	}

	code, err := shell.RunInteractive(cmd.Context(), command)
	if err != nil {
		return fmt.Errorf("failed to execute command: %w", err)
	}
	if code != 0 {
		printError(fmt.Sprintf("Command exited with status %d", code))
	} else {
		printSuccess("Command completed")
	}
	return nil
}

// confirm asks a yes/no question on the terminal, defaulting to yes.
func confirm(prompt string) bool {
	fmt.Print(prompt)
	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	return strings.ToLower(strings.TrimSpace(answer)) != "n"
}

func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

func printSuccess(msg string) {
	green := color.New(color.FgGreen)
	green.Printf("✓ %s\n", msg)
}

func printError(msg string) {
	red := color.New(color.FgRed)
	red.Printf("✗ %s\n", msg)
}
