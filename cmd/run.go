package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/shellsage/shellsage/pkg/config"
	"github.com/shellsage/shellsage/pkg/diagnose"
	"github.com/shellsage/shellsage/pkg/formatter"
	"github.com/shellsage/shellsage/pkg/history"
	"github.com/shellsage/shellsage/pkg/llm"
	"github.com/shellsage/shellsage/pkg/shell"
	"github.com/shellsage/shellsage/pkg/sysinfo"
)

var (
	runAnalyze      bool
	runExitCode     int
	runOutputFormat string
	runVerbose      bool
)

func NewRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run COMMAND...",
		Short: "Run a command and explain it if it fails",
		Long: `Execute a command through the shell and, when it exits nonzero, analyze
the failure: root cause, a ready-to-run fix, risks, and prevention tips.

Flags must come before the command so its own flags pass through untouched.

Examples:
  # Run a command with failure analysis
  shellsage run git push origin main

  # Analyze a command that already failed (shell hook form)
  shellsage run --analyze --exit-code 128 "git push origin main"`,
		Args: cobra.MinimumNArgs(1),
		RunE: runRun,
	}

	// Leave everything after the first positional argument untouched so
	// the wrapped command keeps its own flags.
	cmd.Flags().SetInterspersed(false)

	cmd.Flags().BoolVar(&runAnalyze, "analyze", false, "Analyze an already-failed command instead of running it")
	cmd.Flags().IntVar(&runExitCode, "exit-code", 0, "Exit code reported by the shell hook")
	cmd.Flags().MarkHidden("analyze")
	cmd.Flags().MarkHidden("exit-code")
	cmd.Flags().StringVarP(&runOutputFormat, "output", "o", "human", "Output format (human, json, yaml)")
	cmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Verbose output")

	return cmd
}

func runRun(cmd *cobra.Command, args []string) error {
	command := strings.Join(args, " ")
	log := newLogger(runVerbose)
	defer log.Sync()

	ring := history.New()
	ring.Add(command)

	if runAnalyze {
		return analyzeFailure(cmd.Context(), command, runExitCode, ring, log)
	}

	res, err := shell.Run(cmd.Context(), command)
	if err != nil {
		return fmt.Errorf("failed to execute command: %w", err)
	}
	if res.Stdout != "" {
		fmt.Print(res.Stdout)
	}
	if res.Stderr != "" {
		fmt.Fprint(os.Stderr, res.Stderr)
	}

	if res.ExitCode != 0 {
		combined := res.Stderr
		if res.Stdout != "" {
			combined += "\n" + res.Stdout
		}
		diagnoseFailure(cmd.Context(), command, res.ExitCode, combined, ring, log)
		log.Sync()
		os.Exit(res.ExitCode)
	}
	return nil
}

// analyzeFailure handles the shell-hook path: the command already ran
// and its output is gone, so its stderr is captured again briefly.
func analyzeFailure(ctx context.Context, command string, exitCode int, ring *history.Ring, log *zap.Logger) error {
	captureCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	raw := shell.Stderr(captureCtx, command)

	diagnoseFailure(ctx, command, exitCode, raw, ring, log)
	return nil
}

func diagnoseFailure(ctx context.Context, command string, exitCode int, rawOutput string, ring *history.Ring, log *zap.Logger) {
	collector := sysinfo.NewCollector(log)
	ec := collector.ErrorContext(ctx, command, exitCode, rawOutput, ring.Commands())

	if os.Getenv("SHELLSAGE_DEBUG") != "" {
		if dump, err := yaml.Marshal(ec); err == nil {
			fmt.Printf("\n%s\n%s\n", color.HiBlackString("[DEBUG] Error Context:"), color.HiBlackString(string(dump)))
		}
	}

	fmt.Println()
	fmt.Println(color.HiBlackString("🔎 Analyzing error..."))

	cfg, err := config.Load()
	if err != nil {
		printError(err.Error())
		return
	}
	gateway, err := llm.NewGateway(cfg)
	if err != nil {
		printError(err.Error())
		return
	}

	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
	s.Suffix = " Consulting model..."
	s.Start()

	res, err := diagnose.New(gateway, log).Diagnose(ctx, ec)

	s.Stop()
	if err != nil {
		printError(fmt.Sprintf("Could not get analysis: %v", err))
		return
	}

	if err := formatter.DisplayDiagnosis(res, ec, runOutputFormat); err != nil {
		printError(err.Error())
	}
}
