// Package sysinfo gathers host and session facts that ground model
// prompts: platform name, working directory, command history, and the
// probe output assembled around a failed command.
package sysinfo

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/shellsage/shellsage/pkg/model"
	"github.com/shellsage/shellsage/pkg/shell"
)

// Runner executes a shell command and returns its trimmed stdout,
// empty on any failure. Probes prefer missing facts over errors.
type Runner func(ctx context.Context, command string) string

// Collector assembles query and error context snapshots.
type Collector struct {
	run Runner
	log *zap.Logger
}

// NewCollector returns a Collector that probes through the real shell.
func NewCollector(log *zap.Logger) *Collector {
	return NewCollectorWithRunner(shell.Output, log)
}

// NewCollectorWithRunner injects the probe runner, for tests.
func NewCollectorWithRunner(run Runner, log *zap.Logger) *Collector {
	if log == nil {
		log = zap.NewNop()
	}
	return &Collector{run: run, log: log}
}

// DetectOS names the host platform, preferring the distribution's
// PRETTY_NAME from /etc/os-release on Linux.
func DetectOS() string {
	if runtime.GOOS == "linux" {
		if data, err := os.ReadFile("/etc/os-release"); err == nil {
			for _, line := range strings.Split(string(data), "\n") {
				key, value, ok := strings.Cut(line, "=")
				if !ok || !strings.EqualFold(strings.TrimSpace(key), "PRETTY_NAME") {
					continue
				}
				if name := strings.Trim(strings.TrimSpace(value), `"`); name != "" {
					return name
				}
			}
		}
	}
	switch runtime.GOOS {
	case "windows":
		return "Windows"
	case "darwin":
		return "macOS"
	case "linux":
		return "Linux"
	}
	return runtime.GOOS
}

// QueryContext snapshots the facts interpolated into a generation
// prompt: platform, working directory, git presence, recent commands.
func (c *Collector) QueryContext(history []string) model.QueryContext {
	cwd, _ := os.Getwd()
	qctx := model.QueryContext{
		OS:         DetectOS(),
		WorkingDir: cwd,
		History:    history,
	}
	if _, err := os.Stat(filepath.Join(cwd, ".git")); err == nil {
		qctx.GitRepo = true
	}
	return qctx
}

// ErrorContext gathers everything worth telling the model about a
// failed command: the sanitized output, environment, directory
// contents, process and network state, manual excerpts, and context
// specific to the tool that failed.
func (c *Collector) ErrorContext(ctx context.Context, command string, exitCode int, rawOutput string, history []string) model.ErrorContext {
	cwd, _ := os.Getwd()

	ec := model.ErrorContext{
		Command:     command,
		ErrorOutput: SanitizeErrorOutput(rawOutput, command, history),
		Cwd:         cwd,
		ExitCode:    exitCode,
		History:     history,
		OS:          DetectOS(),
		EnvVars:     relevantEnvVars(),
	}

	ec.RelevantFiles = RelevantFilesFromHistory(history)
	ec.ReferencedFiles = referencedFiles(ec.ErrorOutput)
	ec.ProcessTree = tailLines(c.run(ctx, "ps -ef --forest"), 10)
	ec.NetworkState = headLines(c.run(ctx, "ss -tulpn"), 5)

	c.fileContext(&ec, command)

	if parts := strings.Fields(command); len(parts) > 0 {
		ec.ManExcerpt = c.manExcerpt(ctx, parts[0])
		c.specializedContext(ctx, &ec, parts[0])
	}

	c.log.Debug("error context assembled",
		zap.String("command", command),
		zap.Int("exit_code", exitCode),
		zap.Int("referenced_files", len(ec.ReferencedFiles)))
	return ec
}

var contextEnvVars = []string{"PATH", "SHELL", "USER", "HOME", "PWD", "OLDPWD"}

func relevantEnvVars() map[string]string {
	vars := make(map[string]string, len(contextEnvVars))
	for _, name := range contextEnvVars {
		vars[name] = os.Getenv(name)
	}
	return vars
}

var ansiEscape = regexp.MustCompile(`\x1B\[[0-?]*[ -/]*[@-~]`)

// SanitizeErrorOutput strips ANSI escape sequences and appends a hint
// for error patterns the model tends to answer too generically.
func SanitizeErrorOutput(output, command string, history []string) string {
	clean := strings.TrimSpace(ansiEscape.ReplaceAllString(output, ""))
	lower := strings.ToLower(clean)

	enhanced := clean
	switch {
	case strings.Contains(lower, "permission denied"):
		enhanced += "\nHint: This may be a permissions issue. Current user: " + userName()
	case strings.Contains(lower, "command not found"):
		enhanced += "\nHint: Command may not be installed or not in PATH"
	case strings.Contains(lower, "no such file"):
		enhanced += "\nHint: File or directory does not exist in the current context"
	}

	if strings.Contains(strings.ToLower(command), "git commit") &&
		strings.Contains(lower, "no changes added to commit") &&
		!anyContains(history, "git add") {
		enhanced += "\nHint: No files staged for commit. Did you forget 'git add'?"
	}
	return enhanced
}

var (
	gitFileOperations   = []string{"add", "commit", "push", "pull"}
	historyFileCommands = []string{"touch", "mkdir", "cp", "mv", "vim", "nano"}
)

// RelevantFilesFromHistory walks recent commands newest first, skipping
// the failed command itself, and collects up to three file arguments
// from git and file-manipulation commands.
func RelevantFilesFromHistory(history []string) []string {
	var files []string
	for i := len(history) - 2; i >= 0; i-- {
		parts := strings.Fields(history[i])
		if len(parts) == 0 {
			continue
		}
		switch {
		case parts[0] == "git" && len(parts) > 2 && slices.Contains(gitFileOperations, parts[1]):
			files = append(files, parts[len(parts)-1])
		case len(parts) > 1 && slices.Contains(historyFileCommands, parts[0]):
			files = append(files, parts[len(parts)-1])
		}
		if len(files) >= 3 {
			break
		}
	}
	return files
}

// ManExcerptFrom extracts the NAME, SYNOPSIS and DESCRIPTION sections
// from col -b rendered man output, capped to keep prompts small.
func ManExcerptFrom(manText string) string {
	var sections []string
	inSection := false
	for _, line := range strings.Split(manText, "\n") {
		switch strings.ToUpper(line) {
		case "NAME", "SYNOPSIS", "DESCRIPTION":
			inSection = true
			sections = append(sections, line)
		default:
			if inSection && strings.HasPrefix(line, " ") {
				sections = append(sections, strings.TrimSpace(line))
			}
		}
		if len(sections) > 10 {
			break
		}
	}
	if len(sections) == 0 {
		return "No manual entry available"
	}
	return strings.Join(sections, "\n")
}

func (c *Collector) manExcerpt(ctx context.Context, baseCmd string) string {
	if baseCmd == "git" {
		// A clean working tree explains most git failures better than
		// the manual does.
		if c.run(ctx, "git rev-parse --is-inside-work-tree") == "true" &&
			c.run(ctx, "git status --porcelain") == "" {
			return "Git status: No changes to commit (working directory clean)"
		}
	}
	return ManExcerptFrom(c.run(ctx, fmt.Sprintf("man %s 2>/dev/null | col -b", baseCmd)))
}

var filePattern = regexp.MustCompile(`'(.*?)'|"(.*?)"|\b([/\w.-]+\.\w+)\b`)

// referencedFiles finds paths mentioned in the error output that exist
// as regular files on disk.
func referencedFiles(errorOutput string) []string {
	if errorOutput == "" {
		return nil
	}
	var files []string
	seen := make(map[string]bool)
	for _, match := range filePattern.FindAllStringSubmatch(errorOutput, -1) {
		for _, group := range match[1:] {
			if group == "" || seen[group] {
				continue
			}
			if info, err := os.Stat(group); err == nil && info.Mode().IsRegular() {
				seen[group] = true
				files = append(files, group)
			}
		}
	}
	return files
}

func (c *Collector) fileContext(ec *model.ErrorContext, command string) {
	if ec.Cwd == "" {
		return
	}
	entries, err := os.ReadDir(ec.Cwd)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if entry.IsDir() {
			if len(ec.Dirs) < 5 {
				ec.Dirs = append(ec.Dirs, entry.Name())
			}
		} else if len(ec.Files) < 10 {
			ec.Files = append(ec.Files, entry.Name())
		}
	}

	contents := make(map[string]string)
	for _, part := range strings.Fields(command) {
		if len(contents) >= 2 {
			break
		}
		if _, ok := contents[part]; ok {
			continue
		}
		info, err := os.Stat(part)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		contents[part] = headOfFile(part, 20)
	}
	if len(contents) > 0 {
		ec.FileContents = contents
	}
}

func headOfFile(path string, lines int) string {
	f, err := os.Open(path)
	if err != nil {
		return "Unable to read file content"
	}
	defer f.Close()

	var b strings.Builder
	scanner := bufio.NewScanner(f)
	for i := 0; i < lines && scanner.Scan(); i++ {
		b.WriteString(scanner.Text())
		b.WriteByte('\n')
	}
	return b.String()
}

func (c *Collector) specializedContext(ctx context.Context, ec *model.ErrorContext, baseCmd string) {
	switch baseCmd {
	case "git":
		ec.GitStatus = c.run(ctx, "git status --porcelain")
		ec.GitRemotes = c.run(ctx, "git remote -v")
	case "docker", "docker-compose":
		if out := c.run(ctx, `docker ps --format "{{.Names}} ({{.Status}})"`); out != "" {
			ec.DockerContainers = strings.Split(out, "\n")
		}
		for _, name := range []string{"docker-compose.yml", "docker-compose.yaml"} {
			if _, err := os.Stat(name); err == nil {
				ec.ComposeFiles = append(ec.ComposeFiles, name)
			}
		}
	case "apt", "apt-get":
		if out := c.run(ctx, "apt list --upgradable 2>/dev/null | head -n 5"); out != "" {
			ec.AvailableUpdates = strings.Split(out, "\n")
		}
	case "systemctl", "service":
		if out := c.run(ctx, "systemctl list-units --state=failed --no-legend | head -n 3"); out != "" {
			ec.FailedServices = strings.Split(out, "\n")
		}
	}
}

func headLines(text string, n int) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	return lines
}

func tailLines(text string, n int) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines
}

func userName() string {
	if user := os.Getenv("USER"); user != "" {
		return user
	}
	return "unknown"
}

func anyContains(entries []string, substr string) bool {
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry), substr) {
			return true
		}
	}
	return false
}
