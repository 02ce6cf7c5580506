package sysinfo

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeErrorOutput(t *testing.T) {
	t.Setenv("USER", "alice")

	tests := []struct {
		name    string
		output  string
		command string
		history []string
		want    []string
		wantNot []string
	}{
		{
			name:    "strips ansi escapes",
			output:  "\x1b[31mred error\x1b[0m",
			want:    []string{"red error"},
			wantNot: []string{"\x1b["},
		},
		{
			name:   "permission hint names the user",
			output: "bash: /etc/shadow: Permission denied",
			want:   []string{"Hint: This may be a permissions issue. Current user: alice"},
		},
		{
			name:   "command not found hint",
			output: "zsh: command not found: pyhton",
			want:   []string{"Hint: Command may not be installed or not in PATH"},
		},
		{
			name:   "missing file hint",
			output: "cat: nope.txt: No such file or directory",
			want:   []string{"Hint: File or directory does not exist in the current context"},
		},
		{
			name:    "only the first matching hint is added",
			output:  "permission denied\ncommand not found",
			want:    []string{"permissions issue"},
			wantNot: []string{"not in PATH"},
		},
		{
			name:    "git commit hint when nothing was staged",
			output:  "no changes added to commit",
			command: "git commit -m 'update'",
			history: []string{"git status"},
			want:    []string{"Hint: No files staged for commit. Did you forget 'git add'?"},
		},
		{
			name:    "git commit hint suppressed after git add",
			output:  "no changes added to commit",
			command: "git commit -m 'update'",
			history: []string{"git add ."},
			wantNot: []string{"Did you forget"},
		},
		{
			name:    "git commit hint needs the commit command",
			output:  "no changes added to commit",
			command: "ls",
			wantNot: []string{"Did you forget"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeErrorOutput(tt.output, tt.command, tt.history)
			for _, want := range tt.want {
				assert.Contains(t, got, want)
			}
			for _, not := range tt.wantNot {
				assert.NotContains(t, got, not)
			}
		})
	}
}

func TestRelevantFilesFromHistory(t *testing.T) {
	history := []string{"touch notes.txt", "git add main.go", "ls", "cat missing.txt"}

	got := RelevantFilesFromHistory(history)

	// Newest first, skipping the failed command itself.
	assert.Equal(t, []string{"main.go", "notes.txt"}, got)
}

func TestRelevantFilesFromHistory_CapsAtThree(t *testing.T) {
	history := []string{"vim a.txt", "vim b.txt", "vim c.txt", "vim d.txt", "boom"}

	got := RelevantFilesFromHistory(history)

	assert.Equal(t, []string{"d.txt", "c.txt", "b.txt"}, got)
}

func TestRelevantFilesFromHistory_IgnoresBareCommands(t *testing.T) {
	assert.Empty(t, RelevantFilesFromHistory([]string{"git add", "touch", "boom"}))
	assert.Empty(t, RelevantFilesFromHistory([]string{"vim only.txt"}))
}

func TestManExcerptFrom(t *testing.T) {
	manText := strings.Join([]string{
		"LS(1)                    User Commands",
		"",
		"NAME",
		"       ls - list directory contents",
		"SYNOPSIS",
		"       ls [OPTION]... [FILE]...",
		"DESCRIPTION",
		"       List information about the FILEs.",
	}, "\n")

	got := ManExcerptFrom(manText)

	assert.Equal(t, strings.Join([]string{
		"NAME",
		"ls - list directory contents",
		"SYNOPSIS",
		"ls [OPTION]... [FILE]...",
		"DESCRIPTION",
		"List information about the FILEs.",
	}, "\n"), got)
}

func TestManExcerptFrom_CapsSize(t *testing.T) {
	lines := []string{"NAME"}
	for i := 0; i < 15; i++ {
		lines = append(lines, "       detail")
	}

	got := ManExcerptFrom(strings.Join(lines, "\n"))

	assert.Len(t, strings.Split(got, "\n"), 11)
}

func TestManExcerptFrom_NothingUseful(t *testing.T) {
	assert.Equal(t, "No manual entry available", ManExcerptFrom(""))
	assert.Equal(t, "No manual entry available", ManExcerptFrom("garbage without sections"))
}

func TestDetectOS_NonEmpty(t *testing.T) {
	assert.NotEmpty(t, DetectOS())
}

func TestCollector_QueryContext(t *testing.T) {
	t.Chdir(t.TempDir())

	c := NewCollector(nil)
	qctx := c.QueryContext([]string{"ls"})

	assert.NotEmpty(t, qctx.OS)
	assert.NotEmpty(t, qctx.WorkingDir)
	assert.False(t, qctx.GitRepo)
	assert.Equal(t, []string{"ls"}, qctx.History)

	require.NoError(t, os.Mkdir(".git", 0o755))
	assert.True(t, c.QueryContext(nil).GitRepo)
}

func TestCollector_ErrorContext(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile("app.log", []byte("line one\nline two\n"), 0o644))
	require.NoError(t, os.Mkdir("sub", 0o755))
	t.Setenv("USER", "alice")
	t.Setenv("SHELL", "/bin/bash")

	runner := func(ctx context.Context, command string) string {
		switch command {
		case "ps -ef --forest":
			return "p1\np2\np3\np4\np5\np6\np7\np8\np9\np10\np11\np12"
		case "ss -tulpn":
			return "n1\nn2\nn3\nn4\nn5\nn6\nn7"
		case "man cat 2>/dev/null | col -b":
			return "NAME\n       cat - concatenate files"
		}
		return ""
	}

	c := NewCollectorWithRunner(runner, nil)
	history := []string{"touch app.log", "cat app.log"}
	ec := c.ErrorContext(context.Background(), "cat app.log", 1,
		"\x1b[31mcat: app.log: No such file or directory\x1b[0m", history)

	assert.Equal(t, "cat app.log", ec.Command)
	assert.Equal(t, 1, ec.ExitCode)
	assert.Equal(t, history, ec.History)
	assert.NotEmpty(t, ec.Cwd)
	assert.NotEmpty(t, ec.OS)

	assert.Contains(t, ec.ErrorOutput, "cat: app.log: No such file or directory")
	assert.Contains(t, ec.ErrorOutput, "Hint: File or directory does not exist")
	assert.NotContains(t, ec.ErrorOutput, "\x1b[")

	assert.Equal(t, []string{"app.log"}, ec.RelevantFiles)
	assert.Equal(t, []string{"app.log"}, ec.ReferencedFiles)

	assert.Equal(t, "alice", ec.EnvVars["USER"])
	assert.Equal(t, "/bin/bash", ec.EnvVars["SHELL"])

	require.Len(t, ec.ProcessTree, 10)
	assert.Equal(t, "p3", ec.ProcessTree[0])
	require.Len(t, ec.NetworkState, 5)
	assert.Equal(t, "n1", ec.NetworkState[0])

	assert.Contains(t, ec.Files, "app.log")
	assert.Contains(t, ec.Dirs, "sub")
	assert.Equal(t, "line one\nline two\n", ec.FileContents["app.log"])

	assert.Equal(t, "NAME\ncat - concatenate files", ec.ManExcerpt)
}

func TestCollector_ErrorContext_GitCleanTree(t *testing.T) {
	t.Chdir(t.TempDir())

	runner := func(ctx context.Context, command string) string {
		switch command {
		case "git rev-parse --is-inside-work-tree":
			return "true"
		case "git status --porcelain":
			return ""
		case "git remote -v":
			return "origin git@github.com:dev/proj.git (fetch)"
		}
		return ""
	}

	c := NewCollectorWithRunner(runner, nil)
	ec := c.ErrorContext(context.Background(), "git push origin main", 128, "error: failed to push", nil)

	assert.Equal(t, "Git status: No changes to commit (working directory clean)", ec.ManExcerpt)
	assert.Empty(t, ec.GitStatus)
	assert.Equal(t, "origin git@github.com:dev/proj.git (fetch)", ec.GitRemotes)
}

func TestCollector_ErrorContext_DockerContext(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile("docker-compose.yml", []byte("services: {}\n"), 0o644))

	runner := func(ctx context.Context, command string) string {
		if strings.HasPrefix(command, "docker ps") {
			return "web (Up 2 hours)\ndb (Exited (1))"
		}
		return ""
	}

	c := NewCollectorWithRunner(runner, nil)
	ec := c.ErrorContext(context.Background(), "docker restart web", 1, "Error response from daemon", nil)

	assert.Equal(t, []string{"web (Up 2 hours)", "db (Exited (1))"}, ec.DockerContainers)
	assert.Equal(t, []string{"docker-compose.yml"}, ec.ComposeFiles)
}

func TestCollector_ErrorContext_ServiceAndPackageProbes(t *testing.T) {
	t.Chdir(t.TempDir())

	runner := func(ctx context.Context, command string) string {
		switch {
		case strings.HasPrefix(command, "systemctl list-units"):
			return "nginx.service loaded failed failed"
		case strings.HasPrefix(command, "apt list"):
			return "curl/stable 8.5.0 amd64 [upgradable]"
		}
		return ""
	}
	c := NewCollectorWithRunner(runner, nil)

	ec := c.ErrorContext(context.Background(), "systemctl restart nginx", 1, "failed", nil)
	assert.Equal(t, []string{"nginx.service loaded failed failed"}, ec.FailedServices)

	ec = c.ErrorContext(context.Background(), "apt install curl", 100, "failed", nil)
	assert.Equal(t, []string{"curl/stable 8.5.0 amd64 [upgradable]"}, ec.AvailableUpdates)
}
