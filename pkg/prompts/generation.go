// Package prompts renders the texts sent to the model gateway. Builders
// are pure functions of the query and collected context.
package prompts

import (
	"fmt"
	"unicode/utf8"

	"github.com/shellsage/shellsage/pkg/model"
	"github.com/shellsage/shellsage/pkg/safety"
)

const fence = "```"

const unixGenerationTemplate = `SYSTEM: You are a Linux terminal expert. Generate exactly ONE command or command sequence.
Primary focus is on system-level operations (package management, system updates, file operations).
Only consider Git operations if the query explicitly mentions Git/repository operations.

USER QUERY: %s

RESPONSE FORMAT:
🧠 Analysis: [1-line explanation]
🛠️ Command: ` + fence + `[executable command(s)]` + fence + `
📝 Details: [technical specifics]
⚠️ Warning: [if dangerous]

CURRENT CONTEXT:
- OS: %s
- Directory: %s%s

PRIORITY ORDER:
1. System-level operations (apt, dnf, pacman, etc.)
2. File system operations
3. Repository operations (only if explicitly requested)

EXAMPLES:
Query: "update packages"
🧠 Analysis: Update system packages using the appropriate package manager
🛠️ Command: ` + fence + `sudo apt update && sudo apt upgrade -y` + fence + `
📝 Details: Updates package lists and upgrades all installed packages
⚠️ Warning: System may require restart after certain updates

Query: "update git repo"
🧠 Analysis: Update local Git repository with remote changes
🛠️ Command: ` + fence + `git pull origin main` + fence + `
📝 Details: Fetches and merges changes from the remote repository
⚠️ Warning: Ensure working directory is clean before updating
`

const windowsGenerationTemplate = `SYSTEM: You are a Windows PowerShell/Command Prompt expert. Generate exactly ONE command or command sequence.
Primary focus is on Windows system operations (file operations, directory management, Windows-specific commands).
Only consider Git operations if the query explicitly mentions Git/repository operations.

USER QUERY: %s

RESPONSE FORMAT:
🧠 Analysis: [1-line explanation]
🛠️ Command: ` + fence + `[executable Windows command(s)]` + fence + `
📝 Details: [technical specifics]
⚠️ Warning: [if dangerous]

CURRENT CONTEXT:
- OS: %s
- Directory: %s%s

PRIORITY ORDER:
1. Windows file system operations (dir, copy, move, del, etc.)
2. Windows system operations (systeminfo, tasklist, etc.)
3. Repository operations (only if explicitly requested)

EXAMPLES:
Query: "list all files in current directory"
🧠 Analysis: List all files and directories in the current directory using Windows command
🛠️ Command: ` + fence + `dir` + fence + `
📝 Details: Shows all files and directories with details like size, date, and attributes
⚠️ Warning: None

Query: "update git repo"
🧠 Analysis: Update local Git repository with remote changes
🛠️ Command: ` + fence + `git pull origin main` + fence + `
📝 Details: Fetches and merges changes from the remote repository
⚠️ Warning: Ensure working directory is clean before updating
`

// BuildGenerationPrompt renders the command-generation prompt for the
// user's query and environment. Windows hosts get the PowerShell/cmd
// flavored template, everything else the Linux one.
func BuildGenerationPrompt(query string, qctx model.QueryContext) string {
	osName := qctx.OS
	if osName == "" {
		osName = "Linux"
	}
	dir := qctx.WorkingDir
	if dir == "" {
		dir = "Unknown"
	}
	git := ""
	if qctx.GitRepo {
		git = "\n- Git repo: Yes (only relevant for Git-specific queries)"
	}

	template := unixGenerationTemplate
	if safety.IsWindowsFamily(osName) {
		template = windowsGenerationTemplate
	}
	return fmt.Sprintf(template, query, osName, dir, git)
}

func lastN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[len(items)-n:]
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}

// truncate caps s at n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
