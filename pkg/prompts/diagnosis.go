package prompts

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shellsage/shellsage/pkg/model"
)

const diagnosisTemplate = `**[Terminal Context Analysis]**
**System Environment**: %s on %s
**Working Directory**: %s (%d files)
**Recent Commands**: %s
**Failed Command**: ` + "`%s`" + `
**Error Message**: %s
**Exit Code**: %d
**Referenced Files**: %s
**Man Page Excerpt**: %s
%s%s
**Required Analysis Format:**
<think>
Step 1: Identify the exact error message and command that failed
Step 2: Analyze why the command failed (syntax, missing files, permissions, etc.)
Step 3: Find the correct command or fix based on context
Step 4: Consider any potential risks
</think>

Root Cause: <1-line diagnosis>
Fix: ` + "`[executable command]`" + `
Technical Explanation: <specific system-level reason>
Potential Risks: <if any>
Prevention Tip: <actionable advice>`

// BuildDiagnosisPrompt renders the error-analysis prompt from the
// collected context. Optional facts are interpolated only when the
// collector produced them.
func BuildDiagnosisPrompt(ec model.ErrorContext) string {
	shell := ec.EnvVars["SHELL"]
	if shell == "" {
		shell = "Unknown"
	}
	osName := ec.OS
	if osName == "" {
		osName = "Linux"
	}
	referenced := "None detected"
	if len(ec.ReferencedFiles) > 0 {
		referenced = strings.Join(ec.ReferencedFiles, ", ")
	}
	man := ec.ManExcerpt
	if man == "" {
		man = "N/A"
	}

	return fmt.Sprintf(diagnosisTemplate,
		shell, osName,
		ec.Cwd, len(ec.Files),
		strings.Join(lastN(ec.History, 3), ", "),
		ec.Command,
		ec.ErrorOutput,
		ec.ExitCode,
		referenced,
		man,
		specializedFacts(ec),
		fileSnippets(ec),
	)
}

// specializedFacts renders the command-specific context lines.
func specializedFacts(ec model.ErrorContext) string {
	var b strings.Builder
	if ec.GitStatus != "" {
		fmt.Fprintf(&b, "\n**Git Status**: %s", truncate(ec.GitStatus, 200))
	}
	if len(ec.DockerContainers) > 0 {
		fmt.Fprintf(&b, "\n**Docker Containers**: %s", strings.Join(firstN(ec.DockerContainers, 3), ", "))
	}
	if len(ec.FailedServices) > 0 {
		fmt.Fprintf(&b, "\n**Failed Services**: %s", strings.Join(ec.FailedServices, ", "))
	}
	return b.String()
}

// fileSnippets renders captured file heads in a stable order.
func fileSnippets(ec model.ErrorContext) string {
	if len(ec.FileContents) == 0 {
		return ""
	}
	names := make([]string, 0, len(ec.FileContents))
	for name := range ec.FileContents {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "\n**File %s**: %s\n%s\n%s", name, fence, truncate(ec.FileContents[name], 300), fence)
	}
	return b.String()
}
