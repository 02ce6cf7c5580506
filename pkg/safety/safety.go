// Package safety reconciles generated commands with the user's apparent
// intent, vetoing destructive suggestions for benign listing requests.
package safety

import (
	"strings"

	"github.com/shellsage/shellsage/pkg/model"
)

// Intent is a coarse classification of the user's query. It gates the
// override behavior and nothing else.
type Intent int

const (
	IntentUnclassified Intent = iota
	IntentList
)

// Keyword tables driving the filter. Matching is case-folded substring
// containment. Exported so policy changes stay data-only.
var (
	// ListKeywords mark a query as a view/enumerate request.
	ListKeywords = []string{
		"list", "show", "display", "view", "enumerate",
		"see files", "see all files", "ls", "dir",
	}

	// DestructiveIntentKeywords veto a list classification outright:
	// the user really does want something removed.
	DestructiveIntentKeywords = []string{
		"delete", "remove", "clean", "cleanup", "erase",
		"wipe", "trash", "empty", "purge",
	}

	// DestructiveTerms flag a proposed command as destructive.
	DestructiveTerms = []string{
		"del", "erase", "rd", "rmdir", "rm", "mv", "move",
		"ren", "rename", "format", "mkfs", "shred", "sdelete",
		"rm -rf", "remove-item", "new-item -force",
	}

	// SafeListingCommands are commands already acceptable for a list
	// intent; they pass through untouched.
	SafeListingCommands = []string{
		"dir", "ls", "ls -la", "ls -l",
		"get-childitem", "powershell get-childitem",
	}
)

// Fixed texts installed when an override fires.
const (
	listingAnalysis       = "List all files and directories in the current directory."
	listingDetailsUnix    = "The 'ls -la' command lists all files (including hidden) with details on Linux."
	listingDetailsWindows = "The 'dir' command lists directory contents on Windows."
	replacedWarning       = "Original suggestion looked destructive for a list intent; replaced with a safe listing command."
)

// Verdict reports what Apply did to a result.
type Verdict struct {
	Replaced   bool
	NewCommand string
	Reason     string
}

// ClassifyIntent derives the query intent. Destructive wording always
// wins over list wording.
func ClassifyIntent(query string) Intent {
	q := strings.ToLower(query)
	if containsAny(q, DestructiveIntentKeywords) {
		return IntentUnclassified
	}
	if containsAny(q, ListKeywords) {
		return IntentList
	}
	return IntentUnclassified
}

// IsWindowsFamily reports whether an OS name denotes Windows. The check
// tolerates release strings like "Windows 11 Pro" and "win32" but must
// not trip on "Darwin".
func IsWindowsFamily(osName string) bool {
	name := strings.ToLower(osName)
	return strings.Contains(name, "windows") || strings.HasPrefix(name, "win")
}

// Apply reconciles a parsed generation result against the query intent,
// modifying the result in place. The filter never rejects a result: for
// a list intent it substitutes commands that look destructive or are
// not already a recognized listing command, overwrites analysis and
// details with explanatory text, and annotates the warning section when
// the original suggestion was destructive. Everything else passes
// through unmodified.
func Apply(query, osName string, res *model.GenerationResult) Verdict {
	if res == nil || ClassifyIntent(query) != IntentList {
		return Verdict{}
	}

	command := strings.ToLower(res.Sections.Command)
	looksDestructive := containsAny(command, DestructiveTerms)
	alreadyListing := containsAny(command, SafeListingCommands)
	if !looksDestructive && alreadyListing {
		return Verdict{}
	}

	safe, details := "ls -la", listingDetailsUnix
	if IsWindowsFamily(osName) {
		safe, details = "dir", listingDetailsWindows
	}
	res.Sections.Command = safe
	res.Sections.Analysis = listingAnalysis
	res.Sections.Details = details

	verdict := Verdict{Replaced: true, NewCommand: safe}
	if looksDestructive {
		verdict.Reason = replacedWarning
		if res.Sections.Warning == "" {
			res.Sections.Warning = replacedWarning
		} else {
			res.Sections.Warning += "\n" + replacedWarning
		}
	}
	return verdict
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
