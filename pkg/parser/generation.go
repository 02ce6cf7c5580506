package parser

import (
	"regexp"
	"strings"

	"github.com/shellsage/shellsage/pkg/model"
)

// Reasoning delimiters emitted by chain-of-thought models.
const (
	thinkOpen  = "<think>"
	thinkClose = "</think>"
)

// tagPattern matches any leftover angle-bracket markup once the
// reasoning delimiters have been consumed.
var tagPattern = regexp.MustCompile(`<[^>]+>`)

// generationMarkers maps each generation section to the substrings that
// announce it. Sections are tested in this order; the first section
// whose marker set intersects a line wins the line.
var generationMarkers = []struct {
	section model.ItemType
	tokens  []string
}{
	{model.TypeAnalysis, []string{"🧠", "Analysis:"}},
	{model.TypeCommand, []string{"🛠️", "Command:"}},
	{model.TypeDetails, []string{"📝", "Details:"}},
	{model.TypeWarning, []string{"⚠️", "Warning:"}},
}

// ParseGenerationResponse turns raw model output into a structured
// generation result. It never fails: malformed input degrades to a
// result with absent sections, never to an error.
func ParseGenerationResponse(raw string) *model.GenerationResult {
	thoughts, rest := extractReasoning(raw)
	return &model.GenerationResult{
		Thoughts: thoughts,
		Sections: scanGenerationSections(stripTags(rest)),
	}
}

// extractReasoning pulls out every well-formed reasoning pair, leftmost
// first, and returns the fragments plus the remaining text with the
// matched regions removed. Pairing is non-recursive: the close
// delimiter is the first one after the open. Unpaired delimiters stay
// in the text for stripTags to clean up.
func extractReasoning(text string) ([]string, string) {
	var fragments []string
	for {
		open := strings.Index(text, thinkOpen)
		if open < 0 {
			break
		}
		start := open + len(thinkOpen)
		rel := strings.Index(text[start:], thinkClose)
		if rel < 0 {
			break
		}
		end := start + rel
		fragments = append(fragments, strings.TrimSpace(text[start:end]))
		text = text[:open] + text[end+len(thinkClose):]
	}
	return fragments, text
}

// stripTags deletes any remaining <...> substrings from the final
// response text.
func stripTags(text string) string {
	return tagPattern.ReplaceAllString(text, "")
}

// scanGenerationSections runs the line scan over the cleaned response.
// A marker line resets its section's content to the marker-stripped
// remainder; non-marker lines append to whichever section the cursor
// points at. A marker line is never also a continuation line.
func scanGenerationSections(text string) model.GenerationSections {
	var sections model.GenerationSections
	var current model.ItemType

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		marked := false
		for _, m := range generationMarkers {
			if !containsAny(line, m.tokens) {
				continue
			}
			current = m.section
			content := line
			for _, tok := range m.tokens {
				content = strings.ReplaceAll(content, tok, "")
			}
			*generationSlot(&sections, current) = strings.TrimSpace(content)
			marked = true
			break
		}
		if marked || current == "" {
			continue
		}

		slot := generationSlot(&sections, current)
		if *slot == "" {
			*slot = line
		} else {
			*slot += "\n" + line
		}
	}

	sections.Analysis = dedupeLines(sections.Analysis)
	sections.Command = dedupeLines(sections.Command)
	sections.Details = dedupeLines(sections.Details)
	sections.Warning = dedupeLines(sections.Warning)
	return sections
}

// generationSlot addresses the struct field backing a section cursor.
func generationSlot(s *model.GenerationSections, t model.ItemType) *string {
	switch t {
	case model.TypeAnalysis:
		return &s.Analysis
	case model.TypeCommand:
		return &s.Command
	case model.TypeDetails:
		return &s.Details
	default:
		return &s.Warning
	}
}

// dedupeLines removes lines that repeat an earlier line of the same
// section, keeping first occurrences in their original order. Content
// that trims to nothing collapses to the absent sentinel. The pass is
// idempotent.
func dedupeLines(content string) string {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return ""
	}
	lines := strings.Split(trimmed, "\n")
	seen := make(map[string]struct{}, len(lines))
	kept := lines[:0]
	for _, line := range lines {
		if _, dup := seen[line]; dup {
			continue
		}
		seen[line] = struct{}{}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
