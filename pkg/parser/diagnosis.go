package parser

import (
	"regexp"
	"strings"

	"github.com/shellsage/shellsage/pkg/model"
)

// diagnosisMarkers are the canonical labels of the diagnosis
// vocabulary, in presentation order. Each label's first occurrence
// captures everything up to the next known label or end of text.
var diagnosisMarkers = []struct {
	section model.ItemType
	label   string
}{
	{model.TypeCause, "🔍 Root Cause:"},
	{model.TypeFix, "🛠️ Fix:"},
	{model.TypeExplanation, "📚 Technical Explanation:"},
	{model.TypeRisk, "⚠️ Potential Risks:"},
	{model.TypePrevention, "🔒 Prevention Tip:"},
}

var (
	// Models answer with plain labels; normalization canonicalizes them
	// to marker form before segment capture. A glyph the model already
	// attached is absorbed so the rewrite never doubles it.
	labelPattern = regexp.MustCompile(`(?:🔍 ?|🛠️ ?|📚 ?|⚠️ ?|🔒 ?)?(Root Cause|Fix|Technical Explanation|Potential Risks|Prevention Tip):?`)

	blankRuns   = regexp.MustCompile(`\n+`)
	listNoise   = regexp.MustCompile(`(\d\.\s|\*\*)`)
	labelGlyphs = map[string]string{
		"Root Cause":            "🔍",
		"Fix":                   "🛠️",
		"Technical Explanation": "📚",
		"Potential Risks":       "⚠️",
		"Prevention Tip":        "🔒",
	}
)

// ParseDiagnosisResponse turns raw model output into a structured
// diagnosis. Like the generation parser it never fails; unrecognizable
// text simply yields absent sections.
func ParseDiagnosisResponse(raw string) *model.DiagnosisResult {
	thoughts, rest := extractReasoning(raw)
	normalized := normalizeDiagnosis(stripTags(rest))
	return &model.DiagnosisResult{
		Thoughts: thoughts,
		Sections: captureDiagnosisSections(normalized),
	}
}

// normalizeDiagnosis collapses blank runs, drops numbered-list and bold
// noise, and rewrites each known label into its canonical marker form.
func normalizeDiagnosis(text string) string {
	cleaned := blankRuns.ReplaceAllString(text, "\n")
	cleaned = listNoise.ReplaceAllString(cleaned, "")
	return labelPattern.ReplaceAllStringFunc(cleaned, func(match string) string {
		label := labelPattern.FindStringSubmatch(match)[1]
		return labelGlyphs[label] + " " + label + ":"
	})
}

// captureDiagnosisSections locates each marker's first occurrence and
// captures its segment: the text between the end of the label and the
// next occurrence of any known label, or end of text.
func captureDiagnosisSections(text string) model.DiagnosisSections {
	var sections model.DiagnosisSections
	for _, m := range diagnosisMarkers {
		at := strings.Index(text, m.label)
		if at < 0 {
			continue
		}
		start := at + len(m.label)
		end := nextMarkerIndex(text, start)
		*diagnosisSlot(&sections, m.section) = dedupeLines(text[start:end])
	}
	return sections
}

// nextMarkerIndex finds the closest known label at or after from.
func nextMarkerIndex(text string, from int) int {
	end := len(text)
	for _, m := range diagnosisMarkers {
		if at := strings.Index(text[from:], m.label); at >= 0 && from+at < end {
			end = from + at
		}
	}
	return end
}

func diagnosisSlot(s *model.DiagnosisSections, t model.ItemType) *string {
	switch t {
	case model.TypeCause:
		return &s.Cause
	case model.TypeFix:
		return &s.Fix
	case model.TypeExplanation:
		return &s.Explanation
	case model.TypeRisk:
		return &s.Risk
	default:
		return &s.Prevention
	}
}
