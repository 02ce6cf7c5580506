package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shellsage/shellsage/pkg/model"
)

func TestParseDiagnosisResponse_FullResponse(t *testing.T) {
	raw := "<think>\nthe file was never staged\n</think>\n\n\n" +
		"Root Cause: nothing staged for commit\n" +
		"Fix: `git add main.go`\n" +
		"Technical Explanation: commit records the index, which is empty\n" +
		"Potential Risks: none\n" +
		"Prevention Tip: run git status before committing"

	res := ParseDiagnosisResponse(raw)

	require.Equal(t, []string{"the file was never staged"}, res.Thoughts)
	assert.Equal(t, "nothing staged for commit", res.Sections.Cause)
	assert.Equal(t, "`git add main.go`", res.Sections.Fix)
	assert.Equal(t, "commit records the index, which is empty", res.Sections.Explanation)
	assert.Equal(t, "none", res.Sections.Risk)
	assert.Equal(t, "run git status before committing", res.Sections.Prevention)
}

func TestParseDiagnosisResponse_NumberingAndBoldNoiseDropped(t *testing.T) {
	raw := "1. **Root Cause**: bad flag\n2. **Fix**: `ls -l`"

	res := ParseDiagnosisResponse(raw)

	assert.Equal(t, "bad flag", res.Sections.Cause)
	assert.Equal(t, "`ls -l`", res.Sections.Fix)
}

func TestParseDiagnosisResponse_GlyphedLabelsNotDoubled(t *testing.T) {
	// Labels already carrying their glyph canonicalize cleanly instead
	// of leaving a stray glyph in the previous segment.
	raw := "🔍 Root Cause: typo in path\n🛠️ Fix: `cd /tmp`"

	res := ParseDiagnosisResponse(raw)

	assert.Equal(t, "typo in path", res.Sections.Cause)
	assert.Equal(t, "`cd /tmp`", res.Sections.Fix)
}

func TestParseDiagnosisResponse_OutOfOrderLabels(t *testing.T) {
	raw := "Fix: `chmod +x run.sh`\nRoot Cause: script not executable"

	res := ParseDiagnosisResponse(raw)

	assert.Equal(t, "script not executable", res.Sections.Cause)
	assert.Equal(t, "`chmod +x run.sh`", res.Sections.Fix)
}

func TestParseDiagnosisResponse_MissingLabelsStayAbsent(t *testing.T) {
	raw := "Root Cause: disk full"

	res := ParseDiagnosisResponse(raw)

	assert.Equal(t, "disk full", res.Sections.Cause)
	assert.Empty(t, res.Sections.Fix)
	assert.Empty(t, res.Sections.Explanation)
	assert.Empty(t, res.Sections.Risk)
	assert.Empty(t, res.Sections.Prevention)
}

func TestParseDiagnosisResponse_MultiLineSegments(t *testing.T) {
	raw := "Prevention Tip: pin the package version\n" +
		"and add it to the lockfile"

	res := ParseDiagnosisResponse(raw)

	assert.Equal(t, "pin the package version\nand add it to the lockfile", res.Sections.Prevention)
}

func TestParseDiagnosisResponse_FirstOccurrenceWins(t *testing.T) {
	raw := "Root Cause: the real one\nRoot Cause: a repeat"

	res := ParseDiagnosisResponse(raw)

	assert.Equal(t, "the real one", res.Sections.Cause)
}

func TestDiagnosisItems_PresentSectionsInOrder(t *testing.T) {
	res := ParseDiagnosisResponse("<think>check perms</think>\nFix: `sudo ls`\nRoot Cause: permission denied")

	want := []model.Item{
		{Type: model.TypeThinking, Content: "check perms"},
		{Type: model.TypeCause, Content: "permission denied"},
		{Type: model.TypeFix, Content: "`sudo ls`"},
	}
	if diff := cmp.Diff(want, res.Items()); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDiagnosisResponse_UnrecognizableTextYieldsNothing(t *testing.T) {
	res := ParseDiagnosisResponse("I'm sorry, I can't help with that.")

	assert.Empty(t, res.Thoughts)
	assert.Equal(t, model.DiagnosisSections{}, res.Sections)
}
