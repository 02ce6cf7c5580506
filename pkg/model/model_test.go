package model

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerationResultItems_PlainResponse(t *testing.T) {
	r := GenerationResult{
		Sections: GenerationSections{
			Analysis: "lists files",
			Command:  "ls -la",
		},
	}

	want := []Item{
		{Type: TypeAnalysis, Content: "lists files"},
		{Type: TypeCommand, Content: "ls -la"},
		{Type: TypeDetails},
		{Type: TypeWarning},
	}
	if diff := cmp.Diff(want, r.Items()); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerationResultItems_ReasoningResponse(t *testing.T) {
	r := GenerationResult{
		Thoughts: []string{"user wants a listing"},
		Sections: GenerationSections{Command: "ls"},
	}

	want := []Item{
		{Type: TypeThinking, Content: "user wants a listing"},
		{Type: TypeCommand, Content: "ls"},
	}
	if diff := cmp.Diff(want, r.Items()); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
}

func TestDiagnosisResultItems_PresentSectionsInOrder(t *testing.T) {
	r := DiagnosisResult{
		Thoughts: []string{"exit 127 means lookup failure"},
		Sections: DiagnosisSections{
			Fix:   "apt install tree",
			Cause: "tree is not installed",
		},
	}

	want := []Item{
		{Type: TypeThinking, Content: "exit 127 means lookup failure"},
		{Type: TypeCause, Content: "tree is not installed"},
		{Type: TypeFix, Content: "apt install tree"},
	}
	if diff := cmp.Diff(want, r.Items()); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
}

func TestDiagnosisResultItems_EmptyResult(t *testing.T) {
	r := DiagnosisResult{}
	assert.Empty(t, r.Items())
}

func TestItemJSON_OmitsEmptyContent(t *testing.T) {
	data, err := json.Marshal(Item{Type: TypeCommand})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"command"}`, string(data))

	data, err = json.Marshal(Item{Type: TypeWarning, Content: "careful"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"warning","content":"careful"}`, string(data))
}
