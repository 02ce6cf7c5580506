package model

// ItemType names one slot of a structured model response.
type ItemType string

// Section vocabulary for the command-generation pipeline, in
// presentation order. TypeThinking is shared by both pipelines and
// always precedes section records.
const (
	TypeThinking ItemType = "thinking"
	TypeAnalysis ItemType = "analysis"
	TypeCommand  ItemType = "command"
	TypeDetails  ItemType = "details"
	TypeWarning  ItemType = "warning"
)

// Section vocabulary for the error-diagnosis pipeline, in presentation order.
const (
	TypeCause       ItemType = "cause"
	TypeFix         ItemType = "fix"
	TypeExplanation ItemType = "explanation"
	TypeRisk        ItemType = "risk"
	TypePrevention  ItemType = "prevention"
)

// Item is one record handed to the presentation layer. An empty Content
// means the section is absent: the model never emitted it, or emitted a
// bare marker with nothing after it. Present content is never empty.
type Item struct {
	Type    ItemType `json:"type" yaml:"type"`
	Content string   `json:"content,omitempty" yaml:"content,omitempty"`
}

// GenerationSections is the fixed section vocabulary of a command
// generation response. The empty string encodes absence; a present
// section never holds an empty string and never repeats a line.
type GenerationSections struct {
	Analysis string
	Command  string
	Details  string
	Warning  string
}

// GenerationResult is the parsed form of one command-generation
// response: the model's reasoning fragments in document order plus the
// labeled sections. It lives for a single pipeline invocation and is
// never shared across calls.
type GenerationResult struct {
	Thoughts []string
	Sections GenerationSections
}

// Items flattens the result into the record sequence the presentation
// layer consumes. Reasoning records come first. A response that carried
// reasoning fragments emits only its present sections; a plain response
// emits all four section records so downstream always sees the full
// vocabulary, absent content included.
func (r *GenerationResult) Items() []Item {
	items := make([]Item, 0, len(r.Thoughts)+4)
	for _, t := range r.Thoughts {
		items = append(items, Item{Type: TypeThinking, Content: t})
	}
	sections := []Item{
		{Type: TypeAnalysis, Content: r.Sections.Analysis},
		{Type: TypeCommand, Content: r.Sections.Command},
		{Type: TypeDetails, Content: r.Sections.Details},
		{Type: TypeWarning, Content: r.Sections.Warning},
	}
	if len(r.Thoughts) > 0 {
		for _, it := range sections {
			if it.Content != "" {
				items = append(items, it)
			}
		}
		return items
	}
	return append(items, sections...)
}

// DiagnosisSections is the fixed section vocabulary of an error
// diagnosis response. Absence semantics match GenerationSections.
type DiagnosisSections struct {
	Cause       string
	Fix         string
	Explanation string
	Risk        string
	Prevention  string
}

// DiagnosisResult is the parsed form of one error-diagnosis response.
type DiagnosisResult struct {
	Thoughts []string
	Sections DiagnosisSections
}

// Items flattens the diagnosis for the presentation layer: reasoning
// first, then the present sections in vocabulary order.
func (r *DiagnosisResult) Items() []Item {
	items := make([]Item, 0, len(r.Thoughts)+5)
	for _, t := range r.Thoughts {
		items = append(items, Item{Type: TypeThinking, Content: t})
	}
	for _, it := range []Item{
		{Type: TypeCause, Content: r.Sections.Cause},
		{Type: TypeFix, Content: r.Sections.Fix},
		{Type: TypeExplanation, Content: r.Sections.Explanation},
		{Type: TypeRisk, Content: r.Sections.Risk},
		{Type: TypePrevention, Content: r.Sections.Prevention},
	} {
		if it.Content != "" {
			items = append(items, it)
		}
	}
	return items
}
